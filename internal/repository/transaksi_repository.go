package repository

import (
	"database/sql"
	"fmt"

	"bendahara-api/internal/model"
)

type TransaksiRepository struct {
	db *sql.DB
}

func NewTransaksiRepository(db *sql.DB) *TransaksiRepository {
	return &TransaksiRepository{db: db}
}

const transaksiColumns = `id, santri_id, jenis, nominal, tanggal, keterangan, created_at, updated_at`

func (r *TransaksiRepository) Create(t *model.Transaksi) error {
	query := `
		INSERT INTO transaksi (` + transaksiColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.db.Exec(query,
		t.ID,
		t.SantriID,
		t.Jenis,
		t.Nominal,
		t.Tanggal,
		t.Keterangan,
		t.CreatedAt,
		t.UpdatedAt,
	)
	return mapInsertErr(err)
}

func (r *TransaksiRepository) List(filter *model.TransaksiFilter) ([]model.Transaksi, int, error) {
	where := ""
	args := []interface{}{}
	argIndex := 1

	addClause := func(clause string, value interface{}) {
		if where == "" {
			where = " WHERE "
		} else {
			where += " AND "
		}
		where += fmt.Sprintf(clause, argIndex)
		args = append(args, value)
		argIndex++
	}

	if filter.Jenis != "" {
		addClause("jenis = $%d", filter.Jenis)
	}
	if filter.Start != nil {
		addClause("tanggal >= $%d", *filter.Start)
	}
	if filter.End != nil {
		addClause("tanggal < $%d", *filter.End)
	}

	var total int
	if err := r.db.QueryRow(`SELECT COUNT(*) FROM transaksi`+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf(`SELECT `+transaksiColumns+` FROM transaksi`+where+` ORDER BY tanggal DESC LIMIT $%d OFFSET $%d`, argIndex, argIndex+1)
	args = append(args, filter.PageSize, (filter.Page-1)*filter.PageSize)

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var items []model.Transaksi
	for rows.Next() {
		var t model.Transaksi
		var santriID, keterangan sql.NullString
		err := rows.Scan(
			&t.ID,
			&santriID,
			&t.Jenis,
			&t.Nominal,
			&t.Tanggal,
			&keterangan,
			&t.CreatedAt,
			&t.UpdatedAt,
		)
		if err != nil {
			return nil, 0, err
		}
		if santriID.Valid {
			t.SantriID = &santriID.String
		}
		if keterangan.Valid {
			t.Keterangan = &keterangan.String
		}
		items = append(items, t)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return items, total, nil
}

// SumByJenis sums nominal over every transaksi of the given jenis. The
// dashboard totals are intentionally unfiltered by period.
func (r *TransaksiRepository) SumByJenis(jenis string) (float64, error) {
	var sum float64
	err := r.db.QueryRow(`SELECT COALESCE(SUM(nominal), 0) FROM transaksi WHERE jenis = $1`, jenis).Scan(&sum)
	return sum, err
}
