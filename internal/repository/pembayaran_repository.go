package repository

import (
	"database/sql"
	"fmt"

	"bendahara-api/internal/model"

	"github.com/lib/pq"
)

type PembayaranRepository struct {
	db *sql.DB
}

func NewPembayaranRepository(db *sql.DB) *PembayaranRepository {
	return &PembayaranRepository{db: db}
}

const pembayaranColumns = `id, santri_id, tanggal, bulan, tahun, nominal, status, keterangan, created_at, updated_at`

func (r *PembayaranRepository) Create(p *model.PembayaranSyariah) error {
	query := `
		INSERT INTO pembayaran_syariah (` + pembayaranColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err := r.db.Exec(query,
		p.ID,
		p.SantriID,
		p.Tanggal,
		p.Bulan,
		p.Tahun,
		p.Nominal,
		p.Status,
		p.Keterangan,
		p.CreatedAt,
		p.UpdatedAt,
	)
	return mapInsertErr(err)
}

func (r *PembayaranRepository) List(filter *model.PembayaranFilter) ([]model.PembayaranSyariah, int, error) {
	where, args, argIndex := pembayaranWhere(filter)

	var total int
	if err := r.db.QueryRow(`SELECT COUNT(*) FROM pembayaran_syariah`+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf(`SELECT `+pembayaranColumns+` FROM pembayaran_syariah`+where+` ORDER BY tanggal DESC LIMIT $%d OFFSET $%d`, argIndex, argIndex+1)
	args = append(args, filter.PageSize, (filter.Page-1)*filter.PageSize)

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var items []model.PembayaranSyariah
	for rows.Next() {
		var p model.PembayaranSyariah
		var keterangan sql.NullString
		err := rows.Scan(
			&p.ID,
			&p.SantriID,
			&p.Tanggal,
			&p.Bulan,
			&p.Tahun,
			&p.Nominal,
			&p.Status,
			&keterangan,
			&p.CreatedAt,
			&p.UpdatedAt,
		)
		if err != nil {
			return nil, 0, err
		}
		if keterangan.Valid {
			p.Keterangan = &keterangan.String
		}
		items = append(items, p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return items, total, nil
}

// StatusSummary partitions the matching payments by status and returns the
// Lunas count, the non-Lunas count and the outstanding nominal summed over
// the non-Lunas partition.
func (r *PembayaranRepository) StatusSummary(filter *model.PembayaranFilter) (lunas int, belum int, tunggakan float64, err error) {
	where, args, _ := pembayaranWhere(filter)

	query := `
		SELECT
			COALESCE(SUM(CASE WHEN status = 'Lunas' THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN status <> 'Lunas' THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN status <> 'Lunas' THEN nominal ELSE 0 END), 0)
		FROM pembayaran_syariah` + where

	err = r.db.QueryRow(query, args...).Scan(&lunas, &belum, &tunggakan)
	return lunas, belum, tunggakan, err
}

func pembayaranWhere(filter *model.PembayaranFilter) (string, []interface{}, int) {
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

	if filter.SantriID != "" {
		addClause("santri_id = $%d", filter.SantriID)
	}
	if filter.Tahun != nil {
		addClause("tahun = $%d", *filter.Tahun)
	}
	if filter.Bulan != "" {
		addClause("bulan = $%d", filter.Bulan)
	}
	if filter.Status != "" {
		addClause("status = $%d", filter.Status)
	}
	if filter.SantriIDs != nil {
		// ANY over an empty array matches no rows, which is exactly the
		// wanted behaviour when the santri filter resolves nobody.
		addClause("santri_id = ANY($%d)", pq.Array(filter.SantriIDs))
	}

	return where, args, argIndex
}
