package repository

import (
	"database/sql"
	"fmt"

	"bendahara-api/internal/model"

	"github.com/lib/pq"
)

type GajiRepository struct {
	db *sql.DB
}

func NewGajiRepository(db *sql.DB) *GajiRepository {
	return &GajiRepository{db: db}
}

const gajiColumns = `id, pegawai_id, bulan, tahun, gaji_pokok, tunjangan, potongan, total_bersih, status, tanggal_bayar, keterangan, created_at, updated_at`

func (r *GajiRepository) Create(g *model.GajiPegawai) error {
	query := `
		INSERT INTO gaji_pegawai (` + gajiColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`
	_, err := r.db.Exec(query,
		g.ID,
		g.PegawaiID,
		g.Bulan,
		g.Tahun,
		g.GajiPokok,
		g.Tunjangan,
		g.Potongan,
		g.TotalBersih,
		g.Status,
		g.TanggalBayar,
		g.Keterangan,
		g.CreatedAt,
		g.UpdatedAt,
	)
	return mapInsertErr(err)
}

func (r *GajiRepository) List(filter *model.GajiFilter) ([]model.GajiPegawai, int, error) {
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

	if filter.PegawaiID != "" {
		addClause("pegawai_id = $%d", filter.PegawaiID)
	}
	if filter.Tahun != nil {
		addClause("tahun = $%d", *filter.Tahun)
	}
	if filter.Bulan != nil {
		addClause("bulan = $%d", *filter.Bulan)
	}
	if filter.Status != "" {
		addClause("status = $%d", filter.Status)
	}
	if filter.PegawaiIDs != nil {
		addClause("pegawai_id = ANY($%d)", pq.Array(filter.PegawaiIDs))
	}

	var total int
	if err := r.db.QueryRow(`SELECT COUNT(*) FROM gaji_pegawai`+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf(`SELECT `+gajiColumns+` FROM gaji_pegawai`+where+` ORDER BY tahun DESC, bulan DESC LIMIT $%d OFFSET $%d`, argIndex, argIndex+1)
	args = append(args, filter.PageSize, (filter.Page-1)*filter.PageSize)

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var items []model.GajiPegawai
	for rows.Next() {
		var g model.GajiPegawai
		var tanggalBayar sql.NullTime
		var keterangan sql.NullString
		err := rows.Scan(
			&g.ID,
			&g.PegawaiID,
			&g.Bulan,
			&g.Tahun,
			&g.GajiPokok,
			&g.Tunjangan,
			&g.Potongan,
			&g.TotalBersih,
			&g.Status,
			&tanggalBayar,
			&keterangan,
			&g.CreatedAt,
			&g.UpdatedAt,
		)
		if err != nil {
			return nil, 0, err
		}
		if tanggalBayar.Valid {
			g.TanggalBayar = &tanggalBayar.Time
		}
		if keterangan.Valid {
			g.Keterangan = &keterangan.String
		}
		items = append(items, g)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return items, total, nil
}

// StatusSummary sums total_bersih over payroll rows matching the optional
// tahun/bulan filters, partitioned into Dibayar vs everything else.
func (r *GajiRepository) StatusSummary(tahun, bulan *int) (dibayar float64, tertunda float64, err error) {
	where := ""
	args := []interface{}{}
	argIndex := 1

	if tahun != nil {
		where = fmt.Sprintf(" WHERE tahun = $%d", argIndex)
		args = append(args, *tahun)
		argIndex++
	}
	if bulan != nil {
		if where == "" {
			where = fmt.Sprintf(" WHERE bulan = $%d", argIndex)
		} else {
			where += fmt.Sprintf(" AND bulan = $%d", argIndex)
		}
		args = append(args, *bulan)
		argIndex++
	}

	query := `
		SELECT
			COALESCE(SUM(CASE WHEN status = 'Dibayar' THEN total_bersih ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN status <> 'Dibayar' THEN total_bersih ELSE 0 END), 0)
		FROM gaji_pegawai` + where

	err = r.db.QueryRow(query, args...).Scan(&dibayar, &tertunda)
	return dibayar, tertunda, err
}
