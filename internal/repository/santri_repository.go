package repository

import (
	"database/sql"
	"fmt"

	"bendahara-api/internal/model"
)

type SantriRepository struct {
	db *sql.DB
}

func NewSantriRepository(db *sql.DB) *SantriRepository {
	return &SantriRepository{db: db}
}

const santriColumns = `id, nis, nama, kelas, asrama, kobong, gender, alamat, kabupaten, aktif, created_at, updated_at`

// Create inserts a santri. Duplicate nis values are rejected by the unique
// index on the table, never pre-checked here, so concurrent inserts cannot
// race past the constraint.
func (r *SantriRepository) Create(santri *model.Santri) error {
	query := `
		INSERT INTO santri (` + santriColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`
	_, err := r.db.Exec(query,
		santri.ID,
		santri.NIS,
		santri.Nama,
		santri.Kelas,
		santri.Asrama,
		santri.Kobong,
		santri.Gender,
		santri.Alamat,
		santri.Kabupaten,
		santri.Aktif,
		santri.CreatedAt,
		santri.UpdatedAt,
	)
	return mapInsertErr(err)
}

func (r *SantriRepository) List(filter *model.SantriFilter) ([]model.Santri, int, error) {
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

	if filter.Q != "" {
		addClause("(nama ILIKE $%[1]d OR nis ILIKE $%[1]d)", "%"+filter.Q+"%")
	}
	if filter.Kelas != "" {
		addClause("kelas = $%d", filter.Kelas)
	}
	if filter.Asrama != "" {
		addClause("asrama = $%d", filter.Asrama)
	}
	if filter.Kobong != "" {
		addClause("kobong = $%d", filter.Kobong)
	}
	if filter.Gender != "" {
		addClause("gender = $%d", filter.Gender)
	}
	if filter.Kabupaten != "" {
		addClause("kabupaten = $%d", filter.Kabupaten)
	}
	if filter.Aktif != nil {
		addClause("aktif = $%d", *filter.Aktif)
	}

	var total int
	if err := r.db.QueryRow(`SELECT COUNT(*) FROM santri`+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf(`SELECT `+santriColumns+` FROM santri`+where+` ORDER BY nama LIMIT $%d OFFSET $%d`, argIndex, argIndex+1)
	args = append(args, filter.PageSize, (filter.Page-1)*filter.PageSize)

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var items []model.Santri
	for rows.Next() {
		var s model.Santri
		var alamat, kabupaten sql.NullString
		err := rows.Scan(
			&s.ID,
			&s.NIS,
			&s.Nama,
			&s.Kelas,
			&s.Asrama,
			&s.Kobong,
			&s.Gender,
			&alamat,
			&kabupaten,
			&s.Aktif,
			&s.CreatedAt,
			&s.UpdatedAt,
		)
		if err != nil {
			return nil, 0, err
		}
		if alamat.Valid {
			s.Alamat = &alamat.String
		}
		if kabupaten.Valid {
			s.Kabupaten = &kabupaten.String
		}
		items = append(items, s)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return items, total, nil
}

// CountActive counts santri with aktif = true. The dashboard total ignores
// every summary filter on purpose.
func (r *SantriRepository) CountActive() (int, error) {
	var count int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM santri WHERE aktif = TRUE`).Scan(&count)
	return count, err
}

// FindIDs resolves the set of santri ids matching the given attribute
// filters. Empty filter strings are skipped.
func (r *SantriRepository) FindIDs(gender, asrama, kelas string) ([]string, error) {
	where := ""
	args := []interface{}{}
	argIndex := 1

	addClause := func(column, value string) {
		if value == "" {
			return
		}
		if where == "" {
			where = " WHERE "
		} else {
			where += " AND "
		}
		where += fmt.Sprintf("%s = $%d", column, argIndex)
		args = append(args, value)
		argIndex++
	}

	addClause("gender", gender)
	addClause("asrama", asrama)
	addClause("kelas", kelas)

	rows, err := r.db.Query(`SELECT id FROM santri`+where, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
