package repository

import (
	"database/sql"
	"fmt"

	"bendahara-api/internal/model"
)

type PegawaiRepository struct {
	db *sql.DB
}

func NewPegawaiRepository(db *sql.DB) *PegawaiRepository {
	return &PegawaiRepository{db: db}
}

const pegawaiColumns = `id, nip, nama, role, department, email, telp, alamat, tanggal_bergabung, aktif, created_at, updated_at`

func (r *PegawaiRepository) Create(pegawai *model.Pegawai) error {
	query := `
		INSERT INTO pegawai (` + pegawaiColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`
	_, err := r.db.Exec(query,
		pegawai.ID,
		pegawai.NIP,
		pegawai.Nama,
		pegawai.Role,
		pegawai.Department,
		pegawai.Email,
		pegawai.Telp,
		pegawai.Alamat,
		pegawai.TanggalBergabung,
		pegawai.Aktif,
		pegawai.CreatedAt,
		pegawai.UpdatedAt,
	)
	return mapInsertErr(err)
}

func (r *PegawaiRepository) List(filter *model.PegawaiFilter) ([]model.Pegawai, int, error) {
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
		addClause("(nama ILIKE $%[1]d OR email ILIKE $%[1]d)", "%"+filter.Q+"%")
	}
	if filter.Department != "" {
		addClause("department = $%d", filter.Department)
	}
	if filter.Role != "" {
		addClause("role = $%d", filter.Role)
	}
	if filter.Aktif != nil {
		addClause("aktif = $%d", *filter.Aktif)
	}

	var total int
	if err := r.db.QueryRow(`SELECT COUNT(*) FROM pegawai`+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf(`SELECT `+pegawaiColumns+` FROM pegawai`+where+` ORDER BY nama LIMIT $%d OFFSET $%d`, argIndex, argIndex+1)
	args = append(args, filter.PageSize, (filter.Page-1)*filter.PageSize)

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var items []model.Pegawai
	for rows.Next() {
		p, err := scanPegawai(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return items, total, nil
}

// FindIDs resolves pegawai ids matching department and/or role, for the
// two-step gaji filter.
func (r *PegawaiRepository) FindIDs(department, role string) ([]string, error) {
	where := ""
	args := []interface{}{}
	argIndex := 1

	if department != "" {
		where = fmt.Sprintf(" WHERE department = $%d", argIndex)
		args = append(args, department)
		argIndex++
	}
	if role != "" {
		if where == "" {
			where = fmt.Sprintf(" WHERE role = $%d", argIndex)
		} else {
			where += fmt.Sprintf(" AND role = $%d", argIndex)
		}
		args = append(args, role)
		argIndex++
	}

	rows, err := r.db.Query(`SELECT id FROM pegawai`+where, args...)
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

func scanPegawai(rows *sql.Rows) (*model.Pegawai, error) {
	p := &model.Pegawai{}
	var nip, email, telp, alamat sql.NullString
	var bergabung sql.NullTime

	err := rows.Scan(
		&p.ID,
		&nip,
		&p.Nama,
		&p.Role,
		&p.Department,
		&email,
		&telp,
		&alamat,
		&bergabung,
		&p.Aktif,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if nip.Valid {
		p.NIP = &nip.String
	}
	if email.Valid {
		p.Email = &email.String
	}
	if telp.Valid {
		p.Telp = &telp.String
	}
	if alamat.Valid {
		p.Alamat = &alamat.String
	}
	if bergabung.Valid {
		p.TanggalBergabung = &bergabung.Time
	}

	return p, nil
}
