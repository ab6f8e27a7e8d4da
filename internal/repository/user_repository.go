package repository

import (
	"database/sql"

	"bendahara-api/internal/model"
)

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(user *model.User) error {
	query := `
		INSERT INTO users (id, username, email, password_hash, role, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.db.Exec(query,
		user.ID,
		user.Username,
		user.Email,
		user.PasswordHash,
		user.Role,
		user.CreatedAt,
	)
	return mapInsertErr(err)
}

func (r *UserRepository) FindByUsername(username string) (*model.User, error) {
	return r.findOne(`SELECT id, username, email, password_hash, role, created_at FROM users WHERE username = $1`, username)
}

func (r *UserRepository) FindByEmail(email string) (*model.User, error) {
	return r.findOne(`SELECT id, username, email, password_hash, role, created_at FROM users WHERE email = $1`, email)
}

func (r *UserRepository) FindByID(id string) (*model.User, error) {
	return r.findOne(`SELECT id, username, email, password_hash, role, created_at FROM users WHERE id = $1`, id)
}

// ExistsByUsernameOrEmail reports whether any user already holds the given
// username or email. Used by the admin seed.
func (r *UserRepository) ExistsByUsernameOrEmail(username, email string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM users WHERE username = $1 OR email = $2)`
	var exists bool
	err := r.db.QueryRow(query, username, email).Scan(&exists)
	return exists, err
}

func (r *UserRepository) findOne(query string, arg interface{}) (*model.User, error) {
	user := &model.User{}
	err := r.db.QueryRow(query, arg).Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.PasswordHash,
		&user.Role,
		&user.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return user, nil
}
