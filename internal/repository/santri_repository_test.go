package repository

import (
	"testing"
	"time"

	"bendahara-api/internal/model"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSantriRepository(t *testing.T) (*SantriRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewSantriRepository(db), mock
}

func sampleSantri() *model.Santri {
	now := time.Now()
	return &model.Santri{
		ID:        uuid.New(),
		NIS:       "2024001",
		Nama:      "Ahmad Fauzi",
		Kelas:     "1A",
		Asrama:    "Al-Ikhlas",
		Kobong:    "K1",
		Gender:    model.GenderPutra,
		Aktif:     true,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestSantriCreate(t *testing.T) {
	repo, mock := newTestSantriRepository(t)
	s := sampleSantri()

	mock.ExpectExec(`INSERT INTO santri`).
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, repo.Create(s))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSantriCreateDuplicateNIS(t *testing.T) {
	repo, mock := newTestSantriRepository(t)
	s := sampleSantri()

	mock.ExpectExec(`INSERT INTO santri`).
		WillReturnError(&pq.Error{Code: "23505", Constraint: "santri_nis_key"})

	err := repo.Create(s)
	require.ErrorIs(t, err, ErrDuplicate)
	require.NoError(t, mock.ExpectationsWereMet())
}

func santriRows(santri ...*model.Santri) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{
		"id", "nis", "nama", "kelas", "asrama", "kobong", "gender",
		"alamat", "kabupaten", "aktif", "created_at", "updated_at",
	})
	for _, s := range santri {
		rows.AddRow(s.ID.String(), s.NIS, s.Nama, s.Kelas, s.Asrama, s.Kobong, s.Gender,
			nil, nil, s.Aktif, s.CreatedAt, s.UpdatedAt)
	}
	return rows
}

func TestSantriListNoFilters(t *testing.T) {
	repo, mock := newTestSantriRepository(t)
	s := sampleSantri()

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM santri`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(`FROM santri ORDER BY nama LIMIT \$1 OFFSET \$2`).
		WithArgs(20, 0).
		WillReturnRows(santriRows(s))

	items, total, err := repo.List(&model.SantriFilter{Page: 1, PageSize: 20})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, items, 1)
	assert.Equal(t, "Ahmad Fauzi", items[0].Nama)
	assert.Nil(t, items[0].Alamat)
	require.NoError(t, mock.ExpectationsWereMet())
}

// The free-text filter matches either nama or nis with one bound pattern.
func TestSantriListSearchAndGender(t *testing.T) {
	repo, mock := newTestSantriRepository(t)
	s := sampleSantri()

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM santri WHERE \(nama ILIKE \$1 OR nis ILIKE \$1\) AND gender = \$2`).
		WithArgs("%fauzi%", "Putra").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(`WHERE \(nama ILIKE \$1 OR nis ILIKE \$1\) AND gender = \$2 ORDER BY nama LIMIT \$3 OFFSET \$4`).
		WithArgs("%fauzi%", "Putra", 10, 10).
		WillReturnRows(santriRows(s))

	items, total, err := repo.List(&model.SantriFilter{
		Q:        "fauzi",
		Gender:   "Putra",
		Page:     2,
		PageSize: 10,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, items, 1)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSantriCountActive(t *testing.T) {
	repo, mock := newTestSantriRepository(t)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM santri WHERE aktif = TRUE`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(42))

	count, err := repo.CountActive()
	require.NoError(t, err)
	assert.Equal(t, 42, count)
}

func TestSantriFindIDs(t *testing.T) {
	repo, mock := newTestSantriRepository(t)

	mock.ExpectQuery(`SELECT id FROM santri WHERE gender = \$1 AND kelas = \$2`).
		WithArgs("Putri", "2B").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("id-1").AddRow("id-2"))

	ids, err := repo.FindIDs("Putri", "", "2B")
	require.NoError(t, err)
	assert.Equal(t, []string{"id-1", "id-2"}, ids)
}

// Callers rely on an empty result being a non-nil slice so it can feed an
// ANY(...) clause that matches nothing.
func TestSantriFindIDsEmptyIsNotNil(t *testing.T) {
	repo, mock := newTestSantriRepository(t)

	mock.ExpectQuery(`SELECT id FROM santri WHERE asrama = \$1`).
		WithArgs("Nonexistent").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	ids, err := repo.FindIDs("", "Nonexistent", "")
	require.NoError(t, err)
	require.NotNil(t, ids)
	assert.Empty(t, ids)
}
