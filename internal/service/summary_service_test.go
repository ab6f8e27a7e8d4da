package service

import (
	"database/sql/driver"
	"testing"

	"bendahara-api/internal/model"
	"bendahara-api/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSummaryService(t *testing.T) (*SummaryService, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	svc := NewSummaryService(
		repository.NewSantriRepository(db),
		repository.NewPembayaranRepository(db),
		repository.NewGajiRepository(db),
		repository.NewTransaksiRepository(db),
	)
	return svc, mock
}

func expectCountActive(mock sqlmock.Sqlmock, count int) {
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM santri WHERE aktif = TRUE`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(count))
}

func expectSumByJenis(mock sqlmock.Sqlmock, jenis string, sum float64) {
	mock.ExpectQuery(`SELECT COALESCE\(SUM\(nominal\), 0\) FROM transaksi WHERE jenis = \$1`).
		WithArgs(jenis).
		WillReturnRows(sqlmock.NewRows([]string{"sum"}).AddRow(sum))
}

func expectPembayaranSummary(mock sqlmock.Sqlmock, lunas, belum int, tunggakan float64, args ...driver.Value) {
	e := mock.ExpectQuery(`FROM pembayaran_syariah`)
	if len(args) > 0 {
		e.WithArgs(args...)
	}
	e.WillReturnRows(sqlmock.NewRows([]string{"lunas", "belum", "tunggakan"}).AddRow(lunas, belum, tunggakan))
}

func expectGajiSummary(mock sqlmock.Sqlmock, dibayar, tertunda float64, args ...driver.Value) {
	e := mock.ExpectQuery(`FROM gaji_pegawai`)
	if len(args) > 0 {
		e.WithArgs(args...)
	}
	e.WillReturnRows(sqlmock.NewRows([]string{"dibayar", "tertunda"}).AddRow(dibayar, tertunda))
}

// Income and expense totals ignore the period filters entirely; the rest of
// the report honours them.
func TestSummarizeIncomeExpenseIgnoreFilters(t *testing.T) {
	svc, mock := newTestSummaryService(t)

	tahun, bulan := 2024, 1
	expectCountActive(mock, 3)
	expectSumByJenis(mock, model.JenisPemasukan, 1000000)
	expectSumByJenis(mock, model.JenisPengeluaran, 250000)
	// Pembayaran and gaji reads do receive the period filters.
	expectPembayaranSummary(mock, 0, 0, 0, tahun, "Januari")
	expectGajiSummary(mock, 0, 0, tahun, bulan)

	report, err := svc.Summarize(&model.SummaryFilter{Tahun: &tahun, Bulan: &bulan})
	require.NoError(t, err)

	assert.Equal(t, 3, report.TotalSantriAktif)
	assert.Equal(t, float64(1000000), report.TotalPemasukan)
	assert.Equal(t, float64(250000), report.TotalPengeluaran)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSummarizeNoFilters(t *testing.T) {
	svc, mock := newTestSummaryService(t)

	expectCountActive(mock, 10)
	expectSumByJenis(mock, model.JenisPemasukan, 1000000)
	expectSumByJenis(mock, model.JenisPengeluaran, 250000)
	expectPembayaranSummary(mock, 4, 2, 600000)
	expectGajiSummary(mock, 5000000, 1500000)

	report, err := svc.Summarize(&model.SummaryFilter{})
	require.NoError(t, err)

	assert.Equal(t, &model.SummaryReport{
		TotalSantriAktif:       10,
		TotalPemasukan:         1000000,
		TotalPengeluaran:       250000,
		PembayaranSyariahLunas: 4,
		PembayaranSyariahBelum: 2,
		JumlahTunggakan:        600000,
		TotalGajiBulanIni:      5000000,
		TotalGajiTertunda:      1500000,
	}, report)
	require.NoError(t, mock.ExpectationsWereMet())
}

// A gender filter resolves santri ids first, then partitions that student's
// payments by status.
func TestSummarizeGenderFilterPartition(t *testing.T) {
	svc, mock := newTestSummaryService(t)

	expectCountActive(mock, 5)
	expectSumByJenis(mock, model.JenisPemasukan, 0)
	expectSumByJenis(mock, model.JenisPengeluaran, 0)
	mock.ExpectQuery(`SELECT id FROM santri WHERE gender = \$1`).
		WithArgs("Putri").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("santri-1"))
	expectPembayaranSummary(mock, 1, 1, 300000, pq.Array([]string{"santri-1"}))
	expectGajiSummary(mock, 0, 0)

	report, err := svc.Summarize(&model.SummaryFilter{Gender: "Putri"})
	require.NoError(t, err)

	assert.Equal(t, 1, report.PembayaranSyariahLunas)
	assert.Equal(t, 1, report.PembayaranSyariahBelum)
	assert.Equal(t, float64(300000), report.JumlahTunggakan)
	require.NoError(t, mock.ExpectationsWereMet())
}

// When the attribute filters match no santri, the payment figures must come
// out empty rather than unfiltered.
func TestSummarizeEmptySantriSetMatchesNothing(t *testing.T) {
	svc, mock := newTestSummaryService(t)

	expectCountActive(mock, 5)
	expectSumByJenis(mock, model.JenisPemasukan, 0)
	expectSumByJenis(mock, model.JenisPengeluaran, 0)
	mock.ExpectQuery(`SELECT id FROM santri WHERE asrama = \$1`).
		WithArgs("Nonexistent").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	expectPembayaranSummary(mock, 0, 0, 0, pq.Array([]string{}))
	expectGajiSummary(mock, 0, 0)

	report, err := svc.Summarize(&model.SummaryFilter{Asrama: "Nonexistent"})
	require.NoError(t, err)

	assert.Equal(t, 0, report.PembayaranSyariahLunas)
	assert.Equal(t, 0, report.PembayaranSyariahBelum)
	assert.Equal(t, float64(0), report.JumlahTunggakan)
	require.NoError(t, mock.ExpectationsWereMet())
}

// Two identical invocations against unchanged storage yield equal reports.
func TestSummarizeIdempotent(t *testing.T) {
	svc, mock := newTestSummaryService(t)

	for i := 0; i < 2; i++ {
		expectCountActive(mock, 7)
		expectSumByJenis(mock, model.JenisPemasukan, 123456)
		expectSumByJenis(mock, model.JenisPengeluaran, 654321)
		expectPembayaranSummary(mock, 2, 3, 900000)
		expectGajiSummary(mock, 400000, 100000)
	}

	first, err := svc.Summarize(&model.SummaryFilter{})
	require.NoError(t, err)
	second, err := svc.Summarize(&model.SummaryFilter{})
	require.NoError(t, err)

	assert.Equal(t, first, second)
	require.NoError(t, mock.ExpectationsWereMet())
}

// Any storage failure aborts the whole report.
func TestSummarizeAbortsOnReadError(t *testing.T) {
	svc, mock := newTestSummaryService(t)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM santri WHERE aktif = TRUE`).
		WillReturnError(assert.AnError)

	_, err := svc.Summarize(&model.SummaryFilter{})
	require.Error(t, err)
}
