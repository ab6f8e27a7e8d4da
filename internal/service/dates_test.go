package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestTanggalRangeNoFilters(t *testing.T) {
	start, end := TanggalRange(nil, nil)
	assert.Nil(t, start)
	assert.Nil(t, end)
}

func TestTanggalRangeYearOnly(t *testing.T) {
	tahun := 2024
	start, end := TanggalRange(&tahun, nil)
	require.NotNil(t, start)
	require.NotNil(t, end)
	assert.Equal(t, date(2024, time.January, 1), *start)
	assert.Equal(t, date(2025, time.January, 1), *end)
}

func TestTanggalRangeYearAndMonth(t *testing.T) {
	tahun, bulan := 2024, 5
	start, end := TanggalRange(&tahun, &bulan)
	assert.Equal(t, date(2024, time.May, 1), *start)
	assert.Equal(t, date(2024, time.June, 1), *end)
}

func TestTanggalRangeDecemberRollsOver(t *testing.T) {
	tahun, bulan := 2024, 12
	start, end := TanggalRange(&tahun, &bulan)
	assert.Equal(t, date(2024, time.December, 1), *start)
	assert.Equal(t, date(2025, time.January, 1), *end)
}

func TestTanggalRangeMonthOnlyUsesFallbackYears(t *testing.T) {
	bulan := 3
	start, end := TanggalRange(nil, &bulan)
	assert.Equal(t, date(2000, time.March, 1), *start)
	assert.Equal(t, date(2100, time.April, 1), *end)
}
