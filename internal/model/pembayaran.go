package model

import (
	"time"

	"github.com/google/uuid"
)

type PembayaranStatus string

const (
	PembayaranLunas PembayaranStatus = "Lunas"
	PembayaranBelum PembayaranStatus = "Belum"
)

type PembayaranSyariah struct {
	ID         uuid.UUID        `json:"id"`
	SantriID   string           `json:"santri_id"`
	Tanggal    time.Time        `json:"tanggal"`
	Bulan      string           `json:"bulan"`
	Tahun      int              `json:"tahun"`
	Nominal    float64          `json:"nominal"`
	Status     PembayaranStatus `json:"status"`
	Keterangan *string          `json:"keterangan,omitempty"`
	CreatedAt  time.Time        `json:"created_at"`
	UpdatedAt  time.Time        `json:"updated_at"`
}

type CreatePembayaranRequest struct {
	SantriID   string           `json:"santri_id" binding:"required"`
	Tanggal    string           `json:"tanggal" binding:"required,datetime=2006-01-02"`
	Bulan      string           `json:"bulan" binding:"required"`
	Tahun      int              `json:"tahun" binding:"required"`
	Nominal    float64          `json:"nominal" binding:"required,gte=0"`
	Status     PembayaranStatus `json:"status" binding:"required,oneof=Lunas Belum"`
	Keterangan *string          `json:"keterangan"`
}

type PembayaranFilter struct {
	SantriID string
	Tahun    *int
	Bulan    string
	Status   string
	// SantriIDs restricts results to payments whose santri_id is in the set.
	// A non-nil empty slice matches nothing.
	SantriIDs []string
	Page      int
	PageSize  int
}

// Indonesian month names, indexed 1..12 by MonthName.
var bulanNames = [...]string{
	"Januari", "Februari", "Maret", "April", "Mei", "Juni",
	"Juli", "Agustus", "September", "Oktober", "November", "Desember",
}

// MonthName maps a month number to the Indonesian name used by the bulan
// column on pembayaran_syariah. Out-of-range input yields an empty string.
func MonthName(m int) string {
	if m < 1 || m > 12 {
		return ""
	}
	return bulanNames[m-1]
}
