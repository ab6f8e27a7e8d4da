package model

import (
	"time"

	"github.com/google/uuid"
)

type GajiStatus string

const (
	GajiDibayar GajiStatus = "Dibayar"
	GajiBelum   GajiStatus = "Belum"
)

type GajiPegawai struct {
	ID           uuid.UUID  `json:"id"`
	PegawaiID    string     `json:"pegawai_id"`
	Bulan        int        `json:"bulan"`
	Tahun        int        `json:"tahun"`
	GajiPokok    float64    `json:"gaji_pokok"`
	Tunjangan    float64    `json:"tunjangan"`
	Potongan     float64    `json:"potongan"`
	TotalBersih  float64    `json:"total_bersih"`
	Status       GajiStatus `json:"status"`
	TanggalBayar *time.Time `json:"tanggal_bayar,omitempty"`
	Keterangan   *string    `json:"keterangan,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

type CreateGajiRequest struct {
	PegawaiID    string     `json:"pegawai_id" binding:"required"`
	Bulan        int        `json:"bulan" binding:"required,min=1,max=12"`
	Tahun        int        `json:"tahun" binding:"required,min=2000,max=2100"`
	GajiPokok    float64    `json:"gaji_pokok" binding:"gte=0"`
	Tunjangan    float64    `json:"tunjangan" binding:"gte=0"`
	Potongan     float64    `json:"potongan" binding:"gte=0"`
	TotalBersih  float64    `json:"total_bersih" binding:"gte=0"`
	Status       GajiStatus `json:"status" binding:"omitempty,oneof=Dibayar Belum"`
	TanggalBayar *string    `json:"tanggal_bayar" binding:"omitempty,datetime=2006-01-02"`
	Keterangan   *string    `json:"keterangan"`
}

type GajiFilter struct {
	PegawaiID string
	Tahun     *int
	Bulan     *int
	Status    string
	// PegawaiIDs restricts results to payroll rows whose pegawai_id is in the
	// set. A non-nil empty slice matches nothing.
	PegawaiIDs []string
	Page       int
	PageSize   int
}
