package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	JenisPemasukan   = "pemasukan"
	JenisPengeluaran = "pengeluaran"
)

type Transaksi struct {
	ID         uuid.UUID `json:"id"`
	SantriID   *string   `json:"santri_id,omitempty"`
	Jenis      string    `json:"jenis"`
	Nominal    float64   `json:"nominal"`
	Tanggal    time.Time `json:"tanggal"`
	Keterangan *string   `json:"keterangan,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type CreateTransaksiRequest struct {
	SantriID   *string `json:"santri_id"`
	Jenis      string  `json:"jenis" binding:"required"`
	Nominal    float64 `json:"nominal" binding:"required,gte=0"`
	Tanggal    string  `json:"tanggal" binding:"required,datetime=2006-01-02"`
	Keterangan *string `json:"keterangan"`
}

type TransaksiFilter struct {
	Jenis string
	// Tanggal range [Start, End), derived from tahun/bulan query params.
	Start    *time.Time
	End      *time.Time
	Page     int
	PageSize int
}
