package model

import (
	"time"

	"github.com/google/uuid"
)

type Pegawai struct {
	ID               uuid.UUID  `json:"id"`
	NIP              *string    `json:"nip,omitempty"`
	Nama             string     `json:"nama"`
	Role             string     `json:"role"`
	Department       string     `json:"department"`
	Email            *string    `json:"email,omitempty"`
	Telp             *string    `json:"telp,omitempty"`
	Alamat           *string    `json:"alamat,omitempty"`
	TanggalBergabung *time.Time `json:"tanggal_bergabung,omitempty"`
	Aktif            bool       `json:"aktif"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

type CreatePegawaiRequest struct {
	NIP              *string `json:"nip"`
	Nama             string  `json:"nama" binding:"required"`
	Role             string  `json:"role" binding:"required"`
	Department       string  `json:"department" binding:"required"`
	Email            *string `json:"email" binding:"omitempty,email"`
	Telp             *string `json:"telp"`
	Alamat           *string `json:"alamat"`
	TanggalBergabung *string `json:"tanggal_bergabung" binding:"omitempty,datetime=2006-01-02"`
	Aktif            *bool   `json:"aktif"`
}

type PegawaiFilter struct {
	Q          string
	Department string
	Role       string
	Aktif      *bool
	Page       int
	PageSize   int
}
