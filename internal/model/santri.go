package model

import (
	"time"

	"github.com/google/uuid"
)

type Gender string

const (
	GenderPutra Gender = "Putra"
	GenderPutri Gender = "Putri"
)

type Santri struct {
	ID        uuid.UUID `json:"id"`
	NIS       string    `json:"nis"`
	Nama      string    `json:"nama"`
	Kelas     string    `json:"kelas"`
	Asrama    string    `json:"asrama"`
	Kobong    string    `json:"kobong"`
	Gender    Gender    `json:"gender"`
	Alamat    *string   `json:"alamat,omitempty"`
	Kabupaten *string   `json:"kabupaten,omitempty"`
	Aktif     bool      `json:"aktif"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CreateSantriRequest struct {
	NIS       string  `json:"nis" binding:"required"`
	Nama      string  `json:"nama" binding:"required"`
	Kelas     string  `json:"kelas" binding:"required"`
	Asrama    string  `json:"asrama" binding:"required"`
	Kobong    string  `json:"kobong" binding:"required"`
	Gender    Gender  `json:"gender" binding:"required,oneof=Putra Putri"`
	Alamat    *string `json:"alamat"`
	Kabupaten *string `json:"kabupaten"`
	Aktif     *bool   `json:"aktif"`
}

type SantriFilter struct {
	Q         string
	Kelas     string
	Asrama    string
	Kobong    string
	Gender    string
	Kabupaten string
	Aktif     *bool
	Page      int
	PageSize  int
}
