package service

import (
	"time"

	"bendahara-api/internal/model"
	"bendahara-api/internal/repository"

	"github.com/google/uuid"
)

type PegawaiService struct {
	pegawaiRepo *repository.PegawaiRepository
}

func NewPegawaiService(pegawaiRepo *repository.PegawaiRepository) *PegawaiService {
	return &PegawaiService{pegawaiRepo: pegawaiRepo}
}

func (s *PegawaiService) Create(req *model.CreatePegawaiRequest) (*model.Pegawai, error) {
	now := time.Now()
	pegawai := &model.Pegawai{
		ID:         uuid.New(),
		NIP:        req.NIP,
		Nama:       req.Nama,
		Role:       req.Role,
		Department: req.Department,
		Email:      req.Email,
		Telp:       req.Telp,
		Alamat:     req.Alamat,
		Aktif:      true,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if req.TanggalBergabung != nil {
		t, err := parseDate(*req.TanggalBergabung)
		if err != nil {
			return nil, err
		}
		pegawai.TanggalBergabung = &t
	}
	if req.Aktif != nil {
		pegawai.Aktif = *req.Aktif
	}

	if err := s.pegawaiRepo.Create(pegawai); err != nil {
		return nil, err
	}
	return pegawai, nil
}

func (s *PegawaiService) List(filter *model.PegawaiFilter) (*model.ListResponse, error) {
	items, total, err := s.pegawaiRepo.List(filter)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []model.Pegawai{}
	}
	return &model.ListResponse{
		Items:    items,
		Page:     filter.Page,
		PageSize: filter.PageSize,
		Total:    total,
	}, nil
}
