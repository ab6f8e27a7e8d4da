package service

import (
	"time"

	"bendahara-api/internal/model"
	"bendahara-api/internal/repository"

	"github.com/google/uuid"
)

type TransaksiService struct {
	transaksiRepo *repository.TransaksiRepository
}

func NewTransaksiService(transaksiRepo *repository.TransaksiRepository) *TransaksiService {
	return &TransaksiService{transaksiRepo: transaksiRepo}
}

func (s *TransaksiService) Create(req *model.CreateTransaksiRequest) (*model.Transaksi, error) {
	tanggal, err := parseDate(req.Tanggal)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	transaksi := &model.Transaksi{
		ID:         uuid.New(),
		SantriID:   req.SantriID,
		Jenis:      req.Jenis,
		Nominal:    req.Nominal,
		Tanggal:    tanggal,
		Keterangan: req.Keterangan,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.transaksiRepo.Create(transaksi); err != nil {
		return nil, err
	}
	return transaksi, nil
}

func (s *TransaksiService) List(filter *model.TransaksiFilter, tahun, bulan *int) (*model.ListResponse, error) {
	filter.Start, filter.End = TanggalRange(tahun, bulan)

	items, total, err := s.transaksiRepo.List(filter)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []model.Transaksi{}
	}
	return &model.ListResponse{
		Items:    items,
		Page:     filter.Page,
		PageSize: filter.PageSize,
		Total:    total,
	}, nil
}
