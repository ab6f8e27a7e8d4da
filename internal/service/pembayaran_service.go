package service

import (
	"time"

	"bendahara-api/internal/model"
	"bendahara-api/internal/repository"

	"github.com/google/uuid"
)

type PembayaranService struct {
	pembayaranRepo *repository.PembayaranRepository
}

func NewPembayaranService(pembayaranRepo *repository.PembayaranRepository) *PembayaranService {
	return &PembayaranService{pembayaranRepo: pembayaranRepo}
}

// Create persists a syariah payment. The santri_id reference is deliberately
// not checked against the santri table; a payment may point at a santri that
// no longer exists.
func (s *PembayaranService) Create(req *model.CreatePembayaranRequest) (*model.PembayaranSyariah, error) {
	tanggal, err := parseDate(req.Tanggal)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	pembayaran := &model.PembayaranSyariah{
		ID:         uuid.New(),
		SantriID:   req.SantriID,
		Tanggal:    tanggal,
		Bulan:      req.Bulan,
		Tahun:      req.Tahun,
		Nominal:    req.Nominal,
		Status:     req.Status,
		Keterangan: req.Keterangan,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.pembayaranRepo.Create(pembayaran); err != nil {
		return nil, err
	}
	return pembayaran, nil
}

func (s *PembayaranService) List(filter *model.PembayaranFilter) (*model.ListResponse, error) {
	items, total, err := s.pembayaranRepo.List(filter)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []model.PembayaranSyariah{}
	}
	return &model.ListResponse{
		Items:    items,
		Page:     filter.Page,
		PageSize: filter.PageSize,
		Total:    total,
	}, nil
}
