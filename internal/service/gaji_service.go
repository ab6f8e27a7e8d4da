package service

import (
	"time"

	"bendahara-api/internal/model"
	"bendahara-api/internal/repository"

	"github.com/google/uuid"
)

type GajiService struct {
	gajiRepo    *repository.GajiRepository
	pegawaiRepo *repository.PegawaiRepository
}

func NewGajiService(gajiRepo *repository.GajiRepository, pegawaiRepo *repository.PegawaiRepository) *GajiService {
	return &GajiService{
		gajiRepo:    gajiRepo,
		pegawaiRepo: pegawaiRepo,
	}
}

func (s *GajiService) Create(req *model.CreateGajiRequest) (*model.GajiPegawai, error) {
	now := time.Now()
	gaji := &model.GajiPegawai{
		ID:          uuid.New(),
		PegawaiID:   req.PegawaiID,
		Bulan:       req.Bulan,
		Tahun:       req.Tahun,
		GajiPokok:   req.GajiPokok,
		Tunjangan:   req.Tunjangan,
		Potongan:    req.Potongan,
		TotalBersih: req.TotalBersih,
		Status:      model.GajiBelum,
		Keterangan:  req.Keterangan,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if req.Status != "" {
		gaji.Status = req.Status
	}
	if req.TanggalBayar != nil {
		t, err := parseDate(*req.TanggalBayar)
		if err != nil {
			return nil, err
		}
		gaji.TanggalBayar = &t
	}

	if err := s.gajiRepo.Create(gaji); err != nil {
		return nil, err
	}
	return gaji, nil
}

// List returns payroll rows. Department/role filters resolve to a pegawai id
// set first; an empty set matches nothing.
func (s *GajiService) List(filter *model.GajiFilter, department, role string) (*model.ListResponse, error) {
	if department != "" || role != "" {
		ids, err := s.pegawaiRepo.FindIDs(department, role)
		if err != nil {
			return nil, err
		}
		filter.PegawaiIDs = ids
	}

	items, total, err := s.gajiRepo.List(filter)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []model.GajiPegawai{}
	}
	return &model.ListResponse{
		Items:    items,
		Page:     filter.Page,
		PageSize: filter.PageSize,
		Total:    total,
	}, nil
}
