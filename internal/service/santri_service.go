package service

import (
	"errors"
	"time"

	"bendahara-api/internal/model"
	"bendahara-api/internal/repository"

	"github.com/google/uuid"
)

// ErrDuplicateNIS is returned when a santri with the same nis already exists.
// Uniqueness is enforced by the store's unique index, not pre-checked here.
var ErrDuplicateNIS = errors.New("santri with this nis already exists")

type SantriService struct {
	santriRepo *repository.SantriRepository
}

func NewSantriService(santriRepo *repository.SantriRepository) *SantriService {
	return &SantriService{santriRepo: santriRepo}
}

func (s *SantriService) Create(req *model.CreateSantriRequest) (*model.Santri, error) {
	now := time.Now()
	santri := &model.Santri{
		ID:        uuid.New(),
		NIS:       req.NIS,
		Nama:      req.Nama,
		Kelas:     req.Kelas,
		Asrama:    req.Asrama,
		Kobong:    req.Kobong,
		Gender:    req.Gender,
		Alamat:    req.Alamat,
		Kabupaten: req.Kabupaten,
		Aktif:     true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if req.Aktif != nil {
		santri.Aktif = *req.Aktif
	}

	if err := s.santriRepo.Create(santri); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrDuplicateNIS
		}
		return nil, err
	}
	return santri, nil
}

func (s *SantriService) List(filter *model.SantriFilter) (*model.ListResponse, error) {
	items, total, err := s.santriRepo.List(filter)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []model.Santri{}
	}
	return &model.ListResponse{
		Items:    items,
		Page:     filter.Page,
		PageSize: filter.PageSize,
		Total:    total,
	}, nil
}
