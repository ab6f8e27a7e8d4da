package service

import (
	"bendahara-api/internal/model"
	"bendahara-api/internal/repository"
)

type SummaryService struct {
	santriRepo     *repository.SantriRepository
	pembayaranRepo *repository.PembayaranRepository
	gajiRepo       *repository.GajiRepository
	transaksiRepo  *repository.TransaksiRepository
}

func NewSummaryService(
	santriRepo *repository.SantriRepository,
	pembayaranRepo *repository.PembayaranRepository,
	gajiRepo *repository.GajiRepository,
	transaksiRepo *repository.TransaksiRepository,
) *SummaryService {
	return &SummaryService{
		santriRepo:     santriRepo,
		pembayaranRepo: pembayaranRepo,
		gajiRepo:       gajiRepo,
		transaksiRepo:  transaksiRepo,
	}
}

// Summarize folds the dashboard figures out of the five collections. It is a
// pure read; any storage failure aborts the whole report.
//
// The pemasukan/pengeluaran totals ignore the tahun/bulan filters while every
// other figure honours them. Dashboard clients depend on the all-time totals,
// so this asymmetry is load-bearing.
func (s *SummaryService) Summarize(filter *model.SummaryFilter) (*model.SummaryReport, error) {
	totalSantri, err := s.santriRepo.CountActive()
	if err != nil {
		return nil, err
	}

	pemasukan, err := s.transaksiRepo.SumByJenis(model.JenisPemasukan)
	if err != nil {
		return nil, err
	}
	pengeluaran, err := s.transaksiRepo.SumByJenis(model.JenisPengeluaran)
	if err != nil {
		return nil, err
	}

	pembayaranFilter := &model.PembayaranFilter{
		Tahun: filter.Tahun,
	}
	if filter.Bulan != nil {
		pembayaranFilter.Bulan = model.MonthName(*filter.Bulan)
	}

	// Attribute filters apply to payments indirectly: resolve the matching
	// santri ids first, then restrict payments to that set. An empty set
	// must match nothing, not everything.
	if filter.Gender != "" || filter.Asrama != "" || filter.Kelas != "" {
		ids, err := s.santriRepo.FindIDs(filter.Gender, filter.Asrama, filter.Kelas)
		if err != nil {
			return nil, err
		}
		pembayaranFilter.SantriIDs = ids
	}

	lunas, belum, tunggakan, err := s.pembayaranRepo.StatusSummary(pembayaranFilter)
	if err != nil {
		return nil, err
	}

	dibayar, tertunda, err := s.gajiRepo.StatusSummary(filter.Tahun, filter.Bulan)
	if err != nil {
		return nil, err
	}

	return &model.SummaryReport{
		TotalSantriAktif:       totalSantri,
		TotalPemasukan:         pemasukan,
		TotalPengeluaran:       pengeluaran,
		PembayaranSyariahLunas: lunas,
		PembayaranSyariahBelum: belum,
		JumlahTunggakan:        tunggakan,
		TotalGajiBulanIni:      dibayar,
		TotalGajiTertunda:      tertunda,
	}, nil
}
