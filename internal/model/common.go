package model

// ListResponse is the shared paginated list envelope returned by every list
// endpoint.
type ListResponse struct {
	Items    interface{} `json:"items"`
	Page     int         `json:"page"`
	PageSize int         `json:"page_size"`
	Total    int         `json:"total"`
}

// SummaryFilter carries the optional /summary query parameters.
type SummaryFilter struct {
	Tahun  *int
	Bulan  *int
	Asrama string
	Kelas  string
	Gender string
}

// SummaryReport is the dashboard aggregation result. Note that pemasukan and
// pengeluaran totals are computed over all transaksi regardless of the
// tahun/bulan filters; see SummaryService.Summarize.
type SummaryReport struct {
	TotalSantriAktif       int     `json:"total_santri_aktif"`
	TotalPemasukan         float64 `json:"total_pemasukan"`
	TotalPengeluaran       float64 `json:"total_pengeluaran"`
	PembayaranSyariahLunas int     `json:"pembayaran_syariah_lunas"`
	PembayaranSyariahBelum int     `json:"pembayaran_syariah_belum"`
	JumlahTunggakan        float64 `json:"jumlah_tunggakan"`
	TotalGajiBulanIni      float64 `json:"total_gaji_bulan_ini"`
	TotalGajiTertunda      float64 `json:"total_gaji_tertunda"`
}
