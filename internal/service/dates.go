package service

import "time"

const dateLayout = "2006-01-02"

// parseDate parses a yyyy-mm-dd value. Request binding already validates the
// layout, so errors here indicate a programming mistake rather than bad input.
func parseDate(s string) (time.Time, error) {
	return time.Parse(dateLayout, s)
}

// TanggalRange converts optional tahun/bulan filters into a half-open
// [start, end) date range. With only bulan given the range spans from that
// month in 2000 to the month after it in 2100, so a bare month filter matches
// across years.
func TanggalRange(tahun, bulan *int) (*time.Time, *time.Time) {
	if tahun == nil && bulan == nil {
		return nil, nil
	}

	startYear := 2000
	if tahun != nil {
		startYear = *tahun
	}
	startMonth := 1
	if bulan != nil {
		startMonth = *bulan
	}
	start := time.Date(startYear, time.Month(startMonth), 1, 0, 0, 0, 0, time.UTC)

	endYear := 2100
	if tahun != nil {
		endYear = *tahun
	}

	var end time.Time
	if bulan != nil {
		if *bulan == 12 {
			end = time.Date(endYear+1, time.January, 1, 0, 0, 0, 0, time.UTC)
		} else {
			end = time.Date(endYear, time.Month(*bulan+1), 1, 0, 0, 0, 0, time.UTC)
		}
	} else {
		end = time.Date(endYear+1, time.January, 1, 0, 0, 0, 0, time.UTC)
	}

	return &start, &end
}
