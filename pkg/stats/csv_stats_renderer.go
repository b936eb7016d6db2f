package stats

import (
	"bytes"
	"encoding/csv"
	"strconv"

	log "github.com/sirupsen/logrus"
)

type CsvStatsRendererImpl struct {
}

func NewCsvStatsRenderer() *CsvStatsRendererImpl {
	return &CsvStatsRendererImpl{}
}

// RenderDailyStats renders a per-day series as CSV with a header row and a
// trailing total row.
func (t *CsvStatsRendererImpl) RenderDailyStats(series DailySeries) (string, error) {
	data := make([][]string, 0, len(series.Days)+2)
	data = append(data, []string{"Date", "Duration (" + string(series.Unit) + ")"})

	totalSeconds := 0
	for _, day := range series.Days {
		data = append(data, []string{day.Date, formatValue(day.Value)})
		totalSeconds += day.Seconds
	}
	data = append(data, []string{"Total", formatValue(float64(totalSeconds) / series.Unit.divisor())})

	var b bytes.Buffer
	writer := csv.NewWriter(&b)
	for _, row := range data {
		if err := writer.Write(row); err != nil {
			log.Errorf("Error writing to csv: %v", err)
			return "", err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		log.Errorf("Error writing to csv: %v", err)
		return "", err
	}

	return b.String(), nil
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}
