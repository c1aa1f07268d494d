package config

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/windward-offshore/windward-go/internal/domain/weather"
)

// LoadWeather reads a weather time series from a CSV file with columns
// hour, waveheight, windspeed and an optional header row. Rows must be in
// ascending hour order.
func LoadWeather(path string) (*weather.Oracle, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open weather file: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = 3

	var samples []weather.Sample
	line := 0
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read weather file: %w", err)
		}
		line++

		hour, err := strconv.ParseFloat(record[0], 64)
		if err != nil {
			if line == 1 {
				// Header row
				continue
			}
			return nil, fmt.Errorf("weather file line %d: bad hour %q", line, record[0])
		}
		wave, err := strconv.ParseFloat(record[1], 64)
		if err != nil {
			return nil, fmt.Errorf("weather file line %d: bad waveheight %q", line, record[1])
		}
		wind, err := strconv.ParseFloat(record[2], 64)
		if err != nil {
			return nil, fmt.Errorf("weather file line %d: bad windspeed %q", line, record[2])
		}

		samples = append(samples, weather.Sample{Hour: hour, WaveHeight: wave, WindSpeed: wind})
	}

	return weather.NewOracle(samples)
}
