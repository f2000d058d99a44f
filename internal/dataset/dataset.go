// Package dataset lee y escribe los tres CSV de datasets/raw:
// recommendation.csv, property_price.csv y tenant_risk.csv.
package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/mohamediliasskaddar/RENTOPIA/internal/models"
)

func LoadRatings(path string) ([]models.RatingDoc, error) {
	rows, err := readCSV(path, 3)
	if err != nil {
		return nil, err
	}

	out := make([]models.RatingDoc, 0, len(rows))
	for _, rec := range rows {
		tenantID, err1 := strconv.Atoi(rec[0])
		propertyID, err2 := strconv.Atoi(rec[1])
		rating, err3 := strconv.ParseFloat(rec[2], 64)
		if err1 != nil || err2 != nil || err3 != nil || rating < 0 || rating > 5 {
			continue // fila corrupta, se descarta
		}
		out = append(out, models.RatingDoc{
			TenantID:   tenantID,
			PropertyID: propertyID,
			Rating:     rating,
		})
	}
	return out, nil
}

func LoadProperties(path string) ([]models.PropertyDoc, error) {
	rows, err := readCSV(path, 8)
	if err != nil {
		return nil, err
	}

	out := make([]models.PropertyDoc, 0, len(rows))
	for _, rec := range rows {
		p := models.PropertyDoc{}
		var errs [8]error
		p.PropertyID, errs[0] = strconv.Atoi(rec[0])
		p.Surface, errs[1] = strconv.ParseFloat(rec[1], 64)
		p.Rooms, errs[2] = strconv.Atoi(rec[2])
		p.AmenitiesCount, errs[3] = strconv.Atoi(rec[3])
		p.AvgRating, errs[4] = strconv.ParseFloat(rec[4], 64)
		p.OccupancyRate, errs[5] = strconv.ParseFloat(rec[5], 64)
		p.PricePerNightEUR, errs[6] = strconv.Atoi(rec[6])
		p.PricePerNightETH, errs[7] = strconv.ParseFloat(rec[7], 64)

		ok := true
		for _, e := range errs {
			if e != nil {
				ok = false
				break
			}
		}
		if ok {
			out = append(out, p)
		}
	}
	return out, nil
}

func LoadTenantRisk(path string) ([]models.TenantRiskDoc, error) {
	rows, err := readCSV(path, 8)
	if err != nil {
		return nil, err
	}

	out := make([]models.TenantRiskDoc, 0, len(rows))
	for _, rec := range rows {
		d := models.TenantRiskDoc{}
		var errs [8]error
		d.TenantID, errs[0] = strconv.Atoi(rec[0])
		d.Income, errs[1] = strconv.ParseFloat(rec[1], 64)
		d.DebtRatio, errs[2] = strconv.ParseFloat(rec[2], 64)
		d.TotalBookings, errs[3] = strconv.Atoi(rec[3])
		d.Cancellations, errs[4] = strconv.Atoi(rec[4])
		d.LateCancellations, errs[5] = strconv.Atoi(rec[5])
		d.AvgRating, errs[6] = strconv.ParseFloat(rec[6], 64)
		d.RiskScore, errs[7] = strconv.Atoi(rec[7])

		ok := true
		for _, e := range errs {
			if e != nil {
				ok = false
				break
			}
		}
		if ok {
			out = append(out, d)
		}
	}
	return out, nil
}

// readCSV devuelve las filas de datos (sin header) con al menos minFields
// columnas.
func readCSV(path string, minFields int) ([][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	var rows [][]string
	first := true
	for {
		rec, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("leyendo %s: %w", path, err)
		}
		if first {
			first = false // header
			continue
		}
		if len(rec) < minFields {
			continue
		}
		rows = append(rows, rec)
	}
	return rows, nil
}

func writeCSV(path string, header []string, rows [][]string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	w := csv.NewWriter(file)
	if err := w.Write(header); err != nil {
		return err
	}
	if err := w.WriteAll(rows); err != nil {
		return err
	}
	w.Flush()
	return w.Error()
}
