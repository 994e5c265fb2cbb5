package analytics

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/tbourn/platform-dashboard/internal/domain"
)

// ComparisonHeader is the header row of the comparison table export.
var ComparisonHeader = []string{
	"Platform", "Operating_System", "Speed_Score", "Accuracy_Score",
	"Maintenance_Score", "Price_Range", "Features",
}

// ExportComparisonCSV writes one row per platform, in the given order.
// Scores use the shortest representation that parses back to the same value.
func ExportComparisonCSV(w io.Writer, platforms []domain.Platform) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(ComparisonHeader); err != nil {
		return fmt.Errorf("csv: write header: %w", err)
	}
	for _, p := range platforms {
		row := []string{
			p.Name,
			p.OperatingSystem,
			formatScore(p.SpeedScore),
			formatScore(p.AccuracyScore),
			formatScore(p.MaintenanceScore),
			p.PriceRange,
			p.Features,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("csv: write row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ParseComparisonCSV reads a comparison export back into platforms. Columns
// are matched by header name, so extra or reordered columns are tolerated;
// Platform is required. SortOrder follows row order.
func ParseComparisonCSV(r io.Reader) ([]domain.Platform, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return []domain.Platform{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("csv: read header: %w", err)
	}
	col := make(map[string]int, len(header))
	for i, h := range header {
		col[strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))] = i
	}
	if _, ok := col["Platform"]; !ok {
		return nil, fmt.Errorf("csv: missing %q column", "Platform")
	}

	get := func(rec []string, name string) string {
		i, ok := col[name]
		if !ok || i >= len(rec) {
			return ""
		}
		return strings.TrimSpace(rec[i])
	}
	score := func(rec []string, name string, line int) (float64, error) {
		s := get(rec, name)
		if s == "" {
			return 0, nil
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, fmt.Errorf("csv: line %d: %s: %w", line, name, err)
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, fmt.Errorf("csv: line %d: %s: %q is not a finite number", line, name, s)
		}
		return v, nil
	}

	out := []domain.Platform{}
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("csv: line %d: %w", line, err)
		}
		name := get(rec, "Platform")
		if name == "" {
			return nil, fmt.Errorf("csv: line %d: empty platform name", line)
		}
		p := domain.Platform{
			Name:            name,
			OperatingSystem: get(rec, "Operating_System"),
			PriceRange:      get(rec, "Price_Range"),
			Features:        get(rec, "Features"),
			SortOrder:       len(out),
		}
		if p.SpeedScore, err = score(rec, "Speed_Score", line); err != nil {
			return nil, err
		}
		if p.AccuracyScore, err = score(rec, "Accuracy_Score", line); err != nil {
			return nil, err
		}
		if p.MaintenanceScore, err = score(rec, "Maintenance_Score", line); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

// ExportFeatureMatrixCSV writes "Platform,<features...>" followed by one row
// of markers per platform.
func ExportFeatureMatrixCSV(w io.Writer, m FeatureMatrix) error {
	cw := csv.NewWriter(w)
	header := append([]string{"Platform"}, m.Features...)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("csv: write header: %w", err)
	}
	for i, name := range m.Platforms {
		row := append([]string{name}, m.Cells[i]...)
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("csv: write row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// CostHeader returns the cost export header for period.
func CostHeader(period Period) []string {
	return []string{
		"Platform",
		fmt.Sprintf("Cost (%s)", period),
		"Monthly Cost",
		"Annual Cost",
		"Potential Annual Savings",
	}
}

// ExportCostCSV writes the report lines with two-decimal amounts.
func ExportCostCSV(w io.Writer, rep CostReport) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(CostHeader(rep.Period)); err != nil {
		return fmt.Errorf("csv: write header: %w", err)
	}
	for _, l := range rep.Lines {
		row := []string{
			l.Platform,
			formatAmount(l.Selected),
			formatAmount(l.Monthly),
			formatAmount(l.Annual),
			formatAmount(l.AnnualSavings),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("csv: write row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func formatScore(v float64) string  { return strconv.FormatFloat(v, 'f', -1, 64) }
func formatAmount(v float64) string { return strconv.FormatFloat(v, 'f', 2, 64) }
