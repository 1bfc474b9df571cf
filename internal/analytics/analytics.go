// Package analytics computes summary statistics over an uploaded tabular file.
package analytics

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"time"
)

const salaryBins = 10

var ageEdges = []float64{20, 30, 40, 50, 60}

// Series is one chart-ready distribution: bin labels with row counts.
type Series struct {
	Labels []string `json:"labels"`
	Values []int    `json:"values"`
}

// YearSeries is a per-year trend. Labels are calendar years.
type YearSeries struct {
	Labels []int `json:"labels"`
	Values []int `json:"values"`
}

// Summary holds all computed distributions for one uploaded file.
type Summary struct {
	SalaryDistribution Series     `json:"salary_distribution"`
	AgeDistribution    Series     `json:"age_distribution"`
	JoiningTrend       YearSeries `json:"joining_trend"`
}

// ReadCSV parses the whole file. Ragged rows and malformed quoting surface as
// parse errors, not a partial result.
func ReadCSV(r io.Reader) ([][]string, error) {
	records, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, err
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("file is empty")
	}

	return records, nil
}

// Summarize computes the salary and age distributions and the joining trend.
// The first record is the header; "Salary", "Age" and "Joining Date" columns
// are required.
func Summarize(records [][]string) (*Summary, error) {
	salaries, err := numericColumn(records, "Salary")
	if err != nil {
		return nil, err
	}

	ages, err := numericColumn(records, "Age")
	if err != nil {
		return nil, err
	}

	years, err := yearColumn(records, "Joining Date")
	if err != nil {
		return nil, err
	}

	return &Summary{
		SalaryDistribution: equalWidthBins(salaries, salaryBins),
		AgeDistribution:    fixedBins(ages, ageEdges),
		JoiningTrend:       yearCounts(years),
	}, nil
}

func columnIndex(header []string, name string) (int, error) {
	for i, h := range header {
		if strings.TrimSpace(h) == name {
			return i, nil
		}
	}
	return 0, fmt.Errorf("column %q not found", name)
}

func numericColumn(records [][]string, name string) ([]float64, error) {
	idx, err := columnIndex(records[0], name)
	if err != nil {
		return nil, err
	}

	if len(records) < 2 {
		return nil, fmt.Errorf("column %q has no data rows", name)
	}

	values := make([]float64, 0, len(records)-1)

	for _, row := range records[1:] {
		v, err := strconv.ParseFloat(strings.TrimSpace(row[idx]), 64)
		if err != nil {
			return nil, fmt.Errorf("column %q: non-numeric value %q", name, row[idx])
		}
		values = append(values, v)
	}

	return values, nil
}

// dateLayouts are tried in order for "Joining Date" values.
var dateLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"01/02/2006",
	"2006-01-02 15:04:05",
	time.RFC3339,
}

func yearColumn(records [][]string, name string) ([]int, error) {
	idx, err := columnIndex(records[0], name)
	if err != nil {
		return nil, err
	}

	years := make([]int, 0, len(records)-1)

	for _, row := range records[1:] {
		raw := strings.TrimSpace(row[idx])

		var parsed time.Time
		var ok bool

		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, raw); err == nil {
				parsed, ok = t, true
				break
			}
		}

		if !ok {
			return nil, fmt.Errorf("column %q: unparsable date %q", name, raw)
		}

		years = append(years, parsed.Year())
	}

	return years, nil
}

// equalWidthBins partitions values into n equal-width bins spanning the
// observed min and max. The final bin is right-inclusive so the maximum value
// is counted. A constant column is widened by half a unit on each side so the
// width is never zero.
func equalWidthBins(values []float64, n int) Series {
	lo, hi := values[0], values[0]
	for _, v := range values {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}

	if lo == hi {
		lo -= 0.5
		hi += 0.5
	}

	width := (hi - lo) / float64(n)
	counts := make([]int, n)

	for _, v := range values {
		idx := int((v - lo) / width)
		if idx >= n {
			idx = n - 1
		}
		counts[idx]++
	}

	labels := make([]string, n)
	for i := range labels {
		labels[i] = binLabel(lo+width*float64(i), lo+width*float64(i+1))
	}

	return Series{Labels: labels, Values: counts}
}

// fixedBins counts values into left-open, right-closed intervals over the
// given edges. Values outside the outermost edges are excluded entirely.
func fixedBins(values []float64, edges []float64) Series {
	n := len(edges) - 1
	counts := make([]int, n)

	for _, v := range values {
		for i := 0; i < n; i++ {
			if v > edges[i] && v <= edges[i+1] {
				counts[i]++
				break
			}
		}
	}

	labels := make([]string, n)
	for i := range labels {
		labels[i] = binLabel(edges[i], edges[i+1])
	}

	return Series{Labels: labels, Values: counts}
}

func binLabel(lo, hi float64) string {
	return fmt.Sprintf("%d-%d", int(lo), int(hi))
}

func yearCounts(years []int) YearSeries {
	counts := make(map[int]int)
	for _, y := range years {
		counts[y]++
	}

	labels := make([]int, 0, len(counts))
	for y := range counts {
		labels = append(labels, y)
	}
	sort.Ints(labels)

	values := make([]int, len(labels))
	for i, y := range labels {
		values[i] = counts[y]
	}

	return YearSeries{Labels: labels, Values: values}
}
