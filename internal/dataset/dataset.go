// Package dataset reads point sets from comma-separated text: one point per
// line, every field a real number, no header.
package dataset

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

var (
	// ErrNoPoints is returned when the input holds no data lines.
	ErrNoPoints = errors.New("dataset: no points")

	// ErrFieldCount is returned when a line's field count differs from the first line's.
	ErrFieldCount = errors.New("dataset: inconsistent number of fields")

	// ErrInvalidValue is returned when a field is not a finite real number.
	ErrInvalidValue = errors.New("dataset: invalid value")
)

// Load parses every line of r as one point. Blank lines are skipped and
// leading spaces in a field are ignored. All lines must carry the same
// number of fields as the first.
func Load(r io.Reader) ([][]float64, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.ReuseRecord = true

	var points [][]float64
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			var pe *csv.ParseError
			if errors.As(err, &pe) && errors.Is(pe.Err, csv.ErrFieldCount) {
				return nil, fmt.Errorf("%w: line %d has %d fields, want %d",
					ErrFieldCount, pe.Line, len(record), cr.FieldsPerRecord)
			}
			return nil, fmt.Errorf("dataset: %w", err)
		}

		point := make([]float64, len(record))
		for j, field := range record {
			x, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if err != nil || math.IsNaN(x) || math.IsInf(x, 0) {
				line, col := cr.FieldPos(j)
				return nil, fmt.Errorf("%w: line %d, column %d: %q", ErrInvalidValue, line, col, field)
			}
			point[j] = x
		}
		points = append(points, point)
	}

	if len(points) == 0 {
		return nil, ErrNoPoints
	}
	return points, nil
}

// LoadFile opens path and parses it with Load.
func LoadFile(path string) ([][]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	points, err := Load(bufio.NewReader(f))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return points, nil
}
