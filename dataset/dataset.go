// Package dataset reads point sets from comma-separated text and writes
// matrices back in the same format.
//
// Input rules:
//   - one point per line, coordinates separated by commas;
//   - blank lines and lines starting with '#' are skipped;
//   - whitespace around a field is ignored;
//   - every row must have the same number of fields; a single-column file
//     yields n points of dimension 1;
//   - NaN and ±Inf are rejected.
//
// Output rules: one row per line, values comma-joined with exactly four
// decimals ("%.4f").
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

	"github.com/katalvlaran/symnmf/matrix"
)

var (
	// ErrEmpty indicates a file without data rows.
	ErrEmpty = errors.New("dataset: no data rows")

	// ErrRaggedRows indicates rows with different field counts.
	ErrRaggedRows = errors.New("dataset: rows have different lengths")

	// ErrParse indicates a malformed or non-finite field.
	ErrParse = errors.New("dataset: malformed value")
)

// Read parses the file at path; see Parse.
func Read(path string) ([][]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: %w", err)
	}
	defer f.Close()

	points, err := Parse(bufio.NewReader(f))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return points, nil
}

// Parse reads comma-separated numeric rows from r.
func Parse(r io.Reader) ([][]float64, error) {
	reader := csv.NewReader(r)
	reader.Comment = '#'
	reader.FieldsPerRecord = -1 // checked below to report ErrRaggedRows
	reader.TrimLeadingSpace = true
	reader.ReuseRecord = true

	var points [][]float64
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrParse, err)
		}
		line, _ := reader.FieldPos(0)
		if len(points) > 0 && len(record) != len(points[0]) {
			return nil, fmt.Errorf("line %d has %d fields, want %d: %w", line, len(record), len(points[0]), ErrRaggedRows)
		}

		point := make([]float64, len(record))
		for j, field := range record {
			v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if err != nil {
				return nil, fmt.Errorf("line %d field %d %q: %w", line, j+1, field, ErrParse)
			}
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("line %d field %d: non-finite %q: %w", line, j+1, field, ErrParse)
			}
			point[j] = v
		}
		points = append(points, point)
	}
	if len(points) == 0 {
		return nil, ErrEmpty
	}

	return points, nil
}

// Format writes m to w, one row per line, values as "%.4f" joined by commas.
func Format(w io.Writer, m matrix.Matrix) error {
	if err := matrix.ValidateNotNil(m); err != nil {
		return fmt.Errorf("dataset: Format: %w", err)
	}
	bw := bufio.NewWriter(w)
	buf := make([]byte, 0, 16*m.Cols())
	var v float64
	for i := 0; i < m.Rows(); i++ {
		buf = buf[:0]
		for j := 0; j < m.Cols(); j++ {
			if j > 0 {
				buf = append(buf, ',')
			}
			v, _ = m.At(i, j)
			buf = strconv.AppendFloat(buf, v, 'f', 4, 64)
		}
		buf = append(buf, '\n')
		if _, err := bw.Write(buf); err != nil {
			return fmt.Errorf("dataset: Format: %w", err)
		}
	}

	return bw.Flush()
}
