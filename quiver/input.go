package quiver

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ParseMatrix reads a matrix literal such as "3,1; 4,0". Rows are separated
// by semicolons, entries by commas and/or whitespace.
func ParseMatrix(s string) (*Matrix, error) {
	var rows [][]float64
	s = strings.TrimSuffix(strings.TrimSpace(s), ";")
	for i, line := range strings.Split(s, ";") {
		fields := strings.FieldsFunc(line, func(r rune) bool {
			return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
		})
		if len(fields) == 0 {
			return nil, &InvalidShapeError{Operand: "matrix", Reason: fmt.Sprintf("row %d is empty", i)}
		}
		row := make([]float64, len(fields))
		for j, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, fmt.Errorf("matrix entry (%d,%d): %w", i, j, err)
			}
			row[j] = v
		}
		rows = append(rows, row)
	}
	return NewMatrix(rows)
}

// Input is the JSON form accepted by ReadInput.
type Input struct {
	Matrix    [][]float64 `json:"matrix"`
	Transform [][]float64 `json:"transform,omitempty"`
}

// ReadInput decodes an Input document. Transform is nil when the document
// has none.
func ReadInput(r io.Reader) (m, t *Matrix, err error) {
	var in Input
	if err := json.NewDecoder(r).Decode(&in); err != nil {
		return nil, nil, fmt.Errorf("decoding input: %w", err)
	}
	if m, err = NewMatrix(in.Matrix); err != nil {
		return nil, nil, err
	}
	if in.Transform == nil {
		return m, nil, nil
	}
	if t, err = NewMatrix(in.Transform); err != nil {
		return nil, nil, fmt.Errorf("transform: %w", err)
	}
	return m, t, nil
}
