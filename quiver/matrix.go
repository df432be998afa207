package quiver

import (
	"fmt"
	"math"

	log "github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r2"
)

// Matrix is an immutable dense matrix. Rendering functions expect a 2xN
// matrix of column vectors or a 2x2 transform, but any rectangular shape can
// be constructed so that callers get an InvalidShapeError instead of a panic.
type Matrix struct {
	d *mat.Dense
}

// NewMatrix copies rows into a new Matrix. All rows must have the same,
// non-zero length and every entry must be finite.
func NewMatrix(rows [][]float64) (*Matrix, error) {
	if len(rows) == 0 {
		return nil, &InvalidShapeError{Operand: "matrix", Reason: "no rows"}
	}
	cols := len(rows[0])
	if cols == 0 {
		return nil, &InvalidShapeError{Operand: "matrix", Rows: len(rows), Reason: "no columns"}
	}
	data := make([]float64, 0, len(rows)*cols)
	for i, row := range rows {
		if len(row) != cols {
			return nil, &InvalidShapeError{
				Operand: "matrix",
				Rows:    len(rows),
				Cols:    cols,
				Reason:  fmt.Sprintf("row %d has %d entries, row 0 has %d", i, len(row), cols),
			}
		}
		for j, v := range row {
			if err := checkFinite(i, j, v); err != nil {
				return nil, err
			}
		}
		data = append(data, row...)
	}
	return &Matrix{mat.NewDense(len(rows), cols, data)}, nil
}

// MustMatrix is like NewMatrix but panics on a malformed literal.
func MustMatrix(rows [][]float64) *Matrix {
	m, err := NewMatrix(rows)
	if err != nil {
		panic(err)
	}
	return m
}

// FromColumns builds a 2xN matrix out of N vectors.
func FromColumns(vs ...r2.Vec) (*Matrix, error) {
	if len(vs) == 0 {
		return nil, &InvalidShapeError{Operand: "matrix", Rows: 2, Reason: "no columns"}
	}
	d := mat.NewDense(2, len(vs), nil)
	for j, v := range vs {
		if err := checkFinite(0, j, v.X); err != nil {
			return nil, err
		}
		if err := checkFinite(1, j, v.Y); err != nil {
			return nil, err
		}
		d.Set(0, j, v.X)
		d.Set(1, j, v.Y)
	}
	return &Matrix{d}, nil
}

func checkFinite(i, j int, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%w: entry (%d,%d) is %v", ErrNonFinite, i, j, v)
	}
	return nil
}

func (m *Matrix) Dims() (r, c int) {
	return m.d.Dims()
}

func (m *Matrix) At(i, j int) float64 {
	return m.d.At(i, j)
}

// Row returns a copy of row i.
func (m *Matrix) Row(i int) []float64 {
	return mat.Row(nil, i, m.d)
}

// Column returns column j of a 2-row matrix as a vector.
func (m *Matrix) Column(j int) r2.Vec {
	return r2.Vec{X: m.d.At(0, j), Y: m.d.At(1, j)}
}

// Columns returns every column of a 2-row matrix.
func (m *Matrix) Columns() []r2.Vec {
	_, c := m.d.Dims()
	vs := make([]r2.Vec, c)
	for j := range vs {
		vs[j] = m.Column(j)
	}
	return vs
}

// Rows returns a copy of the matrix contents, row-major.
func (m *Matrix) Rows() [][]float64 {
	r, _ := m.d.Dims()
	rows := make([][]float64, r)
	for i := range rows {
		rows[i] = m.Row(i)
	}
	return rows
}

// Equal reports whether m and o have the same shape and entries.
func (m *Matrix) Equal(o *Matrix) bool {
	return mat.Equal(m.d, o.d)
}

func (m *Matrix) String() string {
	return fmt.Sprintf("%v", mat.Formatted(m.d, mat.Squeeze()))
}

// Transform returns t·m, the image of every column of m under t.
func Transform(t, m *Matrix) (*Matrix, error) {
	if err := CheckTransform("transform", t); err != nil {
		return nil, err
	}
	if err := CheckVectors("matrix", m); err != nil {
		return nil, err
	}
	var res mat.Dense
	res.Mul(t.d, m.d)
	log.Tracef("Transformed:\n%v\n", mat.Formatted(&res))
	return &Matrix{&res}, nil
}
