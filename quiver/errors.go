package quiver

import (
	"errors"
	"fmt"
)

// ErrInvalidShape is matched by every *InvalidShapeError via errors.Is.
var ErrInvalidShape = errors.New("invalid shape")

// ErrNonFinite is returned for a matrix entry that is NaN or infinite.
var ErrNonFinite = errors.New("matrix entries must be finite")

// AnyCols marks an InvalidShapeError whose column count is unconstrained.
const AnyCols = -1

// InvalidShapeError reports an operand whose dimensions do not fit the
// operation. Rows and Cols are the actual dimensions; WantRows and WantCols
// the expected ones.
type InvalidShapeError struct {
	Operand    string
	Rows, Cols int
	WantRows   int
	WantCols   int
	Reason     string
}

func (e *InvalidShapeError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("%s: %s", e.Operand, e.Reason)
	}
	want := fmt.Sprintf("(%d,%d)", e.WantRows, e.WantCols)
	if e.WantCols == AnyCols {
		want = fmt.Sprintf("(%d,N) with N >= 1", e.WantRows)
	}
	return fmt.Sprintf("%s has shape (%d,%d), want %s", e.Operand, e.Rows, e.Cols, want)
}

func (e *InvalidShapeError) Is(target error) bool {
	return target == ErrInvalidShape
}

// CheckVectors verifies that m holds 2D column vectors: 2 rows, at least one column.
func CheckVectors(name string, m *Matrix) error {
	if m == nil {
		return &InvalidShapeError{Operand: name, Reason: "matrix is nil"}
	}
	r, c := m.Dims()
	if r != 2 || c < 1 {
		return &InvalidShapeError{Operand: name, Rows: r, Cols: c, WantRows: 2, WantCols: AnyCols}
	}
	return nil
}

// CheckTransform verifies that t is a 2x2 linear map.
func CheckTransform(name string, t *Matrix) error {
	if t == nil {
		return &InvalidShapeError{Operand: name, Reason: "matrix is nil"}
	}
	r, c := t.Dims()
	if r != 2 || c != 2 {
		return &InvalidShapeError{Operand: name, Rows: r, Cols: c, WantRows: 2, WantCols: 2}
	}
	return nil
}
