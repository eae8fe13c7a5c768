package labels

// Matrix is a dense row-major matrix, one row per sample.
type Matrix struct {
	Rows int
	Cols int
	Data []float64
}

// NewMatrix returns a zeroed rows x cols matrix.
func NewMatrix(rows, cols int) Matrix {
	return Matrix{Rows: rows, Cols: cols, Data: make([]float64, rows*cols)}
}

// FromRows copies rows into a Matrix. All rows must have the same length.
func FromRows(rows [][]float64) (Matrix, error) {
	if len(rows) == 0 {
		return Matrix{}, nil
	}
	cols := len(rows[0])
	m := NewMatrix(len(rows), cols)
	for i, r := range rows {
		if len(r) != cols {
			return Matrix{}, &ErrShape{Rows: len(rows), Cols: cols, Reason: "ragged rows"}
		}
		copy(m.Row(i), r)
	}
	return m, nil
}

// Row returns row i as a slice aliasing the matrix data.
func (m Matrix) Row(i int) []float64 {
	return m.Data[i*m.Cols : (i+1)*m.Cols]
}

// At returns the element at row i, column j.
func (m Matrix) At(i, j int) float64 {
	return m.Data[i*m.Cols+j]
}

// Set sets the element at row i, column j.
func (m Matrix) Set(i, j int, v float64) {
	m.Data[i*m.Cols+j] = v
}

// ToRows copies the matrix into a slice of rows.
func (m Matrix) ToRows() [][]float64 {
	out := make([][]float64, m.Rows)
	for i := range out {
		out[i] = append([]float64(nil), m.Row(i)...)
	}
	return out
}

func (m Matrix) valid() bool {
	return m.Rows >= 0 && m.Cols >= 0 && len(m.Data) == m.Rows*m.Cols
}
