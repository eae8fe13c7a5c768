package labels

// ToCategorical converts class ids to a one-hot matrix with numClasses
// columns.
func ToCategorical(ids []int, numClasses int) (Matrix, error) {
	if numClasses <= 0 {
		return Matrix{}, &ErrShape{Rows: len(ids), Cols: numClasses, Reason: "num classes must be positive"}
	}
	if err := checkRange(ids, numClasses); err != nil {
		return Matrix{}, err
	}
	m := NewMatrix(len(ids), numClasses)
	for i, id := range ids {
		m.Set(i, id, 1)
	}
	return m, nil
}

// Argmax returns the column of the first maximum of every row.
// Rows of a matrix without columns map to 0.
func Argmax(m Matrix) []int {
	out := make([]int, m.Rows)
	if m.Cols == 0 {
		return out
	}
	for i := range out {
		row := m.Row(i)
		best := 0
		for j := 1; j < len(row); j++ {
			if row[j] > row[best] {
				best = j
			}
		}
		out[i] = best
	}
	return out
}
