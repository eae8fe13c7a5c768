package labels

// LabelConf returns the maximum confidence and its column (first maximum
// wins) for every row of scores.
func LabelConf(scores Matrix) (confs []float64, ids []int, err error) {
	if !scores.valid() {
		return nil, nil, &ErrShape{Rows: scores.Rows, Cols: scores.Cols, Reason: "data length does not match shape"}
	}
	if scores.Rows > 0 && scores.Cols == 0 {
		return nil, nil, &ErrShape{Rows: scores.Rows, Cols: 0, Reason: "no columns"}
	}

	ids = Argmax(scores)
	confs = make([]float64, scores.Rows)
	for i, id := range ids {
		confs[i] = scores.At(i, id)
	}
	return confs, ids, nil
}

// FromConfidences marks the maximal entries of every row. Ties share the
// row's mass evenly: k tied maxima get 1/k each.
func FromConfidences(preds Matrix) (Matrix, error) {
	out, err := MaxIndicator(preds)
	if err != nil {
		return Matrix{}, err
	}
	for i := 0; i < out.Rows; i++ {
		row := out.Row(i)
		var k float64
		for _, v := range row {
			k += v
		}
		if k == 0 {
			continue
		}
		for j := range row {
			row[j] /= k
		}
	}
	return out, nil
}

// MaxIndicator sets 1 on every maximal entry of a row and 0 elsewhere.
// Unlike FromConfidences, tied rows are not normalised.
func MaxIndicator(preds Matrix) (Matrix, error) {
	if !preds.valid() {
		return Matrix{}, &ErrShape{Rows: preds.Rows, Cols: preds.Cols, Reason: "data length does not match shape"}
	}
	out := NewMatrix(preds.Rows, preds.Cols)
	for i := 0; i < preds.Rows; i++ {
		row := preds.Row(i)
		if len(row) == 0 {
			continue
		}
		best := row[0]
		for _, v := range row[1:] {
			if v > best {
				best = v
			}
		}
		dst := out.Row(i)
		for j, v := range row {
			if v == best {
				dst[j] = 1
			}
		}
	}
	return out, nil
}
