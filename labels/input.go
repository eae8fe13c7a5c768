package labels

// Kind tags the encoding of a label Input.
type Kind uint8

const (
	// KindScalar is one class id per sample.
	KindScalar Kind = iota
	// KindOneHot is one indicator (or confidence) row per sample.
	KindOneHot
)

func (k Kind) String() string {
	switch k {
	case KindScalar:
		return "scalar"
	case KindOneHot:
		return "one-hot"
	default:
		return "unknown"
	}
}

// Input is a label sequence in either scalar or one-hot form.
type Input struct {
	kind   Kind
	ids    []int
	oneHot Matrix
}

// Scalar wraps class ids.
func Scalar(ids []int) Input {
	return Input{kind: KindScalar, ids: ids}
}

// OneHot wraps a one-hot matrix. Rows are reduced with Argmax.
func OneHot(m Matrix) Input {
	return Input{kind: KindOneHot, oneHot: m}
}

// Kind returns the encoding tag.
func (in Input) Kind() Kind { return in.kind }

// Len returns the number of samples.
func (in Input) Len() int {
	if in.kind == KindOneHot {
		return in.oneHot.Rows
	}
	return len(in.ids)
}

// IDs returns one class id per sample.
func (in Input) IDs() ([]int, error) {
	if in.kind == KindScalar {
		return in.ids, nil
	}
	if !in.oneHot.valid() {
		return nil, &ErrShape{Rows: in.oneHot.Rows, Cols: in.oneHot.Cols, Reason: "data length does not match shape"}
	}
	if in.oneHot.Rows > 0 && in.oneHot.Cols == 0 {
		return nil, &ErrShape{Rows: in.oneHot.Rows, Cols: 0, Reason: "no columns"}
	}
	return Argmax(in.oneHot), nil
}
