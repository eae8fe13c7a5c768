package pairs

import (
	"fmt"
	"iter"
	"math"

	"github.com/RoaringBitmap/roaring/v2"
)

// ClassIndex groups dataset positions by label.
//
// Each class is a roaring bitmap of positions, so members are always visited
// in ascending dataset order and the k-th member is found with a rank query.
type ClassIndex struct {
	classes []*roaring.Bitmap
	size    int
}

// NewClassIndex builds the index for labels, each of which must lie in
// [0, numClasses).
func NewClassIndex(labels []int, numClasses int) (*ClassIndex, error) {
	if numClasses <= 0 {
		return nil, &ErrInvalidNumClasses{NumClasses: numClasses}
	}
	if err := checkLabels(labels, numClasses); err != nil {
		return nil, err
	}

	classes := make([]*roaring.Bitmap, numClasses)
	for c := range classes {
		classes[c] = roaring.New()
	}
	for i, l := range labels {
		classes[l].Add(uint32(i))
	}
	for _, bm := range classes {
		bm.RunOptimize()
	}

	return &ClassIndex{classes: classes, size: len(labels)}, nil
}

// NumClasses returns the number of classes, including empty ones.
func (ci *ClassIndex) NumClasses() int {
	return len(ci.classes)
}

// Size returns the number of indexed positions.
func (ci *ClassIndex) Size() int {
	return ci.size
}

// Len returns the number of members of class c.
func (ci *ClassIndex) Len(c int) int {
	return int(ci.classes[c].GetCardinality())
}

// At returns the dataset position of the rank-th member of class c.
// It panics if rank is not in [0, Len(c)).
func (ci *ClassIndex) At(c, rank int) int {
	pos, err := ci.classes[c].Select(uint32(rank))
	if err != nil {
		panic(fmt.Sprintf("pairs: rank %d out of range for class %d: %v", rank, c, err))
	}
	return int(pos)
}

// Members yields the positions of class c in ascending order.
func (ci *ClassIndex) Members(c int) iter.Seq[int] {
	return func(yield func(int) bool) {
		it := ci.classes[c].Iterator()
		for it.HasNext() {
			if !yield(int(it.Next())) {
				return
			}
		}
	}
}

// Contains reports whether position pos has label c.
func (ci *ClassIndex) Contains(c, pos int) bool {
	if pos < 0 || uint64(pos) > math.MaxUint32 {
		return false
	}
	return ci.classes[c].Contains(uint32(pos))
}

// NonEmpty returns the number of classes with at least one member.
func (ci *ClassIndex) NonEmpty() int {
	n := 0
	for _, bm := range ci.classes {
		if !bm.IsEmpty() {
			n++
		}
	}
	return n
}

func checkLabels(labels []int, numClasses int) error {
	if uint64(len(labels)) > math.MaxUint32 {
		return &ErrTooManySamples{Count: len(labels)}
	}
	for i, l := range labels {
		if l < 0 || l >= numClasses {
			return &ErrLabelOutOfRange{Index: i, Label: l, NumClasses: numClasses}
		}
	}
	return nil
}
