// Package labels provides label and confidence helpers: one-hot encoding,
// random adversarial target selection, and max-confidence extraction.
//
// Label input is tagged explicitly instead of being inferred from its shape:
//
//	in := labels.Scalar([]int{3, 1, 4})
//	in := labels.OneHot(m) // reduced with argmax
package labels
