// Package conv provides checked integer conversions for length fields in
// persisted formats.
package conv
