package depth_calculator

import "reflect"

// DepthCalculator measures how deeply sequences are nested. It carries no
// state, so a single value can be shared between goroutines.
type DepthCalculator struct{}

func New() *DepthCalculator {
	return &DepthCalculator{}
}

// CalculateDepth returns the maximum nesting depth of sequence. A flat or
// empty sequence has depth 1 and every level of nested slices or arrays adds
// one, whether or not the innermost level holds any values.
func (d *DepthCalculator) CalculateDepth(sequence []any) int {
	depth := 1
	level := sequence
	for containsSequence(level) {
		depth++
		level = flatten(level)
	}
	return depth
}

// CalculateDepth is a shorthand for New().CalculateDepth.
func CalculateDepth(sequence []any) int {
	return New().CalculateDepth(sequence)
}

func containsSequence(level []any) bool {
	for _, v := range level {
		if isSequence(v) {
			return true
		}
	}
	return false
}

// flatten splices the elements of every nested sequence into a new level,
// keeping scalars in place. The input is left untouched.
func flatten(level []any) []any {
	next := make([]any, 0, len(level))
	for _, v := range level {
		if !isSequence(v) {
			next = append(next, v)
			continue
		}
		rv := reflect.ValueOf(v)
		for i := 0; i < rv.Len(); i++ {
			next = append(next, rv.Index(i).Interface())
		}
	}
	return next
}

// isSequence treats any slice or array as a sequence. Strings are scalars.
func isSequence(v any) bool {
	if v == nil {
		return false
	}
	switch reflect.TypeOf(v).Kind() {
	case reflect.Slice, reflect.Array:
		return true
	default:
		return false
	}
}
