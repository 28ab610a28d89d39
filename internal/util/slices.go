package util

// SliceLast returns the last element of |s|, which must not be empty.
func SliceLast[S ~[]E, E any](s S) E {
	return s[len(s)-1]
}

// SlicePopLast drops the last element of |s|, zeroing its slot so the
// backing array doesn't hold on to it. Used to treat a slice as a stack.
func SlicePopLast[S ~[]E, E any](s S) S {
	var zeroVal E
	s[len(s)-1] = zeroVal
	return s[:len(s)-1]
}
