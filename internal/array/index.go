package array

// Unravel converts a flat row-major offset into a multi-index for shape,
// writing the coordinates into idx (len(idx) must equal len(shape)).
func Unravel(flat int, shape Shape, idx []int) {
	for d := len(shape) - 1; d >= 0; d-- {
		if shape[d] == 0 {
			idx[d] = 0
			continue
		}
		idx[d] = flat % shape[d]
		flat /= shape[d]
	}
}

// Ravel converts a multi-index into a flat offset using the given strides.
func Ravel(idx, strides []int) int {
	off := 0
	for d, i := range idx {
		off += i * strides[d]
	}
	return off
}
