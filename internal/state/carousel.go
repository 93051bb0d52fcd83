package state

// Previous steps back one image, wrapping from the first to the last.
// index must satisfy 0 <= index < length and length must be at least 1.
func Previous(index, length int) int {
	if index == 0 {
		return length - 1
	}
	return index - 1
}

// Next steps forward one image, wrapping from the last to the first.
func Next(index, length int) int {
	if index == length-1 {
		return 0
	}
	return index + 1
}
