package utils

// FindIndex returns the index of the first occurrence of item, or -1.
func FindIndex[T comparable](slice []T, item T) int {
	for i, v := range slice {
		if v == item {
			return i
		}
	}
	return -1
}

// Sum adds up the values picked from every element.
func Sum[T any](slice []T, value func(T) int) int {
	total := 0
	for _, v := range slice {
		total += value(v)
	}
	return total
}
