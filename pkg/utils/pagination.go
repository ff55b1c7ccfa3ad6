package utils

import (
	"math"
	"strconv"
)

// ParseInt reads a positive integer query value. Missing, malformed and
// non-positive values fall back to def.
func ParseInt(value string, def int) int {
	n, err := strconv.Atoi(value)
	if err != nil || n < 1 {
		return def
	}
	return n
}

// CalculateTotalPages rounds up. An empty collection has zero pages.
func CalculateTotalPages(total int64, perPage int) int {
	if perPage < 1 || total < 1 {
		return 0
	}
	return int((total + int64(perPage) - 1) / int64(perPage))
}

// CalculateOffset maps a 1-based page to a row offset. It saturates at
// math.MaxInt instead of overflowing, so a page far past the end is empty.
func CalculateOffset(page, perPage int) int {
	if page < 1 || perPage < 1 {
		return 0
	}
	if page-1 > math.MaxInt/perPage {
		return math.MaxInt
	}
	return (page - 1) * perPage
}
