package reference

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseTableRange expands a table list such as "1-7,9, 12-14" into table
// numbers in the order written.
func ParseTableRange(expr string) ([]int, error) {
	var numbers []int

	// Split by comma for multiple ranges
	parts := strings.Split(expr, ",")
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		first, last, err := parseSpan(part)
		if err != nil {
			return nil, err
		}
		for n := first; n <= last; n++ {
			numbers = append(numbers, n)
		}
	}

	if len(numbers) == 0 {
		return nil, fmt.Errorf("table range %q is empty", expr)
	}
	return numbers, nil
}

// parseSpan parses "7" or "1-7".
func parseSpan(part string) (int, int, error) {
	lo, hi, isRange := strings.Cut(part, "-")
	first, err := strconv.Atoi(strings.TrimSpace(lo))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid table number %q", lo)
	}
	if !isRange {
		return first, first, nil
	}
	last, err := strconv.Atoi(strings.TrimSpace(hi))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid table number %q", hi)
	}
	if last < first {
		return 0, 0, fmt.Errorf("table range %q runs backwards", part)
	}
	return first, last, nil
}
