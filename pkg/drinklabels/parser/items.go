package parser

import (
	"strconv"
	"strings"
)

// Item is one "<qty> <description>" entry of a category cell.
type Item struct {
	Qty         int
	Description string
}

// SplitItems splits a category cell into item texts. Items are separated by
// an optional comma and whitespace, but a split is only recognised in front
// of a run of digits followed by whitespace, so commas inside descriptions
// are left alone.
func SplitItems(cell string) []string {
	var starts []int
	for i := 0; i < len(cell); i++ {
		if !isDigit(cell[i]) {
			continue
		}
		if i > 0 && !isSpace(cell[i-1]) && cell[i-1] != ',' {
			continue
		}
		j := i
		for j < len(cell) && isDigit(cell[j]) {
			j++
		}
		if j < len(cell) && isSpace(cell[j]) {
			starts = append(starts, i)
		}
		i = j
	}

	// Text before the first quantity is kept as its own item so it can
	// be reported as unparseable.
	if len(starts) == 0 || strings.TrimSpace(cell[:starts[0]]) != "" {
		starts = append([]int{0}, starts...)
	}

	var items []string
	for k, start := range starts {
		end := len(cell)
		if k+1 < len(starts) {
			end = starts[k+1]
		}
		item := strings.TrimSpace(cell[start:end])
		item = strings.TrimSpace(strings.TrimSuffix(item, ","))
		if item != "" {
			items = append(items, item)
		}
	}
	return items
}

// ParseItem splits an item text into its quantity and description. ok is
// false when the item does not start with a numeric quantity.
func ParseItem(text string) (Item, bool) {
	text = strings.TrimSpace(text)
	n, rest, ok := leadingInt(text)
	if !ok || rest == "" || !isSpace(rest[0]) {
		return Item{}, false
	}
	desc := strings.TrimSpace(rest)
	if desc == "" {
		return Item{}, false
	}
	return Item{Qty: n, Description: desc}, true
}

// leadingInt parses the run of digits at the start of s.
func leadingInt(s string) (int, string, bool) {
	j := 0
	for j < len(s) && isDigit(s[j]) {
		j++
	}
	if j == 0 {
		return 0, s, false
	}
	n, err := strconv.Atoi(s[:j])
	if err != nil {
		return 0, s, false
	}
	return n, s[j:], true
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}
