package csvsheet

import (
	"strconv"
	"strings"
)

// SafeParseInt turns a locale-formatted spreadsheet number into an int.
// Thousand separators ('.') and any other rune except digits and '-' are
// dropped, then an optional leading '-' and the digit prefix are parsed.
// Input that yields no digits, or overflows, is 0. It never fails.
func SafeParseInt(val string) int {
	if val == "" || val == "-" {
		return 0
	}

	var b strings.Builder
	for _, r := range strings.ReplaceAll(val, ".", "") {
		if r == '-' || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	clean := b.String()

	neg := strings.HasPrefix(clean, "-")
	if neg {
		clean = clean[1:]
	}
	end := 0
	for end < len(clean) && clean[end] >= '0' && clean[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0
	}

	n, err := strconv.Atoi(clean[:end])
	if err != nil {
		return 0
	}
	if neg {
		return -n
	}
	return n
}
