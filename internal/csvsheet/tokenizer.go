package csvsheet

import (
	"strings"
)

// Delimiter selects how the field separator of a sheet export is chosen.
type Delimiter int

const (
	DelimiterAuto Delimiter = iota
	DelimiterComma
	DelimiterSemicolon
)

// SplitMode selects how a single line is cut into fields.
type SplitMode int

const (
	// SplitStateful scans the line rune by rune and tracks quote state.
	SplitStateful SplitMode = iota
	// SplitLookahead cuts on a delimiter only when an even number of quotes
	// follows it on the same line. Quotes are stripped from the field edges
	// but "" is not decoded.
	SplitLookahead
)

type TokenizerOptions struct {
	Delimiter Delimiter
	Split     SplitMode
}

// Table is a tokenized sheet export. Rows may be shorter than Header.
type Table struct {
	Header    []string
	Rows      [][]string
	Delimiter rune
}

const bom = "\uFEFF"

// Tokenize splits raw CSV text into a header row and data rows.
//
// Lines are separated before any quote handling, so a quoted field that
// contains a literal newline ends up split across two rows. Malformed
// quoting never fails: the affected line is split on a best-effort basis.
func Tokenize(text string, opts TokenizerOptions) Table {
	lines := splitLines(text)
	if len(lines) == 0 {
		return Table{Delimiter: ','}
	}

	delim := resolveDelimiter(lines[0], opts.Delimiter)

	table := Table{
		Header:    splitLine(lines[0], delim, opts.Split),
		Delimiter: delim,
	}
	for _, line := range lines[1:] {
		table.Rows = append(table.Rows, splitLine(line, delim, opts.Split))
	}
	return table
}

// LowerHeader returns the header cells lower-cased for matching.
func (t Table) LowerHeader() []string {
	out := make([]string, len(t.Header))
	for i, h := range t.Header {
		out[i] = strings.ToLower(h)
	}
	return out
}

// Cell returns the cell at idx or "" when idx is absent or past the row end.
func Cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}

func splitLines(text string) []string {
	text = strings.TrimPrefix(text, bom)
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

// DetectDelimiter picks ';' when the header holds more unquoted semicolons
// than unquoted commas, ',' otherwise.
func DetectDelimiter(header string) rune {
	commas, semis := 0, 0
	inQuotes := false
	for _, r := range header {
		switch r {
		case '"':
			inQuotes = !inQuotes
		case ',':
			if !inQuotes {
				commas++
			}
		case ';':
			if !inQuotes {
				semis++
			}
		}
	}
	if semis > commas {
		return ';'
	}
	return ','
}

func resolveDelimiter(header string, d Delimiter) rune {
	switch d {
	case DelimiterComma:
		return ','
	case DelimiterSemicolon:
		return ';'
	default:
		return DetectDelimiter(header)
	}
}

func splitLine(line string, delim rune, mode SplitMode) []string {
	if mode == SplitLookahead {
		return splitLookahead(line, delim)
	}
	return splitStateful(line, delim)
}

func splitStateful(line string, delim rune) []string {
	runes := []rune(line)
	var (
		fields   []string
		field    strings.Builder
		inQuotes bool
	)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		switch {
		case r == '"' && inQuotes && i+1 < len(runes) && runes[i+1] == '"':
			field.WriteRune('"')
			i++
		case r == '"':
			inQuotes = !inQuotes
		case r == delim && !inQuotes:
			fields = append(fields, strings.TrimSpace(field.String()))
			field.Reset()
		default:
			field.WriteRune(r)
		}
	}
	return append(fields, strings.TrimSpace(field.String()))
}

func splitLookahead(line string, delim rune) []string {
	runes := []rune(line)
	remaining := 0
	for _, r := range runes {
		if r == '"' {
			remaining++
		}
	}

	var fields []string
	start := 0
	for i, r := range runes {
		if r == '"' {
			remaining--
			continue
		}
		if r == delim && remaining%2 == 0 {
			fields = append(fields, trimQuotes(string(runes[start:i])))
			start = i + 1
		}
	}
	return append(fields, trimQuotes(string(runes[start:])))
}

func trimQuotes(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, `"`)
	return strings.TrimSuffix(s, `"`)
}
