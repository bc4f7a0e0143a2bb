package csvsheet_test

import (
	"testing"

	"github.com/aixxiteru/peta-jabatan/internal/csvsheet"

	"github.com/stretchr/testify/assert"
)

var stateful = csvsheet.TokenizerOptions{Delimiter: csvsheet.DelimiterAuto, Split: csvsheet.SplitStateful}
var legacy = csvsheet.TokenizerOptions{Delimiter: csvsheet.DelimiterComma, Split: csvsheet.SplitLookahead}

func TestDetectDelimiter(t *testing.T) {
	t.Run("semicolon without commas", func(t *testing.T) {
		assert.Equal(t, ';', csvsheet.DetectDelimiter("a;b;c"))
	})

	t.Run("comma", func(t *testing.T) {
		assert.Equal(t, ',', csvsheet.DetectDelimiter("a,b,c"))
	})

	t.Run("tie goes to comma", func(t *testing.T) {
		assert.Equal(t, ',', csvsheet.DetectDelimiter("a,b;c"))
	})

	t.Run("quoted commas are not counted", func(t *testing.T) {
		assert.Equal(t, ';', csvsheet.DetectDelimiter(`"nama, gelar";nip;jabatan`))
	})
}

func TestTokenize_Stateful(t *testing.T) {
	t.Run("normalizes input", func(t *testing.T) {
		text := "\uFEFFNama;NIP\r\n\r\nBudi;123\r\n   \rSiti;456\n"

		table := csvsheet.Tokenize(text, stateful)

		assert.Equal(t, ';', table.Delimiter)
		assert.Equal(t, []string{"Nama", "NIP"}, table.Header)
		assert.Equal(t, [][]string{{"Budi", "123"}, {"Siti", "456"}}, table.Rows)
	})

	t.Run("quoted delimiter and escaped quotes", func(t *testing.T) {
		text := "a,b,c\n1,\"x, y\",\"say \"\"hi\"\"\""

		table := csvsheet.Tokenize(text, stateful)

		assert.Equal(t, [][]string{{"1", "x, y", `say "hi"`}}, table.Rows)
	})

	t.Run("short rows are kept", func(t *testing.T) {
		table := csvsheet.Tokenize("a,b,c\n1", stateful)

		assert.Equal(t, [][]string{{"1"}}, table.Rows)
		assert.Equal(t, "", csvsheet.Cell(table.Rows[0], 2))
		assert.Equal(t, "", csvsheet.Cell(table.Rows[0], csvsheet.Absent))
	})

	t.Run("unclosed quote degrades", func(t *testing.T) {
		table := csvsheet.Tokenize("a,b\n1,\"open, still open", stateful)

		assert.Equal(t, [][]string{{"1", "open, still open"}}, table.Rows)
	})

	t.Run("embedded newline splits the row", func(t *testing.T) {
		table := csvsheet.Tokenize("a,b,c\n1,\"two\nlines\",3", stateful)

		assert.Len(t, table.Rows, 2)
	})

	t.Run("empty input", func(t *testing.T) {
		table := csvsheet.Tokenize("\uFEFF\n  \n", stateful)

		assert.Empty(t, table.Header)
		assert.Empty(t, table.Rows)
	})

	t.Run("lower header keeps raw header", func(t *testing.T) {
		table := csvsheet.Tokenize("Jenis Jabatan,Real Time", stateful)

		assert.Equal(t, []string{"jenis jabatan", "real time"}, table.LowerHeader())
		assert.Equal(t, []string{"Jenis Jabatan", "Real Time"}, table.Header)
	})
}

func TestTokenize_Lookahead(t *testing.T) {
	t.Run("quoted comma stays in field", func(t *testing.T) {
		table := csvsheet.Tokenize("jenis,jabatan,grade\nSTRUKTURAL,\"Kepala, Bagian\",9", legacy)

		assert.Equal(t, [][]string{{"STRUKTURAL", "Kepala, Bagian", "9"}}, table.Rows)
	})

	t.Run("doubled quotes are not decoded", func(t *testing.T) {
		table := csvsheet.Tokenize("a,b\n\"a \"\"q\"\"\",b", legacy)

		assert.Equal(t, [][]string{{`a ""q""`, "b"}}, table.Rows)
	})

	t.Run("semicolons are never delimiters", func(t *testing.T) {
		table := csvsheet.Tokenize("a;b;c\n1;2;3", legacy)

		assert.Equal(t, ',', table.Delimiter)
		assert.Equal(t, []string{"a;b;c"}, table.Header)
	})
}
