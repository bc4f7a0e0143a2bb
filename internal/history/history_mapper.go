package history

import (
	"github.com/aixxiteru/peta-jabatan/internal/csvsheet"
	historyerrors "github.com/aixxiteru/peta-jabatan/internal/history/errors"
)

// MapHistory parses the history sheet. Rows carrying neither a name nor a
// NIP are dropped; IDs count data rows before dropping.
func MapHistory(text string) ([]HistoryRow, error) {
	table := csvsheet.Tokenize(text, csvsheet.HistorySheet.Tokenizer)
	if len(table.Rows) == 0 {
		return []HistoryRow{}, nil
	}

	cols := csvsheet.Resolve(table.Header, csvsheet.HistorySheet)
	if cols.Nama == csvsheet.Absent && cols.NIP == csvsheet.Absent {
		return nil, historyerrors.ErrIdentityColumnsMissing
	}

	rows := make([]HistoryRow, 0, len(table.Rows))
	for i, row := range table.Rows {
		nama := csvsheet.Cell(row, cols.Nama)
		nip := csvsheet.Cell(row, cols.NIP)
		if nama == "" && nip == "" {
			continue
		}

		rows = append(rows, HistoryRow{
			ID:         i + 1,
			Nama:       orDash(nama),
			NIP:        orDash(nip),
			Jabatan:    orDash(csvsheet.Cell(row, cols.Jabatan)),
			UnitKerja:  orDash(csvsheet.Cell(row, cols.Unit)),
			Status:     CanonicalStatus(orDash(csvsheet.Cell(row, cols.Status))),
			B:          csvsheet.SafeParseInt(csvsheet.Cell(row, cols.Diff)),
			Tanggal:    orDash(csvsheet.Cell(row, cols.Tanggal)),
			Keterangan: orDash(csvsheet.Cell(row, cols.Keterangan)),
			SK:         orDash(csvsheet.Cell(row, cols.SK)),
		})
	}
	return rows, nil
}

func orDash(v string) string {
	if v == "" {
		return "-"
	}
	return v
}
