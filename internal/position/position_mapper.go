package position

import (
	"github.com/aixxiteru/peta-jabatan/internal/csvsheet"
	positionerrors "github.com/aixxiteru/peta-jabatan/internal/position/errors"
)

// MapPositions parses a job sheet export. The same text always yields the
// same records.
func MapPositions(text string) ([]JobPosition, error) {
	table := csvsheet.Tokenize(text, csvsheet.JobSheet.Tokenizer)
	if len(table.Rows) == 0 {
		return nil, positionerrors.ErrEmptySheet
	}

	cols := csvsheet.Resolve(table.Header, csvsheet.JobSheet)

	positions := make([]JobPosition, 0, len(table.Rows))
	for i, row := range table.Rows {
		p := mapRow(i+1, row, cols)
		if p.Jabatan == "-" || p.Jabatan == "" {
			continue
		}
		positions = append(positions, p)
	}

	if len(positions) == 0 {
		return nil, positionerrors.ErrNoPositions
	}
	return positions, nil
}

func mapRow(id int, row []string, cols csvsheet.Columns) JobPosition {
	b := csvsheet.SafeParseInt(csvsheet.Cell(row, cols.Ketersediaan))
	k := csvsheet.SafeParseInt(csvsheet.Cell(row, cols.Kebutuhan))

	diff := b - k
	if cols.Diff != csvsheet.Absent {
		diff = csvsheet.SafeParseInt(csvsheet.Cell(row, cols.Diff))
	}

	return JobPosition{
		ID:            id,
		JenisJabatan:  orDefault(csvsheet.Cell(row, cols.Jenis), "-"),
		Jabatan:       orDefault(csvsheet.Cell(row, cols.Jabatan), "-"),
		KelasJabatan:  csvsheet.SafeParseInt(csvsheet.Cell(row, cols.Grade)),
		Pendidikan:    DefaultPendidikan,
		Jurusan:       DefaultJurusan,
		JumlahABK:     k,
		Ketersediaan:  b,
		Kebutuhan:     k,
		UnitKerja:     orDefault(csvsheet.Cell(row, cols.Unit), DefaultUnitKerja),
		PeriodeUpdate: orDefault(csvsheet.Cell(row, cols.Periode), NoPeriod),
		Status:        StatusFromDiff(diff),
	}
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
