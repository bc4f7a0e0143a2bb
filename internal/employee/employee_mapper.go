package employee

import (
	"github.com/aixxiteru/peta-jabatan/internal/csvsheet"
	employeeerrors "github.com/aixxiteru/peta-jabatan/internal/employee/errors"
)

// MapEmployees parses the employee subsheet. A sheet without data rows maps
// to an empty list; a sheet without a jabatan column is rejected.
func MapEmployees(text string) ([]Employee, error) {
	table := csvsheet.Tokenize(text, csvsheet.EmployeeSheet.Tokenizer)
	if len(table.Rows) == 0 {
		return []Employee{}, nil
	}

	cols := csvsheet.Resolve(table.Header, csvsheet.EmployeeSheet)
	if cols.Jabatan == csvsheet.Absent {
		return nil, employeeerrors.ErrJabatanColumnMissing
	}

	employees := make([]Employee, 0, len(table.Rows))
	for i, row := range table.Rows {
		employees = append(employees, Employee{
			ID:        i,
			Nama:      orDash(csvsheet.Cell(row, cols.Nama)),
			NIP:       orDash(csvsheet.Cell(row, cols.NIP)),
			Jabatan:   csvsheet.Cell(row, cols.Jabatan),
			UnitKerja: orDash(csvsheet.Cell(row, cols.Unit)),
			Pangkat:   orDash(csvsheet.Cell(row, cols.Pangkat)),
		})
	}
	return employees, nil
}

func orDash(v string) string {
	if v == "" {
		return "-"
	}
	return v
}
