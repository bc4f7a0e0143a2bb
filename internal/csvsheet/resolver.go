package csvsheet

import "strings"

// Columns holds the resolved column index of every semantic field, or Absent.
type Columns struct {
	Jenis        int
	Jabatan      int
	Grade        int
	Unit         int
	Ketersediaan int
	Kebutuhan    int
	Diff         int
	Periode      int
	Nama         int
	NIP          int
	Pangkat      int
	Status       int
	Tanggal      int
	Keterangan   int
	SK           int
}

func absentColumns() Columns {
	return Columns{
		Jenis: Absent, Jabatan: Absent, Grade: Absent, Unit: Absent,
		Ketersediaan: Absent, Kebutuhan: Absent, Diff: Absent, Periode: Absent,
		Nama: Absent, NIP: Absent, Pangkat: Absent, Status: Absent,
		Tanggal: Absent, Keterangan: Absent, SK: Absent,
	}
}

func (c *Columns) slot(f Field) *int {
	switch f {
	case FieldJenis:
		return &c.Jenis
	case FieldJabatan:
		return &c.Jabatan
	case FieldGrade:
		return &c.Grade
	case FieldUnit:
		return &c.Unit
	case FieldKetersediaan:
		return &c.Ketersediaan
	case FieldKebutuhan:
		return &c.Kebutuhan
	case FieldDiff:
		return &c.Diff
	case FieldPeriode:
		return &c.Periode
	case FieldNama:
		return &c.Nama
	case FieldNIP:
		return &c.NIP
	case FieldPangkat:
		return &c.Pangkat
	case FieldStatus:
		return &c.Status
	case FieldTanggal:
		return &c.Tanggal
	case FieldKeterangan:
		return &c.Keterangan
	case FieldSK:
		return &c.SK
	}
	return nil
}

// Index returns the resolved index of f.
func (c Columns) Index(f Field) int {
	if p := c.slot(f); p != nil {
		return *p
	}
	return Absent
}

// Resolve maps a header row to column indices. It never fails: a field
// that matches no column gets its rule's fallback.
func Resolve(header []string, schema Schema) Columns {
	normalized := make([]string, len(header))
	for i, h := range header {
		normalized[i] = strings.ToLower(strings.TrimSpace(h))
	}

	cols := absentColumns()
	for _, rule := range schema.Rules {
		p := cols.slot(rule.Field)
		if p == nil {
			continue
		}
		*p = resolveField(normalized, rule)
	}
	return cols
}

func resolveField(header []string, rule FieldRule) int {
	for _, tier := range rule.Tiers {
		for i, h := range header {
			if tier.matches(h) {
				return i
			}
		}
	}
	return rule.Fallback
}

func (t Tier) matches(h string) bool {
	for _, c := range t.Exact {
		if h == c {
			return true
		}
	}
	for _, s := range t.Contains {
		if strings.Contains(h, s) {
			return true
		}
	}
	return false
}
