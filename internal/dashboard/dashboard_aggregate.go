package dashboard

import (
	"strings"

	dashboarderrors "github.com/aixxiteru/peta-jabatan/internal/dashboard/errors"
	"github.com/aixxiteru/peta-jabatan/internal/position"
)

type Category string

const (
	CategoryStruktural Category = "STRUKTURAL"
	CategoryFungsional Category = "FUNGSIONAL"
	CategoryPelaksana  Category = "PELAKSANA"

	// CategoryAll is accepted by the chart only.
	CategoryAll = "SEMUA"
	AllUnits    = "SEMUA UNIT"

	allCategoriesLabel = "SEMUA KATEGORI"
)

// Classify buckets a jenis jabatan. Every string lands in exactly one
// category.
func Classify(jenis string) Category {
	j := strings.ToUpper(jenis)
	switch {
	case strings.Contains(j, "PRATAMA"),
		strings.Contains(j, "ADMIN"),
		strings.Contains(j, "PENGAWAS"),
		strings.Contains(j, "STRUK"):
		return CategoryStruktural
	case strings.Contains(j, "FUNG"):
		return CategoryFungsional
	default:
		return CategoryPelaksana
	}
}

// ParseCategory accepts a category name in any case.
func ParseCategory(s string) (Category, error) {
	switch c := Category(strings.ToUpper(strings.TrimSpace(s))); c {
	case CategoryStruktural, CategoryFungsional, CategoryPelaksana:
		return c, nil
	}
	return "", dashboarderrors.ErrUnknownCategory
}

type CategoryStat struct {
	Ketersediaan int `json:"ketersediaan"`
	Kebutuhan    int `json:"kebutuhan"`
	Kekurangan   int `json:"kekurangan"`
}

// Card is the executive summary. Kekurangan is signed here: a surplus shows
// up as a negative number.
type Card struct {
	Struktural      CategoryStat `json:"struktural"`
	Fungsional      CategoryStat `json:"fungsional"`
	Pelaksana       CategoryStat `json:"pelaksana"`
	TotalPNS        int          `json:"totalPNS"`
	TotalKebutuhan  int          `json:"totalKebutuhan"`
	TotalKekurangan int          `json:"totalKekurangan"`
}

// ChartBar is one bar of the comparison chart. Kekurangan never goes below
// zero.
type ChartBar struct {
	Name         string `json:"name"`
	Ketersediaan int    `json:"Ketersediaan"`
	Kebutuhan    int    `json:"Kebutuhan"`
	Kekurangan   int    `json:"Kekurangan"`
}

type ShortageRow struct {
	position.JobPosition
	Selisih int `json:"selisih"`
}

type sums struct {
	b, k int
}

type aggregate struct {
	total      sums
	byCategory map[Category]sums
}

func aggregateOf(positions []position.JobPosition, period, unit string) aggregate {
	agg := aggregate{byCategory: make(map[Category]sums, 3)}
	for _, p := range scope(positions, period, unit) {
		c := Classify(p.JenisJabatan)
		s := agg.byCategory[c]
		s.b += p.Ketersediaan
		s.k += p.Kebutuhan
		agg.byCategory[c] = s

		agg.total.b += p.Ketersediaan
		agg.total.k += p.Kebutuhan
	}
	return agg
}

func scope(positions []position.JobPosition, period, unit string) []position.JobPosition {
	out := make([]position.JobPosition, 0, len(positions))
	for _, p := range positions {
		if !position.InPeriod(p, period) {
			continue
		}
		if unit != "" && unit != AllUnits && p.UnitKerja != unit {
			continue
		}
		out = append(out, p)
	}
	return out
}

func signed(s sums) CategoryStat {
	return CategoryStat{Ketersediaan: s.b, Kebutuhan: s.k, Kekurangan: s.k - s.b}
}

func clamped(name string, s sums) ChartBar {
	return ChartBar{Name: name, Ketersediaan: s.b, Kebutuhan: s.k, Kekurangan: max(0, s.k-s.b)}
}

// CardSummary sums the positions of one period, optionally one unit.
func CardSummary(positions []position.JobPosition, period, unit string) Card {
	agg := aggregateOf(positions, period, unit)
	return Card{
		Struktural:      signed(agg.byCategory[CategoryStruktural]),
		Fungsional:      signed(agg.byCategory[CategoryFungsional]),
		Pelaksana:       signed(agg.byCategory[CategoryPelaksana]),
		TotalPNS:        agg.total.b,
		TotalKebutuhan:  agg.total.k,
		TotalKekurangan: agg.total.k - agg.total.b,
	}
}

// ChartSummary returns a single bar for category, or for every category
// together when category is SEMUA or empty.
func ChartSummary(positions []position.JobPosition, period, unit, category string) ([]ChartBar, error) {
	agg := aggregateOf(positions, period, unit)

	if category == "" || strings.EqualFold(category, CategoryAll) {
		return []ChartBar{clamped(allCategoriesLabel, agg.total)}, nil
	}

	c, err := ParseCategory(category)
	if err != nil {
		return nil, err
	}
	return []ChartBar{clamped(string(c), agg.byCategory[c])}, nil
}

// ShortageDetail lists positions of category in period whose availability
// is below requirement.
func ShortageDetail(positions []position.JobPosition, period string, category Category) []ShortageRow {
	out := make([]ShortageRow, 0)
	for _, p := range scope(positions, period, "") {
		if p.Ketersediaan >= p.Kebutuhan {
			continue
		}
		if Classify(p.JenisJabatan) != category {
			continue
		}
		out = append(out, ShortageRow{JobPosition: p, Selisih: p.Ketersediaan - p.Kebutuhan})
	}
	return out
}
