package dashboard

import "github.com/aixxiteru/peta-jabatan/internal/position"

type SummaryRequest struct {
	Period string `form:"period"`
	Unit   string `form:"unit"`
}

type ChartRequest struct {
	Period   string `form:"period"`
	Unit     string `form:"unit"`
	Category string `form:"category"`
}

type ShortageRequest struct {
	Period   string `form:"period"`
	Category string `form:"category" binding:"required"`
}

// Meta describes the scope every dashboard answer was computed over.
type Meta struct {
	SelectedPeriod string              `json:"selectedPeriod"`
	Periods        []string            `json:"periods"`
	Units          []string            `json:"units"`
	DataSource     position.DataSource `json:"dataSource"`
	LastSync       string              `json:"lastSync,omitempty"`
}
