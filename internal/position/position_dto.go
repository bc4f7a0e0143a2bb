package position

type ListPositionsRequest struct {
	Q        string `form:"q"`
	Category string `form:"category"`
	Unit     string `form:"unit"`
	Status   string `form:"status" binding:"omitempty,oneof=SESUAI KURANG LEBIH"`
	Period   string `form:"period"`
}

type ListPositionsMeta struct {
	Total          int        `json:"total"`
	Shown          int        `json:"shown"`
	Periods        []string   `json:"periods"`
	SelectedPeriod string     `json:"selectedPeriod"`
	Categories     []string   `json:"categories"`
	Units          []string   `json:"units"`
	DataSource     DataSource `json:"dataSource"`
	LastManualSync string     `json:"lastManualSync,omitempty"`
	ParseError     string     `json:"parseError,omitempty"`
}

type ListPositionsResponse struct {
	Positions []JobPosition
	Meta      ListPositionsMeta
}
