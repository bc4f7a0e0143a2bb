package settings

// Settings is the operator-editable configuration kept in the store.
type Settings struct {
	SheetURL        string `json:"sheetUrl"`
	EmployeeGID     string `json:"employeeGid"`
	HistoriSheetURL string `json:"historiSheetUrl"`
}

// Defaults seeds the store on first start and fills a blank gid on save.
type Defaults struct {
	SheetURL    string
	EmployeeGID string
}
