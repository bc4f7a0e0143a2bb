package settings

// UpdateSettingsRequest is the body of PUT /settings. HistoriSheetURL nil
// leaves the stored value alone; "" clears it.
type UpdateSettingsRequest struct {
	SheetURL        string  `json:"sheetUrl" binding:"max=2048"`
	EmployeeGID     string  `json:"employeeGid" binding:"omitempty,numeric"`
	HistoriSheetURL *string `json:"historiSheetUrl" binding:"omitempty,max=2048"`
	Password        string  `json:"password"`
}
