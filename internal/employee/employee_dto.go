package employee

type ListEmployeesRequest struct {
	Jabatan string `form:"jabatan" binding:"required"`
	Unit    string `form:"unit"`
}

type ListEmployeesMeta struct {
	Jabatan string `json:"jabatan"`
	Total   int    `json:"total"`
}
