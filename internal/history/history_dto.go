package history

import "github.com/aixxiteru/peta-jabatan/internal/shared/response"

type ListHistoriesRequest struct {
	Q     string `form:"q"`
	Page  int    `form:"page" binding:"omitempty,min=1"`
	Limit int    `form:"limit" binding:"omitempty,min=1,max=500"`
}

type ListHistoriesMeta struct {
	response.PaginationMeta
	DataSource DataSource `json:"dataSource"`
	FetchError string     `json:"fetchError,omitempty"`
}

type ListHistoriesResponse struct {
	Rows []HistoryRow
	Meta ListHistoriesMeta
}
