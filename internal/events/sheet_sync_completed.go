package events

import "time"

const SheetSyncTopic = "peta.sheet.sync.v1"

const SheetSyncCompletedType = "sheet_sync_completed"

// SheetSyncCompletedEvent tells other processes that the synced sheet data
// in the store was replaced.
type SheetSyncCompletedEvent struct {
	EventType       string    `json:"event_type"`
	SyncID          string    `json:"sync_id"`
	RequestID       string    `json:"request_id,omitempty"`
	Trigger         string    `json:"trigger"`
	JobUpdated      bool      `json:"job_updated"`
	EmployeeUpdated bool      `json:"employee_updated"`
	SyncedAt        string    `json:"synced_at"`
	OccurredAt      time.Time `json:"occurred_at"`
}
