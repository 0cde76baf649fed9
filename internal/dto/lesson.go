package dto

// SyncRequest triggers a lesson cache sync, optionally for a specific day.
type SyncRequest struct {
	Date string `json:"date" form:"date"`
}

// StatusUpdateRequest flips one operator flag on a cached lesson.
type StatusUpdateRequest struct {
	Field string `json:"field" validate:"required,oneof=pdfUploaded historyRecorded"`
	Value bool   `json:"value"`
}
