package dto

// HistoryEntryRequest appends one lesson-history row for a student folder
// and marks the matching cached lesson as recorded.
type HistoryEntryRequest struct {
	EventID         string `json:"eventId" validate:"required"`
	FolderKey       string `json:"folderName" validate:"required"`
	Date            string `json:"date" validate:"required"`
	Teacher         string `json:"teacher" validate:"required"`
	WarmUpTopic     string `json:"warmUpTopic"`
	UnitPages       string `json:"unitPages"`
	Homework        string `json:"homework"`
	Comments        string `json:"comments"`
	StudentRequests string `json:"studentRequests"`
	Advice          string `json:"advice"`
}
