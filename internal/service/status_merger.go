package service

import "github.com/khaCey/Teachers-Calendar/internal/models"

// StatusMerger reconciles freshly grouped lessons with the operator flags
// of the previous snapshot. This is what makes a sync safe to re-run:
// re-fetching events never erases operator progress, while genuinely new
// events start unflagged.
type StatusMerger struct{}

// NewStatusMerger constructs the merger.
func NewStatusMerger() *StatusMerger {
	return &StatusMerger{}
}

// Merge carries pdfUploaded and historyRecorded forward by event ID. A
// nil or empty previous set leaves every record at its defaults.
func (m *StatusMerger) Merge(records []models.LessonRecord, previous []models.LessonStatus) []models.LessonRecord {
	if len(previous) == 0 {
		return records
	}
	prior := make(map[string]models.LessonStatus, len(previous))
	for _, status := range previous {
		prior[status.EventID] = status
	}
	for i := range records {
		if status, found := prior[records[i].EventID]; found {
			records[i].PDFUploaded = status.PDFUploaded
			records[i].HistoryRecorded = status.HistoryRecorded
		}
	}
	return records
}
