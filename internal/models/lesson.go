package models

// Occurrence is one student's participation instance in one calendar event.
// Occurrences exist only between expansion and grouping and are never
// persisted.
type Occurrence struct {
	EventID         string
	EventName       string
	Start           string
	End             string
	StudentName     string
	FolderKey       string
	EvaluationReady bool
	EvaluationDue   bool
	Teacher         string
	IsOnline        bool
}

// LessonRecord is the per-event aggregate persisted in the lesson cache.
// EventID is the sole identity that survives across sync runs; every
// other field may change between runs without breaking continuity.
type LessonRecord struct {
	EventID         string   `json:"eventID"`
	EventName       string   `json:"eventName"`
	Start           string   `json:"start"`
	End             string   `json:"end"`
	FolderKey       string   `json:"folderKey"`
	StudentNames    []string `json:"studentNames"`
	PDFUploaded     bool     `json:"pdfUploaded"`
	HistoryRecorded bool     `json:"historyRecorded"`
	EvaluationReady bool     `json:"evaluationReady"`
	EvaluationDue   bool     `json:"evaluationDue"`
	IsOnline        bool     `json:"isOnline"`
	Teacher         string   `json:"teacher"`
}

// LessonStatus is the operator-progress slice of a cached lesson row.
type LessonStatus struct {
	EventID         string `db:"event_id" json:"eventID"`
	PDFUploaded     bool   `db:"pdf_uploaded" json:"pdfUploaded"`
	HistoryRecorded bool   `db:"history_recorded" json:"historyRecorded"`
}

// Status field names accepted by the status update surface.
const (
	StatusFieldPDFUploaded     = "pdfUploaded"
	StatusFieldHistoryRecorded = "historyRecorded"
)

// SnapshotHeaders is the ordered column layout of the persisted snapshot.
var SnapshotHeaders = []string{
	"eventID", "eventName", "Start", "End",
	"folderName", "studentNames", "pdfUpload", "lessonHistory",
	"evaluationReady", "evaluationDue", "isOnline", "teacher",
}
