package dto

// LessonNoteRequest renders and stores a lesson-note PDF for a student
// folder and marks the matching cached lesson's PDF flag.
type LessonNoteRequest struct {
	EventID         string `json:"eventId" validate:"required"`
	FolderKey       string `json:"folderName" validate:"required"`
	StudentName     string `json:"studentName" validate:"required"`
	Date            string `json:"date" validate:"required"`
	Teacher         string `json:"teacher"`
	WarmUpTopic     string `json:"warmUpTopic"`
	UnitPages       string `json:"unitPages"`
	Homework        string `json:"homework"`
	Comments        string `json:"comments"`
	StudentRequests string `json:"studentRequests"`
	Advice          string `json:"advice"`
}

// EvaluationPDFRequest renders and stores an evaluation PDF for a student.
type EvaluationPDFRequest struct {
	StudentName string `json:"studentName" validate:"required"`
	Level       string `json:"level"`
	Textbook    string `json:"textbook"`
}

// DocumentResult reports where a generated document was stored.
type DocumentResult struct {
	Filename string `json:"filename"`
	Path     string `json:"path"`
}
