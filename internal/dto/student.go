package dto

// StudentLinks are the document URLs shown next to a student name.
type StudentLinks struct {
	NoteURL    string `json:"noteUrl"`
	HistoryURL string `json:"historyUrl"`
}

// FoldersAndTeachers bundles the dashboard dropdown data.
type FoldersAndTeachers struct {
	Folders  []string `json:"folders"`
	Teachers []string `json:"teachers"`
}
