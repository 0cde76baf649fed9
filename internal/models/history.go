package models

import "time"

// HistoryEntry is one appended lesson-history row for a student folder.
type HistoryEntry struct {
	ID              string    `db:"id" json:"id"`
	FolderKey       string    `db:"folder_key" json:"folder_key"`
	LessonDate      string    `db:"lesson_date" json:"lesson_date"`
	Teacher         string    `db:"teacher" json:"teacher"`
	WarmUpTopic     string    `db:"warm_up_topic" json:"warm_up_topic"`
	UnitPages       string    `db:"unit_pages" json:"unit_pages"`
	Homework        string    `db:"homework" json:"homework"`
	Comments        string    `db:"comments" json:"comments"`
	StudentRequests string    `db:"student_requests" json:"student_requests"`
	Advice          string    `db:"advice" json:"advice"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
}
