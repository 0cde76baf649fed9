package models

import "time"

// StudentEntry is one roster row: a student name plus the folder key their
// lesson documents live under. Note and history URLs point at the
// student's document folder contents.
type StudentEntry struct {
	ID         string    `db:"id" json:"id"`
	Name       string    `db:"name" json:"name"`
	FolderKey  string    `db:"folder_key" json:"folder_key"`
	NoteURL    string    `db:"note_url" json:"note_url"`
	HistoryURL string    `db:"history_url" json:"history_url"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
	UpdatedAt  time.Time `db:"updated_at" json:"updated_at"`
}

// Teacher is one selectable teacher for the dashboard dropdown.
type Teacher struct {
	ID     string `db:"id" json:"id"`
	Name   string `db:"name" json:"name"`
	Active bool   `db:"active" json:"active"`
}
