package models

import "time"

// RawEvent is a calendar event exactly as the calendar bridge returned it.
// Events are immutable once fetched; all interpretation happens downstream.
type RawEvent struct {
	ID          string    `json:"id"`
	SourceID    string    `json:"source_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Start       time.Time `json:"start"`
	End         time.Time `json:"end"`
	ColorTag    string    `json:"color_tag"`
}
