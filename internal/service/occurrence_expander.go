package service

import (
	"regexp"
	"time"

	"github.com/khaCey/Teachers-Calendar/internal/models"
)

// onlineMediumPattern recognises the parenthetical medium tags that mark a
// lesson as held outside the school, e.g. "(Cafe)" or "( Online )".
var onlineMediumPattern = regexp.MustCompile(`(?i)\(\s*(Cafe|Online)\s*\)`)

const clockLayout = "15:04"

// OccurrenceExpander expands one included calendar event into one
// Occurrence per participating student.
type OccurrenceExpander struct {
	tz *time.Location
}

// NewOccurrenceExpander constructs an expander formatting times in the
// given zone. A nil zone falls back to the local zone.
func NewOccurrenceExpander(tz *time.Location) *OccurrenceExpander {
	if tz == nil {
		tz = time.Local
	}
	return &OccurrenceExpander{tz: tz}
}

// Expand combines the classifier's tags with the resolved names into
// per-student occurrences. All occurrences of one event share the same
// event-level fields, including the online flag derived from the title.
func (e *OccurrenceExpander) Expand(event models.RawEvent, cls Classification, names []ResolvedName) []models.Occurrence {
	isOnline := onlineMediumPattern.MatchString(event.Title)
	start := event.Start.In(e.tz).Format(clockLayout)
	end := event.End.In(e.tz).Format(clockLayout)

	occurrences := make([]models.Occurrence, 0, len(names))
	for _, name := range names {
		occurrences = append(occurrences, models.Occurrence{
			EventID:         event.ID,
			EventName:       event.Title,
			Start:           start,
			End:             end,
			StudentName:     name.Name,
			FolderKey:       name.FolderKey,
			EvaluationReady: cls.EvaluationReady,
			EvaluationDue:   cls.EvaluationDue,
			Teacher:         cls.Teacher,
			IsOnline:        isOnline,
		})
	}
	return occurrences
}
