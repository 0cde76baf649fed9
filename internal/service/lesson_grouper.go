package service

import "github.com/khaCey/Teachers-Calendar/internal/models"

// LessonGrouper folds the flat occurrence sequence back into one
// LessonRecord per event.
type LessonGrouper struct{}

// NewLessonGrouper constructs the grouper.
func NewLessonGrouper() *LessonGrouper {
	return &LessonGrouper{}
}

// Group aggregates occurrences by event ID, preserving first-seen order
// of events and of student names within each event. Evaluation flags are
// sticky within the run (true once any occurrence sets them), the teacher
// is the first non-empty value seen, and the remaining fields come from
// the first occurrence since they are identical across the group by
// construction. Fresh records start with both operator flags false; the
// status merger reconciles them afterwards.
func (g *LessonGrouper) Group(occurrences []models.Occurrence) []models.LessonRecord {
	index := make(map[string]int, len(occurrences))
	records := make([]models.LessonRecord, 0, len(occurrences))

	for _, occ := range occurrences {
		if i, seen := index[occ.EventID]; seen {
			record := &records[i]
			record.StudentNames = append(record.StudentNames, occ.StudentName)
			if occ.EvaluationReady {
				record.EvaluationReady = true
			}
			if occ.EvaluationDue {
				record.EvaluationDue = true
			}
			if record.Teacher == "" && occ.Teacher != "" {
				record.Teacher = occ.Teacher
			}
			continue
		}

		index[occ.EventID] = len(records)
		records = append(records, models.LessonRecord{
			EventID:         occ.EventID,
			EventName:       occ.EventName,
			Start:           occ.Start,
			End:             occ.End,
			FolderKey:       occ.FolderKey,
			StudentNames:    []string{occ.StudentName},
			EvaluationReady: occ.EvaluationReady,
			EvaluationDue:   occ.EvaluationDue,
			IsOnline:        occ.IsOnline,
			Teacher:         occ.Teacher,
		})
	}
	return records
}
