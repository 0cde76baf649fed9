package service

import (
	"regexp"
	"strings"

	"github.com/khaCey/Teachers-Calendar/internal/models"
)

// Classification heuristics. These constant tables are the business rules
// most likely to need tuning; keep them here rather than scattered inline.
var (
	// Title markers that exclude an event from the lesson cache.
	excludedTitleMarkers = []string{"break", "teacher"}

	// Color tags marking cancelled or rescheduled lessons: banana (5),
	// graphite (8) and lavender (9). Closed set, not configurable.
	cancelledColorTags = map[string]struct{}{
		"5": {},
		"8": {},
		"9": {},
	}

	teacherTagPattern = regexp.MustCompile(`(?i)#teacher(\w+)`)
)

const (
	markerEvaluationReady = "#evaluationReady"
	markerEvaluationDue   = "#evaluationDue"

	colorEvaluationReady = "green"
	colorEvaluationDue   = "red"
)

// Classification is the classifier's verdict on one raw event.
type Classification struct {
	Include         bool
	EvaluationReady bool
	EvaluationDue   bool
	Teacher         string
}

// ColorEffect is a requested calendar-side recolor. Effects are returned
// alongside the classification so the classifier itself stays side-effect
// free; the sync orchestrator applies them best-effort.
type ColorEffect struct {
	EventID string
	Color   string
}

// EventClassifier decides whether a raw event is a billable lesson
// occurrence and extracts evaluation and teacher tags from its
// description.
type EventClassifier struct{}

// NewEventClassifier constructs the classifier.
func NewEventClassifier() *EventClassifier {
	return &EventClassifier{}
}

// Classify inspects one raw event. Excluded events yield a zero
// Classification and no effects. Malformed input never fails: missing
// tags simply yield false flags and an empty teacher.
func (c *EventClassifier) Classify(event models.RawEvent) (Classification, []ColorEffect) {
	title := strings.ToLower(event.Title)
	for _, marker := range excludedTitleMarkers {
		if strings.Contains(title, marker) {
			return Classification{}, nil
		}
	}
	if _, cancelled := cancelledColorTags[event.ColorTag]; cancelled {
		return Classification{}, nil
	}

	result := Classification{
		Include:         true,
		EvaluationReady: strings.Contains(event.Description, markerEvaluationReady),
		EvaluationDue:   strings.Contains(event.Description, markerEvaluationDue),
	}
	if match := teacherTagPattern.FindStringSubmatch(event.Description); match != nil {
		result.Teacher = match[1]
	}

	var effects []ColorEffect
	if result.EvaluationReady {
		effects = append(effects, ColorEffect{EventID: event.ID, Color: colorEvaluationReady})
	} else if result.EvaluationDue {
		effects = append(effects, ColorEffect{EventID: event.ID, Color: colorEvaluationDue})
	}
	return result, effects
}
