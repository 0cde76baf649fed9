package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khaCey/Teachers-Calendar/internal/models"
)

func TestClassifyExcludesByTitleMarker(t *testing.T) {
	classifier := NewEventClassifier()

	for _, title := range []string{"Lunch Break", "BREAK", "Teacher meeting", "New teacher orientation"} {
		cls, effects := classifier.Classify(models.RawEvent{ID: "e1", Title: title})
		assert.False(t, cls.Include, "title %q should be excluded", title)
		assert.Empty(t, effects)
	}
}

func TestClassifyExcludesCancelledColors(t *testing.T) {
	classifier := NewEventClassifier()

	for _, tag := range []string{"5", "8", "9"} {
		cls, _ := classifier.Classify(models.RawEvent{ID: "e1", Title: "Taro Yamada", ColorTag: tag})
		assert.False(t, cls.Include, "color %s should be excluded", tag)
	}

	cls, _ := classifier.Classify(models.RawEvent{ID: "e1", Title: "Taro Yamada", ColorTag: "3"})
	assert.True(t, cls.Include)
}

func TestClassifyEvaluationMarkers(t *testing.T) {
	classifier := NewEventClassifier()

	cls, effects := classifier.Classify(models.RawEvent{
		ID:          "e1",
		Title:       "Taro Yamada",
		Description: "notes #evaluationReady",
	})
	assert.True(t, cls.EvaluationReady)
	assert.False(t, cls.EvaluationDue)
	require.Len(t, effects, 1)
	assert.Equal(t, ColorEffect{EventID: "e1", Color: "green"}, effects[0])

	cls, effects = classifier.Classify(models.RawEvent{
		ID:          "e2",
		Title:       "Taro Yamada",
		Description: "#evaluationDue",
	})
	assert.True(t, cls.EvaluationDue)
	require.Len(t, effects, 1)
	assert.Equal(t, ColorEffect{EventID: "e2", Color: "red"}, effects[0])
}

func TestClassifyReadyWinsOverDue(t *testing.T) {
	classifier := NewEventClassifier()

	cls, effects := classifier.Classify(models.RawEvent{
		ID:          "e1",
		Title:       "Taro Yamada",
		Description: "#evaluationReady #evaluationDue",
	})
	assert.True(t, cls.EvaluationReady)
	assert.True(t, cls.EvaluationDue)
	require.Len(t, effects, 1)
	assert.Equal(t, "green", effects[0].Color)
}

func TestClassifyTeacherTag(t *testing.T) {
	classifier := NewEventClassifier()

	cls, _ := classifier.Classify(models.RawEvent{
		ID:          "e1",
		Title:       "Taro Yamada",
		Description: "weekly lesson #teacherKacey",
	})
	assert.Equal(t, "Kacey", cls.Teacher)

	cls, _ = classifier.Classify(models.RawEvent{
		ID:          "e2",
		Title:       "Taro Yamada",
		Description: "#TEACHERsmith",
	})
	assert.Equal(t, "smith", cls.Teacher)

	cls, _ = classifier.Classify(models.RawEvent{ID: "e3", Title: "Taro Yamada"})
	assert.Empty(t, cls.Teacher)
}
