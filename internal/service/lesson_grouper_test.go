package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khaCey/Teachers-Calendar/internal/models"
)

func TestGroupCollapsesByEventPreservingOrder(t *testing.T) {
	grouper := NewLessonGrouper()

	records := grouper.Group([]models.Occurrence{
		{EventID: "e1", EventName: "Taro and Hanako Yamada", StudentName: "Taro Yamada", FolderKey: "001 Yamada"},
		{EventID: "e2", EventName: "Ken Sato", StudentName: "Ken Sato", FolderKey: "002 Sato"},
		{EventID: "e1", EventName: "Taro and Hanako Yamada", StudentName: "Hanako Yamada", FolderKey: "001 Yamada"},
	})

	require.Len(t, records, 2)
	assert.Equal(t, "e1", records[0].EventID)
	assert.Equal(t, []string{"Taro Yamada", "Hanako Yamada"}, records[0].StudentNames)
	assert.Equal(t, "e2", records[1].EventID)
	assert.Equal(t, []string{"Ken Sato"}, records[1].StudentNames)
}

func TestGroupStickyEvaluationFlags(t *testing.T) {
	grouper := NewLessonGrouper()

	records := grouper.Group([]models.Occurrence{
		{EventID: "e1", StudentName: "Taro Yamada", EvaluationReady: false},
		{EventID: "e1", StudentName: "Hanako Yamada", EvaluationReady: true, EvaluationDue: true},
		{EventID: "e1", StudentName: "Jiro Yamada"},
	})

	require.Len(t, records, 1)
	assert.True(t, records[0].EvaluationReady)
	assert.True(t, records[0].EvaluationDue)
}

func TestGroupFirstNonEmptyTeacherWins(t *testing.T) {
	grouper := NewLessonGrouper()

	records := grouper.Group([]models.Occurrence{
		{EventID: "e1", StudentName: "A", Teacher: ""},
		{EventID: "e1", StudentName: "B", Teacher: "Kacey"},
		{EventID: "e1", StudentName: "C", Teacher: "Smith"},
	})

	require.Len(t, records, 1)
	assert.Equal(t, "Kacey", records[0].Teacher)
}

func TestGroupOperatorFlagsStartFalse(t *testing.T) {
	grouper := NewLessonGrouper()

	records := grouper.Group([]models.Occurrence{{EventID: "e1", StudentName: "Taro Yamada"}})
	require.Len(t, records, 1)
	assert.False(t, records[0].PDFUploaded)
	assert.False(t, records[0].HistoryRecorded)
}

func TestGroupDuplicateNamesKept(t *testing.T) {
	grouper := NewLessonGrouper()

	records := grouper.Group([]models.Occurrence{
		{EventID: "e1", StudentName: "Taro Yamada"},
		{EventID: "e1", StudentName: "Taro Yamada"},
	})
	require.Len(t, records, 1)
	assert.Equal(t, []string{"Taro Yamada", "Taro Yamada"}, records[0].StudentNames)
}

func TestGroupEmptyInput(t *testing.T) {
	grouper := NewLessonGrouper()
	assert.Empty(t, grouper.Group(nil))
}
