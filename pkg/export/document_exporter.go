package export

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
)

// LessonNoteDocument carries the content of a single lesson-note PDF.
type LessonNoteDocument struct {
	StudentName     string
	Date            string
	Teacher         string
	WarmUpTopic     string
	UnitPages       string
	Homework        string
	Comments        string
	StudentRequests string
	Advice          string
}

// EvaluationScore is one dated score row inside an evaluation document.
type EvaluationScore struct {
	Date       string
	Grammar    string
	Vocabulary string
	Speaking   string
	Listening  string
	Reading    string
	Writing    string
	Fluency    string
	SelfStudy  string
}

// EvaluationDocument carries the content of a student evaluation PDF.
type EvaluationDocument struct {
	StudentName string
	Level       string
	Textbook    string
	Scores      []EvaluationScore
}

// DocumentExporter renders lesson notes and evaluations as PDFs.
type DocumentExporter struct{}

// NewDocumentExporter constructs a document exporter.
func NewDocumentExporter() *DocumentExporter {
	return &DocumentExporter{}
}

// RenderLessonNote produces the lesson-note PDF bytes.
func (e *DocumentExporter) RenderLessonNote(doc LessonNoteDocument) ([]byte, error) {
	if doc.StudentName == "" {
		return nil, fmt.Errorf("lesson note requires a student name")
	}
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 20, 15)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(0, 10, fmt.Sprintf("%s's Lesson Note", doc.StudentName), "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 11)
	pdf.CellFormat(0, 8, fmt.Sprintf("Date: %s    Teacher: %s", doc.Date, doc.Teacher), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	sections := []struct {
		label string
		value string
	}{
		{"Warm-up Topic", doc.WarmUpTopic},
		{"Unit / Pages", doc.UnitPages},
		{"Homework", doc.Homework},
		{"Comments", doc.Comments},
		{"Student Requests", doc.StudentRequests},
		{"Advice", doc.Advice},
	}
	for _, section := range sections {
		pdf.SetFont("Arial", "B", 11)
		pdf.CellFormat(0, 7, section.label, "", 1, "", false, 0, "")
		pdf.SetFont("Arial", "", 10)
		value := section.value
		if value == "" {
			value = "-"
		}
		pdf.MultiCell(0, 6, value, "", "", false)
		pdf.Ln(2)
	}

	buf := &bytes.Buffer{}
	if err := pdf.Output(buf); err != nil {
		return nil, fmt.Errorf("render lesson note pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// RenderEvaluation produces the evaluation PDF bytes.
func (e *DocumentExporter) RenderEvaluation(doc EvaluationDocument) ([]byte, error) {
	if doc.StudentName == "" {
		return nil, fmt.Errorf("evaluation requires a student name")
	}
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 20, 15)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(0, 10, "STUDENT EVALUATION", "", 1, "C", false, 0, "")
	pdf.Ln(2)
	pdf.SetFont("Arial", "", 11)
	pdf.CellFormat(0, 7, fmt.Sprintf("Student Name: %s", doc.StudentName), "", 1, "", false, 0, "")
	pdf.CellFormat(0, 7, fmt.Sprintf("Level: %s", doc.Level), "", 1, "", false, 0, "")
	pdf.CellFormat(0, 7, fmt.Sprintf("Textbook: %s", doc.Textbook), "", 1, "", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(0, 8, "SCORES", "", 1, "", false, 0, "")
	if len(doc.Scores) == 0 {
		pdf.SetFont("Arial", "", 10)
		pdf.CellFormat(0, 6, "No scores recorded.", "", 1, "", false, 0, "")
	}
	for _, score := range doc.Scores {
		pdf.SetFont("Arial", "B", 10)
		pdf.CellFormat(0, 6, fmt.Sprintf("Date: %s", score.Date), "", 1, "", false, 0, "")
		pdf.SetFont("Arial", "", 10)
		pdf.CellFormat(0, 6, fmt.Sprintf("Grammar: %s, Vocabulary: %s, Speaking: %s", score.Grammar, score.Vocabulary, score.Speaking), "", 1, "", false, 0, "")
		pdf.CellFormat(0, 6, fmt.Sprintf("Listening: %s, Reading: %s, Writing: %s", score.Listening, score.Reading, score.Writing), "", 1, "", false, 0, "")
		pdf.CellFormat(0, 6, fmt.Sprintf("Fluency: %s, Self-study: %s", score.Fluency, score.SelfStudy), "", 1, "", false, 0, "")
		pdf.Ln(2)
	}

	buf := &bytes.Buffer{}
	if err := pdf.Output(buf); err != nil {
		return nil, fmt.Errorf("render evaluation pdf: %w", err)
	}
	return buf.Bytes(), nil
}
