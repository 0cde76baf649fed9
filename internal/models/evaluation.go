package models

// Evaluation is one scored evaluation row for a student.
type Evaluation struct {
	ID          string `db:"id" json:"id"`
	StudentName string `db:"student_name" json:"student_name"`
	Number      int    `db:"number" json:"evaluationNumber"`
	DateLabel   string `db:"date_label" json:"evaluationDate"`
	Grammar     string `db:"grammar" json:"grammar"`
	Vocabulary  string `db:"vocabulary" json:"vocabulary"`
	Speaking    string `db:"speaking" json:"speaking"`
	Listening   string `db:"listening" json:"listening"`
	Reading     string `db:"reading" json:"reading"`
	Writing     string `db:"writing" json:"writing"`
	Fluency     string `db:"fluency" json:"fluency"`
	SelfStudy   string `db:"self_study" json:"selfStudy"`
}
