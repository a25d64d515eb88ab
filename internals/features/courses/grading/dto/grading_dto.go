package dto

type SubmitFormDTO struct {
	Answers map[string]interface{} `json:"answers" validate:"required"`
}

// EnterGradeDTO is the instructor-entered course or final grade.
type EnterGradeDTO struct {
	UserID     string  `json:"user_id" validate:"required,uuid4"`
	GradeType  string  `json:"grade_type" validate:"required,oneof=course final"`
	GradeScale float64 `json:"grade_scale" validate:"required,gte=1,lte=10"`
	Passed     bool    `json:"passed"`
	Feedback   string  `json:"feedback" validate:"omitempty,max=500"`
}
