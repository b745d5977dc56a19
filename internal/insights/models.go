// internal/insights/models.go
package insights

import (
	"college-compass/internal/common/errors"
	"college-compass/internal/eligibility"
	"college-compass/internal/models"
)

// StudentForm carries the raw form fields exactly as the UI submitted them.
type StudentForm struct {
	Percentage float64 `json:"percentage"`
	Rank       int     `json:"rank"`
	Cutoff     float64 `json:"cutoff"`
	Interests  string  `json:"interests"`
}

// SubmitInput is the full payload of one insight submission.
type SubmitInput struct {
	CollegeID int             `json:"collegeId"`
	CourseID  int             `json:"courseId"`
	Category  models.Category `json:"category"`
	Form      StudentForm     `json:"form"`
}

// InsightRequest is the validated, dispatch-ready value object. College and
// course facts are denormalized at build time so a later catalog change could
// never leak into an in-flight narrative.
type InsightRequest struct {
	Percentage float64
	Rank       int
	Cutoff     float64
	Interests  string

	Category           models.Category
	CollegeName        string
	CollegeDescription string
	CollegeRanking     int
	CourseName         string
	CourseCutoff       float64
}

// InsightResponse is the schema-checked reply from the narrative service.
type InsightResponse struct {
	Eligibility eligibility.Verdict `json:"eligibility"`
	Insights    string              `json:"insights"`
}

// SubmitResult is the outcome surfaced across the presentation boundary.
type SubmitResult struct {
	Success     bool                `json:"success"`
	Eligibility eligibility.Verdict `json:"eligibility,omitempty"`
	Insights    string              `json:"insights,omitempty"`
	Error       string              `json:"error,omitempty"`
	FieldErrors []errors.FieldError `json:"fieldErrors,omitempty"`
}
