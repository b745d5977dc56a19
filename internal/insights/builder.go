// internal/insights/builder.go
package insights

import (
	"fmt"
	"unicode/utf8"

	"college-compass/internal/common/errors"
	"college-compass/internal/models"
)

const (
	interestsMinLength = 10
	interestsMaxLength = 500
)

// BuildRequest validates the raw form against its field constraints and, on
// success, assembles an InsightRequest with college/course facts snapshotted
// from the passed records. It fails closed: any field error, or the ALL
// filter sentinel, means nothing is built and nothing may be dispatched.
func BuildRequest(form StudentForm, college models.College, course models.Course, category models.Category) (*InsightRequest, error) {
	var fieldErrors []errors.FieldError

	if !category.IsConcrete() {
		fieldErrors = append(fieldErrors, errors.FieldError{
			Field:   "category",
			Code:    string(errors.ErrCodeCategoryNotSelected),
			Message: "Select a concrete admission category before requesting insights",
		})
	}

	if form.Percentage < 0 || form.Percentage > 100 {
		fieldErrors = append(fieldErrors, errors.FieldError{
			Field:   "percentage",
			Code:    "OUT_OF_RANGE",
			Message: "Percentage must be between 0 and 100",
		})
	}

	if form.Rank < 1 {
		fieldErrors = append(fieldErrors, errors.FieldError{
			Field:   "rank",
			Code:    "OUT_OF_RANGE",
			Message: "Rank must be 1 or greater",
		})
	}

	if form.Cutoff < 0 {
		fieldErrors = append(fieldErrors, errors.FieldError{
			Field:   "cutoff",
			Code:    "OUT_OF_RANGE",
			Message: "Cutoff score cannot be negative",
		})
	}

	if n := utf8.RuneCountInString(form.Interests); n < interestsMinLength || n > interestsMaxLength {
		fieldErrors = append(fieldErrors, errors.FieldError{
			Field: "interests",
			Code:  "INVALID_LENGTH",
			Message: fmt.Sprintf("Interests must be between %d and %d characters",
				interestsMinLength, interestsMaxLength),
		})
	}

	if len(fieldErrors) > 0 {
		return nil, errors.NewValidationFailedError(fieldErrors)
	}

	courseCutoff, ok := course.Cutoff(category)
	if !ok {
		// Unreachable with a schema-checked catalog, but fail closed anyway.
		return nil, errors.NewValidationFailedError([]errors.FieldError{{
			Field:   "category",
			Code:    "CUTOFF_MISSING",
			Message: fmt.Sprintf("Course %q has no cutoff for category %s", course.Name, category),
		}})
	}

	return &InsightRequest{
		Percentage:         form.Percentage,
		Rank:               form.Rank,
		Cutoff:             form.Cutoff,
		Interests:          form.Interests,
		Category:           category,
		CollegeName:        college.Name,
		CollegeDescription: college.Description,
		CollegeRanking:     college.Ranking,
		CourseName:         course.Name,
		CourseCutoff:       courseCutoff,
	}, nil
}
