// internal/insights/prompt.go
package insights

import (
	"fmt"
	"strings"
)

// renderPrompt produces the deterministic prompt for one request. Every
// InsightRequest field is substituted; the eligibility rule is stated for the
// model to apply, and the narrative is requested regardless of the verdict.
func renderPrompt(req *InsightRequest) string {
	var parts []string

	parts = append(parts, "You are an expert college advisor providing personalized insights to students seeking engineering admissions.")

	parts = append(parts, "\nCollege Details:")
	parts = append(parts, fmt.Sprintf("- Name: %s", req.CollegeName))
	parts = append(parts, fmt.Sprintf("- Description: %s", req.CollegeDescription))
	parts = append(parts, fmt.Sprintf("- National Ranking: %d", req.CollegeRanking))
	parts = append(parts, fmt.Sprintf("- Course: %s", req.CourseName))
	parts = append(parts, fmt.Sprintf("- Cutoff for %s category: %g", req.Category, req.CourseCutoff))

	parts = append(parts, "\nStudent Profile:")
	parts = append(parts, fmt.Sprintf("- Percentage: %g", req.Percentage))
	parts = append(parts, fmt.Sprintf("- Rank: %d", req.Rank))
	parts = append(parts, fmt.Sprintf("- Cutoff Score: %g", req.Cutoff))
	parts = append(parts, fmt.Sprintf("- Interests: %s", req.Interests))

	parts = append(parts, "\nInstructions:")
	parts = append(parts, fmt.Sprintf("- Determine eligibility: the student is \"Eligible\" if their cutoff score (%g) is greater than or equal to the course cutoff (%g), otherwise \"Not Eligible\".", req.Cutoff, req.CourseCutoff))
	parts = append(parts, "- Regardless of eligibility, assess the student's fit with this college and course: academic alignment, extracurricular opportunities, and overall campus culture.")
	parts = append(parts, "- Highlight strengths and areas for improvement.")
	parts = append(parts, `- Reply with a single JSON object of the form {"eligibility": "Eligible" | "Not Eligible", "insights": "..."} and nothing else.`)

	return strings.Join(parts, "\n")
}
