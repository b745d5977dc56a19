// internal/eligibility/evaluator.go
package eligibility

// Verdict is the binary eligibility classification. Exactly two literal
// values exist; the narrative service is held to the same pair.
type Verdict string

const (
	Eligible    Verdict = "Eligible"
	NotEligible Verdict = "Not Eligible"
)

// Valid reports whether v is one of the two literal verdicts.
func (v Verdict) Valid() bool {
	return v == Eligible || v == NotEligible
}

// Evaluate applies the cutoff rule: a student qualifies when their cutoff
// score meets or exceeds the course cutoff for the selected category. GPA,
// rank, and interests never influence the verdict.
func Evaluate(studentCutoff, courseCutoff float64) Verdict {
	if studentCutoff >= courseCutoff {
		return Eligible
	}
	return NotEligible
}
