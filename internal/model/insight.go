package model

// RiskLevel is the discrete risk tier attached to a task.
type RiskLevel string

const (
	RiskGreen RiskLevel = "green"
	RiskAmber RiskLevel = "amber"
	RiskRed   RiskLevel = "red"
)

// AuthoritySuggestion is a ranked candidate approving authority for a task.
type AuthoritySuggestion struct {
	AuthorityID string
	Title       string
	OrgUnitID   string
	Grade       string
	Confidence  float64 // in [0.4, 0.9]
	Rationale   string
}

// RiskInsight is the derived lateness-risk view of a task.
type RiskInsight struct {
	TaskID             string
	RiskLevel          RiskLevel
	LateProbability    float64 // in [0, 1]
	Drivers            []string
	RecommendedActions []string
}

// Severity grades a quality issue.
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// Rank orders severities so pass/fail can be decided generically against
// severity rather than against individual rule identities.
func (s Severity) Rank() int {
	switch s {
	case SeverityLow:
		return 1
	case SeverityMedium:
		return 2
	case SeverityHigh:
		return 3
	default:
		return 0
	}
}

// QualityIssue is a single completeness finding on a task.
type QualityIssue struct {
	Code     string
	Severity Severity
	Message  string
}

// QualityCheckResult is the outcome of running all completeness rules.
// Passed is true iff no issue of severity medium or higher was emitted.
type QualityCheckResult struct {
	TaskID string
	Issues []QualityIssue
	Passed bool
}

// TaskSummary is a heuristic, template-based digest of a task.
type TaskSummary struct {
	Summary   string
	RiskLevel RiskLevel
	KeyPoints []string
}
