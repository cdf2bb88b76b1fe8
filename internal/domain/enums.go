package domain

import "fmt"

type StepStatus string

const (
	StepNotStarted StepStatus = "NOT_STARTED"
	StepInProgress StepStatus = "IN_PROGRESS"
	StepCompleted  StepStatus = "COMPLETED"
)

// ValidStepStatuses is the canonical set of accepted step status strings.
var ValidStepStatuses = map[string]bool{
	"NOT_STARTED": true, "IN_PROGRESS": true, "COMPLETED": true,
}

// ParseStepStatus converts a raw status string into a StepStatus.
// Only the three canonical values are accepted; anything else is an error.
func ParseStepStatus(s string) (StepStatus, error) {
	if !ValidStepStatuses[s] {
		return "", fmt.Errorf("unrecognized step status %q (want NOT_STARTED, IN_PROGRESS or COMPLETED)", s)
	}
	return StepStatus(s), nil
}

// Weight returns the completion weight of a status: not started counts 0,
// in progress counts half, completed counts full.
func (s StepStatus) Weight() float64 {
	switch s {
	case StepInProgress:
		return 0.5
	case StepCompleted:
		return 1.0
	default:
		return 0.0
	}
}
