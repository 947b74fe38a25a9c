package entity

import (
	"strings"

	domainerrors "crm/internal/domain/errors"
	"crm/internal/errors"
)

// Stage is a customer's lifecycle classification.
type Stage string

const (
	StageNew     Stage = "NEW"
	StageActive  Stage = "ACTIVE"
	StageAtRisk  Stage = "ATRISK"
	StageChurned Stage = "CHURNED"
)

// Stages lists every stage in lifecycle order.
func Stages() []Stage {
	return []Stage{StageNew, StageActive, StageAtRisk, StageChurned}
}

// String returns the string representation of the Stage.
func (s Stage) String() string {
	return string(s)
}

// IsValid checks if the Stage is one of the closed set of stages.
func (s Stage) IsValid() bool {
	switch s {
	case StageNew, StageActive, StageAtRisk, StageChurned:
		return true
	default:
		return false
	}
}

// Is compares two stages ignoring case. Stored stages are upper case,
// but rows written by older clients may not be.
func (s Stage) Is(other Stage) bool {
	return strings.EqualFold(string(s), string(other))
}

// ParseStage validates a stage name supplied on the override path.
// The match is exact: "active" is rejected.
func ParseStage(raw string) (Stage, error) {
	stage := Stage(raw)
	if !stage.IsValid() {
		return "", errors.Wrapf(domainerrors.ErrInvalidStage, "stage %q", raw)
	}

	return stage, nil
}

// StageForActivity maps an activity type to the stage it moves a customer into.
// The mapping ignores the customer's current stage; ok is false for activity
// types that only need to be marked processed (created).
func StageForActivity(activityType ActivityType) (stage Stage, ok bool) {
	switch strings.ToLower(string(activityType)) {
	case "purchase":
		return StageActive, true
	case "ticketraise":
		return StageAtRisk, true
	case "settlement":
		return StageChurned, true
	default:
		return "", false
	}
}
