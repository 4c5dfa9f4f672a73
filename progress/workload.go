package progress

import (
	"math"
	"time"

	"goalquest/model"
)

type WorkloadTier string

const (
	WorkloadNone   WorkloadTier = "none"
	WorkloadLow    WorkloadTier = "low"
	WorkloadMedium WorkloadTier = "medium"
	WorkloadHigh   WorkloadTier = "high"
)

// Type weights for the workload score.
const (
	weightShort  = 1.0
	weightMedium = 1.5
	weightLong   = 2.0
)

// GoalWeight returns the workload weight of a goal type.
func GoalWeight(t model.GoalType) float64 {
	switch t {
	case model.GoalTypeMedium:
		return weightMedium
	case model.GoalTypeLong:
		return weightLong
	default:
		return weightShort
	}
}

// Workload sums the weights of active goals whose deadline window
// overlaps a candidate deadline. Two windows overlap when, measured from
// the shared anchor now, either deadline falls strictly inside the
// other's window. Completed and archived goals never contribute.
func Workload(candidate time.Time, goals []*model.Goal, now time.Time) float64 {
	var total float64
	for _, g := range goals {
		if g.IsCompleted || g.IsArchived {
			continue
		}
		if overlaps(now, candidate, g.Deadline) {
			total += GoalWeight(g.Type)
		}
	}
	return total
}

// BlueprintWorkload extends the active workload with the blueprint's own
// prospective goals, so the advisory reflects the load after applying
// the whole batch.
func BlueprintWorkload(candidate time.Time, goals []*model.Goal, batch []model.BlueprintGoal, now time.Time) float64 {
	total := Workload(candidate, goals, now)
	for _, bg := range batch {
		total += GoalWeight(bg.Type)
	}
	return total
}

func overlaps(now, candidate, deadline time.Time) bool {
	return (now.Before(candidate) && candidate.Before(deadline)) ||
		(now.Before(deadline) && deadline.Before(candidate))
}

// ClassifyWorkload maps a workload score to the tier used by the
// single-goal creation flow.
func ClassifyWorkload(score float64) WorkloadTier {
	switch {
	case score == 0:
		return WorkloadNone
	case score < 3:
		return WorkloadLow
	case score < 6:
		return WorkloadMedium
	default:
		return WorkloadHigh
	}
}

// ClassifyBlueprintWorkload maps a workload score to the tier used when
// applying a blueprint batch. The cutoffs intentionally differ from
// ClassifyWorkload; the two call sites in the product use different
// thresholds and are kept as separate named policies.
func ClassifyBlueprintWorkload(score float64) WorkloadTier {
	switch {
	case score < 5:
		return WorkloadLow
	case score < 10:
		return WorkloadMedium
	default:
		return WorkloadHigh
	}
}

// Advice returns the advisory copy shown next to a workload tier.
func (t WorkloadTier) Advice() string {
	switch t {
	case WorkloadNone:
		return "No overlapping goals in this period. Good time to start something new."
	case WorkloadLow:
		return "Light overlap with existing goals. This should be manageable."
	case WorkloadMedium:
		return "Moderate overlap with existing goals. Consider your available time."
	default:
		return "Heavy overlap with existing goals. Finishing something first may help."
	}
}

type DeadlineFit string

const (
	DeadlineTooSoon DeadlineFit = "too_soon"
	DeadlineTooFar  DeadlineFit = "too_far"
	DeadlineOK      DeadlineFit = "ok"
)

// DeadlineAssessment is the guidance shown while picking a deadline for
// a new goal. Tone is the display color tier: amber for a questionable
// deadline, green for a fitting one.
type DeadlineAssessment struct {
	Fit         DeadlineFit `json:"fit"`
	Tone        string      `json:"tone"`
	DaysFromNow int         `json:"days_from_now"`
	Advice      string      `json:"advice"`
}

// AssessDeadline checks a candidate deadline against the expected range
// of its goal type: short 7-30 days, medium 30-90, long 90 and up with
// no upper bound.
func AssessDeadline(goalType model.GoalType, deadline, now time.Time) DeadlineAssessment {
	days := int(math.Ceil(deadline.Sub(now).Hours() / 24))

	fit := DeadlineOK
	switch goalType {
	case model.GoalTypeShort:
		if days < 7 {
			fit = DeadlineTooSoon
		} else if days > 30 {
			fit = DeadlineTooFar
		}
	case model.GoalTypeMedium:
		if days < 30 {
			fit = DeadlineTooSoon
		} else if days > 90 {
			fit = DeadlineTooFar
		}
	case model.GoalTypeLong:
		if days < 90 {
			fit = DeadlineTooSoon
		}
	}

	assessment := DeadlineAssessment{Fit: fit, DaysFromNow: days}
	switch fit {
	case DeadlineTooSoon:
		assessment.Tone = "amber"
		assessment.Advice = "This deadline is close for a " + string(goalType) + "-term goal. Consider giving yourself more time."
	case DeadlineTooFar:
		assessment.Tone = "amber"
		assessment.Advice = "This deadline is far out for a " + string(goalType) + "-term goal. A nearer date may keep momentum."
	default:
		assessment.Tone = "green"
		assessment.Advice = "This deadline fits a " + string(goalType) + "-term goal."
	}
	return assessment
}
