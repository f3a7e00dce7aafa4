package domain

type Phase string

const (
	PhaseBuild   Phase = "BUILD"
	PhaseSharpen Phase = "SHARPEN"
	PhaseTaper   Phase = "TAPER"
)

type ReadinessStatus string

const (
	ReadinessReady     ReadinessStatus = "READY"
	ReadinessFatigued  ReadinessStatus = "FATIGUED"
	ReadinessNeedsRest ReadinessStatus = "NEEDS_REST"
)

// Severity orders readiness statuses so that rules can only escalate.
func (s ReadinessStatus) Severity() int {
	switch s {
	case ReadinessFatigued:
		return 1
	case ReadinessNeedsRest:
		return 2
	default:
		return 0
	}
}

type Intensity string

const (
	IntensityEasy     Intensity = "easy"
	IntensityModerate Intensity = "moderate"
	IntensityHard     Intensity = "hard"
	IntensityRest     Intensity = "rest"
)

type SessionType string

const (
	SessionPool      SessionType = "pool"
	SessionOpenWater SessionType = "open_water"
	SessionRest      SessionType = "rest"
)

// ValidSessionTypes lists the types a swimmer can log or request.
var ValidSessionTypes = map[SessionType]bool{
	SessionPool:      true,
	SessionOpenWater: true,
}

type EffortLevel string

const (
	EffortEasy     EffortLevel = "easy"
	EffortModerate EffortLevel = "moderate"
	EffortHard     EffortLevel = "hard"
)

// ValidEffortLevels is the canonical set of accepted effort strings.
var ValidEffortLevels = map[EffortLevel]bool{
	EffortEasy:     true,
	EffortModerate: true,
	EffortHard:     true,
}

type Goal string

const (
	GoalFinishComfortably Goal = "finish_comfortably"
	GoalTargetTime        Goal = "target_time"
	GoalPersonalBest      Goal = "personal_best"
	GoalJustFinish        Goal = "just_finish"
)

var ValidGoals = map[Goal]bool{
	GoalFinishComfortably: true,
	GoalTargetTime:        true,
	GoalPersonalBest:      true,
	GoalJustFinish:        true,
}

type Tone string

const (
	ToneNeutral   Tone = "neutral"
	ToneCalm      Tone = "calm"
	ToneToughLove Tone = "tough_love"
)

var ValidTones = map[Tone]bool{
	ToneNeutral:   true,
	ToneCalm:      true,
	ToneToughLove: true,
}

type PlanOperation string

const (
	OpGenerate PlanOperation = "generate"
	OpAdapt    PlanOperation = "adapt"
	OpScale    PlanOperation = "scale"
)

// Template tags with planner meaning.
const (
	TagRecovery       = "recovery"
	TagRaceSpecific   = "race_specific"
	TagTaper          = "taper"
	TagRest           = "rest"
	TagLongSwim       = "long_swim"
	TagTechnique      = "technique"
	TagSpeed          = "speed"
	TagOpenWaterSkill = "open_water_skill"
)
