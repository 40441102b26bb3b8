package domain

// Feeling is the ordinal post-completion rating, frustrated=1 .. excellent=5.
type Feeling int

const (
	FeelingFrustrated Feeling = 1
	FeelingTired      Feeling = 2
	FeelingNeutral    Feeling = 3
	FeelingGood       Feeling = 4
	FeelingExcellent  Feeling = 5
)

// feelingNames maps the canonical wire strings to ordinal values. This table
// is the single source of truth shared by the pattern analyzer and the
// extended metrics builder.
var feelingNames = map[string]Feeling{
	"frustrated": FeelingFrustrated,
	"tired":      FeelingTired,
	"neutral":    FeelingNeutral,
	"good":       FeelingGood,
	"excellent":  FeelingExcellent,
}

// ParseFeeling resolves a wire string to its ordinal value.
func ParseFeeling(name string) (Feeling, bool) {
	f, ok := feelingNames[name]
	return f, ok
}

func (f Feeling) String() string {
	switch f {
	case FeelingFrustrated:
		return "frustrated"
	case FeelingTired:
		return "tired"
	case FeelingNeutral:
		return "neutral"
	case FeelingGood:
		return "good"
	case FeelingExcellent:
		return "excellent"
	}
	return "unknown"
}

// Valid reports whether the feeling is inside the 1..5 ordinal range.
func (f Feeling) Valid() bool {
	return f >= FeelingFrustrated && f <= FeelingExcellent
}

type BlockType string

const (
	BlockProfundo BlockType = "profundo"
	BlockLigero   BlockType = "ligero"
)

type Horizon string

const (
	HorizonSingleDay Horizon = "single_day"
	HorizonMultiDay  Horizon = "multi_day"
	HorizonAmbiguous Horizon = "ambiguous"
)

// ValidHorizons is the canonical set of accepted horizon strings.
var ValidHorizons = map[string]bool{
	"single_day": true, "multi_day": true, "ambiguous": true,
}

type SessionStage string

const (
	StageIntake     SessionStage = "intake"
	StageClarifying SessionStage = "clarifying"
	StagePlanning   SessionStage = "planning"
	StageFinal      SessionStage = "final"
)

// stageOrder encodes the forward-only progression of session stages.
var stageOrder = map[SessionStage]int{
	StageIntake:     0,
	StageClarifying: 1,
	StagePlanning:   2,
	StageFinal:      3,
}

// CanAdvance reports whether moving from s to next is a forward transition.
func (s SessionStage) CanAdvance(next SessionStage) bool {
	a, okA := stageOrder[s]
	b, okB := stageOrder[next]
	return okA && okB && b > a
}

type GapSeverity string

const (
	SeverityLow    GapSeverity = "low"
	SeverityMedium GapSeverity = "medium"
	SeverityHigh   GapSeverity = "high"
)

// SeverityPriority returns a sort priority (lower = more urgent).
func SeverityPriority(s GapSeverity) int {
	switch s {
	case SeverityHigh:
		return 0
	case SeverityMedium:
		return 1
	default:
		return 2
	}
}

// GapKey identifies one of the fixed clarification dimensions.
type GapKey string

const (
	GapHorizonClarity   GapKey = "horizon_clarity"
	GapDateRange        GapKey = "date_range"
	GapDayScope         GapKey = "day_scope"
	GapFixedCommitments GapKey = "fixed_commitments"
	GapEnergyPattern    GapKey = "energy_pattern"
	GapStudyWindow      GapKey = "study_window"
	GapTrainingSpacing  GapKey = "training_spacing"
	GapTaskDistribution GapKey = "task_distribution"
)

// GapKeyOrder is the fixed declaration order used for deterministic rule
// evaluation and stable tie-breaking in question generation.
var GapKeyOrder = []GapKey{
	GapHorizonClarity,
	GapDateRange,
	GapDayScope,
	GapFixedCommitments,
	GapEnergyPattern,
	GapStudyWindow,
	GapTrainingSpacing,
	GapTaskDistribution,
}

// GapKeyRank returns the declaration-order index of key, or len(GapKeyOrder)
// for unknown keys so they sort last.
func GapKeyRank(key GapKey) int {
	for i, k := range GapKeyOrder {
		if k == key {
			return i
		}
	}
	return len(GapKeyOrder)
}

type TrendLabel string

const (
	TrendImproving TrendLabel = "improving"
	TrendDeclining TrendLabel = "declining"
	TrendStable    TrendLabel = "stable"
)

// PreferenceUnknown is the sentinel value an extractor emits when a
// categorical preference could not be inferred from the request text.
const PreferenceUnknown = "unknown"
