package intelligence

import (
	"context"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/dmolina/ritmo/internal/domain"
)

// heuristicExtractor is the deterministic fallback used when the LLM is
// disabled or unreachable. It infers what keyword matching can support and
// reports low confidence for everything else, so uncertainty still surfaces
// as clarifying questions downstream.
type heuristicExtractor struct{}

// NewHeuristicExtractor creates the keyword-based fallback extractor.
func NewHeuristicExtractor() IntentExtractor {
	return heuristicExtractor{}
}

var (
	daysPattern    = regexp.MustCompile(`(?i)\b(\d+)\s*(?:days?|días?)\b`)
	minutesPattern = regexp.MustCompile(`(?i)\b(\d+)\s*(?:min|minutes?|minutos?)\b`)
	hoursPattern   = regexp.MustCompile(`(?i)\b(\d+)\s*(?:h|hours?|horas?)\b`)
)

var multiDayWords = []string{"week", "days", "semana", "días", "several", "next few"}
var singleDayWords = []string{"today", "tomorrow", "hoy", "mañana", "this afternoon", "tonight"}

// taskKeywords maps request keywords to a task type and a default estimate.
var taskKeywords = []struct {
	word   string
	typ    string
	estMin int
}{
	{"study", "study", 120},
	{"estudiar", "study", 120},
	{"exam", "study", 120},
	{"train", "training", 60},
	{"gym", "training", 60},
	{"entrenar", "training", 60},
	{"run", "training", 45},
	{"read", "reading", 45},
	{"leer", "reading", 45},
	{"write", "deep_work", 90},
	{"project", "deep_work", 90},
	{"work", "deep_work", 90},
}

func (heuristicExtractor) Extract(_ context.Context, text string, _ time.Time) (*domain.PlanIntent, error) {
	lower := strings.ToLower(text)

	intent := domain.PlanIntent{
		Horizon:    domain.HorizonAmbiguous,
		Confidence: 0.3,
	}

	if m := daysPattern.FindStringSubmatch(lower); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil && n > 1 {
			intent.Horizon = domain.HorizonMultiDay
			intent.HorizonDays = n
			intent.Confidence = 0.55
		}
	}
	if intent.Horizon == domain.HorizonAmbiguous {
		for _, w := range multiDayWords {
			if strings.Contains(lower, w) {
				intent.Horizon = domain.HorizonMultiDay
				intent.Confidence = 0.45
				break
			}
		}
	}
	if intent.Horizon == domain.HorizonAmbiguous {
		for _, w := range singleDayWords {
			if strings.Contains(lower, w) {
				intent.Horizon = domain.HorizonSingleDay
				intent.Confidence = 0.5
				break
			}
		}
	}

	estimate := 0
	if m := minutesPattern.FindStringSubmatch(lower); m != nil {
		estimate, _ = strconv.Atoi(m[1])
	} else if m := hoursPattern.FindStringSubmatch(lower); m != nil {
		if h, err := strconv.Atoi(m[1]); err == nil {
			estimate = h * 60
		}
	}

	seen := make(map[string]bool)
	for _, kw := range taskKeywords {
		if !strings.Contains(lower, kw.word) || seen[kw.typ] {
			continue
		}
		seen[kw.typ] = true
		est := kw.estMin
		if estimate > 0 {
			est = estimate
		}
		intent.Tasks = append(intent.Tasks, domain.PlanIntentTask{
			Title:        kw.word,
			Type:         kw.typ,
			EstimatedMin: est,
			Confidence:   0.4,
		})
	}

	NormalizeIntent(&intent)
	return &intent, nil
}
