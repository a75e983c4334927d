// Package scoring turns an answer set into a bounded concentration score.
//
// Both formulas share one shape: a baseline level read from single-choice
// answers, minus a penalty proportional to how many negative-indicator
// checkboxes were ticked, plus a bonus proportional to how many coping
// strategies were ticked, clamped to the 1-4 scale and projected to a
// percentage. Scoring is total: malformed or missing inputs degrade to
// documented defaults instead of failing.
package scoring

import (
	"log/slog"
	"math"
	"strconv"
	"strings"

	"github.com/kdossou/focusedu/internal/catalog"
	"github.com/kdossou/focusedu/internal/model"
)

// Config holds the divisors and weights of both formulas. Divisors mirror the
// active catalog's option pools; DefaultConfig derives them from it so a
// catalog revision changes the weights with it.
type Config struct {
	StudentDistractionPool int
	StudentStrategyPool    int

	TeacherManifestationPool int
	TeacherEffectPool        int
	TeacherStrategyPool      int
	// TeacherPenaltyWeight damps the combined teacher penalty term.
	TeacherPenaltyWeight float64
}

// DefaultConfig derives the scoring configuration from the active catalogs.
func DefaultConfig() Config {
	return Config{
		StudentDistractionPool:   mustPenaltyPool(model.RoleStudent, "q2"),
		StudentStrategyPool:      mustBonusPool(model.RoleStudent, "q5"),
		TeacherManifestationPool: mustPenaltyPool(model.RoleTeacher, "q2"),
		TeacherEffectPool:        mustPenaltyPool(model.RoleTeacher, "q4"),
		TeacherStrategyPool:      mustBonusPool(model.RoleTeacher, "q5"),
		TeacherPenaltyWeight:     0.7,
	}
}

func mustPenaltyPool(role model.Role, id string) int {
	q, ok := catalog.Find(role, id)
	if !ok {
		panic("scoring: missing catalog question " + string(role) + "/" + id)
	}
	return q.PenaltyPool()
}

func mustBonusPool(role model.Role, id string) int {
	q, ok := catalog.Find(role, id)
	if !ok {
		panic("scoring: missing catalog question " + string(role) + "/" + id)
	}
	return q.BonusPool()
}

// Label scales for the single-choice baseline questions. The teacher scale is
// inverted: frequent observation of inattention means a lower baseline.
var (
	StudentAttentionScale = map[string]int{
		"Oui, toujours": 4,
		"Parfois":       3,
		"Rarement":      2,
		"Jamais":        1,
	}
	StudentImpactScale = map[string]int{
		"Oui, beaucoup": 4,
		"Oui, un peu":   3,
		"Non":           1,
	}
	TeacherObservationScale = map[string]int{
		"Oui, très souvent": 1,
		"Parfois":           2,
		"Rarement":          3,
		"Jamais":            4,
	}
)

// Engine scores answer sets. It is stateless apart from its configuration;
// both Score methods are pure.
type Engine struct {
	cfg Config
}

// NewEngine returns an Engine using the given configuration.
func NewEngine(cfg Config) *Engine {
	return &Engine{cfg: cfg}
}

// ResolveLevel maps a stored single-choice value to its numeric level.
// Unrecognized labels fall back to integer parsing, then to level 1; the
// second return reports that a fallback was taken. Never fails.
func ResolveLevel(value string, scale map[string]int) (int, bool) {
	if lvl, ok := scale[value]; ok {
		return lvl, false
	}
	if n, err := strconv.Atoi(strings.TrimSpace(value)); err == nil {
		return n, true
	}
	return 1, true
}

// ScoreStudent scores a student answer set.
//
// base = (q1 + q4) / 2, penalty = |q2| / distraction pool,
// bonus = |q5| / strategy pool. q3 is informational and never scored.
func (e *Engine) ScoreStudent(answers model.AnswerSet) model.ScoreResult {
	q1, deg1 := ResolveLevel(answers.Value("q1"), StudentAttentionScale)
	q4, deg4 := ResolveLevel(answers.Value("q4"), StudentImpactScale)
	if deg1 || deg4 {
		slog.Debug("degraded student score inputs",
			"q1", answers.Value("q1"), "q4", answers.Value("q4"))
	}

	base := (float64(q1) + float64(q4)) / 2
	penalty := float64(len(answers.Values("q2"))) / float64(e.cfg.StudentDistractionPool)
	bonus := float64(len(answers.Values("q5"))) / float64(e.cfg.StudentStrategyPool)

	return e.finish(base - penalty + bonus)
}

// ScoreTeacher scores a teacher answer set.
//
// base = q1 alone; the penalty combines manifestations (q2) and effects on
// lessons (q4), each divided by its own pool, then damped by one shared
// weight. q3 is informational and never scored.
func (e *Engine) ScoreTeacher(answers model.AnswerSet) model.ScoreResult {
	q1, deg := ResolveLevel(answers.Value("q1"), TeacherObservationScale)
	if deg {
		slog.Debug("degraded teacher score input", "q1", answers.Value("q1"))
	}

	base := float64(q1)
	penalty := (float64(len(answers.Values("q2")))/float64(e.cfg.TeacherManifestationPool) +
		float64(len(answers.Values("q4")))/float64(e.cfg.TeacherEffectPool)) *
		e.cfg.TeacherPenaltyWeight
	bonus := float64(len(answers.Values("q5"))) / float64(e.cfg.TeacherStrategyPool)

	return e.finish(base - penalty + bonus)
}

func (e *Engine) finish(adjusted float64) model.ScoreResult {
	adjusted = clamp(adjusted, 1, 4)
	pct := int(math.Round(adjusted / 4 * 100))
	return model.ScoreResult{
		Raw:        adjusted,
		Percentage: pct,
		Category:   Classify(pct),
	}
}

// Classify buckets a percentage into the three categories. Boundary values 50
// and 75 belong to the lower category.
func Classify(percentage int) model.Category {
	switch {
	case percentage <= 50:
		return model.CategoryLow
	case percentage <= 75:
		return model.CategoryMedium
	default:
		return model.CategoryHigh
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
