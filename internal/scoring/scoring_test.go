package scoring

import (
	"testing"

	"github.com/kdossou/focusedu/internal/model"
)

func TestDefaultConfigPools(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.StudentDistractionPool != 5 {
		t.Errorf("expected student distraction pool 5, got %d", cfg.StudentDistractionPool)
	}
	if cfg.StudentStrategyPool != 3 {
		t.Errorf("expected student strategy pool 3, got %d", cfg.StudentStrategyPool)
	}
	if cfg.TeacherManifestationPool != 5 {
		t.Errorf("expected teacher manifestation pool 5, got %d", cfg.TeacherManifestationPool)
	}
	if cfg.TeacherEffectPool != 4 {
		t.Errorf("expected teacher effect pool 4, got %d", cfg.TeacherEffectPool)
	}
	if cfg.TeacherStrategyPool != 3 {
		t.Errorf("expected teacher strategy pool 3, got %d", cfg.TeacherStrategyPool)
	}
	if cfg.TeacherPenaltyWeight != 0.7 {
		t.Errorf("expected teacher penalty weight 0.7, got %v", cfg.TeacherPenaltyWeight)
	}
}

func TestResolveLevel(t *testing.T) {
	tests := []struct {
		name         string
		value        string
		wantLevel    int
		wantDegraded bool
	}{
		{"known label", "Parfois", 3, false},
		{"numeric fallback", "2", 2, true},
		{"numeric with spaces", " 3 ", 3, true},
		{"unknown label", "n/a", 1, true},
		{"empty", "", 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			level, degraded := ResolveLevel(tt.value, StudentAttentionScale)
			if level != tt.wantLevel {
				t.Errorf("expected level %d, got %d", tt.wantLevel, level)
			}
			if degraded != tt.wantDegraded {
				t.Errorf("expected degraded=%v, got %v", tt.wantDegraded, degraded)
			}
		})
	}
}

func TestScoreStudent(t *testing.T) {
	e := NewEngine(DefaultConfig())

	tests := []struct {
		name         string
		answers      model.AnswerSet
		wantPct      int
		wantCategory model.CategoryClass
	}{
		{
			name: "best case clamps at 100",
			answers: model.AnswerSet{
				"q1": model.Single("Oui, toujours"),
				"q4": model.Single("Oui, beaucoup"),
				"q5": model.Multi("Prendre des notes", "Éviter les distractions", "Demander de l'aide à l'enseignant"),
			},
			wantPct:      100,
			wantCategory: model.ClassHigh,
		},
		{
			name: "worst case clamps at 25",
			answers: model.AnswerSet{
				"q1": model.Single("Jamais"),
				"q4": model.Single("Non"),
				"q2": model.Multi("Téléphone portable / réseaux sociaux", "Discussions avec camarades", "Bruit dans la classe", "Fatigue / manque de sommeil"),
			},
			wantPct:      25,
			wantCategory: model.ClassLow,
		},
		{
			// base 3, penalty 2/5, bonus 1/3: 2.9333 on the 1-4 scale.
			name: "mid range",
			answers: model.AnswerSet{
				"q1": model.Single("Parfois"),
				"q4": model.Single("Oui, un peu"),
				"q2": model.Multi("Bruit dans la classe", "Fatigue / manque de sommeil"),
				"q5": model.Multi("Prendre des notes"),
			},
			wantPct:      73,
			wantCategory: model.ClassMedium,
		},
		{
			// Unanswered baselines degrade to level 1 instead of failing.
			name:         "empty answers",
			answers:      model.AnswerSet{},
			wantPct:      25,
			wantCategory: model.ClassLow,
		},
		{
			name: "numeric values accepted",
			answers: model.AnswerSet{
				"q1": model.Single("4"),
				"q4": model.Single("4"),
			},
			wantPct:      100,
			wantCategory: model.ClassHigh,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := e.ScoreStudent(tt.answers)
			if got.Percentage != tt.wantPct {
				t.Errorf("expected %d%%, got %d%%", tt.wantPct, got.Percentage)
			}
			if got.Category.Class != tt.wantCategory {
				t.Errorf("expected category %s, got %s", tt.wantCategory, got.Category.Class)
			}
			if got.Raw < 1 || got.Raw > 4 {
				t.Errorf("raw score %v outside [1,4]", got.Raw)
			}
		})
	}
}

func TestScoreTeacher(t *testing.T) {
	e := NewEngine(DefaultConfig())

	tests := []struct {
		name         string
		answers      model.AnswerSet
		wantPct      int
		wantCategory model.CategoryClass
	}{
		{
			name: "best case clamps at 100",
			answers: model.AnswerSet{
				"q1": model.Single("Jamais"),
				"q5": model.Multi("Varier les méthodes pédagogiques", "Encourager la participation active", "Réduire les distractions en classe"),
			},
			wantPct:      100,
			wantCategory: model.ClassHigh,
		},
		{
			// base 1, penalty (4/5 + 3/4) * 0.7 = 1.085, clamped back to 1.
			name: "worst case clamps at 25",
			answers: model.AnswerSet{
				"q1": model.Single("Oui, très souvent"),
				"q2": model.Multi("Inattention aux explications", "Bavardages", "Utilisation du téléphone en classe", "Fatigue / somnolence"),
				"q4": model.Multi("Perturbe le déroulement des leçons", "Diminue la participation des élèves", "Réduit la qualité des apprentissages"),
			},
			wantPct:      25,
			wantCategory: model.ClassLow,
		},
		{
			// Inverted scale: rare observation of inattention scores high.
			// base 3, penalty 2/5 * 0.7 = 0.28, bonus 1/3: 3.0533 -> 76%.
			name: "rarely observed",
			answers: model.AnswerSet{
				"q1": model.Single("Rarement"),
				"q2": model.Multi("Bavardages", "Fatigue / somnolence"),
				"q5": model.Multi("Varier les méthodes pédagogiques"),
			},
			wantPct:      76,
			wantCategory: model.ClassHigh,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := e.ScoreTeacher(tt.answers)
			if got.Percentage != tt.wantPct {
				t.Errorf("expected %d%%, got %d%%", tt.wantPct, got.Percentage)
			}
			if got.Category.Class != tt.wantCategory {
				t.Errorf("expected category %s, got %s", tt.wantCategory, got.Category.Class)
			}
		})
	}
}

func TestScoreStudentDeterministic(t *testing.T) {
	e := NewEngine(DefaultConfig())
	answers := model.AnswerSet{
		"q1": model.Single("Parfois"),
		"q4": model.Single("Oui, un peu"),
		"q2": model.Multi("Bruit dans la classe"),
		"q5": model.Multi("Prendre des notes"),
	}

	first := e.ScoreStudent(answers)
	for i := 0; i < 5; i++ {
		if got := e.ScoreStudent(answers); got != first {
			t.Fatalf("scoring not deterministic: %+v vs %+v", got, first)
		}
	}
}

func TestClassifyBoundaries(t *testing.T) {
	tests := []struct {
		pct  int
		want model.CategoryClass
	}{
		{0, model.ClassLow},
		{25, model.ClassLow},
		{50, model.ClassLow},
		{51, model.ClassMedium},
		{75, model.ClassMedium},
		{76, model.ClassHigh},
		{100, model.ClassHigh},
	}

	for _, tt := range tests {
		got := Classify(tt.pct)
		if got.Class != tt.want {
			t.Errorf("Classify(%d): expected %s, got %s", tt.pct, tt.want, got.Class)
		}
	}
}

func TestClassifyCarriesDisplayAttributes(t *testing.T) {
	low := Classify(30)
	if low.Name != "Faible concentration" || low.Color != "#e74c3c" {
		t.Errorf("unexpected low category: %+v", low)
	}
	medium := Classify(60)
	if medium.Name != "Concentration moyenne" || medium.Color != "#f39c12" {
		t.Errorf("unexpected medium category: %+v", medium)
	}
	high := Classify(90)
	if high.Name != "Bonne concentration" || high.Color != "#27ae60" {
		t.Errorf("unexpected high category: %+v", high)
	}
}
