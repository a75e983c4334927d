// Package catalog holds the two fixed questionnaires. The option pools
// exposed here drive the scoring weights, so a catalog revision cannot
// silently drift away from the formula that depends on its option counts.
package catalog

import "github.com/kdossou/focusedu/internal/model"

// AnswerType is how a question is answered.
type AnswerType string

const (
	// TypeSingle is a radio question: exactly one option.
	TypeSingle AnswerType = "single"
	// TypeMulti is a checkbox question: zero or more options.
	TypeMulti AnswerType = "multi"
	// TypeText is a free-text question.
	TypeText AnswerType = "text"
)

// Question is one questionnaire item.
type Question struct {
	ID      string     `json:"id"`
	Text    string     `json:"text"`
	Type    AnswerType `json:"type"`
	Options []string   `json:"options,omitempty"`
	// HasOther marks checkbox questions carrying a free-text escape. The
	// escape value lands in an auxiliary "<id>_other" text answer and is
	// never validated against Options.
	HasOther bool `json:"has_other,omitempty"`
}

// PenaltyPool is the divisor for negative-indicator checkbox questions: the
// listed options plus the "other" escape, which counts as one more way to
// report a problem.
func (q Question) PenaltyPool() int {
	n := len(q.Options)
	if q.HasOther {
		n++
	}
	return n
}

// BonusPool is the divisor for positive-indicator checkbox questions: listed
// options only.
func (q Question) BonusPool() int {
	return len(q.Options)
}

var studentQuestions = []Question{
	{
		ID:      "q1",
		Text:    "Arrivez-vous facilement à rester attentif pendant les cours ?",
		Type:    TypeSingle,
		Options: []string{"Oui, toujours", "Parfois", "Rarement", "Jamais"},
	},
	{
		ID:   "q2",
		Text: "Quelles sont les principales distractions qui vous empêchent de vous concentrer ?",
		Type: TypeMulti,
		Options: []string{
			"Téléphone portable / réseaux sociaux",
			"Discussions avec camarades",
			"Bruit dans la classe",
			"Fatigue / manque de sommeil",
		},
		HasOther: true,
	},
	{
		ID:       "q3",
		Text:     "Dans quelles matières avez-vous le plus de difficultés à rester concentré ?",
		Type:     TypeMulti,
		Options:  []string{"Mathématiques", "Français", "Sciences", "Histoire-Géographie"},
		HasOther: true,
	},
	{
		ID:      "q4",
		Text:    "Pensez-vous que votre manque de concentration influence vos résultats scolaires ?",
		Type:    TypeSingle,
		Options: []string{"Oui, beaucoup", "Oui, un peu", "Non"},
	},
	{
		ID:   "q5",
		Text: "Quelles stratégies utilisez-vous pour améliorer votre concentration ?",
		Type: TypeMulti,
		Options: []string{
			"Prendre des notes",
			"Éviter les distractions",
			"Demander de l'aide à l'enseignant",
		},
		HasOther: true,
	},
}

var teacherQuestions = []Question{
	{
		ID:      "q1",
		Text:    "Observez-vous souvent un manque de concentration chez vos élèves ?",
		Type:    TypeSingle,
		Options: []string{"Oui, très souvent", "Parfois", "Rarement", "Jamais"},
	},
	{
		ID:   "q2",
		Text: "Quelles manifestations du manque de concentration remarquez-vous le plus ?",
		Type: TypeMulti,
		Options: []string{
			"Inattention aux explications",
			"Bavardages",
			"Utilisation du téléphone en classe",
			"Fatigue / somnolence",
		},
		HasOther: true,
	},
	{
		ID:   "q3",
		Text: "Selon vous, quelles sont les principales causes de la dispersion cognitive des élèves ?",
		Type: TypeMulti,
		Options: []string{
			"Méthodes pédagogiques inadaptées",
			"Conditions socio-économiques",
			"Influence des technologies",
			"Environnement scolaire (bruit, discipline)",
		},
		HasOther: true,
	},
	{
		ID:   "q4",
		Text: "Comment le manque de concentration affecte-t-il vos cours ?",
		Type: TypeMulti,
		Options: []string{
			"Perturbe le déroulement des leçons",
			"Diminue la participation des élèves",
			"Réduit la qualité des apprentissages",
		},
		HasOther: true,
	},
	{
		ID:   "q5",
		Text: "Quelles stratégies utilisez-vous pour maintenir l'attention des élèves ?",
		Type: TypeMulti,
		Options: []string{
			"Varier les méthodes pédagogiques",
			"Encourager la participation active",
			"Réduire les distractions en classe",
		},
		HasOther: true,
	},
	{
		ID:   "q6",
		Text: "Quelles recommandations feriez-vous pour améliorer la concentration des élèves ?",
		Type: TypeText,
	},
}

// ForRole returns the questionnaire for a respondent role. The returned slice
// is shared; callers must not mutate it.
func ForRole(role model.Role) []Question {
	switch role {
	case model.RoleStudent:
		return studentQuestions
	case model.RoleTeacher:
		return teacherQuestions
	}
	return nil
}

// Find returns the question with the given id for a role.
func Find(role model.Role, id string) (Question, bool) {
	for _, q := range ForRole(role) {
		if q.ID == id {
			return q, true
		}
	}
	return Question{}, false
}

// HasOption reports whether v is one of the question's declared options.
func (q Question) HasOption(v string) bool {
	for _, opt := range q.Options {
		if opt == v {
			return true
		}
	}
	return false
}
