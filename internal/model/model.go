package model

// Role identifies which questionnaire and scoring formula apply to a respondent.
type Role string

const (
	// RoleStudent is a student respondent.
	RoleStudent Role = "student"
	// RoleTeacher is a teacher respondent.
	RoleTeacher Role = "teacher"
)

// Valid reports whether r is one of the known respondent roles.
func (r Role) Valid() bool {
	return r == RoleStudent || r == RoleTeacher
}

// CategoryClass is the machine key of a concentration category.
type CategoryClass string

const (
	ClassLow    CategoryClass = "low"
	ClassMedium CategoryClass = "medium"
	ClassHigh   CategoryClass = "high"
)

// Category classifies a concentration percentage. The display name and color
// are fixed per class and travel with the session so old records keep the
// label they were created with.
type Category struct {
	Class CategoryClass `json:"class"`
	Name  string        `json:"name"`
	Color string        `json:"color"`
}

var (
	// CategoryLow covers percentages up to and including 50.
	CategoryLow = Category{Class: ClassLow, Name: "Faible concentration", Color: "#e74c3c"}
	// CategoryMedium covers percentages from 51 to 75 inclusive.
	CategoryMedium = Category{Class: ClassMedium, Name: "Concentration moyenne", Color: "#f39c12"}
	// CategoryHigh covers percentages above 75.
	CategoryHigh = Category{Class: ClassHigh, Name: "Bonne concentration", Color: "#27ae60"}
)

// ScoreResult is the outcome of scoring one answer set.
type ScoreResult struct {
	// Raw is the adjusted score on the 1-4 scale, after clamping.
	Raw float64 `json:"raw"`
	// Percentage is Raw projected to 0-100 and rounded.
	Percentage int `json:"percentage"`
	// Category is derived from Percentage at scoring time.
	Category Category `json:"category"`
}

// Identity names a respondent. Used for duplicate detection and the session
// table; never part of scoring.
type Identity struct {
	LastName  string `json:"last_name"`
	FirstName string `json:"first_name"`
}

// Context carries respondent metadata used for grouped aggregation.
// Student sessions fill Age/Sex/Class; teacher sessions fill Subject and
// Experience. TimeOfDay is set for both. Values come from closed sets in the
// submission form and are not validated further here.
type Context struct {
	Role       Role   `json:"type"`
	Age        string `json:"age,omitempty"`
	Sex        string `json:"sex,omitempty"`
	Class      string `json:"class,omitempty"`
	Subject    string `json:"subject,omitempty"`
	Experience string `json:"experience,omitempty"`
	TimeOfDay  string `json:"time_of_day"`
}

// Session is one completed, scored questionnaire submission. Sessions are
// immutable once appended to the store; the only destructive operation is a
// full-store clear.
type Session struct {
	ID        string    `json:"id"`
	Timestamp string    `json:"timestamp"` // RFC 3339, assigned by the store
	Identity  Identity  `json:"identity"`
	Context   Context   `json:"context"`
	Answers   AnswerSet `json:"answers"`
	Score     int       `json:"score"` // stored percentage
	Category  Category  `json:"category"`
}
