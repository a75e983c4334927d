package model

import (
	"encoding/json"
	"fmt"
)

// AnswerKind tags the shape of an Answer.
type AnswerKind uint8

const (
	// AnswerNone is the zero Answer (question not answered).
	AnswerNone AnswerKind = iota
	// AnswerSingle is a single-choice value.
	AnswerSingle
	// AnswerMulti is an ordered list of checkbox values.
	AnswerMulti
	// AnswerText is free text (the "other" escape and open questions).
	AnswerText
)

// Answer is a tagged value: a single option, a list of options, or free text.
// The shape is fixed here, at the submission boundary; scoring only ever sees
// one of these three forms and never re-inspects dynamic types.
type Answer struct {
	kind   AnswerKind
	value  string
	values []string
}

// Single returns a single-choice answer.
func Single(v string) Answer {
	return Answer{kind: AnswerSingle, value: v}
}

// Multi returns a multi-choice answer preserving the given order.
func Multi(vs ...string) Answer {
	return Answer{kind: AnswerMulti, values: vs}
}

// Text returns a free-text answer.
func Text(v string) Answer {
	return Answer{kind: AnswerText, value: v}
}

// Kind reports the answer's shape.
func (a Answer) Kind() AnswerKind { return a.kind }

// Value returns the single or text value, or "" for multi/unanswered.
func (a Answer) Value() string {
	if a.kind == AnswerSingle || a.kind == AnswerText {
		return a.value
	}
	return ""
}

// Values returns the answer as a list: a multi answer as-is, a non-empty
// single coerced to a one-element list, anything else as nil.
func (a Answer) Values() []string {
	switch a.kind {
	case AnswerMulti:
		return a.values
	case AnswerSingle:
		if a.value != "" {
			return []string{a.value}
		}
	}
	return nil
}

// MarshalJSON writes the stored document shape: a string for single/text
// answers, an array for multi answers.
func (a Answer) MarshalJSON() ([]byte, error) {
	switch a.kind {
	case AnswerMulti:
		if a.values == nil {
			return []byte("[]"), nil
		}
		return json.Marshal(a.values)
	case AnswerSingle, AnswerText:
		return json.Marshal(a.value)
	default:
		return []byte(`""`), nil
	}
}

// UnmarshalJSON accepts either a string or an array of strings. A bare string
// loads as a single-choice answer; text answers are indistinguishable in the
// stored form and are read back as single, which every consumer treats
// identically.
func (a *Answer) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*a = Single(s)
		return nil
	}
	var vs []string
	if err := json.Unmarshal(data, &vs); err == nil {
		*a = Multi(vs...)
		return nil
	}
	return fmt.Errorf("answer: expected string or string array, got %s", data)
}

// AnswerSet maps question ids to answers for one session.
type AnswerSet map[string]Answer

// Value returns the single/text value for a question id, "" when absent.
func (s AnswerSet) Value(id string) string {
	return s[id].Value()
}

// Values returns the list form of an answer, nil when absent.
func (s AnswerSet) Values(id string) []string {
	return s[id].Values()
}
