package model

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestAnswerValue(t *testing.T) {
	tests := []struct {
		name   string
		answer Answer
		want   string
	}{
		{"single", Single("Parfois"), "Parfois"},
		{"text", Text("musique calme"), "musique calme"},
		{"multi has no single value", Multi("a", "b"), ""},
		{"zero answer", Answer{}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.answer.Value(); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestAnswerValues(t *testing.T) {
	tests := []struct {
		name   string
		answer Answer
		want   []string
	}{
		{"multi", Multi("a", "b"), []string{"a", "b"}},
		{"empty multi", Multi(), nil},
		{"single coerced to list", Single("a"), []string{"a"}},
		{"empty single", Single(""), nil},
		{"text never a list", Text("a"), nil},
		{"zero answer", Answer{}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.answer.Values()
			if len(got) == 0 && len(tt.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestAnswerMarshalJSON(t *testing.T) {
	tests := []struct {
		name   string
		answer Answer
		want   string
	}{
		{"single as string", Single("Parfois"), `"Parfois"`},
		{"text as string", Text("autre chose"), `"autre chose"`},
		{"multi as array", Multi("a", "b"), `["a","b"]`},
		{"empty multi as empty array", Multi(), `[]`},
		{"zero answer as empty string", Answer{}, `""`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.answer)
			if err != nil {
				t.Fatalf("Marshal: %v", err)
			}
			if string(data) != tt.want {
				t.Errorf("expected %s, got %s", tt.want, data)
			}
		})
	}
}

func TestAnswerUnmarshalJSON(t *testing.T) {
	var a Answer
	if err := json.Unmarshal([]byte(`"Parfois"`), &a); err != nil {
		t.Fatalf("Unmarshal string: %v", err)
	}
	if a.Kind() != AnswerSingle || a.Value() != "Parfois" {
		t.Errorf("unexpected answer: kind=%d value=%q", a.Kind(), a.Value())
	}

	if err := json.Unmarshal([]byte(`["a","b"]`), &a); err != nil {
		t.Fatalf("Unmarshal array: %v", err)
	}
	if a.Kind() != AnswerMulti || !reflect.DeepEqual(a.Values(), []string{"a", "b"}) {
		t.Errorf("unexpected answer: kind=%d values=%v", a.Kind(), a.Values())
	}

	if err := json.Unmarshal([]byte(`42`), &a); err == nil {
		t.Error("expected error for non-string, non-array value")
	}
}

func TestAnswerSetRoundTrip(t *testing.T) {
	set := AnswerSet{
		"q1":       Single("Parfois"),
		"q2":       Multi("Bavardages"),
		"q2_other": Text("les couloirs"),
	}

	data, err := json.Marshal(set)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var got AnswerSet
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	if v := got.Value("q1"); v != "Parfois" {
		t.Errorf("expected q1 %q, got %q", "Parfois", v)
	}
	if vs := got.Values("q2"); !reflect.DeepEqual(vs, []string{"Bavardages"}) {
		t.Errorf("unexpected q2: %v", vs)
	}
	// Text answers load back as single; consumers only ever read Value.
	if v := got.Value("q2_other"); v != "les couloirs" {
		t.Errorf("expected q2_other %q, got %q", "les couloirs", v)
	}
	if vs := got.Values("missing"); vs != nil {
		t.Errorf("expected nil for missing id, got %v", vs)
	}
}
