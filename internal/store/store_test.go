package store

import (
	"testing"
	"time"

	"github.com/kdossou/focusedu/internal/model"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(":memory:")
	if err != nil {
		t.Fatalf("newTestStore: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func appendTestSession(t *testing.T, s *Store, role model.Role, lastName, firstName string, score int) model.Session {
	t.Helper()
	sess, err := s.Append(model.Session{
		Identity: model.Identity{LastName: lastName, FirstName: firstName},
		Context: model.Context{
			Role:      role,
			Class:     "6ème",
			Sex:       "M",
			TimeOfDay: "morning",
		},
		Answers: model.AnswerSet{
			"q1":       model.Single("Parfois"),
			"q2":       model.Multi("Bruit dans la classe", "Fatigue / manque de sommeil"),
			"q2_other": model.Text("les travaux dans la cour"),
			"q5":       model.Multi(),
		},
		Score:    score,
		Category: model.CategoryMedium,
	})
	if err != nil {
		t.Fatalf("appendTestSession: %v", err)
	}
	return sess
}

func TestAppendAssignsIDAndTimestamp(t *testing.T) {
	s := newTestStore(t)

	sess := appendTestSession(t, s, model.RoleStudent, "Durand", "Alice", 68)
	if sess.ID == "" {
		t.Error("expected a generated session id")
	}
	if _, err := time.Parse(time.RFC3339, sess.Timestamp); err != nil {
		t.Errorf("timestamp %q is not RFC 3339: %v", sess.Timestamp, err)
	}

	other := appendTestSession(t, s, model.RoleStudent, "Martin", "Bob", 42)
	if other.ID == sess.ID {
		t.Error("expected distinct ids per session")
	}
}

func TestLoadAllRoundTrip(t *testing.T) {
	s := newTestStore(t)
	want := appendTestSession(t, s, model.RoleStudent, "Durand", "Alice", 68)

	sessions, err := s.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll: %v", err)
	}
	if len(sessions) != 1 {
		t.Fatalf("expected 1 session, got %d", len(sessions))
	}

	got := sessions[0]
	if got.ID != want.ID || got.Timestamp != want.Timestamp {
		t.Errorf("id/timestamp mismatch: got %s/%s, want %s/%s",
			got.ID, got.Timestamp, want.ID, want.Timestamp)
	}
	if got.Identity != want.Identity {
		t.Errorf("identity mismatch: got %+v, want %+v", got.Identity, want.Identity)
	}
	if got.Context != want.Context {
		t.Errorf("context mismatch: got %+v, want %+v", got.Context, want.Context)
	}
	if got.Score != 68 || got.Category != model.CategoryMedium {
		t.Errorf("score/category mismatch: got %d/%+v", got.Score, got.Category)
	}

	if v := got.Answers.Value("q1"); v != "Parfois" {
		t.Errorf("expected q1 %q, got %q", "Parfois", v)
	}
	if vs := got.Answers.Values("q2"); len(vs) != 2 || vs[0] != "Bruit dans la classe" {
		t.Errorf("unexpected q2 values: %v", vs)
	}
	if v := got.Answers.Value("q2_other"); v != "les travaux dans la cour" {
		t.Errorf("expected q2_other round trip, got %q", v)
	}
	if vs := got.Answers.Values("q5"); len(vs) != 0 {
		t.Errorf("expected empty q5, got %v", vs)
	}
}

func TestLoadAllPreservesInsertionOrder(t *testing.T) {
	s := newTestStore(t)
	first := appendTestSession(t, s, model.RoleStudent, "Durand", "Alice", 50)
	second := appendTestSession(t, s, model.RoleTeacher, "Kone", "Marc", 75)

	sessions, err := s.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll: %v", err)
	}
	if len(sessions) != 2 {
		t.Fatalf("expected 2 sessions, got %d", len(sessions))
	}
	if sessions[0].ID != first.ID || sessions[1].ID != second.ID {
		t.Error("sessions not returned in insertion order")
	}
}

func TestHasIdentity(t *testing.T) {
	s := newTestStore(t)
	appendTestSession(t, s, model.RoleStudent, "Durand", "Alice", 68)

	tests := []struct {
		name  string
		role  model.Role
		last  string
		first string
		want  bool
	}{
		{"exact match", model.RoleStudent, "Durand", "Alice", true},
		{"case insensitive", model.RoleStudent, "DURAND", "alice", true},
		{"different role", model.RoleTeacher, "Durand", "Alice", false},
		{"different name", model.RoleStudent, "Durand", "Zoe", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := s.HasIdentity(tt.role, tt.last, tt.first)
			if err != nil {
				t.Fatalf("HasIdentity: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestCountAndClear(t *testing.T) {
	s := newTestStore(t)

	count, err := s.Count()
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected empty store, got %d", count)
	}

	appendTestSession(t, s, model.RoleStudent, "Durand", "Alice", 68)
	appendTestSession(t, s, model.RoleTeacher, "Kone", "Marc", 75)

	count, err = s.Count()
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if count != 2 {
		t.Fatalf("expected 2 sessions, got %d", count)
	}

	if err := s.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	count, err = s.Count()
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if count != 0 {
		t.Errorf("expected empty store after clear, got %d", count)
	}
}
