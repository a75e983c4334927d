package handler

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/kdossou/focusedu/internal/catalog"
	"github.com/kdossou/focusedu/internal/export"
	appI18n "github.com/kdossou/focusedu/internal/i18n"
	"github.com/kdossou/focusedu/internal/model"
	"github.com/kdossou/focusedu/internal/scoring"
	"github.com/kdossou/focusedu/internal/stats"
	"github.com/kdossou/focusedu/internal/store"
)

// Config holds runtime handler parameters set via CLI flags.
type Config struct {
	SecureCookies bool // Set Secure flag on the gate cookie (disable for local dev)
}

// Handler holds shared dependencies for HTTP handlers.
type Handler struct {
	store  *store.Store
	engine *scoring.Engine
	gate   *AuthGate
	tokens *tokenSet
	config Config
}

// New creates a new Handler.
func New(s *store.Store, engine *scoring.Engine, gate *AuthGate, cfg Config) *Handler {
	return &Handler{
		store:  s,
		engine: engine,
		gate:   gate,
		tokens: newTokenSet(),
		config: cfg,
	}
}

// Routes registers all HTTP routes.
func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.handleIndex)
	r.Get("/questionnaire/{role}", h.handleFormPage)
	r.Get("/questions/{role}", h.handleQuestions)
	r.Post("/submit/{role}", h.handleSubmit)

	r.Get("/login", h.handleLoginPage)
	r.Post("/login", h.handleLogin)
	r.Post("/logout", h.handleLogout)

	r.Group(func(g chi.Router) {
		g.Use(h.requireGate)
		g.Get("/results", h.handleDashboard)
		g.Get("/results/stats", h.handleStats)
		g.Get("/results/sessions", h.handleSessionTable)
		g.Get("/results/export.csv", h.handleExportCSV)
		g.Post("/results/clear", h.handleClear)
	})
}

func (h *Handler) handleIndex(w http.ResponseWriter, r *http.Request) {
	count, err := h.store.Count()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := indexTmpl.Execute(w, indexData{SessionCount: count}); err != nil {
		slog.Error("render error", "error", err)
	}
}

func (h *Handler) handleFormPage(w http.ResponseWriter, r *http.Request) {
	role := model.Role(chi.URLParam(r, "role"))
	questions := catalog.ForRole(role)
	if questions == nil {
		http.Error(w, "unknown questionnaire", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := formTmpl.Execute(w, formData{
		Role:      role,
		IsStudent: role == model.RoleStudent,
		Questions: questions,
		Ages:      ageOptions,
		Sexes:     sexOptions,
		Classes:   classOptions,
		Subjects:  subjectOptions,
		Tenure:    experienceOptions,
		Moments:   momentOptions,
	}); err != nil {
		slog.Error("render error", "error", err)
	}
}

// handleQuestions exposes the catalog as read-only JSON.
func (h *Handler) handleQuestions(w http.ResponseWriter, r *http.Request) {
	role := model.Role(chi.URLParam(r, "role"))
	questions := catalog.ForRole(role)
	if questions == nil {
		http.Error(w, "unknown questionnaire", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, questions)
}

func (h *Handler) handleSubmit(w http.ResponseWriter, r *http.Request) {
	role := model.Role(chi.URLParam(r, "role"))
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}

	sub, err := parseSubmission(role, r.PostForm)
	if err != nil {
		h.rejectSubmission(w, r, err)
		return
	}

	dup, err := h.store.HasIdentity(role, sub.Identity.LastName, sub.Identity.FirstName)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if dup {
		h.rejectSubmission(w, r, ErrDuplicate)
		return
	}

	var result model.ScoreResult
	if role == model.RoleStudent {
		result = h.engine.ScoreStudent(sub.Answers)
	} else {
		result = h.engine.ScoreTeacher(sub.Answers)
	}

	sess, err := h.store.Append(model.Session{
		Identity: sub.Identity,
		Context:  sub.Context,
		Answers:  sub.Answers,
		Score:    result.Percentage,
		Category: result.Category,
	})
	if err != nil {
		slog.Error("failed to append session", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	slog.Info("session recorded",
		"id", sess.ID, "role", role, "score", sess.Score, "category", sess.Category.Class)

	writeJSON(w, http.StatusCreated, map[string]any{
		"session_id": sess.ID,
		"score":      result.Percentage,
		"raw":        result.Raw,
		"category":   result.Category,
		"context":    sub.Context,
		"message": appI18n.Td(r.Context(), "SubmissionSaved", map[string]any{
			"Score":    result.Percentage,
			"Category": result.Category.Name,
		}),
	})
}

func (h *Handler) rejectSubmission(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusBadRequest
	if err == ErrDuplicate {
		status = http.StatusConflict
	}
	slog.Warn("submission rejected", "error", err)
	writeJSON(w, status, map[string]string{
		"error":   err.Error(),
		"message": appI18n.T(r.Context(), messageID(err)),
	})
}

func (h *Handler) handleStats(w http.ResponseWriter, r *http.Request) {
	sessions, err := h.store.LoadAll()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, stats.Aggregate(sessions))
}

// sessionRow is one line of the raw results table.
type sessionRow struct {
	Date     string `json:"date"`
	Role     string `json:"role"`
	FullName string `json:"full_name"`
	Context  string `json:"context"`
	Score    int    `json:"score"`
	Category string `json:"category"`
	Color    string `json:"color"`
}

func (h *Handler) handleSessionTable(w http.ResponseWriter, r *http.Request) {
	sessions, err := h.store.LoadAll()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	rows := make([]sessionRow, 0, len(sessions))
	for _, s := range sessions {
		rows = append(rows, sessionRow{
			Date:     displayDate(s.Timestamp),
			Role:     roleLabel(s.Context.Role),
			FullName: s.Identity.FirstName + " " + s.Identity.LastName,
			Context:  contextSummary(s.Context),
			Score:    s.Score,
			Category: s.Category.Name,
			Color:    s.Category.Color,
		})
	}
	writeJSON(w, http.StatusOK, rows)
}

func (h *Handler) handleExportCSV(w http.ResponseWriter, r *http.Request) {
	sessions, err := h.store.LoadAll()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if len(sessions) == 0 {
		http.Error(w, appI18n.T(r.Context(), "NothingToExport"), http.StatusNotFound)
		return
	}
	filename := fmt.Sprintf("focus_edu_export_%s.csv", time.Now().Format("2006-01-02"))
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	if err := export.Write(w, sessions); err != nil {
		slog.Error("csv export failed", "error", err)
	}
}

func (h *Handler) handleClear(w http.ResponseWriter, r *http.Request) {
	if err := h.store.Clear(); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	slog.Info("all sessions cleared")
	writeJSON(w, http.StatusOK, map[string]string{
		"message": appI18n.T(r.Context(), "DataCleared"),
	})
}

func (h *Handler) handleLoginPage(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := loginTmpl.Execute(w, loginData{}); err != nil {
		slog.Error("render error", "error", err)
	}
}

func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	if !h.gate.Check(r.FormValue("password")) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusUnauthorized)
		if err := loginTmpl.Execute(w, loginData{Error: appI18n.T(r.Context(), "LoginError")}); err != nil {
			slog.Error("render error", "error", err)
		}
		return
	}

	token, err := h.tokens.issue()
	if err != nil {
		slog.Error("failed to issue gate token", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	h.setGateCookie(w, token, 0)
	http.Redirect(w, r, "/results", http.StatusSeeOther)
}

func (h *Handler) handleLogout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(gateCookieName); err == nil && cookie.Value != "" {
		h.tokens.revoke(cookie.Value)
	}
	h.setGateCookie(w, "", -1)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encode response", "error", err)
	}
}

func displayDate(timestamp string) string {
	t, err := time.Parse(time.RFC3339, timestamp)
	if err != nil {
		return timestamp
	}
	return t.Format("02/01/2006")
}

func roleLabel(role model.Role) string {
	if role == model.RoleTeacher {
		return "Enseignant"
	}
	return "Élève"
}

func contextSummary(ctx model.Context) string {
	summary := momentLabel(ctx.TimeOfDay)
	if ctx.Class != "" {
		summary += " | " + ctx.Class
	}
	if ctx.Subject != "" {
		summary += " | " + ctx.Subject
	}
	return summary
}

func momentLabel(timeOfDay string) string {
	switch timeOfDay {
	case stats.Morning:
		return "Matin"
	case stats.Afternoon:
		return "Après-midi"
	case "":
		return "-"
	}
	return timeOfDay
}
