package handler

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/kdossou/focusedu/internal/catalog"
	"github.com/kdossou/focusedu/internal/model"
)

// Validation failures refuse a submission before it ever reaches scoring.
// Scoring itself never rejects anything.
var (
	ErrUnknownRole     = errors.New("unknown respondent role")
	ErrMissingIdentity = errors.New("last and first name are required")
	ErrMissingContext  = errors.New("required context fields are missing")
	ErrMissingAnswers  = errors.New("required answers are missing")
	ErrInvalidOption   = errors.New("answer is not one of the declared options")
	ErrDuplicate       = errors.New("respondent already answered")
)

// submission is one validated questionnaire submission, ready for scoring.
type submission struct {
	Identity model.Identity
	Context  model.Context
	Answers  model.AnswerSet
}

// requiredAnswers lists the single-choice questions a submission must answer
// per role; checkbox questions may legitimately be left empty.
var requiredAnswers = map[model.Role][]string{
	model.RoleStudent: {"q1", "q4"},
	model.RoleTeacher: {"q1"},
}

// parseSubmission turns a posted form into a typed submission. All shape
// coercion happens here: radio values become Single answers, checkbox values
// become Multi answers (possibly empty), and "other" escapes become auxiliary
// Text answers keyed "<question>_other".
func parseSubmission(role model.Role, form url.Values) (submission, error) {
	if !role.Valid() {
		return submission{}, ErrUnknownRole
	}

	sub := submission{
		Identity: model.Identity{
			LastName:  strings.TrimSpace(form.Get("last_name")),
			FirstName: strings.TrimSpace(form.Get("first_name")),
		},
		Answers: model.AnswerSet{},
	}
	if sub.Identity.LastName == "" || sub.Identity.FirstName == "" {
		return submission{}, ErrMissingIdentity
	}

	ctx, err := parseContext(role, form)
	if err != nil {
		return submission{}, err
	}
	sub.Context = ctx

	for _, q := range catalog.ForRole(role) {
		switch q.Type {
		case catalog.TypeSingle:
			v := form.Get(q.ID)
			if v != "" {
				if !q.HasOption(v) {
					return submission{}, fmt.Errorf("%w: %s=%q", ErrInvalidOption, q.ID, v)
				}
				sub.Answers[q.ID] = model.Single(v)
			}
		case catalog.TypeMulti:
			vs := form[q.ID]
			for _, v := range vs {
				if !q.HasOption(v) {
					return submission{}, fmt.Errorf("%w: %s=%q", ErrInvalidOption, q.ID, v)
				}
			}
			sub.Answers[q.ID] = model.Multi(vs...)
		case catalog.TypeText:
			if v := strings.TrimSpace(form.Get(q.ID)); v != "" {
				sub.Answers[q.ID] = model.Text(v)
			}
		}
		if q.HasOther {
			if v := strings.TrimSpace(form.Get(q.ID + "_other")); v != "" {
				sub.Answers[q.ID+"_other"] = model.Text(v)
			}
		}
	}

	for _, id := range requiredAnswers[role] {
		if sub.Answers.Value(id) == "" {
			return submission{}, fmt.Errorf("%w: %s", ErrMissingAnswers, id)
		}
	}
	return sub, nil
}

func parseContext(role model.Role, form url.Values) (model.Context, error) {
	ctx := model.Context{
		Role:      role,
		TimeOfDay: form.Get("time_of_day"),
	}
	switch role {
	case model.RoleStudent:
		ctx.Age = form.Get("age")
		ctx.Sex = form.Get("sex")
		ctx.Class = form.Get("class")
		if ctx.Age == "" || ctx.Sex == "" || ctx.Class == "" || ctx.TimeOfDay == "" {
			return model.Context{}, ErrMissingContext
		}
	case model.RoleTeacher:
		ctx.Subject = form.Get("subject")
		ctx.Experience = form.Get("experience")
		if ctx.Subject == "" || ctx.Experience == "" || ctx.TimeOfDay == "" {
			return model.Context{}, ErrMissingContext
		}
	}
	return ctx, nil
}

// messageID maps a validation failure to its i18n message.
func messageID(err error) string {
	switch {
	case errors.Is(err, ErrDuplicate):
		return "DuplicateIdentity"
	case errors.Is(err, ErrMissingIdentity):
		return "MissingIdentity"
	case errors.Is(err, ErrMissingContext):
		return "MissingContext"
	case errors.Is(err, ErrMissingAnswers):
		return "MissingAnswers"
	case errors.Is(err, ErrInvalidOption):
		return "InvalidOption"
	default:
		return "UnknownRole"
	}
}
