// Package export renders stored sessions as a delimited text document.
package export

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"

	"github.com/kdossou/focusedu/internal/model"
)

// Header is the fixed column order of the export. Per-question columns follow
// the scored questionnaire (q1..q5); "other" carries the free-text escape of
// the strategies question.
var Header = []string{
	"session_id",
	"timestamp",
	"last_name",
	"first_name",
	"role",
	"age",
	"sex",
	"class",
	"time_of_day",
	"score",
	"category",
	"q1",
	"q2",
	"q3",
	"q4",
	"q5",
	"other",
}

// multiSeparator joins checkbox selections inside one CSV field.
const multiSeparator = ";"

// Write emits the CSV document for sessions. Field escaping follows RFC 4180:
// a field containing the delimiter, a quote, or a newline is quoted with
// inner quotes doubled.
func Write(w io.Writer, sessions []model.Session) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return err
	}
	for _, sess := range sessions {
		if err := cw.Write(row(sess)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func row(sess model.Session) []string {
	fields := []string{
		sess.ID,
		sess.Timestamp,
		sess.Identity.LastName,
		sess.Identity.FirstName,
		string(sess.Context.Role),
		sess.Context.Age,
		sess.Context.Sex,
		sess.Context.Class,
		sess.Context.TimeOfDay,
		strconv.Itoa(sess.Score),
		sess.Category.Name,
	}
	for _, id := range []string{"q1", "q2", "q3", "q4", "q5"} {
		fields = append(fields, answerField(sess.Answers[id]))
	}
	fields = append(fields, sess.Answers.Value("q5_other"))
	return fields
}

func answerField(a model.Answer) string {
	if a.Kind() == model.AnswerMulti {
		return strings.Join(a.Values(), multiSeparator)
	}
	return a.Value()
}
