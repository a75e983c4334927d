// Package stats rolls stored sessions up into dashboard statistics.
package stats

import (
	"math"

	"github.com/kdossou/focusedu/internal/model"
)

// Time-of-day buckets. Anything that is not the morning value counts as
// afternoon.
const (
	Morning   = "morning"
	Afternoon = "afternoon"
)

// Fixed sex bucket keys. Unknown values fall into SexOther.
const (
	SexMale   = "M"
	SexFemale = "F"
	SexOther  = "other"
)

// Group is one aggregation bucket: the rounded average score of its members
// and how many sessions contributed to it.
type Group struct {
	Average int `json:"average"`
	Count   int `json:"count"`
}

// Distribution counts sessions per stored category, with each bucket's share
// of the total in percent.
type Distribution struct {
	Low           int `json:"low"`
	Medium        int `json:"medium"`
	High          int `json:"high"`
	LowPercent    int `json:"low_percent"`
	MediumPercent int `json:"medium_percent"`
	HighPercent   int `json:"high_percent"`
}

// AggregateStats is derived from the full session collection on every read
// and never persisted.
type AggregateStats struct {
	TotalSessions   int `json:"total_sessions"`
	StudentSessions int `json:"student_sessions"`
	TeacherSessions int `json:"teacher_sessions"`

	AverageScore        int `json:"average_score"`
	AverageStudentScore int `json:"average_student_score"`
	AverageTeacherScore int `json:"average_teacher_score"`

	Distribution Distribution `json:"distribution"`

	// The context breakdowns cover student sessions only.
	ByTimeOfDay map[string]Group `json:"by_time_of_day"`
	ByClass     map[string]Group `json:"by_class"`
	BySex       map[string]Group `json:"by_sex"`
}

type tally struct {
	sum   int
	count int
}

func (t *tally) add(score int) {
	t.sum += score
	t.count++
}

func (t tally) group() Group {
	if t.count == 0 {
		return Group{}
	}
	return Group{Average: roundDiv(t.sum, t.count), Count: t.count}
}

// Aggregate computes summary statistics over sessions in a single pass.
// It is total: an empty input yields zero counts, zero averages, and
// initialized empty groups rather than any error or division by zero.
//
// The distribution trusts each session's stored category instead of
// re-deriving it from the score, so records keep the bucket they were
// assigned at creation time.
func Aggregate(sessions []model.Session) AggregateStats {
	stats := AggregateStats{
		ByTimeOfDay: map[string]Group{Morning: {}, Afternoon: {}},
		ByClass:     map[string]Group{},
		BySex:       map[string]Group{SexMale: {}, SexFemale: {}, SexOther: {}},
	}
	if len(sessions) == 0 {
		return stats
	}

	var total, students, teachers tally
	byMoment := map[string]*tally{Morning: {}, Afternoon: {}}
	byClass := map[string]*tally{}
	bySex := map[string]*tally{SexMale: {}, SexFemale: {}, SexOther: {}}

	for _, s := range sessions {
		total.add(s.Score)

		if s.Context.Role == model.RoleStudent {
			students.add(s.Score)

			moment := Afternoon
			if s.Context.TimeOfDay == Morning {
				moment = Morning
			}
			byMoment[moment].add(s.Score)

			if t, ok := byClass[s.Context.Class]; ok {
				t.add(s.Score)
			} else {
				byClass[s.Context.Class] = &tally{sum: s.Score, count: 1}
			}

			sex := s.Context.Sex
			if sex != SexMale && sex != SexFemale {
				sex = SexOther
			}
			bySex[sex].add(s.Score)
		} else {
			teachers.add(s.Score)
		}

		switch s.Category.Class {
		case model.ClassLow:
			stats.Distribution.Low++
		case model.ClassMedium:
			stats.Distribution.Medium++
		default:
			stats.Distribution.High++
		}
	}

	stats.TotalSessions = total.count
	stats.StudentSessions = students.count
	stats.TeacherSessions = teachers.count
	stats.AverageScore = total.group().Average
	stats.AverageStudentScore = students.group().Average
	stats.AverageTeacherScore = teachers.group().Average

	stats.Distribution.LowPercent = roundDiv(stats.Distribution.Low*100, total.count)
	stats.Distribution.MediumPercent = roundDiv(stats.Distribution.Medium*100, total.count)
	stats.Distribution.HighPercent = roundDiv(stats.Distribution.High*100, total.count)

	for k, t := range byMoment {
		stats.ByTimeOfDay[k] = t.group()
	}
	for k, t := range byClass {
		stats.ByClass[k] = t.group()
	}
	for k, t := range bySex {
		stats.BySex[k] = t.group()
	}
	return stats
}

// roundDiv is round(a/b) to the nearest integer, half away from zero.
func roundDiv(a, b int) int {
	return int(math.Round(float64(a) / float64(b)))
}
