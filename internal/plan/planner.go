// Package plan builds multi-week study plans from test results. Plan
// generation is fully local: no model call, no I/O.
package plan

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/Divyanshgupta04/lern-deployment/internal/exam"
)

const (
	defaultWeeks = 8
	minWeeks     = 4
	maxWeeks     = 12
	weakestCount = 5
)

// Generate builds a study plan targeting the learner's weakest topics.
// Week count defaults to 8; with an exam date it is the number of weeks
// until the exam, clamped to [4, 12]. Each week carries a concept step, a
// review step, and a timed mini test.
func Generate(goal exam.Goal, result *exam.TestResult, now time.Time) *exam.Plan {
	weakest := weakestTopics(result.TopicPerformance, weakestCount)
	weeksCount := weekCount(goal.ExamDate, now)
	miniType := miniTestType(goal.Exam, result.TestType)

	weeks := make([]exam.PlanWeek, 0, weeksCount)
	for i := 0; i < weeksCount; i++ {
		start := now.AddDate(0, 0, i*7)
		end := start.AddDate(0, 0, 6)

		topic := "General"
		if len(weakest) > 0 {
			topic = weakest[i%len(weakest)]
		}

		weeks = append(weeks, exam.PlanWeek{
			Week:      i + 1,
			StartDate: start,
			EndDate:   end,
			Summary:   fmt.Sprintf("Focus on %s and timed practice.", topic),
			Steps: []exam.PlanStep{
				{
					ID:            uuid.NewString(),
					Title:         "Learn core concepts",
					Description:   fmt.Sprintf("Study key ideas for %s.", topic),
					Type:          exam.StepConcept,
					Topic:         topic,
					EstimatedTime: "~30 mins",
				},
				{
					ID:            uuid.NewString(),
					Title:         "Practice questions",
					Description:   fmt.Sprintf("Solve focused questions on %s.", topic),
					Type:          exam.StepReview,
					Topic:         topic,
					EstimatedTime: "~25 mins",
				},
				{
					ID:              uuid.NewString(),
					Title:           "Mini test",
					Description:     "Take a short timed quiz.",
					Type:            exam.StepTest,
					RelatedTestType: miniType,
					EstimatedTime:   "~20 mins",
				},
			},
		})
	}

	return &exam.Plan{
		ID:          uuid.NewString(),
		GeneratedOn: now,
		Goal:        goal,
		Weeks:       weeks,
	}
}

// weakestTopics ranks topics by ascending accuracy and returns up to n of
// them. A topic with zero attempts counts as 0% accuracy and ranks lowest.
// The sort is stable so equally weak topics keep their input order.
func weakestTopics(performance []exam.TopicPerformance, n int) []string {
	sorted := make([]exam.TopicPerformance, len(performance))
	copy(sorted, performance)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Accuracy() < sorted[j].Accuracy()
	})

	if len(sorted) > n {
		sorted = sorted[:n]
	}
	topics := make([]string, len(sorted))
	for i, tp := range sorted {
		topics[i] = tp.Topic
	}
	return topics
}

// weekCount derives the plan length from the exam date. At least a week of
// runway is assumed even for imminent exams.
func weekCount(examDate *time.Time, now time.Time) int {
	if examDate == nil {
		return defaultWeeks
	}
	days := math.Round(examDate.Sub(now).Hours() / 24)
	if days < 7 {
		days = 7
	}
	weeks := int(math.Ceil(days / 7))
	if weeks < minWeeks {
		weeks = minWeeks
	}
	if weeks > maxWeeks {
		weeks = maxWeeks
	}
	return weeks
}

// miniTestType picks the weekly timed quiz for the exam family, falling
// back to the test type the plan was generated from.
func miniTestType(family exam.Family, resultType string) string {
	switch family {
	case exam.FamilySAT:
		return "SAT_RW_MOCK"
	case exam.FamilyACT:
		return "ACT_READING_MOCK"
	case exam.FamilyAP:
		return "AP_USH_MOCK"
	default:
		return resultType
	}
}
