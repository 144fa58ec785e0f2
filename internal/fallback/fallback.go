// Package fallback serves prebuilt exam questions when AI generation is
// unavailable. Selection is deterministic, never fails, and performs no I/O.
package fallback

import (
	"github.com/google/uuid"

	"github.com/Divyanshgupta04/lern-deployment/internal/exam"
)

// Questions returns exactly numQuestions prebuilt questions for the given
// test type. When the request exceeds the pool size, the pool is cycled in
// order; every returned Question carries a fresh ID regardless.
// numQuestions below 1 yields an empty slice.
func Questions(testType string, numQuestions int) []exam.Question {
	if numQuestions < 1 {
		return []exam.Question{}
	}

	pool := bank[exam.ClassifyCategory(testType)]
	if len(pool) == 0 {
		pool = bank[exam.CategoryDefault]
	}

	out := make([]exam.Question, 0, numQuestions)
	for i := 0; i < numQuestions; i++ {
		out = append(out, materialize(pool[i%len(pool)]))
	}
	return out
}

// PoolSize reports how many templates back a category. Mostly useful for
// diagnostics and the preview command.
func PoolSize(category exam.Category) int {
	return len(bank[category])
}

// Categories lists every category with a non-empty pool.
func Categories() []exam.Category {
	out := make([]exam.Category, 0, len(bank))
	for c := range bank {
		out = append(out, c)
	}
	return out
}

// materialize turns a template into a served Question, defaulting any
// missing field so the Question invariants always hold.
func materialize(t template) exam.Question {
	// Copy the options so callers mutating a served Question cannot
	// corrupt the shared bank.
	opts := make([]string, len(t.Options))
	copy(opts, t.Options)

	q := exam.Question{
		ID:                 uuid.NewString(),
		QuestionText:       t.QuestionText,
		Options:            opts,
		CorrectAnswerIndex: t.CorrectAnswerIndex,
		Explanation:        t.Explanation,
		Topic:              t.Topic,
		Difficulty:         t.Difficulty,
	}
	if q.QuestionText == "" {
		q.QuestionText = "Placeholder Question"
	}
	if len(q.Options) == 0 {
		q.Options = []string{"A", "B", "C", "D"}
	}
	if q.CorrectAnswerIndex < 0 || q.CorrectAnswerIndex >= len(q.Options) {
		q.CorrectAnswerIndex = 0
	}
	if q.Explanation == "" {
		q.Explanation = "No explanation."
	}
	if q.Topic == "" {
		q.Topic = "General"
	}
	if q.Difficulty == "" {
		q.Difficulty = exam.DifficultyMedium
	}
	return q
}
