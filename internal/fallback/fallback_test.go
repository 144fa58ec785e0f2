package fallback

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Divyanshgupta04/lern-deployment/internal/exam"
)

func TestQuestionsIsTotal(t *testing.T) {
	testTypes := []string{
		"SAT Math Mock", "SAT Diagnostic", "ACT Science Section", "AP Biology Exam",
		"Daily Quiz", "Adaptive Math Test", "", "completely unknown type", "日本語テスト",
	}
	for _, tt := range testTypes {
		t.Run(tt, func(t *testing.T) {
			questions := Questions(tt, 7)
			require.Len(t, questions, 7)
			for _, q := range questions {
				assert.NotEmpty(t, q.ID)
				assert.NotEmpty(t, q.QuestionText)
				assert.GreaterOrEqual(t, len(q.Options), 2)
				assert.GreaterOrEqual(t, q.CorrectAnswerIndex, 0)
				assert.Less(t, q.CorrectAnswerIndex, len(q.Options))
				assert.NotEmpty(t, q.Explanation)
				assert.NotEmpty(t, q.Topic)
				assert.NotEmpty(t, q.Difficulty)
			}
		})
	}
}

func TestQuestionsCyclesPool(t *testing.T) {
	poolSize := PoolSize(exam.CategorySATMath)
	require.Equal(t, 10, poolSize)

	questions := Questions("SAT Math", 25)
	require.Len(t, questions, 25)

	// Pool order repeats: indices 0..9, 0..9, 0..4.
	for i, q := range questions {
		assert.Equal(t, questions[i%poolSize].QuestionText, q.QuestionText)
	}
	assert.Equal(t, questions[0].QuestionText, questions[10].QuestionText)
	assert.Equal(t, questions[4].QuestionText, questions[24].QuestionText)

	// Identifiers are fresh even for repeated templates.
	seen := make(map[string]bool, len(questions))
	for _, q := range questions {
		assert.False(t, seen[q.ID], "duplicate ID %s", q.ID)
		seen[q.ID] = true
	}
}

func TestQuestionsCategoryRouting(t *testing.T) {
	tests := []struct {
		testType  string
		wantTopic string
	}{
		{"SAT Algebra Drill", "Algebra"},                 // SAT_MATH pool
		{"ACT English Practice", "Subject-Verb Agreement"}, // ACT_ENGLISH pool
		{"AP World History", "Trade Routes"},             // AP_WORLD pool
		{"Trivia Night", "Knowledge"},                    // DEFAULT pool
	}
	for _, tt := range tests {
		t.Run(tt.testType, func(t *testing.T) {
			questions := Questions(tt.testType, 1)
			require.Len(t, questions, 1)
			assert.Equal(t, tt.wantTopic, questions[0].Topic)
		})
	}
}

// Mutating a served question must not leak into the bank or into other
// questions materialized from the same template.
func TestQuestionsOptionsAreIndependent(t *testing.T) {
	first := Questions("SAT Math", 1)
	require.Len(t, first, 1)
	require.NotEmpty(t, first[0].Options)
	original := first[0].Options[0]

	first[0].Options[0] = "mutated"

	second := Questions("SAT Math", 1)
	require.Len(t, second, 1)
	assert.Equal(t, original, second[0].Options[0])
}

func TestQuestionsZeroAndNegative(t *testing.T) {
	assert.Empty(t, Questions("SAT Math", 0))
	assert.Empty(t, Questions("SAT Math", -3))
}

func TestQuestionsDeterministicTemplateOrder(t *testing.T) {
	a := Questions("AP Chemistry", 6)
	b := Questions("AP Chemistry", 6)
	require.Len(t, a, 6)
	for i := range a {
		assert.Equal(t, a[i].QuestionText, b[i].QuestionText)
		assert.NotEqual(t, a[i].ID, b[i].ID)
	}
}

func TestAllPoolsSatisfyInvariants(t *testing.T) {
	for _, c := range Categories() {
		questions := Questions(string(c), 1)
		require.Len(t, questions, 1)
	}
	for cat, pool := range bank {
		for i, tmpl := range pool {
			assert.GreaterOrEqual(t, len(tmpl.Options), 2, "%s[%d]", cat, i)
			assert.Less(t, tmpl.CorrectAnswerIndex, len(tmpl.Options), "%s[%d]", cat, i)
		}
	}
}
