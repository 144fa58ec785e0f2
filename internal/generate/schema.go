package generate

import "github.com/Divyanshgupta04/lern-deployment/internal/llm"

// questionListSchema constrains question generation to a JSON array of
// question objects. The required list pushes the provider to emit real
// explanations and topics; output that still falls short is repaired
// locally rather than rejected.
func questionListSchema() *llm.Schema {
	return &llm.Schema{
		Name: "question_list",
		Definition: map[string]any{
			"type": "array",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id":           map[string]any{"type": "string"},
					"questionText": map[string]any{"type": "string"},
					"options": map[string]any{
						"type":  "array",
						"items": map[string]any{"type": "string"},
					},
					"correctAnswerIndex": map[string]any{"type": "number"},
					"explanation":        map[string]any{"type": "string"},
					"topic":              map[string]any{"type": "string"},
					"difficulty":         map[string]any{"type": "string"},
					"passage":            map[string]any{"type": "string"},
				},
				"required": []string{"id", "questionText", "options", "correctAnswerIndex", "explanation", "topic"},
			},
		},
	}
}

// analysisSchema constrains result analysis to a summary plus per-question
// and per-topic breakdowns.
func analysisSchema() *llm.Schema {
	return &llm.Schema{
		Name: "test_analysis",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"summary": map[string]any{"type": "string"},
				"questionAnalysis": map[string]any{
					"type": "array",
					"items": map[string]any{
						"type": "object",
						"properties": map[string]any{
							"questionText":  map[string]any{"type": "string"},
							"userAnswer":    map[string]any{"type": "string"},
							"correctAnswer": map[string]any{"type": "string"},
							"isCorrect":     map[string]any{"type": "boolean"},
							"explanation":   map[string]any{"type": "string"},
							"topic":         map[string]any{"type": "string"},
							"questionType":  map[string]any{"type": "string"},
						},
						"required": []string{"questionText", "userAnswer", "correctAnswer", "isCorrect", "explanation", "topic"},
					},
				},
				"topicPerformance": map[string]any{
					"type": "array",
					"items": map[string]any{
						"type": "object",
						"properties": map[string]any{
							"topic":   map[string]any{"type": "string"},
							"correct": map[string]any{"type": "number"},
							"total":   map[string]any{"type": "number"},
						},
						"required": []string{"topic", "correct", "total"},
					},
				},
			},
			"required": []string{"summary", "questionAnalysis", "topicPerformance"},
		},
	}
}
