package exam

import "time"

// Difficulty is the question difficulty level.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Question is a single multiple-choice exam question. Every Question handed
// to a caller is fully populated: text fields are plain strings and
// CorrectAnswerIndex is a valid index into Options.
type Question struct {
	ID                 string     `json:"id"`
	QuestionText       string     `json:"questionText"`
	Options            []string   `json:"options"`
	CorrectAnswerIndex int        `json:"correctAnswerIndex"`
	Explanation        string     `json:"explanation"`
	Topic              string     `json:"topic"`
	Difficulty         Difficulty `json:"difficulty,omitempty"`
	Passage            string     `json:"passage,omitempty"`
}

// Answer records the option a user selected for a question.
type Answer struct {
	QuestionID  string `json:"questionId"`
	AnswerIndex int    `json:"answerIndex"`
}

// TestResult is a completed test: the questions served and the answers given.
type TestResult struct {
	TestType         string             `json:"testType"`
	Questions        []Question         `json:"questions"`
	Answers          []Answer           `json:"answers"`
	TopicPerformance []TopicPerformance `json:"topicPerformance,omitempty"`
}

// TopicPerformance counts correct answers per topic.
type TopicPerformance struct {
	Topic   string `json:"topic"`
	Correct int    `json:"correct"`
	Total   int    `json:"total"`
}

// Accuracy returns correct/total, treating an empty topic as 0%.
func (tp TopicPerformance) Accuracy() float64 {
	if tp.Total == 0 {
		return 0
	}
	return float64(tp.Correct) / float64(tp.Total)
}

// QuestionAnalysis is the per-question breakdown of an analyzed test.
type QuestionAnalysis struct {
	QuestionText  string `json:"questionText"`
	UserAnswer    string `json:"userAnswer"`
	CorrectAnswer string `json:"correctAnswer"`
	IsCorrect     bool   `json:"isCorrect"`
	Explanation   string `json:"explanation"`
	Topic         string `json:"topic"`
	QuestionType  string `json:"questionType,omitempty"`
}

// Analysis is the full AI analysis of a test result.
type Analysis struct {
	Summary          string             `json:"summary"`
	QuestionAnalysis []QuestionAnalysis `json:"questionAnalysis"`
	TopicPerformance []TopicPerformance `json:"topicPerformance"`
}

// Goal describes the exam a learner is preparing for. ExamDate is nil when
// the learner has not committed to a date.
type Goal struct {
	Exam     Family     `json:"exam"`
	ExamDate *time.Time `json:"examDate,omitempty"`
}

// StepType is the kind of work a plan step prescribes.
type StepType string

const (
	StepConcept StepType = "concept"
	StepReview  StepType = "review"
	StepTest    StepType = "test"
)

// PlanStep is one unit of work inside a plan week.
type PlanStep struct {
	ID              string   `json:"id"`
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	Type            StepType `json:"type"`
	Topic           string   `json:"topic,omitempty"`
	RelatedTestType string   `json:"relatedTestType,omitempty"`
	Completed       bool     `json:"completed"`
	EstimatedTime   string   `json:"estimatedTime"`
}

// PlanWeek is one week of a study plan. Weeks always carry exactly three
// steps, ordered concept first, then review, then test.
type PlanWeek struct {
	Week      int        `json:"week"`
	StartDate time.Time  `json:"startDate"`
	EndDate   time.Time  `json:"endDate"`
	Summary   string     `json:"summary"`
	Steps     []PlanStep `json:"steps"`
}

// Plan is a multi-week study plan built from a goal and a test result.
type Plan struct {
	ID          string     `json:"id"`
	GeneratedOn time.Time  `json:"generatedOn"`
	Goal        Goal       `json:"goal"`
	Weeks       []PlanWeek `json:"weeks"`
}

// ChatMessage is one turn of a tutoring conversation.
type ChatMessage struct {
	Role    string `json:"role"` // "user" or "assistant"
	Content string `json:"content"`
}

// AdminStats is the aggregate platform data summarized for administrators.
type AdminStats struct {
	TotalUsers    int              `json:"totalUsers"`
	UserStats     []map[string]any `json:"userStats"`
	WeakestTopics []string         `json:"weakestTopics"`
}
