package generate

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Divyanshgupta04/lern-deployment/internal/exam"
)

// questionSystemPrompt frames every question-generation request.
const questionSystemPrompt = `You are an expert exam creator.
Create high-quality, exam-level questions with:
- proper difficulty
- topic alignment
- NO arithmetic questions unless explicitly requested
- use passages when needed
- use logical reasoning
- make answer keys correct`

// chatSystemPrompt frames the streaming tutor conversation. User context,
// when present, is appended by BuildChatSystemPrompt.
const chatSystemPrompt = "You are Aicey, a friendly AI tutor."

// PromptOptions carries the optional refinements for a question request.
// Each set option appends a constraint after the category guidance; the
// constraints refine the category branch rather than replace it.
type PromptOptions struct {
	Topic       string
	Difficulty  exam.Difficulty
	AvoidTopics []string
}

// BuildQuestionPrompt maps a test type to generation instructions.
// Family and subject matching is substring-based and first-match-wins,
// consistent with exam.ClassifyFamily; unmatched combinations get a generic
// template parameterized by the raw type string.
func BuildQuestionPrompt(testType string, numQuestions int, opts PromptOptions) string {
	lower := strings.ToLower(testType)

	var b strings.Builder
	b.WriteString(categoryGuidance(lower, testType, numQuestions))

	if opts.Topic != "" {
		fmt.Fprintf(&b, "\n\nSpecific topic focus: %q. Ensure all questions relate to this topic.", opts.Topic)
	}
	if opts.Difficulty != "" {
		fmt.Fprintf(&b, "\n\nDifficulty level: %s. Adjust question complexity accordingly.", opts.Difficulty)
	}
	if len(opts.AvoidTopics) > 0 {
		fmt.Fprintf(&b, "\n\nAvoid these topics: %s.", strings.Join(opts.AvoidTopics, ", "))
	}

	return b.String()
}

func categoryGuidance(lower, raw string, n int) string {
	switch exam.ClassifyFamily(lower) {
	case exam.FamilySAT:
		return satGuidance(lower, raw, n)
	case exam.FamilyACT:
		return actGuidance(lower, raw, n)
	case exam.FamilyAP:
		return apGuidance(lower, raw, n)
	case exam.FamilyQuiz:
		return fmt.Sprintf(`Create %d quiz questions:
- Mixed topics across math, science, and reasoning
- Engaging and educational
- Appropriate difficulty for daily practice`, n)
	case exam.FamilyAdaptive:
		return adaptiveGuidance(lower, raw, n)
	default:
		return genericGuidance(raw, n)
	}
}

func satGuidance(lower, raw string, n int) string {
	switch {
	case hasAny(lower, "math", "algebra", "geometry"):
		s := fmt.Sprintf(`Create %d SAT Math questions. These should be college-level math problems covering:
- Algebra (linear equations, systems, quadratics)
- Problem solving and data analysis
- Advanced math (functions, polynomials, radicals)
- Geometry and trigonometry
Questions should be challenging and require multi-step reasoning. NO basic arithmetic like "6+7".`, n)
		if strings.Contains(lower, "algebra") {
			s += " Focus specifically on algebraic concepts: equations, inequalities, functions, and systems."
		} else if strings.Contains(lower, "geometry") {
			s += " Focus specifically on geometry: shapes, angles, area, volume, coordinate geometry, and trigonometry."
		}
		return s
	case hasAny(lower, "reading", "writing", "rw"):
		return fmt.Sprintf(`Create %d SAT Reading & Writing questions. Include:
- Reading comprehension with passages from literature, science, or history
- Grammar and usage questions
- Vocabulary in context
- Rhetoric and expression
- Standard English conventions
Provide relevant passages where needed.`, n)
	case strings.Contains(lower, "diagnostic"):
		return fmt.Sprintf(`Create %d diagnostic SAT questions covering a broad range:
- Mix of Math (algebra, geometry, data analysis) and Reading/Writing
- Varied difficulty levels to assess student's current level
- Comprehensive coverage of SAT topics`, n)
	default:
		return genericGuidance(raw, n)
	}
}

func actGuidance(lower, raw string, n int) string {
	switch {
	case strings.Contains(lower, "math"):
		return fmt.Sprintf(`Create %d ACT Math questions covering:
- Pre-algebra and elementary algebra
- Intermediate algebra and coordinate geometry
- Plane geometry and trigonometry
Questions should test mathematical reasoning, NOT basic arithmetic.`, n)
	case strings.Contains(lower, "science"):
		return fmt.Sprintf(`Create %d ACT Science questions. These should:
- Include scientific passages with data, graphs, charts, or experimental descriptions
- Test interpretation of scientific information
- Cover biology, chemistry, physics, and earth science concepts
- Require analysis and evaluation of scientific data
Always include relevant passages or data representations.`, n)
	case strings.Contains(lower, "reading"):
		return fmt.Sprintf(`Create %d ACT Reading questions with:
- Passages from prose fiction, social science, humanities, or natural science
- Questions testing comprehension, inference, and analysis
- Focus on main ideas, details, sequence, and author's craft
Include complete passages for context.`, n)
	case hasAny(lower, "english", "writing"):
		return fmt.Sprintf(`Create %d ACT English questions testing:
- Grammar and usage
- Punctuation and sentence structure
- Strategy and organization
- Style and rhetoric
Provide passages with underlined portions or specific contexts.`, n)
	case strings.Contains(lower, "diagnostic"):
		return fmt.Sprintf(`Create %d diagnostic ACT questions covering:
- Math, Science, Reading, and English sections
- Broad topic coverage to assess overall ACT readiness
- Varied difficulty levels`, n)
	default:
		return genericGuidance(raw, n)
	}
}

func apGuidance(lower, raw string, n int) string {
	switch {
	case hasAny(lower, "calculus", "calc"):
		return fmt.Sprintf(`Create %d AP Calculus AB questions covering:
- Limits and continuity
- Derivatives and their applications
- Integrals and their applications
- Fundamental Theorem of Calculus
Questions should be college-level and require deep understanding.`, n)
	case strings.Contains(lower, "biology"):
		return fmt.Sprintf(`Create %d AP Biology questions covering:
- Cell structure and function
- Genetics and heredity
- Evolution and ecology
- Molecular biology and biochemistry
Include scientific reasoning and data analysis questions.`, n)
	case strings.Contains(lower, "chemistry"):
		return fmt.Sprintf(`Create %d AP Chemistry questions covering:
- Atomic structure and periodicity
- Chemical bonding and molecular structure
- Chemical reactions and stoichiometry
- Thermodynamics and kinetics
Require conceptual understanding and problem-solving.`, n)
	case strings.Contains(lower, "physics"):
		return fmt.Sprintf(`Create %d AP Physics 1 questions covering:
- Kinematics and dynamics
- Energy and momentum
- Circular motion and gravitation
- Waves and electricity
Focus on conceptual understanding and application.`, n)
	case hasAny(lower, "history", "ush", "world"):
		historyType := "US History"
		if strings.Contains(lower, "world") {
			historyType = "World History"
		}
		return fmt.Sprintf(`Create %d AP %s questions covering:
- Historical periods and developments
- Causation and continuity
- Historical evidence and interpretation
- Contextualization of events
Include passages or historical documents where appropriate.`, n, historyType)
	case hasAny(lower, "literature", "lit"):
		return fmt.Sprintf(`Create %d AP English Literature questions:
- Literary analysis and interpretation
- Poetry and prose comprehension
- Literary devices and techniques
- Thematic analysis
Include passages from literature.`, n)
	case strings.Contains(lower, "psychology"):
		return fmt.Sprintf(`Create %d AP Psychology questions covering:
- Biological bases of behavior
- Cognitive processes
- Development and personality
- Social psychology and research methods
Test conceptual understanding and application.`, n)
	case strings.Contains(lower, "diagnostic"):
		return fmt.Sprintf(`Create %d diagnostic AP questions covering common AP subjects:
- Mix of STEM and humanities topics
- College-level rigor
- Varied difficulty to assess AP readiness`, n)
	default:
		return genericGuidance(raw, n)
	}
}

// adaptiveGuidance is reachable only for adaptive types that do not also
// match an earlier family keyword. "adaptive" itself contains "ap", so most
// adaptive types route through apGuidance first; that shadowing matches the
// classifier in the exam package.
func adaptiveGuidance(lower, raw string, n int) string {
	switch {
	case strings.Contains(lower, "sat"):
		return fmt.Sprintf(`Create %d adaptive SAT Math questions:
- Start with medium difficulty
- Cover key SAT math topics
- Allow for difficulty adjustment based on performance`, n)
	case strings.Contains(lower, "act"):
		return fmt.Sprintf(`Create %d adaptive ACT Math questions:
- Start with medium difficulty
- Cover key ACT math topics
- Allow for difficulty adjustment based on performance`, n)
	default:
		return genericGuidance(raw, n)
	}
}

func genericGuidance(testType string, n int) string {
	return fmt.Sprintf(`Create %d high-quality academic questions for %q:
- Appropriate difficulty and depth
- Clear and unambiguous
- Correct answer keys`, n, testType)
}

// BuildAnalysisPrompt serializes answered questions into an analysis request.
func BuildAnalysisPrompt(result *exam.TestResult) (string, error) {
	type answered struct {
		Question      string `json:"question"`
		CorrectAnswer string `json:"correctAnswer"`
		UserAnswer    string `json:"userAnswer"`
		Topic         string `json:"topic"`
	}

	payload := make([]answered, 0, len(result.Questions))
	for _, q := range result.Questions {
		a := answered{
			Question:   q.QuestionText,
			UserAnswer: "Not answered",
			Topic:      q.Topic,
		}
		if q.CorrectAnswerIndex >= 0 && q.CorrectAnswerIndex < len(q.Options) {
			a.CorrectAnswer = q.Options[q.CorrectAnswerIndex]
		}
		for _, ua := range result.Answers {
			if ua.QuestionID == q.ID && ua.AnswerIndex >= 0 && ua.AnswerIndex < len(q.Options) {
				a.UserAnswer = q.Options[ua.AnswerIndex]
				break
			}
		}
		payload = append(payload, a)
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("marshaling analysis payload: %w", err)
	}
	return fmt.Sprintf("Analyze test results: %s", data), nil
}

// BuildChatSystemPrompt returns the tutor persona, with optional user context.
func BuildChatSystemPrompt(userContext string) string {
	if userContext == "" {
		return chatSystemPrompt
	}
	return fmt.Sprintf("%s User context: %s", chatSystemPrompt, userContext)
}

// BuildAdminInsightsPrompt serializes platform stats into a short-form
// insights request.
func BuildAdminInsightsPrompt(stats exam.AdminStats) (string, error) {
	userStats, err := json.Marshal(stats.UserStats)
	if err != nil {
		return "", fmt.Errorf("marshaling user stats: %w", err)
	}
	weakest, err := json.Marshal(stats.WeakestTopics)
	if err != nil {
		return "", fmt.Errorf("marshaling weakest topics: %w", err)
	}
	return fmt.Sprintf(`Analyze platform data (under 150 words):
- Total Users: %d
- User Stats: %s
- Weakest Topics: %s`, stats.TotalUsers, userStats, weakest), nil
}

func hasAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
