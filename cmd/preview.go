package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Divyanshgupta04/lern-deployment/internal/exam"
	"github.com/Divyanshgupta04/lern-deployment/internal/fallback"
	"github.com/Divyanshgupta04/lern-deployment/internal/generate"
)

var (
	previewCount int
	previewJSON  bool
)

var previewCmd = &cobra.Command{
	Use:   "preview <test-type>",
	Short: "Print the fallback questions and prompt for a test type",
	Long: `preview shows what the service would do for a given test type without
calling the AI provider: the classified category, the generation prompt,
and the offline fallback questions.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPreview(args[0])
	},
}

func init() {
	previewCmd.Flags().IntVarP(&previewCount, "count", "n", 5, "number of fallback questions")
	previewCmd.Flags().BoolVar(&previewJSON, "json", false, "emit questions as JSON")
	rootCmd.AddCommand(previewCmd)
}

func runPreview(testType string) error {
	family := exam.ClassifyFamily(testType)
	category := exam.ClassifyCategory(testType)
	questions := fallback.Questions(testType, previewCount)

	if previewJSON {
		return json.NewEncoder(os.Stdout).Encode(questions)
	}

	fmt.Printf("Test type: %s\n", testType)
	fmt.Printf("Family:    %s\n", family)
	fmt.Printf("Category:  %s (%d templates)\n\n", category, fallback.PoolSize(category))

	fmt.Println("Prompt:")
	fmt.Println(generate.BuildQuestionPrompt(testType, previewCount, generate.PromptOptions{}))
	fmt.Println()

	fmt.Printf("Fallback questions (%d):\n", len(questions))
	for i, q := range questions {
		fmt.Printf("%2d. [%s/%s] %s\n", i+1, q.Topic, q.Difficulty, q.QuestionText)
		for j, opt := range q.Options {
			marker := "  "
			if j == q.CorrectAnswerIndex {
				marker = "* "
			}
			fmt.Printf("      %s%s\n", marker, opt)
		}
	}
	return nil
}
