package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/edurisk/internal/app"
	"github.com/abhisek/edurisk/internal/llm"
)

var rootCmd = &cobra.Command{
	Use:   "edurisk",
	Short: "Academic risk intelligence for students",
	Long:  "EduRisk — terminal app that scores a student's academic risk, flags weak areas, and produces a guidance plan.",
	RunE: func(cmd *cobra.Command, args []string) error {
		provider := resolveProvider(cmd, llm.NewMemoryRecorder())
		return app.Run(provider)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(assessCmd)
	rootCmd.AddCommand(scenariosCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveProvider builds an LLM provider from the environment. A missing or
// broken configuration is reported once and the app continues on the
// deterministic local path.
func resolveProvider(cmd *cobra.Command, rec llm.Recorder) llm.Provider {
	provider, err := llm.NewProviderFromEnv(cmd.Context(), rec)
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Running with the local scorer only.")
		return nil
	}
	return provider
}
