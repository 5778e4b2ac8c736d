package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/edurisk/internal/llm"
)

var llmCmd = &cobra.Command{
	Use:   "llm",
	Short: "Show the resolved LLM provider configuration",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()

		explicit := os.Getenv("EDURISK_LLM_PROVIDER") != ""
		var cfg llm.Config
		if explicit {
			cfg = llm.ConfigFromEnv()
		} else {
			discovered, ok := llm.DiscoverConfig()
			if !ok {
				fmt.Fprintln(out, "No LLM provider configured.")
				fmt.Fprintln(out, "Set EDURISK_LLM_PROVIDER plus the matching EDURISK_*_API_KEY,")
				fmt.Fprintln(out, "or export GEMINI_API_KEY / OPENAI_API_KEY / ANTHROPIC_API_KEY / OPENROUTER_API_KEY.")
				fmt.Fprintln(out, "Assessments run on the local scorer until then.")
				return
			}
			cfg = discovered
		}

		model := cfg.ResolvedModel()
		fmt.Fprintf(out, "Provider:  %s", cfg.Provider)
		if !explicit {
			fmt.Fprint(out, "  (discovered from environment)")
		}
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Model:     %s\n", model)
		fmt.Fprintf(out, "Timeout:   %s\n", cfg.Timeout)
		fmt.Fprintf(out, "Retries:   %d attempts\n", cfg.Retry.MaxAttempts)

		if err := cfg.Validate(); err != nil {
			fmt.Fprintf(out, "Status:    unusable (%v)\n", err)
			return
		}
		fmt.Fprintln(out, "Status:    ready")

		if cost := llm.LookupCost(model); cost != nil {
			fmt.Fprintf(out, "Pricing:   $%.2f in / $%.2f out per 1M tokens\n",
				cost.InputPerMTok, cost.OutputPerMTok)
		} else {
			fmt.Fprintln(out, "Pricing:   unknown model, cost estimates unavailable")
		}
	},
}
