package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/abhisek/edurisk/internal/guidance"
	"github.com/abhisek/edurisk/internal/llm"
	"github.com/abhisek/edurisk/internal/predict"
	"github.com/abhisek/edurisk/internal/risk"
	"github.com/abhisek/edurisk/internal/scenario"
)

var assessCmd = &cobra.Command{
	Use:   "assess",
	Short: "Run a one-shot risk assessment",
	Long:  "Assess a student profile from flags (or a named scenario) and print the risk report.",
	RunE:  runAssess,
}

func init() {
	assessCmd.Flags().Float64("attendance", 75, "Attendance percentage [0,100]")
	assessCmd.Flags().Float64("assignment", 65, "Assignment score [0,100]")
	assessCmd.Flags().Float64("quiz", 60, "Quiz score [0,100]")
	assessCmd.Flags().Float64("midterm", 62, "Midterm score [0,100]")
	assessCmd.Flags().Float64("study-hours", 10, "Study hours per week")
	assessCmd.Flags().Float64("gpa", 6.5, "Previous GPA on a 10-point scale")
	assessCmd.Flags().String("scenario", "", "Use a built-in scenario instead of metric flags")
	assessCmd.Flags().Bool("json", false, "Print the report as JSON")
	assessCmd.Flags().Bool("local", false, "Skip any configured remote model and score locally")
}

// assessReport is the JSON shape of one assessment.
type assessReport struct {
	ID         string              `json:"id"`
	Metrics    risk.StudentMetrics `json:"metrics"`
	Assessment risk.Assessment     `json:"assessment"`
	WeakAreas  []risk.WeakArea     `json:"weak_areas"`
	Guidance   guidanceReport      `json:"guidance"`
	Source     predict.Source      `json:"prediction_source"`
	Reasoning  string              `json:"reasoning,omitempty"`
}

type guidanceReport struct {
	Title  string          `json:"title"`
	Body   string          `json:"body"`
	Source guidance.Source `json:"source"`
}

func runAssess(cmd *cobra.Command, args []string) error {
	m, err := metricsFromFlags(cmd)
	if err != nil {
		return err
	}

	var provider llm.Provider
	rec := llm.NewMemoryRecorder()
	if local, _ := cmd.Flags().GetBool("local"); !local {
		// Headless mode stays quiet about a missing provider; the local
		// scorer is the documented default.
		if p, perr := llm.NewProviderFromEnv(cmd.Context(), rec); perr == nil {
			provider = p
		}
	}

	p, err := predict.NewService(provider).Predict(cmd.Context(), m)
	if err != nil {
		return err
	}
	weak := risk.DetectWeakAreas(m)
	plan := guidance.NewService(provider).Plan(cmd.Context(), p.Assessment.Level, weak)

	report := assessReport{
		ID:         uuid.NewString(),
		Metrics:    m,
		Assessment: p.Assessment,
		WeakAreas:  risk.CriticalFirst(weak),
		Guidance:   guidanceReport{Title: plan.Title, Body: plan.Body, Source: plan.Source},
		Source:     p.Source,
		Reasoning:  p.Reasoning,
	}

	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}

	printReport(cmd, report)
	if p.RemoteErr != nil {
		fmt.Fprintln(os.Stderr, "Remote predictor failed, used local scorer:", p.RemoteErr)
	}
	printUsage(cmd, rec)
	return nil
}

// printUsage summarizes LLM tokens spent on this assessment, if any.
func printUsage(cmd *cobra.Command, rec *llm.MemoryRecorder) {
	snapshot := rec.Snapshot()
	if len(snapshot) == 0 {
		return
	}
	var calls, in, out int
	for _, u := range snapshot {
		calls += u.Calls
		in += u.InputTokens
		out += u.OutputTokens
	}
	line := fmt.Sprintf("LLM usage: %d call(s), %d in / %d out tokens", calls, in, out)
	if cost, ok := rec.EstimatedCost(); ok {
		line += fmt.Sprintf(" (est $%.4f)", cost)
	}
	fmt.Fprintln(cmd.ErrOrStderr(), line)
}

func metricsFromFlags(cmd *cobra.Command) (risk.StudentMetrics, error) {
	if name, _ := cmd.Flags().GetString("scenario"); name != "" {
		s, err := scenario.ByName(name)
		if err != nil {
			return risk.StudentMetrics{}, err
		}
		return s.Metrics, nil
	}

	attendance, _ := cmd.Flags().GetFloat64("attendance")
	assignment, _ := cmd.Flags().GetFloat64("assignment")
	quiz, _ := cmd.Flags().GetFloat64("quiz")
	midterm, _ := cmd.Flags().GetFloat64("midterm")
	study, _ := cmd.Flags().GetFloat64("study-hours")
	gpa, _ := cmd.Flags().GetFloat64("gpa")

	return risk.StudentMetrics{
		AttendancePct:     attendance,
		AssignmentScore:   assignment,
		QuizScore:         quiz,
		MidtermScore:      midterm,
		StudyHoursPerWeek: study,
		PreviousGPA:       gpa,
	}, nil
}

func printReport(cmd *cobra.Command, r assessReport) {
	out := cmd.OutOrStdout()
	sep := strings.Repeat("─", 60)

	fmt.Fprintln(out, sep)
	fmt.Fprintf(out, "Risk: %s  (score %.1f, confidence %.0f%%)\n",
		strings.ToUpper(string(r.Assessment.Level)), r.Assessment.WeightedScore, r.Assessment.Confidence*100)
	fmt.Fprintf(out, "Decided by: %s  ·  prediction: %s\n", r.Assessment.RuleName, r.Source)
	if r.Reasoning != "" {
		fmt.Fprintf(out, "Reasoning: %s\n", r.Reasoning)
	}
	fmt.Fprintln(out, sep)

	if len(r.WeakAreas) > 0 {
		fmt.Fprintln(out, "Weak areas:")
		for _, w := range r.WeakAreas {
			marker := "•"
			if w.Severity == risk.SeverityCritical {
				marker = "‼"
			}
			fmt.Fprintf(out, "  %s %s: %.1f%s (target %.1f)\n", marker, w.Label, w.Value, w.Unit, w.Target)
		}
		fmt.Fprintln(out, sep)
	}

	fmt.Fprintln(out, r.Guidance.Title)
	fmt.Fprintln(out, r.Guidance.Body)
	fmt.Fprintln(out, sep)
	fmt.Fprintf(out, "assessment %s\n", r.ID)
}
