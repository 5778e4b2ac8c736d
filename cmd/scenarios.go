package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/edurisk/internal/scenario"
)

var scenariosCmd = &cobra.Command{
	Use:   "scenarios",
	Short: "List the built-in demo scenarios",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		for _, s := range scenario.All() {
			m := s.Metrics
			fmt.Fprintf(out, "%-12s %s\n", s.Name, s.Description)
			fmt.Fprintf(out, "             attendance=%.0f assignment=%.0f quiz=%.0f midterm=%.0f study=%.0fh gpa=%.1f\n",
				m.AttendancePct, m.AssignmentScore, m.QuizScore, m.MidtermScore, m.StudyHoursPerWeek, m.PreviousGPA)
		}
	},
}
