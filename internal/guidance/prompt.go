package guidance

import (
	"fmt"
	"strings"

	"github.com/abhisek/edurisk/internal/risk"
)

const planSystemPrompt = `You are an academic advisor writing a short, practical study plan for one student. You are given the student's risk level and the areas where they fall short of their targets.`

func buildPlanUserMessage(level risk.Level, weakAreas []risk.WeakArea) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Risk level: %s\n", level))

	b.WriteString("\nWeak areas (most severe first):\n")
	if len(weakAreas) == 0 {
		b.WriteString("None\n")
	} else {
		for _, a := range risk.CriticalFirst(weakAreas) {
			b.WriteString(fmt.Sprintf("- %s: %s, target %s (%s)\n",
				a.Label, formatValue(a.Value, a.Unit), formatValue(a.Target, a.Unit), a.Severity))
		}
	}

	b.WriteString(`
Instructions:
1. Write a plan title that matches the urgency of the risk level.
2. List 3-6 concrete action items. Each item is one short imperative sentence.
3. Address the listed weak areas directly; the most severe areas come first.
4. For High risk, include meeting an advisor and a daily study commitment.
5. Do not include greetings, encouragement filler, or explanations of the scoring.`)

	return b.String()
}
