package renderer

import (
	"bytes"
	"fmt"

	"finman"

	md "github.com/nao1215/markdown"
)

// goalBarWidth is the fixed width of the goal progress bar.
const goalBarWidth = 40

// GoalsMarkdown renders savings goals and their progress to a markdown string.
func GoalsMarkdown(goals []finman.GoalProgress, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Savings Goals")
	if len(goals) == 0 {
		doc.PlainText("No savings goals set.")
		return doc.String()
	}

	for _, g := range goals {
		doc.H2(fmt.Sprintf("%s (%s)", g.Name, g.ID))
		doc.PlainText(fmt.Sprintf("Target: %s | Current: %s | Remaining: %s",
			money(g.Target, currency), money(g.Current, currency), money(g.Remaining, currency)))
		doc.PlainText(fmt.Sprintf("Deadline: %s", g.Deadline))
		doc.PlainText(fmt.Sprintf("`[%s]` %s", progressBar(g.Percentage, goalBarWidth), g.Percentage))
	}

	return doc.String()
}
