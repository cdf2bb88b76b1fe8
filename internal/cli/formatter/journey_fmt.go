package formatter

import (
	"fmt"
	"strings"

	"github.com/tmorland/wayfare/internal/service"
)

const (
	treeBranch = "├─ "
	treeCorner = "└─ "
	treePipe   = "│  "
	treeSpace  = "   "
)

// RenderJourney renders the full hierarchy as an indented tree with a
// progress bar per stage and an overall bar in the header.
func RenderJourney(v *service.JourneyView, plain bool) string {
	var b strings.Builder

	name := v.Name
	if !plain {
		name = StyleHeader.Render(name)
	}
	fmt.Fprintf(&b, "%s  %s\n", name, RenderProgress(v.Completion, 20, plain))

	for i, stage := range v.Stages {
		lastStage := i == len(v.Stages)-1
		connector := treeBranch
		childIndent := treePipe
		if lastStage {
			connector = treeCorner
			childIndent = treeSpace
		}

		fmt.Fprintf(&b, "%s%s  %s\n", connector, stage.Name, RenderProgress(stage.Completion, 12, plain))

		for k, step := range stage.Steps {
			stepConnector := treeBranch
			if k == len(stage.Steps)-1 {
				stepConnector = treeCorner
			}
			fmt.Fprintf(&b, "%s%s%s %s\n", childIndent, stepConnector,
				StatusIndicator(step.Status, plain), step.Name)
		}
	}

	return b.String()
}
