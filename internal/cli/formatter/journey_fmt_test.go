package formatter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tmorland/wayfare/internal/domain"
	"github.com/tmorland/wayfare/internal/service"
)

func TestRenderJourney_Plain(t *testing.T) {
	view := &service.JourneyView{
		ID:         "j1",
		Name:       "ISO 27001 Readiness",
		Completion: 50,
		Stages: []service.StageView{
			{
				ID:         "s1",
				Name:       "Initial Scoping",
				Completion: 75,
				Steps: []service.StepView{
					{ID: "t1", Name: "Kickoff Call", Status: domain.StepCompleted},
					{ID: "t2", Name: "Define Scope", Status: domain.StepInProgress},
				},
			},
			{
				ID:         "s2",
				Name:       "Onboarding",
				Completion: 0,
				Steps: []service.StepView{
					{ID: "t3", Name: "Connect AWS", Status: domain.StepNotStarted},
				},
			},
		},
	}

	out := RenderJourney(view, true)

	assert.Contains(t, out, "ISO 27001 Readiness")
	assert.Contains(t, out, "Initial Scoping")
	assert.Contains(t, out, "Connect AWS")
	assert.Contains(t, out, " 50%")
	assert.Contains(t, out, " 75%")
	assert.Contains(t, out, "✔")
	assert.Contains(t, out, "▶")
	assert.Contains(t, out, "○")

	// Last stage uses the corner connector.
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.True(t, strings.HasPrefix(lines[len(lines)-2], treeCorner), "last stage line: %q", lines[len(lines)-2])
}

func TestRenderJourney_EmptyJourney(t *testing.T) {
	view := &service.JourneyView{ID: "j1", Name: "Fresh", Completion: 0}

	out := RenderJourney(view, true)
	assert.Contains(t, out, "Fresh")
	assert.Contains(t, out, "  0%")
}
