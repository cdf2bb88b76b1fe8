package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompletion(t *testing.T) {
	tests := []struct {
		name     string
		statuses []StepStatus
		want     int
	}{
		{"empty sequence", nil, 0},
		{"single not started", []StepStatus{StepNotStarted}, 0},
		{"single in progress", []StepStatus{StepInProgress}, 50},
		{"single completed", []StepStatus{StepCompleted}, 100},
		{"all not started", []StepStatus{StepNotStarted, StepNotStarted, StepNotStarted}, 0},
		{"all in progress", []StepStatus{StepInProgress, StepInProgress}, 50},
		{"all completed", []StepStatus{StepCompleted, StepCompleted, StepCompleted, StepCompleted}, 100},
		{"completed plus not started", []StepStatus{StepCompleted, StepNotStarted}, 50},
		{"mixed three steps", []StepStatus{StepCompleted, StepNotStarted, StepInProgress}, 50},
		{"one in progress of three rounds up", []StepStatus{StepInProgress, StepNotStarted, StepNotStarted}, 17},
		{"two completed of three", []StepStatus{StepCompleted, StepCompleted, StepNotStarted}, 67},
		{"one completed of six", []StepStatus{StepCompleted, StepNotStarted, StepNotStarted, StepNotStarted, StepNotStarted, StepNotStarted}, 17},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Completion(tt.statuses))
		})
	}
}

func TestCompletion_UniformStatusMatchesWeight(t *testing.T) {
	for _, s := range []StepStatus{StepNotStarted, StepInProgress, StepCompleted} {
		statuses := []StepStatus{s, s, s, s, s}
		assert.Equal(t, int(s.Weight()*100), Completion(statuses), "uniform %s", s)
	}
}
