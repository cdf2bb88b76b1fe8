package domain

import "math"

// Completion computes the overall completion percentage for a sequence of
// step statuses. An empty sequence is 0 percent. Otherwise the result is
// round(100 * mean(weight)), rounding halves up (math.Round; inputs are
// never negative), so e.g. one in-progress step among three yields 17.
func Completion(statuses []StepStatus) int {
	if len(statuses) == 0 {
		return 0
	}
	var total float64
	for _, s := range statuses {
		total += s.Weight()
	}
	return int(math.Round(total / float64(len(statuses)) * 100))
}
