package attempt

import (
	"sort"
	"strings"
)

// maxWeakTopics caps the weak-topic ranking.
const maxWeakTopics = 4

// genericSuggestions always close the suggestion list, in this order.
var genericSuggestions = []string{
	"Review the explanation for every question you missed before moving on.",
	"Retake a shorter mock exam on your weak areas within the next few days.",
	"Alternate timed drills with untimed review to build both speed and accuracy.",
}

// buildGuidance ranks weak topics from the grading counters and emits
// the ordered remediation suggestions. Weak topics are those with at
// least one miss, sorted by miss count descending; ties keep first
// encounter order. The topic-specific suggestion line appears only when
// weak topics exist; the three generic lines always follow.
func buildGuidance(topics []topicStat) (weakTopics, suggestions []string) {
	weak := make([]topicStat, 0, len(topics))
	for _, t := range topics {
		if t.Missed > 0 {
			weak = append(weak, t)
		}
	}

	sort.SliceStable(weak, func(i, j int) bool {
		return weak[i].Missed > weak[j].Missed
	})
	if len(weak) > maxWeakTopics {
		weak = weak[:maxWeakTopics]
	}

	weakTopics = make([]string, len(weak))
	for i, t := range weak {
		weakTopics[i] = t.Topic
	}

	suggestions = make([]string, 0, len(genericSuggestions)+1)
	if len(weakTopics) > 0 {
		readable := make([]string, len(weakTopics))
		for i, t := range weakTopics {
			readable[i] = strings.ReplaceAll(t, "_", " ")
		}
		suggestions = append(suggestions,
			"Focus your next study sessions on: "+strings.Join(readable, ", ")+".")
	}
	suggestions = append(suggestions, genericSuggestions...)

	return weakTopics, suggestions
}
