package attempt

import (
	"strings"
	"testing"
)

func TestBuildGuidance_RanksByMissCountDescending(t *testing.T) {
	weak, _ := buildGuidance([]topicStat{
		{Topic: "algebra", Attempted: 4, Missed: 1},
		{Topic: "geometry", Attempted: 4, Missed: 3},
		{Topic: "arithmetic", Attempted: 4, Missed: 2},
	})

	want := []string{"geometry", "arithmetic", "algebra"}
	if len(weak) != len(want) {
		t.Fatalf("expected %d weak topics, got %v", len(want), weak)
	}
	for i := range want {
		if weak[i] != want[i] {
			t.Fatalf("position %d: expected %q, got %q", i, want[i], weak[i])
		}
	}
}

func TestBuildGuidance_TiesKeepEncounterOrder(t *testing.T) {
	weak, _ := buildGuidance([]topicStat{
		{Topic: "b_topic", Missed: 2},
		{Topic: "a_topic", Missed: 2},
		{Topic: "c_topic", Missed: 2},
	})

	want := []string{"b_topic", "a_topic", "c_topic"}
	for i := range want {
		if weak[i] != want[i] {
			t.Fatalf("tie-break must keep encounter order; got %v", weak)
		}
	}
}

func TestBuildGuidance_TruncatesToFour(t *testing.T) {
	stats := []topicStat{
		{Topic: "t1", Missed: 5},
		{Topic: "t2", Missed: 4},
		{Topic: "t3", Missed: 3},
		{Topic: "t4", Missed: 2},
		{Topic: "t5", Missed: 1},
	}
	weak, _ := buildGuidance(stats)
	if len(weak) != 4 {
		t.Fatalf("expected 4 weak topics, got %d", len(weak))
	}
	if weak[3] != "t4" {
		t.Fatalf("expected t4 last, got %q", weak[3])
	}
}

func TestBuildGuidance_SuggestionsWithWeakTopics(t *testing.T) {
	_, suggestions := buildGuidance([]topicStat{
		{Topic: "word_problems", Missed: 2},
	})

	if len(suggestions) != 4 {
		t.Fatalf("expected topic line plus 3 generic lines, got %d", len(suggestions))
	}
	if !strings.Contains(suggestions[0], "word problems") {
		t.Fatalf("topic line must render underscores as spaces: %q", suggestions[0])
	}
	for i, want := range genericSuggestions {
		if suggestions[i+1] != want {
			t.Fatalf("generic suggestion %d out of order: %q", i, suggestions[i+1])
		}
	}
}

func TestBuildGuidance_NoWeakTopics(t *testing.T) {
	weak, suggestions := buildGuidance([]topicStat{
		{Topic: "algebra", Attempted: 5, Missed: 0},
	})

	if len(weak) != 0 {
		t.Fatalf("expected no weak topics, got %v", weak)
	}
	if len(suggestions) != 3 {
		t.Fatalf("expected exactly the 3 generic lines, got %d", len(suggestions))
	}
	for i, want := range genericSuggestions {
		if suggestions[i] != want {
			t.Fatalf("generic suggestion %d mismatch: %q", i, suggestions[i])
		}
	}
}
