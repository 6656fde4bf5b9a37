package examgen

import (
	"reflect"
	"testing"
)

func TestGenerateLocal_Deterministic(t *testing.T) {
	a := GenerateLocal(12, []string{"algebra", "geometry"}, true)
	b := GenerateLocal(12, []string{"algebra", "geometry"}, true)
	if !reflect.DeepEqual(a, b) {
		t.Fatal("local generation must be deterministic for fixed inputs")
	}
}

func TestGenerateLocal_ClampsCount(t *testing.T) {
	cases := []struct{ in, want int }{
		{0, 5},
		{1, 5},
		{5, 5},
		{10, 10},
		{65, 65},
		{200, 65},
	}
	for _, tc := range cases {
		got := len(GenerateLocal(tc.in, nil, false))
		if got != tc.want {
			t.Fatalf("count %d: expected %d questions, got %d", tc.in, tc.want, got)
		}
	}
}

func TestGenerateLocal_CanonicalInvariants(t *testing.T) {
	qs := GenerateLocal(65, []string{"algebra"}, true)

	for i, q := range qs {
		if q.ID != i+1 {
			t.Fatalf("position %d: id %d, want %d", i, q.ID, i+1)
		}
		switch q.Type {
		case TypeMultipleChoice:
			if len(q.Options) != 4 {
				t.Fatalf("question %d: MC must have 4 options, got %d", q.ID, len(q.Options))
			}
			if q.AnswerIndex < 0 || q.AnswerIndex > 3 {
				t.Fatalf("question %d: answer index %d out of range", q.ID, q.AnswerIndex)
			}
		case TypeNumeric:
			if q.Options != nil {
				t.Fatalf("question %d: numeric must not carry options", q.ID)
			}
			if q.AnswerValue == "" {
				t.Fatalf("question %d: numeric answer missing", q.ID)
			}
		default:
			t.Fatalf("question %d: unknown type %q", q.ID, q.Type)
		}
		if q.Weight != 1 && q.Weight != 2 {
			t.Fatalf("question %d: weight %d", q.ID, q.Weight)
		}
		if q.Explanation == "" {
			t.Fatalf("question %d: explanation requested but missing", q.ID)
		}
	}
}

func TestGenerateLocal_AlternatesTypesAndWeights(t *testing.T) {
	qs := GenerateLocal(6, []string{"algebra"}, false)

	for i, q := range qs {
		wantType := TypeMultipleChoice
		if i%2 == 1 {
			wantType = TypeNumeric
		}
		if q.Type != wantType {
			t.Fatalf("position %d: expected %s, got %s", i, wantType, q.Type)
		}

		wantWeight := 1
		if (i+1)%3 == 0 {
			wantWeight = 2
		}
		if q.Weight != wantWeight {
			t.Fatalf("position %d: expected weight %d, got %d", i, wantWeight, q.Weight)
		}
	}
}

func TestGenerateLocal_NoExplanationsWhenNotRequested(t *testing.T) {
	for _, q := range GenerateLocal(5, nil, false) {
		if q.Explanation != "" {
			t.Fatalf("question %d: unexpected explanation", q.ID)
		}
	}
}

func TestGenerateLocal_TopicPoolCycles(t *testing.T) {
	qs := GenerateLocal(5, []string{"a", "b"}, false)
	want := []string{"a", "b", "a", "b", "a"}
	for i, q := range qs {
		if q.Topic != want[i] {
			t.Fatalf("position %d: expected topic %q, got %q", i, want[i], q.Topic)
		}
	}
}
