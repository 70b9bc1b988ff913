package course_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/mind-engage/pppcourse/internal/course"
)

func sampleLesson() course.Lesson {
	return course.Lesson{
		ID:    "l1",
		Title: "Greetings",
		XP:    10,
		Content: course.LessonContent{
			Title: "Greetings",
			Sections: []course.Section{{
				Title:       "Hello",
				Explanation: "Olá works any time of day.",
				Examples:    []course.Example{course.Ex("Olá", "Hello"), course.ExNote("Oi", "Hi", "informal")},
				RuleBox:     course.NewRuleBox("Rule", "Use Olá with strangers."),
			}},
			CheatSheet: course.NewCheatSheet("Greetings", course.Row("Hello", "Olá")),
		},
		Exercises: course.ExerciseList{
			course.NewFlashcard("e1", "Olá", "Hello"),
			course.NewMCQ("e2", "Good morning?", "Bom dia", "Boa noite", "Bom dia"),
			course.NewTyping("e3", "Type 'thank you' (m)", "Obrigado"),
			course.NewListening("e4", "Boa tarde", "Good afternoon"),
			course.NewMatching("e5", "Match", course.Pair("Olá", "Hello"), course.Pair("Tchau", "Bye")),
			course.NewOrder("e6", "My name is Ana", "Eu", "me", "chamo", "Ana"),
			course.NewPronunciationDrill("e7", "Obrigada", "Thank you (f)"),
		},
	}
}

func TestExerciseList_JSONWireShape(t *testing.T) {
	b, err := json.Marshal(course.ExerciseList{course.NewFlashcard("e1", "Olá", "Hello")})
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":"e1","type":"flashcard","term":"Olá","translation":"Hello"}]`, string(b))

	b, err = json.Marshal(course.ExerciseList{course.NewListening("e4", "Bom dia", "Good morning")})
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":"e4","type":"listening","audioTextPt":"Bom dia","correct":"Good morning"}]`, string(b))
}

func TestExerciseList_JSONDecodesVariants(t *testing.T) {
	raw := `[
		{"id":"a","type":"mcq","prompt":"p","options":["x","y"],"correct":"y"},
		{"id":"b","type":"matching","pairs":[{"left":"um","right":"one"}]},
		{"id":"c","type":"order","items":["Eu","sou"],"term":"ignored"}
	]`
	var l course.ExerciseList
	require.NoError(t, json.Unmarshal([]byte(raw), &l))
	require.Len(t, l, 3)

	assert.Equal(t, course.MCQ{ID: "a", Prompt: "p", Options: []string{"x", "y"}, Correct: "y"}, l[0])
	assert.Equal(t, course.Matching{ID: "b", Pairs: []course.MatchPair{{Left: "um", Right: "one"}}}, l[1])
	assert.Equal(t, course.Order{ID: "c", Items: []string{"Eu", "sou"}}, l[2])
}

func TestExerciseList_UnknownType(t *testing.T) {
	var l course.ExerciseList
	err := json.Unmarshal([]byte(`[{"id":"z","type":"essay"}]`), &l)
	require.Error(t, err)
	assert.True(t, errors.Is(err, course.ErrUnknownKind))

	err = yaml.Unmarshal([]byte("- id: z\n  type: essay\n"), &l)
	require.Error(t, err)
	assert.True(t, errors.Is(err, course.ErrUnknownKind))
}

func TestLesson_JSONRoundTrip(t *testing.T) {
	in := sampleLesson()
	b, err := json.Marshal(in)
	require.NoError(t, err)

	var out course.Lesson
	require.NoError(t, json.Unmarshal(b, &out))
	if diff := cmp.Diff(in, out); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestLesson_YAMLRoundTrip(t *testing.T) {
	in := sampleLesson()
	b, err := yaml.Marshal(in)
	require.NoError(t, err)

	var out course.Lesson
	require.NoError(t, yaml.Unmarshal(b, &out))
	if diff := cmp.Diff(in, out); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestMarshalExercise(t *testing.T) {
	b, err := course.MarshalExercise(course.NewTyping("e3", "Type it", "Obrigado"))
	require.NoError(t, err)
	got, err := course.UnmarshalExercise(b)
	require.NoError(t, err)
	assert.Equal(t, course.Typing{ID: "e3", Prompt: "Type it", Correct: "Obrigado"}, got)

	_, err = course.MarshalExercise(nil)
	assert.Error(t, err)
}

func TestExerciseList_NilEntry(t *testing.T) {
	_, err := json.Marshal(course.ExerciseList{nil})
	assert.Error(t, err)
}
