package qti

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mind-engage/pppcourse/internal/course"
)

func sampleModule() course.Module {
	return course.Module{
		ID:    "m1",
		Title: "Greetings",
		Lessons: []course.Lesson{{
			ID:    "m1l1",
			Title: "Hello",
			XP:    10,
			Exercises: course.ExerciseList{
				course.NewFlashcard("e1", "Olá", "Hello"),
				course.NewMCQ("e2", "Good morning?", "Bom dia", "Boa noite", "Bom dia"),
				course.NewTyping("e3", "Type 'bye'", "Tchau"),
				course.NewListening("e4", "Boa tarde", "Good afternoon"),
				course.NewMatching("e5", "Match", course.Pair("Oi", "Hi"), course.Pair("Tchau", "Bye")),
				course.NewOrder("e6", "My name is Ana.", "Eu", "me", "chamo", "Ana"),
				course.NewPronunciationDrill("e7", "Bom dia", "Good morning"),
			},
		}},
	}
}

func readItem(t *testing.T, pkg []byte, href string) assessmentItem {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(pkg), int64(len(pkg)))
	require.NoError(t, err)
	f, err := zr.Open(href)
	require.NoError(t, err)
	defer f.Close()
	raw, err := io.ReadAll(f)
	require.NoError(t, err)
	var it assessmentItem
	require.NoError(t, xml.Unmarshal(raw, &it))
	return it
}

func TestBuildPackage_SkipsPracticeOnlyExercises(t *testing.T) {
	pkg, err := BuildPackage(sampleModule())
	require.NoError(t, err)

	res, err := ReadManifest(pkg)
	require.NoError(t, err)
	var ids []string
	for _, r := range res {
		ids = append(ids, r.Identifier)
		assert.Equal(t, itemType, r.Type)
	}
	assert.Equal(t, []string{"m1-m1l1-e2", "m1-m1l1-e3", "m1-m1l1-e4", "m1-m1l1-e5", "m1-m1l1-e6"}, ids)
}

func TestBuildPackage_ItemContent(t *testing.T) {
	pkg, err := BuildPackage(sampleModule())
	require.NoError(t, err)

	mcq := readItem(t, pkg, "items/m1-m1l1-e2.xml")
	assert.Equal(t, []string{"C2"}, mcq.Response.Values)
	require.NotNil(t, mcq.Body.Choice)
	assert.Equal(t, "Bom dia", mcq.Body.Choice.Choices[1].Text)

	typing := readItem(t, pkg, "items/m1-m1l1-e3.xml")
	assert.Equal(t, "string", typing.Response.BaseType)
	assert.Equal(t, []string{"Tchau"}, typing.Response.Values)

	match := readItem(t, pkg, "items/m1-m1l1-e5.xml")
	assert.Equal(t, []string{"L1 R1", "L2 R2"}, match.Response.Values)

	order := readItem(t, pkg, "items/m1-m1l1-e6.xml")
	assert.Equal(t, "ordered", order.Response.Cardinality)
	assert.Equal(t, []string{"C1", "C2", "C3", "C4"}, order.Response.Values)
	require.NotNil(t, order.Body.Order)
	assert.Equal(t, "Ana", order.Body.Order.Choices[0].Text)
	assert.Equal(t, "C4", order.Body.Order.Choices[0].Identifier)
}

func TestAssessable(t *testing.T) {
	assert.False(t, Assessable(course.NewFlashcard("e", "a", "b")))
	assert.False(t, Assessable(course.NewPronunciationDrill("e", "a", "b")))
	assert.True(t, Assessable(course.NewTyping("e", "a", "b")))
}
