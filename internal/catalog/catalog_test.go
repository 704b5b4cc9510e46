package catalog

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testQuiz(id string, level Level) Quiz {
	return Quiz{
		ID:    id,
		Title: "Quiz " + id,
		Level: level,
		Questions: []Question{
			{Title: "Q1", Choices: []string{"a", "b"}, Correct: 0},
			{Title: "Q2", Choices: []string{"a", "b", "c"}, Correct: 2},
		},
	}
}

func TestDefaultCatalog(t *testing.T) {
	cat, err := Default()
	require.NoError(t, err)
	require.NotEmpty(t, cat.All())

	for _, q := range cat.All() {
		assert.NoError(t, q.Validate(), "quiz %s", q.ID)
	}
	for _, l := range Levels {
		assert.NotEmpty(t, cat.ByLevel(l), "no quiz at level %s", l)
	}
}

func TestFindByID(t *testing.T) {
	cat, err := New(testQuiz("a", LevelEasy), testQuiz("b", LevelHard))
	require.NoError(t, err)

	q, err := cat.FindByID("b")
	require.NoError(t, err)
	assert.Equal(t, LevelHard, q.Level)

	_, err = cat.FindByID("missing")
	var nf *QuizNotFoundError
	require.True(t, errors.As(err, &nf))
	assert.Equal(t, "missing", nf.ID)
}

func TestNew_RejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		quiz Quiz
	}{
		{"empty id", Quiz{Level: LevelEasy, Questions: testQuiz("x", LevelEasy).Questions}},
		{"bad level", Quiz{ID: "x", Level: 7, Questions: testQuiz("x", LevelEasy).Questions}},
		{"no questions", Quiz{ID: "x", Level: LevelEasy}},
		{"correct out of range", Quiz{ID: "x", Level: LevelEasy, Questions: []Question{
			{Title: "q", Choices: []string{"a", "b"}, Correct: 2},
		}}},
		{"negative correct", Quiz{ID: "x", Level: LevelEasy, Questions: []Question{
			{Title: "q", Choices: []string{"a", "b"}, Correct: -1},
		}}},
		{"single choice", Quiz{ID: "x", Level: LevelEasy, Questions: []Question{
			{Title: "q", Choices: []string{"a"}, Correct: 0},
		}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.quiz)
			assert.Error(t, err)
		})
	}
}

func TestNew_DuplicateID(t *testing.T) {
	_, err := New(testQuiz("a", LevelEasy), testQuiz("a", LevelMedium))
	assert.Error(t, err)
}

func TestParse_SchemaViolation(t *testing.T) {
	raw := `{"format":"v1.0.0","quizzes":[{"id":"x","title":"t","description":"","level":9,"questions":[]}]}`
	_, err := Parse("test", []byte(raw))
	var fe *FormatError
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, "test", fe.Source)
}

func TestParse_IncompatibleFormat(t *testing.T) {
	doc, err := Encode([]Quiz{testQuiz("a", LevelEasy)})
	require.NoError(t, err)

	_, err = Parse("ok", doc)
	require.NoError(t, err)

	bumped := strings.Replace(string(doc), FormatVersion, "v2.0.0", 1)
	_, err = Parse("v2", []byte(bumped))
	assert.Error(t, err)

	garbage := strings.Replace(string(doc), FormatVersion, "latest", 1)
	_, err = Parse("garbage", []byte(garbage))
	assert.Error(t, err)
}

func TestLoad_Reader(t *testing.T) {
	doc, err := Encode([]Quiz{testQuiz("a", LevelMedium)})
	require.NoError(t, err)

	cat, err := Load("reader", strings.NewReader(string(doc)))
	require.NoError(t, err)
	assert.Len(t, cat.ByLevel(LevelMedium), 1)
	assert.Empty(t, cat.ByLevel(LevelEasy))
}

func TestParseLevel(t *testing.T) {
	for in, want := range map[string]Level{"easy": LevelEasy, "Medium": LevelMedium, " HARD ": LevelHard, "2": LevelMedium} {
		got, err := ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseLevel("expert")
	assert.Error(t, err)
}
