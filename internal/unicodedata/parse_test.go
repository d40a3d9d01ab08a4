package unicodedata

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadSample(t *testing.T) *File {
	t.Helper()
	f, err := os.Open("testdata/emoji-test-sample.txt")
	require.NoError(t, err)
	defer f.Close()

	file, err := Parse(f)
	require.NoError(t, err)
	return file
}

func TestParse_Lines(t *testing.T) {
	file := loadSample(t)

	require.Len(t, file.Lines, 8)

	first := file.Lines[0]
	assert.Equal(t, []rune{0x1F600}, first.CodePoints)
	assert.Equal(t, StatusFullyQualified, first.Status)
	assert.Equal(t, "😀", first.Emoji)
	assert.Equal(t, "E1.0", first.Version)
	assert.Equal(t, "grinning face", first.Name)
	assert.Equal(t, "Smileys & Emotion", first.Group)
	assert.Equal(t, "face-smiling", first.Subgroup)
	assert.Equal(t, 10, first.LineNo)

	tone := file.Lines[5]
	assert.Equal(t, "thumbs up: light skin tone", tone.Name)
	assert.Equal(t, "People & Body", tone.Group)
	assert.Equal(t, "👍🏻", tone.Sequence())

	assert.Equal(t, StatusComponent, file.Lines[6].Status)
	assert.Equal(t, "heart on fire", file.Lines[7].Name)
}

func TestParse_SkipsMalformedLines(t *testing.T) {
	file := loadSample(t)

	assert.Equal(t, []int{22, 23}, file.Skipped)
}

func TestParse_InitialContext(t *testing.T) {
	file, err := Parse(strings.NewReader("1F600 ; fully-qualified # 😀 E1.0 grinning face\n"))
	require.NoError(t, err)
	require.Len(t, file.Lines, 1)

	assert.Equal(t, DefaultGroup, file.Lines[0].Group)
	assert.Equal(t, DefaultSubgroup, file.Lines[0].Subgroup)
}

func TestParse_MissingComment(t *testing.T) {
	file, err := Parse(strings.NewReader("1F600 ; fully-qualified\n"))
	require.NoError(t, err)
	require.Len(t, file.Lines, 1)

	assert.Equal(t, "😀", file.Lines[0].Emoji)
	assert.Empty(t, file.Lines[0].Version)
	assert.Empty(t, file.Lines[0].Name)
}

func TestParse_Malformed(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{"no status", "1F600 # 😀 E1.0 grinning face"},
		{"empty status", "1F600 ; # 😀 E1.0 grinning face"},
		{"bad hex", "1F60G ; fully-qualified # x"},
		{"no code points", " ; fully-qualified # x"},
		{"surrogate", "D800 ; fully-qualified # x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			file, err := Parse(strings.NewReader(tt.line))
			require.NoError(t, err)
			assert.Empty(t, file.Lines)
			assert.Equal(t, []int{1}, file.Skipped)
		})
	}
}

func TestFile_Groups(t *testing.T) {
	groups := loadSample(t).Groups()

	g, ok := groups.Group("😀")
	assert.True(t, ok)
	assert.Equal(t, "Smileys & Emotion", g)

	g, ok = groups.Group("🏻")
	assert.True(t, ok)
	assert.Equal(t, "People & Body", g)

	// First occurrence wins for U+2764, keyed by the bare code point.
	g, ok = groups.Group("\u2764")
	assert.True(t, ok)
	assert.Equal(t, "Smileys & Emotion", g)

	assert.Len(t, groups, 5)
}

func TestGroupLookup_SequencesDoNotMatch(t *testing.T) {
	file := &File{Lines: []Line{
		{CodePoints: []rune{0x1F44D}, Group: "People & Body"},
		{CodePoints: []rune{0x1F44D, 0x1F3FB}, Group: "People & Body"},
		{CodePoints: []rune{0x1F1EF, 0x1F1F5}, Group: "Flags"},
		{CodePoints: []rune{0x2764, 0xFE0F}, Group: "Smileys & Emotion"},
	}}
	groups := file.Groups()

	g, ok := groups.Group("👍")
	assert.True(t, ok)
	assert.Equal(t, "People & Body", g)

	for _, character := range []string{
		"\U0001F44D\U0001F3FB",       // skin tone sequence
		"\U0001F1EF\U0001F1F5",       // flag
		"\U0001F44D\u200D\U0001F525", // ZWJ sequence
		"\u2764\uFE0F",               // emoji presentation form
		"\U0001F680",                 // not in the file
		"",
	} {
		g, ok := groups.Group(character)
		assert.False(t, ok, "%q", character)
		assert.Empty(t, g, "%q", character)
	}

	// The first code point of a sequence is its own key.
	g, ok = groups.Group("\U0001F1EF")
	assert.True(t, ok)
	assert.Equal(t, "Flags", g)
}
