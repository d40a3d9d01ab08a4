package dataset

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/listenupapp/emojigen/internal/domain"
	"github.com/listenupapp/emojigen/internal/unicodedata"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestLibrary_Records(t *testing.T) {
	lib := NewLibraryFrom(map[string]string{
		":+1:":        "👍",
		":thumbsup:":  "👍",
		":thumbs_up:": "👍",
		":dog:":       "🐶",
		":dog_face:":  "🐶",
		":heart:":     "❤️",
		":blank:":     " ",
	})

	records, err := lib.Records(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []domain.RawRecord{
		{Character: "❤️", RawName: ":heart:"},
		{Character: "🐶", RawName: ":dog_face:"},
		{Character: "👍", RawName: ":thumbs_up:"},
	}, records)
}

func TestLibrary_RecordsDeterministic(t *testing.T) {
	lib := NewLibrary()

	first, err := lib.Records(context.Background())
	require.NoError(t, err)
	second, err := lib.Records(context.Background())
	require.NoError(t, err)

	require.NotEmpty(t, first)
	assert.Equal(t, first, second)
	assert.True(t, slices.IsSortedFunc(first, func(a, b domain.RawRecord) int {
		return strings.Compare(a.Character, b.Character)
	}))

	seen := make(map[string]bool, len(first))
	for _, rec := range first {
		assert.False(t, seen[rec.Character], "duplicate character %q", rec.Character)
		seen[rec.Character] = true
	}
}

func TestPreferredName(t *testing.T) {
	tests := []struct {
		a, b string
		want bool
	}{
		{":thumbs_up:", ":thumbsup:", true},
		{":thumbsup:", ":thumbs_up:", false},
		{":dog_face:", ":dog_x:", true},
		{":abc_d:", ":abd_c:", true},
		{":abd_c:", ":abc_d:", false},
		{":x:", ":x:", false},
	}

	for _, tt := range tests {
		t.Run(tt.a+" vs "+tt.b, func(t *testing.T) {
			assert.Equal(t, tt.want, PreferredName(tt.a, tt.b))
		})
	}
}

func TestRawName(t *testing.T) {
	tests := []struct {
		cldr string
		want string
	}{
		{"thumbs up: light skin tone", ":thumbs_up_light_skin_tone:"},
		{"family: man, woman, boy", ":family_man_woman_boy:"},
		{"grinning face", ":grinning_face:"},
		{"", ""},
		{" : ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.cldr, func(t *testing.T) {
			assert.Equal(t, tt.want, RawName(tt.cldr))
		})
	}
}

const sampleTest = `# group: People & Body
# subgroup: hand-fingers-closed
1F44D ; fully-qualified # 👍 E0.6 thumbs up
1F44D 1F3FB ; fully-qualified # 👍🏻 E1.0 thumbs up: light skin tone
# group: Component
1F3FB ; component # 🏻 E1.0 light skin tone
# group: Smileys & Emotion
2764 ; unqualified # ❤ E0.6 red heart
263A ; minimally-qualified # ☺ E0.6 smiling face
`

func TestFromFile(t *testing.T) {
	file, err := unicodedata.Parse(strings.NewReader(sampleTest))
	require.NoError(t, err)

	assert.Equal(t, []domain.RawRecord{
		{Character: "👍", RawName: ":thumbs_up:", UnicodeGroup: "People & Body"},
		{Character: "👍🏻", RawName: ":thumbs_up_light_skin_tone:", UnicodeGroup: "People & Body"},
		{Character: "🏻", RawName: ":light_skin_tone:", UnicodeGroup: "Component"},
	}, FromFile(file))
}

func TestUnicodeTest_Records(t *testing.T) {
	path := t.TempDir() + "/emoji-test.txt"
	require.NoError(t, os.WriteFile(path, []byte(sampleTest), 0o600))

	provider := NewUnicodeTest(unicodedata.Source{FilePath: path}, nil)
	records, err := provider.Records(context.Background())
	require.NoError(t, err)

	assert.Len(t, records, 3)
}

func TestWithGroups(t *testing.T) {
	records := []domain.RawRecord{
		{Character: "👍", RawName: ":thumbs_up:"},
		{Character: "👍🏽", RawName: ":thumbs_up_medium_skin_tone:"},
		{Character: "🚀", RawName: ":rocket:"},
		{Character: "🐶", RawName: ":dog:", UnicodeGroup: "Animals"},
	}
	lookup := unicodedata.GroupLookup{
		"👍": "People & Body",
		"🐶": "Animals & Nature",
	}

	got := WithGroups(records, lookup)

	assert.Equal(t, "People & Body", got[0].UnicodeGroup)
	// Sequences only match their own character, never their first code point.
	assert.Empty(t, got[1].UnicodeGroup)
	assert.Empty(t, got[2].UnicodeGroup)
	assert.Equal(t, "Animals", got[3].UnicodeGroup)
	// Input is not modified.
	assert.Empty(t, records[0].UnicodeGroup)
}

type stubProvider struct {
	records []domain.RawRecord
	err     error
}

func (s stubProvider) Records(context.Context) ([]domain.RawRecord, error) {
	return s.records, s.err
}

func TestFallback(t *testing.T) {
	secondary := stubProvider{records: []domain.RawRecord{{Character: "🐶", RawName: ":dog:"}}}

	f := &Fallback{
		Primary:   stubProvider{err: errors.New("offline")},
		Secondary: secondary,
		Logger:    testLogger(),
	}
	records, err := f.Records(context.Background())
	require.NoError(t, err)
	assert.Equal(t, secondary.records, records)

	primary := stubProvider{records: []domain.RawRecord{{Character: "🚀", RawName: ":rocket:"}}}
	f.Primary = primary
	records, err = f.Records(context.Background())
	require.NoError(t, err)
	assert.Equal(t, primary.records, records)
}
