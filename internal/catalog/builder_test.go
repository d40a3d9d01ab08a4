package catalog

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/listenupapp/emojigen/internal/category"
	"github.com/listenupapp/emojigen/internal/domain"
	"github.com/listenupapp/emojigen/internal/normalize"
	"github.com/listenupapp/emojigen/internal/validation"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestBuilder() *Builder {
	return NewBuilder(normalize.New(normalize.AmpersandKeep), category.NewGroupFirst(), testLogger())
}

const people = "People & Body"

func TestBuild_VariantsAttachToExistingBase(t *testing.T) {
	c, stats := newTestBuilder().Build([]domain.RawRecord{
		{Character: "👍🏻", RawName: ":thumbs_up_light_skin_tone:", UnicodeGroup: people},
		{Character: "👍", RawName: ":thumbs_up:", UnicodeGroup: people},
		{Character: "👍🏽", RawName: ":thumbs_up_medium_skin_tone:", UnicodeGroup: people},
	})

	require.Len(t, c.Entries, 1)
	e := c.Entries[0]
	assert.Equal(t, "👍", e.Character)
	assert.Equal(t, "Thumbs Up", e.DisplayName)
	assert.Equal(t, people, e.Category)
	assert.Equal(t, "👍 thumbs up", e.Searchable)
	assert.Equal(t, []domain.VariantRef{
		{Character: "👍🏻", DisplayName: "Thumbs Up Light Skin Tone"},
		{Character: "👍🏽", DisplayName: "Thumbs Up Medium Skin Tone"},
	}, e.Variants)

	for _, v := range e.Variants {
		assert.NotEqual(t, e.Character, v.Character)
	}

	assert.Equal(t, 1, stats.Bases)
	assert.Equal(t, 2, stats.VariantsAttached)
	assert.Zero(t, stats.Synthesized)
}

func TestBuild_SynthesizesMissingBase(t *testing.T) {
	c, stats := newTestBuilder().Build([]domain.RawRecord{
		{Character: "👍🏻", RawName: ":thumbs_up_light_skin_tone:", UnicodeGroup: people},
		{Character: "👍🏽", RawName: ":thumbs_up_medium_skin_tone:", UnicodeGroup: "Other Group"},
	})

	require.Len(t, c.Entries, 1)
	e := c.Entries[0]
	assert.Equal(t, "👍🏻", e.Character)
	assert.Equal(t, "Thumbs Up", e.DisplayName)
	assert.Equal(t, people, e.Category)
	assert.Equal(t, []domain.VariantRef{
		{Character: "👍🏻", DisplayName: "Thumbs Up Light Skin Tone"},
		{Character: "👍🏽", DisplayName: "Thumbs Up Medium Skin Tone"},
	}, e.Variants)

	assert.Equal(t, 1, stats.Synthesized)
	assert.Equal(t, 2, c.VariantCount)
}

func TestBuild_RedHeartIsBase(t *testing.T) {
	c, _ := newTestBuilder().Build([]domain.RawRecord{
		{Character: "❤️", RawName: ":red_heart:"},
	})

	require.Len(t, c.Entries, 1)
	assert.Equal(t, "Red Heart", c.Entries[0].DisplayName)
	assert.Equal(t, "Symbols", c.Entries[0].Category)
	assert.Empty(t, c.Entries[0].Variants)
	assert.NotNil(t, c.Entries[0].Variants)
}

func TestBuild_DropsUnusableNames(t *testing.T) {
	c, stats := newTestBuilder().Build([]domain.RawRecord{
		{Character: "🙂", RawName: "🙂"},
		{Character: "🫠", RawName: ""},
		{Character: "🫥", RawName: "::"},
		{Character: "🐶", RawName: ""},
		{Character: "🐶", RawName: ":dog:"},
	})

	require.Len(t, c.Entries, 1)
	assert.Equal(t, "🐶", c.Entries[0].Character)
	assert.Equal(t, 4, stats.Unusable)
	assert.Zero(t, stats.Duplicates)
}

func TestBuild_FirstSeenCharacterWins(t *testing.T) {
	c, stats := newTestBuilder().Build([]domain.RawRecord{
		{Character: "🐶", RawName: ":dog_face:"},
		{Character: "🐶", RawName: ":puppy:"},
	})

	require.Len(t, c.Entries, 1)
	assert.Equal(t, "Dog Face", c.Entries[0].DisplayName)
	assert.Equal(t, 1, stats.Duplicates)
	assert.Equal(t, 2, stats.Records)
}

func TestBuild_PrefixOnlyNamesAreBasesUnderShortName(t *testing.T) {
	c, stats := newTestBuilder().Build([]domain.RawRecord{
		{Character: "🕺", RawName: ":man_dancing:", UnicodeGroup: people},
		{Character: "💃", RawName: ":woman_dancing:", UnicodeGroup: people},
	})

	require.Len(t, c.Entries, 1)
	assert.Equal(t, "🕺", c.Entries[0].Character)
	assert.Equal(t, "Man Dancing", c.Entries[0].DisplayName)
	assert.Empty(t, c.Entries[0].Variants)
	assert.Equal(t, 1, stats.DiscardedBases)
}

func TestBuild_VariantsJoinBaseKeyedByShortName(t *testing.T) {
	c, _ := newTestBuilder().Build([]domain.RawRecord{
		{Character: "🕺", RawName: ":man_dancing:", UnicodeGroup: people},
		{Character: "🕺🏿", RawName: ":man_dancing_dark_skin_tone:", UnicodeGroup: people},
	})

	require.Len(t, c.Entries, 1)
	assert.Equal(t, "Man Dancing", c.Entries[0].DisplayName)
	assert.Equal(t, []domain.VariantRef{
		{Character: "🕺🏿", DisplayName: "Man Dancing Dark Skin Tone"},
	}, c.Entries[0].Variants)
}

func sampleRecords() []domain.RawRecord {
	return []domain.RawRecord{
		{Character: "🚀", RawName: ":rocket:"},
		{Character: "😀", RawName: ":grinning_face:"},
		{Character: "🍎", RawName: ":red_apple:"},
		{Character: "🍌", RawName: ":banana:"},
		{Character: "👋🏻", RawName: ":waving_hand_light_skin_tone:", UnicodeGroup: people},
		{Character: "👋", RawName: ":waving_hand:", UnicodeGroup: people},
		{Character: "👋🏿", RawName: ":waving_hand_dark_skin_tone:", UnicodeGroup: people},
		{Character: "❤️", RawName: ":red_heart:"},
		{Character: "💙", RawName: ":heart_blue:"},
		{Character: "🇯🇵", RawName: ":flag_Japan:"},
		{Character: "😂", RawName: ":face_with_tears_of_joy:"},
	}
}

func TestBuild_SortedWithCounts(t *testing.T) {
	c, _ := newTestBuilder().Build(sampleRecords())

	names := make([]string, 0, len(c.Entries))
	for _, e := range c.Entries {
		names = append(names, e.Category+"/"+e.DisplayName)
	}
	assert.Equal(t, []string{
		"Flags/Flag Japan",
		"Food & Drink/Banana",
		"Food & Drink/Red Apple",
		"People & Body/Waving Hand",
		"Smileys & Emotions/Face With Tears Of Joy",
		"Smileys & Emotions/Grinning Face",
		"Symbols/Heart",
		"Symbols/Red Heart",
		"Travel & Places/Rocket",
	}, names)

	assert.Equal(t, []string{
		"Flags", "Food & Drink", "People & Body", "Smileys & Emotions", "Symbols", "Travel & Places",
	}, c.Categories)

	assert.Equal(t, len(c.Entries), c.TotalCount)
	sum := 0
	for _, e := range c.Entries {
		sum += len(e.Variants)
	}
	assert.Equal(t, sum, c.VariantCount)
	assert.Equal(t, 3, c.VariantCount)

	require.NoError(t, Validate(validation.New(), c))
}

func TestBuild_ByteIdenticalReruns(t *testing.T) {
	first, _ := newTestBuilder().Build(sampleRecords())
	second, _ := newTestBuilder().Build(sampleRecords())

	a, err := Encode(first)
	require.NoError(t, err)
	b, err := Encode(second)
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestBuild_BuilderIsReusable(t *testing.T) {
	b := newTestBuilder()
	first, _ := b.Build(sampleRecords())
	second, stats := b.Build(sampleRecords())

	assert.Equal(t, first, second)
	assert.Zero(t, stats.Duplicates)
}

func TestBuild_TokenFrequencyPolicy(t *testing.T) {
	records := []domain.RawRecord{
		{Character: "🍎", RawName: ":red_apple:"},
		{Character: "❤️", RawName: ":red_heart:"},
		{Character: "🔴", RawName: ":red_circle:"},
		{Character: "🍐", RawName: ":pear:"},
	}
	cat, err := category.New(category.PolicyTokenFrequency, records, 3)
	require.NoError(t, err)

	c, _ := NewBuilder(normalize.New(normalize.AmpersandKeep), cat, testLogger()).Build(records)

	assert.Equal(t, []string{category.OtherCategory, "Red"}, c.Categories)
}

func TestBuild_Empty(t *testing.T) {
	c, stats := newTestBuilder().Build(nil)

	assert.Empty(t, c.Entries)
	assert.Equal(t, []string{}, c.Categories)
	assert.Zero(t, c.TotalCount)
	assert.Zero(t, stats.Records)
}
