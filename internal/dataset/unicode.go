package dataset

import (
	"context"
	"strings"

	"github.com/listenupapp/emojigen/internal/domain"
	"github.com/listenupapp/emojigen/internal/unicodedata"
)

// UnicodeTest builds records from emoji-test.txt.
type UnicodeTest struct {
	source  unicodedata.Source
	fetcher unicodedata.Fetcher
}

// NewUnicodeTest creates a provider reading from source.
func NewUnicodeTest(source unicodedata.Source, fetcher unicodedata.Fetcher) *UnicodeTest {
	return &UnicodeTest{source: source, fetcher: fetcher}
}

// Records implements Provider. Fully-qualified and component sequences are
// returned in file order with their group attached.
func (u *UnicodeTest) Records(ctx context.Context) ([]domain.RawRecord, error) {
	file, err := unicodedata.Load(ctx, u.source, u.fetcher)
	if err != nil {
		return nil, err
	}
	return FromFile(file), nil
}

// FromFile converts parsed emoji-test lines into raw records.
func FromFile(file *unicodedata.File) []domain.RawRecord {
	records := make([]domain.RawRecord, 0, len(file.Lines))
	for _, l := range file.Lines {
		if l.Status != unicodedata.StatusFullyQualified && l.Status != unicodedata.StatusComponent {
			continue
		}
		records = append(records, domain.RawRecord{
			Character:    l.Sequence(),
			RawName:      RawName(l.Name),
			UnicodeGroup: l.Group,
		})
	}
	return records
}

// RawName turns a CLDR short name into an alias-style identifier:
//
//	"thumbs up: light skin tone" → ":thumbs_up_light_skin_tone:"
//
// An empty name yields an empty identifier.
func RawName(cldr string) string {
	cleaned := strings.NewReplacer(":", " ", ",", " ").Replace(cldr)
	words := strings.Fields(cleaned)
	if len(words) == 0 {
		return ""
	}
	return ":" + strings.Join(words, "_") + ":"
}
