package unicodedata

import (
	"context"
	"log/slog"
	"os"

	domainerrors "github.com/listenupapp/emojigen/internal/errors"
)

// Source says where emoji-test.txt comes from. A local file wins over the URL.
type Source struct {
	FilePath string
	URL      string
	Enabled  bool
}

// Fetcher retrieves a remote emoji-test.txt.
type Fetcher interface {
	FetchEmojiTest(ctx context.Context) (*File, error)
}

// Load reads emoji-test.txt from the local file if set, otherwise fetches it
// when remote access is enabled. Failures carry CodeFetchFailed.
func Load(ctx context.Context, src Source, fetcher Fetcher) (*File, error) {
	if src.FilePath != "" {
		f, err := os.Open(src.FilePath)
		if err != nil {
			return nil, domainerrors.Wrapf(wrapError("open", src.FilePath, err),
				domainerrors.CodeFetchFailed, "load emoji-test data")
		}
		defer f.Close()

		file, err := Parse(f)
		if err != nil {
			return nil, domainerrors.Wrapf(wrapError("parse", src.FilePath, err),
				domainerrors.CodeFetchFailed, "load emoji-test data")
		}
		return file, nil
	}

	if !src.Enabled || fetcher == nil {
		return nil, domainerrors.Wrap(ErrNoSource, domainerrors.CodeFetchFailed, "load emoji-test data")
	}

	file, err := fetcher.FetchEmojiTest(ctx)
	if err != nil {
		return nil, domainerrors.Wrap(err, domainerrors.CodeFetchFailed, "load emoji-test data")
	}
	return file, nil
}

// LoadGroups returns the group lookup for src. It never fails: any error is
// logged and an empty lookup returned, so categorization falls back to
// keywords.
func LoadGroups(ctx context.Context, src Source, fetcher Fetcher, logger *slog.Logger) GroupLookup {
	file, err := Load(ctx, src, fetcher)
	if err != nil {
		if domainerrors.Is(err, ErrNoSource) {
			logger.Debug("unicode group data disabled")
		} else {
			logger.Warn("unicode group data unavailable, using keyword categories",
				"error", err,
				"code", domainerrors.CodeOf(err),
			)
		}
		return GroupLookup{}
	}

	for _, n := range file.Skipped {
		logger.Debug("skipped malformed emoji-test line",
			"line", n,
			"code", domainerrors.CodeMalformedLine,
		)
	}

	groups := file.Groups()
	logger.Info("loaded unicode groups",
		"sequences", len(file.Lines),
		"keys", len(groups),
		"skipped", len(file.Skipped),
	)
	return groups
}
