package providers

import (
	"context"

	"github.com/samber/do/v2"

	"github.com/listenupapp/emojigen/internal/config"
	"github.com/listenupapp/emojigen/internal/logger"
	"github.com/listenupapp/emojigen/internal/service"
	"github.com/listenupapp/emojigen/internal/unicodedata"
)

// UnicodeClientHandle wraps the emoji-test.txt client with shutdown capability.
type UnicodeClientHandle struct {
	*unicodedata.Client
}

// Shutdown implements do.Shutdowner.
func (h *UnicodeClientHandle) Shutdown() error {
	h.Close()
	return nil
}

// ProvideUnicodeClient provides the emoji-test.txt HTTP client.
func ProvideUnicodeClient(i do.Injector) (*UnicodeClientHandle, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	client := unicodedata.NewClient(cfg.Unicode.URL, cfg.Unicode.Timeout, log.Logger)
	return &UnicodeClientHandle{Client: client}, nil
}

// ProvideUnicodeSource provides where emoji-test.txt is read from.
func ProvideUnicodeSource(i do.Injector) (unicodedata.Source, error) {
	cfg := do.MustInvoke[*config.Config](i)

	return unicodedata.Source{
		FilePath: cfg.Unicode.FilePath,
		URL:      cfg.Unicode.URL,
		Enabled:  cfg.Unicode.Enabled,
	}, nil
}

// ProvideGroupLoader provides the lazy Unicode group lookup.
func ProvideGroupLoader(i do.Injector) (service.GroupLoader, error) {
	src := do.MustInvoke[unicodedata.Source](i)
	client := do.MustInvoke[*UnicodeClientHandle](i)
	log := do.MustInvoke[*logger.Logger](i)

	return func(ctx context.Context) unicodedata.GroupLookup {
		return unicodedata.LoadGroups(ctx, src, client.Client, log.Logger)
	}, nil
}
