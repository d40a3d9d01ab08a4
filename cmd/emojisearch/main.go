// Package main provides a command-line search over a generated emoji catalog.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/samber/do/v2"

	"github.com/listenupapp/emojigen/internal/config"
	"github.com/listenupapp/emojigen/internal/di"
	domainerrors "github.com/listenupapp/emojigen/internal/errors"
	"github.com/listenupapp/emojigen/internal/search"
	"github.com/listenupapp/emojigen/internal/service"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("emojisearch", flag.ContinueOnError)
	fs.SetOutput(stderr)
	catalogPath := fs.String("catalog", "", "catalog file (default EMOJI_OUTPUT_PATH or emojis.json)")
	category := fs.String("category", "", "only return emojis in this category")
	limit := fs.Int("limit", search.DefaultLimit, "maximum number of results")
	logLevel := fs.String("log-level", "", "log level (debug, info, warn, error)")
	asJSON := fs.Bool("json", false, "print results as JSON")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage: emojisearch [flags] words...")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return 2
	}
	query := strings.Join(fs.Args(), " ")
	if query == "" && *category == "" {
		fs.Usage()
		return 2
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	injector := di.NewContainer(config.Flags{OutputPath: *catalogPath, LogLevel: *logLevel})
	defer injector.Shutdown()

	if err := di.Bootstrap(injector); err != nil {
		fmt.Fprintf(stderr, "Failed to load configuration: %v\n", err)
		return domainerrors.CodeOf(err).ExitCode()
	}

	cfg := do.MustInvoke[*config.Config](injector)
	svc := do.MustInvoke[*service.SearchService](injector)

	if err := svc.LoadCatalog(cfg.Output.Path); err != nil {
		fmt.Fprintf(stderr, "Failed to load catalog: %v\n", err)
		return domainerrors.CodeOf(err).ExitCode()
	}

	resp, err := svc.Search(ctx, search.Params{Query: query, Category: *category, Limit: *limit})
	if err != nil {
		fmt.Fprintf(stderr, "Search failed: %v\n", err)
		return 1
	}

	if *asJSON {
		enc := json.NewEncoder(stdout)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		if err := enc.Encode(resp); err != nil {
			fmt.Fprintf(stderr, "Failed to encode results: %v\n", err)
			return 1
		}
		return 0
	}

	printResponse(stdout, resp)
	return 0
}

func printResponse(w io.Writer, resp *service.SearchResponse) {
	if len(resp.Hits) == 0 {
		fmt.Fprintf(w, "No emojis match %q\n", resp.Query)
		if len(resp.Suggestions) > 0 {
			fmt.Fprintf(w, "Did you mean: %s\n", strings.Join(resp.Suggestions, ", "))
		}
		return
	}

	for _, h := range resp.Hits {
		fmt.Fprintf(w, "%s  %s (%s)\n", h.Emoji, h.Name, h.Category)
		if len(h.Variants) > 0 {
			fmt.Fprintf(w, "    variants: %s\n", strings.Join(h.Variants, ", "))
		}
	}
	fmt.Fprintf(w, "%d of %d matches\n", len(resp.Hits), resp.Total)
}
