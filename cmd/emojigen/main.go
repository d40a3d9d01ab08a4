// Package main provides the entry point for the emoji catalog generator.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/samber/do/v2"

	"github.com/listenupapp/emojigen/internal/catalog"
	"github.com/listenupapp/emojigen/internal/config"
	"github.com/listenupapp/emojigen/internal/di"
	domainerrors "github.com/listenupapp/emojigen/internal/errors"
	"github.com/listenupapp/emojigen/internal/logger"
	"github.com/listenupapp/emojigen/internal/service"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Create DI container
	injector := di.NewContainer(config.Flags{})
	defer injector.Shutdown()

	if err := di.Bootstrap(injector); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		return domainerrors.CodeOf(err).ExitCode()
	}

	cfg := do.MustInvoke[*config.Config](injector)
	log := do.MustInvoke[*logger.Logger](injector)
	gen := do.MustInvoke[*service.Generator](injector)

	res, err := gen.Generate(ctx, cfg.Output.Path)
	if err != nil {
		log.Error("catalog generation failed", "error", err, "code", domainerrors.CodeOf(err))
		fmt.Fprintf(os.Stderr, "Failed to generate catalog: %v\n", err)
		return domainerrors.CodeOf(err).ExitCode()
	}

	if err := catalog.WriteSummary(os.Stdout, res.Catalog, res.Path); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to print summary: %v\n", err)
		return 1
	}

	return 0
}
