package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/acrompton/shelf/internal/shared"
	"github.com/acrompton/shelf/internal/tasks"
	"github.com/urfave/cli/v3"
)

// Search runs a web-augmented album search and prints the candidates.
func (r *Runner) Search(ctx context.Context, cmd *cli.Command) error {
	if err := r.requireCatalog(ctx); err != nil {
		return err
	}
	if err := r.requireService(); err != nil {
		return err
	}

	query := strings.TrimSpace(cmd.StringArg("query"))
	if query == "" {
		return fmt.Errorf("%w: query", shared.ErrMissingArgument)
	}

	updates := make(chan tasks.Update, 8)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for update := range updates {
			r.logger.Info(update.Message, "phase", update.Phase.String())
		}
	}()

	results, err := r.catalog.Search(ctx, updates, query)
	close(updates)
	<-done

	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if cmd.Bool("json") {
		return r.writeJSON(results, cmd.Bool("pretty"))
	}

	r.writePlainHeader(fmt.Sprintf("Results for %q", query))
	for i, result := range results {
		year := result.Year
		if year == "" {
			year = "----"
		}
		r.writePlain("  %d. %s - %s (%s)\n", i+1, result.Artist, result.Album, year)
	}
	r.writePlainln("Add one with: shelf add --artist <artist> --album <album> -C <have|want>")

	return nil
}

// Suggest fetches typing suggestions for a partial query.
func (r *Runner) Suggest(ctx context.Context, cmd *cli.Command) error {
	if err := r.requireService(); err != nil {
		return err
	}

	query := strings.TrimSpace(cmd.StringArg("query"))
	if query == "" {
		return fmt.Errorf("%w: query", shared.ErrMissingArgument)
	}

	if r.catalog == nil {
		return fmt.Errorf("%w: storage not initialized, run 'shelf setup database'", shared.ErrServiceUnavailable)
	}

	suggestions, err := r.catalog.Suggest(ctx, query)
	if err != nil {
		return fmt.Errorf("suggest failed: %w", err)
	}

	if cmd.Bool("json") {
		return r.writeJSON(suggestions, false)
	}

	for _, suggestion := range suggestions {
		r.writePlain("%s\n", suggestion)
	}

	return nil
}
