package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/acrompton/shelf/internal/formatter"
	"github.com/acrompton/shelf/internal/models"
	"github.com/acrompton/shelf/internal/shared"
	"github.com/urfave/cli/v3"
)

// CollectionList prints the records of one collection, or both when no
// argument is given.
func (r *Runner) CollectionList(ctx context.Context, cmd *cli.Command) error {
	if err := r.requireCatalog(ctx); err != nil {
		return err
	}

	name := cmd.StringArg("collection")

	names := models.Collections
	if name != "" {
		if !models.ValidCollection(name) {
			return fmt.Errorf("%w: %q", shared.ErrUnknownCollection, name)
		}
		names = []string{name}
	}

	if cmd.Bool("json") {
		payload := map[string][]models.Record{}
		for _, n := range names {
			records := r.store.Records(n)
			if records == nil {
				records = []models.Record{}
			}
			payload[n] = records
		}
		return r.writeJSON(payload, cmd.Bool("pretty"))
	}

	for _, n := range names {
		records := r.store.Records(n)
		r.writePlainHeader(fmt.Sprintf("%s (%d)", n, len(records)))
		if len(records) == 0 {
			r.writePlain("  (empty)\n")
			continue
		}
		for _, record := range records {
			year := record.Year
			if year == "" {
				year = "----"
			}
			r.writePlain("  [%d] %s - %s (%s)\n", record.ID, record.Artist, record.Album, year)
		}
	}

	return nil
}

// CollectionAdd appends an album to a collection.
func (r *Runner) CollectionAdd(ctx context.Context, cmd *cli.Command) error {
	if err := r.requireCatalog(ctx); err != nil {
		return err
	}

	name := cmd.String("collection")
	candidate := models.SearchResult{
		Artist:   cmd.String("artist"),
		Album:    cmd.String("album"),
		Year:     cmd.String("year"),
		ImageURL: cmd.String("image"),
	}

	record, err := r.catalog.Add(ctx, name, candidate)
	if err != nil {
		return fmt.Errorf("failed to add record: %w", err)
	}

	r.logger.Info("record added", "collection", name, "id", record.ID)

	if cmd.Bool("json") {
		return r.writeJSON(record, true)
	}

	return r.writePlain("✓ Added %s - %s to %s (id %d)\n", record.Artist, record.Album, name, record.ID)
}

// CollectionRemove deletes a record from a collection by id. Removing
// an id that is not present succeeds without effect.
func (r *Runner) CollectionRemove(ctx context.Context, cmd *cli.Command) error {
	if err := r.requireCatalog(ctx); err != nil {
		return err
	}

	name := cmd.String("collection")
	id := int64(cmd.Int("id"))

	before := r.store.Len(name)
	if err := r.catalog.Remove(ctx, name, id); err != nil {
		return fmt.Errorf("failed to remove record: %w", err)
	}

	if r.store.Len(name) == before {
		return r.writePlain("No record with id %d in %s\n", id, name)
	}

	r.logger.Info("record removed", "collection", name, "id", id)
	return r.writePlain("✓ Removed record %d from %s\n", id, name)
}

// CollectionExport writes a collection to disk in the chosen format.
func (r *Runner) CollectionExport(ctx context.Context, cmd *cli.Command) error {
	if err := r.requireCatalog(ctx); err != nil {
		return err
	}

	name := cmd.String("collection")
	if !models.ValidCollection(name) {
		return fmt.Errorf("%w: %q", shared.ErrUnknownCollection, name)
	}

	export := &formatter.Export{
		Collection: name,
		Records:    r.store.Records(name),
	}
	output := cmd.String("output")

	switch strings.ToLower(cmd.String("format")) {
	case "csv":
		result, err := formatter.WriteCSVExport(export, output)
		if err != nil {
			return fmt.Errorf("export failed: %w", err)
		}
		r.writePlain("✓ Wrote %s and %s\n", result.RecordsFile, result.MetadataFile)

	case "markdown", "md":
		// First cover found doubles as the shelf's cover image.
		var imageURL string
		for _, record := range export.Records {
			if record.ImageURL != "" {
				imageURL = record.ImageURL
				break
			}
		}
		result, err := formatter.WriteMarkdownExport(export, output, imageURL)
		if err != nil {
			return fmt.Errorf("export failed: %w", err)
		}
		r.writePlain("✓ Wrote %s\n", strings.Join(result.Files, ", "))

	case "text", "txt":
		path, err := formatter.WriteTextExport(export, output)
		if err != nil {
			return fmt.Errorf("export failed: %w", err)
		}
		r.writePlain("✓ Wrote %s\n", path)

	case "json":
		path, err := formatter.WriteJSONExport(export, output)
		if err != nil {
			return fmt.Errorf("export failed: %w", err)
		}
		r.writePlain("✓ Wrote %s\n", path)

	default:
		return fmt.Errorf("%w: unsupported format %q", shared.ErrInvalidArgument, cmd.String("format"))
	}

	return nil
}
