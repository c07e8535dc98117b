// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

func collectionFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "collection",
		Aliases: []string{"C"},
		Usage:   "Collection to operate on (have or want)",
		Value:   "have",
	}
}

// setupCommand handles setup operations for configuration and storage.
func setupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "setup",
		Usage: "Setup and configuration commands",
		Commands: []*cli.Command{
			{
				Name:  "database",
				Usage: "Initialize database and run migrations",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "config",
						Aliases: []string{"c"},
						Usage:   "Path to configuration file",
						Value:   "config.toml",
					},
				},
				Action: r.SetupDatabase,
			},
		},
	}
}

// listCommand prints the records of one or both collections.
func listCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "list",
		Aliases: []string{"ls"},
		Usage:   "List the records on a shelf",
		Arguments: []cli.Argument{
			&cli.StringArg{
				Name: "collection",
			},
		},
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Output raw JSON",
			},
			&cli.BoolFlag{
				Name:  "pretty",
				Usage: "Pretty-print output",
				Value: true,
			},
		},
		Action: r.CollectionList,
	}
}

// addCommand appends an album to a collection.
func addCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "add",
		Usage: "Add an album to a shelf",
		Flags: []cli.Flag{
			collectionFlag(),
			&cli.StringFlag{
				Name:     "artist",
				Usage:    "Album artist",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "album",
				Usage:    "Album title",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "year",
				Usage: "Release year",
			},
			&cli.StringFlag{
				Name:  "image",
				Usage: "Cover art URL",
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Output the created record as JSON",
			},
		},
		Action: r.CollectionAdd,
	}
}

// removeCommand deletes a record from a collection by id.
func removeCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "remove",
		Aliases: []string{"rm"},
		Usage:   "Remove a record from a shelf",
		Flags: []cli.Flag{
			collectionFlag(),
			&cli.IntFlag{
				Name:     "id",
				Usage:    "Record ID to remove",
				Required: true,
			},
		},
		Action: r.CollectionRemove,
	}
}

// exportCommand writes a collection to disk in the chosen format.
func exportCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "export",
		Usage: "Export a shelf to CSV, Markdown, plain text, or JSON",
		Flags: []cli.Flag{
			collectionFlag(),
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "Export format (csv, markdown, text, json)",
				Value:   "csv",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Output file or directory path",
			},
		},
		Action: r.CollectionExport,
	}
}

// searchCommand runs a web-augmented album search.
func searchCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "search",
		Usage: "Search the web for albums",
		Arguments: []cli.Argument{
			&cli.StringArg{
				Name: "query",
			},
		},
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Output raw JSON",
			},
			&cli.BoolFlag{
				Name:  "pretty",
				Usage: "Pretty-print output",
				Value: true,
			},
		},
		Action: r.Search,
	}
}

// suggestCommand fetches typing suggestions for a partial query.
func suggestCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "suggest",
		Usage: "Fetch search suggestions for a partial query",
		Arguments: []cli.Argument{
			&cli.StringArg{
				Name: "query",
			},
		},
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Output raw JSON",
			},
		},
		Action: r.Suggest,
	}
}

// tuiCommand returns the top-level TUI command for interactive album discovery.
func tuiCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "tui",
		Aliases: []string{"interactive", "ui"},
		Usage:   "Launch interactive TUI for album discovery",
		Action:  r.TUI,
	}
}
