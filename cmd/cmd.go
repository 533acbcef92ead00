// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

// setupCommand handles database setup operations.
func setupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "setup",
		Usage: "Setup and configuration commands",
		Commands: []*cli.Command{
			{
				Name:   "database",
				Usage:  "Create the config file if missing, then initialize the database and run migrations",
				Action: r.SetupDatabase,
			},
			{
				Name:   "rollback",
				Usage:  "Roll back the most recent migration",
				Action: r.SetupRollback,
			},
			{
				Name:   "seed",
				Usage:  "Insert demo categories, questions, venues, artists and shows",
				Action: r.SetupSeed,
			},
		},
	}
}

// serveCommand runs the HTTP servers
func serveCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Run HTTP servers until interrupted",
		Commands: []*cli.Command{
			{
				Name:   "fyyur",
				Usage:  "Serve the venue and artist booking site",
				Action: r.ServeFyyur,
			},
			{
				Name:   "trivia",
				Usage:  "Serve the trivia JSON API",
				Action: r.ServeTrivia,
			},
			{
				Name:   "all",
				Usage:  "Serve both applications",
				Action: r.ServeAll,
			},
		},
	}
}

func exportFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "format",
			Aliases: []string{"f"},
			Usage:   "Output format: csv, markdown or txt",
			Value:   "txt",
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "Output file path (prints to stdout when empty)",
		},
		&cli.BoolFlag{
			Name:  "save",
			Usage: "Write to a file named after the export when --output is empty",
		},
	}
}

// exportCommand handles data exports
func exportCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "export",
		Usage: "Export data from the database",
		Commands: []*cli.Command{
			{
				Name:   "shows",
				Usage:  "Export every show with its venue and artist",
				Flags:  exportFlags(),
				Action: r.ExportShows,
			},
			{
				Name:  "questions",
				Usage: "Export trivia questions",
				Flags: append(exportFlags(), &cli.IntFlag{
					Name:  "category",
					Usage: "Only export questions in this category ID",
				}),
				Action: r.ExportQuestions,
			},
		},
	}
}

// playCommand launches the terminal quiz player.
func playCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "play",
		Aliases: []string{"quiz"},
		Usage:   "Play a trivia quiz against a running trivia API",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "url",
				Usage: "Trivia API base URL (defaults to trivia.url from config)",
			},
			&cli.IntFlag{
				Name:  "category",
				Usage: "Category ID to play (0 for all); prompts when unset",
				Value: -1,
			},
		},
		Action: r.Play,
	}
}

// apiCommand handles direct API calls
func apiCommand(r *Runner) *cli.Command {
	urlFlag := &cli.StringFlag{
		Name:  "url",
		Usage: "Trivia API base URL (defaults to trivia.url from config)",
	}

	return &cli.Command{
		Name:  "api",
		Usage: "Direct calls to the trivia API",
		Commands: []*cli.Command{
			{
				Name:  "get",
				Usage: "Direct GET, prints the JSON response",
				Arguments: []cli.Argument{
					&cli.StringArg{
						Name: "path",
					},
				},
				Flags: []cli.Flag{
					urlFlag,
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output compact JSON",
					},
				},
				Action: r.APIGet,
			},
			{
				Name:  "post",
				Usage: "Direct POST with JSON body",
				Arguments: []cli.Argument{
					&cli.StringArg{
						Name: "path",
					},
				},
				Flags: []cli.Flag{
					urlFlag,
					&cli.StringFlag{
						Name:     "data",
						Aliases:  []string{"d"},
						Usage:    "JSON body to send",
						Required: true,
					},
				},
				Action: r.APIPost,
			},
			{
				Name:  "delete",
				Usage: "Direct DELETE, prints the JSON response",
				Arguments: []cli.Argument{
					&cli.StringArg{
						Name: "path",
					},
				},
				Flags:  []cli.Flag{urlFlag},
				Action: r.APIDelete,
			},
		},
	}
}
