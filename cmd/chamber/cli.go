package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/yctsai/chamber/internal/config"
	"github.com/yctsai/chamber/internal/errors"
	"github.com/yctsai/chamber/internal/ops"
	"github.com/yctsai/chamber/internal/web"
)

// newCLIApp creates the CLI application with all commands.
func newCLIApp(cfg *config.Config) *cli.App {
	app := &cli.App{
		Name:    "chamber",
		Usage:   "Networking event room assignment",
		Version: Version,
		Commands: []*cli.Command{
			groupCmd(cfg),
			moveCmd(),
			statsCmd(),
			reportCmd(),
			exportCmd(),
			importCmd(),
			parseCmd(),
			categoriesCmd(cfg),
			serveCmd(cfg),
		},
	}
	// Disable default exit error handler to allow proper error return in tests
	app.ExitErrHandler = func(_ *cli.Context, _ error) {}
	return app
}

// groupCmd creates the group command.
func groupCmd(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "group",
		Usage: "Assign guests and members to host rooms",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "hosts", Aliases: []string{"H"}, Usage: "Path to the host roster file"},
			&cli.StringFlag{Name: "members", Aliases: []string{"m"}, Usage: "Path to the member roster file"},
			&cli.StringFlag{Name: "guests", Aliases: []string{"g"}, Usage: "Path to the guest roster file"},
			&cli.StringFlag{Name: "hosts-text", Usage: "Host roster as inline text (overrides --hosts)"},
			&cli.StringFlag{Name: "members-text", Usage: "Member roster as inline text"},
			&cli.StringFlag{Name: "guests-text", Usage: "Guest roster as inline text"},
			&cli.StringFlag{Name: "table", Aliases: []string{"t"}, Usage: "Path to a synergy table file"},
			&cli.BoolFlag{Name: "allow-overlap", Usage: "Allow same-industry people in one room"},
			&cli.IntFlag{Name: "target", Usage: "Target assignees per room (default from config)"},
			&cli.Int64Flag{Name: "seed", Usage: "Random seed for reproducible runs"},
		},
		Action: func(c *cli.Context) error {
			hosts, err := rosterText(c, "hosts")
			if err != nil {
				return outputError(err)
			}
			members, err := rosterText(c, "members")
			if err != nil {
				return outputError(err)
			}
			guests, err := rosterText(c, "guests")
			if err != nil {
				return outputError(err)
			}

			input := ops.GroupInput{
				HostsText:   hosts,
				MembersText: members,
				GuestsText:  guests,
			}

			if path := c.String("table"); path != "" {
				data, err := os.ReadFile(path)
				if err != nil {
					return outputError(errors.NewInvalidRequest(fmt.Sprintf("cannot read table file: %v", err)))
				}
				text := string(data)
				input.TableText = &text
			}
			if c.IsSet("allow-overlap") {
				allow := c.Bool("allow-overlap")
				input.AllowOverlap = &allow
			}
			if c.IsSet("target") {
				target := c.Int("target")
				input.TargetPerRoom = &target
			}
			if c.IsSet("seed") {
				seed := c.Int64("seed")
				input.Seed = &seed
			}

			output, err := ops.Group(cfg, input)
			if err != nil {
				return outputError(err)
			}

			return outputJSON(output)
		},
	}
}

// moveCmd creates the move command.
func moveCmd() *cli.Command {
	return &cli.Command{
		Name:  "move",
		Usage: "Move a person between rooms (reads a result document from stdin)",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "person", Aliases: []string{"p"}, Required: true, Usage: "ID of the person to move"},
			&cli.StringFlag{Name: "from", Aliases: []string{"f"}, Required: true, Usage: "Source room ID"},
			&cli.StringFlag{Name: "to", Aliases: []string{"t"}, Required: true, Usage: "Destination room ID"},
		},
		Action: func(c *cli.Context) error {
			doc, err := readDoc()
			if err != nil {
				return outputError(err)
			}

			output, err := ops.Move(ops.MoveInput{
				Doc:        doc,
				PersonID:   c.String("person"),
				FromRoomID: c.String("from"),
				ToRoomID:   c.String("to"),
			})
			if err != nil {
				return outputError(err)
			}

			return outputJSON(output)
		},
	}
}

// statsCmd creates the stats command.
func statsCmd() *cli.Command {
	return &cli.Command{
		Name:  "stats",
		Usage: "Summary statistics for a result document (reads from stdin)",
		Action: func(c *cli.Context) error {
			doc, err := readDoc()
			if err != nil {
				return outputError(err)
			}

			output, err := ops.Stats(ops.StatsInput{Doc: doc})
			if err != nil {
				return outputError(err)
			}

			return outputJSON(output)
		},
	}
}

// reportCmd creates the report command.
func reportCmd() *cli.Command {
	return &cli.Command{
		Name:  "report",
		Usage: "Markdown report for a result document (reads from stdin)",
		Action: func(c *cli.Context) error {
			doc, err := readDoc()
			if err != nil {
				return outputError(err)
			}

			output, err := ops.Report(ops.ReportInput{Doc: doc})
			if err != nil {
				return outputError(err)
			}

			fmt.Println(output.Markdown)
			return nil
		},
	}
}

// exportCmd creates the export command.
func exportCmd() *cli.Command {
	return &cli.Command{
		Name:  "export",
		Usage: "CSV export of a result document (reads from stdin)",
		Action: func(c *cli.Context) error {
			doc, err := readDoc()
			if err != nil {
				return outputError(err)
			}

			output, err := ops.Export(ops.ExportInput{Doc: doc})
			if err != nil {
				return outputError(err)
			}

			fmt.Print(output.CSV)
			return nil
		},
	}
}

// importCmd creates the import command.
func importCmd() *cli.Command {
	return &cli.Command{
		Name:  "import",
		Usage: "Import a CSV roster and split it by role",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "path", Aliases: []string{"p"}, Usage: "CSV file path (omit to read CSV from stdin)"},
		},
		Action: func(c *cli.Context) error {
			input := ops.ImportInput{Path: c.String("path")}

			if input.Path == "" {
				if !stdinHasData() {
					return outputError(errors.NewInvalidRequest("provide --path or pipe CSV via stdin"))
				}
				text, err := readStdin()
				if err != nil {
					return outputError(errors.NewInternal(err))
				}
				input.CSVText = text
			}

			output, err := ops.Import(input)
			if err != nil {
				return outputError(err)
			}

			return outputJSON(output)
		},
	}
}

// parseCmd creates the parse command.
func parseCmd() *cli.Command {
	return &cli.Command{
		Name:  "parse",
		Usage: "Parse roster text into structured people (reads from stdin)",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "role", Aliases: []string{"r"}, Value: "guest", Usage: "Default role: host|member|guest"},
		},
		Action: func(c *cli.Context) error {
			if !stdinHasData() {
				return outputError(errors.NewInvalidRequest("roster text must be piped via stdin"))
			}

			text, err := readStdin()
			if err != nil {
				return outputError(errors.NewInternal(err))
			}

			output, err := ops.Parse(ops.ParseInput{Text: text, Role: c.String("role")})
			if err != nil {
				return outputError(err)
			}

			return outputJSON(output)
		},
	}
}

// categoriesCmd creates the categories command.
func categoriesCmd(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "categories",
		Usage: "List the synergy categories in effect",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "table", Aliases: []string{"t"}, Usage: "Path to a synergy table file"},
		},
		Action: func(c *cli.Context) error {
			input := ops.CategoriesInput{}

			if path := c.String("table"); path != "" {
				data, err := os.ReadFile(path)
				if err != nil {
					return outputError(errors.NewInvalidRequest(fmt.Sprintf("cannot read table file: %v", err)))
				}
				text := string(data)
				input.TableText = &text
			}

			output, err := ops.Categories(cfg, input)
			if err != nil {
				return outputError(err)
			}

			return outputJSON(output)
		},
	}
}

// serveCmd creates the serve command.
func serveCmd(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Start the web UI",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "bind", Aliases: []string{"b"}, Value: "127.0.0.1", Usage: "Bind address"},
			&cli.IntFlag{Name: "port", Aliases: []string{"p"}, Value: 8787, Usage: "Listen port"},
		},
		Action: func(c *cli.Context) error {
			srv := web.NewServer(cfg, Version, c.String("bind"), c.Int("port"))
			return web.Run(srv)
		},
	}
}

// Helper functions

// outputJSON marshals result to stdout as JSON.
func outputJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// outputError formats error for CLI.
func outputError(err error) error {
	if cerr, ok := err.(*errors.ChamberError); ok {
		return cli.Exit(fmt.Sprintf("[%s] %s", cerr.Code, cerr.Message), 1)
	}
	return cli.Exit(err.Error(), 1)
}

// stdinHasData returns true if stdin has piped data (not a terminal).
func stdinHasData() bool {
	stat, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) == 0
}

// readStdin reads all content from stdin.
func readStdin() (string, error) {
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

// readDoc reads a result document as JSON from stdin.
func readDoc() (*ops.ResultDoc, error) {
	if !stdinHasData() {
		return nil, errors.NewInvalidRequest("a result document must be piped via stdin")
	}
	text, err := readStdin()
	if err != nil {
		return nil, errors.NewInternal(err)
	}
	var doc ops.ResultDoc
	if err := json.Unmarshal([]byte(text), &doc); err != nil {
		return nil, errors.NewInvalidRequest(fmt.Sprintf("invalid result document: %v", err))
	}
	return &doc, nil
}

// rosterText resolves a roster flag pair: inline text wins over a file path.
func rosterText(c *cli.Context, name string) (string, error) {
	if text := c.String(name + "-text"); text != "" {
		return text, nil
	}
	path := c.String(name)
	if path == "" {
		return "", nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", errors.NewInvalidRequest(fmt.Sprintf("cannot read %s file: %v", name, err))
	}
	return string(data), nil
}
