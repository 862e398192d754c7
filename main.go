package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/peterbourgon/ff/v3/ffcli"
)

const defaultRootPath = "~/.bman"

var logLevel = new(slog.LevelVar)

// app holds what the commands share during one invocation.
type app struct {
	store   *Store
	stdout  io.Writer
	painter painter
	client  *http.Client
	now     func() time.Time
}

// refuse reports a mutation that was not performed.
func (a *app) refuse(msg string) {
	fmt.Fprintln(a.stdout, a.painter.paint("red", msg))
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func main() {
	log.SetPrefix("bman: ")
	log.SetFlags(0)

	_ = godotenv.Load()

	slog.SetDefault(slog.New(tint.NewHandler(colorable.NewColorable(os.Stderr), &tint.Options{
		Level:      logLevel,
		TimeFormat: time.TimeOnly,
		NoColor:    !isTerminal(os.Stderr),
	})))

	color := isTerminal(os.Stdout)
	var stdout io.Writer = os.Stdout
	if color {
		stdout = colorable.NewColorable(os.Stdout)
	}

	if err := run(context.Background(), os.Args[1:], stdout, os.Stderr, color); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer, color bool) error {
	var a *app

	rootFs := flag.NewFlagSet("bman", flag.ContinueOnError)
	rootFs.SetOutput(stderr)
	rootRootPath := rootFs.String("root-path", envOrDefault("BMAN_ROOT_PATH", defaultRootPath), "directory of config.json and library.json (env BMAN_ROOT_PATH)")
	rootPath := rootFs.Bool("path", false, "print the storage directory")
	rootVerbose := rootFs.Bool("v", false, "log debug messages")
	rootCmd := &ffcli.Command{
		Name:       "bman",
		ShortUsage: "bman [flags] subcommand [flags] <arguments>...",
		ShortHelp:  "Your command line bookmark manager",
		LongHelp: `Your command line bookmark manager.
Bookmarks are stored in library.json, settings in config.json, both
in the directory given by -root-path or BMAN_ROOT_PATH.`,
		FlagSet: rootFs,
		Exec: func(ctx context.Context, args []string) error {
			if *rootPath {
				_, err := fmt.Fprintln(stdout, a.store.Root())
				return err
			}
			return flag.ErrHelp
		},
	}

	lsFs := flag.NewFlagSet("ls", flag.ContinueOnError)
	lsFs.SetOutput(stderr)
	lsFormat := new(modeFlag)
	lsFs.Var(lsFormat, "format", "output format: only-url, full or json (default from config.json)")
	lsUseRegex := lsFs.Bool("use-regex", false, "treat the filter as a regular expression")
	lsFields := lsFs.String("fields", "", "comma separated list of fields to show and to apply the filter to")
	lsCmd := &ffcli.Command{
		Name:       "ls",
		ShortUsage: "ls [flags] [filter]",
		ShortHelp:  "List stored entries",
		LongHelp: `List stored entries.
Without a filter every entry is listed. The filter matches anywhere in
the url or in any field value and is case sensitive.`,
		FlagSet: lsFs,
		Exec: func(ctx context.Context, args []string) error {
			if len(args) > 1 {
				return flag.ErrHelp
			}
			filter := ""
			if len(args) == 1 {
				filter = args[0]
			}
			return a.list(filter, *lsUseRegex, *lsFields, lsFormat)
		},
	}

	addFs := flag.NewFlagSet("add", flag.ContinueOnError)
	addFs.SetOutput(stderr)
	addForce := addFs.Bool("force", false, "replace the entry if the url exists")
	addFetch := addFs.Bool("fetch", false, "without a description, use the title of the page")
	addCmd := &ffcli.Command{
		Name:       "add",
		ShortUsage: "add [flags] <url> [description] [tags]",
		ShortHelp:  "Add a new entry",
		LongHelp: `Add a new entry.
Tags are a comma separated list. An existing url is left untouched
unless -force is given.`,
		FlagSet: addFs,
		Exec: func(ctx context.Context, args []string) error {
			if len(args) == 0 || len(args) > 3 {
				return flag.ErrHelp
			}
			args = append(args, "", "")
			return a.addURL(ctx, args[0], args[1], args[2], *addForce, *addFetch)
		},
	}

	rmFs := flag.NewFlagSet("rm", flag.ContinueOnError)
	rmFs.SetOutput(stderr)
	rmCmd := &ffcli.Command{
		Name:       "rm",
		ShortUsage: "rm <url>",
		ShortHelp:  "Remove an entry",
		FlagSet:    rmFs,
		Exec: func(ctx context.Context, args []string) error {
			if len(args) != 1 {
				return flag.ErrHelp
			}
			return a.removeURL(args[0])
		},
	}

	tagsFs := flag.NewFlagSet("tags", flag.ContinueOnError)
	tagsFs.SetOutput(stderr)
	tagsCmd := &ffcli.Command{
		Name:       "tags",
		ShortUsage: "tags",
		ShortHelp:  "List tags with the number of entries using them",
		FlagSet:    tagsFs,
		Exec: func(ctx context.Context, args []string) error {
			return a.listTags()
		},
	}

	importFs := flag.NewFlagSet("import", flag.ContinueOnError)
	importFs.SetOutput(stderr)
	importForce := importFs.Bool("force", false, "replace entries whose url exists")
	importTags := importFs.String("tags", "", "comma separated tags to add to every imported entry")
	importCmd := &ffcli.Command{
		Name:       "import",
		ShortUsage: "import [flags] <file>...",
		ShortHelp:  "Import bookmarks from files",
		LongHelp: `Import bookmarks from files.
A file can be a text file with one url per line, an html file, usually
an export of bookmarks by a browser, or a baks sqlite3 database.`,
		FlagSet: importFs,
		Exec: func(ctx context.Context, args []string) error {
			if len(args) == 0 {
				return flag.ErrHelp
			}
			return a.importFiles(args, *importTags, *importForce)
		},
	}

	rootCmd.Subcommands = []*ffcli.Command{lsCmd, addCmd, rmCmd, tagsCmd, importCmd}

	if err := rootCmd.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if *rootVerbose {
		logLevel.Set(slog.LevelDebug)
	}

	a = &app{
		store:   NewStore(*rootRootPath),
		stdout:  stdout,
		painter: painter{enabled: color},
		client:  &http.Client{Timeout: visitTimeout},
		now:     time.Now,
	}

	if err := rootCmd.Run(ctx); err != nil && !errors.Is(err, flag.ErrHelp) {
		return err
	}
	return nil
}
