// Command inchi-go converts between molecule files, InChI strings and
// InChIKeys, and serves the same operations over HTTP.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"

	"github.com/chemkit/inchi-go/internal/cache"
	"github.com/chemkit/inchi-go/internal/config"
	"github.com/chemkit/inchi-go/internal/service"
	"github.com/chemkit/inchi-go/pkg/inchi"
	"github.com/chemkit/inchi-go/pkg/inchi/logging"
)

const (
	exitOK          = 0
	exitFailure     = 1
	exitUsage       = 2
	exitUnavailable = 3
)

const usage = `usage: inchi-go [-config file] <command> [args]

commands:
  version                          print wrapper and library versions
  key [-xtra1] [-xtra2] INCHI...   compute InChIKeys
  convert [-options o] [-format table|json] FILE...
                                   compute InChI for molecule files
  parse [-options o] INCHI         print the molecule of an InChI as YAML
  serve                            run the HTTP API
`

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

// env carries what every command needs.
type env struct {
	cfg    *config.Config
	logger *slog.Logger
	stdout io.Writer
	stderr io.Writer

	// store is set by openService when caching is enabled.
	store *cache.Cache
}

type command func(ctx context.Context, e *env, args []string) int

var commands = map[string]command{
	"version": runVersion,
	"key":     runKey,
	"convert": runConvert,
	"parse":   runParse,
	"serve":   runServe,
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("inchi-go", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { fmt.Fprint(stderr, usage) }
	configPath := fs.String("config", "", "path to a YAML or JSON config file")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return exitUsage
	}
	cmd, ok := commands[fs.Arg(0)]
	if !ok {
		fmt.Fprintf(stderr, "unknown command %q\n", fs.Arg(0))
		fs.Usage()
		return exitUsage
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(stderr, "config: %v\n", err)
		return exitUsage
	}
	e := &env{
		cfg:    cfg,
		logger: cfg.Log.NewLogger(stderr),
		stdout: stdout,
		stderr: stderr,
	}
	return cmd(ctx, e, fs.Args()[1:])
}

// openService opens the native library and, when configured, the cache.
// The returned function releases both.
func (e *env) openService(ctx context.Context) (*service.Service, func(), int) {
	lib, err := inchi.Open(inchi.Config{
		Options:    e.cfg.Library.Options,
		ComputeKey: e.cfg.Library.ComputeKey,
		Logger:     logging.New(e.logger),
	})
	if err != nil {
		fmt.Fprintf(e.stderr, "library unavailable: %v\n", err)
		if errors.Is(err, inchi.ErrNotBuilt) {
			return nil, nil, exitUnavailable
		}
		return nil, nil, exitFailure
	}

	opts := []service.Option{service.WithLogger(logging.New(e.logger))}
	var store *cache.Cache
	if e.cfg.Cache.Path != "" {
		store, err = cache.Open(e.cfg.Cache.Path)
		if err == nil {
			err = store.Bind(ctx, lib.Version())
		}
		if err != nil {
			e.logger.Warn("cache disabled", "path", e.cfg.Cache.Path, "error", err)
			if store != nil {
				_ = store.Close()
				store = nil
			}
		} else {
			opts = append(opts, service.WithStore(store))
			e.store = store
		}
	}

	closeFn := func() {
		if store != nil {
			if err := store.Close(); err != nil {
				log.Printf("cache close error: %v", err)
			}
		}
		if err := lib.Close(); err != nil {
			log.Printf("close error: %v", err)
		}
	}
	return service.New(lib, opts...), closeFn, exitOK
}
