package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"syscall"

	"github.com/robfig/cron/v3"
	"golang.org/x/sync/errgroup"

	"github.com/chemkit/inchi-go/internal/server"
	"github.com/chemkit/inchi-go/pkg/inchi"
	"github.com/chemkit/inchi-go/pkg/inchi/logging"
	"github.com/chemkit/inchi-go/pkg/molecule"
)

func (e *env) flags(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(e.stderr)
	return fs
}

func runVersion(_ context.Context, e *env, args []string) int {
	if len(args) != 0 {
		fmt.Fprintln(e.stderr, "version takes no arguments")
		return exitUsage
	}
	native := "not built"
	if lib, err := inchi.Open(inchi.Config{Logger: logging.Discard()}); err == nil {
		native = "linked"
		_ = lib.Close()
	}
	fmt.Fprintf(e.stdout, "inchi-go %s\n", inchi.WrapperVersion())
	fmt.Fprintf(e.stdout, "InChI library %s (%s)\n", inchi.LibraryVersion(), native)
	return exitOK
}

func runKey(ctx context.Context, e *env, args []string) int {
	fs := e.flags("key")
	xtra1 := fs.Bool("xtra1", false, "also print the first hash extension")
	xtra2 := fs.Bool("xtra2", false, "also print the second hash extension")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}
	if fs.NArg() == 0 {
		fmt.Fprintln(e.stderr, "key: at least one InChI is required")
		return exitUsage
	}

	svc, closeFn, code := e.openService(ctx)
	if code != exitOK {
		return code
	}
	defer closeFn()

	status := exitOK
	opts := inchi.KeyOptions{Extra1: *xtra1, Extra2: *xtra2}
	for _, s := range fs.Args() {
		k, err := svc.Key(ctx, s, opts)
		if err != nil {
			fmt.Fprintf(e.stderr, "%s: %v\n", s, err)
			status = exitFailure
			continue
		}
		fields := []string{k.Key}
		if opts.Extra1 {
			fields = append(fields, k.Extra1)
		}
		if opts.Extra2 {
			fields = append(fields, k.Extra2)
		}
		fmt.Fprintln(e.stdout, strings.Join(fields, "\t"))
	}
	return status
}

// conversion is one row of convert output.
type conversion struct {
	File     string   `json:"file"`
	Formula  string   `json:"formula,omitempty"`
	InChI    string   `json:"inchi,omitempty"`
	Key      string   `json:"key,omitempty"`
	Warnings []string `json:"warnings,omitempty"`
	Error    string   `json:"error,omitempty"`
}

func runConvert(ctx context.Context, e *env, args []string) int {
	fs := e.flags("convert")
	options := fs.String("options", "", "InChI options, e.g. \"FixedH RecMet\"")
	format := fs.String("format", "table", "output format: table or json")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}
	if fs.NArg() == 0 {
		fmt.Fprintln(e.stderr, "convert: at least one file is required")
		return exitUsage
	}
	if *format != "table" && *format != "json" {
		fmt.Fprintf(e.stderr, "convert: unknown format %q\n", *format)
		return exitUsage
	}

	files := fs.Args()
	mols := make([]*molecule.Molecule, len(files))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, path := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			m, err := readMolecule(path)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			mols[i] = m
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		fmt.Fprintf(e.stderr, "convert: %v\n", err)
		return exitFailure
	}

	svc, closeFn, code := e.openService(ctx)
	if code != exitOK {
		return code
	}
	defer closeFn()

	status := exitOK
	rows := make([]conversion, len(files))
	for i, m := range mols {
		rows[i] = conversion{File: files[i], Formula: m.Formula()}
		res, err := svc.Generate(ctx, m, *options)
		if err != nil {
			rows[i].Error = err.Error()
			status = exitFailure
			continue
		}
		rows[i].InChI = res.InChI
		rows[i].Key = res.Key
		rows[i].Warnings = res.Warnings
	}

	if *format == "json" {
		enc := json.NewEncoder(e.stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(rows); err != nil {
			fmt.Fprintf(e.stderr, "convert: %v\n", err)
			return exitFailure
		}
		return status
	}
	fmt.Fprintln(e.stdout, renderTable(rows))
	return status
}

func readMolecule(path string) (*molecule.Molecule, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return molecule.Decode(f)
}

func runParse(ctx context.Context, e *env, args []string) int {
	fs := e.flags("parse")
	options := fs.String("options", "", "InChI options")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(e.stderr, "parse: exactly one InChI is required")
		return exitUsage
	}

	svc, closeFn, code := e.openService(ctx)
	if code != exitOK {
		return code
	}
	defer closeFn()

	mol, err := svc.Parse(ctx, fs.Arg(0), *options)
	if err != nil {
		fmt.Fprintf(e.stderr, "parse: %v\n", err)
		return exitFailure
	}
	if err := mol.Encode(e.stdout); err != nil {
		fmt.Fprintf(e.stderr, "parse: %v\n", err)
		return exitFailure
	}
	return exitOK
}

func runServe(ctx context.Context, e *env, args []string) int {
	if len(args) != 0 {
		fmt.Fprintln(e.stderr, "serve takes no arguments")
		return exitUsage
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	svc, closeFn, code := e.openService(ctx)
	if code != exitOK {
		return code
	}
	defer closeFn()

	if e.store != nil && e.cfg.Cache.Vacuum != "" {
		c := cron.New()
		_, err := c.AddFunc(e.cfg.Cache.Vacuum, func() {
			if err := e.store.Vacuum(ctx); err != nil {
				e.logger.Warn("cache vacuum failed", "error", err)
			}
		})
		if err != nil {
			fmt.Fprintf(e.stderr, "serve: cache.vacuum: %v\n", err)
			return exitUsage
		}
		c.Start()
		defer func() { <-c.Stop().Done() }()
	}

	srv := server.New(svc, logging.New(e.logger))
	if err := srv.ListenAndServe(ctx, e.cfg.Server.Addr); err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintf(e.stderr, "serve: %v\n", err)
		return exitFailure
	}
	return exitOK
}
