package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/mattn/go-isatty"

	"github.com/tovalang/tova/internal/config"
	"github.com/tovalang/tova/internal/diagnostics"
	"github.com/tovalang/tova/internal/lexer"
	"github.com/tovalang/tova/internal/parser"
	"github.com/tovalang/tova/internal/pipeline"
	"github.com/tovalang/tova/internal/prettyprinter"
)

const (
	colorRed   = "\x1b[31m"
	colorBold  = "\x1b[1m"
	colorReset = "\x1b[0m"
)

type options struct {
	dumpAST  bool
	useColor bool
}

func main() {
	configPath := flag.String("config", "tova.yaml", "path to the tool configuration file")
	dumpAST := flag.Bool("dump-ast", false, "print the AST after parsing")
	watch := flag.Bool("watch", false, "re-run whenever the source file changes")
	noColor := flag.Bool("no-color", false, "disable colored diagnostics")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: tova [flags] <file.tova>")
		flag.PrintDefaults()
		os.Exit(2)
	}
	srcPath := flag.Arg(0)

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	opts := options{
		dumpAST:  *dumpAST || cfg.DumpAST,
		useColor: colorEnabled(cfg.Color, *noColor),
	}

	if *watch {
		if err := watchFile(srcPath, cfg, opts); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
		return
	}

	if !runFile(srcPath, cfg, opts) {
		os.Exit(1)
	}
}

func loadConfig(path string) (*config.Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return config.Default(), nil
	}
	return config.Load(path)
}

// colorEnabled resolves the configured color mode against the --no-color flag
// and, in auto mode, whether stderr is a terminal.
func colorEnabled(mode string, noColor bool) bool {
	if noColor || mode == "never" {
		return false
	}
	if mode == "always" {
		return true
	}
	fd := os.Stderr.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// runFile lexes and parses one source file, reporting diagnostics to stderr.
// It returns true when the file parsed cleanly.
func runFile(path string, cfg *config.Config, opts options) bool {
	source, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "tova: %v\n", err)
		return false
	}

	pipe := pipeline.New(
		&lexer.LexerProcessor{},
		&parser.ParserProcessor{},
	)
	ctx := pipe.Run(pipeline.NewContext(path, string(source)))

	reportErrors(ctx.Errors, cfg.MaxErrors, opts.useColor)

	if opts.dumpAST && ctx.AstRoot != nil {
		fmt.Print(prettyprinter.NewTreePrinter().Print(ctx.AstRoot))
	}

	return len(ctx.Errors) == 0
}

func reportErrors(errs []*diagnostics.DiagnosticError, maxErrors int, useColor bool) {
	shown := len(errs)
	if shown > maxErrors {
		shown = maxErrors
	}
	for _, err := range errs[:shown] {
		if useColor {
			fmt.Fprintf(os.Stderr, "%s%serror%s %s\n", colorBold, colorRed, colorReset, err.Error())
		} else {
			fmt.Fprintf(os.Stderr, "error %s\n", err.Error())
		}
	}
	if len(errs) > shown {
		fmt.Fprintf(os.Stderr, "... and %d more errors\n", len(errs)-shown)
	}
}

// watchFile re-runs the pipeline every time the source file is written.
// Watching the parent directory instead of the file itself keeps the watch
// alive across editors that replace the file on save.
func watchFile(path string, cfg *config.Config, opts options) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("tova: starting watcher: %w", err)
	}
	defer watcher.Close()

	dir := filepath.Dir(path)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("tova: watching %s: %w", dir, err)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("tova: %w", err)
	}

	runFile(path, cfg, opts)
	fmt.Fprintf(os.Stderr, "watching %s\n", path)

	for {
		select {
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			evAbs, err := filepath.Abs(ev.Name)
			if err != nil || evAbs != abs {
				continue
			}
			fmt.Fprintf(os.Stderr, "--- %s changed\n", path)
			runFile(path, cfg, opts)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(os.Stderr, "tova: watch error: %v\n", err)
		}
	}
}
