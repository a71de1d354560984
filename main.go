package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/htmlisp/htmlisp/htmlisp"
)

// Colored prefixes for console reporting: green Success, blue Info,
// red Error.
var (
	successLabel = color.New(color.FgGreen, color.Bold).Sprint("Success:")
	infoLabel    = color.New(color.FgHiBlue, color.Bold).Sprint("Info:")
	errorLabel   = color.New(color.FgRed, color.Bold).Sprint("Error:")
)

func reportSuccess(inputFile, outputFile string) {
	fmt.Printf("%s %s -> %s\n", successLabel, inputFile, outputFile)
}

func reportInfo(format string, args ...any) {
	fmt.Printf("%s %s\n", infoLabel, fmt.Sprintf(format, args...))
}

func reportError(err error) {
	fmt.Fprintf(os.Stderr, "%s %v\n", errorLabel, err)
}

// process is the main entry point of the program
func process(c *cli.Context) error {

	var z *zap.Logger
	var err error

	// Setup the logging system
	if c.Bool("debug") {
		z, err = zap.NewDevelopment()
	} else {
		z, err = zap.NewProduction()
	}
	if err != nil {
		panic(err)
	}
	sugar := z.Sugar()
	defer sugar.Sync()

	cfg, err := LoadConfig(c.String("config"))
	if err != nil {
		return err
	}

	// Flags override the config file
	if c.Bool("prettify") {
		cfg.Prettify = true
	}
	cfg.WatchDir = c.String("watch")
	cfg.InputFile = c.Args().First()
	cfg.OutputFile = c.String("output")

	// In watch mode the input and output files are derived per write event
	if cfg.WatchDir != "" {
		return watch(cfg, sugar)
	}

	if cfg.InputFile == "" {
		return fmt.Errorf("no input file provided")
	}
	if cfg.OutputFile == "" {
		cfg.OutputFile = replaceExt(cfg.InputFile, ".html")
	}

	if err := compile(cfg.InputFile, cfg.OutputFile, cfg, sugar); err != nil {
		return err
	}
	reportSuccess(cfg.InputFile, cfg.OutputFile)
	return nil
}

// compile reads one HTMLisp file, parses it and writes the rendered HTML to
// outputFile, creating missing directories in the output path. An existing
// output file is overwritten.
func compile(inputFile, outputFile string, cfg *Config, sugar *zap.SugaredLogger) error {
	start := time.Now()

	src, err := os.ReadFile(inputFile)
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}

	doc, err := htmlisp.Parse(inputFile, src)
	if err != nil {
		return fmt.Errorf("failed to parse input file: %w", err)
	}

	var out string
	if cfg.Prettify {
		out = doc.RenderPrettyWidth(0, cfg.Indent)
	} else {
		out = doc.Render()
	}

	if dir := filepath.Dir(outputFile); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
	}
	if err := os.WriteFile(outputFile, []byte(out), 0664); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	sugar.Debugw("compiled", "input", inputFile, "output", outputFile,
		"bytes", len(out), "elapsed", time.Since(start))
	return nil
}

// replaceExt swaps the extension of name for ext, or appends ext if name
// has none.
func replaceExt(name, ext string) string {
	old := filepath.Ext(name)
	return name[:len(name)-len(old)] + ext
}

func main() {

	app := &cli.App{
		Name:      "htmlisp",
		Version:   "v0.1.0",
		Compiled:  time.Now(),
		Usage:     "compile an HTMLisp document to HTML",
		UsageText: "htmlisp [options] INPUT_FILE",
		Action:    process,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "write html to `FILE` (default is the input file name with extension .html)",
			},
			&cli.BoolFlag{
				Name:    "prettify",
				Aliases: []string{"p"},
				Usage:   "output indented HTML instead of a single compact line",
			},
			&cli.StringFlag{
				Name:    "watch",
				Aliases: []string{"w"},
				Usage:   "watch `DIR` for changes and re-compile written .htmlisp files",
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "read options from `FILE` (default htmlisp.yaml, if present)",
			},
			&cli.BoolFlag{
				Name:    "debug",
				Aliases: []string{"d"},
				Usage:   "run in debug mode",
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		reportError(err)
		os.Exit(1)
	}
}
