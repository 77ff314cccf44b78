package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"runtime"

	"github.com/fatih/color"
	"github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"

	"github.com/umputun/trigen/pkg/config"
	"github.com/umputun/trigen/pkg/corpus"
	"github.com/umputun/trigen/pkg/profile"
	"github.com/umputun/trigen/pkg/trigram"
)

// Opts with all CLI options. Empty values fall back to config file, then to defaults.
type Opts struct {
	Config string `short:"c" long:"config" env:"CONFIG" description:"yaml config file"`
	Corpus string `short:"i" long:"corpus" env:"CORPUS" description:"corpus file (default: kyrgyz_corpus.txt)"`
	Output string `short:"o" long:"output" env:"OUTPUT" description:"output file (default: trigrams.txt)"`
	Top    int    `short:"n" long:"top" env:"TOP" description:"number of trigrams to keep (default: 300)"`
	Format string `long:"format" env:"FORMAT" choice:"text" choice:"html" choice:"article" description:"corpus format (default: text)"`
	NFC    bool   `long:"nfc" description:"normalize corpus to unicode NFC"`

	Data   string `long:"data" env:"DATA" description:"profile file (data.json) to update"`
	Script string `long:"script" description:"script key in profile file, detected from corpus if empty"`
	Lang   string `long:"lang" description:"iso 639-3 language code in profile file"`

	// Common options
	Debug   bool `long:"dbg" env:"DEBUG" description:"debug mode"`
	Version bool `short:"V" long:"version" description:"show version info"`
	NoColor bool `long:"no-color" env:"NO_COLOR" description:"disable color output"`
}

var revision = "unknown"

func main() {
	var opts Opts
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if opts.Version {
		fmt.Printf("Version: %s\nGolang: %s\n", revision, runtime.Version())
		os.Exit(0)
	}

	if opts.NoColor {
		color.NoColor = true
	}
	setupLog(opts.Debug)

	log.Printf("[DEBUG] starting trigen version %s", revision)
	if err := run(opts, os.Stdout); err != nil {
		log.Printf("[ERROR] %v", err)
		os.Exit(1)
	}
}

// run builds the trigram profile and prints the report to out.
// Nothing is written if the corpus can't be loaded.
func run(opts Opts, out io.Writer) error {
	cfg, err := makeConfig(opts)
	if err != nil {
		return err
	}

	text, err := corpus.Load(cfg.Corpus.Path, corpus.Options{Format: corpus.Format(cfg.Corpus.Format), NFC: cfg.Corpus.NFC})
	if err != nil {
		return fmt.Errorf("failed to load corpus: %w", err)
	}
	chars := corpus.Chars(text)
	log.Printf("[INFO] loaded corpus %s, %d characters", cfg.Corpus.Path, chars)

	var store *profile.Store
	script := cfg.Profile.Script
	if cfg.Profile.DataPath != "" {
		if store, err = profile.Load(cfg.Profile.DataPath); err != nil {
			return fmt.Errorf("failed to load profile: %w", err)
		}
		if script, err = resolveScript(script, text); err != nil {
			return err
		}
	}

	tbl := trigram.Count(text)
	top := tbl.Top(cfg.Extract.TopN)
	res := trigram.Join(top)
	log.Printf("[DEBUG] %d distinct trigrams, keeping %d", tbl.Len(), len(top))

	if err := os.WriteFile(cfg.Output.Path, []byte(res), 0o644); err != nil { //nolint:gosec // trigrams are public data
		return fmt.Errorf("failed to write trigrams: %w", err)
	}
	log.Printf("[INFO] %d trigrams saved to %s", len(top), cfg.Output.Path)

	rep := report{chars: chars, trigrams: trigram.Split(res), sample: cfg.Output.Sample, output: cfg.Output.Path}

	if store != nil {
		if err := store.Set(script, cfg.Profile.Lang, res); err != nil {
			return fmt.Errorf("failed to update profile: %w", err)
		}
		if err := store.Save(); err != nil {
			return fmt.Errorf("failed to save profile: %w", err)
		}
		rep.profile = fmt.Sprintf("%s [%s/%s]", cfg.Profile.DataPath, script, cfg.Profile.Lang)
		log.Printf("[INFO] profile %s updated", rep.profile)
	}

	rep.print(out)
	return nil
}

// makeConfig loads config file if set and applies non-empty options on top of it
func makeConfig(opts Opts) (*config.Config, error) {
	cfg := config.Default()
	if opts.Config != "" {
		var err error
		if cfg, err = config.Load(opts.Config); err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	}

	if opts.Corpus != "" {
		cfg.Corpus.Path = opts.Corpus
	}
	if opts.Format != "" {
		cfg.Corpus.Format = opts.Format
	}
	if opts.NFC {
		cfg.Corpus.NFC = true
	}
	if opts.Output != "" {
		cfg.Output.Path = opts.Output
	}
	if opts.Top != 0 {
		cfg.Extract.TopN = opts.Top
	}
	if opts.Data != "" {
		cfg.Profile.DataPath = opts.Data
	}
	if opts.Script != "" {
		cfg.Profile.Script = opts.Script
	}
	if opts.Lang != "" {
		cfg.Profile.Lang = opts.Lang
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	return cfg, nil
}

// resolveScript returns script if set, otherwise the script detected from text
func resolveScript(script, text string) (string, error) {
	if script != "" {
		return script, nil
	}
	g := profile.Detect(text)
	if g.Script == "" {
		return "", fmt.Errorf("can't detect script of corpus, set it with --script")
	}
	log.Printf("[INFO] detected %s script, closest known language %q (confidence %.2f)", g.Script, g.Lang, g.Confidence)
	return g.Script, nil
}

func setupLog(dbg bool, secs ...string) {
	logOpts := []lgr.Option{lgr.Out(io.Discard)} // errors still go to stderr
	if dbg {
		logOpts = []lgr.Option{lgr.Debug, lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
	}

	colorizer := lgr.Mapper{
		ErrorFunc:  func(s string) string { return color.New(color.FgHiRed).Sprint(s) },
		WarnFunc:   func(s string) string { return color.New(color.FgRed).Sprint(s) },
		InfoFunc:   func(s string) string { return color.New(color.FgYellow).Sprint(s) },
		DebugFunc:  func(s string) string { return color.New(color.FgWhite).Sprint(s) },
		CallerFunc: func(s string) string { return color.New(color.FgBlue).Sprint(s) },
		TimeFunc:   func(s string) string { return color.New(color.FgCyan).Sprint(s) },
	}
	logOpts = append(logOpts, lgr.Map(colorizer))
	if len(secs) > 0 {
		logOpts = append(logOpts, lgr.Secret(secs...))
	}
	lgr.SetupStdLogger(logOpts...)
	lgr.Setup(logOpts...)
}
