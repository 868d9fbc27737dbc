// DustCook — a caravan cooking optimizer.
//
// Usage:
//
//	dustcook [-verbose] [-quiet] [-data FILE] [-skill N]
package main

import (
	"context"
	"flag"
	"fmt"
	stdlog "log"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"github.com/hammamikhairi/dustcook/internal/catalog"
	"github.com/hammamikhairi/dustcook/internal/conversation"
	"github.com/hammamikhairi/dustcook/internal/display"
	"github.com/hammamikhairi/dustcook/internal/engine"
	"github.com/hammamikhairi/dustcook/internal/inventory"
	"github.com/hammamikhairi/dustcook/internal/logger"
	"github.com/hammamikhairi/dustcook/internal/rules"
	"github.com/hammamikhairi/dustcook/internal/solver"
	"github.com/hammamikhairi/dustcook/internal/statscache"
)

func main() {
	_ = godotenv.Load()

	verbose := flag.Bool("verbose", false, "enable verbose/debug logging")
	quiet := flag.Bool("quiet", false, "disable all logging")
	logFile := flag.String("log-file", ".dustcook/dustcook.log", "file to write logs to (use \"stderr\" to log to console)")
	dataFile := flag.String("data", envOr("DUSTCOOK_DATA", "data/ingredients.json"), "ingredient catalog file")
	recipeFile := flag.String("recipes", envOr("DUSTCOOK_RECIPES", ""), "recipe rules file (empty = built-in rules)")
	stateFile := flag.String("state", envOr("DUSTCOOK_STATE", ".dustcook/state.json"), "inventory state file")
	cacheDir := flag.String("cache-dir", envOr("DUSTCOOK_CACHE_DIR", ".dustcook/cache"), "directory for the persistent cookjob cache")
	diskCache := flag.Bool("disk-cache", true, "persist enumeration results to disk")
	skill := flag.Int("skill", 0, "cooking skill level, weights reports by dish quality odds")
	permutations := flag.Bool("permutations", false, "treat slot orderings of the same ingredients as distinct dishes")
	penalty := flag.Bool("penalty", false, "apply the stacked-category stress/sell penalty to totals")
	flag.Parse()

	// Configure logger.
	logLevel := logger.LevelNormal
	if *verbose {
		logLevel = logger.LevelVerbose
	}
	if *quiet {
		logLevel = logger.LevelOff
	}

	// Direct logs to a file by default so the REPL stays clean.
	logOut, closeLog := logger.Open(*logFile)
	defer closeLog()

	// Redirect Go's default log package to the same output so third-party
	// libs can't spam the terminal.
	stdlog.SetOutput(logOut)
	stdlog.SetFlags(stdlog.Ltime)

	log := logger.New(logLevel, logOut)

	// Set up context — cancelled when the UI quits.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Wire dependencies.
	cat, err := catalog.LoadFile(*dataFile, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: loading catalog %s: %v\n", *dataFile, err)
		os.Exit(1)
	}

	var ruleSrc *rules.Source
	if *recipeFile != "" {
		ruleSrc, err = rules.LoadFile(*recipeFile, log)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: loading recipes %s: %v\n", *recipeFile, err)
			os.Exit(1)
		}
	} else {
		ruleSrc = rules.Builtin(log)
	}

	dir := *cacheDir
	if !*diskCache {
		dir = ""
	}
	jobCache := statscache.New(dir, cat.OrderHash(), log)

	engOpts := []engine.Option{engine.WithCache(jobCache)}
	if *permutations {
		engOpts = append(engOpts, engine.WithSlotPermutations(true))
	}
	if *penalty {
		engOpts = append(engOpts, engine.WithCategoryPenalty(true))
	}
	eng := engine.New(cat, ruleSrc, log, engOpts...)

	if sd := filepath.Dir(*stateFile); sd != "" && sd != "." {
		os.MkdirAll(sd, 0o755)
	}
	book, err := inventory.New(cat, *stateFile, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	app := &cliApp{
		cat:    cat,
		book:   book,
		engine: eng,
		solver: solver.New(cat, cat, log),
		parser: conversation.NewParser(log),
		log:    log,
		skill:  *skill,
	}

	ui := display.NewUI(app)
	app.ui = ui
	app.notifier = conversation.NewCLINotifier(log, ui.Printf)

	log.Info("catalog: %d ingredients (%d unsolved), %d recipes",
		cat.Len(), len(cat.Unsolved(0)), len(ruleSrc.All()))

	fmt.Println(display.RenderBanner())
	fmt.Println(display.BannerStyle.Render("  Type 'help' for commands, 'quit' to exit."))
	fmt.Println()

	// Run app logic in a background goroutine.
	go func() {
		ui.WaitReady()
		app.run(ctx)
		ui.Quit()
	}()

	// Bubble Tea owns the terminal — blocks until quit.
	if err := ui.Run(); err != nil {
		log.Error("display: %v", err)
	}
	cancel()
}

// envOr returns the env var's value, or def when unset/empty.
func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
