// Package main is the interactive tool rental console used at the counter.
// It walks the clerk through the four checkout prompts and prints the
// finalized rental agreement.
package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/aoideee/toolrenter/internal/data"
)

func main() {
	_ = godotenv.Load()

	var (
		catalogPath string
		clearPages  bool
	)
	flag.StringVar(&catalogPath, "catalog", os.Getenv("TOOLRENTER_CATALOG"), "Tools CSV file (default: embedded catalog)")
	flag.BoolVar(&clearPages, "clear", true, "Clear the screen between pages")
	flag.Parse()

	// Stdout belongs to the console pages.
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	catalog := data.DefaultCatalog()
	if catalogPath != "" {
		var err error
		catalog, err = data.LoadCatalogFile(catalogPath)
		if err != nil {
			logger.Error("loading tool catalog", "path", catalogPath, "error", err)
			os.Exit(1)
		}
	}

	c := newConsole(catalog, os.Stdin, os.Stdout, logger)
	c.clearPages = clearPages
	c.run()
}
