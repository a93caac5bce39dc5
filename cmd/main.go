package main

import (
	"log/slog"
	"os"
	"time"

	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"

	"github.com/grahambinns/ancient-history-pokerlib/domain/poker"
)

func main() {
	// Create a new slog handler with the default PTerm logger
	handler := pterm.NewSlogHandler(&pterm.DefaultLogger)
	logger := slog.New(handler)

	cfg, err := LoadConfig()
	if err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	pterm.DefaultBigText.WithLetters(
		putils.LettersFromStringWithStyle("Hold", pterm.FgRed.ToStyle()),
		putils.LettersFromStringWithStyle("em", pterm.FgDarkGray.ToStyle()),
	).Render()

	spinner, _ := pterm.DefaultSpinner.Start("Shuffling and dealing ...")
	start := time.Now()
	d, err := poker.NewDeck(cfg.Shuffles)
	if err != nil {
		spinner.Fail()
		logger.Error("building deck", "error", err)
		os.Exit(1)
	}
	table, err := dealTable(cfg, d)
	if err != nil {
		spinner.Fail()
		logger.Error("dealing", "error", err)
		os.Exit(1)
	}
	elapsed := time.Since(start)
	spinner.Success()
	logger.Info("hand dealt", "players", cfg.Players, "shuffles", cfg.Shuffles, "elapsed", elapsed)

	if err := table.showdown(); err != nil {
		logger.Error("opening hole cards", "error", err)
		os.Exit(1)
	}
	printTable(table, elapsed)
	pterm.Info.Printfln("That took %s", elapsed)
}
