package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"os"

	"github.com/lehins/hspec/internal/app"
	"github.com/lehins/hspec/internal/comment_parser"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	err := app.StartApplication(context.Background(), os.Args[1:], comment_parser.NewGoSourceFileParser(), logger)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		logger.Error("generation failed", "error", err)
		os.Exit(1)
	}
}
