package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/lehins/hspec/internal/generator"
)

const (
	Separator = ","
)

// StartApplication scans the --code directories (the working directory by
// default) for step and hooks functions and writes a test file running them
// into the --out directory.
func StartApplication(ctx context.Context, args []string, codeParser GoCodeParser, logger *slog.Logger) (err error) {
	flags := flag.NewFlagSet("hspec", flag.ContinueOnError)
	codeFlag := flags.String("code", "", "directories to search for functions separated by comma")
	outFlag := flags.String("out", "", "directory to write "+generator.OutputFile+" to (default: working directory)")
	if err := flags.Parse(args); err != nil {
		return err
	}

	workDir, err := os.Getwd()
	if err != nil {
		return err
	}

	funcSources := splitSources(*codeFlag)
	if len(funcSources) == 0 {
		funcSources = append(funcSources, workDir)
	}

	outDir := strings.TrimSpace(*outFlag)
	if outDir == "" {
		outDir = workDir
	}

	output := &generator.Output{}
	for _, source := range funcSources {
		parsed, err := codeParser.ParseFunctionCommentsOfGoFilesInDirectoryRecursively(ctx, source)
		if err != nil {
			return fmt.Errorf("failed to parse %s: %w", source, err)
		}
		output.Merge(parsed)
	}
	output.Sort()

	output.PackageName, output.CurrentPackagePath, err = generator.DetectPackage(outDir)
	if err != nil {
		return err
	}

	path := filepath.Join(outDir, generator.OutputFile)
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, file.Close())
	}()

	if err := output.Generate(file); err != nil {
		return fmt.Errorf("failed to generate %s: %w", path, err)
	}

	logger.Info("generated test file",
		"file", path,
		"steps", len(output.StepFunctions),
		"hooks", len(output.HooksFunctions),
	)

	return nil
}

func splitSources(value string) []string {
	sources := make([]string, 0)
	for _, source := range strings.Split(value, Separator) {
		if source = strings.TrimSpace(source); source != "" {
			sources = append(sources, source)
		}
	}
	return sources
}
