package app

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/lehins/hspec/internal/generator"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// moduleDir creates a temporary module and makes it the working directory.
func moduleDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "go.mod"), []byte("module example.com/shop\n\ngo 1.25\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "shop.go"), []byte("package shop\n"), 0o644))
	t.Chdir(dir)

	// Resolve symlinks so the path matches os.Getwd.
	wd, err := os.Getwd()
	require.NoError(t, err)
	return wd
}

func TestStartApplication(t *testing.T) {
	t.Run("should call code parser with the working directory", func(t *testing.T) {
		dir := moduleDir(t)
		controller := gomock.NewController(t)
		mockGoCodeParser := NewMockGoCodeParser(controller)

		mockGoCodeParser.
			EXPECT().
			ParseFunctionCommentsOfGoFilesInDirectoryRecursively(gomock.Any(), dir).
			Return(&generator.Output{}, nil).
			Times(1)

		require.NoError(t, StartApplication(context.Background(), nil, mockGoCodeParser, discardLogger))

		generated, err := os.ReadFile(filepath.Join(dir, generator.OutputFile))
		require.NoError(t, err)
		require.Contains(t, string(generated), "package shop")
		require.Contains(t, string(generated), "func TestHspec(t *testing.T)")
	})

	t.Run("should get directories from flags", func(t *testing.T) {
		dir := moduleDir(t)
		controller := gomock.NewController(t)
		mockGoCodeParser := NewMockGoCodeParser(controller)

		gomock.InOrder(
			mockGoCodeParser.
				EXPECT().
				ParseFunctionCommentsOfGoFilesInDirectoryRecursively(gomock.Any(), "./steps").
				Return(&generator.Output{
					StepFunctions: []*generator.StepFunctionLocator{{
						StepName:        "^I pay$",
						FunctionLocator: &generator.FunctionLocator{FullPackageName: "example.com/shop/steps", FunctionName: "Pay"},
					}},
				}, nil),
			mockGoCodeParser.
				EXPECT().
				ParseFunctionCommentsOfGoFilesInDirectoryRecursively(gomock.Any(), "./hooks").
				Return(&generator.Output{
					HooksFunctions: []*generator.FunctionLocator{{FullPackageName: "example.com/shop", FunctionName: "Hooks"}},
				}, nil),
		)

		err := StartApplication(context.Background(), []string{"--code", "./steps, ./hooks,"}, mockGoCodeParser, discardLogger)
		require.NoError(t, err)

		generated, err := os.ReadFile(filepath.Join(dir, generator.OutputFile))
		require.NoError(t, err)
		require.Contains(t, string(generated), `RegisterStep("^I pay$", steps.Pay)`)
		require.Contains(t, string(generated), "[]*hspec.Hooks{Hooks()}")
	})

	t.Run("should write to the out directory", func(t *testing.T) {
		dir := moduleDir(t)
		outDir := filepath.Join(dir, "acceptance-tests")
		require.NoError(t, os.Mkdir(outDir, 0o755))

		controller := gomock.NewController(t)
		mockGoCodeParser := NewMockGoCodeParser(controller)
		mockGoCodeParser.
			EXPECT().
			ParseFunctionCommentsOfGoFilesInDirectoryRecursively(gomock.Any(), gomock.Any()).
			Return(&generator.Output{}, nil)

		require.NoError(t, StartApplication(context.Background(), []string{"--out", outDir}, mockGoCodeParser, discardLogger))

		generated, err := os.ReadFile(filepath.Join(outDir, generator.OutputFile))
		require.NoError(t, err)
		require.Contains(t, string(generated), "package acceptance_tests")
	})

	t.Run("should return parser errors", func(t *testing.T) {
		dir := moduleDir(t)
		controller := gomock.NewController(t)
		mockGoCodeParser := NewMockGoCodeParser(controller)

		parseErr := errors.New("unknown parameter type {weather}")
		mockGoCodeParser.
			EXPECT().
			ParseFunctionCommentsOfGoFilesInDirectoryRecursively(gomock.Any(), dir).
			Return(nil, parseErr)

		err := StartApplication(context.Background(), nil, mockGoCodeParser, discardLogger)
		require.ErrorIs(t, err, parseErr)
		require.NoFileExists(t, filepath.Join(dir, generator.OutputFile))
	})

	t.Run("should reject unknown flags", func(t *testing.T) {
		moduleDir(t)
		controller := gomock.NewController(t)
		mockGoCodeParser := NewMockGoCodeParser(controller)

		err := StartApplication(context.Background(), []string{"--parallel", "4"}, mockGoCodeParser, discardLogger)
		require.ErrorContains(t, err, "flag provided but not defined")
	})
}
