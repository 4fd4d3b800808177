//go:generate mockgen -source=interfaces.go -destination=interface_mock.go -package=app
package app

import (
	"context"

	"github.com/lehins/hspec/internal/generator"
)

type (
	GoCodeParser interface {
		ParseFunctionCommentsOfGoFilesInDirectoryRecursively(context.Context, string) (*generator.Output, error)
	}
)
