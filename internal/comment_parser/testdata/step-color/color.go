package step_color

import (
	"github.com/lehins/hspec/pkg/hspec"
)

// Color represents a color choice
type Color string

const (
	Red   Color = "red"
	Blue  Color = "blue"
	Green Color = "green"
)

// SelectColor selects a color
// @hspec `^I select {color}$`
func SelectColor(ctx *hspec.Context, c Color) {
	ctx.Logger().Info("color selected", "color", c)
}

// ColorIs checks if the color matches
// @hspec `^the color is {color}$`
func ColorIs(ctx *hspec.Context, c Color) {
	ctx.Logger().Info("color is", "color", c)
}
