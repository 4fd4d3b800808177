package step_builtin

import (
	"github.com/lehins/hspec/pkg/hspec"
)

// HaveApples uses built-in {int} type
// @hspec `^I have {int} apples$`
func HaveApples(ctx *hspec.Context, count int) {
	ctx.Logger().Info("I have apples", "count", count)
}

// PriceIs uses built-in {float} type
// @hspec `^the price is {float}$`
func PriceIs(ctx *hspec.Context, price float64) {
	ctx.Logger().Info("price is", "price", price)
}

// NameIs uses built-in {word} type
// @hspec `^my name is {word}$`
func NameIs(ctx *hspec.Context, name string) {
	ctx.Logger().Info("my name is", "name", name)
}

// Say uses built-in {string} type (quoted string)
// @hspec `^I say {string}$`
func Say(ctx *hspec.Context, message string) {
	ctx.Logger().Info("I say", "message", message)
}

// SeeAnything uses built-in {any} type
// @hspec `^I see {any}$`
func SeeAnything(ctx *hspec.Context, thing string) {
	ctx.Logger().Info("I see", "thing", thing)
}
