package invalid

import "github.com/lehins/hspec/pkg/hspec"

// Weather uses a parameter type nobody declared
// @hspec `^it is {weather} today$`
func Weather(ctx *hspec.Context, weather string) {
	ctx.Logger().Info("weather", "weather", weather)
}
