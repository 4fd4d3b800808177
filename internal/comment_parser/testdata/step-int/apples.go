package step_int

import (
	"context"
	"errors"
)

// IGetApples
// @hspec `^I have (\d+) apples$`
func IGetApples(ctx context.Context, appleCount int) (context.Context, error) {
	if appleCount > 100 {
		return ctx, errors.New("too many apples")
	}
	return ctx, nil
}
