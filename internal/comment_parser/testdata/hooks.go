package testdata

import "github.com/lehins/hspec/pkg/hspec"

// MyHooks returns lifecycle hooks
func MyHooks() *hspec.Hooks {
	return &hspec.Hooks{
		Order: 10,
		BeforeExample: func(hspec.ExampleInfo) {
			// setup
		},
	}
}

// TaggedHooks takes a parameter, so it cannot be called by generated code.
func TaggedHooks(tag string) *hspec.Hooks {
	return &hspec.Hooks{}
}
