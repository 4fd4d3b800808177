package generator

import (
	"go/parser"
	"go/token"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

var data = Output{
	HooksFunctions: []*FunctionLocator{
		{FullPackageName: "example.com/shop/hooks", FunctionName: "Database"},
	},
	StepFunctions: []*StepFunctionLocator{
		{
			StepName: `^I have (-?\d+) apples$`,
			FunctionLocator: &FunctionLocator{
				FullPackageName: "example.com/shop/steps",
				FunctionName:    "HaveApples",
			},
		},
		{
			StepName: `^step 2$`,
			FunctionLocator: &FunctionLocator{
				FullPackageName: "example.com/shop",
				FunctionName:    "Step2",
			},
		},
	},
	CurrentPackagePath: "example.com/shop",
	PackageName:        "shop",
}

func TestOutput_Generate(t *testing.T) {
	t.Run("should generate a test function", func(t *testing.T) {
		builder := &strings.Builder{}
		require.NoError(t, data.Generate(builder))
		generated := builder.String()

		_, err := parser.ParseFile(token.NewFileSet(), OutputFile, generated, parser.ParseComments)
		require.NoError(t, err)

		require.True(t, strings.HasPrefix(generated, "// Code generated by hspec. DO NOT EDIT.\n\npackage shop\n"))
		require.Contains(t, generated, `"example.com/shop/hooks"`)
		require.Contains(t, generated, `"example.com/shop/steps"`)
		require.Contains(t, generated, `"github.com/lehins/hspec/pkg/runner"`)
		require.Contains(t, generated, "func TestHspec(t *testing.T) {")
		require.Contains(t, generated, "allHooks := []*hspec.Hooks{hooks.Database()}")
		require.Contains(t, generated, "err := runner.NewCucumberRunner().")
		require.Contains(t, generated, "WithHooks(allHooks...).")
		require.Contains(t, generated, "RegisterStep(\"^I have (-?\\\\d+) apples$\", steps.HaveApples).")
		require.Contains(t, generated, "RegisterStep(\"^step 2$\", Step2).")
		require.Contains(t, generated, "t.Fatal(err)")
		require.NotContains(t, generated, `"example.com/shop"`)
	})

	t.Run("defaults to package main without hooks", func(t *testing.T) {
		builder := &strings.Builder{}
		output := Output{}
		require.NoError(t, output.Generate(builder))

		require.Contains(t, builder.String(), "package main")
		require.Contains(t, builder.String(), "runner.NewCucumberRunner().")
		require.NotContains(t, builder.String(), "WithHooks")
	})
}

func TestCustomType_RegexPattern(t *testing.T) {
	t.Run("string types match values case-insensitively", func(t *testing.T) {
		ct := &CustomType{Name: "Color", Underlying: "string", Values: map[string]string{
			"Red": "red", "Blue": "blue", "Green": "green",
		}}

		pattern := ct.RegexPattern()
		require.Equal(t, "(?i:blue|green|red)", pattern)

		re := regexp.MustCompile("^" + pattern + "$")
		require.True(t, re.MatchString("RED"))
		require.False(t, re.MatchString("purple"))
	})

	t.Run("numeric types match values exactly", func(t *testing.T) {
		ct := &CustomType{Name: "Priority", Underlying: "int", Values: map[string]string{
			"Low": "1", "Medium": "2", "High": "3", "Urgent": "3",
		}}

		require.Equal(t, "(?:1|2|3)", ct.RegexPattern())
	})

	t.Run("special characters are escaped", func(t *testing.T) {
		ct := &CustomType{Name: "Version", Underlying: "string", Values: map[string]string{"V1": "1.0"}}

		require.Equal(t, `(?i:1\.0)`, ct.RegexPattern())
	})
}

func TestOutput_MergeAndSort(t *testing.T) {
	output := &Output{}
	output.Merge(&Output{
		StepFunctions: []*StepFunctionLocator{
			{StepName: "b", FunctionLocator: &FunctionLocator{FullPackageName: "p2", FunctionName: "B"}},
		},
		CustomTypes: map[string]*CustomType{"color": {Name: "Color"}},
	})
	output.Merge(&Output{
		HooksFunctions: []*FunctionLocator{{FullPackageName: "p1", FunctionName: "Hooks"}},
		StepFunctions: []*StepFunctionLocator{
			{StepName: "a", FunctionLocator: &FunctionLocator{FullPackageName: "p1", FunctionName: "A"}},
		},
	})
	output.Merge(nil)
	output.Sort()

	require.Len(t, output.HooksFunctions, 1)
	require.Equal(t, "a", output.StepFunctions[0].StepName)
	require.Equal(t, "b", output.StepFunctions[1].StepName)
	require.Contains(t, output.CustomTypes, "color")
}
