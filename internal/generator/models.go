package generator

import (
	"io"
	"regexp"
	"sort"
	"strings"

	"github.com/dave/jennifer/jen"
)

const (
	hspecPackage  = "github.com/lehins/hspec/pkg/hspec"
	runnerPackage = "github.com/lehins/hspec/pkg/runner"

	// OutputFile is the name of the generated test file.
	OutputFile = "hspec_test.go"
)

type (
	FunctionLocator struct {
		FullPackageName string
		FunctionName    string
	}

	StepFunctionLocator struct {
		StepName string
		*FunctionLocator
	}

	// CustomType represents a user-defined type like `type Color string`
	// with its associated constant values
	CustomType struct {
		Name        string            // Type name, e.g., "Color"
		PackagePath string            // Full package path
		Underlying  string            // Underlying primitive type: "string", "int", "float64", etc.
		Values      map[string]string // Constant name -> value, e.g., {"Red": "red", "Blue": "blue"}
	}

	Output struct {
		HooksFunctions     []*FunctionLocator // Functions returning *hspec.Hooks
		StepFunctions      []*StepFunctionLocator
		CustomTypes        map[string]*CustomType // lowercase type name -> CustomType
		CurrentPackagePath string                 // Full import path of the package where the test file is generated
		PackageName        string                 // Short package name (e.g., "myapp"); if empty, defaults to "main"
	}
)

// ValuesList returns a sorted list of all constant values for this custom type
func (ct *CustomType) ValuesList() []string {
	values := make([]string, 0, len(ct.Values))
	for _, v := range ct.Values {
		values = append(values, v)
	}
	sort.Strings(values)
	return values
}

// RegexPattern returns an alternation of the constant values. Values are
// what a step function receives, so only they are matched; string types
// match case-insensitively.
func (ct *CustomType) RegexPattern() string {
	seen := make(map[string]bool)
	parts := make([]string, 0, len(ct.Values))
	for _, value := range ct.ValuesList() {
		if seen[value] {
			continue
		}
		seen[value] = true
		parts = append(parts, regexp.QuoteMeta(value))
	}

	alternation := strings.Join(parts, "|")
	if ct.Underlying == "string" {
		return "(?i:" + alternation + ")"
	}
	return "(?:" + alternation + ")"
}

// Merge appends the functions and custom types found in other.
func (o *Output) Merge(other *Output) {
	if other == nil {
		return
	}
	o.HooksFunctions = append(o.HooksFunctions, other.HooksFunctions...)
	o.StepFunctions = append(o.StepFunctions, other.StepFunctions...)
	if len(other.CustomTypes) > 0 && o.CustomTypes == nil {
		o.CustomTypes = make(map[string]*CustomType)
	}
	for k, v := range other.CustomTypes {
		o.CustomTypes[k] = v
	}
}

// Sort orders hooks and steps by package then function name so the
// generated file does not depend on directory walk order.
func (o *Output) Sort() {
	sort.SliceStable(o.HooksFunctions, func(i, j int) bool {
		return lessLocator(o.HooksFunctions[i], o.HooksFunctions[j])
	})
	sort.SliceStable(o.StepFunctions, func(i, j int) bool {
		return lessLocator(o.StepFunctions[i].FunctionLocator, o.StepFunctions[j].FunctionLocator)
	})
}

func lessLocator(a, b *FunctionLocator) bool {
	if a.FullPackageName != b.FullPackageName {
		return a.FullPackageName < b.FullPackageName
	}
	return a.FunctionName < b.FunctionName
}

// isSamePackage returns true when the function is in the same package as the
// generated test file and therefore should be called without an import qualifier.
func (o *Output) isSamePackage(fullPkg string) bool {
	return o.CurrentPackagePath != "" && fullPkg == o.CurrentPackagePath
}

// qualOrLocal returns a jen.Statement that either qualifies the function call with
// its package path (for external packages) or calls it directly (for same-package).
func (o *Output) qualOrLocal(fullPkg, funcName string) *jen.Statement {
	if o.isSamePackage(fullPkg) {
		return jen.Id(funcName)
	}
	return jen.Qual(fullPkg, funcName)
}

// Generate writes a test file with a single TestHspec function that
// registers every step and hooks function and runs the feature files.
func (o *Output) Generate(writer io.Writer) error {
	pkgName := o.PackageName
	if pkgName == "" {
		pkgName = "main"
	}
	file := jen.NewFile(pkgName)
	file.HeaderComment("Code generated by hspec. DO NOT EDIT.")

	var statements []jen.Code

	// allHooks := []*hspec.Hooks{...}
	if len(o.HooksFunctions) > 0 {
		hooksCalls := make([]jen.Code, 0, len(o.HooksFunctions))
		for _, hf := range o.HooksFunctions {
			hooksCalls = append(hooksCalls, o.qualOrLocal(hf.FullPackageName, hf.FunctionName).Call())
		}
		statements = append(statements,
			jen.Id("allHooks").Op(":=").Index().Op("*").Qual(hspecPackage, "Hooks").Values(hooksCalls...),
		)
	}

	runnerChain := jen.Id("err").Op(":=").Qual(runnerPackage, "NewCucumberRunner").Call().Id(".").Line()

	if len(o.HooksFunctions) > 0 {
		runnerChain.Id("WithHooks").Call(jen.Id("allHooks").Op("...")).Id(".").Line()
	}

	for _, function := range o.StepFunctions {
		runnerChain.Id("RegisterStep").Call(jen.Lit(function.StepName), o.qualOrLocal(function.FullPackageName, function.FunctionName)).Id(".").Line()
	}

	runnerChain.Id("Run").Call()

	statements = append(statements,
		runnerChain,
		jen.If(jen.Id("err").Op("!=").Nil()).Block(
			jen.Id("t").Dot("Fatal").Call(jen.Id("err")),
		),
	)

	file.Func().Id("TestHspec").Params(
		jen.Id("t").Op("*").Qual("testing", "T"),
	).Block(statements...)

	return file.Render(writer)
}
