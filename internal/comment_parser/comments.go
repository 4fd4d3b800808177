package comment_parser

import (
	"context"
	"fmt"
	"go/ast"
	"go/constant"
	"go/parser"
	"go/token"
	"go/types"
	"io/fs"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/lehins/hspec/internal/generator"
)

// StepPrefix starts the doc comment line holding a step pattern:
//
//	// @hspec `^I have {int} apples$`
const StepPrefix = "@hspec"

type GoSourceFileParser struct {
}

func NewGoSourceFileParser() *GoSourceFileParser {
	return &GoSourceFileParser{}
}

// sourceFile is a parsed Go file together with the import path of its package.
type sourceFile struct {
	node       *ast.File
	importPath string
}

func (g *GoSourceFileParser) ParseFunctionCommentsOfGoFilesInDirectoryRecursively(ctx context.Context, parentDirectory string) (
	*generator.Output, error) {
	files, err := parseSourceFiles(ctx, parentDirectory)
	if err != nil {
		return nil, err
	}

	output := &generator.Output{
		StepFunctions: make([]*generator.StepFunctionLocator, 0),
		CustomTypes:   make(map[string]*generator.CustomType),
	}

	// First pass: collect all custom types and their constants
	for _, file := range files {
		parseCustomTypes(file.node, file.importPath, output.CustomTypes)
	}

	// Second pass: parse constants for the custom types we found
	for _, file := range files {
		parseConstants(file.node, output.CustomTypes)
	}

	// Third pass: parse functions and transform step patterns
	for _, file := range files {
		for _, dec := range file.node.Decls {
			decl, ok := dec.(*ast.FuncDecl)
			if !ok || decl.Recv != nil {
				continue
			}

			locator := &generator.FunctionLocator{
				FullPackageName: file.importPath,
				FunctionName:    decl.Name.Name,
			}

			step, isStepFunction := IsStepFunction(decl)
			switch {
			case IsHooksFunction(decl):
				output.HooksFunctions = append(output.HooksFunctions, locator)
			case isStepFunction:
				// Transform {param} syntax to regex
				transformedStep, err := transformStepPattern(*step, output.CustomTypes)
				if err != nil {
					return nil, fmt.Errorf("error in function %s: %w", decl.Name.Name, err)
				}

				output.StepFunctions = append(output.StepFunctions, &generator.StepFunctionLocator{
					StepName:        transformedStep,
					FunctionLocator: locator,
				})
			}
		}
	}

	output.Sort()

	return output, nil
}

// parseSourceFiles parses every non-test Go file below root. Import paths
// are resolved once per directory from the nearest go.mod.
func parseSourceFiles(ctx context.Context, root string) ([]sourceFile, error) {
	fset := token.NewFileSet()
	importPaths := make(map[string]string)
	files := make([]sourceFile, 0)

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if d.IsDir() || !isSourceFile(d.Name()) {
			return nil
		}

		dir := filepath.Dir(path)
		importPath, ok := importPaths[dir]
		if !ok {
			importPath, err = generator.ImportPath(dir)
			if err != nil {
				return err
			}
			importPaths[dir] = importPath
		}

		node, err := parser.ParseFile(fset, path, nil, parser.ParseComments)
		if err != nil {
			return err
		}
		files = append(files, sourceFile{node: node, importPath: importPath})

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse go files in %s: %w", root, err)
	}

	return files, nil
}

func isSourceFile(name string) bool {
	return strings.HasSuffix(name, ".go") && !strings.HasSuffix(name, "_test.go")
}

// parseCustomTypes records declarations like `type Color string` whose
// underlying type is a primitive a step argument can be converted to.
func parseCustomTypes(file *ast.File, packagePath string, customTypes map[string]*generator.CustomType) {
	for _, decl := range file.Decls {
		genDecl, ok := decl.(*ast.GenDecl)
		if !ok || genDecl.Tok != token.TYPE {
			continue
		}

		for _, spec := range genDecl.Specs {
			typeSpec, ok := spec.(*ast.TypeSpec)
			if !ok || typeSpec.Assign.IsValid() {
				continue
			}
			underlying, ok := typeSpec.Type.(*ast.Ident)
			if !ok || !isPrimitive(underlying.Name) {
				continue
			}

			customTypes[strings.ToLower(typeSpec.Name.Name)] = &generator.CustomType{
				Name:        typeSpec.Name.Name,
				PackagePath: packagePath,
				Underlying:  underlying.Name,
				Values:      make(map[string]string),
			}
		}
	}
}

func isPrimitive(name string) bool {
	switch name {
	case "string", "bool", "float32", "float64":
		return true
	}
	return isIntType(name)
}

func isIntType(name string) bool {
	switch name {
	case "int", "int8", "int16", "int32", "int64",
		"uint", "uint8", "uint16", "uint32", "uint64":
		return true
	}
	return false
}

// parseConstants records the values of constants declared with a custom
// type. A spec without type and values repeats the previous ones, with iota
// set to the spec index, as in Go itself.
func parseConstants(file *ast.File, customTypes map[string]*generator.CustomType) {
	for _, decl := range file.Decls {
		genDecl, ok := decl.(*ast.GenDecl)
		if !ok || genDecl.Tok != token.CONST {
			continue
		}

		var typeName string
		var values []ast.Expr
		for index, spec := range genDecl.Specs {
			valueSpec, ok := spec.(*ast.ValueSpec)
			if !ok {
				continue
			}
			if valueSpec.Type != nil || len(valueSpec.Values) > 0 {
				typeName = ""
				if ident, ok := valueSpec.Type.(*ast.Ident); ok {
					typeName = ident.Name
				}
				values = valueSpec.Values
			}

			ct, ok := customTypes[strings.ToLower(typeName)]
			if !ok {
				continue
			}
			for i, name := range valueSpec.Names {
				if i >= len(values) || name.Name == "_" {
					continue
				}
				if value, ok := formatConst(evalConst(values[i], int64(index)), ct.Underlying); ok {
					ct.Values[name.Name] = value
				}
			}
		}
	}
}

// formatConst renders v the way a step argument of the given underlying
// type is written in a feature file.
func formatConst(v constant.Value, underlying string) (string, bool) {
	switch v.Kind() {
	case constant.String:
		return constant.StringVal(v), true
	case constant.Bool:
		return strconv.FormatBool(constant.BoolVal(v)), true
	case constant.Int, constant.Float:
		if isIntType(underlying) {
			v = constant.ToInt(v)
			if v.Kind() != constant.Int {
				return "", false
			}
			return v.ExactString(), true
		}
		f, _ := constant.Float64Val(v)
		return strconv.FormatFloat(f, 'g', -1, 64), true
	default:
		return "", false
	}
}

// evalConst evaluates literal constant expressions. Anything referring to
// other identifiers evaluates to an unknown value.
func evalConst(expr ast.Expr, iota int64) constant.Value {
	switch e := expr.(type) {
	case *ast.BasicLit:
		return constant.MakeFromLiteral(e.Value, e.Kind, 0)
	case *ast.Ident:
		switch e.Name {
		case "iota":
			return constant.MakeInt64(iota)
		case "true", "false":
			return constant.MakeBool(e.Name == "true")
		}
	case *ast.ParenExpr:
		return evalConst(e.X, iota)
	case *ast.UnaryExpr:
		x := evalConst(e.X, iota)
		switch {
		case (e.Op == token.SUB || e.Op == token.ADD) && isNumeric(x),
			e.Op == token.XOR && x.Kind() == constant.Int,
			e.Op == token.NOT && x.Kind() == constant.Bool:
			return constant.UnaryOp(e.Op, x, 0)
		}
	case *ast.BinaryExpr:
		return binaryConst(evalConst(e.X, iota), e.Op, evalConst(e.Y, iota))
	}
	return constant.MakeUnknown()
}

// binaryConst applies op when it is defined for the operand kinds.
func binaryConst(x constant.Value, op token.Token, y constant.Value) constant.Value {
	numeric := isNumeric(x) && isNumeric(y)
	integers := x.Kind() == constant.Int && y.Kind() == constant.Int

	switch op {
	case token.ADD:
		if numeric || (x.Kind() == constant.String && y.Kind() == constant.String) {
			return constant.BinaryOp(x, op, y)
		}
	case token.SUB, token.MUL:
		if numeric {
			return constant.BinaryOp(x, op, y)
		}
	case token.QUO:
		if numeric && constant.Sign(y) != 0 {
			if integers {
				op = token.QUO_ASSIGN // integer division
			}
			return constant.BinaryOp(x, op, y)
		}
	case token.REM:
		if integers && constant.Sign(y) != 0 {
			return constant.BinaryOp(x, op, y)
		}
	case token.AND, token.OR, token.XOR, token.AND_NOT:
		if integers {
			return constant.BinaryOp(x, op, y)
		}
	case token.SHL, token.SHR:
		if integers {
			if shift, ok := constant.Uint64Val(y); ok && shift < 64 {
				return constant.Shift(x, op, uint(shift))
			}
		}
	}
	return constant.MakeUnknown()
}

func isNumeric(v constant.Value) bool {
	return v.Kind() == constant.Int || v.Kind() == constant.Float
}

// builtInTypes maps placeholder names to the regex they expand to. Every
// expansion has exactly one capture group.
var builtInTypes = map[string]string{
	"int":    `(-?\d+)`,
	"float":  `(-?\d*\.?\d+)`,
	"word":   `(\w+)`,
	"string": `"([^"]*)"`, // captures the text between the quotes
	"":       `(.*)`,
	"any":    `(.*)`,

	// user@example.com, user.name+tag@sub.domain.org
	"email": `([a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,})`,

	// time.ParseDuration syntax: 5s, 1h30m, 1.5h, -30m
	"duration": `(-?(?:\d+\.?\d*(?:ns|us|µs|ms|s|m|h))+)`,

	"url": `(https?://[^\s]+)`,
}

// placeholder matches {name} and {}. Regex quantifiers such as {2,3} do not
// start with a letter and are left alone.
var placeholder = regexp.MustCompile(`\{([A-Za-z_]\w*)?\}`)

// transformStepPattern replaces {name} placeholders with the regex of the
// built-in or custom type they name.
func transformStepPattern(pattern string, customTypes map[string]*generator.CustomType) (string, error) {
	var firstErr error
	result := placeholder.ReplaceAllStringFunc(pattern, func(match string) string {
		expansion, err := expandPlaceholder(match[1:len(match)-1], customTypes)
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			return match
		}
		return expansion
	})
	if firstErr != nil {
		return "", firstErr
	}
	return result, nil
}

func expandPlaceholder(name string, customTypes map[string]*generator.CustomType) (string, error) {
	key := strings.ToLower(name)
	if builtIn, ok := builtInTypes[key]; ok {
		return builtIn, nil
	}

	ct, ok := customTypes[key]
	if !ok {
		return "", fmt.Errorf("unknown parameter type {%s} in step pattern (not a built-in type or custom type)", name)
	}
	if len(ct.Values) == 0 {
		return "", fmt.Errorf("custom type %s has no defined constants", ct.Name)
	}
	return "(" + ct.RegexPattern() + ")", nil
}

// IsHooksFunction reports whether fnDecl takes no parameters and returns a
// single *Hooks value.
func IsHooksFunction(fnDecl *ast.FuncDecl) bool {
	if fnDecl.Type.Params.NumFields() != 0 || fnDecl.Type.Results.NumFields() != 1 {
		return false
	}
	returned := types.ExprString(fnDecl.Type.Results.List[0].Type)
	return strings.HasPrefix(returned, "*") && strings.HasSuffix(returned, "Hooks")
}

func IsStepFunction(decl *ast.FuncDecl) (*string, bool) {
	with := GetCommentLineStartingWith(StepPrefix, decl)
	if with != nil {
		return with, true
	}
	return nil, false
}

// GetCommentLineStartingWith returns the backtick-quoted text following
// keyword in the doc comment of fnDecl.
func GetCommentLineStartingWith(keyword string, fnDecl *ast.FuncDecl) *string {
	if fnDecl.Doc == nil {
		return nil
	}
	for _, comment := range fnDecl.Doc.List {
		rest, ok := strings.CutPrefix(comment.Text, "// "+keyword+" ")
		if !ok {
			continue
		}
		quoted := strings.TrimSpace(rest)
		if len(quoted) > 2 && strings.HasPrefix(quoted, "`") && strings.HasSuffix(quoted, "`") {
			stepDefinition := quoted[1 : len(quoted)-1]
			return &stepDefinition
		}
	}
	return nil
}
