package executor

import (
	"context"
	"encoding"
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strconv"
	"time"

	messages "github.com/cucumber/messages/go/v21"

	"github.com/lehins/hspec/pkg/hspec"
)

// DocString is the doc string attached to a step. A step function receives
// it by declaring a parameter of this type.
type DocString string

var (
	hspecContextType = reflect.TypeOf((*hspec.Context)(nil))
	contextType      = reflect.TypeOf((*context.Context)(nil)).Elem()
	errorType        = reflect.TypeOf((*error)(nil)).Elem()
	tableType        = reflect.TypeOf(Table{})
	docStringType    = reflect.TypeOf(DocString(""))
	unmarshalerType  = reflect.TypeOf((*encoding.TextUnmarshaler)(nil)).Elem()
	durationType     = reflect.TypeOf(time.Duration(0))
)

// StepDefinition holds a compiled regex pattern and its associated function
type StepDefinition struct {
	Pattern  *regexp.Regexp
	Function any
}

// StepExecutor handles matching and executing step definitions
type StepExecutor struct {
	steps      []StepDefinition
	patternSet map[string]bool // Track registered patterns for duplicate detection
}

// NewStepExecutor creates a new StepExecutor
func NewStepExecutor() *StepExecutor {
	return &StepExecutor{
		steps:      make([]StepDefinition, 0),
		patternSet: make(map[string]bool),
	}
}

// RegisterStep registers a step definition with its regex pattern and function
func (e *StepExecutor) RegisterStep(pattern string, fn any) error {
	if e.patternSet[pattern] {
		return fmt.Errorf("duplicate step pattern: %s", pattern)
	}

	compiled, err := regexp.Compile(pattern)
	if err != nil {
		return fmt.Errorf("invalid step pattern %q: %w", pattern, err)
	}

	if fn == nil || reflect.TypeOf(fn).Kind() != reflect.Func {
		return fmt.Errorf("step handler must be a function, got %T", fn)
	}

	e.steps = append(e.steps, StepDefinition{
		Pattern:  compiled,
		Function: fn,
	})
	e.patternSet[pattern] = true
	return nil
}

// Len returns the number of registered step definitions.
func (e *StepExecutor) Len() int {
	return len(e.steps)
}

// RunSteps executes the steps of one scenario in order and stops at the
// first one that does not succeed. A context.Context returned by a step is
// handed to the steps after it. Steps without a definition make the
// scenario pending; a step returning an error fails it. Panics are left to
// the caller.
func (e *StepExecutor) RunSteps(ctx *hspec.Context, steps []*messages.PickleStep) hspec.Outcome {
	for _, step := range steps {
		def, args, ok := e.match(step.Text)
		if !ok {
			return hspec.Pending{Reason: fmt.Sprintf("undefined step: %s", step.Text)}
		}

		newCtx, err := e.invokeStepFunction(ctx, def.Function, args, step.Argument)
		if err != nil {
			return hspec.Failed{Message: fmt.Sprintf("step %q failed: %v", step.Text, err)}
		}
		if newCtx != nil {
			ctx.WithContext(newCtx)
		}
	}
	return hspec.Success{}
}

// match finds the first definition whose pattern matches text and returns
// its capture groups.
func (e *StepExecutor) match(text string) (StepDefinition, []string, bool) {
	for _, def := range e.steps {
		if matches := def.Pattern.FindStringSubmatch(text); matches != nil {
			return def, matches[1:], true
		}
	}
	return StepDefinition{}, nil, false
}

// invokeStepFunction calls the step function with proper argument conversion
func (e *StepExecutor) invokeStepFunction(ctx *hspec.Context, fn any, args []string, argument *messages.PickleStepArgument) (context.Context, error) {
	fnValue := reflect.ValueOf(fn)
	fnType := fnValue.Type()

	callArgs, err := buildCallArgs(ctx, fnType, args, argument)
	if err != nil {
		return nil, err
	}

	results := fnValue.Call(callArgs)

	return processReturnValues(fnType, results)
}

// buildCallArgs constructs the argument slice for function invocation.
// *hspec.Context, context.Context, Table and DocString parameters are
// injected; every other parameter consumes the next capture group.
func buildCallArgs(ctx *hspec.Context, fnType reflect.Type, capturedArgs []string, argument *messages.PickleStepArgument) ([]reflect.Value, error) {
	numParams := fnType.NumIn()
	callArgs := make([]reflect.Value, 0, numParams)

	capturedIndex := 0
	for i := 0; i < numParams; i++ {
		paramType := fnType.In(i)

		switch {
		case paramType == hspecContextType:
			callArgs = append(callArgs, reflect.ValueOf(ctx))
			continue
		case paramType == contextType:
			callArgs = append(callArgs, reflect.ValueOf(ctx.Context()))
			continue
		case paramType == tableType:
			var table Table
			if argument != nil {
				table = TableFromPickle(argument.DataTable)
			}
			callArgs = append(callArgs, reflect.ValueOf(table))
			continue
		case paramType == docStringType:
			var doc DocString
			if argument != nil && argument.DocString != nil {
				doc = DocString(argument.DocString.Content)
			}
			callArgs = append(callArgs, reflect.ValueOf(doc))
			continue
		}

		if capturedIndex >= len(capturedArgs) {
			return nil, fmt.Errorf("not enough captured arguments: expected %d more, have %d", numParams-i, len(capturedArgs)-capturedIndex)
		}

		arg := capturedArgs[capturedIndex]
		capturedIndex++

		converted, err := convertArg(arg, paramType)
		if err != nil {
			return nil, fmt.Errorf("failed to convert argument %q to %s: %w", arg, paramType, err)
		}
		callArgs = append(callArgs, converted)
	}

	return callArgs, nil
}

// processReturnValues extracts context and error from function return values
func processReturnValues(fnType reflect.Type, results []reflect.Value) (context.Context, error) {
	var newCtx context.Context
	var retErr error

	for i, result := range results {
		resultType := fnType.Out(i)

		switch {
		case resultType.Implements(contextType):
			if !result.IsNil() {
				newCtx = result.Interface().(context.Context)
			}
		case resultType.Implements(errorType):
			if !result.IsNil() {
				retErr = result.Interface().(error)
			}
		}
	}

	return newCtx, retErr
}

var errUnsupportedType = errors.New("unsupported parameter type")

// convertArg converts a captured string to the target type. Types
// implementing encoding.TextUnmarshaler (through a pointer) parse
// themselves, time.Duration uses its Go syntax, and named types convert from their underlying kind.
func convertArg(arg string, targetType reflect.Type) (reflect.Value, error) {
	if reflect.PointerTo(targetType).Implements(unmarshalerType) {
		ptr := reflect.New(targetType)
		if err := ptr.Interface().(encoding.TextUnmarshaler).UnmarshalText([]byte(arg)); err != nil {
			return reflect.Value{}, err
		}
		return ptr.Elem(), nil
	}

	if targetType == durationType {
		d, err := time.ParseDuration(arg)
		if err != nil {
			return reflect.Value{}, err
		}
		return reflect.ValueOf(d), nil
	}

	var v any
	var err error
	switch targetType.Kind() {
	case reflect.String:
		v = arg
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		v, err = strconv.ParseInt(arg, 10, targetType.Bits())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		v, err = strconv.ParseUint(arg, 10, targetType.Bits())
	case reflect.Float32, reflect.Float64:
		v, err = strconv.ParseFloat(arg, targetType.Bits())
	case reflect.Bool:
		v, err = strconv.ParseBool(arg)
	default:
		return reflect.Value{}, fmt.Errorf("%w: %s", errUnsupportedType, targetType)
	}
	if err != nil {
		return reflect.Value{}, err
	}
	return reflect.ValueOf(v).Convert(targetType), nil
}
