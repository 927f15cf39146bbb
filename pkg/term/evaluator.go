package term

import (
	"sync"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// Evaluator executes an isolated sub-expression and returns its value. The
// pipeline only needs boolean coercion and simple value computation, so the
// engine behind this interface is swappable.
type Evaluator interface {
	Evaluate(code string) (any, error)
}

// ExprEvaluator evaluates sub-expressions with the expr language, caching
// compiled programs per source string. Expressions are pure: interpolation
// has already replaced every template reference before code reaches the
// engine, so programs run against an empty environment.
type ExprEvaluator struct {
	mu       sync.Mutex
	programs map[string]*vm.Program
}

// NewExprEvaluator creates an evaluator with an empty program cache.
func NewExprEvaluator() *ExprEvaluator {
	return &ExprEvaluator{
		programs: make(map[string]*vm.Program),
	}
}

func (e *ExprEvaluator) Evaluate(code string) (any, error) {
	program, err := e.compile(code)
	if err != nil {
		return nil, NewEvaluationError(code, err)
	}
	out, err := expr.Run(program, map[string]any{})
	if err != nil {
		return nil, NewEvaluationError(code, err)
	}
	return out, nil
}

func (e *ExprEvaluator) compile(code string) (*vm.Program, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if program, ok := e.programs[code]; ok {
		return program, nil
	}
	program, err := expr.Compile(code)
	if err != nil {
		return nil, err
	}
	e.programs[code] = program
	return program, nil
}
