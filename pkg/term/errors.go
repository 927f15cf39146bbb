// Custom error types for the render pipeline. Structural errors are the only
// recoverable class; everything else unwinds the whole render.
package term

import (
	"errors"
	"fmt"
)

// StructuralError reports a malformed document shape (missing or duplicate
// root element). It is an in-band error value: callers are expected to
// recover, typically by rendering an error page.
type StructuralError struct {
	Message string
}

func (e *StructuralError) Error() string {
	return fmt.Sprintf("structural error: %s", e.Message)
}

// NewStructuralError creates a new structural error.
func NewStructuralError(message string) error {
	return &StructuralError{Message: message}
}

// UnresolvedComponentError reports a component reference whose tag never
// appeared in the component cache. Fatal: the page references a component
// that no import provides.
type UnresolvedComponentError struct {
	Tag Tag
}

func (e *UnresolvedComponentError) Error() string {
	return fmt.Sprintf("unresolved component <%s>: no import provides it", e.Tag)
}

// NewUnresolvedComponentError creates a new unresolved component error.
func NewUnresolvedComponentError(tag Tag) error {
	return &UnresolvedComponentError{Tag: tag}
}

// NonTerminationError reports an expansion pass that exceeded its iteration
// ceiling. Fatal: this is the defense against cyclic template graphs.
type NonTerminationError struct {
	Stage      string
	Iterations int
}

func (e *NonTerminationError) Error() string {
	return fmt.Sprintf("%s expansion did not converge after %d iterations", e.Stage, e.Iterations)
}

// NewNonTerminationError creates a new non-termination error.
func NewNonTerminationError(stage string, iterations int) error {
	return &NonTerminationError{Stage: stage, Iterations: iterations}
}

// EvaluationError reports a failed expression evaluation.
type EvaluationError struct {
	Expression string
	Cause      error
}

func (e *EvaluationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("evaluation error for expression '%s': %v", e.Expression, e.Cause)
	}
	return fmt.Sprintf("evaluation error for expression '%s'", e.Expression)
}

func (e *EvaluationError) Unwrap() error {
	return e.Cause
}

// NewEvaluationError creates a new evaluation error.
func NewEvaluationError(expression string, cause error) error {
	return &EvaluationError{Expression: expression, Cause: cause}
}

// ImportError reports a malformed import directive. Only raised in strict
// mode; the lenient default skips the import instead.
type ImportError struct {
	Path    string
	Message string
}

func (e *ImportError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("import error in %s: %s", e.Path, e.Message)
	}
	return fmt.Sprintf("import error: %s", e.Message)
}

// NewImportError creates a new import error.
func NewImportError(path, message string) error {
	return &ImportError{Path: path, Message: message}
}

// DocumentError reports a failed document operation (read, parse).
type DocumentError struct {
	Operation string
	Path      string
	Cause     error
}

func (e *DocumentError) Error() string {
	if e.Path != "" && e.Cause != nil {
		return fmt.Sprintf("document error during %s of '%s': %v", e.Operation, e.Path, e.Cause)
	} else if e.Path != "" {
		return fmt.Sprintf("document error during %s of '%s'", e.Operation, e.Path)
	}
	return fmt.Sprintf("document error during %s: %v", e.Operation, e.Cause)
}

func (e *DocumentError) Unwrap() error {
	return e.Cause
}

// NewDocumentError creates a new document error.
func NewDocumentError(operation, path string, cause error) error {
	return &DocumentError{Operation: operation, Path: path, Cause: cause}
}

// IsStructuralError checks if an error is a structural error.
func IsStructuralError(err error) bool {
	var se *StructuralError
	return errors.As(err, &se)
}

// IsUnresolvedComponentError checks if an error is an unresolved component error.
func IsUnresolvedComponentError(err error) bool {
	var ue *UnresolvedComponentError
	return errors.As(err, &ue)
}

// IsNonTerminationError checks if an error is a non-termination error.
func IsNonTerminationError(err error) bool {
	var ne *NonTerminationError
	return errors.As(err, &ne)
}

// IsEvaluationError checks if an error is an evaluation error.
func IsEvaluationError(err error) bool {
	var ee *EvaluationError
	return errors.As(err, &ee)
}

// IsImportError checks if an error is an import error.
func IsImportError(err error) bool {
	var ie *ImportError
	return errors.As(err, &ie)
}

// IsDocumentError checks if an error is a document error.
func IsDocumentError(err error) bool {
	var de *DocumentError
	return errors.As(err, &de)
}
