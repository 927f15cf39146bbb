package term

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "structural",
			err:  NewStructuralError("document has no root element"),
			want: "structural error: document has no root element",
		},
		{
			name: "unresolved component",
			err:  NewUnresolvedComponentError(Tag("navbar")),
			want: "unresolved component <navbar>: no import provides it",
		},
		{
			name: "non-termination",
			err:  NewNonTerminationError("template", 100),
			want: "template expansion did not converge after 100 iterations",
		},
		{
			name: "evaluation with cause",
			err:  NewEvaluationError("1 ++", errors.New("unexpected token")),
			want: "evaluation error for expression '1 ++': unexpected token",
		},
		{
			name: "import",
			err:  NewImportError("pages/index.xml", "import requires both key and from attributes"),
			want: "import error in pages/index.xml: import requires both key and from attributes",
		},
		{
			name: "document with cause",
			err:  NewDocumentError("read", "missing.xml", errors.New("file does not exist")),
			want: "document error during read of 'missing.xml': file does not exist",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestErrorClassification(t *testing.T) {
	structural := NewStructuralError("x")
	unresolved := NewUnresolvedComponentError(Tag("y"))
	nonterm := NewNonTerminationError("list", 10)

	if !IsStructuralError(structural) || IsStructuralError(unresolved) {
		t.Error("IsStructuralError misclassified")
	}
	if !IsUnresolvedComponentError(unresolved) || IsUnresolvedComponentError(nonterm) {
		t.Error("IsUnresolvedComponentError misclassified")
	}
	if !IsNonTerminationError(nonterm) || IsNonTerminationError(structural) {
		t.Error("IsNonTerminationError misclassified")
	}
}

func TestErrorClassificationThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("render failed: %w", NewNonTerminationError("template", 100))
	if !IsNonTerminationError(wrapped) {
		t.Error("classification should see through wrapping")
	}
}

func TestErrorUnwrap(t *testing.T) {
	cause := errors.New("root cause")

	if !errors.Is(NewEvaluationError("e", cause), cause) {
		t.Error("evaluation error should unwrap to its cause")
	}
	if !errors.Is(NewDocumentError("parse", "p.xml", cause), cause) {
		t.Error("document error should unwrap to its cause")
	}
}

func TestDocumentErrorWithoutPath(t *testing.T) {
	err := NewDocumentError("parse", "", errors.New("boom"))
	if !strings.Contains(err.Error(), "during parse") {
		t.Errorf("message = %q", err.Error())
	}
}
