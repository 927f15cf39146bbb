package term

import (
	"fmt"
	"reflect"
	"regexp"
	"strconv"
	"strings"
)

// Context is the render context: the data a page is rendered against. Values
// can be strings, numbers, booleans, slices, or maps.
type Context map[string]any

// Matches ${...} interpolation markers in attribute values and text.
var interpolationPattern = regexp.MustCompile(`\$\{([^}]*)\}`)

// evaluateString applies the two substitution rules to a raw value, in order:
//
//  1. Interpolation: each ${...} marker resolves through the node's scope
//     chain (@item.<field>, @props.<field>, @index) or the render context.
//     An unresolvable marker is left verbatim in the output: a soft miss,
//     never an error.
//  2. Computed sub-expression: when the interpolated value is a single
//     parenthesized expression, it is handed verbatim to the expression
//     engine and replaced with the stringified result. Parenthesized
//     substrings embedded in larger text are plain text and stay untouched.
func (r *Renderer) evaluateString(s string, n *Node, ctx Context) string {
	if s == "" {
		return s
	}

	out := interpolationPattern.ReplaceAllStringFunc(s, func(marker string) string {
		name := strings.TrimSpace(marker[2 : len(marker)-1])
		if v, ok := resolveReference(name, n, ctx); ok {
			return v
		}
		return marker
	})

	trimmed := strings.TrimSpace(out)
	if isComputedExpression(trimmed) {
		value, err := r.eval.Evaluate(trimmed)
		if err != nil {
			r.logger.Debug("sub-expression %q left unevaluated: %v", trimmed, err)
			return out
		}
		return FormatValue(value)
	}
	return out
}

// resolveReference resolves one interpolation reference against the node's
// scope chain. Loop data and props are looked up on the nearest carrying
// ancestor (inner shadows outer); anything else is a direct context lookup.
func resolveReference(name string, n *Node, ctx Context) (string, bool) {
	switch {
	case strings.HasPrefix(name, "@item."):
		field := strings.TrimPrefix(name, "@item.")
		for p := n; p != nil; p = p.Parent {
			if p.Looped {
				if v, ok := lookupField(p.ListItem, field); ok {
					return FormatValue(v), true
				}
				return "", false
			}
		}
		return "", false

	case strings.HasPrefix(name, "@props."):
		field := strings.TrimPrefix(name, "@props.")
		for p := n; p != nil; p = p.Parent {
			if p.Tag == TagFragment && p.Props != nil {
				if v, ok := p.Props[field]; ok {
					return v, true
				}
				return "", false
			}
		}
		return "", false

	case name == "@index":
		for p := n; p != nil; p = p.Parent {
			if p.Looped {
				return strconv.Itoa(p.ListIndex), true
			}
		}
		return "", false

	default:
		if v, ok := ctx[name]; ok {
			return FormatValue(v), true
		}
		return "", false
	}
}

// lookupField navigates a dotted field path into a loop item.
func lookupField(item any, field string) (any, bool) {
	current := item
	for _, part := range strings.Split(field, ".") {
		if current == nil {
			return nil, false
		}
		switch v := current.(type) {
		case map[string]any:
			next, ok := v[part]
			if !ok {
				return nil, false
			}
			current = next
		case map[string]string:
			next, ok := v[part]
			if !ok {
				return nil, false
			}
			current = next
		case Context:
			next, ok := v[part]
			if !ok {
				return nil, false
			}
			current = next
		default:
			rv := reflect.ValueOf(current)
			if rv.Kind() != reflect.Map {
				return nil, false
			}
			mv := rv.MapIndex(reflect.ValueOf(part))
			if !mv.IsValid() {
				return nil, false
			}
			current = mv.Interface()
		}
	}
	return current, true
}

// isComputedExpression reports whether s is one parenthesized expression
// wrapping the entire value, as opposed to parentheses inside running text.
func isComputedExpression(s string) bool {
	if len(s) < 2 || s[0] != '(' || s[len(s)-1] != ')' {
		return false
	}
	depth := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 && i != len(s)-1 {
				return false
			}
		}
	}
	return depth == 0
}

// fillExpressions evaluates interpolations and computed sub-expressions
// across the tree. Fragment props are evaluated first on entry, against the
// fragment itself, so a prop can reference the @item/@index of the loop that
// produced this instance; the concrete values are then handed down to the
// component's interior. Directive attributes (import, if) stay raw: imports
// are inert by now and conditions are evaluated by the conditional resolver.
func (r *Renderer) fillExpressions(root *Node, ctx Context) {
	root.Walk(func(n *Node) {
		if n.Tag == TagFragment && n.Props != nil {
			evaluated := make(map[string]string, len(n.Props))
			for k, v := range n.Props {
				evaluated[k] = r.evaluateString(v, n, ctx)
			}
			n.Props = evaluated
		}

		switch n.Tag {
		case TagImport, TagIf, TagList:
			return
		}
		for _, name := range n.AttrNames() {
			n.Attributes[name] = r.evaluateString(n.Attributes[name], n, ctx)
		}
		if n.Text != "" {
			n.Text = r.evaluateString(n.Text, n, ctx)
		}
	})
}

// isTruthy mirrors loose boolean coercion for evaluated condition values.
func isTruthy(value any) bool {
	switch v := value.(type) {
	case nil:
		return false
	case bool:
		return v
	case string:
		return v != ""
	case int:
		return v != 0
	case int64:
		return v != 0
	case float64:
		return v != 0
	case float32:
		return v != 0
	default:
		rv := reflect.ValueOf(value)
		switch rv.Kind() {
		case reflect.Slice, reflect.Array, reflect.Map:
			return rv.Len() > 0
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			return rv.Int() != 0
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			return rv.Uint() != 0
		case reflect.Float32, reflect.Float64:
			return rv.Float() != 0
		}
		return true
	}
}

// FormatValue converts an evaluated value to its string representation.
func FormatValue(value any) string {
	if value == nil {
		return ""
	}
	switch v := value.(type) {
	case string:
		return v
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return fmt.Sprintf("%d", v)
	case float32:
		return strconv.FormatFloat(float64(v), 'g', 10, 32)
	case float64:
		return strconv.FormatFloat(v, 'g', 15, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		return fmt.Sprintf("%v", v)
	}
}
