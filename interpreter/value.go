package interpreter

import (
	"fmt"
	"strconv"
	"strings"
)

// isTruthy applies Lox truthiness: nil and false are falsey, everything
// else (including 0 and "") is truthy.
func isTruthy(value interface{}) bool {
	if value == nil {
		return false
	}
	if b, ok := value.(bool); ok {
		return b
	}
	return true
}

// isEqual implements Lox's `==`: nil equals only nil, otherwise plain Go
// equality (which already does the right thing for bool/string/float64;
// distinct callables/instances are distinct pointers and so compare
// unequal, which is identity equality for those kinds).
func isEqual(a, b interface{}) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	return a == b
}

// Stringify renders a Lox value the way `print` and the REPL do.
// Integer-valued doubles print without a trailing ".0" — an explicit
// stringification rule, not a language-default float format.
func Stringify(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return "nil"
	case bool:
		if v {
			return "true"
		}
		return "false"
	case float64:
		text := strconv.FormatFloat(v, 'f', -1, 64)
		if strings.HasSuffix(text, ".0") {
			text = text[:len(text)-2]
		}
		return text
	case string:
		return v
	case *LoxClass:
		return v.Name
	case *LoxInstance:
		return fmt.Sprintf("%s instance", v.Class.Name)
	case *LoxFunction:
		return fmt.Sprintf("<fn %s>", v.Declaration.Name.Lexeme)
	case *NativeFunction:
		return fmt.Sprintf("<native fn %s>", v.Name)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// typeName names a value's runtime kind for error messages where useful.
func typeName(value interface{}) string {
	switch value.(type) {
	case nil:
		return "nil"
	case bool:
		return "boolean"
	case float64:
		return "number"
	case string:
		return "string"
	case *LoxClass:
		return "class"
	case *LoxInstance:
		return "instance"
	case *LoxFunction, *NativeFunction:
		return "function"
	default:
		return "value"
	}
}
