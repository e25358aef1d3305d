package machine

import (
	"fmt"
	"strings"
)

var opKeys = map[string]Op{
	"+": Add,
	"-": Subtract, "−": Subtract,
	"×": Multiply, "*": Multiply, "x": Multiply,
	"÷": Divide, "/": Divide,
}

var funcKeys = map[string]Func{
	"sin": Sin, "cos": Cos, "tan": Tan,
	"ln": Ln, "log": Log,
	"sqrt": Sqrt, "√": Sqrt,
	"square": Square, "x²": Square, "x^2": Square,
	"inverse": Inverse, "1/x": Inverse,
	"pi": Pi, "π": Pi,
	"e": E,
	"factorial": Factorial, "n!": Factorial, "!": Factorial,
	"percent": Percent, "%": Percent,
	"negate": Negate, "±": Negate, "+/-": Negate,
}

// Press applies one keypad key given by its label.
func (m *Machine) Press(key string) error {
	k := strings.TrimSpace(key)
	if k == "" {
		return fmt.Errorf("%w: empty", ErrUnknownKey)
	}

	if isDigits(k) {
		m.Digit(k)
		return nil
	}
	if op, ok := opKeys[k]; ok {
		m.Operator(op)
		return nil
	}
	if fn, ok := funcKeys[strings.ToLower(k)]; ok {
		return m.Apply(fn)
	}

	switch strings.ToUpper(k) {
	case ".", ",":
		m.Decimal()
	case "=", "ENTER":
		m.Equals()
	case "C", "AC", "CLEAR":
		m.Clear()
	case "CE":
		m.ClearEntry()
	case "⌫", "BACK", "BACKSPACE", "DEL":
		m.Backspace()
	case "M+":
		m.MemoryAdd()
	case "M-", "M−":
		m.MemorySubtract()
	case "MR":
		m.MemoryRecall()
	case "MC":
		m.MemoryClear()
	default:
		return fmt.Errorf("%w: %q", ErrUnknownKey, key)
	}
	return nil
}

// PressAll presses keys in order and stops at the first unknown key.
func (m *Machine) PressAll(keys ...string) error {
	for _, k := range keys {
		if err := m.Press(k); err != nil {
			return err
		}
	}
	return nil
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
