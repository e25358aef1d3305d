// Package machine implements the keypad calculator: a display register, one
// pending binary operation evaluated eagerly left to right, and one memory
// register.
package machine

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/aalvaropc/calckit/internal/formula"
)

// ErrUnknownKey is returned by Press and Apply for keys the keypad lacks.
var ErrUnknownKey = errors.New("unknown key")

// Op is a binary operator.
type Op string

const (
	Add      Op = "+"
	Subtract Op = "-"
	Multiply Op = "×"
	Divide   Op = "÷"
)

// Func is a unary scientific function applied to the display.
type Func string

const (
	Sin       Func = "sin"
	Cos       Func = "cos"
	Tan       Func = "tan"
	Ln        Func = "ln"
	Log       Func = "log"
	Sqrt      Func = "sqrt"
	Square    Func = "square"
	Inverse   Func = "inverse"
	Pi        Func = "pi"
	E         Func = "e"
	Factorial Func = "factorial"
	Percent   Func = "percent"
	Negate    Func = "negate"
)

// Machine is not safe for concurrent use.
type Machine struct {
	display  string
	previous string
	op       Op
	waiting  bool
	memory   float64
}

func New() *Machine {
	return &Machine{display: "0"}
}

func (m *Machine) Display() string  { return m.display }
func (m *Machine) Previous() string { return m.previous }
func (m *Machine) Pending() Op      { return m.op }
func (m *Machine) Memory() float64  { return m.memory }

// MemoryText renders the memory register the way the display would.
func (m *Machine) MemoryText() string { return formatNumber(m.memory) }

// Digit enters one or more digits into the current operand.
func (m *Machine) Digit(d string) {
	if m.waiting {
		m.display = d
		m.waiting = false
		return
	}
	if m.display == "0" {
		m.display = d
		return
	}
	m.display += d
}

// Decimal starts the fractional part; a second point in one operand is ignored.
func (m *Machine) Decimal() {
	if m.waiting {
		m.display = "0."
		m.waiting = false
		return
	}
	if !strings.Contains(m.display, ".") {
		m.display += "."
	}
}

// Operator records next as the pending operation. Pressing an operator right
// after another only replaces it; otherwise any pending operation is
// evaluated first and its result shown.
func (m *Machine) Operator(next Op) {
	input := parseNumber(m.display)

	if m.op != "" && m.waiting {
		m.op = next
		return
	}

	switch {
	case m.previous == "":
		m.previous = formatNumber(input)
	case m.op != "":
		out := formatNumber(apply(parseNumber(m.previous), input, m.op))
		m.display = out
		m.previous = out
	}

	m.waiting = true
	m.op = next
}

// Equals evaluates the pending operation. It does nothing when none is pending.
func (m *Machine) Equals() {
	if m.op == "" || m.previous == "" {
		return
	}
	m.display = formatNumber(apply(parseNumber(m.previous), parseNumber(m.display), m.op))
	m.previous = ""
	m.op = ""
	m.waiting = true
}

func apply(a, b float64, op Op) float64 {
	switch op {
	case Add:
		return a + b
	case Subtract:
		return a - b
	case Multiply:
		return a * b
	case Divide:
		return a / b
	default:
		return b
	}
}

// Apply replaces the display with fn applied to it.
func (m *Machine) Apply(fn Func) error {
	v := parseNumber(m.display)

	var out float64
	switch fn {
	case Sin:
		out = math.Sin(v * math.Pi / 180)
	case Cos:
		out = math.Cos(v * math.Pi / 180)
	case Tan:
		out = math.Tan(v * math.Pi / 180)
	case Ln:
		out = math.Log(v)
	case Log:
		out = math.Log10(v)
	case Sqrt:
		out = math.Sqrt(v)
	case Square:
		out = v * v
	case Inverse:
		out = 1 / v
	case Pi:
		out = math.Pi
	case E:
		out = math.E
	case Factorial:
		out = formula.Factorial(v)
	case Percent:
		out = v / 100
	case Negate:
		out = -v
	default:
		return fmt.Errorf("%w: %q", ErrUnknownKey, fn)
	}

	m.display = formatNumber(out)
	m.waiting = true
	return nil
}

// Clear resets everything except memory.
func (m *Machine) Clear() {
	m.display = "0"
	m.previous = ""
	m.op = ""
	m.waiting = false
}

// ClearEntry resets only the current operand.
func (m *Machine) ClearEntry() {
	m.display = "0"
	m.waiting = false
}

func (m *Machine) Backspace() {
	if len(m.display) > 1 {
		m.display = m.display[:len(m.display)-1]
		return
	}
	m.display = "0"
}

func (m *Machine) MemoryAdd()      { m.memory += parseNumber(m.display) }
func (m *Machine) MemorySubtract() { m.memory -= parseNumber(m.display) }
func (m *Machine) MemoryClear()    { m.memory = 0 }

// MemoryRecall shows the memory register; the next digit starts a new operand.
func (m *Machine) MemoryRecall() {
	m.display = formatNumber(m.memory)
	m.waiting = true
}
