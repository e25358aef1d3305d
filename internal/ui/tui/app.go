package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/aalvaropc/calckit/internal/calc"
	"github.com/aalvaropc/calckit/internal/catalog"
	"github.com/aalvaropc/calckit/internal/domain"
	"github.com/aalvaropc/calckit/internal/machine"
	"github.com/aalvaropc/calckit/internal/usecase"
)

type screen int

const (
	screenHome screen = iota
	screenForm
	screenKeypad
	screenNotFound
)

type calcItem struct {
	d        domain.Descriptor
	category string
}

func (i calcItem) Title() string {
	if i.d.Featured {
		return i.d.Name + " ★"
	}
	return i.d.Name
}
func (i calcItem) Description() string { return i.category + " · " + i.d.Description }

// FilterValue matches what the catalog search looks at: name and description.
func (i calcItem) FilterValue() string { return i.d.Name + " " + i.d.Description }

// keypadKeys maps terminal keys to keypad labels understood by machine.Press.
var keypadKeys = map[string]string{
	"enter": "=", "=": "=",
	"backspace": "⌫", "delete": "CE", "c": "C",
	"+": "+", "-": "−", "*": "×", "x": "×", "/": "÷",
	".": ".", ",": ".",
	"%": "%", "!": "n!", "^": "x²",
	"s": "sin", "o": "cos", "t": "tan", "l": "ln", "g": "log",
	"r": "√", "i": "1/x", "p": "π", "e": "e", "n": "±",
	"m": "M+", "M": "M−", "R": "MR", "X": "MC",
}

type model struct {
	theme Theme
	deps  Deps

	scr  screen
	list list.Model

	desc    domain.Descriptor
	fields  []domain.Field
	inputs  []textinput.Model
	focus   int
	session *usecase.Session
	missing domain.CalculatorID

	machine  *machine.Machine
	exprMode bool
	expr     textinput.Model

	toast    string
	toastSeq int

	workspaceFound bool
	workspaceRoot  string
}

func Run(deps Deps) error {
	m := newModel(deps)
	p := tea.NewProgram(wrapSafe(m, deps.Logger), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func newModel(deps Deps) model {
	if deps.Calculate == nil {
		deps.Calculate = usecase.NewCalculate(catalog.Registry{}, calc.NewDefaultEngine(), usecase.WithLogger(deps.Logger))
	}

	var items []list.Item
	for _, c := range catalog.Categories() {
		for _, d := range c.Calculators {
			items = append(items, calcItem{d: d, category: c.Name})
		}
	}

	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Calculators"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)

	m := model{
		theme: DefaultTheme(),
		deps:  deps,
		scr:   screenHome,
		list:  l,
	}

	if deps.Start != "" {
		m = m.open(deps.Start)
	}
	return m
}

func (m model) Init() tea.Cmd { return cmdRefreshWorkspace(m.deps) }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetSize(msg.Width-4, msg.Height-10)
		return m, nil

	case workspaceRefreshedMsg:
		m.workspaceFound = msg.found
		m.workspaceRoot = msg.root
		return m, nil

	case initWorkspaceDoneMsg:
		if msg.err != nil {
			return m.showToast(userMessage(msg.err))
		}
		m.workspaceFound = true
		m.workspaceRoot = msg.root
		return m.showToast("Workspace created")

	case toastExpiredMsg:
		if msg.seq == m.toastSeq {
			m.toast = ""
		}
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if msg.String() == "esc" && m.scr != screenHome {
			return m.home(), nil
		}

		switch m.scr {
		case screenHome:
			return m.updateHome(msg)
		case screenForm:
			return m.updateForm(msg)
		case screenKeypad:
			return m.updateKeypad(msg)
		}
		return m, nil
	}

	if m.scr == screenHome {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m model) updateHome(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.list.FilterState() != list.Filtering {
		switch msg.String() {
		case "q":
			return m, tea.Quit
		case "enter":
			it, ok := m.list.SelectedItem().(calcItem)
			if !ok {
				return m, nil
			}
			return m.open(it.d.ID), nil
		case "i":
			if !m.workspaceFound {
				wd, err := os.Getwd()
				if err != nil {
					return m.showToast(userMessage(err))
				}
				return m, cmdInitWorkspaceHere(m.deps, wd)
			}
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "tab", "down":
		return m.focusField(m.focus + 1), nil
	case "shift+tab", "up":
		return m.focusField(m.focus - 1), nil
	case "enter":
		for i, f := range m.fields {
			m.session.Set(f.Name, m.inputs[i].Value())
		}
		return m.calculate()
	}

	if len(m.inputs) == 0 {
		return m, nil
	}
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m model) updateKeypad(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if key == "tab" {
		m.exprMode = !m.exprMode
		if m.exprMode {
			m.expr.Focus()
		} else {
			m.expr.Blur()
		}
		return m, nil
	}

	if m.exprMode {
		if key == "enter" {
			m.session.Set("expression", m.expr.Value())
			return m.calculate()
		}
		var cmd tea.Cmd
		m.expr, cmd = m.expr.Update(msg)
		return m, cmd
	}

	label, ok := keypadKeys[key]
	if !ok && len(key) == 1 && key[0] >= '0' && key[0] <= '9' {
		label, ok = key, true
	}
	if !ok {
		return m, nil
	}
	if err := m.machine.Press(label); err != nil {
		return m.showToast(userMessage(err))
	}
	return m, nil
}

// calculate runs the session. Incomplete input is not an error worth showing.
func (m model) calculate() (tea.Model, tea.Cmd) {
	_, err := m.session.Calculate(context.Background())
	switch {
	case err == nil:
		m.toast = ""
		return m, nil
	case errors.Is(err, domain.ErrIncompleteInput):
		return m, nil
	default:
		return m.showToast(userMessage(err))
	}
}

func (m model) open(id domain.CalculatorID) model {
	m.toast = ""
	d, err := catalog.Lookup(id)
	if err != nil {
		m.scr = screenNotFound
		m.missing = id
		return m
	}

	m.desc = d
	m.session = usecase.NewSession(m.deps.Calculate, id)

	if id == domain.CalcScientific {
		m.machine = machine.New()
		m.expr = textinput.New()
		m.expr.Placeholder = "(2 + 3) × 4"
		m.expr.CharLimit = 256
		m.exprMode = false
		m.scr = screenKeypad
		return m
	}

	m.fields = catalog.Form(id)
	m.inputs = make([]textinput.Model, len(m.fields))
	for i, f := range m.fields {
		ti := textinput.New()
		ti.Placeholder = f.Placeholder
		ti.CharLimit = 64
		m.inputs[i] = ti
	}
	m.scr = screenForm
	m = m.focusField(0)

	// Calculators without inputs show their placeholder right away.
	if len(m.fields) == 0 {
		_, _ = m.session.Calculate(context.Background())
	}
	return m
}

func (m model) home() model {
	m.scr = screenHome
	m.session = nil
	m.machine = nil
	m.fields = nil
	m.inputs = nil
	m.toast = ""
	return m
}

func (m model) focusField(i int) model {
	if len(m.inputs) == 0 {
		return m
	}
	n := len(m.inputs)
	i = ((i % n) + n) % n
	for j := range m.inputs {
		m.inputs[j].Blur()
	}
	m.focus = i
	m.inputs[i].Focus()
	return m
}

func (m model) showToast(s string) (model, tea.Cmd) {
	m.toastSeq++
	m.toast = s
	return m, cmdExpireToast(m.toastSeq)
}

func (m model) View() string {
	wrap := lipgloss.NewStyle().Padding(1, 2)
	header := m.theme.Title.Render("calckit") + "\n" +
		m.theme.Subtitle.Render("Everyday calculators in the terminal") + "\n"

	var banner string
	if m.workspaceFound {
		banner = m.theme.Help.Render(fmt.Sprintf("Workspace: %s", m.workspaceRoot))
	} else {
		banner = m.theme.Help.Render("No workspace found (press i on the catalog to create one here)")
	}

	toast := ""
	if m.toast != "" {
		toast = "\n" + m.theme.Toast.Render(m.toast)
	}

	switch m.scr {
	case screenHome:
		help := m.theme.Help.Render("↑/↓ navigate • enter open • / search • q quit")
		return wrap.Render(header + "\n" + banner + "\n\n" + m.theme.Card.Render(m.list.View()) + toast + "\n" + help)

	case screenForm:
		help := m.theme.Help.Render("tab next field • enter calculate • esc back")
		return wrap.Render(header + "\n" + m.theme.Card.Render(m.formView()) + toast + "\n" + help)

	case screenKeypad:
		help := m.theme.Help.Render("digits and + - * / = • s/o/t sin cos tan • r √ • c clear • tab expression • esc back")
		return wrap.Render(header + "\n" + m.theme.Card.Render(m.keypadView()) + toast + "\n" + help)

	case screenNotFound:
		card := m.theme.Card.Render(
			m.theme.Title.Render("Calculator not found") + "\n\n" +
				fmt.Sprintf("No calculator is registered as %q.", clampString(string(m.missing), 40)) + "\n\n" +
				m.theme.Help.Render("esc back to the catalog"),
		)
		return wrap.Render(header + "\n" + card)

	default:
		return wrap.Render(header + "\n" + "unknown state")
	}
}

func (m model) formView() string {
	var b strings.Builder
	b.WriteString(m.theme.Title.Render(m.desc.Name))
	b.WriteString("\n")
	b.WriteString(m.theme.Subtitle.Render(m.desc.Description))
	b.WriteString("\n\n")

	for i, f := range m.fields {
		label := m.theme.Label.Render(f.Label)
		if i == m.focus {
			label = m.theme.Focused.Render(m.theme.Label.Render(f.Label))
		}
		b.WriteString(label)
		b.WriteString(m.inputs[i].View())
		b.WriteString("\n")
		if i == m.focus && len(f.Choices) > 0 {
			b.WriteString(m.theme.Help.Render("  one of: " + strings.Join(f.Choices, ", ")))
			b.WriteString("\n")
		}
	}

	if res := renderResult(m.theme, m.session.Result(), m.deps.Precision); res != "" {
		b.WriteString("\n")
		b.WriteString(res)
	}
	return b.String()
}

func (m model) keypadView() string {
	var b strings.Builder
	b.WriteString(m.theme.Title.Render(m.desc.Name))
	b.WriteString("\n\n")
	b.WriteString(renderKeypad(m.theme, m.machine))
	b.WriteString("\n\n")

	label := "Expression: "
	if m.exprMode {
		label = m.theme.Focused.Render(label)
	}
	b.WriteString(label)
	b.WriteString(m.expr.View())

	if res := renderResult(m.theme, m.session.Result(), m.deps.Precision); res != "" {
		b.WriteString("\n\n")
		b.WriteString(res)
	}
	return b.String()
}
