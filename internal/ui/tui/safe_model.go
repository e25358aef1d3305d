package tui

import (
	"fmt"
	"io"
	"log/slog"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
)

const panicToast = "Something went wrong; back to the catalog (details in the log)"

// safeModel keeps a panicking calculator screen from taking the terminal
// down: Update falls back to the catalog with a toast, View to a notice.
type safeModel struct {
	m   model
	log *slog.Logger
}

func wrapSafe(m model, log *slog.Logger) safeModel {
	if log == nil {
		log = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return safeModel{m: m, log: log}
}

func (s safeModel) Init() tea.Cmd { return s.m.Init() }

func (s safeModel) Update(msg tea.Msg) (next tea.Model, cmd tea.Cmd) {
	defer func() {
		if r := recover(); r != nil {
			s.report("update", r)
			s.m, cmd = s.m.home().showToast(panicToast)
			next = s
		}
	}()

	inner, c := s.m.Update(msg)
	switch t := inner.(type) {
	case model:
		s.m = t
	case safeModel:
		s = t
	}
	return s, c
}

func (s safeModel) View() (out string) {
	defer func() {
		if r := recover(); r != nil {
			s.report("view", r)
			out = panicToast
		}
	}()
	return s.m.View()
}

func (s safeModel) report(phase string, r any) {
	var calc string
	if s.m.session != nil {
		calc = string(s.m.session.ID())
	}
	s.log.Error("tui.panic",
		"phase", phase,
		"screen", s.m.scr,
		"calculator", calc,
		"panic", fmt.Sprint(r),
		"stack", string(debug.Stack()),
	)
}

var _ tea.Model = safeModel{}
