package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wippyai/jvm-runtime/descriptor"
	"github.com/wippyai/jvm-runtime/runtime"
	"github.com/wippyai/jvm-runtime/testbed"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	descStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

const (
	fieldSignature = iota
	fieldProbe
	fieldCount
)

type historyEntry struct {
	input  string
	output string
	failed bool
}

type interactiveModel struct {
	env      *runtime.Env
	inputs   []textinput.Model
	history  []historyEntry
	focusIdx int
}

func newInteractiveModel() *interactiveModel {
	sig := textinput.New()
	sig.Placeholder = "(int32,int64)bool"
	sig.Prompt = "signature> "
	sig.Focus()

	probe := textinput.New()
	probe.Placeholder = "java/lang/Object#notify (optional)"
	probe.Prompt = "probe>     "

	return &interactiveModel{
		env:    runtime.NewEnv(testbed.NewPreloaded()),
		inputs: []textinput.Model{sig, probe},
	}
}

func (m *interactiveModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyTab, tea.KeyShiftTab:
			m.focusIdx = (m.focusIdx + 1) % fieldCount
			for i := range m.inputs {
				if i == m.focusIdx {
					m.inputs[i].Focus()
				} else {
					m.inputs[i].Blur()
				}
			}
			return m, nil
		case tea.KeyEnter:
			m.evaluate()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focusIdx], cmd = m.inputs[m.focusIdx].Update(msg)
	return m, cmd
}

// evaluate synthesizes the current signature and, when a probe target is
// set, runs the lookup against the testbed VM.
func (m *interactiveModel) evaluate() {
	sigStr := strings.TrimSpace(m.inputs[fieldSignature].Value())
	probeStr := strings.TrimSpace(m.inputs[fieldProbe].Value())
	if sigStr == "" {
		return
	}

	sig, err := descriptor.Parse(sigStr)
	if err != nil {
		m.push(sigStr, err.Error(), true)
		return
	}

	if probeStr == "" {
		m.push(sigStr, sig.String(), false)
		return
	}

	className, methodName, found := strings.Cut(probeStr, "#")
	if !found {
		m.push(probeStr, "probe must be class#method", true)
		return
	}
	cls := m.env.FindClass(className)
	if e := cls.Err(); e != nil {
		m.push(probeStr, e.Error(), true)
		return
	}
	method := cls.Value().GetMethod(methodName, sig)
	if e := method.Err(); e != nil {
		m.push(probeStr, e.Error(), true)
		return
	}
	m.push(probeStr, fmt.Sprintf("resolved %s.%s %s", className, methodName, method.Value().Descriptor()), false)
}

func (m *interactiveModel) push(input, output string, failed bool) {
	m.history = append(m.history, historyEntry{input: input, output: output, failed: failed})
	const keep = 10
	if len(m.history) > keep {
		m.history = m.history[len(m.history)-keep:]
	}
}

// livePreview synthesizes the descriptor for the signature as typed.
func (m *interactiveModel) livePreview() string {
	sigStr := strings.TrimSpace(m.inputs[fieldSignature].Value())
	if sigStr == "" {
		return helpStyle.Render("type a signature to see its descriptor")
	}
	sig, err := descriptor.Parse(sigStr)
	if err != nil {
		return errorStyle.Render(err.Error())
	}
	return descStyle.Render(sig.String())
}

func (m *interactiveModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("jniq descriptor explorer"))
	b.WriteString("\n\n")

	b.WriteString(m.inputs[fieldSignature].View())
	b.WriteString("\n")
	b.WriteString(labelStyle.Render("descriptor: "))
	b.WriteString(m.livePreview())
	b.WriteString("\n\n")

	b.WriteString(m.inputs[fieldProbe].View())
	b.WriteString("\n\n")

	for i := len(m.history) - 1; i >= 0; i-- {
		entry := m.history[i]
		style := resultStyle
		if entry.failed {
			style = errorStyle
		}
		fmt.Fprintf(&b, "%s %s\n", labelStyle.Render(entry.input+" =>"), style.Render(entry.output))
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("tab: switch field • enter: evaluate • esc: quit"))
	b.WriteString("\n")
	return b.String()
}

func runInteractive() error {
	p := tea.NewProgram(newInteractiveModel())
	_, err := p.Run()
	return err
}
