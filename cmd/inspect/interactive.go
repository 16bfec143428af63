package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/streamkit/mediad/object"
	"github.com/streamkit/mediad/pipeline"
	"github.com/streamkit/mediad/property"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	objStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	kindStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

const refreshInterval = 500 * time.Millisecond

type modelState int

const (
	stateSelectObject modelState = iota
	stateViewProps
)

type objEntry struct {
	name string
	ref  object.Ref
}

type propRow struct {
	name   string
	kind   string
	caps   string
	value  string
	failed bool
}

type tickMsg time.Time

type inspectorModel struct {
	reg      *object.Registry
	demo     *pipeline.Demo
	reader   *property.PropertyReader
	filter   textinput.Model
	objects  []objEntry
	rows     []propRow
	current  objEntry
	selected int
	frames   int
	state    modelState
}

func newInspectorModel(reg *object.Registry, demo *pipeline.Demo) *inspectorModel {
	filter := textinput.New()
	filter.Placeholder = "filter"
	filter.Prompt = "/"
	filter.Width = 24

	m := &inspectorModel{
		reg:    reg,
		demo:   demo,
		reader: property.NewReader(),
		filter: filter,
		state:  stateSelectObject,
	}
	m.refreshObjects()
	return m
}

func (m *inspectorModel) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(refreshInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m *inspectorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.state == stateViewProps && m.filter.Focused() {
			switch msg.String() {
			case "ctrl+c":
				return m, tea.Quit
			case "esc", "enter":
				m.filter.Blur()
				return m, nil
			}
			var cmd tea.Cmd
			m.filter, cmd = m.filter.Update(msg)
			m.refreshRows()
			return m, cmd
		}

		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit

		case "up", "k":
			if m.state == stateSelectObject && m.selected > 0 {
				m.selected--
			}

		case "down", "j":
			if m.state == stateSelectObject && m.selected < len(m.objects)-1 {
				m.selected++
			}

		case "enter":
			if m.state == stateSelectObject && len(m.objects) > 0 {
				m.current = m.objects[m.selected]
				m.filter.SetValue("")
				m.refreshRows()
				m.state = stateViewProps
			}

		case "/":
			if m.state == stateViewProps {
				m.filter.Focus()
			}

		case "esc":
			if m.state == stateViewProps {
				m.state = stateSelectObject
				m.rows = nil
			}
		}

	case tickMsg:
		m.animate()
		m.refreshObjects()
		if m.state == stateViewProps {
			m.refreshRows()
		}
		return m, tick()
	}

	return m, nil
}

// animate mutates the demo graph host-side so the live fetch path is visible:
// wrapped values change between refreshes without any re-wrapping.
func (m *inspectorModel) animate() {
	m.frames++
	m.demo.VolumeProps.Volume = (m.demo.VolumeProps.Volume + 1) % 100
	m.demo.SinkProps.LastMessage = fmt.Sprintf("rendered %d frames", m.frames)
}

func (m *inspectorModel) refreshObjects() {
	m.objects = m.objects[:0]
	m.reg.Each(func(h object.Handle, obj object.Object) bool {
		m.objects = append(m.objects, objEntry{
			name: obj.ObjectName(),
			ref:  object.Ref{Registry: m.reg, Handle: h},
		})
		return true
	})
	if m.selected >= len(m.objects) {
		m.selected = 0
	}
}

func (m *inspectorModel) refreshRows() {
	m.rows = m.rows[:0]

	obj, ok := m.current.ref.Object()
	if !ok {
		return
	}

	needle := strings.ToLower(m.filter.Value())
	for _, spec := range obj.Class().Specs() {
		if needle != "" && !strings.Contains(strings.ToLower(spec.Name), needle) {
			continue
		}

		row := propRow{
			name: spec.Name,
			kind: spec.Kind.String(),
			caps: specCaps(spec),
		}

		res, err := m.reader.Read(m.current.ref, spec.Name)
		if err == nil {
			var v any
			if v, err = res.Read(); err == nil {
				row.value = fmt.Sprintf("%v", v)
			}
		}
		if err != nil {
			row.value = errKind(err)
			row.failed = true
		}
		m.rows = append(m.rows, row)
	}
}

func specCaps(spec object.Spec) string {
	var b strings.Builder
	if spec.Readable && spec.Exposed {
		b.WriteByte('r')
	}
	if spec.Writable {
		b.WriteByte('w')
	}
	if b.Len() == 0 {
		return "-"
	}
	return b.String()
}

func (m *inspectorModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Property Inspector"))
	b.WriteString("\n\n")

	switch m.state {
	case stateSelectObject:
		if len(m.objects) == 0 {
			b.WriteString("No objects registered.\n")
			break
		}
		b.WriteString("Select an object:\n\n")
		for i, o := range m.objects {
			line := objStyle.Render(o.name)
			if i == m.selected {
				b.WriteString(selectedStyle.Render("> " + o.name))
			} else {
				b.WriteString("  " + line)
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("↑/↓ select • enter inspect • q quit"))

	case stateViewProps:
		b.WriteString(objStyle.Render(m.current.name))
		b.WriteString("  ")
		b.WriteString(m.filter.View())
		b.WriteString("\n\n")

		if _, ok := m.current.ref.Object(); !ok {
			b.WriteString(errorStyle.Render("object released"))
			b.WriteString("\n")
		}
		for _, row := range m.rows {
			b.WriteString(fmt.Sprintf("  %-14s %-8s %-3s ",
				row.name, kindStyle.Render(fmt.Sprintf("%-8s", row.kind)), row.caps))
			if row.failed {
				b.WriteString(errorStyle.Render(row.value))
			} else {
				b.WriteString(valueStyle.Render(row.value))
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("/ filter • esc back • q quit"))
	}

	return b.String()
}

func runInteractive(reg *object.Registry, demo *pipeline.Demo) error {
	p := tea.NewProgram(newInspectorModel(reg, demo), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
