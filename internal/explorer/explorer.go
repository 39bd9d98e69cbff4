// Package explorer is an interactive terminal front end: type a vehicle
// number, press Enter, and see its records as a table and a plot.
package explorer

import (
	"context"
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/fuelview/fuelview/internal/dataset"
	"github.com/fuelview/fuelview/internal/model"
	"github.com/fuelview/fuelview/internal/render"
	"github.com/fuelview/fuelview/internal/selector"
)

const (
	title      = "KMPL vs Estimated Fuel Consumed Explorer"
	promptText = "Enter a vehicle number and press Enter to get started."
	helpText   = "enter: show • esc: clear • ctrl+c: quit"

	defaultPlotWidth  = 60
	defaultPlotHeight = 12
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("62")).
			Padding(0, 1)
	inputStyle = lipgloss.NewStyle().Bold(true)
	infoStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	errStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	helpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// Model is the bubbletea model of the explorer.
type Model struct {
	records *dataset.RecordSet
	opts    selector.Options

	input   string
	vehicle string // last submitted vehicle number
	results []model.FuelRecord
	width   int
}

// New creates an explorer over a loaded record set.
func New(records *dataset.RecordSet, opts selector.Options) Model {
	return Model{records: records, opts: opts}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC:
			return m, tea.Quit
		case tea.KeyEnter:
			m.submit()
		case tea.KeyEsc:
			m.input, m.vehicle, m.results = "", "", nil
		case tea.KeyBackspace:
			if r := []rune(m.input); len(r) > 0 {
				m.input = string(r[:len(r)-1])
			}
		case tea.KeyRunes, tea.KeySpace:
			typed := string(msg.Runes)
			if m.opts.CaseInsensitive {
				typed = strings.ToUpper(typed)
			}
			m.input += typed
		}
	}
	return m, nil
}

func (m *Model) submit() {
	m.vehicle = selector.NormalizeInput(m.input, m.opts.CaseInsensitive)
	m.results = selector.Query(m.records, m.vehicle, m.opts)
}

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "Vehicle Number: %s\n\n", inputStyle.Render(m.input+"_"))

	switch {
	case m.vehicle == "":
		b.WriteString(infoStyle.Render(promptText))
	case len(m.results) == 0:
		b.WriteString(errStyle.Render(fmt.Sprintf("No records found for vehicle %s.", m.vehicle)))
	default:
		b.WriteString(m.resultView())
	}

	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render(helpText))
	b.WriteString("\n")
	return b.String()
}

func (m Model) resultView() string {
	plotWidth := defaultPlotWidth
	if m.width > 20 && m.width-12 < plotWidth {
		plotWidth = m.width - 12
	}

	s := selector.Summarize(m.results)
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Render(render.ChartTitle(m.vehicle)))
	b.WriteString("\n\n")
	b.WriteString(render.Plot(m.results, plotWidth, defaultPlotHeight))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "%d records • mean KMPL %s • total consumed %s\n\n",
		s.Count, s.MeanKmpl.StringFixed(2), s.TotalConsumed.StringFixed(2))
	b.WriteString(render.Table(m.results))
	return b.String()
}

// Input returns the text typed so far.
func (m Model) Input() string { return m.input }

// Results returns the records of the last submitted vehicle.
func (m Model) Results() []model.FuelRecord { return m.results }

// Run starts the explorer on in/out until the user quits or ctx ends.
func Run(ctx context.Context, records *dataset.RecordSet, opts selector.Options, in io.Reader, out io.Writer) error {
	p := tea.NewProgram(New(records, opts),
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running explorer: %w", err)
	}
	return nil
}
