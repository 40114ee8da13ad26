// Package tui provides a bubbletea browser over stored analyses: a
// list of saved reports with a detail pane showing per-test statuses
// and findings.
package tui

import (
	"context"
	"fmt"

	"github.com/Rekha-shivaraj/Lab-report-digitization/internal/cli"
	"github.com/Rekha-shivaraj/Lab-report-digitization/internal/model"
	"github.com/Rekha-shivaraj/Lab-report-digitization/internal/service"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// state tracks which pane has focus.
type state int

const (
	stateList state = iota
	stateDetail
)

// Config configures the review browser.
type Config struct {
	Storage service.Storage
	Limit   int
}

// item adapts an analysis record to the bubbles list.
type item struct {
	record model.AnalysisRecord
}

func (i item) Title() string {
	source := i.record.Source
	if source == "" {
		source = i.record.ID
	}
	return fmt.Sprintf("%s  %s", i.record.CreatedAt.Format("2006-01-02 15:04"), source)
}

func (i item) Description() string {
	return fmt.Sprintf("%s · %d values · %d findings",
		i.record.Result.ReportType,
		len(i.record.Result.Values),
		len(i.record.Result.Findings))
}

func (i item) FilterValue() string {
	return i.record.Source + " " + string(i.record.Result.ReportType)
}

// Model holds the review browser state.
type Model struct {
	storage  service.Storage
	lastErr  error
	keys     KeyMap
	list     list.Model
	viewport viewport.Model
	help     help.Model
	limit    int
	width    int
	height   int
	state    state
	ready    bool
	quitting bool
}

type recordsLoadedMsg struct {
	records []model.AnalysisRecord
	err     error
}

type recordDeletedMsg struct {
	id  string
	err error
}

func newModel(cfg Config) Model {
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.Foreground(cli.PrimaryColor).BorderLeftForeground(cli.PrimaryColor)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.Foreground(cli.SubtleColor).BorderLeftForeground(cli.PrimaryColor)

	l := list.New(nil, delegate, 0, 0)
	l.Title = "Stored Analyses"
	l.SetShowHelp(false)

	return Model{
		storage: cfg.Storage,
		limit:   cfg.Limit,
		keys:    DefaultKeyMap(),
		list:    l,
		help:    help.New(),
		state:   stateList,
	}
}

// Init loads the stored analyses.
func (m Model) Init() tea.Cmd {
	return m.loadRecords
}

func (m Model) loadRecords() tea.Msg {
	records, err := m.storage.ListAnalyses(context.Background(), service.AnalysisFilter{Limit: m.limit})
	return recordsLoadedMsg{records: records, err: err}
}

func (m Model) deleteRecord(id string) tea.Cmd {
	return func() tea.Msg {
		err := m.storage.DeleteAnalysis(context.Background(), id)
		return recordDeletedMsg{id: id, err: err}
	}
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetSize(msg.Width, msg.Height-3)
		m.viewport = viewport.New(msg.Width, msg.Height-3)
		m.ready = true
		return m, nil

	case recordsLoadedMsg:
		m.lastErr = msg.err
		items := make([]list.Item, 0, len(msg.records))
		for _, record := range msg.records {
			items = append(items, item{record: record})
		}
		return m, m.list.SetItems(items)

	case recordDeletedMsg:
		m.lastErr = msg.err
		if msg.err == nil {
			return m, m.loadRecords
		}
		return m, nil

	case tea.KeyMsg:
		// Let the list's filter input swallow keys while active.
		if m.state == stateList && m.list.FilterState() == list.Filtering {
			break
		}

		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Open):
			if m.state == stateList {
				if selected, ok := m.list.SelectedItem().(item); ok {
					m.state = stateDetail
					m.viewport.SetContent(renderDetail(selected.record))
					m.viewport.GotoTop()
				}
				return m, nil
			}

		case key.Matches(msg, m.keys.Back):
			if m.state == stateDetail {
				m.state = stateList
				return m, nil
			}

		case key.Matches(msg, m.keys.Delete):
			if m.state == stateList {
				if selected, ok := m.list.SelectedItem().(item); ok {
					return m, m.deleteRecord(selected.record.ID)
				}
				return m, nil
			}

		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}
	}

	var cmd tea.Cmd
	switch m.state {
	case stateList:
		m.list, cmd = m.list.Update(msg)
	case stateDetail:
		m.viewport, cmd = m.viewport.Update(msg)
	}
	return m, cmd
}

// View renders the browser.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "Loading..."
	}

	var body string
	switch m.state {
	case stateDetail:
		body = m.viewport.View()
	default:
		body = m.list.View()
	}

	status := m.help.View(m.keys)
	if m.lastErr != nil {
		status = cli.HighStyle.Render("error: "+m.lastErr.Error()) + "  " + status
	}

	return lipgloss.JoinVertical(lipgloss.Left, body, status)
}

func renderDetail(record model.AnalysisRecord) string {
	header := cli.SubtitleStyle.Render(fmt.Sprintf("%s · %s · %s",
		record.ID,
		record.Source,
		record.CreatedAt.Format("2006-01-02 15:04")))
	return header + "\n" + cli.RenderAnalysis(&record.Result)
}
