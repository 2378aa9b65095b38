package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

// returns a new chat application model
func NewApp() *Model {
	ti := textinput.New()
	ti.Placeholder = "ask about a project or technology..."
	ti.Focus()
	ti.CharLimit = 0
	ti.Width = 80
	ti.Prompt = "> "
	ti.PromptStyle = lipgloss.NewStyle().Foreground(colorLightGray)
	ti.TextStyle = lipgloss.NewStyle().Foreground(colorWhite)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(colorGray)

	return &Model{
		input:   ti,
		spinner: sp,
		history: []Message{},
		client:  NewChatClient(),
	}
}

func (m *Model) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "ctrl+l":
			m.history = []Message{}
			m.transcript = nil
			m.isFetching = false
			m.viewport.SetContent("")
			return m, nil

		case "enter":
			query := strings.TrimSpace(m.input.Value())
			if query == "" || m.isFetching {
				return m, nil
			}

			m.isFetching = true
			m.input.SetValue("")
			m.appendTranscript(userStyle.Render("you: ") + query)

			// "overview" is handled client-side: list the portfolio
			// instead of asking the assistant
			if strings.EqualFold(query, "overview") {
				return m, tea.Batch(m.client.OverviewCmd(), m.spinner.Tick)
			}

			m.history = append(m.history, Message{Role: "user", Content: query})

			return m, tea.Batch(m.client.SendCmd(query, m.history), m.spinner.Tick)
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = msg.Width - 10

		viewportHeight := msg.Height - 8

		if !m.ready {
			m.viewport = viewport.New(msg.Width-4, viewportHeight)
			m.glamourRenderer, _ = glamour.NewTermRenderer( //nolint:errcheck
				glamour.WithAutoStyle(),
				glamour.WithWordWrap(msg.Width-8),
			)
			m.ready = true
			m.refreshViewport()
		} else {
			m.viewport.Width = msg.Width - 4
			m.viewport.Height = viewportHeight
		}

	case ChatResponseMsg:
		m.isFetching = false
		m.history = append(m.history, Message{Role: "assistant", Content: msg.message})
		m.appendTranscript(m.renderReply(msg))
		m.input.Focus()
		return m, nil

	case OverviewMsg:
		m.isFetching = false
		m.appendTranscript(m.renderOverview(msg))
		m.input.Focus()
		return m, nil

	case ChatErrorMsg:
		m.isFetching = false
		m.appendTranscript(errorStyle.Render(fmt.Sprintf("error: %v", msg.err)))
		m.input.Focus()
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)

		if m.isFetching {
			cmds = append(cmds, cmd)
		}
	}

	var inputCmd, viewportCmd tea.Cmd
	m.input, inputCmd = m.input.Update(msg)
	m.viewport, viewportCmd = m.viewport.Update(msg)
	cmds = append(cmds, inputCmd, viewportCmd)

	return m, tea.Batch(cmds...)
}

func (m *Model) View() string {
	if !m.ready {
		return "\n  loading..."
	}

	var b strings.Builder

	header := headerStyle.Render("PORTFOLIO ASSISTANT")
	help := helpStyle.Render("[Enter: Send] [Ctrl+L: Clear] [Ctrl+C: Exit]")

	padding := m.width - lipgloss.Width(header) - lipgloss.Width(help) - 2
	if padding < 0 {
		padding = 0
	}

	b.WriteString(header + strings.Repeat(" ", padding) + help)
	b.WriteString("\n\n")

	b.WriteString(borderStyle.Width(m.width - 4).Render(m.viewport.View()))
	b.WriteString("\n")

	inputBox := borderStyle.
		Width(m.width - 4).
		Padding(0, 1).
		Render(m.input.View())

	b.WriteString(inputBox)
	b.WriteString("\n")

	if m.isFetching {
		b.WriteString(statusStyle.Render(m.spinner.View() + " thinking..."))
	}

	return b.String()
}

// renders one assistant reply: markdown body, then media link and
// suggestions as dim footer lines
func (m *Model) renderReply(msg ChatResponseMsg) string {
	body := msg.message

	if m.glamourRenderer != nil {
		if rendered, err := m.glamourRenderer.Render(msg.message); err == nil {
			body = strings.TrimRight(rendered, "\n")
		}
	}

	var b strings.Builder
	b.WriteString(body)

	if msg.media != "" {
		b.WriteString("\n" + suggestionStyle.Render(msg.media))
	}

	for _, s := range msg.suggestions {
		b.WriteString("\n" + suggestionStyle.Render(s))
	}

	if msg.cached {
		b.WriteString("\n" + statusStyle.Render("(cached)"))
	}

	return b.String()
}

// renders the portfolio overview as a markdown list
func (m *Model) renderOverview(msg OverviewMsg) string {
	if len(msg.projects) == 0 {
		return "no projects yet"
	}

	var md strings.Builder
	md.WriteString("## Portfolio\n\n")

	for _, p := range msg.projects {
		md.WriteString(fmt.Sprintf("- **%s** - %s", p.Title, p.Description))

		if p.DemoURL != "" {
			md.WriteString(fmt.Sprintf(" (%s)", p.DemoURL))
		}

		md.WriteString("\n")
	}

	body := md.String()

	if m.glamourRenderer != nil {
		if rendered, err := m.glamourRenderer.Render(body); err == nil {
			body = strings.TrimRight(rendered, "\n")
		}
	}

	return body
}

func (m *Model) appendTranscript(entry string) {
	m.transcript = append(m.transcript, entry)
	m.refreshViewport()
}

func (m *Model) refreshViewport() {
	if !m.ready {
		return
	}

	content := logo

	if len(m.transcript) > 0 {
		content = strings.Join(m.transcript, "\n\n")
	}

	m.viewport.SetContent(content)
	m.viewport.GotoBottom()
}
