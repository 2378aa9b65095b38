package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/glamour"
)

// represents a chat message in the conversation
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// main TUI application model: a scrollback viewport over the
// conversation with a single-line prompt below it
type Model struct {
	input           textinput.Model
	viewport        viewport.Model
	spinner         spinner.Model
	width           int
	height          int
	history         []Message
	transcript      []string
	isFetching      bool
	ready           bool
	glamourRenderer *glamour.TermRenderer
	client          *ChatClient
}

// sent when the assistant replies
type ChatResponseMsg struct {
	userQuery   string
	message     string
	media       string
	suggestions []string
	cached      bool
}

// sent when the overview listing arrives
type OverviewMsg struct {
	projects []overviewProject
}

// sent when a chat request fails
type ChatErrorMsg struct {
	userQuery string
	err       error
}

// timeout for chat requests
const chatRequestTimeout = 60 * time.Second
