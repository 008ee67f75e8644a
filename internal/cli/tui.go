package cli

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/cipherchat/cipherchat/pkg/chat"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)

	msgSenderStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	msgLockStyle   = lipgloss.NewStyle().Foreground(colorYellow)
	msgErrStyle    = lipgloss.NewStyle().Foreground(colorRed)
	composeStyle   = lipgloss.NewStyle().Foreground(colorWhite)
)

// =============================================================================
// chat command
// =============================================================================

// chatCommand creates the chat command that launches the interactive TUI.
func (c *CLI) chatCommand() *cobra.Command {
	var (
		user   string
		scheme string
		key    string
		shift  int
	)

	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Open the interactive chat",
		Long: `Open the interactive chat: a list of your conversations, a message
view, and a compose line. Messages are sent with the selected scheme;
XOR messages are only readable when the matching --key is given.

Keys:
  ↑/↓ or j/k   move            ⏎  open chat / send message
  n            new chat        esc back    q / ctrl+c quit`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			s, err := c.resolveShift(shift)
			if err != nil {
				return err
			}

			repo, err := c.newRepository(ctx)
			if err != nil {
				return err
			}
			defer repo.Close()

			model := NewChatModel(ctx, chat.NewService(repo), ChatOptions{
				Username: c.username(user),
				Scheme:   scheme,
				Key:      key,
				Shift:    s,
			})

			p := tea.NewProgram(model, tea.WithAltScreen())
			_, err = p.Run()
			return err
		},
	}

	cmd.Flags().StringVarP(&user, "user", "u", "", "your username (default from config)")
	cmd.Flags().StringVar(&scheme, "scheme", chat.SchemePlain, "message scheme: plain, caesar, xor")
	cmd.Flags().StringVarP(&key, "key", "k", "", "XOR key for sending and reading")
	cmd.Flags().IntVarP(&shift, "shift", "s", 0, "Caesar shift (default from config)")
	return cmd
}

// =============================================================================
// ChatModel - Interactive chat
// =============================================================================

// TUI view modes.
const (
	modeList = iota
	modeConversation
	modeNewChat
)

// ChatOptions configures the identity and send scheme for the TUI session.
type ChatOptions struct {
	Username string
	Scheme   string
	Key      string
	Shift    int
}

// Messages delivered by tea.Cmd closures.
type (
	chatsLoadedMsg    []chat.Chat
	messagesLoadedMsg []chat.Message
	messageSentMsg    struct{}
	chatCreatedMsg    chat.Chat
	tuiErrMsg         struct{ err error }
)

// ChatModel is the bubbletea model for the chat TUI.
type ChatModel struct {
	ctx  context.Context
	svc  *chat.Service
	opts ChatOptions

	mode   int
	chats  []chat.Chat
	cursor int
	offset int
	height int

	active   chat.Chat
	messages []chat.Message

	input string
	err   error
}

// NewChatModel creates a chat TUI model for the given service and identity.
func NewChatModel(ctx context.Context, svc *chat.Service, opts ChatOptions) ChatModel {
	if opts.Scheme == "" {
		opts.Scheme = chat.SchemePlain
	}
	return ChatModel{
		ctx:    ctx,
		svc:    svc,
		opts:   opts,
		height: 15,
	}
}

func (m ChatModel) Init() tea.Cmd {
	return m.loadChats()
}

// =============================================================================
// Commands (I/O wrapped as tea.Cmd)
// =============================================================================

func (m ChatModel) loadChats() tea.Cmd {
	return func() tea.Msg {
		chats, err := m.svc.Chats(m.ctx, m.opts.Username)
		if err != nil {
			return tuiErrMsg{err}
		}
		return chatsLoadedMsg(chats)
	}
}

func (m ChatModel) loadMessages(chatID string) tea.Cmd {
	return func() tea.Msg {
		msgs, err := m.svc.Messages(m.ctx, chatID, m.opts.Key)
		if err != nil {
			return tuiErrMsg{err}
		}
		return messagesLoadedMsg(msgs)
	}
}

func (m ChatModel) sendMessage(body string) tea.Cmd {
	return func() tea.Msg {
		_, err := m.svc.Send(m.ctx, chat.SendInput{
			ChatID: m.active.ID,
			Sender: m.opts.Username,
			Body:   body,
			Scheme: m.opts.Scheme,
			Shift:  m.opts.Shift,
			Key:    m.opts.Key,
		})
		if err != nil {
			return tuiErrMsg{err}
		}
		return messageSentMsg{}
	}
}

func (m ChatModel) createChat(peer string) tea.Cmd {
	return func() tea.Msg {
		c, err := m.svc.CreateChat(m.ctx, []string{m.opts.Username, peer})
		if err != nil {
			return tuiErrMsg{err}
		}
		return chatCreatedMsg(*c)
	}
}

// =============================================================================
// Update
// =============================================================================

func (m ChatModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case chatsLoadedMsg:
		m.chats = msg
		if m.cursor >= len(m.chats) {
			m.cursor = 0
		}
		return m, nil
	case messagesLoadedMsg:
		m.messages = msg
		return m, nil
	case messageSentMsg:
		return m, m.loadMessages(m.active.ID)
	case chatCreatedMsg:
		m.mode = modeConversation
		m.active = chat.Chat(msg)
		m.messages = nil
		m.input = ""
		return m, m.loadChats()
	case tuiErrMsg:
		m.err = msg.err
		return m, nil
	case tea.WindowSizeMsg:
		m.height = msg.Height - 6
		if m.height < 5 {
			m.height = 5
		}
		return m, nil
	case tea.KeyMsg:
		return m.updateKey(msg)
	}
	return m, nil
}

func (m ChatModel) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}
	m.err = nil

	switch m.mode {
	case modeList:
		return m.updateList(msg)
	case modeConversation:
		return m.updateConversation(msg)
	case modeNewChat:
		return m.updateNewChat(msg)
	}
	return m, nil
}

func (m ChatModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
			if m.cursor < m.offset {
				m.offset = m.cursor
			}
		}
	case "down", "j":
		if m.cursor < len(m.chats)-1 {
			m.cursor++
			if m.cursor >= m.offset+m.height {
				m.offset = m.cursor - m.height + 1
			}
		}
	case "n":
		m.mode = modeNewChat
		m.input = ""
	case "enter":
		if len(m.chats) == 0 {
			return m, nil
		}
		m.mode = modeConversation
		m.active = m.chats[m.cursor]
		m.messages = nil
		m.input = ""
		return m, m.loadMessages(m.active.ID)
	}
	return m, nil
}

func (m ChatModel) updateConversation(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.mode = modeList
		return m, m.loadChats()
	case tea.KeyEnter:
		body := strings.TrimSpace(m.input)
		if body == "" {
			return m, nil
		}
		m.input = ""
		return m, m.sendMessage(body)
	case tea.KeyBackspace:
		if len(m.input) > 0 {
			r := []rune(m.input)
			m.input = string(r[:len(r)-1])
		}
	case tea.KeySpace:
		m.input += " "
	case tea.KeyRunes:
		m.input += string(msg.Runes)
	}
	return m, nil
}

func (m ChatModel) updateNewChat(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.mode = modeList
		m.input = ""
	case tea.KeyEnter:
		peer := strings.TrimSpace(m.input)
		if peer == "" {
			return m, nil
		}
		return m, m.createChat(peer)
	case tea.KeyBackspace:
		if len(m.input) > 0 {
			r := []rune(m.input)
			m.input = string(r[:len(r)-1])
		}
	case tea.KeyRunes:
		m.input += string(msg.Runes)
	}
	return m, nil
}

// =============================================================================
// View
// =============================================================================

func (m ChatModel) View() string {
	switch m.mode {
	case modeConversation:
		return m.viewConversation()
	case modeNewChat:
		return m.viewNewChat()
	}
	return m.viewList()
}

func (m ChatModel) viewList() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Chats"))
	b.WriteString(listDimStyle.Render("  (" + m.opts.Username + ")"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ open  n new  q quit"))
	b.WriteString("\n\n")

	if len(m.chats) == 0 {
		b.WriteString(listDimStyle.Render("No chats yet. Press n to start one."))
		b.WriteString("\n")
	}

	end := m.offset + m.height
	if end > len(m.chats) {
		end = len(m.chats)
	}
	for i := m.offset; i < end; i++ {
		c := m.chats[i]
		line := strings.Join(c.Participants, ", ")
		if i == m.cursor {
			b.WriteString(listSelectedStyle.Render("▸ " + line))
		} else {
			b.WriteString(listNormalStyle.Render("  " + line))
		}
		b.WriteString("\n")
	}

	b.WriteString(m.viewErr())
	return b.String()
}

func (m ChatModel) viewConversation() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(strings.Join(m.active.Participants, ", ")))
	b.WriteString(listDimStyle.Render("  scheme: " + m.opts.Scheme))
	b.WriteString("\n\n")

	start := 0
	if len(m.messages) > m.height {
		start = len(m.messages) - m.height
	}
	for _, msg := range m.messages[start:] {
		b.WriteString(msgSenderStyle.Render(msg.SenderID + ":"))
		b.WriteString(" ")
		b.WriteString(msg.Body)
		if msg.Encrypted {
			b.WriteString(" " + msgLockStyle.Render("🔒"))
		}
		b.WriteString("\n")
	}
	if len(m.messages) == 0 {
		b.WriteString(listDimStyle.Render("No messages yet."))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(composeStyle.Render("> " + m.input + "▌"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("⏎ send  esc back"))
	b.WriteString(m.viewErr())
	return b.String()
}

func (m ChatModel) viewNewChat() string {
	var b strings.Builder
	b.WriteString(StyleTitle.Render("New chat"))
	b.WriteString("\n\n")
	b.WriteString("Chat with: " + composeStyle.Render(m.input+"▌"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("⏎ create  esc cancel"))
	b.WriteString(m.viewErr())
	return b.String()
}

func (m ChatModel) viewErr() string {
	if m.err == nil {
		return ""
	}
	return "\n" + msgErrStyle.Render(fmt.Sprintf("error: %v", m.err))
}
