package login

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	authdto "fitfusion/internal/modules/auth/dto"
	"fitfusion/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type AuthPort interface {
	Login(ctx context.Context, input authdto.LoginInput) (authdto.IdentityOutput, error)
	Register(ctx context.Context, input authdto.RegisterInput) (authdto.IdentityOutput, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

// AuthenticatedMsg bubbles to the app model, which resolves the start route
// from the identity's role.
type AuthenticatedMsg struct {
	Identity authdto.IdentityOutput
	Err      error
}

// ─── model ───────────────────────────────────────────────────────────────────

type field int

const (
	fieldName field = iota
	fieldEmail
	fieldPassword
	fieldCount
)

type Model struct {
	port AuthPort

	name     textinput.Model
	email    textinput.Model
	password textinput.Model
	focused  field

	registering bool
	submitting  bool
	spinner     spinner.Model
	formError   string
	width       int
	height      int
}

func New(port AuthPort) Model {
	name := textinput.New()
	name.Placeholder = "name"
	name.CharLimit = 120

	email := textinput.New()
	email.Placeholder = "email"
	email.CharLimit = 254
	email.Focus()

	password := textinput.New()
	password.Placeholder = "password"
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'
	password.CharLimit = 128

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Mint)

	return Model{
		port:     port,
		name:     name,
		email:    email,
		password: password,
		focused:  fieldEmail,
		spinner:  sp,
	}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case AuthenticatedMsg:
		m.submitting = false
		if msg.Err != nil {
			m.formError = msg.Err.Error()
		} else {
			m.password.SetValue("")
			m.formError = ""
		}

	case spinner.TickMsg:
		if m.submitting {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}

	case tea.KeyMsg:
		if m.submitting {
			return m, nil
		}
		switch msg.String() {
		case "tab", "down":
			m.cycleFocus(1)
			return m, nil
		case "shift+tab", "up":
			m.cycleFocus(-1)
			return m, nil
		case "ctrl+r":
			m.registering = !m.registering
			m.formError = ""
			if !m.registering && m.focused == fieldName {
				m.cycleFocus(1)
			}
			return m, nil
		case "enter":
			return m.submit()
		}
	}

	var cmd tea.Cmd
	switch m.focused {
	case fieldName:
		m.name, cmd = m.name.Update(msg)
	case fieldEmail:
		m.email, cmd = m.email.Update(msg)
	case fieldPassword:
		m.password, cmd = m.password.Update(msg)
	}
	return m, cmd
}

// submit validates locally before anything leaves the process. A failed
// validation never produces a request.
func (m Model) submit() (Model, tea.Cmd) {
	name := strings.TrimSpace(m.name.Value())
	email := strings.TrimSpace(m.email.Value())
	password := m.password.Value()

	if m.registering && name == "" {
		m.formError = "name is required"
		return m, nil
	}
	if email == "" || password == "" {
		m.formError = "email and password are required"
		return m, nil
	}

	m.submitting = true
	m.formError = ""
	registering := m.registering
	port := m.port
	return m, tea.Batch(m.spinner.Tick, func() tea.Msg {
		if registering {
			identity, err := port.Register(context.Background(), authdto.RegisterInput{
				Name: name, Email: email, Password: password,
			})
			return AuthenticatedMsg{Identity: identity, Err: err}
		}
		identity, err := port.Login(context.Background(), authdto.LoginInput{
			Email: email, Password: password,
		})
		return AuthenticatedMsg{Identity: identity, Err: err}
	})
}

func (m *Model) cycleFocus(delta int) {
	first := fieldEmail
	if m.registering {
		first = fieldName
	}
	m.name.Blur()
	m.email.Blur()
	m.password.Blur()

	next := m.focused + field(delta)
	if next < first {
		next = fieldPassword
	}
	if next >= fieldCount {
		next = first
	}
	m.focused = next

	switch m.focused {
	case fieldName:
		m.name.Focus()
	case fieldEmail:
		m.email.Focus()
	case fieldPassword:
		m.password.Focus()
	}
}

func (m Model) View() string {
	title := "Sign in"
	action := "ctrl+r: create an account"
	if m.registering {
		title = "Create account"
		action = "ctrl+r: back to sign in"
	}

	var sb strings.Builder
	sb.WriteString(theme.Title.Render("FitFusion · "+title) + "\n\n")
	if m.registering {
		sb.WriteString(m.name.View() + "\n")
	}
	sb.WriteString(m.email.View() + "\n")
	sb.WriteString(m.password.View() + "\n\n")

	switch {
	case m.submitting:
		sb.WriteString(m.spinner.View() + " signing in…\n")
	case m.formError != "":
		sb.WriteString(theme.Bad.Render(m.formError) + "\n")
	default:
		sb.WriteString("\n")
	}
	sb.WriteString("\n" + theme.Muted.Render("enter: submit   "+action))

	form := theme.PaneActive.Width(48).Render(sb.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, form)
}
