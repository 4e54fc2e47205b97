package admin

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	admindomain "fitfusion/internal/modules/admin/domain"
	"fitfusion/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type AdminPort interface {
	Stats(ctx context.Context) (admindomain.DashboardStats, error)
	Engagement(ctx context.Context) (admindomain.Engagement, error)
	ListUsers(ctx context.Context) ([]admindomain.User, error)
	RAGStatus(ctx context.Context) (admindomain.RAGStatus, error)
	Reindex(ctx context.Context, mode string) (admindomain.ReindexResult, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

type OverviewLoadedMsg struct {
	Stats      admindomain.DashboardStats
	Engagement admindomain.Engagement
	Err        error
}

type UsersLoadedMsg struct {
	Users []admindomain.User
	Err   error
}

type RAGLoadedMsg struct {
	Status admindomain.RAGStatus
	Err    error
}

type ReindexDoneMsg struct {
	Result admindomain.ReindexResult
	Err    error
}

// ─── model ───────────────────────────────────────────────────────────────────

type section int

const (
	sectionOverview section = iota
	sectionUsers
	sectionRAG
)

type Model struct {
	port AdminPort

	section    section
	stats      admindomain.DashboardStats
	engagement admindomain.Engagement
	users      []admindomain.User
	userCursor int
	rag        admindomain.RAGStatus
	spinner    spinner.Model
	loading    bool
	status     string
	width      int
	height     int
}

func New(port AdminPort) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Mint)
	return Model{port: port, spinner: sp}
}

func (m Model) Init() tea.Cmd {
	return m.spinner.Tick
}

// Load refreshes every admin section.
func (m *Model) Load() tea.Cmd {
	m.loading = true
	m.status = ""
	return tea.Batch(m.loadOverviewCmd(), m.loadUsersCmd(), m.loadRAGCmd(), m.spinner.Tick)
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case OverviewLoadedMsg:
		m.loading = false
		if msg.Err != nil {
			m.status = msg.Err.Error()
			return m, nil
		}
		m.stats = msg.Stats
		m.engagement = msg.Engagement

	case UsersLoadedMsg:
		if msg.Err != nil {
			m.status = msg.Err.Error()
			return m, nil
		}
		m.users = msg.Users
		if m.userCursor >= len(m.users) {
			m.userCursor = 0
		}

	case RAGLoadedMsg:
		if msg.Err != nil {
			m.status = msg.Err.Error()
			return m, nil
		}
		m.rag = msg.Status

	case ReindexDoneMsg:
		if msg.Err != nil {
			m.status = msg.Err.Error()
			return m, nil
		}
		m.status = "reindex: " + msg.Result.Status
		return m, m.loadRAGCmd()

	case spinner.TickMsg:
		if m.loading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}

	case tea.KeyMsg:
		switch msg.String() {
		case "o":
			m.section = sectionOverview
		case "u":
			m.section = sectionUsers
		case "g":
			m.section = sectionRAG
		case "up":
			if m.section == sectionUsers && m.userCursor > 0 {
				m.userCursor--
			}
		case "down":
			if m.section == sectionUsers && m.userCursor < len(m.users)-1 {
				m.userCursor++
			}
		case "r":
			if m.section == sectionRAG {
				m.status = "reindex requested…"
				return m, m.reindexCmd(admindomain.ReindexFull)
			}
		case "i":
			if m.section == sectionRAG {
				m.status = "incremental reindex requested…"
				return m, m.reindexCmd(admindomain.ReindexIncremental)
			}
		}
	}
	return m, nil
}

// SelectedUserID returns the highlighted account, if any. The app model
// uses it for palette commands that target a user.
func (m Model) SelectedUserID() (int64, bool) {
	if m.section != sectionUsers || m.userCursor >= len(m.users) {
		return 0, false
	}
	return m.users[m.userCursor].ID, true
}

func (m Model) View() string {
	if m.loading {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			m.spinner.View()+" Loading admin data…")
	}

	var body string
	switch m.section {
	case sectionOverview:
		body = m.renderOverview()
	case sectionUsers:
		body = m.renderUsers()
	case sectionRAG:
		body = m.renderRAG()
	}

	header := m.renderSectionBar()
	out := lipgloss.JoinVertical(lipgloss.Left, header, theme.Pane.Width(m.width-4).Render(body))
	if m.status != "" {
		out = lipgloss.JoinVertical(lipgloss.Left, out, theme.Hot.Render(m.status))
	}
	return out
}

func (m Model) renderSectionBar() string {
	labels := []string{"o: Overview", "u: Users", "g: RAG"}
	for i, label := range labels {
		if section(i) == m.section {
			labels[i] = theme.Hot.Render(label)
		} else {
			labels[i] = theme.Muted.Render(label)
		}
	}
	return strings.Join(labels, theme.Muted.Render("  │  "))
}

func (m Model) renderOverview() string {
	var sb strings.Builder
	sb.WriteString(theme.Title.Render("Totals") + "\n\n")
	sb.WriteString(fmt.Sprintf("%-16s %d\n", "Users", m.stats.TotalUsers))
	sb.WriteString(fmt.Sprintf("%-16s %d\n", "Exercises", m.stats.TotalExercises))
	sb.WriteString(fmt.Sprintf("%-16s %d\n", "Food items", m.stats.TotalFoodItems))
	sb.WriteString(fmt.Sprintf("%-16s %d\n", "Plans", m.stats.TotalPlans))
	sb.WriteString(fmt.Sprintf("%-16s %d\n", "Completions", m.stats.TotalCompletions))

	if len(m.stats.ExercisesByMuscleGroup) > 0 {
		sb.WriteString("\n" + theme.Title.Render("Exercises by muscle group") + "\n\n")
		groups := make([]string, 0, len(m.stats.ExercisesByMuscleGroup))
		for g := range m.stats.ExercisesByMuscleGroup {
			groups = append(groups, g)
		}
		sort.Strings(groups)
		for _, g := range groups {
			count := m.stats.ExercisesByMuscleGroup[g]
			sb.WriteString(fmt.Sprintf("%-16s %s %d\n", g, theme.Good.Render(strings.Repeat("▪", int(min64(count, 30)))), count))
		}
	}

	sb.WriteString("\n" + theme.Title.Render("Engagement") + "\n\n")
	sb.WriteString(fmt.Sprintf("%-16s %d\n", "With plans", m.engagement.UsersWithPlans))
	sb.WriteString(fmt.Sprintf("%-16s %d\n", "Active", m.engagement.ActiveUsers))
	sb.WriteString(fmt.Sprintf("%-16s %.1f%%\n", "Rate", m.engagement.EngagementRate))
	return sb.String()
}

func (m Model) renderUsers() string {
	var sb strings.Builder
	sb.WriteString(theme.Title.Render("Accounts") + "\n\n")
	if len(m.users) == 0 {
		sb.WriteString(theme.Muted.Render("No users loaded."))
		return sb.String()
	}
	for i, u := range m.users {
		cursor := "  "
		if i == m.userCursor {
			cursor = theme.Hot.Render("> ")
		}
		role := theme.Muted.Render(u.Role)
		if u.Role == "ADMIN" {
			role = theme.Hot.Render(u.Role)
		}
		sb.WriteString(fmt.Sprintf("%s#%-5d %-24s %-30s %s\n", cursor, u.ID, u.Name, u.Email, role))
	}
	sb.WriteString("\n" + theme.Muted.Render("palette: admin:role <id> <USER|ADMIN>"))
	return sb.String()
}

func (m Model) renderRAG() string {
	var sb strings.Builder
	sb.WriteString(theme.Title.Render("RAG Service") + "\n\n")
	health := theme.Bad.Render(m.rag.Status)
	if m.rag.Status == "healthy" {
		health = theme.Good.Render(m.rag.Status)
	}
	if m.rag.Status == "" {
		health = theme.Muted.Render("unknown")
	}
	sb.WriteString(fmt.Sprintf("%-16s %s\n", "Status", health))
	sb.WriteString(fmt.Sprintf("%-16s %d\n", "Vectors", m.rag.VectorCount))
	last := m.rag.LastIndexedAt
	if last == "" {
		last = "never"
	}
	sb.WriteString(fmt.Sprintf("%-16s %s\n", "Last indexed", last))
	sb.WriteString("\n" + theme.Muted.Render("r: full reindex   i: incremental reindex"))
	return sb.String()
}

// ─── async commands ───────────────────────────────────────────────────────────

func (m Model) loadOverviewCmd() tea.Cmd {
	port := m.port
	return func() tea.Msg {
		stats, err := port.Stats(context.Background())
		if err != nil {
			return OverviewLoadedMsg{Err: err}
		}
		engagement, err := port.Engagement(context.Background())
		return OverviewLoadedMsg{Stats: stats, Engagement: engagement, Err: err}
	}
}

func (m Model) loadUsersCmd() tea.Cmd {
	port := m.port
	return func() tea.Msg {
		users, err := port.ListUsers(context.Background())
		return UsersLoadedMsg{Users: users, Err: err}
	}
}

func (m Model) loadRAGCmd() tea.Cmd {
	port := m.port
	return func() tea.Msg {
		status, err := port.RAGStatus(context.Background())
		return RAGLoadedMsg{Status: status, Err: err}
	}
}

func (m Model) reindexCmd(mode string) tea.Cmd {
	port := m.port
	return func() tea.Msg {
		result, err := port.Reindex(context.Background(), mode)
		return ReindexDoneMsg{Result: result, Err: err}
	}
}

func min64(a int64, b int64) int64 {
	if a < b {
		return a
	}
	return b
}
