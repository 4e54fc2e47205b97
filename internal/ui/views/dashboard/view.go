package dashboard

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	plandomain "fitfusion/internal/modules/plan/domain"
	plandto "fitfusion/internal/modules/plan/dto"
	"fitfusion/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type PlanPort interface {
	List(ctx context.Context, userID int64, cached bool) (plandto.ListOutput, error)
	Stats(ctx context.Context, userID int64, period string) (plandomain.Stats, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

type StatsLoadedMsg struct {
	Stats plandomain.Stats
	Err   error
}

type PlansLoadedMsg struct {
	Out plandto.ListOutput
	Err error
}

// ─── model ───────────────────────────────────────────────────────────────────

type Model struct {
	port    PlanPort
	userID  int64
	stats   plandomain.Stats
	plans   plandto.ListOutput
	period  string
	spinner spinner.Model
	loading bool
	loadErr string
	width   int
	height  int
}

func New(port PlanPort) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Mint)
	return Model{port: port, period: "week", spinner: sp}
}

func (m Model) Init() tea.Cmd {
	return m.spinner.Tick
}

// Load starts a refresh for the given user. The app model calls it after
// login and on every switch to this tab.
func (m *Model) Load(userID int64) tea.Cmd {
	m.userID = userID
	m.loading = true
	m.loadErr = ""
	return tea.Batch(m.loadStatsCmd(), m.loadPlansCmd(), m.spinner.Tick)
}

// SetPeriod re-queries the stats window (week, month, all).
func (m *Model) SetPeriod(period string) tea.Cmd {
	m.period = period
	return m.loadStatsCmd()
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case StatsLoadedMsg:
		m.loading = false
		if msg.Err != nil {
			m.loadErr = msg.Err.Error()
			return m, nil
		}
		m.stats = msg.Stats

	case PlansLoadedMsg:
		m.loading = false
		if msg.Err != nil {
			m.loadErr = msg.Err.Error()
			return m, nil
		}
		m.plans = msg.Out

	case spinner.TickMsg:
		if m.loading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
	}
	return m, nil
}

func (m Model) View() string {
	if m.loading {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			m.spinner.View()+" Loading dashboard…")
	}

	statsPane := theme.Pane.Width(m.width/2 - 2).Render(m.renderStats())
	plansPane := theme.Pane.Width(m.width - m.width/2 - 2).Render(m.renderPlans())
	body := lipgloss.JoinHorizontal(lipgloss.Top, statsPane, plansPane)

	if m.loadErr != "" {
		body = lipgloss.JoinVertical(lipgloss.Left, body, theme.Bad.Render(m.loadErr))
	}
	return body
}

func (m Model) renderStats() string {
	var sb strings.Builder
	sb.WriteString(theme.Title.Render("This "+m.period) + "\n\n")
	sb.WriteString(fmt.Sprintf("%s  workouts completed\n", theme.Hot.Render(fmt.Sprintf("%4d", m.stats.WorkoutsCompleted))))
	sb.WriteString(fmt.Sprintf("%s  calories burned\n", theme.Hot.Render(fmt.Sprintf("%4d", m.stats.CaloriesBurned))))
	sb.WriteString(fmt.Sprintf("%s  minutes exercised\n", theme.Hot.Render(fmt.Sprintf("%4d", m.stats.MinutesExercised))))
	return sb.String()
}

func (m Model) renderPlans() string {
	var sb strings.Builder
	header := "Plans"
	if m.plans.Cached {
		header += theme.Muted.Render("  (offline copy)")
	}
	sb.WriteString(theme.Title.Render(header) + "\n\n")

	if len(m.plans.Bundles) == 0 {
		sb.WriteString(theme.Muted.Render("No plans yet. Complete the preference wizard to generate one."))
		return sb.String()
	}
	for _, b := range m.plans.Bundles {
		marker := theme.Muted.Render("○")
		if b.Status == plandomain.StatusActive {
			marker = theme.Good.Render("●")
		}
		line := fmt.Sprintf("%s  #%d  %-10s  started %s", marker, b.ID, b.Status, b.StartDate)
		sb.WriteString(line + "\n")
	}
	return sb.String()
}

// ─── async commands ───────────────────────────────────────────────────────────

func (m Model) loadStatsCmd() tea.Cmd {
	userID, period := m.userID, m.period
	port := m.port
	return func() tea.Msg {
		stats, err := port.Stats(context.Background(), userID, period)
		return StatsLoadedMsg{Stats: stats, Err: err}
	}
}

func (m Model) loadPlansCmd() tea.Cmd {
	userID := m.userID
	port := m.port
	return func() tea.Msg {
		out, err := port.List(context.Background(), userID, false)
		if err != nil {
			// Degrade to the local read-model before giving up.
			if cached, cerr := port.List(context.Background(), userID, true); cerr == nil && len(cached.Bundles) > 0 {
				return PlansLoadedMsg{Out: cached}
			}
			return PlansLoadedMsg{Err: err}
		}
		return PlansLoadedMsg{Out: out}
	}
}
