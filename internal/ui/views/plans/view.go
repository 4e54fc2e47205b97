package plans

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	plandomain "fitfusion/internal/modules/plan/domain"
	plandto "fitfusion/internal/modules/plan/dto"
	"fitfusion/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type PlanPort interface {
	List(ctx context.Context, userID int64, cached bool) (plandto.ListOutput, error)
	Get(ctx context.Context, bundleID int64) (plandto.BundleOutput, error)
	Completions(ctx context.Context, userID, bundleID int64) ([]plandomain.Completion, error)
	ToggleCompletion(ctx context.Context, userID int64, completion plandomain.Completion) (plandto.ToggleCompletionOutput, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

type ListLoadedMsg struct {
	Out plandto.ListOutput
	Err error
}

type DetailLoadedMsg struct {
	Bundle      plandomain.Bundle
	Completions []plandomain.Completion
	Err         error
}

type ToggledMsg struct {
	Key       plandomain.CompletionKey
	Completed bool
	Err       error
}

// ─── list item ───────────────────────────────────────────────────────────────

type bundleItem struct {
	bundle plandomain.Bundle
}

func (i bundleItem) Title() string { return fmt.Sprintf("Plan #%d", i.bundle.ID) }
func (i bundleItem) Description() string {
	return fmt.Sprintf("%s  started %s", i.bundle.Status, i.bundle.StartDate)
}
func (i bundleItem) FilterValue() string { return fmt.Sprintf("%d %s", i.bundle.ID, i.bundle.Status) }

// ─── model ───────────────────────────────────────────────────────────────────

type Model struct {
	port   PlanPort
	userID int64

	list     list.Model
	detail   viewport.Model
	spinner  spinner.Model
	loading  bool
	status   string
	bundle   plandomain.Bundle
	schedule plandomain.Schedule
	done     map[plandomain.CompletionKey]bool
	week     int
	day      int
	width    int
	height   int
}

func New(port PlanPort) Model {
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.Foreground(theme.Mint).BorderForeground(theme.Mint)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.Foreground(theme.Sky).BorderForeground(theme.Mint)

	l := list.New(nil, delegate, 0, 0)
	l.Title = "Plans"
	l.Styles.Title = theme.Title
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)

	vp := viewport.New(0, 0)
	vp.Style = lipgloss.NewStyle().
		Background(theme.Panel).
		Foreground(theme.Text).
		Padding(1)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Mint)

	return Model{
		port:    port,
		list:    l,
		detail:  vp,
		spinner: sp,
		done:    map[plandomain.CompletionKey]bool{},
		week:    1,
		day:     1,
	}
}

func (m Model) Init() tea.Cmd {
	return m.spinner.Tick
}

// Load refreshes the bundle list for the given user.
func (m *Model) Load(userID int64) tea.Cmd {
	m.userID = userID
	m.loading = true
	return tea.Batch(m.loadListCmd(), m.spinner.Tick)
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()

	case ListLoadedMsg:
		m.loading = false
		if msg.Err != nil {
			m.status = msg.Err.Error()
			return m, nil
		}
		m.status = ""
		if msg.Out.Cached {
			m.status = "offline copy"
		}
		items := make([]list.Item, len(msg.Out.Bundles))
		for i, b := range msg.Out.Bundles {
			items[i] = bundleItem{bundle: b}
		}
		cmds = append(cmds, m.list.SetItems(items))
		if len(msg.Out.Bundles) > 0 {
			cmds = append(cmds, m.loadDetailCmd(msg.Out.Bundles[0].ID))
		}

	case DetailLoadedMsg:
		if msg.Err != nil {
			m.status = msg.Err.Error()
			return m, nil
		}
		m.bundle = msg.Bundle
		m.week, m.day = 1, 1
		m.done = map[plandomain.CompletionKey]bool{}
		for _, c := range msg.Completions {
			m.done[c.Key()] = true
		}
		if m.bundle.WorkoutPlan != nil {
			schedule, err := plandomain.ParseSchedule(m.bundle.WorkoutPlan.PlanJSON)
			if err != nil {
				m.status = err.Error()
			}
			m.schedule = schedule
		} else {
			m.schedule = plandomain.Schedule{}
		}
		m.detail.SetContent(m.renderDetail())

	case ToggledMsg:
		if msg.Err != nil {
			m.status = msg.Err.Error()
			return m, nil
		}
		m.done[msg.Key] = msg.Completed
		m.detail.SetContent(m.renderDetail())

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case tea.KeyMsg:
		if m.list.FilterState() != list.Filtering {
			switch msg.String() {
			case "enter":
				if item, ok := m.list.SelectedItem().(bundleItem); ok {
					cmds = append(cmds, m.loadDetailCmd(item.bundle.ID))
				}
			case "w":
				m.week++
				if _, ok := m.schedule.Week(m.week); !ok {
					m.week = 1
				}
				m.day = 1
				m.detail.SetContent(m.renderDetail())
			case "d":
				m.day++
				if week, ok := m.schedule.Week(m.week); !ok || m.day > len(week.Days) {
					m.day = 1
				}
				m.detail.SetContent(m.renderDetail())
			case "1", "2", "3", "4", "5", "6", "7", "8", "9":
				cmds = append(cmds, m.toggleCmd(int(msg.String()[0] - '0')))
			}
		}
	}

	if !m.loading {
		var lCmd tea.Cmd
		m.list, lCmd = m.list.Update(msg)
		cmds = append(cmds, lCmd)

		var vCmd tea.Cmd
		m.detail, vCmd = m.detail.Update(msg)
		cmds = append(cmds, vCmd)
	}

	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	if m.loading {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			m.spinner.View()+" Loading plans…")
	}

	listW := m.width * 3 / 10
	detailW := m.width - listW

	listPane := lipgloss.NewStyle().Width(listW).Height(m.height).Render(m.list.View())
	detailPane := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Background(theme.Panel).
		Width(detailW - 2).
		Height(m.height - 2).
		Render(m.detail.View())

	return lipgloss.JoinHorizontal(lipgloss.Top, listPane, detailPane)
}

func (m Model) renderDetail() string {
	var sb strings.Builder

	header := fmt.Sprintf("Plan #%d  %s", m.bundle.ID, m.bundle.Status)
	sb.WriteString(theme.Title.Render(header) + "\n")
	if m.bundle.WorkoutPlan != nil && m.bundle.WorkoutPlan.Summary != "" {
		sb.WriteString(theme.Muted.Render(m.bundle.WorkoutPlan.Summary) + "\n")
	}
	if m.status != "" {
		sb.WriteString(theme.Bad.Render(m.status) + "\n")
	}
	sb.WriteString("\n")

	week, ok := m.schedule.Week(m.week)
	if !ok {
		sb.WriteString(theme.Muted.Render("No schedule in this plan."))
		return sb.String()
	}
	sb.WriteString(theme.Hot.Render(fmt.Sprintf("Week %d · Day %d", m.week, m.day)))
	sb.WriteString(theme.Muted.Render("   w: next week  d: next day  1-9: toggle done") + "\n\n")

	var day plandomain.TrainingDay
	found := false
	for _, d := range week.Days {
		if d.DayNumber == m.day {
			day, found = d, true
			break
		}
	}
	if !found && m.day >= 1 && m.day <= len(week.Days) {
		day, found = week.Days[m.day-1], true
	}
	if !found {
		sb.WriteString(theme.Muted.Render("Rest day."))
		return sb.String()
	}
	if day.Focus != "" {
		sb.WriteString(theme.Good.Render(day.Focus) + "\n\n")
	}

	for i, exercise := range day.Exercises {
		key := plandomain.CompletionKey{
			PlanBundleID: m.bundle.ID,
			WeekNumber:   m.week,
			DayNumber:    m.day,
			ExerciseName: exercise.Name,
		}
		mark := theme.Muted.Render("[ ]")
		if m.done[key] {
			mark = theme.Checked.Render("[✓]")
		}
		line := fmt.Sprintf("%s %d. %-28s %d×%s", mark, i+1, exercise.Name, exercise.Sets, exercise.Reps)
		if exercise.Rest != "" {
			line += theme.Muted.Render("  rest " + exercise.Rest)
		}
		sb.WriteString(line + "\n")
		if exercise.Notes != "" {
			sb.WriteString(theme.Muted.Render("      "+exercise.Notes) + "\n")
		}
	}
	return sb.String()
}

// Filtering reports whether the list's search filter is currently active.
func (m Model) Filtering() bool {
	return m.list.FilterState() == list.Filtering
}

func (m *Model) resize() {
	listW := m.width * 3 / 10
	m.list.SetSize(listW, m.height)
	m.detail.Width = m.width - listW - 4
	m.detail.Height = m.height - 4
}

// ─── async commands ───────────────────────────────────────────────────────────

func (m Model) loadListCmd() tea.Cmd {
	userID := m.userID
	port := m.port
	return func() tea.Msg {
		out, err := port.List(context.Background(), userID, false)
		if err != nil {
			if cached, cerr := port.List(context.Background(), userID, true); cerr == nil && len(cached.Bundles) > 0 {
				return ListLoadedMsg{Out: cached}
			}
			return ListLoadedMsg{Err: err}
		}
		return ListLoadedMsg{Out: out}
	}
}

func (m Model) loadDetailCmd(bundleID int64) tea.Cmd {
	userID := m.userID
	port := m.port
	return func() tea.Msg {
		out, err := port.Get(context.Background(), bundleID)
		if err != nil {
			return DetailLoadedMsg{Err: err}
		}
		completions, err := port.Completions(context.Background(), userID, bundleID)
		if err != nil {
			return DetailLoadedMsg{Err: err}
		}
		return DetailLoadedMsg{Bundle: out.Bundle, Completions: completions}
	}
}

// toggleCmd flips the done state of the nth listed exercise. The server is
// the source of truth; local state follows its response.
func (m Model) toggleCmd(n int) tea.Cmd {
	week, ok := m.schedule.Week(m.week)
	if !ok {
		return nil
	}
	var day plandomain.TrainingDay
	found := false
	for _, d := range week.Days {
		if d.DayNumber == m.day {
			day, found = d, true
			break
		}
	}
	if !found && m.day >= 1 && m.day <= len(week.Days) {
		day, found = week.Days[m.day-1], true
	}
	if !found || n < 1 || n > len(day.Exercises) {
		return nil
	}
	exercise := day.Exercises[n-1]

	completion := plandomain.Completion{
		PlanBundleID:  m.bundle.ID,
		WeekNumber:    m.week,
		DayNumber:     m.day,
		ExerciseName:  exercise.Name,
		SetsCompleted: exercise.Sets,
	}
	userID := m.userID
	port := m.port
	return func() tea.Msg {
		out, err := port.ToggleCompletion(context.Background(), userID, completion)
		return ToggledMsg{Key: completion.Key(), Completed: out.Completed, Err: err}
	}
}
