package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	catalogdomain "fitfusion/internal/modules/catalog/domain"
	"fitfusion/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type CatalogPort interface {
	Exercises(ctx context.Context) ([]catalogdomain.Exercise, error)
	ExerciseByName(ctx context.Context, name string) (catalogdomain.Exercise, error)
	Foods(ctx context.Context) ([]catalogdomain.Food, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

type ExercisesLoadedMsg struct {
	Exercises []catalogdomain.Exercise
	Err       error
}

type FoodsLoadedMsg struct {
	Foods []catalogdomain.Food
	Err   error
}

type DetailLoadedMsg struct {
	Exercise catalogdomain.Exercise
	Err      error
}

// ─── list items ──────────────────────────────────────────────────────────────

type exerciseItem struct {
	exercise catalogdomain.Exercise
}

func (i exerciseItem) Title() string { return i.exercise.Name }
func (i exerciseItem) Description() string {
	return fmt.Sprintf("%s · %s", i.exercise.MuscleGroup, strings.ToLower(i.exercise.Difficulty))
}
func (i exerciseItem) FilterValue() string {
	return i.exercise.Name + " " + i.exercise.MuscleGroup
}

type foodItem struct {
	food catalogdomain.Food
}

func (i foodItem) Title() string { return i.food.Name }
func (i foodItem) Description() string {
	veg := ""
	if i.food.IsVeg {
		veg = " · veg"
	}
	return fmt.Sprintf("%.0f kcal · %.0fg protein per 100g%s", i.food.CaloriesPer100g, i.food.ProteinPer100g, veg)
}
func (i foodItem) FilterValue() string { return i.food.Name + " " + i.food.Category }

// ─── model ───────────────────────────────────────────────────────────────────

type Model struct {
	port CatalogPort

	list      list.Model
	detail    viewport.Model
	spinner   spinner.Model
	loading   bool
	showFoods bool
	exercise  catalogdomain.Exercise
	status    string
	width     int
	height    int
}

func New(port CatalogPort) Model {
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.Foreground(theme.Mint).BorderForeground(theme.Mint)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.Foreground(theme.Sky).BorderForeground(theme.Mint)

	l := list.New(nil, delegate, 0, 0)
	l.Title = "Exercises"
	l.Styles.Title = theme.Title
	l.SetShowStatusBar(true)
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

	return Model{port: port, list: l, detail: vp, spinner: sp, loading: true}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadExercisesCmd(), m.spinner.Tick)
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()

	case ExercisesLoadedMsg:
		m.loading = false
		if msg.Err != nil {
			m.status = msg.Err.Error()
			return m, nil
		}
		m.status = ""
		items := make([]list.Item, len(msg.Exercises))
		for i, e := range msg.Exercises {
			items[i] = exerciseItem{exercise: e}
		}
		cmds = append(cmds, m.list.SetItems(items))
		if len(msg.Exercises) > 0 {
			m.exercise = msg.Exercises[0]
			m.detail.SetContent(m.renderDetail())
		}

	case FoodsLoadedMsg:
		m.loading = false
		if msg.Err != nil {
			m.status = msg.Err.Error()
			return m, nil
		}
		m.status = ""
		items := make([]list.Item, len(msg.Foods))
		for i, f := range msg.Foods {
			items[i] = foodItem{food: f}
		}
		cmds = append(cmds, m.list.SetItems(items))

	case DetailLoadedMsg:
		if msg.Err != nil {
			m.status = msg.Err.Error()
			return m, nil
		}
		m.exercise = msg.Exercise
		m.detail.SetContent(m.renderDetail())

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case tea.KeyMsg:
		if m.list.FilterState() != list.Filtering {
			switch msg.String() {
			case "f":
				m.showFoods = !m.showFoods
				m.loading = true
				if m.showFoods {
					m.list.Title = "Foods"
					cmds = append(cmds, m.loadFoodsCmd(), m.spinner.Tick)
				} else {
					m.list.Title = "Exercises"
					cmds = append(cmds, m.loadExercisesCmd(), m.spinner.Tick)
				}
			case "enter":
				if item, ok := m.list.SelectedItem().(exerciseItem); ok {
					cmds = append(cmds, m.loadDetailCmd(item.exercise.Name))
				}
			}
		}
	}

	if !m.loading {
		prevIdx := m.list.Index()
		var lCmd tea.Cmd
		m.list, lCmd = m.list.Update(msg)
		cmds = append(cmds, lCmd)
		if m.list.Index() != prevIdx {
			if item, ok := m.list.SelectedItem().(exerciseItem); ok {
				m.exercise = item.exercise
				m.detail.SetContent(m.renderDetail())
			}
		}

		var vCmd tea.Cmd
		m.detail, vCmd = m.detail.Update(msg)
		cmds = append(cmds, vCmd)
	}

	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	if m.loading {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			m.spinner.View()+" Loading catalog…")
	}

	listW := m.width * 4 / 10
	detailW := m.width - listW

	listPane := lipgloss.NewStyle().Width(listW).Height(m.height).Render(m.list.View())

	var right string
	if m.showFoods {
		right = theme.Muted.Render("f: back to exercises")
		if m.status != "" {
			right += "\n" + theme.Bad.Render(m.status)
		}
	} else {
		right = m.detail.View()
	}
	detailPane := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Background(theme.Panel).
		Width(detailW - 2).
		Height(m.height - 2).
		Render(right)

	return lipgloss.JoinHorizontal(lipgloss.Top, listPane, detailPane)
}

func (m Model) renderDetail() string {
	e := m.exercise
	var sb strings.Builder
	sb.WriteString(theme.Title.Render(e.Name) + "\n\n")
	sb.WriteString(fmt.Sprintf("%-12s %s\n", "Muscle", e.MuscleGroup))
	sb.WriteString(fmt.Sprintf("%-12s %s\n", "Difficulty", strings.ToLower(e.Difficulty)))
	if e.Equipment != "" {
		sb.WriteString(fmt.Sprintf("%-12s %s\n", "Equipment", e.Equipment))
	}
	if e.Description != "" {
		sb.WriteString("\n" + e.Description + "\n")
	}
	if e.VideoURL != "" {
		sb.WriteString("\n" + theme.Muted.Render(e.VideoURL) + "\n")
	}
	if m.status != "" {
		sb.WriteString("\n" + theme.Bad.Render(m.status))
	}
	sb.WriteString("\n\n" + theme.Muted.Render("f: foods   enter: refresh detail"))
	return sb.String()
}

// Filtering reports whether the list's search filter is currently active.
func (m Model) Filtering() bool {
	return m.list.FilterState() == list.Filtering
}

func (m *Model) resize() {
	listW := m.width * 4 / 10
	m.list.SetSize(listW, m.height)
	m.detail.Width = m.width - listW - 4
	m.detail.Height = m.height - 4
}

// ─── async commands ───────────────────────────────────────────────────────────

func (m Model) loadExercisesCmd() tea.Cmd {
	port := m.port
	return func() tea.Msg {
		exercises, err := port.Exercises(context.Background())
		return ExercisesLoadedMsg{Exercises: exercises, Err: err}
	}
}

func (m Model) loadFoodsCmd() tea.Cmd {
	port := m.port
	return func() tea.Msg {
		foods, err := port.Foods(context.Background())
		return FoodsLoadedMsg{Foods: foods, Err: err}
	}
}

func (m Model) loadDetailCmd(name string) tea.Cmd {
	port := m.port
	return func() tea.Msg {
		exercise, err := port.ExerciseByName(context.Background(), name)
		return DetailLoadedMsg{Exercise: exercise, Err: err}
	}
}
