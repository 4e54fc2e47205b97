package wizard

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	prefsdomain "fitfusion/internal/modules/prefs/domain"
	prefsdto "fitfusion/internal/modules/prefs/dto"
	"fitfusion/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type PrefsPort interface {
	Get(ctx context.Context, userID int64) (prefsdto.GetOutput, error)
	Submit(ctx context.Context, userID int64, draft prefsdomain.Draft) (prefsdto.SubmitOutput, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

type LoadedMsg struct {
	Out prefsdto.GetOutput
	Err error
}

// SubmittedMsg bubbles to the app model so it can jump to the Plans tab
// once generation has been requested.
type SubmittedMsg struct {
	Out prefsdto.SubmitOutput
	Err error
}

// ─── option sets ─────────────────────────────────────────────────────────────
// Values use the backend's spellings.

var (
	goalOptions       = []string{"weight_loss", "weight_gain", "maintain", "strength", "stamina"}
	experienceOptions = []string{"beginner", "intermediate", "advanced"}
	locationOptions   = []string{"gym", "home"}
	dietOptions       = []string{"veg", "non_veg", "mixed"}
	equipmentOptions  = []string{
		"dumbbells", "resistance_bands", "pull_up_bar", "yoga_mat",
		"kettlebell", "jump_rope", "bench", "bodyweight",
	}
	muscleOptions = []string{
		"Chest", "Back", "Shoulders", "Biceps", "Triceps",
		"Abs", "Glutes", "Quadriceps", "Hamstrings",
	}
)

// fields of the goals step, in cursor order
type goalsField int

const (
	fieldGoal goalsField = iota
	fieldExperience
	fieldLocation
	fieldDuration
	fieldFrequency
	goalsFieldCount
)

// fields of the diet step
type dietField int

const (
	fieldDiet dietField = iota
	fieldAllergies
	fieldMedical
	fieldExcluded
	dietFieldCount
)

// ─── model ───────────────────────────────────────────────────────────────────

type Model struct {
	port   PrefsPort
	userID int64

	draft      prefsdomain.Draft
	saved      prefsdomain.Preferences
	hasSaved   bool
	goalsCur   goalsField
	dietCur    dietField
	allergies  textinput.Model
	medical    textinput.Model
	excluded   textinput.Model
	spinner    spinner.Model
	loading    bool
	submitting bool
	status     string
	width      int
	height     int
}

func New(port PrefsPort) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Mint)

	newInput := func(placeholder string) textinput.Model {
		ti := textinput.New()
		ti.Placeholder = placeholder
		ti.CharLimit = 300
		return ti
	}

	return Model{
		port:      port,
		draft:     prefsdomain.NewDraft(),
		allergies: newInput("allergies, comma separated"),
		medical:   newInput("medical conditions, comma separated"),
		excluded:  newInput("foods to exclude, comma separated"),
		spinner:   sp,
	}
}

func (m Model) Init() tea.Cmd {
	return m.spinner.Tick
}

// Load fetches stored preferences. If any exist the view starts read-only;
// editing is an explicit transition.
func (m *Model) Load(userID int64) tea.Cmd {
	m.userID = userID
	m.loading = true
	m.status = ""
	port := m.port
	return tea.Batch(m.spinner.Tick, func() tea.Msg {
		out, err := port.Get(context.Background(), userID)
		return LoadedMsg{Out: out, Err: err}
	})
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case LoadedMsg:
		m.loading = false
		if msg.Err != nil {
			m.status = msg.Err.Error()
			return m, nil
		}
		m.hasSaved = msg.Out.Found
		if msg.Out.Found {
			m.saved = msg.Out.Preferences
			m.draft = prefsdomain.DraftFrom(msg.Out.Preferences)
			m.draft.Mode = prefsdomain.ModeView
			m.seedInputs()
		} else {
			m.draft = prefsdomain.NewDraft()
		}

	case SubmittedMsg:
		m.submitting = false
		if msg.Err != nil {
			// Shown verbatim; preferences may have been saved even when
			// generation failed.
			m.status = msg.Err.Error()
			return m, nil
		}
		m.status = "plan generation requested"
		m.hasSaved = true
		m.saved = m.draft.Preferences
		m.draft.Mode = prefsdomain.ModeView

	case spinner.TickMsg:
		if m.loading || m.submitting {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}

	case tea.KeyMsg:
		if m.loading || m.submitting {
			return m, nil
		}
		if m.draft.Mode == prefsdomain.ModeView {
			if msg.String() == "e" {
				m.draft = prefsdomain.DraftFrom(m.saved)
				m.seedInputs()
				m.status = ""
			}
			return m, nil
		}
		return m.updateEdit(msg)
	}

	return m, nil
}

func (m Model) updateEdit(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		if m.draft.OnFinalStep() {
			return m.submit()
		}
		m.collectDietInputs()
		_ = m.draft.Advance()
		return m, nil
	case "esc":
		if err := m.draft.Retreat(); err != nil && m.hasSaved {
			m.draft.Mode = prefsdomain.ModeView
		}
		return m, nil
	}

	switch m.draft.Step {
	case prefsdomain.StepGoals:
		m.updateGoalsStep(msg)
	case prefsdomain.StepMuscles:
		if idx := digitIndex(msg.String(), len(muscleOptions)); idx >= 0 {
			m.draft.ToggleMuscle(muscleOptions[idx])
		}
	case prefsdomain.StepDiet:
		return m.updateDietStep(msg)
	}
	return m, nil
}

func (m *Model) updateGoalsStep(msg tea.KeyMsg) {
	switch msg.String() {
	case "up":
		if m.goalsCur > 0 {
			m.goalsCur--
		}
	case "down":
		if m.goalsCur < goalsFieldCount-1 {
			m.goalsCur++
		}
	case "left", "right":
		delta := 1
		if msg.String() == "left" {
			delta = -1
		}
		switch m.goalsCur {
		case fieldGoal:
			m.draft.Goal = cycle(goalOptions, m.draft.Goal, delta)
		case fieldExperience:
			m.draft.ExperienceLevel = cycle(experienceOptions, m.draft.ExperienceLevel, delta)
		case fieldLocation:
			m.draft.WorkoutLocation = cycle(locationOptions, m.draft.WorkoutLocation, delta)
		case fieldDuration:
			m.draft.DurationWeeks = clamp(m.draft.DurationWeeks+delta, 1, 24)
		case fieldFrequency:
			m.draft.FrequencyPerWeek = clamp(m.draft.FrequencyPerWeek+delta, 1, 7)
		}
	default:
		// Equipment only matters for home workouts.
		if m.draft.WorkoutLocation == "home" {
			if idx := digitIndex(msg.String(), len(equipmentOptions)); idx >= 0 {
				m.draft.ToggleEquipment(equipmentOptions[idx])
			}
		}
	}
}

func (m Model) updateDietStep(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "up", "shift+tab":
		if m.dietCur > 0 {
			m.dietCur--
		}
		m.refocusDiet()
		return m, nil
	case "down", "tab":
		if m.dietCur < dietFieldCount-1 {
			m.dietCur++
		}
		m.refocusDiet()
		return m, nil
	}

	if m.dietCur == fieldDiet {
		switch msg.String() {
		case "left":
			m.draft.DietaryPreference = cycle(dietOptions, m.draft.DietaryPreference, -1)
		case "right":
			m.draft.DietaryPreference = cycle(dietOptions, m.draft.DietaryPreference, 1)
		}
		return m, nil
	}

	var cmd tea.Cmd
	switch m.dietCur {
	case fieldAllergies:
		m.allergies, cmd = m.allergies.Update(msg)
	case fieldMedical:
		m.medical, cmd = m.medical.Update(msg)
	case fieldExcluded:
		m.excluded, cmd = m.excluded.Update(msg)
	}
	return m, cmd
}

func (m Model) submit() (Model, tea.Cmd) {
	m.collectDietInputs()
	m.submitting = true
	m.status = ""
	draft := m.draft
	userID := m.userID
	port := m.port
	return m, tea.Batch(m.spinner.Tick, func() tea.Msg {
		out, err := port.Submit(context.Background(), userID, draft)
		return SubmittedMsg{Out: out, Err: err}
	})
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	if m.loading {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			m.spinner.View()+" Loading preferences…")
	}
	if m.submitting {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			m.spinner.View()+" Saving preferences and generating your plan…")
	}
	if m.draft.Mode == prefsdomain.ModeView {
		return m.viewSummary()
	}
	return m.viewEdit()
}

func (m Model) viewSummary() string {
	var sb strings.Builder
	sb.WriteString(theme.Title.Render("Your Preferences") + "\n\n")
	sb.WriteString(renderKV("Goal", m.saved.Goal))
	sb.WriteString(renderKV("Experience", m.saved.ExperienceLevel))
	sb.WriteString(renderKV("Location", m.saved.WorkoutLocation))
	sb.WriteString(renderKV("Duration", fmt.Sprintf("%d weeks", m.saved.DurationWeeks)))
	sb.WriteString(renderKV("Frequency", fmt.Sprintf("%d×/week", m.saved.FrequencyPerWeek)))
	sb.WriteString(renderKV("Diet", m.saved.DietaryPreference))
	sb.WriteString(renderKV("Muscles", strings.Join(m.saved.TargetMuscles, ", ")))
	if len(m.saved.EquipmentList) > 0 {
		sb.WriteString(renderKV("Equipment", strings.Join(m.saved.EquipmentList, ", ")))
	}
	if len(m.saved.Allergies) > 0 {
		sb.WriteString(renderKV("Allergies", strings.Join(m.saved.Allergies, ", ")))
	}
	sb.WriteString("\n" + theme.Muted.Render("e: edit preferences"))
	if m.status != "" {
		sb.WriteString("\n" + theme.Good.Render(m.status))
	}
	return theme.Pane.Width(min(m.width-4, 70)).Render(sb.String())
}

func (m Model) viewEdit() string {
	var sb strings.Builder
	sb.WriteString(m.renderStepHeader() + "\n\n")

	switch m.draft.Step {
	case prefsdomain.StepGoals:
		sb.WriteString(m.renderGoalsStep())
	case prefsdomain.StepMuscles:
		sb.WriteString(renderToggles(muscleOptions, m.draft.TargetMuscles))
		sb.WriteString("\n" + theme.Muted.Render("1-9: toggle muscle groups"))
	case prefsdomain.StepDiet:
		sb.WriteString(m.renderDietStep())
	}

	footer := "enter: next step   esc: back"
	if m.draft.OnFinalStep() {
		footer = "enter: save & generate plan   esc: back"
	}
	sb.WriteString("\n\n" + theme.Muted.Render(footer))
	if m.status != "" {
		sb.WriteString("\n" + theme.Bad.Render(m.status))
	}
	return theme.PaneActive.Width(min(m.width-4, 70)).Render(sb.String())
}

func (m Model) renderStepHeader() string {
	parts := make([]string, 0, 3)
	for step := prefsdomain.StepGoals; step <= prefsdomain.StepDiet; step++ {
		label := step.Title()
		if step == m.draft.Step {
			parts = append(parts, theme.Hot.Render(label))
		} else {
			parts = append(parts, theme.Muted.Render(label))
		}
	}
	return strings.Join(parts, theme.Muted.Render("  →  "))
}

func (m Model) renderGoalsStep() string {
	rows := []struct {
		field goalsField
		label string
		value string
	}{
		{fieldGoal, "Goal", m.draft.Goal},
		{fieldExperience, "Experience", m.draft.ExperienceLevel},
		{fieldLocation, "Location", m.draft.WorkoutLocation},
		{fieldDuration, "Duration", fmt.Sprintf("%d weeks", m.draft.DurationWeeks)},
		{fieldFrequency, "Frequency", fmt.Sprintf("%d×/week", m.draft.FrequencyPerWeek)},
	}
	var sb strings.Builder
	for _, row := range rows {
		cursor := "  "
		value := row.value
		if row.field == m.goalsCur {
			cursor = theme.Hot.Render("> ")
			value = theme.Hot.Render("← " + row.value + " →")
		}
		sb.WriteString(fmt.Sprintf("%s%-12s %s\n", cursor, row.label, value))
	}
	if m.draft.WorkoutLocation == "home" {
		sb.WriteString("\n" + theme.Title.Render("Home equipment") + "\n")
		sb.WriteString(renderToggles(equipmentOptions, m.draft.EquipmentList))
		sb.WriteString(theme.Muted.Render("1-8: toggle equipment") + "\n")
	}
	return sb.String()
}

func (m Model) renderDietStep() string {
	var sb strings.Builder
	cursor := func(f dietField) string {
		if f == m.dietCur {
			return theme.Hot.Render("> ")
		}
		return "  "
	}
	diet := m.draft.DietaryPreference
	if m.dietCur == fieldDiet {
		diet = theme.Hot.Render("← " + diet + " →")
	}
	sb.WriteString(cursor(fieldDiet) + fmt.Sprintf("%-12s %s\n\n", "Diet", diet))
	sb.WriteString(cursor(fieldAllergies) + "Allergies\n  " + m.allergies.View() + "\n")
	sb.WriteString(cursor(fieldMedical) + "Medical\n  " + m.medical.View() + "\n")
	sb.WriteString(cursor(fieldExcluded) + "Excluded foods\n  " + m.excluded.View() + "\n")
	return sb.String()
}

// ─── helpers ─────────────────────────────────────────────────────────────────

func (m *Model) seedInputs() {
	m.allergies.SetValue(strings.Join(m.draft.Allergies, ", "))
	m.medical.SetValue(strings.Join(m.draft.MedicalConditions, ", "))
	m.excluded.SetValue(strings.Join(m.draft.ExcludedFoods, ", "))
	m.goalsCur = fieldGoal
	m.dietCur = fieldDiet
}

func (m *Model) collectDietInputs() {
	m.draft.Allergies = splitCSV(m.allergies.Value())
	m.draft.MedicalConditions = splitCSV(m.medical.Value())
	m.draft.ExcludedFoods = splitCSV(m.excluded.Value())
}

func (m *Model) refocusDiet() {
	m.allergies.Blur()
	m.medical.Blur()
	m.excluded.Blur()
	switch m.dietCur {
	case fieldAllergies:
		m.allergies.Focus()
	case fieldMedical:
		m.medical.Focus()
	case fieldExcluded:
		m.excluded.Focus()
	}
}

func renderKV(label, value string) string {
	if value == "" {
		value = theme.Muted.Render("—")
	}
	return fmt.Sprintf("%-12s %s\n", label, value)
}

func renderToggles(options, selected []string) string {
	set := make(map[string]bool, len(selected))
	for _, s := range selected {
		set[s] = true
	}
	var sb strings.Builder
	for i, opt := range options {
		mark := theme.Muted.Render("[ ]")
		if set[opt] {
			mark = theme.Checked.Render("[✓]")
		}
		sb.WriteString(fmt.Sprintf("%s %d. %s\n", mark, i+1, opt))
	}
	return sb.String()
}

func splitCSV(value string) []string {
	parts := strings.Split(value, ",")
	out := []string{}
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func cycle(options []string, current string, delta int) string {
	idx := 0
	for i, opt := range options {
		if opt == current {
			idx = i
			break
		}
	}
	idx = (idx + delta + len(options)) % len(options)
	return options[idx]
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func digitIndex(key string, limit int) int {
	if len(key) != 1 || key[0] < '1' || key[0] > '9' {
		return -1
	}
	idx := int(key[0] - '1')
	if idx >= limit {
		return -1
	}
	return idx
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
