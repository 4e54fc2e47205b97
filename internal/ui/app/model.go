package app

import (
	"context"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	admindomain "fitfusion/internal/modules/admin/domain"
	authdomain "fitfusion/internal/modules/auth/domain"
	authdto "fitfusion/internal/modules/auth/dto"
	catalogdomain "fitfusion/internal/modules/catalog/domain"
	plandomain "fitfusion/internal/modules/plan/domain"
	plandto "fitfusion/internal/modules/plan/dto"
	prefsdomain "fitfusion/internal/modules/prefs/domain"
	prefsdto "fitfusion/internal/modules/prefs/dto"
	"fitfusion/internal/ui/components"
	"fitfusion/internal/ui/theme"
	adminview "fitfusion/internal/ui/views/admin"
	catalogview "fitfusion/internal/ui/views/catalog"
	dashboardview "fitfusion/internal/ui/views/dashboard"
	loginview "fitfusion/internal/ui/views/login"
	plansview "fitfusion/internal/ui/views/plans"
	wizardview "fitfusion/internal/ui/views/wizard"
)

// ─── ports ───────────────────────────────────────────────────────────────────
// Each port is the minimal interface this orchestration layer requires.
// Sub-view ports are defined in their own packages and narrowed further.

type authPort interface {
	Login(ctx context.Context, email, password string) (authdto.IdentityOutput, error)
	Register(ctx context.Context, name, email, password string) (authdto.IdentityOutput, error)
	Logout(ctx context.Context) error
	Current(ctx context.Context) (authdto.IdentityOutput, error)
}

type planPort interface {
	List(ctx context.Context, userID int64, cached bool) (plandto.ListOutput, error)
	Get(ctx context.Context, bundleID int64) (plandto.BundleOutput, error)
	Completions(ctx context.Context, userID, bundleID int64) ([]plandomain.Completion, error)
	ToggleCompletion(ctx context.Context, userID int64, completion plandomain.Completion) (plandto.ToggleCompletionOutput, error)
	Stats(ctx context.Context, userID int64, period string) (plandomain.Stats, error)
}

type prefsPort interface {
	Get(ctx context.Context, userID int64) (prefsdto.GetOutput, error)
	Submit(ctx context.Context, userID int64, draft prefsdomain.Draft) (prefsdto.SubmitOutput, error)
}

type catalogPort interface {
	Exercises(ctx context.Context) ([]catalogdomain.Exercise, error)
	ExerciseByName(ctx context.Context, name string) (catalogdomain.Exercise, error)
	Foods(ctx context.Context) ([]catalogdomain.Food, error)
}

type adminPort interface {
	Stats(ctx context.Context) (admindomain.DashboardStats, error)
	Engagement(ctx context.Context) (admindomain.Engagement, error)
	ListUsers(ctx context.Context) ([]admindomain.User, error)
	SetRole(ctx context.Context, userID int64, role string) (admindomain.User, error)
	RAGStatus(ctx context.Context) (admindomain.RAGStatus, error)
	Reindex(ctx context.Context, mode string) (admindomain.ReindexResult, error)
}

// ─── tab index ───────────────────────────────────────────────────────────────

type tabID int

const (
	tabDashboard tabID = iota
	tabPlans
	tabPrefs
	tabCatalog
	tabAdmin
	tabCount
)

var tabLabels = [tabCount]string{
	"Dashboard", "Plans", "Preferences", "Catalog", "Admin",
}

var tabRoutes = [tabCount]authdomain.Route{
	{Name: authdomain.RouteUserHome},
	{Name: "plans"},
	{Name: "preferences"},
	{Name: "catalog"},
	{Name: authdomain.RouteAdminHome, AdminOnly: true},
}

// ─── messages ────────────────────────────────────────────────────────────────

// AuthErrorMsg is injected from outside the update loop whenever the
// backend rejects the stored token. It blocks input until dismissed; the
// session itself stays intact unless the clear-on-auth-error policy is on.
type AuthErrorMsg struct {
	Status  int
	Message string
}

type identityLoadedMsg struct {
	identity authdto.IdentityOutput
	err      error
}

type loggedOutMsg struct{ err error }

type roleChangedMsg struct {
	user admindomain.User
	err  error
}

// ─── key bindings ─────────────────────────────────────────────────────────────

type keyMap struct {
	Tab     key.Binding
	Help    key.Binding
	Palette key.Binding
	Quit    key.Binding
	Logout  key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Tab:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next tab")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Palette: key.NewBinding(key.WithKeys(":"), key.WithHelp(":", "palette")),
		Quit:    key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
		Logout:  key.NewBinding(key.WithKeys("ctrl+l"), key.WithHelp("ctrl+l", "logout")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Tab, k.Help, k.Palette, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Tab, k.Palette},
		{k.Logout, k.Help, k.Quit},
	}
}

// ─── model ───────────────────────────────────────────────────────────────────

// Model is the root Bubble Tea model. It owns tab routing behind the route
// guard, the login gate, the blocking auth-error banner, and the command
// palette. Business logic lives behind port interfaces.
type Model struct {
	auth    authPort
	plans   planPort
	admin   adminPort
	catalog catalogPort

	loginView   loginview.Model
	dashView    dashboardview.Model
	plansView   plansview.Model
	wizardView  wizardview.Model
	catalogView catalogview.Model
	adminView   adminview.Model

	identity      authdto.IdentityOutput
	authenticated bool
	activeTab     tabID
	keys          keyMap
	help          help.Model
	showHelp      bool
	palette       components.Palette
	authBanner    string
	status        string
	width         int
	height        int
}

func NewModel(auth authPort, plans planPort, prefs prefsPort, catalog catalogPort, admin adminPort) Model {
	return Model{
		auth:        auth,
		plans:       plans,
		admin:       admin,
		catalog:     catalog,
		loginView:   loginview.New(loginPortBridge{p: auth}),
		dashView:    dashboardview.New(plans),
		plansView:   plansview.New(plans),
		wizardView:  wizardview.New(prefs),
		catalogView: catalogview.New(catalog),
		adminView:   adminview.New(admin),
		keys:        defaultKeys(),
		help:        help.New(),
		palette:     components.NewPalette(),
		status:      "ready",
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loginView.Init(), m.loadIdentityCmd())
}

// ─── update ───────────────────────────────────────────────────────────────────

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	// The auth banner blocks everything until acknowledged.
	if m.authBanner != "" {
		switch msg := msg.(type) {
		case tea.KeyMsg:
			switch msg.String() {
			case "enter", "esc":
				m.authBanner = ""
			case "ctrl+c":
				return m, tea.Quit
			}
		case tea.WindowSizeMsg:
			m.width, m.height = msg.Width, msg.Height
		}
		return m, nil
	}

	if m.palette.Visible() {
		var cmd tea.Cmd
		m.palette, cmd = m.palette.Update(msg)
		return m, cmd
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.palette.SetWidth(min(m.width-4, 80))
		m.help.Width = m.width
		m.propagateSize()

	case AuthErrorMsg:
		m.authBanner = msg.Message
		if m.authBanner == "" {
			m.authBanner = "the server rejected your session"
		}
		return m, nil

	case identityLoadedMsg:
		if msg.err != nil || !msg.identity.Authenticated {
			m.authenticated = false
			return m, nil
		}
		return m.enter(msg.identity)

	case loginview.AuthenticatedMsg:
		if msg.Err == nil {
			var cmd tea.Cmd
			m.loginView, cmd = m.loginView.Update(msg)
			cmds = append(cmds, cmd)
			model, enterCmd := m.enter(msg.Identity)
			return model, tea.Batch(append(cmds, enterCmd)...)
		}
		var cmd tea.Cmd
		m.loginView, cmd = m.loginView.Update(msg)
		return m, cmd

	case loggedOutMsg:
		if msg.err != nil {
			m.status = "logout failed: " + msg.err.Error()
			return m, nil
		}
		m.authenticated = false
		m.identity = authdto.IdentityOutput{}
		m.status = "signed out"
		return m, nil

	case wizardview.SubmittedMsg:
		var cmd tea.Cmd
		m.wizardView, cmd = m.wizardView.Update(msg)
		cmds = append(cmds, cmd)
		if msg.Err == nil && msg.Out.PlanRequested {
			m.activeTab = tabPlans
			m.status = "plan generation requested"
			cmds = append(cmds, m.plansView.Load(m.identity.UserID))
		}
		return m, tea.Batch(cmds...)

	case roleChangedMsg:
		if msg.err != nil {
			m.status = "role change failed: " + msg.err.Error()
			return m, nil
		}
		m.status = "role updated: " + msg.user.Email + " -> " + msg.user.Role
		cmd := m.adminView.Load()
		return m, cmd

	case components.PaletteSubmitMsg:
		return m.executePalette(msg.Input)

	case components.PaletteCancelMsg:
		m.status = "ready"

	case tea.KeyMsg:
		if m.showHelp {
			if msg.String() == "?" || msg.String() == "esc" {
				m.showHelp = false
			}
			return m, nil
		}
		if !m.authenticated {
			break
		}
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.subViewFiltering() || m.subViewTyping() {
			break
		}
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Tab):
			return m.switchTab(1)
		case msg.String() == "shift+tab":
			return m.switchTab(-1)
		case key.Matches(msg, m.keys.Help):
			m.showHelp = !m.showHelp
			return m, nil
		case key.Matches(msg, m.keys.Palette):
			cmd := m.palette.Open()
			return m, cmd
		case key.Matches(msg, m.keys.Logout):
			return m, m.logoutCmd()
		}
	}

	// Unauthenticated input belongs to the login view.
	if !m.authenticated {
		var cmd tea.Cmd
		m.loginView, cmd = m.loginView.Update(msg)
		cmds = append(cmds, cmd)
		return m, tea.Batch(cmds...)
	}

	var tabCmd tea.Cmd
	switch m.activeTab {
	case tabDashboard:
		m.dashView, tabCmd = m.dashView.Update(msg)
	case tabPlans:
		m.plansView, tabCmd = m.plansView.Update(msg)
	case tabPrefs:
		m.wizardView, tabCmd = m.wizardView.Update(msg)
	case tabCatalog:
		m.catalogView, tabCmd = m.catalogView.Update(msg)
	case tabAdmin:
		m.adminView, tabCmd = m.adminView.Update(msg)
	}
	cmds = append(cmds, tabCmd)

	return m, tea.Batch(cmds...)
}

// enter resolves the start view from the identity's role and loads it.
func (m Model) enter(identity authdto.IdentityOutput) (tea.Model, tea.Cmd) {
	m.identity = identity
	m.authenticated = true
	m.status = "signed in as " + identity.Email

	session := m.session()
	if authdomain.DefaultRoute(session) == authdomain.RouteAdminHome {
		m.activeTab = tabAdmin
		cmd := tea.Batch(m.adminView.Load(), m.adminView.Init())
		return m, cmd
	}
	m.activeTab = tabDashboard
	cmd := tea.Batch(m.dashView.Load(identity.UserID), m.dashView.Init())
	return m, cmd
}

// switchTab walks tabs in order, consulting the route guard for each
// candidate. Admin-only tabs are skipped for regular users rather than
// rendered and bounced.
func (m Model) switchTab(delta int) (tea.Model, tea.Cmd) {
	session := m.session()
	next := m.activeTab
	for i := 0; i < int(tabCount); i++ {
		next = (next + tabID(delta) + tabCount) % tabCount
		switch authdomain.Decide(m.authenticated, session, tabRoutes[next]) {
		case authdomain.Render:
			m.activeTab = next
			cmd := m.loadActiveTab()
			return m, cmd
		case authdomain.RedirectLogin:
			m.authenticated = false
			return m, nil
		case authdomain.RedirectHome:
			continue
		}
	}
	return m, nil
}

func (m *Model) loadActiveTab() tea.Cmd {
	switch m.activeTab {
	case tabDashboard:
		return m.dashView.Load(m.identity.UserID)
	case tabPlans:
		return m.plansView.Load(m.identity.UserID)
	case tabPrefs:
		return m.wizardView.Load(m.identity.UserID)
	case tabCatalog:
		return m.catalogView.Init()
	case tabAdmin:
		return m.adminView.Load()
	}
	return nil
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	if !m.authenticated {
		return m.loginView.View()
	}

	tabBar := m.renderTabBar()
	statusBar := m.renderStatusBar()
	contentH := m.height - lipgloss.Height(tabBar) - lipgloss.Height(statusBar)
	if contentH < 1 {
		contentH = 1
	}

	var content string
	switch {
	case m.authBanner != "":
		content = lipgloss.Place(m.width, contentH, lipgloss.Center, lipgloss.Center, m.renderAuthBanner())
	case m.showHelp:
		content = lipgloss.NewStyle().Width(m.width).Height(contentH).Render(m.help.View(m.keys))
	case m.palette.Visible():
		content = lipgloss.Place(m.width, contentH, lipgloss.Center, lipgloss.Center, m.palette.View())
	default:
		content = m.activeView()
	}

	return lipgloss.JoinVertical(lipgloss.Left, tabBar, content, statusBar)
}

func (m Model) activeView() string {
	switch m.activeTab {
	case tabDashboard:
		return m.dashView.View()
	case tabPlans:
		return m.plansView.View()
	case tabPrefs:
		return m.wizardView.View()
	case tabCatalog:
		return m.catalogView.View()
	case tabAdmin:
		return m.adminView.View()
	}
	return ""
}

func (m Model) renderAuthBanner() string {
	var sb strings.Builder
	sb.WriteString(theme.Bad.Render("Access denied") + "\n\n")
	sb.WriteString(m.authBanner + "\n\n")
	sb.WriteString(theme.Muted.Render("Your sign-in is kept; press enter to continue."))
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.DoubleBorder()).
		BorderForeground(theme.Coral).
		Background(theme.Panel).
		Padding(1, 2).
		Render(sb.String())
}

func (m Model) renderTabBar() string {
	session := m.session()
	parts := make([]string, 0, tabCount)
	for i := tabID(0); i < tabCount; i++ {
		if authdomain.Decide(m.authenticated, session, tabRoutes[i]) != authdomain.Render {
			continue
		}
		label := " " + tabLabels[i] + " "
		if i == m.activeTab {
			parts = append(parts, theme.Hot.Render(label))
		} else {
			parts = append(parts, theme.Muted.Render(label))
		}
	}
	sep := theme.Muted.Render(" │ ")
	bar := "fitfusion  " + strings.Join(parts, sep)
	return lipgloss.NewStyle().Background(theme.Panel).Width(m.width).Render(bar) + "\n"
}

func (m Model) renderStatusBar() string {
	left := m.status
	if m.authenticated {
		who := m.identity.Name
		if m.identity.Admin {
			who += " (admin)"
		}
		left = theme.Good.Render("● "+who) + "  " + left
	}
	right := theme.Muted.Render("?:help  tab:switch  :::palette  q:quit")
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	bar := left + strings.Repeat(" ", gap) + right
	return "\n" + lipgloss.NewStyle().Background(theme.Panel).Width(m.width).Render(bar)
}

// ─── palette execution ────────────────────────────────────────────────────────

func (m Model) executePalette(input string) (tea.Model, tea.Cmd) {
	if strings.TrimSpace(input) == "" {
		return m, nil
	}
	parts := strings.Fields(input)

	switch parts[0] {
	case "auth:logout":
		return m, m.logoutCmd()

	case "auth:whoami":
		m.status = m.identity.Email + " · " + m.identity.Role
		return m, nil

	case "plans:refresh":
		m.activeTab = tabPlans
		cmd := m.plansView.Load(m.identity.UserID)
		return m, cmd

	case "plans:cached":
		m.activeTab = tabDashboard
		m.status = "showing offline copy"
		cmd := m.dashView.Load(m.identity.UserID)
		return m, cmd

	case "stats":
		period := "week"
		if len(parts) >= 2 {
			period = parts[1]
		}
		m.activeTab = tabDashboard
		cmd := m.dashView.SetPeriod(period)
		return m, cmd

	case "exercise":
		if len(parts) < 2 {
			m.status = "usage: exercise <name>"
			return m, nil
		}
		m.activeTab = tabCatalog
		name := strings.TrimSpace(strings.TrimPrefix(input, parts[0]))
		return m, m.lookupExerciseCmd(name)

	case "prefs:edit":
		m.activeTab = tabPrefs
		cmd := m.wizardView.Load(m.identity.UserID)
		return m, cmd

	case "admin:stats", "admin:engagement", "admin:users", "admin:rag-status":
		return m.adminJump()

	case "admin:reindex":
		model, cmd := m.adminJump()
		if cmd == nil {
			return model, nil
		}
		mode := admindomain.ReindexFull
		if len(parts) >= 2 {
			mode = parts[1]
		}
		return model, tea.Batch(cmd, m.reindexCmd(mode))

	case "admin:role":
		if len(parts) < 3 {
			m.status = "usage: admin:role <user-id> <USER|ADMIN>"
			return m, nil
		}
		userID, err := strconv.ParseInt(parts[1], 10, 64)
		if err != nil {
			m.status = "invalid user id"
			return m, nil
		}
		model, cmd := m.adminJump()
		if cmd == nil {
			return model, nil
		}
		return model, tea.Batch(cmd, m.setRoleCmd(userID, parts[2]))

	default:
		m.status = "unknown command: " + parts[0]
	}
	return m, nil
}

// adminJump navigates to the admin tab through the guard; non-admins are
// told no, not silently ignored.
func (m Model) adminJump() (Model, tea.Cmd) {
	switch authdomain.Decide(m.authenticated, m.session(), tabRoutes[tabAdmin]) {
	case authdomain.Render:
		m.activeTab = tabAdmin
		cmd := m.adminView.Load()
		return m, cmd
	case authdomain.RedirectLogin:
		m.authenticated = false
		return m, nil
	default:
		m.activeTab = tabDashboard
		m.status = "admin commands need the ADMIN role"
		return m, nil
	}
}

// ─── helpers ─────────────────────────────────────────────────────────────────

func (m Model) session() authdomain.Session {
	return authdomain.Session{
		UserID: m.identity.UserID,
		Name:   m.identity.Name,
		Email:  m.identity.Email,
		Role:   authdomain.NormalizeRole(m.identity.Role),
	}
}

func (m Model) subViewFiltering() bool {
	switch m.activeTab {
	case tabPlans:
		return m.plansView.Filtering()
	case tabCatalog:
		return m.catalogView.Filtering()
	}
	return false
}

// subViewTyping reports whether the active tab owns free-text input, in
// which case global single-letter bindings must stand down.
func (m Model) subViewTyping() bool {
	return m.activeTab == tabPrefs
}

func (m *Model) propagateSize() {
	sz := tea.WindowSizeMsg{Width: m.width, Height: m.height - 3}
	m.loginView, _ = m.loginView.Update(sz)
	m.dashView, _ = m.dashView.Update(sz)
	m.plansView, _ = m.plansView.Update(sz)
	m.wizardView, _ = m.wizardView.Update(sz)
	m.catalogView, _ = m.catalogView.Update(sz)
	m.adminView, _ = m.adminView.Update(sz)
}

// ─── async commands ───────────────────────────────────────────────────────────

func (m Model) loadIdentityCmd() tea.Cmd {
	auth := m.auth
	return func() tea.Msg {
		identity, err := auth.Current(context.Background())
		return identityLoadedMsg{identity: identity, err: err}
	}
}

func (m Model) logoutCmd() tea.Cmd {
	auth := m.auth
	return func() tea.Msg {
		return loggedOutMsg{err: auth.Logout(context.Background())}
	}
}

func (m Model) lookupExerciseCmd(name string) tea.Cmd {
	port := m.catalog
	return func() tea.Msg {
		exercise, err := port.ExerciseByName(context.Background(), name)
		return catalogview.DetailLoadedMsg{Exercise: exercise, Err: err}
	}
}

func (m Model) setRoleCmd(userID int64, role string) tea.Cmd {
	admin := m.admin
	return func() tea.Msg {
		user, err := admin.SetRole(context.Background(), userID, role)
		return roleChangedMsg{user: user, err: err}
	}
}

func (m Model) reindexCmd(mode string) tea.Cmd {
	admin := m.admin
	return func() tea.Msg {
		result, err := admin.Reindex(context.Background(), mode)
		return adminview.ReindexDoneMsg{Result: result, Err: err}
	}
}

// ─── port bridges ─────────────────────────────────────────────────────────────

// loginPortBridge narrows the broad auth port to the login view's dto-based
// surface.
type loginPortBridge struct{ p authPort }

func (b loginPortBridge) Login(ctx context.Context, input authdto.LoginInput) (authdto.IdentityOutput, error) {
	return b.p.Login(ctx, input.Email, input.Password)
}

func (b loginPortBridge) Register(ctx context.Context, input authdto.RegisterInput) (authdto.IdentityOutput, error) {
	return b.p.Register(ctx, input.Name, input.Email, input.Password)
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
