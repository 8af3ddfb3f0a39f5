package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jwebster45206/modern-world/internal/game"
	"github.com/jwebster45206/modern-world/pkg/catalog"
	"github.com/jwebster45206/modern-world/pkg/state"
	"github.com/jwebster45206/modern-world/pkg/textfilter"
)

const (
	DefaultCountry  = "Türkiye"
	PlaceHolderText = "Emirlerinizi bekliyoruz..."
	BusyText        = "İletişim hatları meşgul..."
)

// ConsoleUI is the BubbleTea model that runs the game in-process.
// https://github.com/charmbracelet/bubbletea
type ConsoleUI struct {
	ctx     context.Context
	session *game.Session
	logger  *slog.Logger

	gs     *state.GameState
	view   gameView
	width  int
	height int
	ready  bool

	// Setup screen state
	showSetup    bool
	country      textinput.Model
	roles        []catalog.Role
	selectedRole int
	hasSave      bool

	input textinput.Model
	body  viewport.Model

	loading      bool
	progressTick int
	status       string
	err          error

	// Quit confirmation state
	showQuitModal bool

	// copyToClipboard is swapped in tests
	copyToClipboard func(string) error
}

type hasSaveMsg struct {
	ok  bool
	err error
}

type sessionDoneMsg struct {
	err error
}

type resumeMsg struct {
	ok  bool
	err error
}

type progressTickMsg struct{}

func NewConsoleUI(ctx context.Context, session *game.Session, logger *slog.Logger) ConsoleUI {
	country := textinput.New()
	country.Placeholder = "Ülke ismi..."
	country.SetValue(DefaultCountry)
	country.CharLimit = 60
	country.Width = 40
	country.Focus()

	input := textinput.New()
	input.Placeholder = PlaceHolderText
	input.CharLimit = 1000
	input.Width = 60

	body := viewport.New(80, 20)
	body.MouseWheelEnabled = true

	return ConsoleUI{
		ctx:             ctx,
		session:         session,
		logger:          logger,
		showSetup:       true,
		country:         country,
		roles:           catalog.Roles(),
		input:           input,
		body:            body,
		copyToClipboard: clipboard.WriteAll,
	}
}

func (m ConsoleUI) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.probeSave())
}

func (m ConsoleUI) probeSave() tea.Cmd {
	return func() tea.Msg {
		ok, err := m.session.HasSave(m.ctx)
		return hasSaveMsg{ok: ok, err: err}
	}
}

func (m ConsoleUI) startGame(country, role string) tea.Cmd {
	return func() tea.Msg {
		return sessionDoneMsg{err: m.session.Start(m.ctx, country, role)}
	}
}

func (m ConsoleUI) resumeGame() tea.Cmd {
	return func() tea.Msg {
		ok, err := m.session.Resume(m.ctx)
		return resumeMsg{ok: ok, err: err}
	}
}

func (m ConsoleUI) submit(command string) tea.Cmd {
	return func() tea.Msg {
		return sessionDoneMsg{err: m.session.Submit(m.ctx, command)}
	}
}

func (m ConsoleUI) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.showQuitModal {
		return m.updateQuitModal(msg)
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil

	case hasSaveMsg:
		if msg.err != nil {
			m.logger.Warn("Save probe failed", "error", msg.err)
		}
		m.hasSave = msg.ok
		return m, nil

	case sessionDoneMsg:
		m.loading = false
		m.input.Placeholder = PlaceHolderText
		if msg.err != nil {
			m.err = msg.err
			m.logger.Warn("Session call failed", "error", msg.err)
		} else {
			m.err = nil
			m.showSetup = false
			m.input.Reset()
		}
		m.refresh()
		m.input.Focus()
		return m, textinput.Blink

	case resumeMsg:
		m.loading = false
		if msg.err != nil || !msg.ok {
			if msg.err != nil {
				m.logger.Warn("Resume failed", "error", msg.err)
			}
			m.err = msg.err
			m.hasSave = false
			return m, nil
		}
		m.showSetup = false
		m.err = nil
		m.refresh()
		m.input.Focus()
		return m, textinput.Blink

	case progressTickMsg:
		if m.loading {
			m.progressTick++
			return m, progressTick()
		}
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.showQuitModal = true
			return m, nil
		}
		if m.showSetup {
			return m.updateSetup(msg)
		}
		return m.updateGame(msg)

	case tea.MouseMsg:
		var cmd tea.Cmd
		m.body, cmd = m.body.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m ConsoleUI) updateSetup(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.loading {
		return m, nil
	}

	switch msg.Type {
	case tea.KeyEsc:
		m.showQuitModal = true
		return m, nil
	case tea.KeyUp:
		if m.selectedRole > 0 {
			m.selectedRole--
		}
		return m, nil
	case tea.KeyDown:
		if m.selectedRole < len(m.roles)-1 {
			m.selectedRole++
		}
		return m, nil
	case tea.KeyCtrlR:
		if !m.hasSave {
			return m, nil
		}
		m.loading = true
		m.progressTick = 0
		m.err = nil
		return m, tea.Batch(m.resumeGame(), progressTick())
	case tea.KeyEnter:
		country := strings.TrimSpace(m.country.Value())
		if country == "" {
			m.err = game.ErrEmptyCountry
			return m, nil
		}
		m.loading = true
		m.progressTick = 0
		m.err = nil
		return m, tea.Batch(m.startGame(country, m.roles[m.selectedRole].ID), progressTick())
	}

	var cmd tea.Cmd
	m.country, cmd = m.country.Update(msg)
	return m, cmd
}

func (m ConsoleUI) updateGame(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.showQuitModal = true
		return m, nil
	case tea.KeyTab:
		m.view = m.view.next()
		m.refresh()
		return m, nil
	case tea.KeyShiftTab:
		m.view = m.view.prev()
		m.refresh()
		return m, nil
	case tea.KeyPgUp, tea.KeyPgDown, tea.KeyUp, tea.KeyDown:
		var cmd tea.Cmd
		m.body, cmd = m.body.Update(msg)
		return m, cmd
	}

	// input is disabled while the oracle is working
	if m.loading {
		return m, nil
	}

	if msg.Type == tea.KeyEnter {
		raw := m.input.Value()
		if strings.TrimSpace(raw) == "" {
			return m, nil
		}
		if cmd, ok := parseConsoleCommand(raw); ok {
			return m.runCommand(cmd)
		}
		return m.beginTurn(raw)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m ConsoleUI) beginTurn(command string) (tea.Model, tea.Cmd) {
	m.loading = true
	m.progressTick = 0
	m.status = ""
	m.err = nil
	m.input.Blur()
	m.input.Placeholder = BusyText
	m.session.ClearError()
	return m, tea.Batch(m.submit(command), progressTick())
}

func (m ConsoleUI) runCommand(c consoleCommand) (tea.Model, tea.Cmd) {
	m.status = ""
	m.err = nil
	m.input.Reset()

	latest := m.gs.LatestReport()
	decisions := []state.Decision{}
	issues := []string{}
	if latest != nil {
		decisions = latest.CabinetDecisions
		issues = latest.PendingIssues
	}

	switch c.name {
	case cmdHelp:
		m.status = helpText

	case cmdTurn:
		return m.beginTurn(state.NextTurnCommand)

	case cmdDecide:
		i, err := c.index(0, len(decisions))
		if err != nil {
			m.err = err
			break
		}
		j, err := c.index(1, len(decisions[i].Options))
		if err != nil {
			m.err = err
			break
		}
		m.err = m.session.Decide(m.ctx, decisions[i].ID, j)

	case cmdVeto:
		i, err := c.index(0, len(decisions))
		if err != nil {
			m.err = err
			break
		}
		m.err = m.session.Reject(m.ctx, decisions[i].ID)

	case cmdTech:
		techID, err := resolveTech(c)
		if err != nil {
			m.err = err
			break
		}
		m.err = m.session.UnlockTech(m.ctx, techID)

	case cmdIntervene:
		i, err := c.index(0, len(issues))
		if err != nil {
			m.err = err
			break
		}
		m.view = viewDashboard
		m.input.SetValue(game.InterventionDraft(issues[i]))
		m.input.CursorEnd()

	case cmdCopy:
		text := reportText(m.gs)
		if text == "" {
			m.err = errors.New("kopyalanacak rapor yok")
			break
		}
		if err := m.copyToClipboard(text); err != nil {
			m.err = fmt.Errorf("pano kullanılamıyor: %w", err)
			break
		}
		m.status = "Son rapor panoya kopyalandı."

	case cmdNewGame:
		if err := m.session.Discard(m.ctx); err != nil {
			m.err = err
			break
		}
		m.showSetup = true
		m.hasSave = false
		m.gs = nil
		m.country.Focus()
		return m, textinput.Blink

	case cmdQuit:
		m.showQuitModal = true

	default:
		m.err = fmt.Errorf("bilinmeyen komut %s (/yardim)", c.name)
	}

	m.refresh()
	return m, nil
}

// resolveTech accepts a catalog position or a technology id.
func resolveTech(c consoleCommand) (string, error) {
	techs := catalog.Technologies()
	if len(c.args) == 0 {
		return "", fmt.Errorf("%s: %w", c.name, errUsage)
	}
	if _, ok := catalog.TechnologyByID(c.args[0]); ok {
		return c.args[0], nil
	}
	i, err := c.index(0, len(techs))
	if err != nil {
		return "", err
	}
	return techs[i].ID, nil
}

// refresh reloads the snapshot and re-renders the body for the current
// width.
func (m *ConsoleUI) refresh() {
	m.gs = m.session.Snapshot()
	if m.gs == nil {
		return
	}
	m.input.Prompt = promptStyle.Render(textfilter.PromptPrefix(m.gs.Country) + " ")
	m.body.SetContent(renderView(m.view, m.gs, m.body.Width-4))
	m.body.GotoTop()
}

func (m *ConsoleUI) resize() {
	if m.width == 0 || m.height == 0 {
		return
	}
	// header, tabs, stats, separator, status, separator, input
	m.body.Width = m.width
	m.body.Height = max(5, m.height-8)
	m.input.Width = max(20, m.width-len(textfilter.PromptPrefix(DefaultCountry))-8)
	m.ready = true
	m.refresh()
}

func (m ConsoleUI) updateQuitModal(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEnter:
			return m, tea.Quit
		default:
			switch msg.String() {
			case "y", "Y", "e", "E":
				return m, tea.Quit
			case "n", "N", "h", "H", "esc":
				m.showQuitModal = false
				return m, textinput.Blink
			}
		}
	}

	return m, nil
}

func (m ConsoleUI) View() string {
	if m.showQuitModal {
		return m.renderQuitModal()
	}
	if m.showSetup {
		return m.renderSetup()
	}
	if !m.ready || m.gs == nil {
		return "\n  Başlatılıyor..."
	}

	sep := separatorStyle.Render(strings.Repeat("─", max(0, m.width-4)))
	return bodyStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		renderHeader(m.gs),
		renderTabs(m.view),
		renderStats(m.gs.CurrentStats),
		sep,
		m.body.View(),
		sep,
		m.renderStatus(),
		m.input.View(),
	))
}

func (m ConsoleUI) renderStatus() string {
	switch {
	case m.loading:
		return loadingStyle.Render(BusyText+" ") + m.renderProgressBar()
	case m.err != nil:
		return errorStyle.Render(userMessage(m.err))
	case m.status != "":
		return promptStyle.Render(m.status)
	default:
		return promptStyle.Render("Tab: görünüm · /tur: turu tamamla · /yardim: komutlar")
	}
}

func userMessage(err error) string {
	if msg, ok := game.UserMessage(err); ok {
		return msg
	}
	return err.Error()
}

func (m ConsoleUI) renderSetup() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	var content strings.Builder
	content.WriteString(modalTitleStyle.Render("MODERN WORLD"))
	content.WriteString("\n")
	content.WriteString(promptStyle.Render("Global Sandbox Strategy"))
	content.WriteString("\n\n")
	content.WriteString(m.country.View())
	content.WriteString("\n\n")

	for i, role := range m.roles {
		line := fmt.Sprintf("%s · %s", role.ID, role.Description)
		if i == m.selectedRole {
			content.WriteString(modalSelectedItemStyle.Render("▶ " + line))
		} else {
			content.WriteString(modalItemStyle.Render("  " + line))
		}
		content.WriteString("\n")
	}
	content.WriteString("\n")

	switch {
	case m.loading:
		content.WriteString(loadingStyle.Render("SİSTEM BAŞLATILIYOR... ") + m.renderProgressBar())
	case m.err != nil:
		content.WriteString(errorStyle.Render(userMessage(m.err)))
	}
	content.WriteString("\n\n")

	help := "↑/↓ rol seç · Enter: YENİ SİSTEM KUR"
	if m.hasSave {
		help += " · Ctrl+R: KAYITTAN DEVAM ET"
	}
	content.WriteString(promptStyle.Render(help + " · Ctrl+C: çıkış"))

	modal := modalStyle.Width(70).Render(content.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal, lipgloss.WithWhitespaceChars(" "))
}

func (m ConsoleUI) renderQuitModal() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	var content strings.Builder
	content.WriteString(modalTitleStyle.Render("Çıkış?"))
	content.WriteString("\n\n")
	content.WriteString("Oyun kaydedildi. Harekat merkezinden ayrılmak istiyor musunuz?")
	content.WriteString("\n\n")
	content.WriteString(promptStyle.Render("E: çık, H: devam et, Ctrl+C: zorla çık"))

	modal := modalStyle.Width(50).Render(content.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal, lipgloss.WithWhitespaceChars(" "))
}

// renderProgressBar creates an animated progress bar for loading states
func (m ConsoleUI) renderProgressBar() string {
	usable := min(40, max(10, m.width/3))

	const totalFrames = 40
	frame := m.progressTick % totalFrames
	filled := (frame * usable) / totalFrames

	var bar strings.Builder
	for i := 0; i < usable; i++ {
		if i < filled {
			bar.WriteString("█")
		} else if i == filled && frame%4 < 2 {
			bar.WriteString("▓")
		} else {
			bar.WriteString("░")
		}
	}
	return separatorStyle.Render(bar.String())
}

// progressTick creates a command that sends a progress tick message
func progressTick() tea.Cmd {
	return tea.Tick(time.Millisecond*200, func(time.Time) tea.Msg {
		return progressTickMsg{}
	})
}
