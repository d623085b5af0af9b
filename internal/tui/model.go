// Package tui provides the Bubble Tea recording and teleprompter interface.
package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/verte-zerg/telecue/internal/model"
	"github.com/verte-zerg/telecue/internal/recording"
	"github.com/verte-zerg/telecue/internal/studio"
)

const (
	frameInterval       = 50 * time.Millisecond
	speedStep           = 5
	defaultStepsPerLine = 36
	defaultWidth        = 80
	defaultHeight       = 24
	// rows used by everything but the teleprompter text
	chromeHeight  = 17
	minPanelLines = 3
)

type frameMsg struct{}

type mode int

const (
	modeMain mode = iota
	modeHelp
	modeEditor
	modeUpload
)

// Options configures the UI.
type Options struct {
	StepsPerLine int
	Logger       *zap.Logger
}

// Model implements the Bubble Tea recording UI.
type Model struct {
	studio       *studio.Studio
	log          *zap.Logger
	keys         keyMap
	help         help.Model
	stepsPerLine int

	width  int
	height int

	mode      mode
	showPanel bool

	prompter viewport.Model
	editor   textarea.Model
	upload   textinput.Model

	layoutScript model.ScriptID

	status string
	errMsg string
}

var (
	titleStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	clockStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Bold(true)
	mutedStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	footerStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	errorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	onStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("#52C41A"))
	offStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	recordingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F")).Bold(true)
	pausedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#FAAD14")).Bold(true)
	previewStyle   = lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#4A4A4A"))
	panelStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#C89A3A"))
	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#C89A3A")).
			Padding(1, 2)
)

// NewModel constructs the UI over an open studio.
func NewModel(st *studio.Studio, opts Options) *Model {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	steps := opts.StepsPerLine
	if steps <= 0 {
		steps = defaultStepsPerLine
	}
	m := &Model{
		studio:       st,
		log:          log,
		keys:         newKeyMap(),
		help:         help.New(),
		stepsPerLine: steps,
		width:        defaultWidth,
		height:       defaultHeight,
		prompter:     viewport.New(0, 0),
		editor:       newEditor(),
		upload:       newUploadInput(),
	}
	m.relayout()
	return m
}

func newEditor() textarea.Model {
	ta := textarea.New()
	ta.Placeholder = "Enter your custom script here..."
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.MaxHeight = 0
	return ta
}

func newUploadInput() textinput.Model {
	input := textinput.New()
	input.Prompt = "File (.txt, .md): "
	input.Placeholder = "~/scripts/intro.md"
	input.CharLimit = 0
	return input
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return frameTick()
}

func frameTick() tea.Cmd {
	return tea.Tick(frameInterval, func(time.Time) tea.Msg {
		return frameMsg{}
	})
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.relayout()
		return m, nil
	case frameMsg:
		m.syncScroll()
		return m, frameTick()
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		switch m.mode {
		case modeHelp:
			return m.updateHelp(msg)
		case modeEditor:
			return m.updateEditor(msg)
		case modeUpload:
			return m.updateUpload(msg)
		default:
			return m.updateMain(msg)
		}
	}
	var cmd tea.Cmd
	switch m.mode {
	case modeEditor:
		m.editor, cmd = m.editor.Update(msg)
	case modeUpload:
		m.upload, cmd = m.upload.Update(msg)
	}
	return m, cmd
}

func (m *Model) updateMain(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.mode = modeHelp
		return m, nil
	case key.Matches(msg, m.keys.Start):
		if m.studio.StartRecording() {
			m.setStatus("Recording started")
		}
		return m, nil
	case key.Matches(msg, m.keys.Pause):
		if m.studio.TogglePauseRecording() {
			m.setStatus("Recording " + m.studio.Recording().Status.String())
		}
		return m, nil
	case key.Matches(msg, m.keys.Stop):
		if m.studio.StopRecording() {
			m.setStatus("Recording stopped")
		}
		return m, nil
	case key.Matches(msg, m.keys.Video):
		m.setStatus("Camera " + onOff(m.studio.ToggleVideo()))
		return m, nil
	case key.Matches(msg, m.keys.Audio):
		m.setStatus("Microphone " + onOff(m.studio.ToggleAudio()))
		return m, nil
	case key.Matches(msg, m.keys.Panel):
		m.showPanel = !m.showPanel
		return m, nil
	}
	if !m.showPanel {
		return m, nil
	}
	switch {
	case key.Matches(msg, m.keys.Scroll):
		m.studio.ToggleScroll()
	case key.Matches(msg, m.keys.Faster):
		m.studio.SetScrollSpeed(m.studio.Teleprompter().Speed + speedStep)
	case key.Matches(msg, m.keys.Slower):
		m.studio.SetScrollSpeed(m.studio.Teleprompter().Speed - speedStep)
	case key.Matches(msg, m.keys.Reset):
		m.studio.ResetTeleprompter()
	case key.Matches(msg, m.keys.NextScript):
		m.cycleScript(1)
	case key.Matches(msg, m.keys.PrevScript):
		m.cycleScript(-1)
	case key.Matches(msg, m.keys.Upload):
		return m, m.openUpload()
	case key.Matches(msg, m.keys.Edit):
		return m, m.openEditor(m.studio.CustomText())
	default:
		if idx := m.keys.pickIndex(msg); idx >= 0 {
			m.pickScript(idx)
		}
	}
	m.syncScroll()
	return m, nil
}

func (m *Model) updateHelp(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Help), key.Matches(msg, m.keys.Cancel):
		m.mode = modeMain
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	}
	return m, nil
}

func (m *Model) updateEditor(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.closeEditor()
		return m, nil
	case key.Matches(msg, m.keys.Save):
		sc := m.studio.CommitCustom(m.editor.Value())
		m.closeEditor()
		m.relayout()
		m.setStatus(fmt.Sprintf("%s selected", sc.Title))
		return m, nil
	}
	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

func (m *Model) updateUpload(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.closeUpload()
		return m, nil
	case key.Matches(msg, m.keys.Confirm):
		path := strings.TrimSpace(m.upload.Value())
		if path == "" {
			m.errMsg = "enter a file path"
			return m, nil
		}
		m.closeUpload()
		sc, err := m.studio.ImportFile(expandHome(path))
		if err != nil {
			m.errMsg = err.Error()
			return m, nil
		}
		return m, m.openEditor(sc.Content)
	}
	var cmd tea.Cmd
	m.upload, cmd = m.upload.Update(msg)
	return m, cmd
}

func (m *Model) openEditor(text string) tea.Cmd {
	m.mode = modeEditor
	m.errMsg = ""
	m.editor.SetValue(text)
	return m.editor.Focus()
}

func (m *Model) closeEditor() {
	m.mode = modeMain
	m.editor.Blur()
}

func (m *Model) openUpload() tea.Cmd {
	m.mode = modeUpload
	m.errMsg = ""
	m.upload.SetValue("")
	return m.upload.Focus()
}

func (m *Model) closeUpload() {
	m.mode = modeMain
	m.upload.Blur()
}

func (m *Model) cycleScript(delta int) {
	catalog := m.studio.Catalog()
	if len(catalog) == 0 {
		return
	}
	idx := selectedIndex(catalog, m.studio.Selected().ID)
	next := ((idx+delta)%len(catalog) + len(catalog)) % len(catalog)
	m.pickScript(next)
}

func (m *Model) pickScript(idx int) {
	catalog := m.studio.Catalog()
	if idx < 0 || idx >= len(catalog) {
		return
	}
	if m.studio.SelectScript(catalog[idx].ID) {
		m.relayout()
	}
}

func (m *Model) setStatus(s string) {
	m.status = s
	m.errMsg = ""
	m.log.Debug("ui status", zap.String("status", s))
}

// relayout sizes widgets and re-wraps the selected script, updating the
// scroll bound to the wrapped length.
func (m *Model) relayout() {
	panelWidth := maxInt(24, m.width*70/100)
	m.prompter.Width = panelWidth - 4
	m.prompter.Height = maxInt(minPanelLines, m.height-chromeHeight)

	sc := m.studio.Selected()
	lines := wrapText(sc.Content, m.prompter.Width)
	m.prompter.SetContent(strings.Join(lines, "\n"))
	maxOffset := maxInt(0, len(lines)-m.prompter.Height)
	m.studio.SetScrollLimit(maxOffset * m.stepsPerLine)
	m.layoutScript = sc.ID

	inner := modalInnerWidth(m.width)
	m.editor.SetWidth(inner)
	m.editor.SetHeight(maxInt(5, m.height-12))
	m.upload.Width = maxInt(10, inner-lipgloss.Width(m.upload.Prompt))
	m.help.Width = m.width
	m.syncScroll()
}

func (m *Model) syncScroll() {
	if m.studio.Selected().ID != m.layoutScript {
		m.relayout()
		return
	}
	pos := m.studio.Teleprompter().Position
	m.prompter.SetYOffset(pos / m.stepsPerLine)
}

// View implements tea.Model.
func (m *Model) View() string {
	switch m.mode {
	case modeHelp:
		return m.renderModal("Help", m.help.FullHelpView(m.keys.FullHelp()), "? or esc to close")
	case modeEditor:
		return m.renderModal("Custom Script", m.editor.View(), "ctrl+s save / esc cancel")
	case modeUpload:
		body := m.upload.View()
		if m.errMsg != "" {
			body += "\n" + errorStyle.Render(m.errMsg)
		}
		return m.renderModal("Upload Script", body, "enter open / esc cancel")
	}
	snap := m.studio.Recording()
	sections := []string{
		m.renderHeader(snap),
		m.renderPreview(snap),
		m.renderControls(snap),
	}
	if m.showPanel {
		sections = append(sections, m.renderPanel())
	}
	sections = append(sections, m.renderStatus())
	body := lipgloss.JoinVertical(lipgloss.Center, sections...)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Top, body)
}

func (m *Model) renderHeader(snap model.RecordingSnapshot) string {
	left := titleStyle.Render(m.studio.Selected().Title)
	right := clockStyle.Render(recording.HeaderClock(snap.ElapsedSeconds))
	gap := maxInt(1, m.width-lipgloss.Width(left)-lipgloss.Width(right))
	return left + strings.Repeat(" ", gap) + right
}

func (m *Model) renderPreview(snap model.RecordingSnapshot) string {
	sc := m.studio.Selected()
	feed, err := m.studio.Feed()
	var preview string
	switch {
	case err != nil || feed == nil || !feed.Video():
		preview = offStyle.Render("Camera unavailable")
	case !snap.Flags.Video:
		preview = offStyle.Render("Camera is off")
	default:
		preview = onStyle.Render("Live preview: " + feed.Describe())
	}
	devices := fmt.Sprintf("Camera %s  Mic %s", renderFlag(snap.Flags.Video), renderFlag(snap.Flags.Audio))
	lines := []string{preview, devices}
	switch snap.Status {
	case model.StatusRecording:
		lines = append(lines, recordingStyle.Render("● RECORDING "+recording.FormatElapsed(snap.ElapsedSeconds)))
	case model.StatusPaused:
		lines = append(lines, pausedStyle.Render("● PAUSED "+recording.FormatElapsed(snap.ElapsedSeconds)))
	default:
		lines = append(lines, "")
	}
	lines = append(lines,
		"0. "+sc.Description,
		mutedStyle.Render(sc.EstimatedTime+" | unlimited takes"),
	)
	width := maxInt(24, m.width*70/100)
	return previewStyle.Width(width).Render(strings.Join(lines, "\n"))
}

func (m *Model) renderControls(snap model.RecordingSnapshot) string {
	var parts []string
	if snap.Status == model.StatusIdle {
		parts = append(parts, "[r] Start recording")
	} else {
		action := "Pause"
		if snap.Status == model.StatusPaused {
			action = "Resume"
		}
		parts = append(parts, "[space] "+action, "[s] Stop")
	}
	panel := "Show"
	if m.showPanel {
		panel = "Hide"
	}
	parts = append(parts, fmt.Sprintf("[t] %s Teleprompter", panel))
	return footerStyle.Render(strings.Join(parts, "  "))
}

func (m *Model) renderPanel() string {
	sc := m.studio.Selected()
	catalog := m.studio.Catalog()
	tp := m.studio.Teleprompter()
	action := "Start"
	if tp.Scrolling {
		action = "Pause"
	}
	title := titleStyle.Render("Teleprompter · " + sc.Title)
	settings := mutedStyle.Render(fmt.Sprintf("Script %d/%d  Scroll Speed: %d%%",
		selectedIndex(catalog, sc.ID)+1, len(catalog), tp.Speed))
	box := panelStyle.Render(m.prompter.View())
	controls := footerStyle.Render(fmt.Sprintf("[p] %s  [+/-] Speed  [0] Reset  [tab] Script  [u] Upload  [e] Edit", action))
	return lipgloss.JoinVertical(lipgloss.Left, title, settings, box, controls)
}

func (m *Model) renderStatus() string {
	if m.errMsg != "" {
		return errorStyle.Render(m.errMsg)
	}
	if m.status != "" {
		return footerStyle.Render(m.status + "  ·  " + m.help.View(m.keys))
	}
	return m.help.View(m.keys)
}

func (m *Model) renderModal(title, body, hint string) string {
	content := strings.Join([]string{
		titleStyle.Render(title),
		body,
		footerStyle.Render(hint),
	}, "\n")
	box := modalStyle.Width(modalWidth(m.width)).Render(content)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

func renderFlag(on bool) string {
	if on {
		return onStyle.Render("on")
	}
	return offStyle.Render("off")
}

func onOff(on bool) string {
	if on {
		return "on"
	}
	return "off"
}

func selectedIndex(catalog []model.Script, id model.ScriptID) int {
	for i, sc := range catalog {
		if sc.ID == id {
			return i
		}
	}
	return 0
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func modalWidth(width int) int {
	return maxInt(40, minInt(width-4, 80))
}

func modalInnerWidth(width int) int {
	w := modalWidth(width)
	w -= 6 // 2 border + 4 padding
	if w < 10 {
		return 10
	}
	return w
}
