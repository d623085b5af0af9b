package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type keyMap struct {
	Quit        key.Binding
	Help        key.Binding
	Start       key.Binding
	Pause       key.Binding
	Stop        key.Binding
	Video       key.Binding
	Audio       key.Binding
	Panel       key.Binding
	Scroll      key.Binding
	Faster      key.Binding
	Slower      key.Binding
	Reset       key.Binding
	NextScript  key.Binding
	PrevScript  key.Binding
	Upload      key.Binding
	Edit        key.Binding
	Save        key.Binding
	Cancel      key.Binding
	Confirm     key.Binding
	pickScripts []key.Binding
}

func newKeyMap() keyMap {
	km := keyMap{
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Start:      key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "start recording")),
		Pause:      key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "pause/resume")),
		Stop:       key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "stop")),
		Video:      key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "camera")),
		Audio:      key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "mic")),
		Panel:      key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "teleprompter")),
		Scroll:     key.NewBinding(key.WithKeys("p", "enter"), key.WithHelp("p", "scroll start/pause")),
		Faster:     key.NewBinding(key.WithKeys("+", "=", "right"), key.WithHelp("+", "faster")),
		Slower:     key.NewBinding(key.WithKeys("-", "left"), key.WithHelp("-", "slower")),
		Reset:      key.NewBinding(key.WithKeys("0", "home"), key.WithHelp("0", "reset")),
		NextScript: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next script")),
		PrevScript: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev script")),
		Upload:     key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "upload script")),
		Edit:       key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit script")),
		Save:       key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save script")),
		Cancel:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		Confirm:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
	}
	for _, k := range []string{"1", "2", "3", "4", "5", "6", "7", "8", "9"} {
		km.pickScripts = append(km.pickScripts, key.NewBinding(key.WithKeys(k)))
	}
	return km
}

// pickIndex returns the catalog index for a 1-9 shortcut, or -1.
func (k keyMap) pickIndex(msg tea.KeyMsg) int {
	for i, b := range k.pickScripts {
		if key.Matches(msg, b) {
			return i
		}
	}
	return -1
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Start, k.Pause, k.Stop, k.Panel, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Start, k.Pause, k.Stop, k.Video, k.Audio},
		{k.Panel, k.Scroll, k.Faster, k.Slower, k.Reset},
		{k.NextScript, k.PrevScript, k.Upload, k.Edit, k.Save},
		{k.Help, k.Cancel, k.Quit},
	}
}
