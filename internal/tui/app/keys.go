package app

import "github.com/charmbracelet/bubbles/key"

// keyMap описывает горячие клавиши окна
type keyMap struct {
	Pause key.Binding
	Quit  key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Pause: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("пробел", "пауза"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "выход"),
		),
	}
}

// ShortHelp реализует help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Pause, k.Quit}
}

// FullHelp реализует help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
