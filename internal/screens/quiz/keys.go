package quiz

import "charm.land/bubbles/v2/key"

type keyMap struct {
	Confirm key.Binding
	Skip    key.Binding
	Stop    key.Binding
	Up      key.Binding
	Down    key.Binding
	Nudge   key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Confirm: key.NewBinding(key.WithKeys("enter"), key.WithHelp("Enter", "Confirm")),
		Skip:    key.NewBinding(key.WithKeys("s"), key.WithHelp("S", "Skip")),
		Stop:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("Esc", "Stop")),
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑↓", "Choose")),
		Down:    key.NewBinding(key.WithKeys("down", "j")),
		Nudge:   key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←", "Drag")),
	}
}
