package quiz

import "charm.land/bubbles/v2/key"

// keyMap holds the quiz screen bindings.
type keyMap struct {
	Choice     key.Binding
	Up         key.Binding
	Down       key.Binding
	Submit     key.Binding
	Next       key.Binding
	Difficulty key.Binding
	Reset      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Choice: key.NewBinding(
			key.WithKeys("1", "2", "3", "4"),
			key.WithHelp("1-4", "Answer"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑", "Up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓", "Down"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("Enter", "Submit"),
		),
		Next: key.NewBinding(
			key.WithKeys("enter", "n", "space"),
			key.WithHelp("Enter", "Next"),
		),
		Difficulty: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("D", "Level"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("R", "Restart"),
		),
	}
}
