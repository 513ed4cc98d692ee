package tui

import "github.com/charmbracelet/bubbles/key"

// listKeys are the bindings of the question list.
type listKeys struct {
	Up     key.Binding
	Down   key.Binding
	Add    key.Binding
	Edit   key.Binding
	Delete key.Binding
	Expand key.Binding
	Save   key.Binding
	Import key.Binding
	Quit   key.Binding
}

// formKeys are the bindings of the question form.
type formKeys struct {
	Next         key.Binding
	Prev         key.Binding
	AddOption    key.Binding
	RemoveOption key.Binding
	Submit       key.Binding
	Cancel       key.Binding
}

// promptKeys are the bindings of the file prompt and delete confirmation.
type promptKeys struct {
	Confirm key.Binding
	Cancel  key.Binding
	Yes     key.Binding
}

var (
	defaultListKeys = listKeys{
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Add:    key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
		Edit:   key.NewBinding(key.WithKeys("e", "enter"), key.WithHelp("e", "edit")),
		Delete: key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
		Expand: key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "expand")),
		Save:   key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "save")),
		Import: key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "import")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}

	defaultFormKeys = formKeys{
		Next:         key.NewBinding(key.WithKeys("tab", "down", "enter"), key.WithHelp("tab", "next")),
		Prev:         key.NewBinding(key.WithKeys("shift+tab", "up"), key.WithHelp("shift+tab", "prev")),
		AddOption:    key.NewBinding(key.WithKeys("ctrl+n"), key.WithHelp("ctrl+n", "add option")),
		RemoveOption: key.NewBinding(key.WithKeys("ctrl+x"), key.WithHelp("ctrl+x", "remove option")),
		Submit:       key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),
		Cancel:       key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	}

	defaultPromptKeys = promptKeys{
		Confirm: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "confirm")),
		Cancel:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		Yes:     key.NewBinding(key.WithKeys("y", "Y"), key.WithHelp("y", "yes")),
	}
)

// helpLine joins the help text of the enabled bindings.
func helpLine(bindings ...key.Binding) string {
	line := ""
	for _, binding := range bindings {
		if !binding.Enabled() {
			continue
		}
		help := binding.Help()
		if line != "" {
			line += " · "
		}
		line += help.Key + " " + help.Desc
	}
	return line
}
