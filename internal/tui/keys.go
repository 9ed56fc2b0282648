package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up         key.Binding
	down       key.Binding
	left       key.Binding
	right      key.Binding
	enter      key.Binding
	esc        key.Binding
	tab        key.Binding
	backtab    key.Binding
	quit       key.Binding
	forceQuit  key.Binding
	logout     key.Binding
	newItem    key.Binding
	save       key.Binding
	refresh    key.Binding
	edit       key.Binding
	delete     key.Binding
	search     key.Binding
	typeFilter key.Binding
	reveal     key.Binding
	copy       key.Binding
	copyUser   key.Binding
	buildInfo  key.Binding
	yes        key.Binding
	no         key.Binding
}

var keys = keyMap{
	up:         key.NewBinding(key.WithKeys("up", "k")),
	down:       key.NewBinding(key.WithKeys("down", "j")),
	left:       key.NewBinding(key.WithKeys("left")),
	right:      key.NewBinding(key.WithKeys("right")),
	enter:      key.NewBinding(key.WithKeys("enter")),
	esc:        key.NewBinding(key.WithKeys("esc")),
	tab:        key.NewBinding(key.WithKeys("tab")),
	backtab:    key.NewBinding(key.WithKeys("shift+tab")),
	quit:       key.NewBinding(key.WithKeys("q")),
	forceQuit:  key.NewBinding(key.WithKeys("ctrl+c")),
	logout:     key.NewBinding(key.WithKeys("l")),
	newItem:    key.NewBinding(key.WithKeys("n")),
	save:       key.NewBinding(key.WithKeys("s")),
	refresh:    key.NewBinding(key.WithKeys("r")),
	edit:       key.NewBinding(key.WithKeys("e")),
	delete:     key.NewBinding(key.WithKeys("d")),
	search:     key.NewBinding(key.WithKeys("/")),
	typeFilter: key.NewBinding(key.WithKeys("t")),
	reveal:     key.NewBinding(key.WithKeys(" ", "p")),
	copy:       key.NewBinding(key.WithKeys("c")),
	copyUser:   key.NewBinding(key.WithKeys("u")),
	buildInfo:  key.NewBinding(key.WithKeys("v")),
	yes:        key.NewBinding(key.WithKeys("y")),
	no:         key.NewBinding(key.WithKeys("n")),
}
