package main

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	NextTab   key.Binding
	PrevTab   key.Binding
	Search    key.Binding
	Category  key.Binding
	Clear     key.Binding
	Refresh   key.Binding
	UpDown    key.Binding
	Enter     key.Binding
	Start     key.Binding
	Install   key.Binding
	Uninstall key.Binding
	Logos     key.Binding
	Close     key.Binding
	Quit      key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		NextTab:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next tab")),
		PrevTab:   key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev tab")),
		Search:    key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		Category:  key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "category")),
		Clear:     key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "clear filters")),
		Refresh:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
		UpDown:    key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑/↓", "navigate")),
		Enter:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "details")),
		Start:     key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "start agent")),
		Install:   key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "install")),
		Uninstall: key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "uninstall")),
		Logos:     key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "toggle logo urls")),
		Close:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextTab, k.Search, k.Category, k.Enter, k.Refresh, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextTab, k.PrevTab, k.Search, k.Category, k.Clear, k.Logos},
		{k.UpDown, k.Enter, k.Start, k.Install, k.Uninstall, k.Refresh, k.Quit},
	}
}
