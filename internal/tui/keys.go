// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	reveal key.Binding
	copy   key.Binding
	quit   key.Binding
}

var keys = keyMap{
	reveal: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "show/hide passwords")),
	copy:   key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "copy password")),
	quit:   key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
}

func (k keyMap) help() []key.Binding {
	return []key.Binding{k.reveal, k.copy, k.quit}
}
