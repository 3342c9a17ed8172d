// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-pass-vault/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	maskedPassword = "********"
	// chrome is the number of lines taken by everything except table rows.
	chrome = 10
)

var columnWidths = []int{24, 20, 20, 30}

type copiedMsg struct {
	website string
	err     error
}

type viewerModel struct {
	title    string
	records  []models.Record
	table    table.Model
	copy     CopyFunc
	revealed bool
	status   string
	lastErr  error
}

func newViewerModel(title string, records []models.Record, copyFn CopyFunc) viewerModel {
	cols := make([]table.Column, len(models.RecordFields))
	for i, name := range models.RecordFields {
		cols[i] = table.Column{Title: name, Width: columnWidths[i]}
	}

	t := table.New(
		table.WithColumns(cols),
		table.WithFocused(true),
		table.WithStyles(tableStyles()),
	)

	m := viewerModel{title: title, records: records, table: t, copy: copyFn}
	m.table.SetRows(m.rows())
	return m
}

func (m viewerModel) rows() []table.Row {
	rows := make([]table.Row, len(m.records))
	for i, r := range m.records {
		values := r.Values()
		if !m.revealed && values[2] != "" {
			values[2] = maskedPassword
		}
		rows[i] = values
	}
	return rows
}

func (m viewerModel) selected() (models.Record, bool) {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.records) {
		return models.Record{}, false
	}
	return m.records[i], true
}

func (m viewerModel) Init() tea.Cmd {
	return nil
}

func (m viewerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.table.SetHeight(max(msg.Height-chrome, 3))
		return m, nil

	case copiedMsg:
		if msg.err != nil {
			m.lastErr = msg.err
			m.status = ""
			return m, nil
		}
		m.lastErr = nil
		m.status = fmt.Sprintf("copied password for %s", msg.website)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.quit):
			return m, tea.Quit
		case key.Matches(msg, keys.reveal):
			m.revealed = !m.revealed
			m.table.SetRows(m.rows())
			return m, nil
		case key.Matches(msg, keys.copy):
			rec, ok := m.selected()
			if !ok {
				return m, nil
			}
			copyFn := m.copy
			return m, func() tea.Msg {
				if err := copyFn(rec.Password); err != nil {
					return copiedMsg{website: rec.Website, err: fmt.Errorf("copy to clipboard: %w", err)}
				}
				return copiedMsg{website: rec.Website}
			}
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m viewerModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("%s (%d records)", m.title, len(m.records))))
	b.WriteString("\n\n")

	if len(m.records) == 0 {
		b.WriteString("vault is empty\n")
	} else {
		b.WriteString(tableStyle.Render(m.table.View()))
		b.WriteString("\n")
	}

	switch {
	case m.lastErr != nil:
		b.WriteString("\n" + errorStyle.Render("error: "+m.lastErr.Error()) + "\n")
	case m.status != "":
		b.WriteString("\n" + statusStyle.Render(m.status) + "\n")
	}

	help := make([]string, 0, len(keys.help()))
	for _, k := range keys.help() {
		h := k.Help()
		help = append(help, h.Key+" "+h.Desc)
	}
	b.WriteString("\n" + helpStyle.Render(strings.Join(help, "  •  ")))

	return appStyle.Render(b.String())
}
