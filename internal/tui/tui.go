// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui renders a loaded vault as an interactive terminal table.
package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-pass-vault/models"
	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

// CopyFunc places text on the system clipboard.
type CopyFunc func(text string) error

// Viewer shows the records of one vault until the user quits.
type Viewer struct {
	title   string
	records []models.Record
	copy    CopyFunc
	opts    []tea.ProgramOption
}

// NewViewer creates a viewer for records. A nil copyFn uses the system
// clipboard.
func NewViewer(title string, records []models.Record, copyFn CopyFunc) *Viewer {
	if copyFn == nil {
		copyFn = clipboard.WriteAll
	}
	return &Viewer{
		title:   title,
		records: records,
		copy:    copyFn,
		opts:    []tea.ProgramOption{tea.WithAltScreen()},
	}
}

// Run blocks until the user quits or ctx is cancelled.
func (v *Viewer) Run(ctx context.Context) error {
	opts := append([]tea.ProgramOption{tea.WithContext(ctx)}, v.opts...)
	_, err := tea.NewProgram(newViewerModel(v.title, v.records, v.copy), opts...).Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return ctx.Err()
	}
	return err
}
