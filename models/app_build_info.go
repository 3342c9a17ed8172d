// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

const unknownBuildValue = "N/A"

// AppBuildInfo carries build metadata injected with -ldflags into the
// passvault binaries.
type AppBuildInfo struct {
	version string
	date    string
	commit  string
}

// NewAppBuildInfo constructs [AppBuildInfo]. Empty values are reported as
// "N/A".
func NewAppBuildInfo(version, date, commit string) AppBuildInfo {
	return AppBuildInfo{
		version: orUnknown(version),
		date:    orUnknown(date),
		commit:  orUnknown(commit),
	}
}

func (a AppBuildInfo) Version() string { return a.version }
func (a AppBuildInfo) Date() string    { return a.date }
func (a AppBuildInfo) Commit() string  { return a.commit }

// String renders the three lines printed by the binaries on start and by
// `passvault version`.
func (a AppBuildInfo) String() string {
	return fmt.Sprintf("Build version: %s\nBuild date: %s\nBuild commit: %s", a.version, a.date, a.commit)
}

func orUnknown(v string) string {
	if v == "" {
		return unknownBuildValue
	}
	return v
}
