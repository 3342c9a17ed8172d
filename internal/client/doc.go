// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the passvault command line.
//
// Every subcommand is a thin layer over [adapter.ServerAdapter]: it parses
// its own flags, obtains a passphrase when one is needed and prints the
// result. Passphrases come from PASSVAULT_PASSPHRASE, then the OS keyring
// (opt-in with -keyring), then an interactive prompt.
package client
