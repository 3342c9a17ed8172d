// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config provides configuration loading, merging, and validation
// facilities for the application.
//
// Configuration is assembled from several sources. Values are merged with
// mergo, so the first source that sets a field wins:
//  1. Environment variables (a dotenv file is loaded into the environment
//     first; variables already set are kept)
//  2. Command-line flags (server only)
//  3. JSON or YAML config file
//  4. Built-in defaults
//
// The main entry points are [GetStructuredConfig] for the server and
// [GetClientConfig] for the CLI.
package config
