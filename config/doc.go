// Copyright (c) 2026 Showreel Team
// Showreel - terminal carousel presenter
// This source code is licensed under the MIT license found in the LICENSE file.
// Package config provides configuration loading, merging, and persistence
// helpers for Showreel. It uses Viper for file/env/flag parsing and exposes
// utility functions to read/write configuration files.
package config
