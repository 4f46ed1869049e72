// SPDX-License-Identifier: MPL-2.0

// Package config handles sdkwipe configuration using Viper with CUE as the file format.
//
// Configuration is loaded from ~/.config/sdkwipe/config.cue (or the XDG equivalent
// on Linux, ~/Library/Application Support/sdkwipe/config.cue on macOS,
// %APPDATA%\sdkwipe\config.cue on Windows). When no user config exists, a
// project-local sdkwipe.cue in the working directory is used instead.
//
// Files are validated against the embedded config_schema.cue before their
// values are merged over the defaults.
package config
