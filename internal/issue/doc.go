// SPDX-License-Identifier: MPL-2.0

// Package issue provides actionable error handling with user-friendly messages.
//
// ActionableError carries the failed operation, the resource involved and
// remediation hints. Issues are longer Markdown troubleshooting guides,
// rendered with glamour when the CLI runs in verbose mode.
package issue
