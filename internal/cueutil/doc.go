// SPDX-License-Identifier: MPL-2.0

// Package cueutil validates CUE documents against an embedded schema.
//
// Decoding follows three steps: compile the schema, compile the user data and
// unify it with a schema definition, then validate and decode. Errors carry
// the file name and a JSON-style path to the offending field, for example
//
//	sdkwipe.cue: wipe.extra_modules[0]: invalid value "a/b"
package cueutil
