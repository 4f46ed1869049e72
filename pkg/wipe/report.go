// SPDX-License-Identifier: MPL-2.0

package wipe

import "sdkwipe/pkg/sdkdir"

const (
	// OutcomeAbsent means nothing existed at the path, so nothing was done.
	OutcomeAbsent Outcome = iota
	// OutcomeRemoved means the directory tree was deleted.
	OutcomeRemoved
	// OutcomeFailed means the path existed but could not be deleted.
	OutcomeFailed
)

type (
	// Outcome is what happened to a single catalog entry.
	Outcome int

	// Entry records the result for one catalog entry.
	Entry struct {
		Name    sdkdir.ModuleName
		Path    string
		Outcome Outcome
		// Err is set only when Outcome is OutcomeFailed.
		Err error
	}

	// Report lists the entries processed by a wipe, in catalog order.
	// Under fail-fast, processing stops at the first failure and the
	// remaining entries are not listed.
	Report struct {
		Entries []Entry
	}
)

// String returns a lowercase label for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeAbsent:
		return "absent"
	case OutcomeRemoved:
		return "removed"
	case OutcomeFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Removed returns the names whose directories were deleted.
func (r Report) Removed() []sdkdir.ModuleName { return r.with(OutcomeRemoved) }

// Absent returns the names that had nothing to delete.
func (r Report) Absent() []sdkdir.ModuleName { return r.with(OutcomeAbsent) }

// Failed returns the names whose deletion failed.
func (r Report) Failed() []sdkdir.ModuleName { return r.with(OutcomeFailed) }

func (r Report) with(o Outcome) []sdkdir.ModuleName {
	var out []sdkdir.ModuleName
	for _, e := range r.Entries {
		if e.Outcome == o {
			out = append(out, e.Name)
		}
	}
	return out
}
