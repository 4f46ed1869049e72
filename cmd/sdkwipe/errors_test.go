// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"sdkwipe/internal/issue"
	"sdkwipe/pkg/sdkdir"
	"sdkwipe/pkg/wipe"
)

func TestExitError(t *testing.T) {
	t.Parallel()

	cause := errors.New("boom")
	if got := (&ExitError{Code: 2, Err: cause}).Error(); got != "boom" {
		t.Errorf("Error() = %q, want %q", got, "boom")
	}
	if got := (&ExitError{Code: 3}).Error(); got != "exit status 3" {
		t.Errorf("Error() = %q, want %q", got, "exit status 3")
	}
	if !errors.Is(&ExitError{Code: 1, Err: cause}, cause) {
		t.Error("ExitError should unwrap to its cause")
	}
}

func TestWipeFailure(t *testing.T) {
	t.Parallel()

	removeErr := func(cause error) error {
		return &wipe.RemoveError{Name: "aws-cpp-sdk-s3", Path: "aws-cpp-sdk-s3", Err: cause}
	}

	tests := []struct {
		name      string
		err       error
		wantIssue issue.Id
	}{
		{"permission", removeErr(&fs.PathError{Op: "unlinkat", Path: "aws-cpp-sdk-s3", Err: fs.ErrPermission}), issue.PermissionDeniedId},
		{"not a directory", removeErr(wipe.ErrNotDirectory), issue.NotDirectoryId},
		{"other", removeErr(errors.New("device busy")), issue.RemoveFailedId},
		{"symlink", removeErr(wipe.ErrSymlink), issue.NotDirectoryId},
		{"joined", errors.Join(removeErr(errors.New("busy")), removeErr(errors.New("busy"))), issue.RemoveFailedId},
		{"joined uses first failure", errors.Join(
			removeErr(errors.New("device busy")),
			&wipe.RemoveError{Name: "aws-cpp-sdk-ec2", Path: "aws-cpp-sdk-ec2", Err: wipe.ErrNotDirectory},
		), issue.RemoveFailedId},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var ae *issue.ActionableError
			if !errors.As(wipeFailure(tt.err), &ae) {
				t.Fatal("wipeFailure() should return an *issue.ActionableError")
			}
			if ae.Issue != tt.wantIssue {
				t.Errorf("Issue = %d, want %d", ae.Issue, tt.wantIssue)
			}
			if ae.Resource != "aws-cpp-sdk-s3" {
				t.Errorf("Resource = %q, want the failing path", ae.Resource)
			}
			if !errors.Is(ae, wipe.ErrRemoveFailed) {
				t.Error("cause should still match wipe.ErrRemoveFailed")
			}
		})
	}
}

func TestWipeFailure_Canceled(t *testing.T) {
	t.Parallel()

	err := wipeFailure(fmt.Errorf("wipe canceled: %w", context.Canceled))
	var ae *issue.ActionableError
	if !errors.As(err, &ae) || ae.Issue != 0 || !errors.Is(err, context.Canceled) {
		t.Errorf("canceled wipe should be wrapped without a guide, got %#v", err)
	}
}

func TestModuleSelectionError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want issue.Id
	}{
		{"unknown", &sdkdir.UnknownModuleError{Name: "x"}, issue.UnknownModuleId},
		{"invalid", &sdkdir.InvalidModuleNameError{Value: "a/b", Reason: "contains a path separator"}, issue.InvalidModuleNameId},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var ae *issue.ActionableError
			if !errors.As(moduleSelectionError(tt.err), &ae) || ae.Issue != tt.want {
				t.Errorf("moduleSelectionError() issue = %v, want %d", ae, tt.want)
			}
		})
	}
}

func TestFormatErrorForDisplay(t *testing.T) {
	t.Parallel()

	plain := errors.New("plain failure")
	if got := formatErrorForDisplay(plain, true); got != "plain failure" {
		t.Errorf("formatErrorForDisplay(plain) = %q", got)
	}

	ae := issue.NewErrorContext().
		WithOperation("wipe generated code").
		WithSuggestion("try again").
		Wrap(plain).
		BuildError()
	if got := formatErrorForDisplay(ae, false); got != "failed to wipe generated code: plain failure\n\n  • try again" {
		t.Errorf("formatErrorForDisplay(actionable) = %q", got)
	}
}
