// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/afero"
)

func TestWipeCommand_RemovesPresentDirectories(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, nil)
	env.mkdir(t, "aws-cpp-sdk-s3", "aws-cpp-sdk-ec2", "handwritten")

	if err := env.run(t, "wipe"); err != nil {
		t.Fatalf("wipe error = %v\nstderr: %s", err, env.stderr.String())
	}

	for _, name := range []string{"aws-cpp-sdk-s3", "aws-cpp-sdk-ec2"} {
		if env.exists(t, name) {
			t.Errorf("%s should have been removed", name)
		}
	}
	if !env.exists(t, "handwritten") {
		t.Error("directories outside the catalog must be left alone")
	}

	out := env.stdout.String()
	if !strings.Contains(out, "aws-cpp-sdk-s3") || !strings.Contains(out, "2 removed, 65 absent") {
		t.Errorf("unexpected output:\n%s", out)
	}
}

func TestWipeCommand_NothingToDo(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, nil)
	if err := env.run(t, "wipe"); err != nil {
		t.Fatalf("wipe error = %v", err)
	}
	if !strings.Contains(env.stdout.String(), "0 removed, 67 absent") {
		t.Errorf("unexpected output:\n%s", env.stdout.String())
	}
	if env.stderr.Len() != 0 {
		t.Errorf("nothing should be logged without --verbose, got: %s", env.stderr.String())
	}
}

func TestWipeCommand_ModuleSelection(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, nil)
	env.mkdir(t, "aws-cpp-sdk-s3", "aws-cpp-sdk-ec2")

	if err := env.run(t, "wipe", "-m", "aws-cpp-sdk-s3"); err != nil {
		t.Fatalf("wipe error = %v", err)
	}
	if env.exists(t, "aws-cpp-sdk-s3") {
		t.Error("selected module should have been removed")
	}
	if !env.exists(t, "aws-cpp-sdk-ec2") {
		t.Error("unselected module should be kept")
	}
	if !strings.Contains(env.stdout.String(), "1 removed, 0 absent") {
		t.Errorf("unexpected output:\n%s", env.stdout.String())
	}
}

func TestWipeCommand_BadModuleSelection(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		module string
		want   string
	}{
		{"unknown module", "aws-cpp-sdk-nope", "not in the catalog"},
		{"path separator", "aws-cpp-sdk-s3/include", "invalid module name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			env := newTestEnv(t, nil)
			env.mkdir(t, "aws-cpp-sdk-s3")

			err := env.run(t, "wipe", "--module", tt.module)
			requireExitCode(t, err, 1)
			if !strings.Contains(env.stderr.String(), tt.want) {
				t.Errorf("stderr should contain %q, got: %s", tt.want, env.stderr.String())
			}
			if !env.exists(t, "aws-cpp-sdk-s3") {
				t.Error("a rejected selection must not wipe anything")
			}
		})
	}
}

func TestWipeCommand_FailFastAndContinue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		args       []string
		config     string
		wantFailed int
	}{
		{"default stops at first failure", []string{"wipe"}, "", 1},
		{"flag continues", []string{"wipe", "--continue-on-error"}, "", 2},
		{"config continues", []string{"wipe"}, "wipe: continue_on_error: true", 2},
		{"flag overrides config", []string{"wipe", "--continue-on-error=false"}, "wipe: continue_on_error: true", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			base := afero.NewMemMapFs()
			env := newTestEnv(t, afero.NewReadOnlyFs(base))
			for _, name := range []string{"aws-cpp-sdk-ec2", "aws-cpp-sdk-s3"} {
				if err := base.MkdirAll(name, 0o755); err != nil {
					t.Fatal(err)
				}
			}
			if tt.config != "" {
				writeUserConfig(t, env, tt.config)
			}

			err := env.run(t, tt.args...)
			requireExitCode(t, err, 1)

			if got := strings.Count(env.stdout.String(), "✗ failed"); got != tt.wantFailed {
				t.Errorf("failed entries = %d, want %d\nstdout: %s", got, tt.wantFailed, env.stdout.String())
			}
			if !strings.Contains(env.stderr.String(), "failed to wipe generated code") {
				t.Errorf("stderr should describe the failure, got: %s", env.stderr.String())
			}
		})
	}
}

func TestWipeCommand_VerboseRendersGuide(t *testing.T) {
	t.Parallel()

	base := afero.NewMemMapFs()
	if err := base.MkdirAll("aws-cpp-sdk-s3", 0o755); err != nil {
		t.Fatal(err)
	}
	env := newTestEnv(t, afero.NewReadOnlyFs(base))

	err := env.run(t, "wipe", "--verbose")
	requireExitCode(t, err, 1)

	stderr := env.stderr.String()
	for _, want := range []string{"removing", "Error chain:", "Permission denied"} {
		if !strings.Contains(stderr, want) {
			t.Errorf("verbose stderr should contain %q, got:\n%s", want, stderr)
		}
	}
}

func TestWipeCommand_ExtraModulesFromConfig(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, nil)
	env.mkdir(t, "aws-cpp-sdk-custom", "aws-cpp-sdk-s3")
	writeUserConfig(t, env, `wipe: extra_modules: ["aws-cpp-sdk-custom"]`)

	if err := env.run(t, "wipe"); err != nil {
		t.Fatalf("wipe error = %v\nstderr: %s", err, env.stderr.String())
	}
	if env.exists(t, "aws-cpp-sdk-custom") || env.exists(t, "aws-cpp-sdk-s3") {
		t.Error("catalog and extra modules should both be wiped")
	}
}

func writeUserConfig(t *testing.T, env *testEnv, content string) {
	t.Helper()
	if err := os.MkdirAll(env.configDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(env.configDir, "config.cue"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}
