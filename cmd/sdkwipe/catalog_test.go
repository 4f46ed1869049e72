// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"strings"
	"testing"
)

func TestCatalogCommand_Plain(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, nil)
	if err := env.run(t, "catalog"); err != nil {
		t.Fatalf("catalog error = %v", err)
	}

	lines := strings.Split(strings.TrimSpace(env.stdout.String()), "\n")
	if len(lines) != 67 {
		t.Fatalf("catalog printed %d lines, want 67", len(lines))
	}
	if lines[0] != "aws-cpp-sdk-autoscaling" || lines[66] != "aws-cpp-sdk-meteringmarketplace" {
		t.Errorf("catalog order changed: first %q, last %q", lines[0], lines[66])
	}
}

func TestCatalogCommand_IncludesExtraModules(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, nil)
	writeUserConfig(t, env, `wipe: extra_modules: ["aws-cpp-sdk-custom"]`)
	if err := env.run(t, "catalog"); err != nil {
		t.Fatalf("catalog error = %v", err)
	}

	lines := strings.Split(strings.TrimSpace(env.stdout.String()), "\n")
	if len(lines) != 68 || lines[67] != "aws-cpp-sdk-custom" {
		t.Errorf("extra module should be listed last, got %d lines ending in %q", len(lines), lines[len(lines)-1])
	}
}

func TestCatalogCommand_Check(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, nil)
	env.mkdir(t, "aws-cpp-sdk-s3")
	if err := env.run(t, "catalog", "--check"); err != nil {
		t.Fatalf("catalog error = %v", err)
	}

	marks := make(map[string]string)
	for line := range strings.Lines(env.stdout.String()) {
		fields := strings.Fields(line)
		if len(fields) >= 2 {
			marks[fields[len(fields)-1]] = line
		}
	}
	if !strings.Contains(marks["aws-cpp-sdk-s3"], "●") {
		t.Errorf("present module should be marked, got %q", marks["aws-cpp-sdk-s3"])
	}
	if !strings.Contains(marks["aws-cpp-sdk-ec2"], "○") {
		t.Errorf("absent module should be marked, got %q", marks["aws-cpp-sdk-ec2"])
	}
}

func TestCatalogCommand_Markdown(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, nil)
	if err := env.run(t, "catalog", "--markdown"); err != nil {
		t.Fatalf("catalog error = %v", err)
	}
	out := env.stdout.String()
	if !strings.Contains(out, "SDK module directories (67)") || !strings.Contains(out, "aws-cpp-sdk-autoscaling") {
		t.Errorf("unexpected markdown output:\n%s", out)
	}
}

func TestCatalogMarkdown(t *testing.T) {
	t.Parallel()

	rows := []catalogRow{{name: "mod-a", present: true}, {name: "mod-b"}}

	plain := catalogMarkdown(rows, false)
	if !strings.Contains(plain, "| 1 | `mod-a` |\n") || strings.Contains(plain, "Present") {
		t.Errorf("unexpected table:\n%s", plain)
	}

	checked := catalogMarkdown(rows, true)
	if !strings.Contains(checked, "| 1 | `mod-a` | yes |") || !strings.Contains(checked, "| 2 | `mod-b` | no |") {
		t.Errorf("unexpected checked table:\n%s", checked)
	}
}
