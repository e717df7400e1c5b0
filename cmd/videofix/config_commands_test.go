package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
)

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestConfigInitAndTargets(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.toml")

	out, err := runCommand(t, "config", "init", "--path", configPath)
	if err != nil {
		t.Fatalf("config init error = %v", err)
	}
	if !strings.Contains(out, configPath) {
		t.Errorf("init output %q should name the written path", out)
	}

	out, err = runCommand(t, "targets", "--config", configPath)
	if err != nil {
		t.Fatalf("targets error = %v", err)
	}
	if !strings.Contains(out, "standard (default)") {
		t.Errorf("targets output should mark the default target:\n%s", out)
	}
	if !strings.Contains(out, "strict") {
		t.Errorf("targets output should list every target:\n%s", out)
	}
}

func TestConfigInitRefusesOverwrite(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.toml")

	if _, err := runCommand(t, "config", "init", "--path", configPath); err != nil {
		t.Fatalf("first init error = %v", err)
	}
	if _, err := runCommand(t, "config", "init", "--path", configPath); err == nil {
		t.Error("second init without --overwrite should fail")
	}
	if _, err := runCommand(t, "config", "init", "--path", configPath, "--overwrite"); err != nil {
		t.Errorf("init with --overwrite error = %v", err)
	}
}

func TestConfigPathHonorsFlag(t *testing.T) {
	out, err := runCommand(t, "config", "path", "--config", "/tmp/custom.toml")
	if err != nil {
		t.Fatalf("config path error = %v", err)
	}
	if strings.TrimSpace(out) != "/tmp/custom.toml" {
		t.Errorf("config path = %q, want the flag value", strings.TrimSpace(out))
	}
}

func TestCheckMissingConfig(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.toml")
	_, err := runCommand(t, "check", "--config", missing)
	if err == nil {
		t.Fatal("check with a missing config should fail")
	}
	if !strings.Contains(err.Error(), "config init") {
		t.Errorf("error %q should hint at config init", err)
	}
}
