package config

import (
	"os"
	"path/filepath"
	"testing"
)

// TestGetHomeWithEnvVar tests CLICKPRINT_HOME env var takes precedence
func TestGetHomeWithEnvVar(t *testing.T) {
	customHome := filepath.Join(t.TempDir(), "state")
	t.Setenv("CLICKPRINT_HOME", customHome)

	home, err := GetHome()
	if err != nil {
		t.Fatalf("GetHome() error = %v", err)
	}
	if home != customHome {
		t.Errorf("GetHome() = %q, want %q", home, customHome)
	}
	if _, err := os.Stat(home); err != nil {
		t.Errorf("home directory not created: %v", err)
	}
}

// TestGetHomeFallsBackToWorkingDir tests the .clickprint directory under cwd
func TestGetHomeFallsBackToWorkingDir(t *testing.T) {
	t.Setenv("CLICKPRINT_HOME", "")
	dir := t.TempDir()
	oldWD, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd() error = %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Chdir() error = %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(oldWD) })

	home, err := GetHome()
	if err != nil {
		t.Fatalf("GetHome() error = %v", err)
	}

	cwd, _ := os.Getwd()
	if home != filepath.Join(cwd, DirName) {
		t.Errorf("GetHome() = %q, want %q", home, filepath.Join(cwd, DirName))
	}
}

func TestGetConfigPathAndLogDir(t *testing.T) {
	customHome := t.TempDir()
	t.Setenv("CLICKPRINT_HOME", customHome)

	cfgPath, err := GetConfigPath()
	if err != nil {
		t.Fatalf("GetConfigPath() error = %v", err)
	}
	if cfgPath != filepath.Join(customHome, "config.yaml") {
		t.Errorf("GetConfigPath() = %q", cfgPath)
	}

	logDir, err := GetLogDir()
	if err != nil {
		t.Fatalf("GetLogDir() error = %v", err)
	}
	if info, err := os.Stat(logDir); err != nil || !info.IsDir() {
		t.Errorf("log dir %q not created", logDir)
	}
}
