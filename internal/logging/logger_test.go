package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// TestAllCategoriesLog tests that all categories create log files when debug mode is on
func TestAllCategoriesLog(t *testing.T) {
	logsPath := filepath.Join(t.TempDir(), "logs")
	t.Cleanup(CloseAll)

	if err := Initialize(logsPath, Options{DebugMode: true, Level: "debug"}); err != nil {
		t.Fatalf("Failed to initialize logging: %v", err)
	}
	if !IsDebugMode() {
		t.Error("Expected debug mode to be enabled")
	}

	for _, cat := range AllCategories {
		if !IsCategoryEnabled(cat) {
			t.Errorf("Category %s should be enabled", cat)
		}
		logger := Get(cat)
		logger.Info("Test info message for %s", cat)
		logger.Debug("Test debug message for %s", cat)
		logger.Warn("Test warn message for %s", cat)
		logger.Error("Test error message for %s", cat)
	}

	// Also test convenience functions
	Boot("Convenience boot log")
	Catalog("Convenience catalog log")
	Form("Convenience form log")
	Solver("Convenience solver log")
	UI("Convenience ui log")
	MCP("Convenience mcp log")
	Config("Convenience config log")

	CloseAll()

	entries, err := os.ReadDir(logsPath)
	if err != nil {
		t.Fatalf("Failed to read logs dir: %v", err)
	}

	for _, cat := range AllCategories {
		found := false
		for _, entry := range entries {
			if !strings.HasSuffix(entry.Name(), "_"+string(cat)+".log") {
				continue
			}
			found = true
			content, err := os.ReadFile(filepath.Join(logsPath, entry.Name()))
			if err != nil {
				t.Errorf("Failed to read log file for %s: %v", cat, err)
				break
			}
			if !strings.Contains(string(content), "Test debug message for "+string(cat)) {
				t.Errorf("Log file for %s is missing the debug entry", cat)
			}
			break
		}
		if !found {
			t.Errorf("No log file found for category: %s", cat)
		}
	}
}

// TestDebugModeDisabled tests that no logs are created in production mode
func TestDebugModeDisabled(t *testing.T) {
	logsPath := filepath.Join(t.TempDir(), "logs")
	t.Cleanup(CloseAll)

	if err := Initialize(logsPath, Options{DebugMode: false}); err != nil {
		t.Fatalf("Failed to initialize logging: %v", err)
	}
	if IsDebugMode() {
		t.Error("Expected debug mode to be disabled")
	}

	Boot("should not be written")
	Solver("should not be written")

	if _, err := os.Stat(logsPath); !os.IsNotExist(err) {
		t.Errorf("logs directory should not exist in production mode, stat err=%v", err)
	}
}

func TestCategoryToggle(t *testing.T) {
	logsPath := filepath.Join(t.TempDir(), "logs")
	t.Cleanup(CloseAll)

	err := Initialize(logsPath, Options{
		DebugMode:  true,
		Level:      "info",
		Categories: map[string]bool{"mcp": false},
	})
	if err != nil {
		t.Fatalf("Failed to initialize logging: %v", err)
	}

	if IsCategoryEnabled(CategoryMCP) {
		t.Error("mcp should be disabled")
	}
	if !IsCategoryEnabled(CategorySolver) {
		t.Error("unlisted categories default to enabled")
	}

	MCP("dropped")
	SolverDebug("below level")
	Solver("kept")
	CloseAll()

	entries, err := os.ReadDir(logsPath)
	if err != nil {
		t.Fatalf("Failed to read logs dir: %v", err)
	}
	for _, entry := range entries {
		if strings.HasSuffix(entry.Name(), "_mcp.log") {
			t.Errorf("unexpected mcp log file %s", entry.Name())
		}
		if strings.HasSuffix(entry.Name(), "_solver.log") {
			content, _ := os.ReadFile(filepath.Join(logsPath, entry.Name()))
			if strings.Contains(string(content), "below level") {
				t.Error("debug entry written at info level")
			}
			if !strings.Contains(string(content), "kept") {
				t.Error("info entry missing")
			}
		}
	}
}

func TestJSONFormat(t *testing.T) {
	logsPath := filepath.Join(t.TempDir(), "logs")
	t.Cleanup(CloseAll)

	if err := Initialize(logsPath, Options{DebugMode: true, Level: "debug", JSONFormat: true}); err != nil {
		t.Fatalf("Failed to initialize logging: %v", err)
	}
	Get(CategoryForm).With("problem", "gcd").Info("submitted")
	CloseAll()

	date := time.Now().Format("2006-01-02")
	content, err := os.ReadFile(filepath.Join(logsPath, date+"_form.log"))
	if err != nil {
		t.Fatalf("read form log: %v", err)
	}
	line := string(content)
	if !strings.Contains(line, `"msg":"submitted"`) || !strings.Contains(line, `"problem":"gcd"`) {
		t.Errorf("expected JSON entry with fields, got %s", line)
	}
}

func TestInitializeRequiresDir(t *testing.T) {
	if err := Initialize("", Options{}); err == nil {
		t.Error("expected error for empty logs dir")
	}
}

func TestTimer(t *testing.T) {
	timer := StartTimer(CategorySolver, "noop")
	if d := timer.StopWithThreshold(time.Hour); d < 0 {
		t.Errorf("negative duration %v", d)
	}
}
