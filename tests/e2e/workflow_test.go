package e2e

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

// TestEndToEndWorkflow drives the built binary through a full day of
// use: init, counting, goal change, custom types, export/import and
// backups. It needs a prebuilt binary; set MISBAHA_BIN to point at it
// or build into ../../bin first.
func TestEndToEndWorkflow(t *testing.T) {
	cliPath := os.Getenv("MISBAHA_BIN")
	if cliPath == "" {
		cwd, err := os.Getwd()
		if err != nil {
			t.Fatalf("Failed to get cwd: %v", err)
		}
		cliPath, _ = filepath.Abs(filepath.Join(cwd, "..", "..", "bin", "misbaha"))
	}
	if _, err := os.Stat(cliPath); os.IsNotExist(err) {
		t.Skipf("binary not found at %s; build it or set MISBAHA_BIN", cliPath)
	}

	tempDir := t.TempDir()
	storePath := filepath.Join(tempDir, "misbaha", "misbaha.db")

	env := append(os.Environ(),
		fmt.Sprintf("HOME=%s", tempDir),
		fmt.Sprintf("XDG_CONFIG_HOME=%s", tempDir),
	)

	run := func(args ...string) (string, error) {
		t.Helper()
		allArgs := append([]string{"--store", storePath}, args...)
		cmd := exec.Command(cliPath, allArgs...)
		cmd.Env = env
		var out bytes.Buffer
		cmd.Stdout = &out
		cmd.Stderr = &out
		err := cmd.Run()
		return out.String(), err
	}

	mustRun := func(args ...string) string {
		t.Helper()
		out, err := run(args...)
		if err != nil {
			t.Fatalf("misbaha %s failed: %v\n%s", strings.Join(args, " "), err, out)
		}
		return out
	}

	// Init
	out := mustRun("init")
	if !strings.Contains(out, "Initialized") {
		t.Errorf("init output = %q", out)
	}

	// Count 40 repetitions: crosses the milestone at 33
	out = mustRun("tap", "-n", "40")
	if !strings.Contains(out, "40") {
		t.Errorf("tap output missing count: %q", out)
	}

	// Undo one
	mustRun("tap", "--undo")

	// Goal round trip
	mustRun("goal", "50")
	out = mustRun("goal")
	if !strings.Contains(out, "50") {
		t.Errorf("goal output = %q", out)
	}

	// Reach the goal: 39 so far, 11 more makes 50
	out = mustRun("tap", "-n", "11")
	if !strings.Contains(out, "goal") && !strings.Contains(out, "🎉") {
		t.Errorf("expected goal notice in %q", out)
	}

	// Custom type lifecycle
	out = mustRun("zikr", "add", "My Dhikr")
	if !strings.Contains(out, "custom_") {
		t.Errorf("zikr add output = %q", out)
	}
	out = mustRun("zikr", "list")
	if !strings.Contains(out, "My Dhikr") {
		t.Errorf("zikr list output = %q", out)
	}

	// Stats reflect the day
	out = mustRun("stats")
	if !strings.Contains(out, "50") {
		t.Errorf("stats output = %q", out)
	}

	// Export / import round trip
	exportPath := filepath.Join(tempDir, "export.json")
	mustRun("export", "-o", exportPath)

	data, err := os.ReadFile(exportPath)
	if err != nil {
		t.Fatalf("failed to read export: %v", err)
	}
	var payload map[string]any
	if err := json.Unmarshal(data, &payload); err != nil {
		t.Fatalf("export is not valid JSON: %v", err)
	}
	if got, ok := payload["todayCount"].(float64); !ok || int(got) != 50 {
		t.Errorf("export todayCount = %v, want 50", payload["todayCount"])
	}

	mustRun("import", "-y", exportPath)

	// Backups
	out = mustRun("backup", "create")
	if !strings.Contains(out, "Backup created") {
		t.Errorf("backup create output = %q", out)
	}
	out = mustRun("backup", "list")
	if !strings.Contains(out, "misbaha-") {
		t.Errorf("backup list output = %q", out)
	}

	// Doctor should pass on a healthy store
	out, err = run("doctor")
	if err != nil {
		t.Errorf("doctor failed: %v\n%s", err, out)
	}

	// Achievements list renders
	out = mustRun("achievements")
	if !strings.Contains(out, "[") {
		t.Errorf("achievements output = %q", out)
	}
}
