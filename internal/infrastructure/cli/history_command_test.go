package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/doeshing/calchub/internal/app"
	"github.com/doeshing/calchub/internal/domain"
)

func seedHistory(t *testing.T, container *app.Container) {
	t.Helper()
	container.History.Create(domain.HistoryRecord{
		CalculatorID:   "bmi",
		CalculatorName: "BMI Calculator",
		Inputs:         domain.Inputs{"weight": 70.0, "height": 175.0},
		Results:        domain.Results{"bmi": 22.9, "category": "Normal"},
	})
	container.History.Create(domain.HistoryRecord{
		CalculatorID:   "mortgage",
		CalculatorName: "Mortgage Calculator",
		Inputs:         domain.Inputs{"principal": 300000.0},
		Results:        domain.Results{"monthlyPayment": 1896.2},
	})
}

func TestHistoryList(t *testing.T) {
	container := newTestContainer(t)
	seedHistory(t, container)

	out, err := runCommand(t, newHistoryCommand(container), "list")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if !strings.Contains(out, "BMI Calculator") || !strings.Contains(out, "Mortgage Calculator") {
		t.Errorf("list output missing records:\n%s", out)
	}

	out, err = runCommand(t, newHistoryCommand(container), "list", "--calculator", "bmi")
	if err != nil {
		t.Fatalf("list --calculator failed: %v", err)
	}
	if strings.Contains(out, "Mortgage Calculator") {
		t.Errorf("calculator filter broken:\n%s", out)
	}
}

func TestHistoryListEmpty(t *testing.T) {
	container := newTestContainer(t)

	out, err := runCommand(t, newHistoryCommand(container), "list")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if !strings.Contains(out, msgNoHistoryRecorded) {
		t.Errorf("empty list output = %q", out)
	}
}

func TestHistoryListNegativeLimit(t *testing.T) {
	container := newTestContainer(t)
	seedHistory(t, container)

	out, err := runCommand(t, newHistoryCommand(container), "list", "--limit=-1")
	if err != nil {
		t.Fatalf("list --limit=-1 failed: %v", err)
	}
	if !strings.Contains(out, msgNoHistoryRecorded) {
		t.Errorf("negative limit output = %q", out)
	}

	out, err = runCommand(t, newHistoryCommand(container), "list", "--limit=-1", "--calculator", "bmi")
	if err != nil {
		t.Fatalf("list --limit -1 --calculator failed: %v", err)
	}
	if !strings.Contains(out, msgNoHistoryRecorded) {
		t.Errorf("negative limit with calculator filter output = %q", out)
	}
}

func TestHistoryShow(t *testing.T) {
	container := newTestContainer(t)
	seedHistory(t, container)

	out, err := runCommand(t, newHistoryCommand(container), "show", "1")
	if err != nil {
		t.Fatalf("show failed: %v", err)
	}
	for _, want := range []string{"BMI Calculator", "weight", "category"} {
		if !strings.Contains(out, want) {
			t.Errorf("show output missing %q:\n%s", want, out)
		}
	}

	if _, err := runCommand(t, newHistoryCommand(container), "show", "99"); err == nil {
		t.Error("unknown id should fail")
	}
	if _, err := runCommand(t, newHistoryCommand(container), "show", "banana"); err == nil {
		t.Error("non-numeric id should fail")
	}
}

func TestHistorySearchCommand(t *testing.T) {
	container := newTestContainer(t)
	seedHistory(t, container)

	out, err := runCommand(t, newHistoryCommand(container), "search", "300000")
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if !strings.Contains(out, "Mortgage Calculator") || strings.Contains(out, "BMI Calculator") {
		t.Errorf("search output wrong:\n%s", out)
	}

	out, err = runCommand(t, newHistoryCommand(container), "search", "zzz")
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if !strings.Contains(out, "No calculations matched.") {
		t.Errorf("no-match output = %q", out)
	}
}

func TestHistoryDelete(t *testing.T) {
	container := newTestContainer(t)
	seedHistory(t, container)

	out, err := runCommand(t, newHistoryCommand(container), "delete", "1")
	if err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if !strings.Contains(out, "Deleted #1") {
		t.Errorf("delete output = %q", out)
	}
	if container.History.ByID(1) != nil {
		t.Error("record 1 still present after delete")
	}

	if _, err := runCommand(t, newHistoryCommand(container), "delete", "1"); err == nil {
		t.Error("double delete should fail")
	}
}

func TestHistoryClear(t *testing.T) {
	container := newTestContainer(t)
	seedHistory(t, container)

	if _, err := runCommand(t, newHistoryCommand(container), "clear"); err != nil {
		t.Fatalf("clear failed: %v", err)
	}
	if records := container.History.All(); len(records) != 0 {
		t.Errorf("history still has %d records after clear", len(records))
	}
}

func TestHistoryExportCommand(t *testing.T) {
	container := newTestContainer(t)
	seedHistory(t, container)
	dir := filepath.Join(t.TempDir(), "out")

	out, err := runCommand(t, newHistoryCommand(container), "export", "--out", dir)
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}
	if !strings.Contains(out, "calchub-history-2024-01-10.json") {
		t.Errorf("export output = %q", out)
	}

	path := filepath.Join(dir, "calchub-history-2024-01-10.json")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("exported file unreadable: %v", err)
	}
	if !strings.Contains(string(data), "Mortgage Calculator") {
		t.Error("exported document missing records")
	}
}
