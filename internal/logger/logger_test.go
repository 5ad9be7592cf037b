package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLogWritesFileAndMemory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "splitter.txt")
	l := New(path)

	l.Log("hello")
	l.Logf("population %d", 4)

	lines := l.Lines()
	if len(lines) != 2 {
		t.Fatalf("Expected 2 lines, got %d", len(lines))
	}
	if !strings.HasPrefix(lines[0], "[") || !strings.HasSuffix(lines[0], "] hello") {
		t.Errorf("Expected timestamped line, got %q", lines[0])
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if got := strings.Count(string(data), "\n"); got != 2 {
		t.Errorf("Expected 2 lines on disk, got %d", got)
	}
	if !strings.Contains(string(data), "population 4") {
		t.Errorf("Expected formatted line on disk, got %q", data)
	}
}

func TestLinesReturnsCopy(t *testing.T) {
	l := New("")
	l.Log("a")
	lines := l.Lines()
	lines[0] = "changed"
	if l.Lines()[0] == "changed" {
		t.Error("Expected Lines to return a copy")
	}
}

func TestPopulationMilestones(t *testing.T) {
	l := New("")

	last := l.Population(0, 1, 10)
	last = l.Population(last, 2, 10)
	last = l.Population(last, 5, 10) // crosses 4
	last = l.Population(last, 5, 10) // no change
	last = l.Population(last, 10, 10)

	if last != 10 {
		t.Errorf("Expected watermark 10, got %d", last)
	}
	want := []string{"population 1/10", "population 2/10", "population 4/10", "population 8/10", "population 10/10 (cap reached)"}
	lines := l.Lines()
	if len(lines) != len(want) {
		t.Fatalf("Expected %d lines, got %d: %v", len(want), len(lines), lines)
	}
	for i, w := range want {
		if !strings.HasSuffix(lines[i], w) {
			t.Errorf("Line %d: expected suffix %q, got %q", i, w, lines[i])
		}
	}
}

func TestPopulationPowerOfTwoCap(t *testing.T) {
	l := New("")

	last := l.Population(0, 1, 8)
	last = l.Population(last, 8, 8)
	last = l.Population(last, 8, 8)

	if last != 8 {
		t.Errorf("Expected watermark 8, got %d", last)
	}
	want := []string{"population 1/8", "population 2/8", "population 4/8", "population 8/8 (cap reached)"}
	lines := l.Lines()
	if len(lines) != len(want) {
		t.Fatalf("Expected %d lines, got %d: %v", len(want), len(lines), lines)
	}
	for i, w := range want {
		if !strings.HasSuffix(lines[i], w) {
			t.Errorf("Line %d: expected suffix %q, got %q", i, w, lines[i])
		}
	}
}
