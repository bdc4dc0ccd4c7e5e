package main

import (
	"strings"
	"testing"

	"github.com/lixenwraith/orbital/config"
)

func TestReport(t *testing.T) {
	cfg := config.Default()
	cfg.N, cfg.L, cfg.M = 3, 1, 1
	cfg.Width, cfg.Height = 30, 12

	out, err := report(cfg)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !strings.Contains(out, "3p") {
		t.Errorf("Expected state label in report, got:\n%s", out)
	}
}

func TestReportInvalidState(t *testing.T) {
	cfg := config.Default()
	cfg.N, cfg.L = 2, 5
	if _, err := report(cfg); err == nil {
		t.Error("Expected error for invalid state")
	}
}
