package main

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/config"
)

func TestVariantArg(t *testing.T) {
	tests := []struct {
		args    []string
		want    string
		wantErr bool
	}{
		{nil, "snake", false},
		{[]string{"snake_walls"}, "snake_walls", false},
		{[]string{"snake_hardcore"}, "snake_hardcore", false},
		{[]string{"tetris"}, "", true},
	}

	for _, tt := range tests {
		got, err := variantArg(tt.args)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("variantArg(%v) = %q, %v", tt.args, got, err)
		}
	}
}

func TestRuntimeConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Grid.Width = 40
	cfg.TickRate = 12

	rc := runtimeConfig(cfg, 20)
	if rc.GridW != 40 || rc.GridH != 24 || rc.CellSize != 20 || rc.TickRate != 12 {
		t.Errorf("runtimeConfig() = %+v", rc)
	}
}

func TestNewLoggerLevel(t *testing.T) {
	cfg := config.Default()
	cfg.Log.Level = "warn"

	var buf bytes.Buffer
	logger, closeLog, err := newLogger(cfg, &buf)
	if err != nil {
		t.Fatal(err)
	}
	defer closeLog()

	logger.Info("hidden")
	logger.Warn("shown")
	if strings.Contains(buf.String(), "hidden") || !strings.Contains(buf.String(), "shown") {
		t.Errorf("log output = %q", buf.String())
	}
}

func TestListCommand(t *testing.T) {
	var buf bytes.Buffer
	listCmd.SetOut(&buf)
	defer listCmd.SetOut(io.Discard)

	runList(listCmd, nil)
	for _, id := range []string{"snake", "snake_walls", "snake_hardcore"} {
		if !strings.Contains(buf.String(), id) {
			t.Errorf("list output missing %q:\n%s", id, buf.String())
		}
	}
}
