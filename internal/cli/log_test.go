package cli

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

func TestNewLoggerLevels(t *testing.T) {
	tests := []struct {
		name  string
		level log.Level
		emit  func(*log.Logger)
		want  bool
	}{
		{"info at info", log.InfoLevel, func(l *log.Logger) { l.Info("page done") }, true},
		{"debug at info", log.InfoLevel, func(l *log.Logger) { l.Debug("unprocessed section") }, false},
		{"debug at debug", log.DebugLevel, func(l *log.Logger) { l.Debug("unprocessed section") }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.emit(newLogger(&buf, tt.level))
			if got := buf.Len() > 0; got != tt.want {
				t.Errorf("wrote output = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestProgressDone(t *testing.T) {
	var buf bytes.Buffer
	newProgress(newLogger(&buf, log.InfoLevel)).done("Imported 3 pages")

	out := buf.String()
	if !strings.Contains(out, "Imported 3 pages (") || !strings.Contains(out, "s)") {
		t.Errorf("progress output = %q", out)
	}
}

func TestLoggerFromContext(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(&buf, log.InfoLevel)

	if got := loggerFromContext(withLogger(context.Background(), l)); got != l {
		t.Error("loggerFromContext did not return the attached logger")
	}
	if loggerFromContext(context.Background()) != log.Default() {
		t.Error("loggerFromContext without a logger should fall back to the default")
	}
}

func TestRootAttachesLogger(t *testing.T) {
	var buf bytes.Buffer
	c := New(&buf, LogInfo)
	c.configPath = filepath.Join(t.TempDir(), "absent.toml")
	root := c.RootCommand()

	cmd := &cobra.Command{}
	cmd.SetContext(context.Background())
	if err := root.PersistentPreRunE(cmd, nil); err != nil {
		t.Fatalf("PersistentPreRunE error: %v", err)
	}

	loggerFromContext(cmd.Context()).With("run", "r1").Info("batch complete")
	if out := buf.String(); !strings.Contains(out, "batch complete") || !strings.Contains(out, "run=r1") {
		t.Errorf("context logger output = %q", out)
	}
}
