package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/kbukum/logtree/channel"
	"github.com/kbukum/logtree/logger"
	"github.com/kbukum/logtree/severity"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
	return path
}

const sampleYAML = `
logging:
  channels:
    console:
      type: console
      output: stderr
      no_color: true
    audit:
      type: json
  loggers:
    "":
      level: warning
      channel: console
    "svc.http":
      level: debug
      channel: audit
`

func TestLoad(t *testing.T) {
	path := writeFile(t, "config.yml", sampleYAML)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Channels["console"].Output != "stderr" || !cfg.Channels["console"].NoColor {
		t.Errorf("console channel = %+v", cfg.Channels["console"])
	}
	if cfg.Channels["audit"].Output != "stdout" {
		t.Error("defaults should fill the audit channel output")
	}
	if cfg.Loggers[""].Level != "warning" {
		t.Errorf("root level = %q, want warning", cfg.Loggers[""].Level)
	}
	if cfg.Loggers["svc.http"].Channel != "audit" {
		t.Errorf("svc.http channel = %q, want audit", cfg.Loggers["svc.http"].Channel)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yml")); err == nil {
		t.Error("expected an error for a missing config file")
	}
}

func TestLoadInvalidChannelType(t *testing.T) {
	path := writeFile(t, "config.yml", `
logging:
  channels:
    bad:
      type: carrier-pigeon
`)
	if _, err := Load(path); err == nil {
		t.Error("expected a validation error for an unsupported channel type")
	}
}

func TestLoadInvalidLevel(t *testing.T) {
	path := writeFile(t, "config.yml", `
logging:
  loggers:
    "svc":
      level: loud
`)
	if _, err := Load(path); err == nil {
		t.Error("expected a validation error for an unknown level")
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv(EnvLevel, "trace")
	t.Setenv(EnvChannel, "console")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	root := cfg.Loggers[logger.RootName]
	if root.Level != "trace" || root.Channel != "console" {
		t.Errorf("root override = %+v, want trace/console", root)
	}
}

func TestEnvFile(t *testing.T) {
	envPath := writeFile(t, "logtree.env", "LOGTREE_LEVEL=error\n")
	defer os.Unsetenv(EnvLevel)

	cfg, err := Load("", WithEnvFile(envPath))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Loggers[logger.RootName].Level != "error" {
		t.Errorf("root level = %q, want error from env file", cfg.Loggers[logger.RootName].Level)
	}
}

func TestApply(t *testing.T) {
	dir := channel.NewDirectory()
	reg := logger.NewRegistry(dir)
	capture := channel.NewMemory()
	dir.Register("capture", capture)

	cfg := &Config{
		Loggers: map[string]LoggerConfig{
			"":    {Level: "warning", Channel: "capture"},
			"a.b": {Level: "trace"},
		},
	}
	if err := cfg.Apply(reg, dir); err != nil {
		t.Fatalf("Apply returned error: %v", err)
	}

	if reg.Root().Level() != severity.Warning {
		t.Error("root level should be configured")
	}
	// "a.b" was configured after the root (ancestors first), so it picked
	// up the root's channel at creation and then its own level.
	ab := reg.Has("a.b")
	if ab == nil {
		t.Fatal("a.b should have been created")
	}
	if ab.Level() != severity.Trace || ab.Channel() != channel.Channel(capture) {
		t.Errorf("a.b = %v/%v, want trace with the root's channel", ab.Level(), ab.Channel())
	}

	// A logger created after Apply inherits the configured state.
	late := reg.Get("a.b.c")
	late.Trace("observed")
	if capture.Len() != 1 {
		t.Errorf("captured %d records, want 1 from a descendant", capture.Len())
	}
}

func TestApplyUnknownChannel(t *testing.T) {
	dir := channel.NewDirectory()
	reg := logger.NewRegistry(dir)
	cfg := &Config{
		Loggers: map[string]LoggerConfig{"svc": {Channel: "ghost"}},
	}
	if err := cfg.Apply(reg, dir); err == nil {
		t.Error("expected an error for an unregistered channel name")
	}
}

func TestApplySplitter(t *testing.T) {
	dir := channel.NewDirectory()
	reg := logger.NewRegistry(dir)
	cfg := &Config{
		Channels: map[string]ChannelConfig{
			"console": {Type: "console", Output: "stderr"},
			"devnull": {Type: "null"},
			"both":    {Type: "splitter", Targets: []string{"console", "devnull"}},
		},
	}
	if err := cfg.Apply(reg, dir); err != nil {
		t.Fatalf("Apply returned error: %v", err)
	}
	ch, err := dir.Resolve("both")
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	s, ok := ch.(*channel.Splitter)
	if !ok {
		t.Fatalf("channel type = %T, want *channel.Splitter", ch)
	}
	if s.Count() != 2 {
		t.Errorf("splitter targets = %d, want 2", s.Count())
	}
}

func TestOrderedLoggerNames(t *testing.T) {
	names := orderedLoggerNames(map[string]LoggerConfig{
		"a.b.c": {},
		"":      {},
		"b":     {},
		"a.b":   {},
		"a":     {},
	})
	want := []string{"", "a", "b", "a.b", "a.b.c"}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("order = %v, want %v", names, want)
		}
	}
}

func TestConfigure(t *testing.T) {
	t.Cleanup(logger.Shutdown)
	t.Cleanup(func() { channel.Unregister("cfgtest-null") })

	path := writeFile(t, "config.yml", `
logging:
  channels:
    cfgtest-null:
      type: "null"
  loggers:
    "cfgtest.svc":
      level: debug
      channel: cfgtest-null
`)
	if err := Configure(path); err != nil {
		t.Fatalf("Configure returned error: %v", err)
	}
	l := logger.Has("cfgtest.svc")
	if l == nil {
		t.Fatal("cfgtest.svc should exist in the default registry")
	}
	if l.Level() != severity.Debug {
		t.Errorf("level = %v, want debug", l.Level())
	}
	if _, err := channel.Resolve("cfgtest-null"); err != nil {
		t.Errorf("channel should be registered in the default directory: %v", err)
	}
}
