package config

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/kbukum/logtree/channel"
	"github.com/kbukum/logtree/logger"
	"github.com/kbukum/logtree/severity"
)

// Config is the logging section of a configuration file.
type Config struct {
	Channels map[string]ChannelConfig `yaml:"channels" mapstructure:"channels" validate:"dive"`
	Loggers  map[string]LoggerConfig  `yaml:"loggers" mapstructure:"loggers" validate:"dive"`
}

// ChannelConfig describes one named channel.
type ChannelConfig struct {
	Type    string `yaml:"type" mapstructure:"type" validate:"required,oneof=console json writer null splitter"`
	Output  string `yaml:"output" mapstructure:"output" validate:"omitempty,oneof=stdout stderr"`
	NoColor bool   `yaml:"no_color" mapstructure:"no_color"`
	// Targets lists the destination channel names of a splitter. Ignored
	// for other types.
	Targets []string `yaml:"targets" mapstructure:"targets"`
}

// LoggerConfig describes the level and channel of one logger. Empty fields
// leave the corresponding logger attribute untouched.
type LoggerConfig struct {
	Level   string `yaml:"level" mapstructure:"level"`
	Channel string `yaml:"channel" mapstructure:"channel"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// ApplyDefaults fills in defaults: channels without a type become console
// channels on stdout.
func (c *Config) ApplyDefaults() {
	for name, ch := range c.Channels {
		if ch.Type == "" {
			ch.Type = "console"
		}
		if ch.Output == "" {
			ch.Output = "stdout"
		}
		c.Channels[name] = ch
	}
}

// Validate checks channel types and outputs via struct tags and logger
// levels via the severity scale.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("logging config: %w", err)
	}
	for name, lc := range c.Loggers {
		if lc.Level == "" {
			continue
		}
		if _, err := severity.Parse(lc.Level); err != nil {
			return fmt.Errorf("logging config: logger %q: %w", name, err)
		}
	}
	return nil
}

// Apply builds and registers the configured channels in dir, then configures
// the listed loggers in reg, ancestors before descendants. A nil reg or dir
// uses the process-wide defaults.
func (c *Config) Apply(reg *logger.Registry, dir *channel.Directory) error {
	if reg == nil {
		reg = logger.Default()
	}
	if dir == nil {
		dir = channel.Default()
	}

	// Splitters reference other channels by name, so plain channels are
	// registered first.
	var splitters []string
	for name, cc := range c.Channels {
		if cc.Type == "splitter" {
			splitters = append(splitters, name)
			continue
		}
		ch, err := buildChannel(cc)
		if err != nil {
			return fmt.Errorf("channel %q: %w", name, err)
		}
		dir.Register(name, ch)
	}
	for _, name := range splitters {
		s := channel.NewSplitter()
		for _, target := range c.Channels[name].Targets {
			ch, err := dir.Resolve(target)
			if err != nil {
				return fmt.Errorf("channel %q: %w", name, err)
			}
			s.Add(ch)
		}
		dir.Register(name, s)
	}

	for _, name := range orderedLoggerNames(c.Loggers) {
		lc := c.Loggers[name]
		l := reg.Get(name)
		if lc.Channel != "" {
			ch, err := dir.Resolve(lc.Channel)
			if err != nil {
				return fmt.Errorf("logger %q: %w", name, err)
			}
			l.SetChannel(ch)
		}
		if lc.Level != "" {
			if err := l.SetLevelName(lc.Level); err != nil {
				return fmt.Errorf("logger %q: %w", name, err)
			}
		}
	}
	return nil
}

// orderedLoggerNames sorts logger names ancestors-first, so a child created
// during Apply snapshots its parent's already-configured state.
func orderedLoggerNames(loggers map[string]LoggerConfig) []string {
	names := make([]string, 0, len(loggers))
	for name := range loggers {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		di, dj := strings.Count(names[i], "."), strings.Count(names[j], ".")
		if di != dj {
			return di < dj
		}
		return names[i] < names[j]
	})
	return names
}

func buildChannel(cc ChannelConfig) (channel.Channel, error) {
	out := outputWriter(cc.Output)
	switch cc.Type {
	case "console":
		return channel.NewConsole(out, cc.NoColor), nil
	case "json":
		return channel.NewJSON(out), nil
	case "writer":
		return channel.NewWriter(out), nil
	case "null":
		return channel.Null{}, nil
	default:
		return nil, fmt.Errorf("unsupported channel type %q", cc.Type)
	}
}

func outputWriter(output string) io.Writer {
	if strings.ToLower(output) == "stderr" {
		return os.Stderr
	}
	return os.Stdout
}
