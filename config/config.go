// Package config loads the YAML configuration of a UAC node.
package config

//go:generate go tool errtrace -w .

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"braces.dev/errtrace"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/arentrue/nksip/internal/errorutil"
	"github.com/arentrue/nksip/log"
	"github.com/arentrue/nksip/sip"
)

// Config is the configuration of a UAC node.
type Config struct {
	// GlobalID identifies the node in stateless branches.
	// A random one is generated if empty.
	GlobalID string `yaml:"global_id"`
	// SrvID is the identifier of the local SIP server.
	SrvID     string     `yaml:"srv_id"`
	Log       log.Config `yaml:"log"`
	Transport Transport  `yaml:"transport"`
	Timings   Timings    `yaml:"timings"`
	Workers   Workers    `yaml:"workers"`
	Metrics   Metrics    `yaml:"metrics"`
}

// Transport describes the local sent-by address put into Via.
type Transport struct {
	Protocol string `yaml:"protocol"`
	Host     string `yaml:"host"`
	Port     uint16 `yaml:"port"`
	// Reliable disables request retransmissions.
	Reliable bool `yaml:"reliable"`
}

// Timings are the SIP base timer values, zero means the RFC 3261 default.
type Timings struct {
	T1     time.Duration `yaml:"t1"`
	T2     time.Duration `yaml:"t2"`
	T4     time.Duration `yaml:"t4"`
	TimerD time.Duration `yaml:"timer_d"`
}

// TimingConfig converts the timings into [sip.TimingConfig].
func (t Timings) TimingConfig() sip.TimingConfig {
	return sip.NewTimings(t.T1, t.T2, t.T4, t.TimerD)
}

// Workers configures the call workers.
type Workers struct {
	QueueSize int  `yaml:"queue_size"`
	Shards    uint `yaml:"shards"`
}

// Metrics configures the Prometheus endpoint.
type Metrics struct {
	Enabled   bool   `yaml:"enabled"`
	Namespace string `yaml:"namespace"`
	Listen    string `yaml:"listen"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads and parses the configuration file.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errtrace.Wrap(fmt.Errorf("open config file: %w", err))
	}
	defer f.Close()

	cfg, err := Parse(f)
	if err != nil {
		return nil, errtrace.Wrap(fmt.Errorf("load config file %q: %w", path, err))
	}
	return cfg, nil
}

// Parse decodes the YAML configuration, applies defaults and validates it.
// Unknown fields are rejected.
func Parse(r io.Reader) (*Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, errtrace.Wrap(errorutil.NewInvalidArgumentError(fmt.Errorf("decode yaml: %w", err)))
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, errtrace.Wrap(err)
	}
	return &cfg, nil
}

// ParseBytes is like [Parse] but reads from a byte slice.
func ParseBytes(data []byte) (*Config, error) {
	return errtrace.Wrap2(Parse(bytes.NewReader(data)))
}

func (c *Config) applyDefaults() {
	if c.GlobalID == "" {
		c.GlobalID = uuid.NewString()
	}
	if c.SrvID == "" {
		c.SrvID = "uac"
	}
	if c.Transport.Protocol == "" {
		c.Transport.Protocol = "UDP"
	}
	if c.Transport.Host == "" {
		c.Transport.Host = "127.0.0.1"
	}
	if c.Transport.Port == 0 {
		c.Transport.Port = 5060
	}
	if c.Workers.QueueSize <= 0 {
		c.Workers.QueueSize = 64
	}
	if c.Workers.Shards == 0 {
		c.Workers.Shards = 32
	}
	if c.Metrics.Namespace == "" {
		c.Metrics.Namespace = "uac"
	}
	if c.Metrics.Listen == "" {
		c.Metrics.Listen = ":9090"
	}
}

// Validate checks the configuration values.
func (c *Config) Validate() error {
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return errtrace.Wrap(fmt.Errorf("log level: %w", err))
	}
	switch c.Log.Format {
	case "", log.FormatConsole, log.FormatDev, log.FormatJSON, log.FormatText:
	default:
		return errtrace.Wrap(errorutil.NewInvalidArgumentError("unknown log format %q", c.Log.Format))
	}

	for name, d := range map[string]time.Duration{
		"t1":      c.Timings.T1,
		"t2":      c.Timings.T2,
		"t4":      c.Timings.T4,
		"timer_d": c.Timings.TimerD,
	} {
		if d < 0 {
			return errtrace.Wrap(errorutil.NewInvalidArgumentError("negative timer %s: %v", name, d))
		}
	}
	if tc := c.Timings.TimingConfig(); tc.T2() < tc.T1() {
		return errtrace.Wrap(errorutil.NewInvalidArgumentError("timer t2 %v is less than t1 %v", tc.T2(), tc.T1()))
	}
	return nil
}
