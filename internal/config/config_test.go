package config

import (
	"bytes"
	"errors"
	"testing"
	"time"

	apperrors "github.com/agbru/omnicalc/internal/errors"
)

var testOps = []string{"add", "divmod", "gcd", "sqrt"}

func TestParseConfig(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want func(t *testing.T, cfg AppConfig)
	}{
		{
			name: "one-shot operation with operands",
			args: []string{"-op", "add", "1", "2"},
			want: func(t *testing.T, cfg AppConfig) {
				if cfg.Op != "add" {
					t.Errorf("Op = %q, want add", cfg.Op)
				}
				if len(cfg.Operands) != 2 || cfg.Operands[0] != "1" || cfg.Operands[1] != "2" {
					t.Errorf("Operands = %v, want [1 2]", cfg.Operands)
				}
			},
		},
		{
			name: "interactive mode needs no operation",
			args: []string{"-i"},
			want: func(t *testing.T, cfg AppConfig) {
				if !cfg.Interactive {
					t.Error("Interactive = false")
				}
			},
		},
		{
			name: "server mode with port",
			args: []string{"-server", "-port", "9090"},
			want: func(t *testing.T, cfg AppConfig) {
				if !cfg.ServerMode || cfg.Port != "9090" {
					t.Errorf("ServerMode=%v Port=%q", cfg.ServerMode, cfg.Port)
				}
			},
		},
		{
			name: "defaults",
			args: []string{"-op", "sqrt", "4"},
			want: func(t *testing.T, cfg AppConfig) {
				if cfg.Port != DefaultPort {
					t.Errorf("Port = %q, want default %q", cfg.Port, DefaultPort)
				}
				if cfg.Timeout != DefaultTimeout {
					t.Errorf("Timeout = %s, want default %s", cfg.Timeout, DefaultTimeout)
				}
			},
		},
		{
			name: "timeout flag",
			args: []string{"-op", "gcd", "-timeout", "5s", "4", "6"},
			want: func(t *testing.T, cfg AppConfig) {
				if cfg.Timeout != 5*time.Second {
					t.Errorf("Timeout = %s, want 5s", cfg.Timeout)
				}
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			cfg, err := ParseConfig("omnicalc", tc.args, &buf, testOps)
			if err != nil {
				t.Fatalf("ParseConfig(%v) failed: %v", tc.args, err)
			}
			tc.want(t, cfg)
		})
	}
}

func TestParseConfig_Invalid(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"no mode selected", []string{}},
		{"unknown operation", []string{"-op", "pow", "2", "10"}},
		{"unknown flag", []string{"-frobnicate"}},
		{"bad port", []string{"-server", "-port", "http"}},
		{"port out of range", []string{"-server", "-port", "70000"}},
		{"non-positive timeout", []string{"-op", "add", "-timeout", "-1s"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			_, err := ParseConfig("omnicalc", tc.args, &buf, testOps)
			if err == nil {
				t.Fatalf("ParseConfig(%v) succeeded, want ConfigError", tc.args)
			}
			var ce apperrors.ConfigError
			if !errors.As(err, &ce) {
				t.Errorf("error = %T (%v), want ConfigError", err, err)
			}
		})
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv(EnvPrefix+"PORT", "9999")
	t.Setenv(EnvPrefix+"QUIET", "yes")
	t.Setenv(EnvPrefix+"TIMEOUT", "2m")

	var buf bytes.Buffer
	cfg, err := ParseConfig("omnicalc", []string{"-op", "add", "1", "2"}, &buf, testOps)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Port != "9999" {
		t.Errorf("Port = %q, want env override 9999", cfg.Port)
	}
	if !cfg.Quiet {
		t.Error("Quiet = false, want env override true")
	}
	if cfg.Timeout != 2*time.Minute {
		t.Errorf("Timeout = %s, want env override 2m", cfg.Timeout)
	}
}

func TestEnvOverride_FlagWins(t *testing.T) {
	t.Setenv(EnvPrefix+"PORT", "9999")

	var buf bytes.Buffer
	cfg, err := ParseConfig("omnicalc", []string{"-server", "-port", "8081"}, &buf, testOps)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Port != "8081" {
		t.Errorf("Port = %q, explicit flag must win over environment", cfg.Port)
	}
}
