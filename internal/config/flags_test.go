package config

import (
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNetAddress_String(t *testing.T) {
	tests := []struct {
		name string
		addr NetAddress
		want string
	}{
		{"empty", NetAddress{}, ""},
		{"host and port", NetAddress{Host: "localhost", Port: 8080}, "localhost:8080"},
		{"port only", NetAddress{Port: 9090}, ":9090"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.addr.String())
		})
	}
}

func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		expectError  bool
		errorMsg     string
		expectedAddr NetAddress
	}{
		{
			name:         "valid localhost",
			input:        "localhost:8080",
			expectedAddr: NetAddress{Host: "localhost", Port: 8080},
		},
		{
			name:         "valid IPv4",
			input:        "127.0.0.1:9090",
			expectedAddr: NetAddress{Host: "127.0.0.1", Port: 9090},
		},
		{
			name:         "all interfaces",
			input:        ":8080",
			expectedAddr: NetAddress{Port: 8080},
		},
		{
			name:        "missing colon",
			input:       "localhost8080",
			expectError: true,
			errorMsg:    "need address in a form `host:port`",
		},
		{
			name:        "multiple colons",
			input:       "host:port:extra",
			expectError: true,
			errorMsg:    "need address in a form `host:port`",
		},
		{
			name:        "non-numeric port",
			input:       "localhost:abc",
			expectError: true,
			errorMsg:    "invalid syntax",
		},
		{
			name:        "zero port",
			input:       "localhost:0",
			expectError: true,
			errorMsg:    "port number must be between 1 and 65535",
		},
		{
			name:        "port too large",
			input:       "localhost:70000",
			expectError: true,
			errorMsg:    "port number must be between 1 and 65535",
		},
		{
			name:        "invalid IP address",
			input:       "invalid.host:8080",
			expectError: true,
			errorMsg:    "incorrect IP-address provided",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			addr := &NetAddress{}
			err := addr.Set(tt.input)

			if tt.expectError {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorMsg)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedAddr, *addr)
		})
	}
}

func TestParseServerFlags(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		validate func(t *testing.T, cfg *StructuredConfig)
	}{
		{
			name: "all flags set",
			args: []string{
				"-a", "127.0.0.1:3000",
				"--shutdown-timeout", "20s",
				"--token", "secret",
				"--env", "dev",
				"--base-url", "http://localhost:1234",
				"--timeout", "3s",
				"-c", "/path/to/config.json",
				"--log-level", "warn",
			},
			validate: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, "127.0.0.1:3000", cfg.Server.HTTPAddress)
				assert.Equal(t, 20*time.Second, cfg.Server.ShutdownTimeout)
				assert.Equal(t, "secret", cfg.API.Token)
				assert.Equal(t, "dev", cfg.API.Environment)
				assert.Equal(t, "http://localhost:1234", cfg.API.BaseURL)
				assert.Equal(t, 3*time.Second, cfg.API.RequestTimeout)
				assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)
				assert.Equal(t, "warn", cfg.Log.Level)
			},
		},
		{
			name: "long config flag",
			args: []string{"--config", "/path/to/config.json"},
			validate: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)
			},
		},
		{
			name: "no flags",
			args: []string{},
			validate: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, &StructuredConfig{}, cfg)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := ParseServerFlags("server", tt.args)
			require.NoError(t, err)
			tt.validate(t, cfg)
		})
	}
}

func TestParseServerFlags_Invalid(t *testing.T) {
	tests := map[string][]string{
		"bad address":  {"-a", "nohost"},
		"bad duration": {"--timeout", "later"},
		"unknown flag": {"--listen-port", "9090"},
	}
	for name, args := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := ParseServerFlags("server", args)
			assert.Error(t, err)
		})
	}
}

func TestBindBatchFlags(t *testing.T) {
	cfg := &StructuredConfig{}
	fs := pflag.NewFlagSet("batch", pflag.ContinueOnError)
	BindBatchFlags(fs, cfg)

	require.NoError(t, fs.Parse([]string{"-o", "out", "--concurrency", "2"}))

	assert.Equal(t, "out", cfg.Batch.OutputDir)
	assert.Equal(t, 2, cfg.Batch.Concurrency)
}
