package config

import (
	"strings"
	"testing"
	"time"
)

func validConfig() *Config {
	return &Config{
		Enhance: EnhanceConfig{Provider: "mock"},
		Server: ServerConfig{
			Port: "8080",
			TLS:  TLSConfig{Mode: "disabled"},
		},
		Store: StoreConfig{Dir: "./data/resumes"},
		App: AppConfig{
			DefaultFormat:    "json",
			SupportedFormats: []string{"json", "pdf", "docx"},
		},
	}
}

func TestValidate(t *testing.T) {
	timeout := 30 * time.Second
	badTimeout := -1 * time.Second

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "mock provider needs nothing else",
			mutate: func(c *Config) {},
		},
		{
			name: "http provider with endpoint",
			mutate: func(c *Config) {
				c.Enhance.Provider = "http"
				c.Enhance.Endpoint = "http://localhost:9000/enhance"
			},
		},
		{
			name:    "http provider without endpoint",
			mutate:  func(c *Config) { c.Enhance.Provider = "http" },
			wantErr: "endpoint is required",
		},
		{
			name: "gemini provider with key",
			mutate: func(c *Config) {
				c.Enhance.Provider = "gemini"
				c.Enhance.APIKey = "test-key"
			},
		},
		{
			name:    "gemini provider without key",
			mutate:  func(c *Config) { c.Enhance.Provider = "gemini" },
			wantErr: "API key is required",
		},
		{
			name:    "unknown provider",
			mutate:  func(c *Config) { c.Enhance.Provider = "oracle" },
			wantErr: "invalid enhancement provider",
		},
		{
			name:   "positive timeout ok",
			mutate: func(c *Config) { c.Enhance.Timeout = &timeout },
		},
		{
			name:    "non-positive timeout",
			mutate:  func(c *Config) { c.Enhance.Timeout = &badTimeout },
			wantErr: "timeout must be positive",
		},
		{
			name:    "empty server port",
			mutate:  func(c *Config) { c.Server.Port = "" },
			wantErr: "server port is required",
		},
		{
			name:    "empty store dir",
			mutate:  func(c *Config) { c.Store.Dir = "" },
			wantErr: "store directory is required",
		},
		{
			name:    "default format not in supported list",
			mutate:  func(c *Config) { c.App.DefaultFormat = "xml" },
			wantErr: "invalid default format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("Validate() expected error containing %q, got nil", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestValidateTLSConfig(t *testing.T) {
	tests := []struct {
		name    string
		tls     TLSConfig
		wantErr string
	}{
		{
			name: "disabled",
			tls:  TLSConfig{Mode: "disabled"},
		},
		{
			name: "server mode with cert and key",
			tls:  TLSConfig{Mode: "server", CertFile: "cert.pem", KeyFile: "key.pem"},
		},
		{
			name:    "server mode without cert",
			tls:     TLSConfig{Mode: "server", KeyFile: "key.pem"},
			wantErr: "certificate and key files are required",
		},
		{
			name:    "server mode without key",
			tls:     TLSConfig{Mode: "server", CertFile: "cert.pem"},
			wantErr: "certificate and key files are required",
		},
		{
			name:    "unknown mode",
			tls:     TLSConfig{Mode: "mutual"},
			wantErr: "invalid TLS mode",
		},
		{
			name: "min version 1.3",
			tls:  TLSConfig{Mode: "server", CertFile: "cert.pem", KeyFile: "key.pem", MinVersion: "1.3"},
		},
		{
			name:    "bad min version",
			tls:     TLSConfig{Mode: "server", CertFile: "cert.pem", KeyFile: "key.pem", MinVersion: "1.1"},
			wantErr: "invalid TLS minVersion",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			cfg.Server.TLS = tt.tls

			err := cfg.ValidateTLSConfig()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("ValidateTLSConfig() unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("ValidateTLSConfig() error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}
