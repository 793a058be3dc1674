package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Camera.Width != 640 || cfg.Camera.Height != 480 {
		t.Errorf("default resolution = %dx%d, want 640x480", cfg.Camera.Width, cfg.Camera.Height)
	}
	if !cfg.Camera.Mirror {
		t.Error("mirroring should default to on")
	}
	if cfg.Pipeline.StableFrames != 5 {
		t.Errorf("default stable_frames = %d, want 5", cfg.Pipeline.StableFrames)
	}
	if cfg.Pipeline.Method != "multijoint" {
		t.Errorf("default method = %q, want multijoint", cfg.Pipeline.Method)
	}
	if cfg.MQTT.Enabled {
		t.Error("MQTT should default to disabled")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config must validate, got %v", err)
	}
}

func TestLoad(t *testing.T) {
	t.Run("missing file returns defaults", func(t *testing.T) {
		cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if cfg != Default() {
			t.Errorf("expected defaults for missing file, got %+v", cfg)
		}
	})

	t.Run("file values override defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		data := `
camera:
  id: 2
  fps: 15
pipeline:
  stable_frames: 8
  method: angle
server:
  addr: ":9090"
`
		if err := os.WriteFile(path, []byte(data), 0644); err != nil {
			t.Fatal(err)
		}

		cfg, err := Load(path)
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}

		if cfg.Camera.ID != 2 || cfg.Camera.FPS != 15 {
			t.Errorf("camera = %+v", cfg.Camera)
		}
		if cfg.Pipeline.StableFrames != 8 || cfg.Pipeline.Method != "angle" {
			t.Errorf("pipeline = %+v", cfg.Pipeline)
		}
		if cfg.Server.Addr != ":9090" {
			t.Errorf("addr = %q", cfg.Server.Addr)
		}
		// Untouched sections keep their defaults.
		if cfg.Camera.Width != 640 {
			t.Errorf("width = %d, want default 640", cfg.Camera.Width)
		}
	})

	t.Run("invalid yaml is an error", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		if err := os.WriteFile(path, []byte("camera: ["), 0644); err != nil {
			t.Fatal(err)
		}
		if _, err := Load(path); err == nil {
			t.Error("expected parse error")
		}
	})
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid defaults", func(c *Config) {}, false},
		{"angle method", func(c *Config) { c.Pipeline.Method = "angle" }, false},
		{"unknown method", func(c *Config) { c.Pipeline.Method = "neural" }, true},
		{"zero stable frames", func(c *Config) { c.Pipeline.StableFrames = 0 }, true},
		{"three hands", func(c *Config) { c.Detector.MaxHands = 3 }, true},
		{"mqtt without broker", func(c *Config) { c.MQTT.Enabled = true }, true},
		{"mqtt with broker", func(c *Config) {
			c.MQTT.Enabled = true
			c.MQTT.Broker = "tcp://localhost:1883"
		}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tc.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}
