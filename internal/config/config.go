// Package config loads the application configuration from a YAML file,
// layering the file's values over built-in defaults.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ayusman/shouzhi/internal/gesture"
)

// Config is the full application configuration.
type Config struct {
	Camera   CameraConfig   `yaml:"camera"`
	Detector DetectorConfig `yaml:"detector"`
	Pipeline PipelineConfig `yaml:"pipeline"`
	Server   ServerConfig   `yaml:"server"`
	MQTT     MQTTConfig     `yaml:"mqtt"`
}

// CameraConfig configures the capture device.
type CameraConfig struct {
	ID     int  `yaml:"id"`
	Width  int  `yaml:"width"`
	Height int  `yaml:"height"`
	FPS    int  `yaml:"fps"`
	Mirror bool `yaml:"mirror"`
}

// DetectorConfig configures the hand detector.
type DetectorConfig struct {
	MaxHands      int     `yaml:"max_hands"`
	MinConfidence float64 `yaml:"min_confidence"`
	MinTracking   float64 `yaml:"min_tracking"`
}

// PipelineConfig tunes the classification pipeline.
type PipelineConfig struct {
	// StableFrames is the consecutive-frame count before a gesture is
	// confirmed.
	StableFrames int `yaml:"stable_frames"`
	// Method selects the finger-extension strategy: "multijoint" or
	// "angle".
	Method string `yaml:"method"`
	// MotionGate drops the frame rate while the scene is static.
	MotionGate bool `yaml:"motion_gate"`
	// MotionThreshold is the changed-pixel percentage counting as motion.
	MotionThreshold float64 `yaml:"motion_threshold"`
}

// ServerConfig configures the HTTP server.
type ServerConfig struct {
	Addr      string `yaml:"addr"`
	StaticDir string `yaml:"static_dir"`
}

// MQTTConfig configures the optional result publisher.
type MQTTConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Broker   string `yaml:"broker"`
	Topic    string `yaml:"topic"`
	ClientID string `yaml:"client_id"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Camera: CameraConfig{
			ID:     0,
			Width:  640,
			Height: 480,
			FPS:    30,
			Mirror: true,
		},
		Detector: DetectorConfig{
			MaxHands:      2,
			MinConfidence: 0.7,
			MinTracking:   0.5,
		},
		Pipeline: PipelineConfig{
			StableFrames:    gesture.DefaultStableFrames,
			Method:          "multijoint",
			MotionGate:      true,
			MotionThreshold: 1.0,
		},
		Server: ServerConfig{
			Addr: ":8080",
		},
		MQTT: MQTTConfig{
			Topic: "shouzhi/gesture",
		},
	}
}

// Load reads the configuration file at path over the defaults. A missing
// file is not an error; the defaults are returned unchanged.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks the configuration for values the pipeline cannot run with.
func (c *Config) Validate() error {
	switch c.Pipeline.Method {
	case "", "multijoint", "angle":
	default:
		return fmt.Errorf("unknown extraction method %q", c.Pipeline.Method)
	}

	if c.Pipeline.StableFrames < 1 {
		return fmt.Errorf("stable_frames must be at least 1, got %d", c.Pipeline.StableFrames)
	}

	if c.Detector.MaxHands < 1 || c.Detector.MaxHands > 2 {
		return fmt.Errorf("max_hands must be 1 or 2, got %d", c.Detector.MaxHands)
	}

	if c.MQTT.Enabled && c.MQTT.Broker == "" {
		return fmt.Errorf("mqtt enabled without a broker")
	}

	return nil
}
