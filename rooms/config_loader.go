package rooms

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ServiceConfig is the on-disk configuration for the HTTP/MQTT surfaces
// and the pipeline tunables they hand to Identify. Any tunable omitted
// from the file keeps its DefaultConfig() value.
type ServiceConfig struct {
	HTTP HTTPConfig `yaml:"http"`
	MQTT MQTTConfig `yaml:"mqtt"`

	StrokeThresh float64 `yaml:"strokeThresh,omitempty"`

	RandomSeed            *int64   `yaml:"randomSeed,omitempty"`
	MaxGapRatio           *float64 `yaml:"maxGapRatio,omitempty"`
	AngTol                *float64 `yaml:"angTol,omitempty"`
	AngTolAlign           *float64 `yaml:"angTolAlign,omitempty"`
	ShiftTolRatio         *float64 `yaml:"shiftTolRatio,omitempty"`
	PointJoinTolFactor    *float64 `yaml:"pointJoinTolFactor,omitempty"`
	MinRoomArea           *float64 `yaml:"minRoomArea,omitempty"`
	PointQuantiseDecimals *int     `yaml:"pointQuantiseDecimals,omitempty"`
}

// HTTPConfig configures the identify-over-HTTP surface.
type HTTPConfig struct {
	ListenAddr string `yaml:"listenAddr"`
}

// MQTTConfig configures the MQTT intake adapter.
type MQTTConfig struct {
	Broker      string `yaml:"broker"`
	ClientID    string `yaml:"clientId,omitempty"`
	Username    string `yaml:"username,omitempty"`
	Password    string `yaml:"password,omitempty"`
	InputTopic  string `yaml:"inputTopic"`
	ResultTopic string `yaml:"resultTopic"`
}

// LoadConfig loads a ServiceConfig from a YAML file.
//
// Wraps read/parse failures with fmt.Errorf and %w.
func LoadConfig(path string) (*ServiceConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("config file not found: %s: %w", path, err)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg ServiceConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config YAML: %w", err)
	}
	return &cfg, nil
}

// SaveConfig writes a ServiceConfig to a YAML file.
func SaveConfig(path string, cfg *ServiceConfig) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config YAML: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// ResolveTunables overlays any tunable set in the ServiceConfig onto
// DefaultConfig(), leaving every unset field at its documented default.
func (c *ServiceConfig) ResolveTunables() Config {
	cfg := DefaultConfig()
	if c == nil {
		return cfg
	}
	if c.StrokeThresh != 0 {
		cfg.StrokeThresh = c.StrokeThresh
	}
	if c.RandomSeed != nil {
		cfg.RandomSeed = *c.RandomSeed
	}
	if c.MaxGapRatio != nil {
		cfg.MaxGapRatio = *c.MaxGapRatio
	}
	if c.AngTol != nil {
		cfg.AngTol = *c.AngTol
	}
	if c.AngTolAlign != nil {
		cfg.AngTolAlign = *c.AngTolAlign
	}
	if c.ShiftTolRatio != nil {
		cfg.ShiftTolRatio = *c.ShiftTolRatio
	}
	if c.PointJoinTolFactor != nil {
		cfg.PointJoinTolFactor = *c.PointJoinTolFactor
	}
	if c.MinRoomArea != nil {
		cfg.MinRoomArea = *c.MinRoomArea
	}
	if c.PointQuantiseDecimals != nil {
		cfg.PointQuantiseDecimals = *c.PointQuantiseDecimals
	}
	return cfg
}
