package modelspec

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/r-huijts/LibreChat/schema"
)

// LoadFile reads the model specification list from a YAML or JSON file.
// The file is read once at startup; the registry never reloads.
func LoadFile(path string) (*Registry, error) {
	v := viper.New()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read model spec file: %w", err)
	}

	var specs struct {
		ModelSpecs []schema.ModelSpec `mapstructure:"model_specs"`
	}
	if err := v.Unmarshal(&specs); err != nil {
		return nil, fmt.Errorf("parse model spec file: %w", err)
	}

	for _, s := range specs.ModelSpecs {
		if s.Name == "" {
			return nil, fmt.Errorf("model spec without a name")
		}
		if s.Preset.Endpoint == "" {
			return nil, fmt.Errorf("model spec %q without an endpoint", s.Name)
		}
	}

	return NewRegistry(specs.ModelSpecs), nil
}
