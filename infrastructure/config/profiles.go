package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed profiles.yaml
var defaultProfiles []byte

// Profile binds the per-deployment URLs and store location.
type Profile struct {
	BaseURL          string `yaml:"baseUrl"`
	CallbackURL      string `yaml:"callbackUrl"`
	DynamoDBEndpoint string `yaml:"dynamodbEndpoint,omitempty"`
	TablePrefix      string `yaml:"tablePrefix"`
}

// LoadProfiles parses the embedded profiles, or the file at path when one is given.
func LoadProfiles(path string) (map[string]Profile, error) {
	data := defaultProfiles
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read profiles file: %w", err)
		}
		data = b
	}
	return parseProfiles(data)
}

func parseProfiles(data []byte) (map[string]Profile, error) {
	var profiles map[string]Profile
	if err := yaml.Unmarshal(data, &profiles); err != nil {
		return nil, fmt.Errorf("failed to parse profiles: %w", err)
	}
	if len(profiles) == 0 {
		return nil, fmt.Errorf("no profiles defined")
	}
	return profiles, nil
}
