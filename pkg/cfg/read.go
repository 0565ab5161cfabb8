package cfg

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

func readConfigFromFile(cfg *config, filePath string, fileType string) error {
	if filePath == "" {
		return nil
	}

	if fileType != "yml" && fileType != "yaml" {
		return fmt.Errorf("unsupported config file type %s for file %s", fileType, filePath)
	}

	bytes, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("can not read config file %s: %w", filePath, err)
	}

	settings := make(map[string]any)
	if err = yaml.Unmarshal(bytes, &settings); err != nil {
		return fmt.Errorf("can not unmarshal config file %s: %w", filePath, err)
	}

	cfg.mergeMsi(".", settings)

	return nil
}
