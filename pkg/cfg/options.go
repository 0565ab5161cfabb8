package cfg

import (
	"strings"
)

type Option func(cfg *config) error

func WithConfigFile(filePath string, fileType string) Option {
	return func(cfg *config) error {
		return readConfigFromFile(cfg, filePath, fileType)
	}
}

func WithConfigMap(settings map[string]any) Option {
	return func(cfg *config) error {
		cfg.mergeMsi(".", settings)

		return nil
	}
}

func WithConfigSetting(key string, setting any) Option {
	return func(cfg *config) error {
		cfg.mergeValue(key, setting)

		return nil
	}
}

func WithEnvKeyPrefix(prefix string) Option {
	return func(cfg *config) error {
		cfg.envKeyPrefix = prefix

		return nil
	}
}

func WithEnvKeyReplacer(replacer *strings.Replacer) Option {
	return func(cfg *config) error {
		cfg.envKeyReplacer = replacer

		return nil
	}
}
