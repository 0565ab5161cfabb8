package cfg

import (
	"fmt"

	"github.com/stretchr/objx"
)

type UnmarshalDefaults func(config Config, finalSettings objx.Map) error

// UnmarshalWithDefaultsFromKey copies the value of another config key into
// the settings being unmarshalled, e.g. to let log.level act as the default
// level of every handler.
func UnmarshalWithDefaultsFromKey(sourceKey string, targetKey string) UnmarshalDefaults {
	return func(config Config, finalSettings objx.Map) error {
		if !config.IsSet(sourceKey) {
			return nil
		}

		sourceValue, err := config.Get(sourceKey)
		if err != nil {
			return fmt.Errorf("can not get default value from key %s: %w", sourceKey, err)
		}

		finalSettings.Set(targetKey, sourceValue)

		return nil
	}
}

func UnmarshalWithDefaultForKey(targetKey string, setting any) UnmarshalDefaults {
	return func(config Config, finalSettings objx.Map) error {
		finalSettings.Set(targetKey, setting)

		return nil
	}
}
