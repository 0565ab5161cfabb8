package cfg

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/hashicorp/go-multierror"
	"github.com/saranonuan/winston-log2gelf/pkg/funk"
	"github.com/spf13/cast"
	"github.com/stretchr/objx"
)

type Config interface {
	Get(key string, optionalDefault ...any) (any, error)
	GetBool(key string, optionalDefault ...bool) (bool, error)
	GetDuration(key string, optionalDefault ...time.Duration) (time.Duration, error)
	GetInt(key string, optionalDefault ...int) (int, error)
	GetString(key string, optionalDefault ...string) (string, error)
	GetStringMap(key string, optionalDefault ...map[string]any) (map[string]any, error)
	IsSet(key string) bool
	UnmarshalKey(key string, val any, additionalDefaults ...UnmarshalDefaults) error
}

type GosoConf interface {
	Config
	Option(options ...Option) error
}

type config struct {
	envProvider    EnvProvider
	settings       objx.Map
	envKeyPrefix   string
	envKeyReplacer *strings.Replacer
}

var (
	DefaultEnvKeyReplacer = strings.NewReplacer(".", "_", "-", "_")
	templateRegexp        = regexp.MustCompile(`{([\w.\-]+)}`)
)

func New(msis ...map[string]any) GosoConf {
	return NewWithInterfaces(NewOsEnvProvider(), msis...)
}

func NewWithInterfaces(envProvider EnvProvider, msis ...map[string]any) GosoConf {
	cfg := &config{
		envProvider: envProvider,
		settings:    objx.Map{},
	}

	for _, msi := range msis {
		cfg.mergeMsi(".", msi)
	}

	return cfg
}

func (c *config) Option(options ...Option) error {
	for _, opt := range options {
		if err := opt(c); err != nil {
			return err
		}
	}

	return nil
}

func (c *config) Get(key string, optionalDefault ...any) (any, error) {
	return c.get(key, optionalDefault)
}

func (c *config) GetBool(key string, optionalDefault ...bool) (b bool, err error) {
	var data any
	if data, err = c.get(key, anySlice(optionalDefault)); err != nil {
		return false, err
	}

	if b, err = cast.ToBoolE(data); err != nil {
		return false, fmt.Errorf("can not cast value %v[%T] of key %s to bool: %w", data, data, key, err)
	}

	return b, nil
}

func (c *config) GetDuration(key string, optionalDefault ...time.Duration) (duration time.Duration, err error) {
	var data any
	if data, err = c.get(key, anySlice(optionalDefault)); err != nil {
		return time.Duration(0), err
	}

	if duration, err = cast.ToDurationE(data); err != nil {
		return time.Duration(0), fmt.Errorf("can not cast value %v[%T] of key %s to duration: %w", data, data, key, err)
	}

	return duration, nil
}

func (c *config) GetInt(key string, optionalDefault ...int) (i int, err error) {
	var data any
	if data, err = c.get(key, anySlice(optionalDefault)); err != nil {
		return 0, err
	}

	if i, err = cast.ToIntE(data); err != nil {
		return 0, fmt.Errorf("can not cast value %v[%T] of key %s to int: %w", data, data, key, err)
	}

	return i, nil
}

func (c *config) GetString(key string, optionalDefault ...string) (string, error) {
	return c.getString(key, optionalDefault...)
}

func (c *config) GetStringMap(key string, optionalDefault ...map[string]any) (strMap map[string]any, err error) {
	var data any
	if data, err = c.get(key, anySlice(optionalDefault)); err != nil {
		return nil, err
	}

	if strMap, err = cast.ToStringMapE(data); err != nil {
		return nil, fmt.Errorf("can not cast value %v[%T] of key %s to map[string]any: %w", data, data, key, err)
	}

	for k, v := range strMap {
		if str, ok := v.(string); ok {
			augmented, err := c.augmentString(str)
			if err != nil {
				return nil, fmt.Errorf("can not augment string in map for key %s: %w", key, err)
			}
			strMap[k] = augmented
		}
	}

	return strMap, nil
}

func (c *config) IsSet(key string) bool {
	return c.isSet(key)
}

func (c *config) UnmarshalKey(key string, output any, additionalDefaults ...UnmarshalDefaults) error {
	outputType := reflect.TypeOf(output)

	if outputType.Kind() != reflect.Ptr {
		return fmt.Errorf("can not unmarshal key %s: output should be a pointer to struct or map but instead is %T", key, output)
	}

	switch outputType.Elem().Kind() {
	case reflect.Struct:
		if err := c.unmarshalStruct(key, output, additionalDefaults); err != nil {
			return fmt.Errorf("can not unmarshal config struct with key %s: %w", key, err)
		}

		return nil

	case reflect.Map:
		if err := c.unmarshalMap(key, output, additionalDefaults); err != nil {
			return fmt.Errorf("can not unmarshal config map with key %s: %w", key, err)
		}

		return nil
	}

	return fmt.Errorf("can not unmarshal key %s: output should be a pointer to struct or map but instead is %T", key, output)
}

func (c *config) unmarshalMap(key string, output any, defaults []UnmarshalDefaults) error {
	names, err := c.GetStringMap(key)
	if err != nil {
		return fmt.Errorf("can not get string map for key %s: %w", key, err)
	}

	outputValue := reflect.ValueOf(output).Elem()
	outputValue.Set(reflect.MakeMap(outputValue.Type()))

	for name := range names {
		keyIndex := fmt.Sprintf("%s.%s", key, name)
		element := reflect.New(outputValue.Type().Elem())

		if err := c.unmarshalStruct(keyIndex, element.Interface(), defaults); err != nil {
			return fmt.Errorf("can not unmarshal key %s: %w", keyIndex, err)
		}

		outputValue.SetMapIndex(reflect.ValueOf(name), reflect.Indirect(element))
	}

	return nil
}

func (c *config) unmarshalStruct(key string, output any, additionalDefaults []UnmarshalDefaults) error {
	ms, err := c.buildMapStruct(output)
	if err != nil {
		return fmt.Errorf("can not build map struct for output: %w", err)
	}

	zeroSettings, defaults, err := ms.ReadZeroAndDefaultValues()
	if err != nil {
		return fmt.Errorf("can not read zeros and defaults for struct %T: %w", output, err)
	}

	finalSettings := objx.Map{}
	mergeMsi(finalSettings, zeroSettings)
	mergeMsi(finalSettings, defaults)

	for _, def := range additionalDefaults {
		if err = def(c, finalSettings); err != nil {
			return fmt.Errorf("can not apply additional defaults: %w", err)
		}
	}

	if settings := c.settings.Get(key); !settings.IsNil() {
		settingsMsi, ok := msiOf(settings.Data())
		if !ok {
			return fmt.Errorf("settings for key %s should be a map but instead are %T", key, settings.Data())
		}

		mergeMsi(finalSettings, settingsMsi)
	}

	environmentKey := c.resolveEnvKey(c.envKeyPrefix, key)
	environmentSettings := c.readEnvironmentFromValues(environmentKey, finalSettings)
	mergeMsi(finalSettings, environmentSettings)

	c.settings.Set(key, map[string]any(finalSettings))

	if err = ms.Write(finalSettings); err != nil {
		return fmt.Errorf("error unmarshalling key %s: %w", key, err)
	}

	validate := validator.New()
	err = validate.Struct(output)

	if err == nil {
		return nil
	}

	var invalidValidationError *validator.InvalidValidationError
	if errors.As(err, &invalidValidationError) {
		return fmt.Errorf("can not validate result of key %s: %w", key, err)
	}

	errs := &multierror.Error{}
	for _, validationErr := range err.(validator.ValidationErrors) {
		err = fmt.Errorf("the setting %s with value %v does not match its requirement", validationErr.Field(), validationErr.Value())
		errs = multierror.Append(errs, err)
	}

	return fmt.Errorf("validation failed for key %s: %w", key, errs)
}

func (c *config) augmentString(str string, args ...map[string]string) (string, error) {
	matches := templateRegexp.FindAllStringSubmatch(str, -1)
	allArgs := funk.MergeMaps(args...)

	var ok bool
	var err error
	var replace string

	for _, m := range matches {
		if replace, ok = allArgs[m[1]]; ok {
			str = strings.ReplaceAll(str, m[0], replace)

			continue
		}

		if replace, err = c.getString(m[1]); err != nil {
			return "", err
		}

		str = strings.ReplaceAll(str, m[0], replace)
	}

	return str, nil
}

func (c *config) buildMapStruct(target any) (*MapStruct, error) {
	ms, err := NewMapStruct(target, &MapStructSettings{
		FieldTag:   "cfg",
		DefaultTag: "default",
		Casters: []MapStructCaster{
			MapStructDurationCaster,
			MapStructTimeCaster,
		},
		Decoders: []MapStructDecoder{
			c.decodeAugmentHook(),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("can not create map struct for target %T: %w", target, err)
	}

	return ms, nil
}

func (c *config) decodeAugmentHook() MapStructDecoder {
	return func(_ reflect.Type, val any) (any, error) {
		if raw, ok := val.(string); ok {
			return c.augmentString(raw)
		}

		return val, nil
	}
}

func (c *config) get(key string, defaults []any) (any, error) {
	if !c.isSet(key) && len(defaults) == 0 {
		return nil, fmt.Errorf("there is no config setting or default for key %q", key)
	}

	if !c.isSet(key) && len(defaults) > 0 {
		return defaults[0], nil
	}

	envKey := c.resolveEnvKey(c.envKeyPrefix, key)
	if envValue, ok := c.envProvider.LookupEnv(envKey); ok {
		return c.augmentString(envValue)
	}

	data := c.settings.Get(key).Data()

	if msi, ok := msiOf(data); ok {
		environment := c.readEnvironmentFromValues(envKey, msi)

		merged := map[string]any{}
		mergeMsi(merged, msi)
		mergeMsi(merged, environment)

		return merged, nil
	}

	return data, nil
}

func (c *config) getString(key string, optionalDefault ...string) (str string, err error) {
	var data any
	if data, err = c.get(key, anySlice(optionalDefault)); err != nil {
		return "", err
	}

	if str, err = cast.ToStringE(data); err != nil {
		return "", fmt.Errorf("can not cast value %v[%T] of key %s to string: %w", data, data, key, err)
	}

	return c.augmentString(str)
}

func (c *config) isSet(key string) bool {
	envKey := c.resolveEnvKey(c.envKeyPrefix, key)
	if _, ok := c.envProvider.LookupEnv(envKey); ok {
		return true
	}

	return !c.settings.Get(key).IsNil()
}

func (c *config) mergeMsi(prefix string, settings map[string]any) {
	if prefix != "." && prefix != "" {
		settings = nestMsi(prefix, settings)
	}

	mergeMsi(c.settings, settings)
}

func (c *config) mergeValue(key string, value any) {
	if msi, ok := msiOf(value); ok {
		c.mergeMsi(key, msi)

		return
	}

	c.settings.Set(key, value)
}

func (c *config) readEnvironmentFromValues(prefix string, input map[string]any) map[string]any {
	environment := map[string]any{}

	for k, v := range input {
		key := c.resolveEnvKey(prefix, k)

		if nested, ok := msiOf(v); ok {
			nestedValues := c.readEnvironmentFromValues(key, nested)

			if len(nestedValues) > 0 {
				environment[k] = nestedValues
			}

			continue
		}

		if envValue, ok := c.envProvider.LookupEnv(key); ok {
			environment[k] = envValue
		}
	}

	return environment
}

func (c *config) resolveEnvKey(prefix string, key string) string {
	if prefix != "" {
		key = fmt.Sprintf("%s.%s", prefix, key)
	}

	if c.envKeyReplacer != nil {
		key = c.envKeyReplacer.Replace(key)
	}

	return strings.ToUpper(key)
}

// mergeMsi merges source into target, source values winning on collision and
// nested maps being merged recursively instead of replaced.
func mergeMsi(target map[string]any, source map[string]any) {
	for k, v := range source {
		sourceMsi, sourceOk := msiOf(v)

		if !sourceOk {
			target[k] = v

			continue
		}

		merged := map[string]any{}

		if targetMsi, targetOk := msiOf(target[k]); targetOk {
			mergeMsi(merged, targetMsi)
		}

		mergeMsi(merged, sourceMsi)
		target[k] = merged
	}
}

func msiOf(value any) (map[string]any, bool) {
	switch t := value.(type) {
	case map[string]any:
		return t, true
	case objx.Map:
		return t, true
	case map[string]string:
		msi := make(map[string]any, len(t))
		for k, v := range t {
			msi[k] = v
		}

		return msi, true
	}

	return nil, false
}

func nestMsi(prefix string, settings map[string]any) map[string]any {
	parts := strings.Split(prefix, ".")

	nested := settings
	for i := len(parts) - 1; i >= 0; i-- {
		nested = map[string]any{
			parts[i]: nested,
		}
	}

	return nested
}

func anySlice[T any](values []T) []any {
	out := make([]any, len(values))
	for i, value := range values {
		out[i] = value
	}

	return out
}
