package cfg

import (
	"reflect"
	"time"

	"github.com/spf13/cast"
)

// MapStructDurationCaster turns values targeting a time.Duration field into a
// duration before the generic kind based casting can mistake them for plain
// integers.
func MapStructDurationCaster(targetType reflect.Type, value any) (any, error) {
	if targetType != reflect.TypeOf(time.Duration(0)) {
		return nil, nil
	}

	return cast.ToDurationE(value)
}

// MapStructTimeCaster turns values targeting a time.Time field into a time.
func MapStructTimeCaster(targetType reflect.Type, value any) (any, error) {
	if targetType != reflect.TypeOf(time.Time{}) {
		return nil, nil
	}

	return cast.ToTimeE(value)
}
