package log

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func Test_PrepareForLog_TypeError(t *testing.T) {
	toBeTested := fmt.Errorf("foo")
	prepared := prepareForLog(toBeTested)
	assert.Equal(t, "foo", prepared)
}

func Test_PrepareForLog_TypeTime(t *testing.T) {
	toBeTested := time.Now()
	prepared := prepareForLog(toBeTested)
	assert.Equal(t, toBeTested, prepared)
}

func Test_PrepareForLog_TypeMsi(t *testing.T) {
	toBeTested := map[string]any{
		"foo": "bar",
		"baz": map[string]any{
			"cause": fmt.Errorf("boom"),
		},
	}
	expected := map[string]any{
		"foo": "bar",
		"baz": map[string]any{
			"cause": "boom",
		},
	}
	prepared := prepareForLog(toBeTested)
	assert.Equal(t, expected, prepared)
}

func Test_PrepareForLog_CopiesNestedMaps(t *testing.T) {
	nested := map[string]any{
		"foo": "bar",
	}
	toBeTested := map[string]any{
		"nested": nested,
	}

	prepared := prepareForLog(toBeTested)
	nested["foo"] = "changed"

	assert.Equal(t, map[string]any{
		"nested": map[string]any{
			"foo": "bar",
		},
	}, prepared)
}

func Test_PrepareForLog_TypeMapSS(t *testing.T) {
	toBeTested := map[string]string{
		"foo": "bar",
		"fuu": "baz",
	}
	expected := map[string]any{
		"foo": "bar",
		"fuu": "baz",
	}
	prepared := prepareForLog(toBeTested)
	assert.Equal(t, expected, prepared)
}

func Test_PrepareForLog_TypeStruct(t *testing.T) {
	type foo struct {
		Foo    string
		Bar    string
		hidden string
	}
	toBeTested := foo{
		Foo:    "bar",
		Bar:    "baz",
		hidden: "nobody sees this",
	}
	expected := map[string]any{
		"Foo": "bar",
		"Bar": "baz",
	}
	prepared := prepareForLog(toBeTested)
	assert.Equal(t, expected, prepared)
}

func Test_PrepareForLog_TypePointer(t *testing.T) {
	value := "foo"
	prepared := prepareForLog(&value)
	assert.Equal(t, "foo", prepared)
}

func Test_PrepareForLog_TypeNilPointer(t *testing.T) {
	var toBeTested *string
	prepared := prepareForLog(toBeTested)
	assert.Nil(t, prepared)
}

func Test_PrepareForLog_TypeSlice(t *testing.T) {
	toBeTested := []error{
		fmt.Errorf("foo"),
		fmt.Errorf("bar"),
	}
	expected := []any{"foo", "bar"}
	prepared := prepareForLog(toBeTested)
	assert.Equal(t, expected, prepared)
}

func Test_PrepareForLog_TypeNilSlice(t *testing.T) {
	var toBeTested []string
	prepared := prepareForLog(toBeTested)
	assert.Nil(t, prepared)
}

func Test_MergeFields(t *testing.T) {
	receiver := map[string]any{
		"foo": "bar",
		"faz": 1337,
	}
	input := map[string]any{
		"foo": "overwritten",
		"bar": "baz",
	}

	merged := mergeFields(receiver, input)

	assert.Equal(t, map[string]any{
		"foo": "overwritten",
		"faz": 1337,
		"bar": "baz",
	}, merged)
	assert.Equal(t, "bar", receiver["foo"], "the receiver should not be modified")
}
