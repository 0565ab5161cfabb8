package log

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fatih/color"
)

type Formatter func(timestamp string, level int, format string, args []any, err error, data Data) ([]byte, error)

var formatters = map[string]Formatter{
	"console": FormatterConsole,
	"json":    FormatterJson,
}

func AddFormatter(name string, formatter Formatter) {
	formatters[name] = formatter
}

func FormatterConsole(timestamp string, level int, format string, args []any, err error, data Data) ([]byte, error) {
	fieldString := getFieldsAsString(data.Fields)
	contextString := getFieldsAsString(data.ContextFields)

	errStr := ""
	if err != nil {
		errStr = fmt.Sprintf("ERR: %s", err.Error())
	}

	msg := fmt.Sprintf(format, args...)
	timestamp = fmt.Sprintf("%-15v", timestamp)
	levelName := fmt.Sprintf("%-7v", LevelName(level))
	channel := fmt.Sprintf("%-7s", data.Channel)

	output := fmt.Sprintf("%s %s %s %-50s %s %s %s",
		color.YellowString(timestamp),
		color.GreenString(channel),
		color.GreenString(levelName),
		msg,
		color.GreenString(contextString),
		color.BlueString(fieldString),
		color.RedString(errStr),
	)
	serialized := []byte(output)

	return append(serialized, '\n'), nil
}

func FormatterJson(timestamp string, level int, format string, args []any, err error, data Data) ([]byte, error) {
	jsn := make(map[string]any, 8)

	if err != nil {
		jsn["err"] = err.Error()
	}

	jsn["channel"] = data.Channel
	jsn["context"] = data.ContextFields
	jsn["fields"] = data.Fields
	jsn["level"] = level
	jsn["level_name"] = LevelName(level)
	jsn["message"] = fmt.Sprintf(format, args...)
	jsn["timestamp"] = timestamp

	serialized, marshalErr := json.Marshal(jsn)
	if marshalErr != nil {
		return nil, fmt.Errorf("failed to marshal fields to JSON: %w", marshalErr)
	}

	return append(serialized, '\n'), nil
}

func getFieldsAsString(fields map[string]any) string {
	fieldParts := make([]string, 0, len(fields))

	for k, v := range fields {
		fieldParts = append(fieldParts, fmt.Sprintf("%v: %v", k, v))
	}

	return strings.Join(fieldParts, ", ")
}
