package log

import (
	"context"
	"fmt"
	"os"

	"github.com/saranonuan/winston-log2gelf/pkg/clock"
)

const (
	LevelTrace = "trace"
	LevelDebug = "debug"
	LevelInfo  = "info"
	LevelWarn  = "warn"
	LevelError = "error"

	PriorityTrace = 0
	PriorityDebug = 1
	PriorityInfo  = 2
	PriorityWarn  = 3
	PriorityError = 4
)

var levelNames = map[int]string{
	PriorityTrace: LevelTrace,
	PriorityDebug: LevelDebug,
	PriorityInfo:  LevelInfo,
	PriorityWarn:  LevelWarn,
	PriorityError: LevelError,
}

var levelPriorities = map[string]int{
	LevelTrace: PriorityTrace,
	LevelDebug: PriorityDebug,
	LevelInfo:  PriorityInfo,
	LevelWarn:  PriorityWarn,
	LevelError: PriorityError,
}

// LevelName returns the string representation of a log level priority (e.g., 2 -> "info").
func LevelName(level int) string {
	return levelNames[level]
}

// LevelPriority returns the numeric priority for a given log level name (e.g., "info" -> 2).
func LevelPriority(level string) int {
	return levelPriorities[level]
}

// Data holds the structured context of a log entry, including channel, fields and context-derived fields.
type Data struct {
	Channel       string
	ContextFields map[string]any
	Fields        map[string]any
}

// Fields is a map of key-value pairs to add structured data to a log entry.
type Fields map[string]any

type Logger interface {
	Debug(format string, args ...any)
	Info(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)

	WithChannel(channel string) Logger
	WithContext(ctx context.Context) Logger
	WithFields(fields Fields) Logger
}

// GosoLogger extends the Logger interface with the ability to apply functional options after creation.
type GosoLogger interface {
	Logger
	Option(opt ...Option) error
}

type LoggerSettings struct {
	Handlers map[string]HandlerSettings `cfg:"handlers"`
}

type HandlerSettings struct {
	Type string `cfg:"type"`
}

var _ GosoLogger = &gosoLogger{}

type gosoLogger struct {
	clock        clock.Clock
	data         Data
	ctxResolvers []ContextFieldsResolverFunction
	handlers     []Handler
}

func NewLogger() *gosoLogger {
	return NewLoggerWithInterfaces(clock.NewRealClock(), []Handler{})
}

func NewLoggerWithInterfaces(clock clock.Clock, handlers []Handler) *gosoLogger {
	return &gosoLogger{
		clock: clock,
		data: Data{
			Channel:       "main",
			ContextFields: make(map[string]any),
			Fields:        make(map[string]any),
		},
		ctxResolvers: nil,
		handlers:     handlers,
	}
}

func (l *gosoLogger) Option(options ...Option) error {
	for _, opt := range options {
		if err := opt(l); err != nil {
			return fmt.Errorf("can not apply option %T: %w", opt, err)
		}
	}

	return nil
}

func (l *gosoLogger) Debug(format string, args ...any) {
	l.log(PriorityDebug, format, args, nil)
}

func (l *gosoLogger) Info(format string, args ...any) {
	l.log(PriorityInfo, format, args, nil)
}

func (l *gosoLogger) Warn(format string, args ...any) {
	l.log(PriorityWarn, format, args, nil)
}

func (l *gosoLogger) Error(format string, args ...any) {
	err := fmt.Errorf(format, args...)
	msg := err.Error()

	l.log(PriorityError, "%s", []any{msg}, err)
}

func (l *gosoLogger) WithChannel(channel string) Logger {
	cpy := l.copy()
	cpy.data.Channel = channel

	return cpy
}

func (l *gosoLogger) WithContext(ctx context.Context) Logger {
	if ctx == nil {
		return l
	}

	cpy := l.copy()

	for _, r := range l.ctxResolvers {
		newContextFields := r(ctx)
		cpy.data.ContextFields = mergeFields(cpy.data.ContextFields, newContextFields)
	}

	return cpy
}

func (l *gosoLogger) WithFields(fields Fields) Logger {
	cpy := l.copy()
	cpy.data.Fields = mergeFields(l.data.Fields, fields)

	return cpy
}

func (l *gosoLogger) copy() *gosoLogger {
	return &gosoLogger{
		clock:        l.clock,
		data:         l.data,
		ctxResolvers: l.ctxResolvers,
		handlers:     l.handlers,
	}
}

func (l *gosoLogger) log(level int, msg string, args []any, loggedErr error) {
	timestamp := l.clock.Now()

	data := Data{
		Channel:       l.data.Channel,
		ContextFields: l.data.ContextFields,
		Fields:        l.data.Fields,
	}

	for _, handler := range l.handlers {
		if !l.shouldLog(data.Channel, level, handler) {
			continue
		}

		if handlerErr := handler.Log(timestamp, level, msg, args, loggedErr, data); handlerErr != nil {
			l.err(handlerErr)
		}
	}
}

func (l *gosoLogger) shouldLog(channel string, level int, handler Handler) bool {
	if channelLevel, ok := handler.Channels()[channel]; ok {
		return channelLevel <= level
	}

	return handler.Level() <= level
}

func (l *gosoLogger) err(err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Failed to write to log, %s\n", err)
}
