package server

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/viant/jsonrpc"
	"github.com/viant/jsonrpc/transport"
	"github.com/viant/mcp-protocol/schema"
)

// loggingLevel holds the level set by logging/setLevel; a handler and its loggers share it.
type loggingLevel struct {
	mux   sync.RWMutex
	value schema.LoggingLevel
}

func (l *loggingLevel) get() schema.LoggingLevel {
	l.mux.RLock()
	defer l.mux.RUnlock()
	return l.value
}

func (l *loggingLevel) set(level schema.LoggingLevel) {
	l.mux.Lock()
	defer l.mux.Unlock()
	l.value = level
}

// Logger sends notifications/message to the client once it has set a logging level.
type Logger struct {
	name     string
	level    *loggingLevel
	notifier transport.Notifier
}

// Logger creates a new logger with a name
func (l *Logger) Logger(name string) *Logger {
	return &Logger{
		name:     name,
		level:    l.level,
		notifier: l.notifier,
	}
}

func (l *Logger) log(ctx context.Context, level schema.LoggingLevel, data any) error {
	if l.notifier == nil || l.level == nil {
		return nil
	}
	current := l.level.get()
	if current == "" || current.Ordinal() > level.Ordinal() {
		//skip logging since level is too verbose
		return nil
	}
	request := &jsonrpc.Notification{Method: schema.MethodNotificationMessage}
	params := schema.LoggingMessageNotificationParams{
		Level:  level,
		Logger: &l.name,
		Data:   data,
	}
	var err error
	request.Params, err = json.Marshal(params)
	if err != nil {
		return err
	}
	return l.notifier.Notify(ctx, request)
}

func (l *Logger) Debug(ctx context.Context, data interface{}) error {
	return l.log(ctx, schema.Debug, data)
}

func (l *Logger) Info(ctx context.Context, data interface{}) error {
	return l.log(ctx, schema.Info, data)
}

func (l *Logger) Warning(ctx context.Context, data interface{}) error {
	return l.log(ctx, schema.Warning, data)
}

func (l *Logger) Error(ctx context.Context, data interface{}) error {
	return l.log(ctx, schema.Err, data)
}

func newLogger(name string, level *loggingLevel, notifier transport.Notifier) *Logger {
	return &Logger{
		name:     name,
		level:    level,
		notifier: notifier,
	}
}
