package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Logger пишет сообщения в формате printf поверх zerolog
type Logger struct {
	zl     zerolog.Logger
	closer io.Closer
}

// New создает логгер.
// file - путь к файлу логов, пустая строка означает stdout.
// level - debug/info/warn/error, неизвестный уровень трактуется как info.
// format - "json" (по умолчанию) или "console".
func New(file, level, format string) (*Logger, error) {
	output := io.Writer(os.Stdout)
	var closer io.Closer

	if file != "" {
		f, err := os.OpenFile(file, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		output = io.MultiWriter(os.Stdout, f)
		closer = f
	}

	if strings.EqualFold(strings.TrimSpace(format), "console") {
		output = zerolog.ConsoleWriter{Out: output, TimeFormat: time.RFC3339}
	}

	return newWithWriter(output, level, closer), nil
}

// NewWithWriter создает логгер поверх произвольного writer (используется в тестах)
func NewWithWriter(w io.Writer, level string) *Logger {
	return newWithWriter(w, level, nil)
}

func newWithWriter(w io.Writer, level string, closer io.Closer) *Logger {
	lvl := zerolog.InfoLevel
	if parsed, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level))); err == nil && parsed != zerolog.NoLevel {
		lvl = parsed
	}

	zerolog.TimeFieldFormat = time.RFC3339Nano
	zl := zerolog.New(w).Level(lvl).With().Timestamp().Logger()

	return &Logger{zl: zl, closer: closer}
}

// Nop возвращает логгер, который ничего не пишет
func Nop() *Logger {
	return &Logger{zl: zerolog.Nop()}
}

// With возвращает дочерний логгер с дополнительным полем
func (l *Logger) With(key, value string) *Logger {
	return &Logger{zl: l.zl.With().Str(key, value).Logger()}
}

// Close закрывает файл логов, если он был открыт
func (l *Logger) Close() error {
	if l.closer == nil {
		return nil
	}
	return l.closer.Close()
}

func (l *Logger) Debug(format string, v ...interface{}) {
	l.zl.Debug().Msgf(format, v...)
}

func (l *Logger) Info(format string, v ...interface{}) {
	l.zl.Info().Msgf(format, v...)
}

func (l *Logger) Warn(format string, v ...interface{}) {
	l.zl.Warn().Msgf(format, v...)
}

func (l *Logger) Error(format string, v ...interface{}) {
	l.zl.Error().Msgf(format, v...)
}

// Fatal пишет сообщение и завершает процесс
func (l *Logger) Fatal(format string, v ...interface{}) {
	l.zl.Fatal().Msgf(format, v...)
}
