package logger

import (
	"log"
	"os"
	"strings"
)

// Level mức độ log
type Level int

const (
	DebugLevel Level = iota
	InfoLevel
	WarnLevel
	ErrorLevel
)

// LevelFromEnv đọc mức log từ biến LOG_LEVEL, mặc định info
func LevelFromEnv() Level {
	switch strings.ToLower(os.Getenv("LOG_LEVEL")) {
	case "debug":
		return DebugLevel
	case "warn":
		return WarnLevel
	case "error":
		return ErrorLevel
	default:
		return InfoLevel
	}
}

// Logger interface logging dùng chung cho các service
type Logger interface {
	Debug(format string, v ...interface{})
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// DefaultLogger implement Logger trên log package, có prefix theo thành phần
type DefaultLogger struct {
	level     Level
	component string
}

// NewDefaultLogger tạo logger với mức tối thiểu cho trước
func NewDefaultLogger(level Level) *DefaultLogger {
	return &DefaultLogger{level: level}
}

// WithComponent trả về logger con gắn tên thành phần vào mỗi dòng log
func (l *DefaultLogger) WithComponent(name string) *DefaultLogger {
	return &DefaultLogger{level: l.level, component: name}
}

func (l *DefaultLogger) printf(tag, format string, v ...interface{}) {
	if l.component != "" {
		tag = tag + " [" + l.component + "]"
	}
	log.Printf(tag+" "+format, v...)
}

// Debug log debug
func (l *DefaultLogger) Debug(format string, v ...interface{}) {
	if l.level <= DebugLevel {
		l.printf("[DEBUG]", format, v...)
	}
}

// Info log thông tin
func (l *DefaultLogger) Info(format string, v ...interface{}) {
	if l.level <= InfoLevel {
		l.printf("[INFO]", format, v...)
	}
}

// Warn log cảnh báo, dùng cho các bất thường được phép bỏ qua
func (l *DefaultLogger) Warn(format string, v ...interface{}) {
	if l.level <= WarnLevel {
		l.printf("[WARN]", format, v...)
	}
}

// Error log lỗi
func (l *DefaultLogger) Error(format string, v ...interface{}) {
	if l.level <= ErrorLevel {
		l.printf("[ERROR]", format, v...)
	}
}
