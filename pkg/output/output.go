// Package output 提供分级通知输出（info/success/warning/error）。
// 配置管理器与错误分类器只通过 Sink 输出诊断信息，不依赖其返回值。
package output

import (
	"fmt"
	"sync"

	"github.com/betbot/tradecore/pkg/logger"
)

// Level 通知级别
type Level string

const (
	LevelInfo    Level = "info"
	LevelSuccess Level = "success"
	LevelWarning Level = "warning"
	LevelError   Level = "error"
)

// Sink 分级通知输出
type Sink interface {
	Info(format string, args ...interface{})
	Success(format string, args ...interface{})
	Warning(format string, args ...interface{})
	Error(format string, args ...interface{})
}

// LoggerSink 通过 pkg/logger（logrus）输出
type LoggerSink struct {
	Component string
}

// NewLoggerSink 创建带组件名的日志输出
func NewLoggerSink(component string) *LoggerSink {
	return &LoggerSink{Component: component}
}

func (s *LoggerSink) prefix(format string) string {
	if s.Component == "" {
		return format
	}
	return "[" + s.Component + "] " + format
}

func (s *LoggerSink) Info(format string, args ...interface{}) {
	logger.Infof(s.prefix(format), args...)
}

func (s *LoggerSink) Success(format string, args ...interface{}) {
	logger.Successf(s.prefix(format), args...)
}

func (s *LoggerSink) Warning(format string, args ...interface{}) {
	logger.Warnf(s.prefix(format), args...)
}

func (s *LoggerSink) Error(format string, args ...interface{}) {
	logger.Errorf(s.prefix(format), args...)
}

// Notice 一条已记录的通知
type Notice struct {
	Level   Level
	Message string
}

// Recorder 记录所有通知，主要用于测试
type Recorder struct {
	mu      sync.Mutex
	notices []Notice
}

func (r *Recorder) add(level Level, format string, args ...interface{}) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notices = append(r.notices, Notice{Level: level, Message: fmt.Sprintf(format, args...)})
}

func (r *Recorder) Info(format string, args ...interface{})    { r.add(LevelInfo, format, args...) }
func (r *Recorder) Success(format string, args ...interface{}) { r.add(LevelSuccess, format, args...) }
func (r *Recorder) Warning(format string, args ...interface{}) { r.add(LevelWarning, format, args...) }
func (r *Recorder) Error(format string, args ...interface{})   { r.add(LevelError, format, args...) }

// Notices 返回已记录通知的副本
func (r *Recorder) Notices() []Notice {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Notice, len(r.notices))
	copy(out, r.notices)
	return out
}

// ByLevel 返回指定级别的通知内容
func (r *Recorder) ByLevel(level Level) []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []string
	for _, n := range r.notices {
		if n.Level == level {
			out = append(out, n.Message)
		}
	}
	return out
}

// Reset 清空记录
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notices = nil
}

// Discard 丢弃所有通知
type Discard struct{}

func (Discard) Info(string, ...interface{})    {}
func (Discard) Success(string, ...interface{}) {}
func (Discard) Warning(string, ...interface{}) {}
func (Discard) Error(string, ...interface{})   {}
