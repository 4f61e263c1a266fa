package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitWritesToFile(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "nested", "app.log")

	require.NoError(t, Init(Config{Level: "debug", OutputFile: logFile, MaxSize: 1, NoColor: true}))
	assert.Equal(t, logFile, GetCurrentLogFile())

	Infof("加载配置 %s", "config.yaml")
	Debugf("debug line")

	data, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "加载配置 config.yaml")
	assert.Contains(t, string(data), "debug line")
}

func TestSuccessfAddsResultField(t *testing.T) {
	require.NoError(t, Init(Config{Level: "info", NoColor: true}))
	var buf bytes.Buffer
	SetOutput(&buf)

	Successf("保存成功")
	Warnf("未知配置项: %s", "foo")

	out := buf.String()
	assert.Contains(t, out, "保存成功")
	assert.Contains(t, out, "result=success")
	assert.Contains(t, out, "level=warning")
	assert.Empty(t, GetCurrentLogFile())
}

func TestInvalidLevelFallsBackToInfo(t *testing.T) {
	require.NoError(t, Init(Config{Level: "loud", NoColor: true}))
	var buf bytes.Buffer
	SetOutput(&buf)

	Debugf("hidden")
	Infof("visible")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "visible")

	SetLevel("debug")
	Debugf("now shown")
	assert.Contains(t, buf.String(), "now shown")
}

func TestDefaultLoggerWritesBeforeInit(t *testing.T) {
	l := newDefaultLogger()
	var buf bytes.Buffer
	l.SetOutput(&buf)

	l.Debugf("hidden")
	l.Errorf("配置文件加载失败: %s", "missing.yaml")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "配置文件加载失败: missing.yaml")
	assert.Contains(t, buf.String(), "level=error")
}
