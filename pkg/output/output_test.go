package output

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/betbot/tradecore/pkg/logger"
)

func TestRecorderCapturesLevels(t *testing.T) {
	r := &Recorder{}
	r.Info("加载 %s", "a.yaml")
	r.Success("ok")
	r.Warning("未知配置项: %s", "foo")
	r.Error("boom")

	assert.Len(t, r.Notices(), 4)
	assert.Equal(t, []string{"加载 a.yaml"}, r.ByLevel(LevelInfo))
	assert.Equal(t, []string{"未知配置项: foo"}, r.ByLevel(LevelWarning))

	r.Reset()
	assert.Empty(t, r.Notices())
}

func TestThrottleSuppressesRepeatedErrors(t *testing.T) {
	r := &Recorder{}
	th := NewThrottle(r, time.Hour)

	th.Error("网络连接失败: %d", 1)
	th.Error("网络连接失败: %d", 1)
	th.Error("网络连接失败: %d", 2)
	th.Warning("warn")
	th.Warning("warn")

	assert.Equal(t, []string{"网络连接失败: 1", "网络连接失败: 2"}, r.ByLevel(LevelError))
	assert.Len(t, r.ByLevel(LevelWarning), 2)
}

func TestThrottleDisabledWithZeroInterval(t *testing.T) {
	r := &Recorder{}
	th := NewThrottle(r, 0)

	th.Error("same")
	th.Error("same")

	assert.Len(t, r.ByLevel(LevelError), 2)
}

func TestLoggerSinkDoesNotPanicWithoutInit(t *testing.T) {
	s := NewLoggerSink("config")
	assert.NotPanics(t, func() {
		s.Info("info")
		s.Success("success")
		s.Warning("warning")
		s.Error("error")
	})
}

func TestLoggerSinkWritesWithoutInit(t *testing.T) {
	var buf bytes.Buffer
	logger.SetOutput(&buf)

	NewLoggerSink("config").Error("配置文件加载失败: %s", "missing.yaml")

	assert.Contains(t, buf.String(), "[config] 配置文件加载失败: missing.yaml")
}

func TestThrottleBoundsDistinctMessages(t *testing.T) {
	r := &Recorder{}
	th := NewThrottle(r, time.Hour)

	n := maxThrottleKeys + 10
	for i := 0; i < n; i++ {
		th.Error("委托失败: order=%d", i)
	}

	assert.Len(t, r.ByLevel(LevelError), n)
	assert.LessOrEqual(t, len(th.gates), maxThrottleKeys)
}
