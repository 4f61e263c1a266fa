package output

import (
	"fmt"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Throttle 对相同内容的 error 通知按 interval 节流（对应 error_output_interval），
// 其它级别原样转发。interval <= 0 时不节流。
type Throttle struct {
	next     Sink
	interval time.Duration

	mu    sync.Mutex
	gates map[string]*rate.Sometimes
}

// maxThrottleKeys 不同消息的数量上限，超过后清空重新计数
const maxThrottleKeys = 1024

// NewThrottle 包装一个 Sink
func NewThrottle(next Sink, interval time.Duration) *Throttle {
	return &Throttle{
		next:     next,
		interval: interval,
		gates:    make(map[string]*rate.Sometimes),
	}
}

func (t *Throttle) gate(msg string) *rate.Sometimes {
	t.mu.Lock()
	defer t.mu.Unlock()
	g, ok := t.gates[msg]
	if !ok {
		if len(t.gates) >= maxThrottleKeys {
			t.gates = make(map[string]*rate.Sometimes)
		}
		g = &rate.Sometimes{Interval: t.interval}
		t.gates[msg] = g
	}
	return g
}

func (t *Throttle) Info(format string, args ...interface{})    { t.next.Info(format, args...) }
func (t *Throttle) Success(format string, args ...interface{}) { t.next.Success(format, args...) }
func (t *Throttle) Warning(format string, args ...interface{}) { t.next.Warning(format, args...) }

func (t *Throttle) Error(format string, args ...interface{}) {
	if t.interval <= 0 {
		t.next.Error(format, args...)
		return
	}
	msg := fmt.Sprintf(format, args...)
	t.gate(msg).Do(func() {
		t.next.Error("%s", msg)
	})
}
