package shutdown

import (
	"context"
	"sync"

	"github.com/pkg/errors"

	"github.com/betbot/tradecore/pkg/logger"
)

// Handler 关闭回调，应在 ctx 到期前返回
type Handler func(ctx context.Context) error

type namedHandler struct {
	name string
	fn   Handler
}

// Manager 优雅关闭管理器
type Manager struct {
	mu       sync.Mutex
	handlers []namedHandler
}

func NewManager() *Manager {
	return &Manager{}
}

// OnShutdown 注册关闭回调
func (m *Manager) OnShutdown(name string, fn Handler) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.handlers = append(m.handlers, namedHandler{name: name, fn: fn})
}

// Shutdown 并发执行所有回调并等待完成或 ctx 超时。
// 返回第一个失败回调的错误；超时返回 ctx.Err()。
func (m *Manager) Shutdown(ctx context.Context) error {
	m.mu.Lock()
	handlers := append([]namedHandler(nil), m.handlers...)
	m.mu.Unlock()

	if len(handlers) == 0 {
		return nil
	}
	logger.Infof("开始优雅关闭，共 %d 个回调", len(handlers))

	errs := make([]error, len(handlers))
	var wg sync.WaitGroup
	wg.Add(len(handlers))
	for i, h := range handlers {
		go func(i int, h namedHandler) {
			defer wg.Done()
			if err := h.fn(ctx); err != nil {
				errs[i] = errors.Wrapf(err, "shutdown %s", h.name)
			}
		}(i, h)
	}

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		logger.Warnf("关闭超时: %v", ctx.Err())
		return ctx.Err()
	}

	for _, err := range errs {
		if err != nil {
			logger.Errorf("%v", err)
			return err
		}
	}
	logger.Infof("所有关闭回调已完成")
	return nil
}
