package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"github.com/betbot/tradecore/internal/metrics"
	"github.com/betbot/tradecore/pkg/output"
)

// DefaultConfigFiles 未指定路径时在工作目录中依次查找
var DefaultConfigFiles = []string{"config.yaml", "config.yml", "config.json"}

// Option 配置管理器选项
type Option func(*Manager)

// WithSink 指定通知输出，默认输出到 logger
func WithSink(s output.Sink) Option {
	return func(m *Manager) {
		if s != nil {
			m.sink = s
		}
	}
}

// WithWorkDir 指定查找默认配置文件的目录，默认为进程工作目录
func WithWorkDir(dir string) Option {
	return func(m *Manager) {
		m.workDir = dir
	}
}

// Manager 配置管理器。持有一份 ApplicationConfig，按运行模式提供当前配置。
// 非并发安全：加载、更新、保存应在同一个 goroutine 中完成。
type Manager struct {
	cfg     ApplicationConfig
	path    string
	sink    output.Sink
	workDir string
}

// NewManager 创建配置管理器。
// configPath 为空时查找 DefaultConfigFiles，都不存在则使用默认配置。
func NewManager(configPath string, opts ...Option) (*Manager, error) {
	m := &Manager{
		cfg:  DefaultApplicationConfig(),
		sink: output.NewLoggerSink("config"),
	}
	for _, opt := range opts {
		opt(m)
	}

	if configPath == "" {
		configPath = m.discover()
	}
	if configPath == "" {
		m.sink.Warning("未找到配置文件，使用默认配置")
		return m, nil
	}

	if _, err := m.LoadFromFile(configPath); err != nil {
		return nil, err
	}
	m.sink.Success("已加载配置文件: %s", configPath)
	return m, nil
}

func (m *Manager) discover() string {
	for _, name := range DefaultConfigFiles {
		p := name
		if m.workDir != "" {
			p = filepath.Join(m.workDir, name)
		}
		if fi, err := os.Stat(p); err == nil && !fi.IsDir() {
			return p
		}
	}
	return ""
}

// LoadFromFile 从文件加载配置并合并到当前配置。
// 出错时先输出错误通知，再原样返回错误。
func (m *Manager) LoadFromFile(path string) (MergeReport, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			err = errors.Wrapf(ErrConfigNotFound, "%s", path)
		}
		m.sink.Error("配置文件加载失败: %v", err)
		metrics.ObserveConfigLoad(formatLabel(path), err)
		return MergeReport{}, err
	}

	m.sink.Info("正在加载配置文件: %s", path)
	doc, encName, err := readDocument(path)
	metrics.ObserveConfigLoad(formatLabel(path), err)
	if err != nil {
		m.sink.Error("配置文件加载失败: %v", err)
		return MergeReport{}, err
	}
	if encName != "" {
		m.sink.Info("使用 %s 编码读取配置文件", encName)
	}

	report := mergeDocument(&m.cfg, doc)
	m.notifyMerge(report)
	m.path = path
	m.sink.Success("配置文件加载成功: mode=%s", m.cfg.Mode)
	return report, nil
}

func (m *Manager) notifyMerge(report MergeReport) {
	if len(report.Invalid) > 0 {
		m.sink.Warning("配置项类型不匹配，已跳过: %s", strings.Join(report.Invalid, ", "))
	}
	if len(report.Ignored) > 0 {
		m.sink.Info("忽略未知配置项: %s", strings.Join(report.Ignored, ", "))
	}
}

// Path 最近一次成功加载的配置文件路径
func (m *Manager) Path() string { return m.path }

// Config 完整配置
func (m *Manager) Config() *ApplicationConfig { return &m.cfg }

// Mode 当前运行模式（原样返回，可能不是 backtest/live）
func (m *Manager) Mode() Mode { return m.cfg.Mode }

func (m *Manager) IsBacktest() bool { return m.cfg.Mode == ModeBacktest }

func (m *Manager) IsLive() bool { return m.cfg.Mode == ModeLive }

// SetMode 覆盖运行模式，不校验取值
func (m *Manager) SetMode(mode Mode) {
	m.cfg.Mode = mode
	m.sink.Info("运行模式已切换: %s", mode)
}

// CurrentConfig 当前模式的配置；非 backtest 的模式一律按实盘处理
func (m *Manager) CurrentConfig() ModeConfig {
	if m.cfg.Mode == ModeBacktest {
		return &m.cfg.Backtest
	}
	return &m.cfg.Live
}

// RiskConfig 当前模式的风险参数
func (m *Manager) RiskConfig() *RiskParameters {
	return m.CurrentConfig().Risk()
}

// UpdateConfig 用 overrides 覆盖当前模式的配置。
// 风险字段（如 max_single_position）写入当前模式的风险参数；
// risk_management 映射逐字段处理并以 risk_management.<field> 记入报告；未知键只告警。
func (m *Manager) UpdateConfig(overrides map[string]interface{}) MergeReport {
	var report MergeReport
	current := m.CurrentConfig()
	for _, key := range sortedKeys(overrides) {
		value := overrides[key]
		if key == riskSectionKey {
			fields, ok := applyRiskOverrides(current.Risk(), value)
			if !ok {
				report.record(key, fieldInvalid)
				m.notifyOverride(key, value, fieldInvalid)
				continue
			}
			for _, f := range fields {
				report.record(f.key, f.result)
				m.notifyOverride(f.key, f.value, f.result)
			}
			continue
		}
		res := applyOverride(current, key, value)
		report.record(key, res)
		m.notifyOverride(key, value, res)
	}
	metrics.ObserveConfigUpdate(len(report.Applied), len(report.Ignored), len(report.Invalid))
	return report
}

func (m *Manager) notifyOverride(key string, value interface{}, res fieldResult) {
	switch res {
	case fieldApplied:
		m.sink.Info("配置已更新: %s = %v", key, value)
	case fieldInvalid:
		m.sink.Warning("配置项类型不匹配: %s = %v (%T)", key, value, value)
	default:
		m.sink.Warning("未知配置项: %s", key)
	}
}

// SaveToFile 保存 mode 与两种模式的基础字段（不含风险参数）
func (m *Manager) SaveToFile(path string) error {
	err := writeDocument(path, snapshotDocument(&m.cfg))
	metrics.ObserveConfigSave(formatLabel(path), err)
	if err != nil {
		m.sink.Error("配置保存失败: %v", err)
		return err
	}
	m.sink.Success("配置已保存到: %s", path)
	return nil
}

func (m *Manager) String() string {
	return fmt.Sprintf("ConfigManager(mode=%s, config=%v)", m.cfg.Mode, m.CurrentConfig())
}
