package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Registry 独立的 prometheus 注册表，避免污染 DefaultRegisterer
var Registry = prometheus.NewRegistry()

var (
	// ConfigLoads 配置文件加载次数（format: json/yaml/unknown, result: ok/error）
	ConfigLoads = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tradecore_config_loads_total",
			Help: "Total number of configuration file loads",
		},
		[]string{"format", "result"},
	)

	// ConfigSaves 配置文件保存次数
	ConfigSaves = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tradecore_config_saves_total",
			Help: "Total number of configuration file saves",
		},
		[]string{"format", "result"},
	)

	// ConfigUpdates 动态更新的配置项数量（result: applied/ignored/invalid）
	ConfigUpdates = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tradecore_config_updates_total",
			Help: "Total number of dynamic configuration keys processed",
		},
		[]string{"result"},
	)

	// BrokerErrors 已分类的券商错误数量
	BrokerErrors = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tradecore_broker_errors_total",
			Help: "Total number of classified broker errors",
		},
		[]string{"category", "strategy"},
	)
)

func init() {
	Registry.MustRegister(ConfigLoads)
	Registry.MustRegister(ConfigSaves)
	Registry.MustRegister(ConfigUpdates)
	Registry.MustRegister(BrokerErrors)
}

// ObserveConfigLoad 记录一次配置加载
func ObserveConfigLoad(format string, err error) {
	ConfigLoads.WithLabelValues(format, result(err)).Inc()
}

// ObserveConfigSave 记录一次配置保存
func ObserveConfigSave(format string, err error) {
	ConfigSaves.WithLabelValues(format, result(err)).Inc()
}

// ObserveConfigUpdate 记录动态更新结果
func ObserveConfigUpdate(applied, ignored, invalid int) {
	ConfigUpdates.WithLabelValues("applied").Add(float64(applied))
	ConfigUpdates.WithLabelValues("ignored").Add(float64(ignored))
	ConfigUpdates.WithLabelValues("invalid").Add(float64(invalid))
}

// ObserveBrokerError 记录一次券商错误分类
func ObserveBrokerError(category, strategy string) {
	BrokerErrors.WithLabelValues(category, strategy).Inc()
}

func result(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}
