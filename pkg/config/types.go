package config

import (
	"fmt"
	"time"
)

// Mode 运行模式
type Mode string

const (
	ModeBacktest Mode = "backtest" // 回测
	ModeLive     Mode = "live"     // 实盘
)

// RiskParameters 风险管理参数。不做范围校验，允许调用方覆盖为任意值。
type RiskParameters struct {
	MaxSinglePosition float64 `yaml:"max_single_position" json:"max_single_position"` // 单只股票最大持仓比例
	MaxTotalPositions float64 `yaml:"max_total_positions" json:"max_total_positions"` // 总持仓比例
	StopLoss          float64 `yaml:"stop_loss" json:"stop_loss"`                     // 止损比例
	MaxPositionsCount int     `yaml:"max_positions_count" json:"max_positions_count"` // 最大持仓数量
	MaxDailyLoss      float64 `yaml:"max_daily_loss" json:"max_daily_loss"`           // 最大单日亏损比例
	MaxDrawdown       float64 `yaml:"max_drawdown" json:"max_drawdown"`               // 最大回撤比例
	PositionRiskPct   float64 `yaml:"position_risk_pct" json:"position_risk_pct"`     // 单笔交易风险比例
}

// DefaultRiskParameters 默认风险参数
func DefaultRiskParameters() RiskParameters {
	return RiskParameters{
		MaxSinglePosition: 0.1,
		MaxTotalPositions: 0.8,
		StopLoss:          0.05,
		MaxPositionsCount: 5,
		MaxDailyLoss:      0.02,
		MaxDrawdown:       0.1,
		PositionRiskPct:   0.02,
	}
}

// ModeConfig 当前模式下的配置视图（回测或实盘）
type ModeConfig interface {
	Mode() Mode
	Risk() *RiskParameters
	Source() string
	Debug() bool
	ErrorThrottle() time.Duration
}

// BacktestParameters 回测配置
type BacktestParameters struct {
	InitialCash         float64        `yaml:"initial_cash" json:"initial_cash"`                   // 初始资金，默认100万
	Commission          float64        `yaml:"commission" json:"commission"`                       // 交易佣金比例，默认万分之三
	DataSource          string         `yaml:"data_source" json:"data_source"`                     // 数据源
	DebugMode           bool           `yaml:"debug_mode" json:"debug_mode"`                       // 调试模式开关
	ErrorOutputInterval int            `yaml:"error_output_interval" json:"error_output_interval"` // 错误输出间隔(秒)
	RiskManagement      RiskParameters `yaml:"risk_management" json:"risk_management"`             // 风险管理配置
}

// DefaultBacktestParameters 默认回测配置
func DefaultBacktestParameters() BacktestParameters {
	return BacktestParameters{
		InitialCash:         1000000,
		Commission:          0.0003,
		DataSource:          "qmt_historical",
		DebugMode:           false,
		ErrorOutputInterval: 30,
		RiskManagement:      DefaultRiskParameters(),
	}
}

func (p *BacktestParameters) Mode() Mode            { return ModeBacktest }
func (p *BacktestParameters) Risk() *RiskParameters { return &p.RiskManagement }
func (p *BacktestParameters) Source() string        { return p.DataSource }
func (p *BacktestParameters) Debug() bool           { return p.DebugMode }

func (p *BacktestParameters) ErrorThrottle() time.Duration {
	return time.Duration(p.ErrorOutputInterval) * time.Second
}

func (p *BacktestParameters) String() string {
	return fmt.Sprintf("BacktestParameters(initial_cash=%v, commission=%v, data_source=%s, debug_mode=%v, error_output_interval=%d, risk_management=%s)",
		p.InitialCash, p.Commission, p.DataSource, p.DebugMode, p.ErrorOutputInterval, p.RiskManagement.String())
}

// LiveParameters 实盘配置
type LiveParameters struct {
	MiniQMTPath         string         `yaml:"mini_qmt_path" json:"mini_qmt_path"`                 // QMT 交易端路径
	AccountID           string         `yaml:"account_id" json:"account_id"`                       // 交易账户ID
	AccountType         string         `yaml:"account_type" json:"account_type"`                   // 账户类型
	DataSource          string         `yaml:"data_source" json:"data_source"`                     // 数据源
	DebugMode           bool           `yaml:"debug_mode" json:"debug_mode"`                       // 调试模式开关
	ErrorOutputInterval int            `yaml:"error_output_interval" json:"error_output_interval"` // 错误输出间隔(秒)
	RiskManagement      RiskParameters `yaml:"risk_management" json:"risk_management"`             // 风险管理配置
}

// DefaultLiveParameters 默认实盘配置
func DefaultLiveParameters() LiveParameters {
	return LiveParameters{
		MiniQMTPath:         `D:\国金证券QMT交易端\userdata_mini`,
		AccountID:           "8886281695",
		AccountType:         "STOCK",
		DataSource:          "qmt_realtime",
		DebugMode:           false,
		ErrorOutputInterval: 30,
		RiskManagement:      DefaultRiskParameters(),
	}
}

func (p *LiveParameters) Mode() Mode            { return ModeLive }
func (p *LiveParameters) Risk() *RiskParameters { return &p.RiskManagement }
func (p *LiveParameters) Source() string        { return p.DataSource }
func (p *LiveParameters) Debug() bool           { return p.DebugMode }

func (p *LiveParameters) ErrorThrottle() time.Duration {
	return time.Duration(p.ErrorOutputInterval) * time.Second
}

func (p *LiveParameters) String() string {
	return fmt.Sprintf("LiveParameters(mini_qmt_path=%s, account_id=%s, account_type=%s, data_source=%s, debug_mode=%v, error_output_interval=%d, risk_management=%s)",
		p.MiniQMTPath, p.AccountID, p.AccountType, p.DataSource, p.DebugMode, p.ErrorOutputInterval, p.RiskManagement.String())
}

func (r RiskParameters) String() string {
	return fmt.Sprintf("RiskParameters(max_single_position=%v, max_total_positions=%v, stop_loss=%v, max_positions_count=%d, max_daily_loss=%v, max_drawdown=%v, position_risk_pct=%v)",
		r.MaxSinglePosition, r.MaxTotalPositions, r.StopLoss, r.MaxPositionsCount, r.MaxDailyLoss, r.MaxDrawdown, r.PositionRiskPct)
}

// ApplicationConfig 应用配置：运行模式 + 两种模式的配置（两者始终存在）
type ApplicationConfig struct {
	Mode     Mode
	Backtest BacktestParameters
	Live     LiveParameters
}

// DefaultApplicationConfig 默认应用配置（回测模式）
func DefaultApplicationConfig() ApplicationConfig {
	return ApplicationConfig{
		Mode:     ModeBacktest,
		Backtest: DefaultBacktestParameters(),
		Live:     DefaultLiveParameters(),
	}
}
