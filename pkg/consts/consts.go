// Package consts A 股交易相关常量、枚举与展示辅助函数。
package consts

const (
	DefaultRiskPct        = 0.02 // 默认风险百分比
	MaxPositions          = 10   // 最大持仓数量
	DefaultPricePrecision = 2    // 默认价格精度（元，两位小数）
	DefaultVolumeUnit     = 100  // 默认交易单位（手）
	DefaultTradeSize      = 100  // 默认交易数量
	RiskFreeRate          = 0.03 // 无风险利率
	TradingDaysPerYear    = 252  // 年交易日数
)

// ConnectionState 交易终端连接状态
type ConnectionState string

const (
	ConnConnecting   ConnectionState = "connecting"
	ConnConnected    ConnectionState = "connected"
	ConnDisconnected ConnectionState = "disconnected"
	ConnReconnecting ConnectionState = "reconnecting"
	ConnFailed       ConnectionState = "failed"
)

var connectionMessages = map[ConnectionState]string{
	ConnConnecting:   "正在连接交易终端...",
	ConnConnected:    "交易终端连接成功",
	ConnDisconnected: "交易终端连接断开",
	ConnReconnecting: "正在重新连接...",
	ConnFailed:       "连接失败",
}

// ConnectionMessage 连接状态提示；未知状态原样返回
func ConnectionMessage(state ConnectionState) string {
	if msg, ok := connectionMessages[state]; ok {
		return msg
	}
	return string(state)
}
