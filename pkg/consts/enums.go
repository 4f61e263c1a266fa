package consts

// PriceType 价格类型
type PriceType string

const (
	PriceLimit     PriceType = "LIMIT"      // 限价
	PriceMarket    PriceType = "MARKET"     // 市价
	PriceStop      PriceType = "STOP"       // 止损
	PriceStopLimit PriceType = "STOP_LIMIT" // 止损限价
)

// OrderType 订单类型
type OrderType string

const (
	OrderMarket    OrderType = "MARKET"
	OrderLimit     OrderType = "LIMIT"
	OrderStop      OrderType = "STOP"
	OrderStopLimit OrderType = "STOP_LIMIT"
)

// OrderStatus 订单状态
type OrderStatus string

const (
	OrderSubmitted OrderStatus = "SUBMITTED" // 提交
	OrderAccepted  OrderStatus = "ACCEPTED"  // 已接受
	OrderPartial   OrderStatus = "PARTIAL"   // 部分成交
	OrderCompleted OrderStatus = "COMPLETED" // 全部成交
	OrderCanceled  OrderStatus = "CANCELED"  // 已撤销
	OrderRejected  OrderStatus = "REJECTED"  // 已拒绝
	OrderExpired   OrderStatus = "EXPIRED"   // 已过期
)

// IsFinal 终态：不会再有成交回报
func (s OrderStatus) IsFinal() bool {
	switch s {
	case OrderCompleted, OrderCanceled, OrderRejected, OrderExpired:
		return true
	}
	return false
}

// TradeDirection 交易方向
type TradeDirection string

const (
	Buy  TradeDirection = "BUY"
	Sell TradeDirection = "SELL"
)

// MarketType 市场类型
type MarketType string

const (
	MarketStock  MarketType = "STOCK"
	MarketFund   MarketType = "FUND"
	MarketBond   MarketType = "BOND"
	MarketOption MarketType = "OPTION"
	MarketFuture MarketType = "FUTURE"
)

// PositionDirection 持仓方向
type PositionDirection string

const (
	PositionLong  PositionDirection = "LONG"
	PositionShort PositionDirection = "SHORT"
	PositionNet   PositionDirection = "NET"
)

// LogLevel 日志级别（与 logrus 级别名对应）
type LogLevel string

const (
	LogDebug    LogLevel = "DEBUG"
	LogInfo     LogLevel = "INFO"
	LogWarning  LogLevel = "WARNING"
	LogError    LogLevel = "ERROR"
	LogCritical LogLevel = "CRITICAL"
)

var orderStatusLabels = map[OrderStatus]string{
	OrderSubmitted: "已提交",
	OrderAccepted:  "已接受",
	OrderPartial:   "部分成交",
	OrderCompleted: "全部成交",
	OrderCanceled:  "已撤销",
	OrderRejected:  "已拒绝",
	OrderExpired:   "已过期",
}

// FormatOrderStatus 订单状态的中文展示；未知状态返回原值
func FormatOrderStatus(s OrderStatus) string {
	if label, ok := orderStatusLabels[s]; ok {
		return label
	}
	return string(s)
}

// FormatTradeAction 交易方向的中文展示
func FormatTradeAction(d TradeDirection) string {
	switch d {
	case Buy:
		return "买入"
	case Sell:
		return "卖出"
	}
	return string(d)
}
