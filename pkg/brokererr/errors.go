package brokererr

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/betbot/tradecore/internal/metrics"
)

// BrokerError 已分类的券商错误，携带处理策略
type BrokerError struct {
	ID         string // 用于日志关联
	Category   Category
	Strategy   Strategy
	Raw        string
	Underlying error
	Context    map[string]interface{}
}

// NewBrokerError 对原始错误文本分类并生成 BrokerError
func NewBrokerError(raw string) *BrokerError {
	return newClassified(Classify(raw), raw, nil)
}

// Wrap 对任意 error 分类；已经是 BrokerError 时原样返回
func Wrap(err error) *BrokerError {
	if err == nil {
		return nil
	}
	var be *BrokerError
	if errors.As(err, &be) {
		return be
	}
	return newClassified(Categorize(err), err.Error(), err)
}

func newClassified(c Category, raw string, underlying error) *BrokerError {
	e := &BrokerError{
		ID:         uuid.NewString(),
		Category:   c,
		Strategy:   StrategyFor(c),
		Raw:        raw,
		Underlying: underlying,
		Context:    make(map[string]interface{}),
	}
	metrics.ObserveBrokerError(e.Category.String(), e.Strategy.String())
	return e
}

func (e *BrokerError) Error() string {
	return fmt.Sprintf("[%s:%s] %s", e.Category, e.Strategy, e.Raw)
}

func (e *BrokerError) Unwrap() error {
	return e.Underlying
}

// Retryable 是否允许重试
func (e *BrokerError) Retryable() bool {
	return e.Strategy == Retry
}

// UserMessage 面向用户的提示（附带原始错误）
func (e *BrokerError) UserMessage() string {
	return FormatUserMessage(e.Category, e.Raw)
}

// Suggestion 处理建议
func (e *BrokerError) Suggestion() string {
	return SuggestionFor(e.Category)
}

// WithContext 添加上下文信息
func (e *BrokerError) WithContext(key string, value interface{}) *BrokerError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// ErrNotConnected 未连接到交易终端
var ErrNotConnected = errors.New("未连接到交易终端")

// 交易错误代码
const (
	CodeInsufficientFunds = "INSUFFICIENT_FUNDS"
	CodeStockSuspended    = "STOCK_SUSPENDED"
	CodeOrderError        = "ORDER_ERROR"
)

// TradingError 交易相关错误
type TradingError struct {
	Code    string
	Message string
	Context map[string]interface{}
}

func (e *TradingError) Error() string {
	return e.Message
}

// NewInsufficientFundsError 资金不足
func NewInsufficientFundsError(required, available float64) *TradingError {
	return &TradingError{
		Code:    CodeInsufficientFunds,
		Message: fmt.Sprintf("资金不足：需要 %v，可用 %v", required, available),
		Context: map[string]interface{}{"required": required, "available": available},
	}
}

// NewStockSuspendedError 股票停牌
func NewStockSuspendedError(symbol string) *TradingError {
	return &TradingError{
		Code:    CodeStockSuspended,
		Message: fmt.Sprintf("股票 %s 已停牌", symbol),
		Context: map[string]interface{}{"symbol": symbol},
	}
}

// NewOrderError 订单错误，orderID 为空时不记录
func NewOrderError(message, orderID string) *TradingError {
	ctx := map[string]interface{}{}
	if orderID != "" {
		ctx["order_id"] = orderID
	}
	return &TradingError{Code: CodeOrderError, Message: message, Context: ctx}
}

// NetworkError 网络错误，记录已重试次数
type NetworkError struct {
	Message    string
	RetryCount int
}

func (e *NetworkError) Error() string {
	return e.Message
}

// Categorize 优先根据错误类型判断类别，否则回退到关键词分类
func Categorize(err error) Category {
	if err == nil {
		return Unknown
	}
	var be *BrokerError
	if errors.As(err, &be) {
		return be.Category
	}
	if errors.Is(err, ErrNotConnected) {
		return Network
	}
	var ne *NetworkError
	if errors.As(err, &ne) {
		return Network
	}
	var te *TradingError
	if errors.As(err, &te) {
		switch te.Code {
		case CodeInsufficientFunds:
			return InsufficientFunds
		case CodeStockSuspended:
			return MarketClosed
		}
	}
	return Classify(err.Error())
}
