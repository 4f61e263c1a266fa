// Package brokererr 券商错误分类：把券商/网络层返回的自由文本错误映射为
// 固定的错误类别，并给出处理策略、用户提示与处理建议。
//
// 所有查找表在包初始化后只读，可被多个 goroutine 无锁并发读取。
package brokererr

import "fmt"

// Category 券商错误类别（封闭集合）
type Category int

const (
	InsufficientFunds Category = iota // 资金不足
	InvalidStock                      // 无效股票
	MarketClosed                      // 市场关闭
	PriceLimit                        // 价格限制
	VolumeLimit                       // 数量限制
	Network                           // 网络错误
	System                            // 系统错误
	Account                           // 账户问题
	Unknown                           // 未知错误

	numCategories
)

var categoryNames = [numCategories]string{
	InsufficientFunds: "INSUFFICIENT_FUNDS",
	InvalidStock:      "INVALID_STOCK",
	MarketClosed:      "MARKET_CLOSED",
	PriceLimit:        "PRICE_LIMIT",
	VolumeLimit:       "VOLUME_LIMIT",
	Network:           "NETWORK",
	System:            "SYSTEM",
	Account:           "ACCOUNT",
	Unknown:           "UNKNOWN",
}

// Valid 是否为已定义类别
func (c Category) Valid() bool {
	return c >= 0 && c < numCategories
}

func (c Category) String() string {
	if !c.Valid() {
		return fmt.Sprintf("Category(%d)", int(c))
	}
	return categoryNames[c]
}

// MarshalText 以 INSUFFICIENT_FUNDS 这类名称序列化
func (c Category) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("invalid error category %d", int(c))
	}
	return []byte(categoryNames[c]), nil
}

// UnmarshalText 解析类别名称
func (c *Category) UnmarshalText(text []byte) error {
	parsed, ok := ParseCategory(string(text))
	if !ok {
		return fmt.Errorf("unknown error category %q", string(text))
	}
	*c = parsed
	return nil
}

// ParseCategory 按名称解析类别
func ParseCategory(name string) (Category, bool) {
	for i, n := range categoryNames {
		if n == name {
			return Category(i), true
		}
	}
	return Unknown, false
}

// Categories 返回全部类别（按定义顺序）
func Categories() []Category {
	out := make([]Category, 0, numCategories)
	for c := Category(0); c < numCategories; c++ {
		out = append(out, c)
	}
	return out
}

// Strategy 错误处理策略（封闭集合）
type Strategy int

const (
	Retry             Strategy = iota // 重试
	Reject                            // 拒绝
	AllowBrokerHandle                 // 交由券商处理

	numStrategies
)

var strategyNames = [numStrategies]string{
	Retry:             "RETRY",
	Reject:            "REJECT",
	AllowBrokerHandle: "ALLOW_BROKER_HANDLE",
}

func (s Strategy) String() string {
	if s < 0 || s >= numStrategies {
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
	return strategyNames[s]
}

// MarshalText 以 RETRY 这类名称序列化
func (s Strategy) MarshalText() ([]byte, error) {
	if s < 0 || s >= numStrategies {
		return nil, fmt.Errorf("invalid error strategy %d", int(s))
	}
	return []byte(strategyNames[s]), nil
}
