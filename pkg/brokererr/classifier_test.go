package brokererr

import (
	"encoding/json"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyKeywords(t *testing.T) {
	tests := []struct {
		raw  string
		want Category
	}{
		{"委托价格不合理", PriceLimit},
		{"下单失败: 可用资金不足", InsufficientFunds},
		{"证券代码不存在: 600000.SH", InvalidStock},
		{"当前为非交易时间", MarketClosed},
		{"数量必须是100的整数倍", VolumeLimit},
		{"请求连接超时", Network},
		{"服务器错误 500", System},
		{"账户被冻结", Account},
		{"something else entirely", Unknown},
		{"", Unknown},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.raw))
		})
	}
}

func TestClassifyUsesTableOrderOnMultipleMatches(t *testing.T) {
	// 网络连接失败 在表中位于 系统繁忙 之前，与在文本中出现的位置无关
	assert.Equal(t, Network, Classify("系统繁忙，网络连接失败"))
	assert.Equal(t, Network, Classify("网络连接失败，系统繁忙"))
	// 资金不足 先于 账户状态异常
	assert.Equal(t, InsufficientFunds, Classify("账户状态异常且资金不足"))
}

func TestIsRetryable(t *testing.T) {
	assert.True(t, IsRetryable(Network))
	assert.True(t, IsRetryable(System))
	assert.True(t, IsRetryable(Unknown))
	assert.False(t, IsRetryable(InsufficientFunds))
	assert.False(t, IsRetryable(PriceLimit))
	assert.True(t, IsRetryable(Category(99)))
	assert.Equal(t, StrategyFor(Category(99)) == Retry, IsRetryable(Category(99)))
	assert.Equal(t, ActionRetry, Decide(Category(99), 0))
}

func TestStrategyFor(t *testing.T) {
	assert.Equal(t, AllowBrokerHandle, StrategyFor(PriceLimit))
	assert.Equal(t, Reject, StrategyFor(Account))
	assert.Equal(t, Retry, StrategyFor(Category(-1)))
}

func TestFormatUserMessage(t *testing.T) {
	assert.Equal(t, "当前非交易时间", FormatUserMessage(MarketClosed, ""))
	assert.Equal(t, "资金不足，请检查账户余额 (原始错误: 余额不足)", FormatUserMessage(InsufficientFunds, "余额不足"))
	assert.Equal(t, "未知错误", FormatUserMessage(Category(42), ""))
}

func TestSuggestionFor(t *testing.T) {
	assert.Contains(t, SuggestionFor(VolumeLimit), "100的整数倍")
	assert.Equal(t, "建议联系技术支持", SuggestionFor(Category(42)))
}

func TestTablesAreExhaustive(t *testing.T) {
	for _, c := range Categories() {
		assert.NotEmpty(t, categoryNames[c], "name for %d", int(c))
		assert.NotEmpty(t, userMessages[c], "message for %s", c)
		assert.NotEmpty(t, suggestions[c], "suggestion for %s", c)
	}
	assert.Len(t, Categories(), 9)
	for _, rule := range keywordRules {
		assert.True(t, rule.Category.Valid())
		assert.NotEqual(t, Unknown, rule.Category)
	}
}

func TestKeywordsReturnsCopy(t *testing.T) {
	kw := Keywords()
	require.NotEmpty(t, kw)
	kw[0].Category = Account

	assert.Equal(t, InsufficientFunds, Classify("资金不足"))
}

func TestCategoryTextRoundTrip(t *testing.T) {
	data, err := json.Marshal(map[string]Category{"c": PriceLimit})
	require.NoError(t, err)
	assert.JSONEq(t, `{"c":"PRICE_LIMIT"}`, string(data))

	var back map[string]Category
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, PriceLimit, back["c"])

	_, ok := ParseCategory("NOPE")
	assert.False(t, ok)
	assert.Equal(t, "Category(99)", Category(99).String())
	assert.Equal(t, "ALLOW_BROKER_HANDLE", AllowBrokerHandle.String())
}

func TestConcurrentClassify(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_ = Classify("连接超时")
				_ = IsRetryable(Network)
				_ = FormatUserMessage(System, "x")
			}
		}()
	}
	wg.Wait()
}
