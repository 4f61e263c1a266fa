package consts

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLimitPrices(t *testing.T) {
	tests := []struct {
		prevClose string
		board     Board
		up, down  string
	}{
		{"10.00", MainBoard, "11.00", "9.00"},
		{"9.87", StarMarket, "11.84", "7.90"},
		{"3.33", STStock, "3.50", "3.16"},
		{"20", BeijingBoard, "26.00", "14.00"},
	}
	for _, tt := range tests {
		t.Run(string(tt.board), func(t *testing.T) {
			up, down, err := LimitPrices(decimal.RequireFromString(tt.prevClose), tt.board)
			require.NoError(t, err)
			assert.Equal(t, tt.up, up.StringFixed(DefaultPricePrecision))
			assert.Equal(t, tt.down, down.StringFixed(DefaultPricePrecision))
		})
	}

	_, _, err := LimitPrices(decimal.NewFromInt(10), Board("NASDAQ"))
	assert.Error(t, err)
	_, _, err = LimitPrices(decimal.Zero, MainBoard)
	assert.Error(t, err)
}

func TestParseBoard(t *testing.T) {
	b, err := ParseBoard(" chinext ")
	require.NoError(t, err)
	assert.Equal(t, GrowthBoard, b)

	b, err = ParseBoard("科创板")
	require.NoError(t, err)
	assert.Equal(t, StarMarket, b)

	_, err = ParseBoard("otc")
	assert.Error(t, err)

	for board := range LimitUpRatio {
		got, err := ParseBoard(board.String())
		require.NoError(t, err)
		assert.Equal(t, board, got)
	}
}

func TestRoundLot(t *testing.T) {
	assert.Equal(t, 0, RoundLot(-5))
	assert.Equal(t, 0, RoundLot(99))
	assert.Equal(t, 300, RoundLot(399))
}

func TestDisplayHelpers(t *testing.T) {
	assert.Equal(t, "部分成交", FormatOrderStatus(OrderPartial))
	assert.Equal(t, "UNKNOWN", FormatOrderStatus(OrderStatus("UNKNOWN")))
	assert.Equal(t, "买入", FormatTradeAction(Buy))
	assert.Equal(t, "卖出", FormatTradeAction(Sell))
	assert.Equal(t, "HOLD", FormatTradeAction(TradeDirection("HOLD")))
	assert.Equal(t, "交易终端连接成功", ConnectionMessage(ConnConnected))
	assert.Equal(t, "paused", ConnectionMessage(ConnectionState("paused")))

	assert.True(t, OrderCanceled.IsFinal())
	assert.False(t, OrderPartial.IsFinal())
}
