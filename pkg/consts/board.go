package consts

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Board 板块（决定涨跌停幅度）
type Board string

const (
	MainBoard    Board = "MAIN_BOARD"    // 主板
	StarMarket   Board = "STAR_MARKET"   // 科创板
	GrowthBoard  Board = "GROWTH_BOARD"  // 创业板
	BeijingBoard Board = "BEIJING_BOARD" // 北交所
	STStock      Board = "ST_STOCK"      // ST 股
)

// LimitUpRatio 各板块涨跌停幅度
var LimitUpRatio = map[Board]float64{
	MainBoard:    0.1,
	StarMarket:   0.2,
	GrowthBoard:  0.2,
	BeijingBoard: 0.3,
	STStock:      0.05,
}

func ParseBoard(v string) (Board, error) {
	s := strings.ToUpper(strings.TrimSpace(v))
	switch s {
	case "MAIN_BOARD", "MAIN", "主板":
		return MainBoard, nil
	case "STAR_MARKET", "STAR", "科创板":
		return StarMarket, nil
	case "GROWTH_BOARD", "GROWTH", "CHINEXT", "创业板":
		return GrowthBoard, nil
	case "BEIJING_BOARD", "BSE", "北交所":
		return BeijingBoard, nil
	case "ST_STOCK", "ST":
		return STStock, nil
	default:
		return "", fmt.Errorf("不支持的板块: %q", v)
	}
}

func (b Board) String() string { return string(b) }

// Ratio 涨跌停幅度
func (b Board) Ratio() (decimal.Decimal, bool) {
	r, ok := LimitUpRatio[b]
	if !ok {
		return decimal.Zero, false
	}
	return decimal.NewFromFloat(r), true
}

// LimitPrices 按昨收价计算涨停价/跌停价，四舍五入到 DefaultPricePrecision 位
func LimitPrices(prevClose decimal.Decimal, board Board) (up, down decimal.Decimal, err error) {
	ratio, ok := board.Ratio()
	if !ok {
		return decimal.Zero, decimal.Zero, fmt.Errorf("不支持的板块: %q", string(board))
	}
	if !prevClose.IsPositive() {
		return decimal.Zero, decimal.Zero, fmt.Errorf("昨收价必须为正: %s", prevClose)
	}
	one := decimal.NewFromInt(1)
	up = prevClose.Mul(one.Add(ratio)).Round(DefaultPricePrecision)
	down = prevClose.Mul(one.Sub(ratio)).Round(DefaultPricePrecision)
	return up, down, nil
}

// RoundLot 向下取整到整手（DefaultVolumeUnit 的整数倍）
func RoundLot(volume int) int {
	if volume <= 0 {
		return 0
	}
	return volume / DefaultVolumeUnit * DefaultVolumeUnit
}
