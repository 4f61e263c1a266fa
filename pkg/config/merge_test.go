package config

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMergeDocumentAppliesKnownFields(t *testing.T) {
	cfg := DefaultApplicationConfig()
	report := mergeDocument(&cfg, map[string]interface{}{
		"mode": "live",
		"backtest": map[string]interface{}{
			"initial_cash": 500000,
			"commission":   0.0005,
		},
		"live": map[string]interface{}{
			"account_id":            "123",
			"error_output_interval": 60.0,
			"broker":                "qmt",
		},
		"extra": true,
	})

	assert.Equal(t, ModeLive, cfg.Mode)
	assert.Equal(t, 500000.0, cfg.Backtest.InitialCash)
	assert.Equal(t, 0.0005, cfg.Backtest.Commission)
	assert.Equal(t, "123", cfg.Live.AccountID)
	assert.Equal(t, 60, cfg.Live.ErrorOutputInterval)
	assert.Equal(t, "STOCK", cfg.Live.AccountType)

	assert.Equal(t, []string{"mode", "backtest.commission", "backtest.initial_cash", "live.account_id", "live.error_output_interval"}, report.Applied)
	assert.Equal(t, []string{"live.broker"}, report.Ignored)
	assert.Empty(t, report.Invalid)
}

func TestMergeDocumentSkipsMismatchedTypes(t *testing.T) {
	cfg := DefaultApplicationConfig()
	report := mergeDocument(&cfg, map[string]interface{}{
		"mode": 1,
		"backtest": map[string]interface{}{
			"initial_cash":          "lots",
			"debug_mode":            "yes",
			"error_output_interval": 1.5,
		},
		"live": "not a mapping",
	})

	assert.Equal(t, ModeBacktest, cfg.Mode)
	assert.Equal(t, DefaultBacktestParameters(), cfg.Backtest)
	assert.ElementsMatch(t, []string{"mode", "backtest.initial_cash", "backtest.debug_mode", "backtest.error_output_interval", "live"}, report.Invalid)
	assert.Empty(t, report.Applied)
}

func TestMergeDocumentNestedRisk(t *testing.T) {
	cfg := DefaultApplicationConfig()
	report := mergeDocument(&cfg, map[string]interface{}{
		"backtest": map[string]interface{}{
			"risk_management": map[interface{}]interface{}{
				"max_single_position": 0.3,
				"max_positions_count": 8,
				"unknown":             1,
			},
		},
		"live": map[string]interface{}{
			"risk_management": []interface{}{1, 2},
		},
	})

	assert.Equal(t, 0.3, cfg.Backtest.RiskManagement.MaxSinglePosition)
	assert.Equal(t, 8, cfg.Backtest.RiskManagement.MaxPositionsCount)
	assert.Equal(t, 0.05, cfg.Backtest.RiskManagement.StopLoss)
	assert.Equal(t, DefaultRiskParameters(), cfg.Live.RiskManagement)

	assert.Equal(t, []string{"backtest.risk_management.max_positions_count", "backtest.risk_management.max_single_position"}, report.Applied)
	assert.Equal(t, []string{"backtest.risk_management.unknown"}, report.Ignored)
	assert.Equal(t, []string{"live.risk_management"}, report.Invalid)
}

func TestMergeDocumentEmpty(t *testing.T) {
	cfg := DefaultApplicationConfig()
	report := mergeDocument(&cfg, map[string]interface{}{})
	assert.True(t, report.Empty())
	assert.Equal(t, DefaultApplicationConfig(), cfg)

	report = mergeDocument(&cfg, map[string]interface{}{"backtest": nil})
	assert.True(t, report.Empty())
}

func TestApplyOverride(t *testing.T) {
	live := DefaultLiveParameters()

	assert.Equal(t, fieldApplied, applyOverride(&live, "account_type", "CREDIT"))
	assert.Equal(t, fieldApplied, applyOverride(&live, "stop_loss", 0.08))
	assert.Equal(t, fieldInvalid, applyOverride(&live, "stop_loss", "8%"))
	assert.Equal(t, fieldUnknown, applyOverride(&live, "initial_cash", 1.0))

	assert.Equal(t, "CREDIT", live.AccountType)
	assert.Equal(t, 0.08, live.RiskManagement.StopLoss)
}

func TestApplyRiskOverridesPerField(t *testing.T) {
	r := DefaultRiskParameters()

	fields, ok := applyRiskOverrides(&r, map[string]interface{}{
		"max_drawdown": 0.2,
		"stop_loss":    "bad",
		"foo":          1,
	})
	assert.True(t, ok)
	assert.Equal(t, []riskOverride{
		{key: "risk_management.foo", value: 1, result: fieldUnknown},
		{key: "risk_management.max_drawdown", value: 0.2, result: fieldApplied},
		{key: "risk_management.stop_loss", value: "bad", result: fieldInvalid},
	}, fields)
	assert.Equal(t, 0.2, r.MaxDrawdown)
	assert.Equal(t, 0.05, r.StopLoss)

	_, ok = applyRiskOverrides(&r, 0.2)
	assert.False(t, ok)
}

func TestAsInt(t *testing.T) {
	tests := []struct {
		in   interface{}
		want int
		ok   bool
	}{
		{5, 5, true},
		{int64(7), 7, true},
		{30.0, 30, true},
		{30.5, 0, false},
		{"30", 0, false},
		{nil, 0, false},
		{uint64(math.MaxUint64), 0, false},
		{1e19, 0, false},
		{-1e19, 0, false},
		{math.Inf(1), 0, false},
	}
	for _, tt := range tests {
		got, ok := asInt(tt.in)
		assert.Equal(t, tt.ok, ok, "%v", tt.in)
		assert.Equal(t, tt.want, got, "%v", tt.in)
	}
}
