package config

import (
	"math"
	"sort"
)

// MergeReport 一次合并的结果：已应用 / 未知（忽略）/ 类型不符（跳过）的键
type MergeReport struct {
	Applied []string
	Ignored []string
	Invalid []string
}

// Empty 没有处理任何键
func (r MergeReport) Empty() bool {
	return len(r.Applied) == 0 && len(r.Ignored) == 0 && len(r.Invalid) == 0
}

func (r *MergeReport) absorb(other MergeReport, prefix string) {
	for _, k := range other.Applied {
		r.Applied = append(r.Applied, prefix+k)
	}
	for _, k := range other.Ignored {
		r.Ignored = append(r.Ignored, prefix+k)
	}
	for _, k := range other.Invalid {
		r.Invalid = append(r.Invalid, prefix+k)
	}
}

func (r *MergeReport) record(key string, res fieldResult) {
	switch res {
	case fieldApplied:
		r.Applied = append(r.Applied, key)
	case fieldInvalid:
		r.Invalid = append(r.Invalid, key)
	default:
		r.Ignored = append(r.Ignored, key)
	}
}

type fieldResult int

const (
	fieldUnknown fieldResult = iota
	fieldApplied
	fieldInvalid
)

const riskSectionKey = "risk_management"

// sortedKeys map 遍历顺序不确定，按键排序保证通知与报告稳定
func sortedKeys(data map[string]interface{}) []string {
	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// mergeRisk 逐字段合并风险参数
func mergeRisk(r *RiskParameters, data map[string]interface{}) MergeReport {
	var report MergeReport
	for _, key := range sortedKeys(data) {
		report.record(key, setRiskField(r, key, data[key]))
	}
	return report
}

func setRiskField(r *RiskParameters, key string, value interface{}) fieldResult {
	switch key {
	case "max_single_position":
		return assignFloat(&r.MaxSinglePosition, value)
	case "max_total_positions":
		return assignFloat(&r.MaxTotalPositions, value)
	case "stop_loss":
		return assignFloat(&r.StopLoss, value)
	case "max_positions_count":
		return assignInt(&r.MaxPositionsCount, value)
	case "max_daily_loss":
		return assignFloat(&r.MaxDailyLoss, value)
	case "max_drawdown":
		return assignFloat(&r.MaxDrawdown, value)
	case "position_risk_pct":
		return assignFloat(&r.PositionRiskPct, value)
	}
	return fieldUnknown
}

// mergeBacktest 合并回测配置；risk_management 为映射时逐字段合并
func mergeBacktest(p *BacktestParameters, data map[string]interface{}) MergeReport {
	var report MergeReport
	for _, key := range sortedKeys(data) {
		if key == riskSectionKey {
			if rep, ok := mergeRiskSection(&p.RiskManagement, data[key]); ok {
				report.absorb(rep, riskSectionKey+".")
			} else {
				report.record(key, fieldInvalid)
			}
			continue
		}
		report.record(key, setBacktestField(p, key, data[key]))
	}
	return report
}

func setBacktestField(p *BacktestParameters, key string, value interface{}) fieldResult {
	switch key {
	case "initial_cash":
		return assignFloat(&p.InitialCash, value)
	case "commission":
		return assignFloat(&p.Commission, value)
	case "data_source":
		return assignString(&p.DataSource, value)
	case "debug_mode":
		return assignBool(&p.DebugMode, value)
	case "error_output_interval":
		return assignInt(&p.ErrorOutputInterval, value)
	}
	return fieldUnknown
}

// mergeLive 合并实盘配置；risk_management 为映射时逐字段合并
func mergeLive(p *LiveParameters, data map[string]interface{}) MergeReport {
	var report MergeReport
	for _, key := range sortedKeys(data) {
		if key == riskSectionKey {
			if rep, ok := mergeRiskSection(&p.RiskManagement, data[key]); ok {
				report.absorb(rep, riskSectionKey+".")
			} else {
				report.record(key, fieldInvalid)
			}
			continue
		}
		report.record(key, setLiveField(p, key, data[key]))
	}
	return report
}

func setLiveField(p *LiveParameters, key string, value interface{}) fieldResult {
	switch key {
	case "mini_qmt_path":
		return assignString(&p.MiniQMTPath, value)
	case "account_id":
		return assignString(&p.AccountID, value)
	case "account_type":
		return assignString(&p.AccountType, value)
	case "data_source":
		return assignString(&p.DataSource, value)
	case "debug_mode":
		return assignBool(&p.DebugMode, value)
	case "error_output_interval":
		return assignInt(&p.ErrorOutputInterval, value)
	}
	return fieldUnknown
}

// mergeRiskSection value 不是映射时返回 false，风险参数保持不变
func mergeRiskSection(r *RiskParameters, value interface{}) (MergeReport, bool) {
	section, ok := asMap(value)
	if !ok {
		return MergeReport{}, false
	}
	return mergeRisk(r, section), true
}

// mergeDocument 把解析后的配置文档合并进 cfg。
// mode 直接覆盖（不校验取值）；backtest/live 只合并已知字段。
func mergeDocument(cfg *ApplicationConfig, data map[string]interface{}) MergeReport {
	var report MergeReport

	if v, ok := data["mode"]; ok {
		if s, ok := v.(string); ok {
			cfg.Mode = Mode(s)
			report.Applied = append(report.Applied, "mode")
		} else {
			report.Invalid = append(report.Invalid, "mode")
		}
	}

	if v, ok := data["backtest"]; ok {
		if section, ok := asMap(v); ok {
			report.absorb(mergeBacktest(&cfg.Backtest, section), "backtest.")
		} else if v != nil {
			report.Invalid = append(report.Invalid, "backtest")
		}
	}

	if v, ok := data["live"]; ok {
		if section, ok := asMap(v); ok {
			report.absorb(mergeLive(&cfg.Live, section), "live.")
		} else if v != nil {
			report.Invalid = append(report.Invalid, "live")
		}
	}

	return report
}

// applyOverride 对当前模式配置应用单个覆盖项：先匹配模式字段，再匹配风险字段。
// risk_management 映射由 applyRiskOverrides 逐字段处理。
func applyOverride(current ModeConfig, key string, value interface{}) fieldResult {
	var res fieldResult
	switch p := current.(type) {
	case *BacktestParameters:
		res = setBacktestField(p, key, value)
	case *LiveParameters:
		res = setLiveField(p, key, value)
	}
	if res != fieldUnknown {
		return res
	}
	return setRiskField(current.Risk(), key, value)
}

// riskOverride risk_management 映射中单个字段的处理结果
type riskOverride struct {
	key    string // risk_management.<field>
	value  interface{}
	result fieldResult
}

// applyRiskOverrides 逐字段应用 risk_management 映射；value 不是映射时返回 false
func applyRiskOverrides(r *RiskParameters, value interface{}) ([]riskOverride, bool) {
	section, ok := asMap(value)
	if !ok {
		return nil, false
	}
	out := make([]riskOverride, 0, len(section))
	for _, k := range sortedKeys(section) {
		out = append(out, riskOverride{
			key:    riskSectionKey + "." + k,
			value:  section[k],
			result: setRiskField(r, k, section[k]),
		})
	}
	return out, true
}

func asMap(v interface{}) (map[string]interface{}, bool) {
	switch m := v.(type) {
	case map[string]interface{}:
		return m, true
	case map[interface{}]interface{}:
		out := make(map[string]interface{}, len(m))
		for k, val := range m {
			ks, ok := k.(string)
			if !ok {
				return nil, false
			}
			out[ks] = val
		}
		return out, true
	}
	return nil, false
}

func asFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	}
	return 0, false
}

// asInt 超出 int 范围的值视为不匹配
func asInt(v interface{}) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		if n < math.MinInt || n > math.MaxInt {
			return 0, false
		}
		return int(n), true
	case int32:
		return int(n), true
	case uint64:
		if n > math.MaxInt {
			return 0, false
		}
		return int(n), true
	case uint:
		if n > math.MaxInt {
			return 0, false
		}
		return int(n), true
	}
	f, ok := asFloat(v)
	if !ok || f != math.Trunc(f) || math.IsInf(f, 0) {
		return 0, false
	}
	// float64(math.MaxInt) 会向上取整为 2^63，必须用严格小于
	if f < math.MinInt || f >= math.MaxInt {
		return 0, false
	}
	return int(f), true
}

func assignFloat(dst *float64, v interface{}) fieldResult {
	f, ok := asFloat(v)
	if !ok {
		return fieldInvalid
	}
	*dst = f
	return fieldApplied
}

func assignInt(dst *int, v interface{}) fieldResult {
	n, ok := asInt(v)
	if !ok {
		return fieldInvalid
	}
	*dst = n
	return fieldApplied
}

func assignString(dst *string, v interface{}) fieldResult {
	s, ok := v.(string)
	if !ok {
		return fieldInvalid
	}
	*dst = s
	return fieldApplied
}

func assignBool(dst *bool, v interface{}) fieldResult {
	b, ok := v.(bool)
	if !ok {
		return fieldInvalid
	}
	*dst = b
	return fieldApplied
}
