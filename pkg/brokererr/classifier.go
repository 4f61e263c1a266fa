package brokererr

import "strings"

// MaxRetryAttempts 可重试错误的最大重试次数（系统常量，不按错误单独配置）
const MaxRetryAttempts = 3

// Classify 按关键词表顺序扫描，返回第一个出现在 raw 中的关键词对应的类别；
// 没有命中时返回 Unknown。
func Classify(raw string) Category {
	for _, rule := range keywordRules {
		if strings.Contains(raw, rule.Keyword) {
			return rule.Category
		}
	}
	return Unknown
}

// StrategyFor 返回类别对应的处理策略，未定义类别按 Unknown 处理
func StrategyFor(c Category) Strategy {
	if !c.Valid() {
		return strategyTable[Unknown]
	}
	return strategyTable[c]
}

// IsRetryable 类别的处理策略是否为 Retry，越界类别与 StrategyFor 一致按 Unknown 处理
func IsRetryable(c Category) bool {
	return StrategyFor(c) == Retry
}

// FormatUserMessage 返回面向用户的提示；raw 非空时附带原始错误
func FormatUserMessage(c Category, raw string) string {
	msg := genericUserMessage
	if c.Valid() {
		msg = userMessages[c]
	}
	if raw != "" {
		return msg + " (原始错误: " + raw + ")"
	}
	return msg
}

// SuggestionFor 返回类别对应的处理建议
func SuggestionFor(c Category) string {
	if !c.Valid() {
		return genericSuggestion
	}
	return suggestions[c]
}

// Keywords 返回关键词表副本（按匹配优先级排序）
func Keywords() []KeywordRule {
	out := make([]KeywordRule, len(keywordRules))
	copy(out, keywordRules)
	return out
}
