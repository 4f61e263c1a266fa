package brokererr

// Action 交易引擎针对一次失败应采取的动作
type Action string

const (
	ActionRetry   Action = "retry"   // 重新提交
	ActionGiveUp  Action = "give_up" // 可重试但已达到 MaxRetryAttempts
	ActionReject  Action = "reject"  // 终止并提示用户
	ActionForward Action = "forward" // 原样交给券商，等待券商侧处理
)

// Decide 根据类别和已重试次数（从 0 开始）给出动作。
// 纯函数：计数与等待由调用方负责。
func Decide(c Category, attempt int) Action {
	switch StrategyFor(c) {
	case Retry:
		if attempt < MaxRetryAttempts {
			return ActionRetry
		}
		return ActionGiveUp
	case AllowBrokerHandle:
		return ActionForward
	default:
		return ActionReject
	}
}
