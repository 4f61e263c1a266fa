package brokererr

// KeywordRule 关键词 -> 类别
type KeywordRule struct {
	Keyword  string
	Category Category
}

// keywordRules 顺序即匹配优先级：多个关键词同时命中时取最先定义的
var keywordRules = []KeywordRule{
	{"资金不足", InsufficientFunds},
	{"余额不足", InsufficientFunds},
	{"可用资金不足", InsufficientFunds},
	{"股票代码错误", InvalidStock},
	{"证券代码不存在", InvalidStock},
	{"非交易时间", MarketClosed},
	{"市场未开放", MarketClosed},
	{"价格超出涨跌停", PriceLimit},
	{"委托价格不合理", PriceLimit},
	{"委托数量错误", VolumeLimit},
	{"数量必须是100的整数倍", VolumeLimit},
	{"网络连接失败", Network},
	{"连接超时", Network},
	{"系统繁忙", System},
	{"服务器错误", System},
	{"账户状态异常", Account},
	{"账户被冻结", Account},
}

var strategyTable = [numCategories]Strategy{
	InsufficientFunds: Reject,
	InvalidStock:      Reject,
	MarketClosed:      Reject,
	PriceLimit:        AllowBrokerHandle,
	VolumeLimit:       Reject,
	Network:           Retry,
	System:            Retry,
	Account:           Reject,
	Unknown:           Retry,
}

var userMessages = [numCategories]string{
	InsufficientFunds: "资金不足，请检查账户余额",
	InvalidStock:      "股票代码无效，请检查输入",
	MarketClosed:      "当前非交易时间",
	PriceLimit:        "价格超出限制，系统将自动调整",
	VolumeLimit:       "交易数量不符合要求",
	Network:           "网络连接问题，正在重试",
	System:            "系统繁忙，正在重试",
	Account:           "账户状态异常，请联系客服",
	Unknown:           "未知错误，正在重试",
}

var suggestions = [numCategories]string{
	InsufficientFunds: "建议: 1) 检查账户余额 2) 减少交易数量 3) 充值资金",
	InvalidStock:      "建议: 1) 检查股票代码格式 2) 确认股票是否存在 3) 检查市场类型",
	MarketClosed:      "建议: 1) 等待市场开盘 2) 检查交易时间 3) 确认节假日安排",
	PriceLimit:        "建议: 1) 调整委托价格 2) 使用市价单 3) 等待价格回调",
	VolumeLimit:       "建议: 1) 调整为100的整数倍 2) 检查最小交易单位 3) 确认持仓限制",
	Network:           "建议: 1) 检查网络连接 2) 重启交易软件 3) 联系网络服务商",
	System:            "建议: 1) 稍后重试 2) 联系券商客服 3) 检查系统公告",
	Account:           "建议: 1) 联系券商客服 2) 检查账户状态 3) 确认资金账户",
	Unknown:           "建议: 1) 记录错误信息 2) 联系技术支持 3) 稍后重试",
}

const (
	genericUserMessage = "未知错误"
	genericSuggestion  = "建议联系技术支持"
)
