package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/joho/godotenv"

	"github.com/betbot/tradecore/internal/metrics"
	"github.com/betbot/tradecore/pkg/brokererr"
	"github.com/betbot/tradecore/pkg/config"
	"github.com/betbot/tradecore/pkg/logger"
	"github.com/betbot/tradecore/pkg/output"
	"github.com/betbot/tradecore/pkg/shutdown"
)

func envOr(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func main() {
	// .env 不存在时忽略
	_ = godotenv.Load()

	configPath := flag.String("config", envOr("TRADECORE_CONFIG", ""), "配置文件路径（支持 .yaml, .yml, .json），为空则在当前目录查找 config.yaml/config.yml/config.json")
	mode := flag.String("mode", "", "覆盖运行模式：backtest / live")
	debug := flag.Bool("debug", false, "输出 debug 日志")
	classify := flag.String("classify", "", "对一条券商错误信息分类后退出")
	savePath := flag.String("save", "", "将当前配置保存到指定文件（.yaml/.yml/.json）")
	metricsAddr := flag.String("metrics", "", "metrics/pprof 监听地址，例如 127.0.0.1:9090（为空不启动）")
	flag.Parse()

	if err := logger.Init(logger.Config{
		Level:      envOr("TRADECORE_LOG_LEVEL", "info"),
		OutputFile: os.Getenv("TRADECORE_LOG_FILE"),
		MaxSize:    100,
		MaxBackups: 3,
		MaxAge:     7,
		Compress:   true,
	}); err != nil {
		panic(fmt.Sprintf("初始化日志失败: %v", err))
	}

	mgr, err := config.NewManager(*configPath)
	if err != nil {
		logger.Errorf("加载配置失败: %v", err)
		os.Exit(1)
	}
	if *mode != "" {
		mgr.SetMode(config.Mode(*mode))
	}

	current := mgr.CurrentConfig()
	if *debug || current.Debug() {
		logger.SetLevel("debug")
	}
	logger.Debugf("%s", mgr)

	if *classify != "" {
		sink := output.NewThrottle(output.NewLoggerSink("broker"), current.ErrorThrottle())
		printClassification(brokererr.NewBrokerError(*classify), sink)
		return
	}

	printConfig(mgr)

	if *savePath != "" {
		if err := mgr.SaveToFile(*savePath); err != nil {
			os.Exit(1)
		}
	}

	if *metricsAddr == "" {
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv, err := metrics.StartAsync(ctx, *metricsAddr)
	if err != nil {
		logger.Errorf("metrics/pprof 启动失败: %v", err)
		os.Exit(1)
	}
	logger.Infof("metrics/pprof 启用: listen=%s (prometheus:/metrics, pprof:/debug/pprof)", *metricsAddr)

	sm := shutdown.NewManager()
	sm.OnShutdown("metrics", srv.Shutdown)

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := sm.Shutdown(shutdownCtx); err != nil {
		os.Exit(1)
	}
}

func printConfig(mgr *config.Manager) {
	current := mgr.CurrentConfig()
	risk := current.Risk()

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetTitle("TRADECORE CONFIG")
	t.SetStyle(table.StyleRounded)

	t.AppendRows([]table.Row{
		{"运行模式", string(mgr.Mode())},
		{"配置文件", orDash(mgr.Path())},
		{"数据源", current.Source()},
		{"调试模式", current.Debug()},
		{"错误输出间隔", current.ErrorThrottle().String()},
	})
	switch p := current.(type) {
	case *config.BacktestParameters:
		t.AppendRows([]table.Row{
			{"初始资金", fmt.Sprintf("%.2f", p.InitialCash)},
			{"佣金比例", fmt.Sprintf("%.4f%%", p.Commission*100)},
		})
	case *config.LiveParameters:
		t.AppendRows([]table.Row{
			{"QMT 路径", p.MiniQMTPath},
			{"账户", p.AccountID},
			{"账户类型", p.AccountType},
		})
	}

	t.AppendSeparator()
	t.AppendRows([]table.Row{
		{"单只最大仓位", pct(risk.MaxSinglePosition)},
		{"总仓位上限", pct(risk.MaxTotalPositions)},
		{"止损", pct(risk.StopLoss)},
		{"最大持仓数", risk.MaxPositionsCount},
		{"单日最大亏损", pct(risk.MaxDailyLoss)},
		{"最大回撤", pct(risk.MaxDrawdown)},
		{"单笔风险", pct(risk.PositionRiskPct)},
	})

	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, WidthMin: 14, Align: text.AlignLeft},
		{Number: 2, WidthMin: 30, Align: text.AlignLeft},
	})
	t.Render()
}

func printClassification(be *brokererr.BrokerError, sink output.Sink) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetTitle("BROKER ERROR")
	t.SetStyle(table.StyleRounded)
	t.AppendRows([]table.Row{
		{"ID", be.ID},
		{"原始信息", be.Raw},
		{"分类", be.Category.String()},
		{"处理策略", be.Strategy.String()},
		{"可重试", be.Retryable()},
		{"首次处理", string(brokererr.Decide(be.Category, 0))},
		{"提示", be.UserMessage()},
		{"建议", be.Suggestion()},
	})
	t.Render()

	switch brokererr.Decide(be.Category, 0) {
	case brokererr.ActionReject:
		sink.Error("%s", be.UserMessage())
	case brokererr.ActionForward:
		sink.Warning("%s", be.UserMessage())
	default:
		sink.Info("%s", be.UserMessage())
	}
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func pct(v float64) string {
	return fmt.Sprintf("%.2f%%", v*100)
}
