package config

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/unicode"
	"gopkg.in/yaml.v3"
)

var (
	// ErrConfigNotFound 配置文件不存在
	ErrConfigNotFound = errors.New("config file not found")
	// ErrUnsupportedFormat 不支持的配置文件格式（仅支持 .json/.yaml/.yml）
	ErrUnsupportedFormat = errors.New("unsupported config file format")
	// ErrUndecodable 所有候选编码都无法解码配置文件
	ErrUndecodable = errors.New("no encoding could decode config file")
)

type fileFormat string

const (
	formatJSON fileFormat = "json"
	formatYAML fileFormat = "yaml"
)

func detectFormat(path string) (fileFormat, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".json":
		return formatJSON, nil
	case ".yaml", ".yml":
		return formatYAML, nil
	}
	return "", errors.Wrapf(ErrUnsupportedFormat, "%q (支持 .yaml, .yml, .json)", ext)
}

// formatLabel 用于指标标签
func formatLabel(path string) string {
	if f, err := detectFormat(path); err == nil {
		return string(f)
	}
	return "unknown"
}

// textDecoder 按某种编码严格解码，失败返回 false
type textDecoder struct {
	name   string
	decode func([]byte) ([]byte, bool)
}

// yamlEncodings YAML 配置可能由 Windows 下的 ANSI 工具生成，按顺序尝试
var yamlEncodings = []textDecoder{
	{"utf-8", decodeUTF8},
	{"utf-8-sig", decodeUTF8BOM},
	{"gbk", strictDecoder(simplifiedchinese.GBK, nil)},
	{"gb2312", strictDecoder(simplifiedchinese.GBK, isEUCCN)},
	{"cp1252", strictDecoder(charmap.Windows1252, isDefinedCP1252)},
}

func decodeUTF8(b []byte) ([]byte, bool) {
	return b, utf8.Valid(b)
}

// decodeUTF8BOM 解码器会把非法字节替换为 U+FFFD，所以先校验输入
func decodeUTF8BOM(b []byte) ([]byte, bool) {
	if !utf8.Valid(b) {
		return nil, false
	}
	out, err := unicode.UTF8BOM.NewDecoder().Bytes(b)
	if err != nil {
		return nil, false
	}
	return out, true
}

// strictDecoder x/text 的解码器遇到非法字节会输出 U+FFFD 而不是报错，
// 这里把出现 U+FFFD 视为解码失败；accept 用于在解码前做额外的字节级校验。
func strictDecoder(enc encoding.Encoding, accept func([]byte) bool) func([]byte) ([]byte, bool) {
	return func(b []byte) ([]byte, bool) {
		if accept != nil && !accept(b) {
			return nil, false
		}
		out, err := enc.NewDecoder().Bytes(b)
		if err != nil || bytes.ContainsRune(out, utf8.RuneError) {
			return nil, false
		}
		return out, true
	}
}

// isEUCCN GB2312（EUC-CN）：双字节的首尾字节都在 0xA1-0xFE
func isEUCCN(b []byte) bool {
	for i := 0; i < len(b); i++ {
		c := b[i]
		if c < 0x80 {
			continue
		}
		if c < 0xA1 || c > 0xF7 || i+1 >= len(b) {
			return false
		}
		t := b[i+1]
		if t < 0xA1 || t > 0xFE {
			return false
		}
		i++
	}
	return true
}

// isDefinedCP1252 CP1252 中 0x81/0x8D/0x8F/0x90/0x9D 未定义
func isDefinedCP1252(b []byte) bool {
	for _, c := range b {
		switch c {
		case 0x81, 0x8D, 0x8F, 0x90, 0x9D:
			return false
		}
	}
	return true
}

// decodeYAMLText 依次尝试候选编码，返回第一个解码成功的 UTF-8 文本和编码名
func decodeYAMLText(raw []byte) ([]byte, string, error) {
	for _, enc := range yamlEncodings {
		if text, ok := enc.decode(raw); ok {
			return text, enc.name, nil
		}
	}
	return nil, "", ErrUndecodable
}

// readDocument 读取并解析配置文件，返回顶层映射与（YAML 时）所用编码。
// 读取与解析错误原样返回。
func readDocument(path string) (map[string]interface{}, string, error) {
	format, err := detectFormat(path)
	if err != nil {
		return nil, "", err
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, "", err
	}

	doc := map[string]interface{}{}
	switch format {
	case formatJSON:
		if !utf8.Valid(raw) {
			return nil, "", errors.Wrapf(ErrUndecodable, "%s is not valid utf-8", path)
		}
		if err := json.Unmarshal(raw, &doc); err != nil {
			return nil, "", err
		}
		return doc, "", nil
	default:
		text, encName, err := decodeYAMLText(raw)
		if err != nil {
			return nil, "", errors.Wrapf(err, "%s", path)
		}
		text = bytes.TrimPrefix(text, []byte("\ufeff"))
		if err := yaml.Unmarshal(text, &doc); err != nil {
			return nil, encName, err
		}
		if doc == nil {
			doc = map[string]interface{}{}
		}
		return doc, encName, nil
	}
}

// backtestSection 保存到文件的回测字段（不含风险参数）
type backtestSection struct {
	InitialCash         float64 `yaml:"initial_cash" json:"initial_cash"`
	Commission          float64 `yaml:"commission" json:"commission"`
	DataSource          string  `yaml:"data_source" json:"data_source"`
	DebugMode           bool    `yaml:"debug_mode" json:"debug_mode"`
	ErrorOutputInterval int     `yaml:"error_output_interval" json:"error_output_interval"`
}

// liveSection 保存到文件的实盘字段（不含风险参数）
type liveSection struct {
	MiniQMTPath         string `yaml:"mini_qmt_path" json:"mini_qmt_path"`
	AccountID           string `yaml:"account_id" json:"account_id"`
	AccountType         string `yaml:"account_type" json:"account_type"`
	DataSource          string `yaml:"data_source" json:"data_source"`
	DebugMode           bool   `yaml:"debug_mode" json:"debug_mode"`
	ErrorOutputInterval int    `yaml:"error_output_interval" json:"error_output_interval"`
}

// savedDocument 保存格式：扁平的 mode/backtest/live 三段
type savedDocument struct {
	Mode     string          `yaml:"mode" json:"mode"`
	Backtest backtestSection `yaml:"backtest" json:"backtest"`
	Live     liveSection     `yaml:"live" json:"live"`
}

func snapshotDocument(cfg *ApplicationConfig) savedDocument {
	return savedDocument{
		Mode: string(cfg.Mode),
		Backtest: backtestSection{
			InitialCash:         cfg.Backtest.InitialCash,
			Commission:          cfg.Backtest.Commission,
			DataSource:          cfg.Backtest.DataSource,
			DebugMode:           cfg.Backtest.DebugMode,
			ErrorOutputInterval: cfg.Backtest.ErrorOutputInterval,
		},
		Live: liveSection{
			MiniQMTPath:         cfg.Live.MiniQMTPath,
			AccountID:           cfg.Live.AccountID,
			AccountType:         cfg.Live.AccountType,
			DataSource:          cfg.Live.DataSource,
			DebugMode:           cfg.Live.DebugMode,
			ErrorOutputInterval: cfg.Live.ErrorOutputInterval,
		},
	}
}

func encodeDocument(format fileFormat, doc savedDocument) ([]byte, error) {
	var buf bytes.Buffer
	switch format {
	case formatJSON:
		enc := json.NewEncoder(&buf)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		if err := enc.Encode(doc); err != nil {
			return nil, err
		}
	default:
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return nil, err
		}
		if err := enc.Close(); err != nil {
			return nil, err
		}
	}
	return buf.Bytes(), nil
}

// writeDocument 先写临时文件再 rename，避免写一半的配置文件
func writeDocument(path string, doc savedDocument) error {
	format, err := detectFormat(path)
	if err != nil {
		return err
	}
	b, err := encodeDocument(format, doc)
	if err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return errors.Wrap(err, "写入配置文件失败")
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return nil
}
