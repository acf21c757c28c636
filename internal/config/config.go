package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Sock5Proxy struct {
	Host   string `yaml:"Host"`
	Port   int32  `yaml:"Port"`
	Enable bool   `yaml:"Enable"`
}

type TelegramApp struct {
	ApiId   int32  `yaml:"ApiId"`
	ApiHash string `yaml:"ApiHash"`
}

type Summary struct {
	Language         string              `yaml:"Language"`         // 生效的二合字母规则集名称，如 "hu"
	Rulesets         map[string][]string `yaml:"Rulesets"`         // 自定义规则集；缺省内置 hu 与 none
	FlattenLines     bool                `yaml:"FlattenLines"`     // 整段压平为一行（不保留换行结构）
	KeepVerseNumbers bool                `yaml:"KeepVerseNumbers"` // 保留行首经文编号
	RemoveReferences bool                `yaml:"RemoveReferences"` // 去除经文出处引用
	OutputDir        string              `yaml:"OutputDir"`        // 摘要保存目录，默认 output
}

type Practice struct {
	Cron          string  `yaml:"Cron"`          // cron 表达式，如 "0 7 * * *"
	PassageDir    string  `yaml:"PassageDir"`    // 背诵段落文件目录（*.txt）
	NotifyUserIds []int64 `yaml:"NotifyUserIds"` // 推送摘要的目标用户ID列表
}

type Config struct {
	Sock5Proxy  Sock5Proxy  `yaml:"Sock5Proxy"`
	TelegramApp TelegramApp `yaml:"TelegramApp"`
	Summary     Summary     `yaml:"Summary"`
	Practice    Practice    `yaml:"Practice"`
}

// Default 默认配置：匈牙利语规则集、保留结构、去除经文编号
func Default() *Config {
	return &Config{
		Summary: Summary{
			Language:  "hu",
			OutputDir: "output",
		},
	}
}

func LoadFromFile(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	var c Config
	err = yaml.Unmarshal(data, &c)
	if err != nil {
		return nil, err
	}

	// 填充缺省值
	if c.Summary.Language == "" {
		c.Summary.Language = "hu"
	}
	if c.Summary.OutputDir == "" {
		c.Summary.OutputDir = "output"
	}

	// 验证配置
	if err := c.Validate(); err != nil {
		return nil, err
	}

	return &c, nil
}

// Validate 验证摘要配置的有效性（Bot 模式的额外要求见 ValidateBot）
func (c *Config) Validate() error {
	if c.Summary.Language == "" {
		return fmt.Errorf("Summary.Language 不能为空")
	}
	for name, ruleset := range c.Summary.Rulesets {
		for _, digraph := range ruleset {
			if len([]rune(digraph)) != 2 {
				return fmt.Errorf("Summary.Rulesets.%s 包含非法二合字母: %q", name, digraph)
			}
		}
	}
	return nil
}

// ValidateBot 验证 Bot 模式所需的配置
func (c *Config) ValidateBot() error {
	if c.TelegramApp.ApiId == 0 {
		return fmt.Errorf("TelegramApp.ApiId 不能为空")
	}
	if c.TelegramApp.ApiHash == "" {
		return fmt.Errorf("TelegramApp.ApiHash 不能为空")
	}
	if c.Practice.Cron != "" {
		if c.Practice.PassageDir == "" {
			return fmt.Errorf("Practice.PassageDir 不能为空（当配置了 Practice.Cron 时）")
		}
		if len(c.Practice.NotifyUserIds) == 0 {
			return fmt.Errorf("Practice.NotifyUserIds 不能为空（当配置了 Practice.Cron 时）")
		}
	}
	return nil
}
