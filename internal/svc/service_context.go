package svc

import (
	"crypto/tls"
	"fmt"
	"net/http"

	"github.com/fachebot/verse-memo-bot/internal/config"
	"github.com/fachebot/verse-memo-bot/internal/logger"
	"github.com/fachebot/verse-memo-bot/internal/output"
	"github.com/fachebot/verse-memo-bot/internal/summarizer"

	"golang.org/x/net/proxy"
)

type ServiceContext struct {
	Config         *config.Config
	Options        summarizer.Options
	OutputWriter   *output.Writer
	TransportProxy *http.Transport
}

func NewServiceContext(c *config.Config) *ServiceContext {
	// 解析摘要选项
	options, err := ResolveOptions(c)
	if err != nil {
		logger.Fatalf("解析摘要选项失败, %v", err)
	}

	// 创建SOCKS5代理
	var transportProxy *http.Transport
	if c.Sock5Proxy.Enable {
		socks5Proxy := fmt.Sprintf("%s:%d", c.Sock5Proxy.Host, c.Sock5Proxy.Port)
		dialer, err := proxy.SOCKS5("tcp", socks5Proxy, nil, proxy.Direct)
		if err != nil {
			logger.Fatalf("创建SOCKS5代理失败, %v", err)
		}

		transportProxy = &http.Transport{
			Dial:            dialer.Dial,
			TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
		}
	}

	svcCtx := &ServiceContext{
		Config:         c,
		Options:        options,
		OutputWriter:   output.NewWriter(c.Summary.OutputDir),
		TransportProxy: transportProxy,
	}
	return svcCtx
}

// ResolveOptions 根据配置解析摘要选项；内置规则集 hu 与 none，可被同名自定义覆盖
func ResolveOptions(c *config.Config) (summarizer.Options, error) {
	ruleset, err := resolveRuleset(c.Summary.Rulesets, c.Summary.Language)
	if err != nil {
		return summarizer.Options{}, err
	}

	return summarizer.Options{
		PreserveStructure: !c.Summary.FlattenLines,
		KeepVerseNumbers:  c.Summary.KeepVerseNumbers,
		RemoveReferences:  c.Summary.RemoveReferences,
		Digraphs:          summarizer.NewDigraphSet(ruleset),
	}, nil
}

func resolveRuleset(rulesets map[string][]string, language string) ([]string, error) {
	if ruleset, ok := rulesets[language]; ok {
		return ruleset, nil
	}
	switch language {
	case "hu":
		return summarizer.HungarianDigraphs, nil
	case "none":
		return nil, nil
	}
	return nil, fmt.Errorf("未知的规则集: %s", language)
}
