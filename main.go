//go:build linux
// +build linux

package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/fachebot/verse-memo-bot/internal/config"
	"github.com/fachebot/verse-memo-bot/internal/logger"
	"github.com/fachebot/verse-memo-bot/internal/notify"
	"github.com/fachebot/verse-memo-bot/internal/scheduler"
	"github.com/fachebot/verse-memo-bot/internal/summarizer"
	"github.com/fachebot/verse-memo-bot/internal/svc"
	"github.com/fachebot/verse-memo-bot/internal/teleapp"

	"github.com/zelenin/go-tdlib/client"
)

var (
	configFile  = flag.String("c", "etc/config.yaml", "the config file")
	inputFile   = flag.String("f", "", "read passage from file")
	outputName  = flag.String("o", "", "save summary under the output dir as NAME(.txt)")
	noStructure = flag.Bool("no-structure", false, "treat entire text as one line")
	keepVerses  = flag.Bool("keep-verses", false, "keep leading verse numbers")
	stripRefs   = flag.Bool("strip-refs", false, "remove reference citations")
	language    = flag.String("lang", "", "digraph ruleset name, e.g. hu / none")
	serve       = flag.Bool("serve", false, "run as telegram bot")
)

func main() {
	flag.Parse()

	c := loadConfig()
	applyFlags(c)

	if *serve {
		runBot(c)
		return
	}
	runCLI(c)
}

// loadConfig 读取配置文件；CLI 模式下配置文件可缺省，使用默认配置
func loadConfig() *config.Config {
	c, err := config.LoadFromFile(*configFile)
	if err == nil {
		return c
	}
	if *serve || !os.IsNotExist(err) {
		logger.Fatalf("读取配置文件失败, %s", err)
	}
	logger.Debugf("配置文件不存在，使用默认配置: %s", *configFile)
	return config.Default()
}

// applyFlags 命令行旗标覆盖配置文件
func applyFlags(c *config.Config) {
	if *noStructure {
		c.Summary.FlattenLines = true
	}
	if *keepVerses {
		c.Summary.KeepVerseNumbers = true
	}
	if *stripRefs {
		c.Summary.RemoveReferences = true
	}
	if *language != "" {
		c.Summary.Language = *language
	}
}

func runCLI(c *config.Config) {
	svcCtx := svc.NewServiceContext(c)

	text, err := readPassage()
	if err != nil {
		logger.Fatalf("读取输入失败, %s", err)
	}
	if strings.TrimSpace(text) == "" {
		logger.Fatalf("未提供任何文本")
	}

	summary := summarizer.Summarize(text, svcCtx.Options)
	fmt.Println(summary)

	if *outputName != "" {
		path, err := svcCtx.OutputWriter.Save(*outputName, summary)
		if err != nil {
			logger.Fatalf("保存摘要失败, %s", err)
		}
		logger.Infof("摘要已保存到 %s", path)
	}
}

// readPassage 按优先级读取段落：位置参数 > -f 文件 > 标准输入
func readPassage() (string, error) {
	if args := flag.Args(); len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	if *inputFile != "" {
		data, err := os.ReadFile(*inputFile)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func runBot(c *config.Config) {
	if err := c.ValidateBot(); err != nil {
		logger.Fatalf("Bot 配置无效, %s", err)
	}

	// 创建数据目录
	if _, err := os.Stat("data"); os.IsNotExist(err) {
		err := os.Mkdir("data", 0755)
		if err != nil {
			logger.Fatalf("创建数据目录失败, %s", err)
		}
	}

	// 创建服务上下文
	svcCtx := svc.NewServiceContext(c)

	// 运行Telegram App
	options := make([]client.Option, 0)
	if c.Sock5Proxy.Enable {
		options = append(options, client.WithProxy(&client.AddProxyRequest{
			Server: c.Sock5Proxy.Host,
			Port:   c.Sock5Proxy.Port,
			Enable: c.Sock5Proxy.Enable,
			Type:   &client.ProxyTypeSocks5{},
		}))
	}

	// 创建TeleApp
	app := teleapp.NewApp(svcCtx, c.TelegramApp.ApiId, c.TelegramApp.ApiHash, "data")
	user, err := app.Login(options...)
	if err != nil {
		logger.Fatalf("[TeleApp] 用户登录失败, %s", err)
	}
	logger.Infof("[TeleApp] 用户 <%s %s>(%d) 登录成功", user.FirstName, user.LastName, user.Id)

	// 创建通知器和调度器
	notifierInstance := notify.NewNotifier(app.Client(), &c.Practice)
	schedulerInstance := scheduler.NewScheduler(
		notifierInstance,
		svcCtx.Options,
		&c.Practice,
	)
	if err := schedulerInstance.Start(); err != nil {
		logger.Fatalf("[Scheduler] 启动调度器失败: %s", err)
	}

	// 等待程序退出
	ch := make(chan os.Signal, 2)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	<-ch

	// 优雅关闭
	logger.Infof("正在关闭服务...")
	schedulerInstance.Stop()
	err = app.Close()
	if err != nil {
		logger.Infof("[TeleApp] 关闭失败, %v", err)
	}
	logger.Infof("服务已停止")
}
