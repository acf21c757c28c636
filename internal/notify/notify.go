package notify

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/fachebot/verse-memo-bot/internal/config"
	"github.com/fachebot/verse-memo-bot/internal/logger"
	"github.com/zelenin/go-tdlib/client"
)

const (
	MaxMessageLength = 5000 // Telegram 消息最大长度
)

// messageSender 发送消息的最小接口（便于测试注入 mock）
type messageSender interface {
	SendMessage(req *client.SendMessageRequest) (*client.Message, error)
}

type Notifier struct {
	tdClient messageSender
	config   *config.Practice
}

func NewNotifier(tdClient *client.Client, cfg *config.Practice) *Notifier {
	return &Notifier{
		tdClient: tdClient,
		config:   cfg,
	}
}

// Notify 把背诵摘要推送给配置的目标用户
// 摘要是纯文本，不做 HTML 解析，保证其中的标点原样送达
func (n *Notifier) Notify(ctx context.Context, content string) error {
	if content == "" {
		return nil
	}

	if len(n.config.NotifyUserIds) == 0 {
		logger.Warnf("[Notify] 未配置推送目标用户ID")
		return nil
	}

	messages := splitMessage(content)

	for _, userID := range n.config.NotifyUserIds {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		for _, msg := range messages {
			_, err := n.tdClient.SendMessage(&client.SendMessageRequest{
				ChatId: userID,
				InputMessageContent: &client.InputMessageText{
					Text: &client.FormattedText{Text: msg},
				},
			})
			if err != nil {
				return fmt.Errorf("发送摘要给用户 %d 失败: %w", userID, err)
			}
			logger.Infof("[Notify] 已发送摘要给用户 %d", userID)
		}
	}

	return nil
}

// splitMessage 将消息按长度拆分为多条，优先在段落边界断开
func splitMessage(content string) []string {
	if len(content) <= MaxMessageLength {
		return []string{content}
	}

	paragraphs := strings.Split(content, "\n\n")
	if len(paragraphs) == 1 {
		// 没有段落分隔，按换行拆分
		paragraphs = strings.Split(content, "\n")
	}

	messages := make([]string, 0)
	currentMsg := ""

	for _, para := range paragraphs {
		if para == "" {
			continue
		}

		testMsg := currentMsg
		if testMsg != "" {
			testMsg += "\n\n"
		}
		testMsg += para

		if len(testMsg) <= MaxMessageLength {
			currentMsg = testMsg
			continue
		}

		// 当前消息已满，保存并开始新消息
		if currentMsg != "" {
			messages = append(messages, currentMsg)
			currentMsg = ""
		}

		// 单个段落超长时按固定长度硬拆，断点落在字符边界上
		for len(para) > MaxMessageLength {
			cut := MaxMessageLength
			for cut > 0 && !utf8.RuneStart(para[cut]) {
				cut--
			}
			messages = append(messages, para[:cut])
			para = para[cut:]
		}
		currentMsg = para
	}

	if currentMsg != "" {
		messages = append(messages, currentMsg)
	}

	return messages
}
