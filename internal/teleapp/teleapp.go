package teleapp

import (
	"context"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fachebot/verse-memo-bot/internal/logger"
	"github.com/fachebot/verse-memo-bot/internal/summarizer"
	"github.com/fachebot/verse-memo-bot/internal/svc"

	"github.com/zelenin/go-tdlib/client"
)

type TeleApp struct {
	svcCtx     *svc.ServiceContext
	user       *client.User
	tdClient   *client.Client
	listener   *client.Listener
	parameters *client.SetTdlibParametersRequest
	usersMu    sync.RWMutex
	usersCache map[int64]*client.User
	chatsMu    sync.RWMutex
	chatsCache map[int64]*client.Chat
	ctx        context.Context
	cancel     context.CancelFunc
	ctxMu      sync.Mutex
}

func NewApp(svcCtx *svc.ServiceContext, apiId int32, apiHash, dataDir string) *TeleApp {
	_, err := client.SetLogVerbosityLevel(&client.SetLogVerbosityLevelRequest{
		NewVerbosityLevel: 1,
	})
	if err != nil {
		logger.Fatalf("[TeleApp] 设置日志级别错误, %s", err)
	}

	parameters := &client.SetTdlibParametersRequest{
		UseTestDc:           false,
		DatabaseDirectory:   filepath.Join(dataDir, ".tdlib", "database"),
		FilesDirectory:      filepath.Join(dataDir, ".tdlib", "files"),
		UseFileDatabase:     true,
		UseChatInfoDatabase: true,
		UseMessageDatabase:  false,
		UseSecretChats:      false,
		ApiId:               apiId,
		ApiHash:             apiHash,
		SystemLanguageCode:  "en",
		DeviceModel:         "Server",
		SystemVersion:       "1.0.0",
		ApplicationVersion:  "1.0.0",
	}

	app := &TeleApp{
		svcCtx:     svcCtx,
		parameters: parameters,
		chatsCache: make(map[int64]*client.Chat),
		usersCache: make(map[int64]*client.User),
	}
	return app
}

func (app *TeleApp) Login(options ...client.Option) (*client.User, error) {
	if app.user != nil {
		return app.user, nil
	}

	authorizer := client.ClientAuthorizer(app.parameters)
	go client.CliInteractor(authorizer)

	tdlibClient, err := client.NewClient(authorizer, options...)
	if err != nil {
		return nil, err
	}

	me, err := tdlibClient.GetMe()
	if err != nil {
		return nil, err
	}

	app.user = me
	app.tdClient = tdlibClient

	listener := tdlibClient.GetListener()
	app.listener = listener

	app.ctxMu.Lock()
	app.ctx, app.cancel = context.WithCancel(context.Background())
	app.ctxMu.Unlock()

	go app.getUpdates(listener)

	return me, nil
}

func (app *TeleApp) Client() *client.Client {
	return app.tdClient
}

func (app *TeleApp) Close() error {
	if app.tdClient == nil {
		return nil
	}

	app.ctxMu.Lock()
	if app.cancel != nil {
		app.cancel()
	}
	app.ctxMu.Unlock()

	if app.listener != nil {
		app.listener.Close()
	}

	_, err := app.tdClient.Close()
	return err
}

func (app *TeleApp) getChat(chatId int64) (*client.Chat, error) {
	// 先尝试读锁读取缓存
	app.chatsMu.RLock()
	chat, ok := app.chatsCache[chatId]
	app.chatsMu.RUnlock()
	if ok {
		return chat, nil
	}

	// 缓存未命中，获取数据
	chat, err := app.tdClient.GetChat(&client.GetChatRequest{ChatId: chatId})
	if err != nil {
		return nil, err
	}

	// 写锁更新缓存
	app.chatsMu.Lock()
	app.chatsCache[chatId] = chat
	app.chatsMu.Unlock()
	return chat, nil
}

func (app *TeleApp) getUser(userId int64) (*client.User, error) {
	// 先尝试读锁读取缓存
	app.usersMu.RLock()
	user, ok := app.usersCache[userId]
	app.usersMu.RUnlock()
	if ok {
		return user, nil
	}

	// 缓存未命中，获取数据
	user, err := app.tdClient.GetUser(&client.GetUserRequest{UserId: userId})
	if err != nil {
		return nil, err
	}

	// 写锁更新缓存
	app.usersMu.Lock()
	app.usersCache[userId] = user
	app.usersMu.Unlock()
	return user, nil
}

func (app *TeleApp) getUpdates(listener *client.Listener) {
	app.ctxMu.Lock()
	ctx := app.ctx
	app.ctxMu.Unlock()

	for listener.IsActive() {
		select {
		case <-ctx.Done():
			logger.Infof("[TeleApp] 更新循环已取消，退出")
			return
		case update := <-listener.Updates:
			if update.GetType() != "updateNewMessage" {
				continue
			}

			// 仅处理文本消息
			updateNewMessage := update.(*client.UpdateNewMessage)
			message := updateNewMessage.Message
			if message.IsOutgoing {
				continue
			}
			if message.Content.MessageContentType() != "messageText" {
				continue
			}

			text := message.Content.(*client.MessageText)
			if text.Text == nil || text.Text.Text == "" {
				continue
			}

			// 获取来源Chat信息
			chat, err := app.getChat(message.ChatId)
			if err != nil {
				logger.Warnf("[TeleApp] 获取聊天信息失败, id: %d, %v", message.ChatId, err)
				continue
			}

			// 仅响应私聊，群聊消息忽略
			if chat.Type.ChatTypeType() != client.TypeChatTypePrivate {
				continue
			}

			senderName := app.senderName(message)
			logger.Debugf("[TeleApp] 接收段落: %s[%d] -> %s", senderName, chat.Id, text.Text.Text)

			app.replySummary(message.ChatId, senderName, text.Text.Text)
		}
	}
}

// replySummary 生成背诵摘要并回复到来源会话
func (app *TeleApp) replySummary(chatId int64, senderName, passage string) {
	summary := summarizer.Summarize(passage, app.svcCtx.Options)
	if strings.TrimSpace(summary) == "" {
		logger.Debugf("[TeleApp] 段落缩减后为空，忽略: %s[%d]", senderName, chatId)
		return
	}

	_, err := app.tdClient.SendMessage(&client.SendMessageRequest{
		ChatId: chatId,
		InputMessageContent: &client.InputMessageText{
			Text: &client.FormattedText{Text: summary},
		},
	})
	if err != nil {
		logger.Errorf("[TeleApp] 回复摘要失败, %s[%d]: %v", senderName, chatId, err)
		return
	}

	logger.Infof("[TeleApp] 已回复摘要: %s[%d]", senderName, chatId)
}

// senderName 解析消息发送者的显示名称，仅用于日志
func (app *TeleApp) senderName(message *client.Message) string {
	sender, ok := message.SenderId.(*client.MessageSenderUser)
	if !ok {
		return "unknown"
	}

	user, err := app.getUser(sender.UserId)
	if err != nil {
		logger.Warnf("[TeleApp] 获取用户信息失败, id: %d, %v", sender.UserId, err)
		return "unknown"
	}

	name := user.FirstName
	if user.LastName != "" {
		name += " " + user.LastName
	}
	return name
}
