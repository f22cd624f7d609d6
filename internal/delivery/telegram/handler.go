package telegram

import (
	"context"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/aliskhannn/quiz-pro-nobis/internal/domain/entities"
)

type QuestionService interface {
	GetQuestion(ctx context.Context, id string) (*entities.Question, error)
	ListCategories(ctx context.Context) ([]*entities.Category, error)
}

// Bot is the part of *tgbotapi.BotAPI the handler uses.
type Bot interface {
	GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// Commands is the command menu registered with Telegram.
var Commands = []tgbotapi.BotCommand{
	{Command: "start", Description: "Start the bot"},
	{Command: "categories", Description: "List quiz categories"},
	{Command: "question", Description: "Show a question (usage: /question q1)"},
	{Command: "help", Description: "Help"},
}

type Handler struct {
	bot             Bot
	logger          *zap.Logger
	questionService QuestionService
}

func NewHandler(bot Bot, logger *zap.Logger, questionService QuestionService) *Handler {
	return &Handler{
		bot:             bot,
		logger:          logger,
		questionService: questionService,
	}
}

func (h *Handler) Run(ctx context.Context) error {
	h.logger.Info("telegram handler started")
	defer h.logger.Info("telegram handler stopped")

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := h.bot.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			return nil
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			h.handleUpdate(ctx, update)
		}
	}
}

func (h *Handler) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	if update.Message == nil || !update.Message.IsCommand() {
		return
	}

	chatID := update.Message.Chat.ID
	h.logger.Debug("command received",
		zap.Int64("chat_id", chatID),
		zap.String("command", update.Message.Command()),
	)

	text := h.reply(ctx, chatID, update.Message.Command(), update.Message.CommandArguments())
	h.send(newHTMLMessage(chatID, text))
}

// reply builds the answer to a single command.
func (h *Handler) reply(ctx context.Context, chatID int64, command, args string) string {
	switch command {
	case "start":
		return msgWelcome
	case "help":
		return msgHelp
	case "categories":
		return h.withErrorHandling(chatID, func() (string, error) {
			categories, err := h.questionService.ListCategories(ctx)
			if err != nil {
				return "", err
			}
			return renderCategories(categories), nil
		})
	case "question":
		id := strings.TrimSpace(args)
		if id == "" {
			return msgUseQuestion
		}
		return h.withErrorHandling(chatID, func() (string, error) {
			q, err := h.questionService.GetQuestion(ctx, id)
			if err != nil {
				return "", err
			}
			return renderQuestion(q), nil
		})
	default:
		return msgUnknownCommand
	}
}

func (h *Handler) send(c tgbotapi.Chattable) {
	if _, err := h.bot.Send(c); err != nil {
		h.logger.Error("failed to send telegram message",
			zap.Error(err),
		)
	}
}
