package notification

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stpnv0/EventCatalog/internal/domain"
	"github.com/wb-go/wbf/logger"
)

const dateLayout = "02.01.2006 15:04"

// TelegramNotifier announces status changes to a single channel or chat.
type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	chatID int64
	logger logger.Logger
}

func NewTelegramNotifier(token string, chatID int64, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" {
		logger.Warn("telegram bot token is empty, announcements disabled")
		return &TelegramNotifier{bot: nil, chatID: chatID, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, chatID: chatID, logger: logger}, nil
}

func (n *TelegramNotifier) NotifyEventPublished(ctx context.Context, event *domain.CulturalEvent) {
	n.send(ctx, event, publishedText(event))
}

func (n *TelegramNotifier) NotifyEventCancelled(ctx context.Context, event *domain.CulturalEvent) {
	n.send(ctx, event, cancelledText(event))
}

func publishedText(event *domain.CulturalEvent) string {
	text := fmt.Sprintf(
		"*New %s:* %s\n\n"+"Date (UTC): %s",
		event.Category, tgbotapi.EscapeText(tgbotapi.ModeMarkdown, event.Title),
		event.Date.UTC().Format(dateLayout),
	)
	if event.Venue != "" {
		text += "\nVenue: " + tgbotapi.EscapeText(tgbotapi.ModeMarkdown, event.Venue)
	}
	if event.Price != nil {
		text += fmt.Sprintf("\nPrice: %.2f", *event.Price)
	}
	return text
}

func cancelledText(event *domain.CulturalEvent) string {
	return fmt.Sprintf(
		"*Cancelled:* %s\n\n"+"Was scheduled for (UTC): %s",
		tgbotapi.EscapeText(tgbotapi.ModeMarkdown, event.Title),
		event.Date.UTC().Format(dateLayout),
	)
}

func (n *TelegramNotifier) send(ctx context.Context, event *domain.CulturalEvent, text string) {
	if n.bot == nil {
		n.logger.Debug("announcement skipped (bot disabled)", logger.String("event_id", event.ID))
		return
	}

	if n.chatID == 0 {
		n.logger.Debug("announcement skipped (no chat_id)", logger.String("event_id", event.ID))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("announcement skipped (context cancelled)",
			logger.String("event_id", event.ID),
		)
		return
	}

	msg := tgbotapi.NewMessage(n.chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram announcement",
			logger.Int64("chat_id", n.chatID),
			logger.String("event_id", event.ID),
			logger.String("error", err.Error()),
		)
	}
}
