package botrelay

import (
	"context"
	"fmt"
	"log/slog"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const pollTimeoutSeconds = 60

// TelegramSender sends replies through the Bot API.
type TelegramSender struct {
	api *tgbotapi.BotAPI
}

// NewTelegramSender creates a TelegramSender.
func NewTelegramSender(api *tgbotapi.BotAPI) *TelegramSender {
	return &TelegramSender{api: api}
}

func (s *TelegramSender) Send(_ context.Context, chatID int64, text string) error {
	if _, err := s.api.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
		return fmt.Errorf("send message to chat %d: %w", chatID, err)
	}
	return nil
}

// CommandFromMessage extracts a Command from a chat message. Messages that
// are not commands are skipped.
func CommandFromMessage(msg *tgbotapi.Message) (Command, bool) {
	if msg == nil || !msg.IsCommand() {
		return Command{}, false
	}
	cmd := Command{
		Name:      msg.Command(),
		Arguments: msg.CommandArguments(),
	}
	if msg.Chat != nil {
		cmd.ChatID = msg.Chat.ID
	}
	if msg.From != nil {
		cmd.From = &User{
			ID:        msg.From.ID,
			Username:  msg.From.UserName,
			FirstName: msg.From.FirstName,
			LastName:  msg.From.LastName,
		}
	}
	return cmd, true
}

// Poll long-polls Telegram and handles commands one at a time until ctx is
// cancelled.
func (b *Bot) Poll(ctx context.Context, api *tgbotapi.BotAPI) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = pollTimeoutSeconds
	updates := api.GetUpdatesChan(u)
	defer api.StopReceivingUpdates()

	b.logger.InfoContext(ctx, "Bot polling started", slog.String("username", api.Self.UserName))

	for {
		select {
		case <-ctx.Done():
			b.logger.InfoContext(ctx, "Bot polling stopped")
			return nil
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			cmd, isCommand := CommandFromMessage(update.Message)
			if !isCommand {
				continue
			}
			if err := b.Handle(ctx, cmd); err != nil {
				b.logger.ErrorContext(ctx, "Failed to handle command",
					slog.String("command", cmd.Name),
					slog.Int64("chat_id", cmd.ChatID),
					slog.String("error", err.Error()),
				)
			}
		}
	}
}
