package telegram

import (
	"go.hacdias.com/folio/core"
	"go.hacdias.com/folio/log"
	"go.uber.org/zap"
	tb "gopkg.in/telebot.v3"
)

// maxMessageLength is the longest text, in characters, the Bot API accepts
// in a single message.
const maxMessageLength = 4096

// Telegram sends the owner's notifications, such as new leads and content
// problems, to a single chat as plain text.
type Telegram struct {
	chat tb.Recipient
	log  *zap.SugaredLogger
	bot  *tb.Bot
}

func NewTelegram(c *core.Telegram) (*Telegram, error) {
	return newTelegram(c, tb.Settings{Token: c.Token})
}

func newTelegram(c *core.Telegram, settings tb.Settings) (*Telegram, error) {
	bot, err := tb.NewBot(settings)
	if err != nil {
		return nil, err
	}

	return &Telegram{
		chat: &tb.Chat{ID: c.ChatID},
		log:  log.S().Named("telegram"),
		bot:  bot,
	}, nil
}

func (n *Telegram) Info(msg string) {
	n.notify(msg)
}

func (n *Telegram) Error(err error) {
	n.log.Errorw("notifying error", "err", err)
	n.notify("❌ " + err.Error())
}

func (n *Telegram) notify(text string) {
	_, err := n.bot.Send(n.chat, fitMessage(text), &tb.SendOptions{
		DisableWebPagePreview: true,
		ParseMode:             tb.ModeDefault,
	})
	if err != nil {
		n.log.Errorw("could not send notification", "err", err)
	}
}

// fitMessage cuts text to the Bot API message limit, marking the cut with an
// ellipsis.
func fitMessage(text string) string {
	runes := []rune(text)
	if len(runes) <= maxMessageLength {
		return text
	}
	return string(runes[:maxMessageLength-1]) + "…"
}

var _ core.Notifier = &Telegram{}
