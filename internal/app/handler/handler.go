package handler

import (
	"github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"
	tu "github.com/mymmrac/telego/telegoutil"
)

type Handler struct{}

func (h *Handler) Reply(ctx *th.Context, update telego.Update, text string, opts func(message *telego.SendMessageParams) error) (*telego.Message, error) {
	message := tu.Message(tu.ID(update.Message.Chat.ID), text).
		WithParseMode(telego.ModeMarkdownV2).
		WithReplyParameters(&telego.ReplyParameters{MessageID: update.Message.MessageID})
	if opts != nil {
		if err := opts(message); err != nil {
			return nil, err
		}
	}
	return ctx.Bot().SendMessage(ctx, message)
}
