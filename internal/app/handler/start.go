package handler

import (
	"fmt"

	"github.com/damonto/carrier-id/internal/pkg/util"
	"github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"
)

type StartHandler struct {
	*Handler
}

const StartMessageTemplate = `
Hello, *%s %s*\!
Send /carrier to identify your SIM cards and the network they are on\.
Your UID is *%d*
`

func NewStartHandler() *StartHandler {
	return &StartHandler{Handler: new(Handler)}
}

func (h *StartHandler) Handle() th.Handler {
	return func(ctx *th.Context, update telego.Update) error {
		from := update.Message.From
		_, err := h.Reply(ctx, update, fmt.Sprintf(
			StartMessageTemplate,
			util.EscapeText(from.FirstName),
			util.EscapeText(from.LastName),
			from.ID,
		), nil)
		return err
	}
}
