package router

import (
	"github.com/damonto/carrier-id/internal/app/handler"
	th "github.com/mymmrac/telego/telegohandler"
)

type router struct {
	*th.BotHandler
	open handler.Opener
	read handler.SnapshotReader
}

func NewRouter(bot *th.BotHandler, open handler.Opener, read handler.SnapshotReader) *router {
	return &router{BotHandler: bot, open: open, read: read}
}

func (r *router) Register() {
	r.Handle(handler.NewStartHandler().Handle(), th.CommandEqual("start"))
	r.Handle(handler.NewCarrierHandler(r.open).Handle(), th.CommandEqual("carrier"))
	if r.read != nil {
		r.Handle(handler.NewSIMSlotHandler(r.read).Handle(), th.CommandEqual("slots"))
	}
}
