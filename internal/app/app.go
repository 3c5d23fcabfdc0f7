package app

import (
	"context"
	"time"

	"github.com/damonto/carrier-id/internal/app/handler"
	"github.com/damonto/carrier-id/internal/app/middleware"
	"github.com/damonto/carrier-id/internal/app/router"
	"github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"
)

type application struct {
	Bot     *telego.Bot
	handler *th.BotHandler
	updates <-chan telego.Update
	open    handler.Opener
	read    handler.SnapshotReader
}

// NewApp wires the bot. read may be nil when no modem is available, the
// /slots command is then not registered.
func NewApp(ctx context.Context, bot *telego.Bot, open handler.Opener, read handler.SnapshotReader) (*application, error) {
	app := &application{Bot: bot, open: open, read: read}
	var err error
	app.updates, err = bot.UpdatesViaLongPolling(ctx, nil)
	if err != nil {
		return nil, err
	}
	app.handler, err = th.NewBotHandler(bot, app.updates)
	if err != nil {
		return nil, err
	}
	return app, nil
}

func (app *application) Start() error {
	app.registerMiddleware()
	app.registerRouter()
	return app.handler.Start()
}

func (app *application) registerRouter() {
	router.NewRouter(app.handler, app.open, app.read).Register()
}

func (app *application) registerMiddleware() {
	app.handler.Use(th.PanicRecovery())
	app.handler.Use(middleware.Admin())
}

func (app *application) Shutdown() {
	stopCtx, stopCancel := context.WithTimeout(context.Background(), time.Second*30)
	defer stopCancel()

outer:
	for len(app.updates) > 0 {
		select {
		case <-stopCtx.Done():
			break outer
		case <-time.After(100 * time.Millisecond):
		}
	}
	app.handler.StopWithContext(stopCtx)
}
