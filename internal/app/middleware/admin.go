package middleware

import (
	"errors"
	"log/slog"
	"slices"

	"github.com/damonto/carrier-id/internal/pkg/config"
	"github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"
)

var ErrPermissionDenied = errors.New("permission denied")

func Admin() th.Handler {
	return func(ctx *th.Context, update telego.Update) error {
		if update.Message == nil || update.Message.From == nil {
			return ctx.Next(update)
		}
		if !slices.Contains(config.C.AdminId.ToInt64(), update.Message.From.ID) {
			slog.Warn("rejected message from non-admin user", "userId", update.Message.From.ID)
			return ErrPermissionDenied
		}
		return ctx.Next(update)
	}
}
