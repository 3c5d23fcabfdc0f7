package handler

import (
	"context"
	"fmt"
	"strings"

	"github.com/damonto/carrier-id/internal/pkg/carrier"
	"github.com/damonto/carrier-id/internal/pkg/resolver"
	"github.com/damonto/carrier-id/internal/pkg/util"
	"github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"
	tu "github.com/mymmrac/telego/telegoutil"
)

// Opener builds a resolver over a fresh snapshot of the radio state.
type Opener func(ctx context.Context) (*resolver.Resolver, error)

type CarrierHandler struct {
	*Handler
	open Opener
}

const CarrierMessageTemplate = `
*\[%s\]* %s %s
MCC/MNC: %s
Network: %s %s
Technology: %s
`

const ProfileMessageTemplate = `Home: %s on %s
National roaming: %s on %s
Chased MNC: %s%s
Speed test: %s
`

func NewCarrierHandler(open Opener) *CarrierHandler {
	return &CarrierHandler{Handler: new(Handler), open: open}
}

func (h *CarrierHandler) Handle() th.Handler {
	return func(ctx *th.Context, update telego.Update) error {
		roles := []carrier.SlotRole{carrier.Primary, carrier.Secondary}
		if _, _, args := tu.ParseCommand(update.Message.Text); len(args) > 0 {
			role, err := carrier.ParseSlotRole(args[0])
			if err != nil {
				return err
			}
			roles = []carrier.SlotRole{role}
		}
		r, err := h.open(ctx)
		if err != nil {
			return err
		}
		var message string
		for _, report := range r.ResolveAll(ctx, roles...) {
			message += h.message(report) + "\n"
		}
		_, err = h.Reply(ctx, update, strings.TrimRight(message, "\n"), nil)
		return err
	}
}

func (h *CarrierHandler) message(report resolver.Report) string {
	identity, network := report.Identity, report.Network
	message := fmt.Sprintf(
		CarrierMessageTemplate,
		util.EscapeText(identity.Role.String()),
		util.If(identity.Active, "🟢", "🔴"),
		util.EscapeText(identity.DisplayName),
		code(identity.MCC, identity.MNC, identity.ISOCountry),
		util.EscapeText(network.DisplayName),
		code(network.MCC, network.MNC, network.ISOCountry),
		util.EscapeText(util.Or(identity.ConnectedTechnology, "unknown")),
	)
	if report.Roaming {
		message += "Roaming: 🌍\n"
	}
	if identity.EID != "" {
		message += fmt.Sprintf("EID: `%s`\n", identity.EID)
	}
	if e := report.Enrichment; e != nil {
		p := e.Profile
		message += fmt.Sprintf(
			ProfileMessageTemplate,
			util.EscapeText(util.Or(p.HomeNetworkName, identity.DisplayName)),
			util.EscapeText(string(p.HomeTechnology)),
			util.EscapeText(util.Or(p.RoamingNetworkName, "none")),
			util.EscapeText(string(p.NationalRoamingTechnology)),
			util.EscapeText(util.Or(e.Decision.ChasedMNC, "none")),
			util.If(e.Decision.Declared, " \\(declared partner\\)", ""),
			util.If(e.Decision.SpeedTestRequired, "required", "not required"),
		)
	}
	return message
}

func code(mcc, mnc, iso string) string {
	return util.EscapeText(fmt.Sprintf("%s/%s (%s)", mcc, mnc, iso))
}
