package handler

import (
	"context"
	"fmt"
	"strings"

	"github.com/damonto/carrier-id/internal/pkg/carrier"
	"github.com/damonto/carrier-id/internal/pkg/modem"
	"github.com/damonto/carrier-id/internal/pkg/util"
	"github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"
)

// SnapshotReader reads the current modem state.
type SnapshotReader func(ctx context.Context) (*modem.Snapshot, error)

type SIMSlotHandler struct {
	*Handler
	read SnapshotReader
}

const SIMSlotMessageTemplate = `
*\[Slot %d\]* %s%s
Operator: %s
ICCID: %s
`

func NewSIMSlotHandler(read SnapshotReader) *SIMSlotHandler {
	return &SIMSlotHandler{Handler: new(Handler), read: read}
}

func (h *SIMSlotHandler) Handle() th.Handler {
	return func(ctx *th.Context, update telego.Update) error {
		snapshot, err := h.read(ctx)
		if err != nil {
			return err
		}
		var message string
		for _, slot := range snapshot.Slots {
			message += h.message(slot, slot.Slot == snapshot.PrimarySlot) + "\n"
		}
		if message == "" {
			message = "No SIM card found\\."
		}
		_, err = h.Reply(ctx, update, strings.TrimRight(message, "\n"), nil)
		return err
	}
}

func (h *SIMSlotHandler) message(slot modem.SlotState, primary bool) string {
	mcc, mnc := carrier.SplitDigits(slot.OperatorIdentifier)
	return fmt.Sprintf(
		SIMSlotMessageTemplate,
		slot.Slot,
		util.If(slot.Active, "🟢", "🔴"),
		util.If(primary, " primary", ""),
		util.EscapeText(fmt.Sprintf("%s %s/%s", util.Or(slot.OperatorName, "unknown"), mcc, mnc)),
		util.EscapeText(slot.Identifier),
	)
}
