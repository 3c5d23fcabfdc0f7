package carrier

import (
	"fmt"
	"log/slog"
)

var (
	Slot1ID = SlotID(1)
	Slot2ID = SlotID(2)
)

// SlotID returns the platform identifier of the n-th SIM slot.
func SlotID(n int) string {
	return fmt.Sprintf("00000001%08d", n)
}

// ConfigPair names the operator and carrier config files of one slot.
type ConfigPair struct {
	Operator string
	Carrier  string
}

// Layout names the config files of every slot.
type Layout struct {
	Legacy ConfigPair
	Slot1  ConfigPair
	Slot2  ConfigPair
}

var DefaultLayout = Layout{
	Legacy: ConfigPair{Operator: "com.apple.operator.plist", Carrier: "com.apple.carrier.plist"},
	Slot1:  ConfigPair{Operator: "com.apple.operator_1.plist", Carrier: "com.apple.carrier_1.plist"},
	Slot2:  ConfigPair{Operator: "com.apple.operator_2.plist", Carrier: "com.apple.carrier_2.plist"},
}

// Selection is the outcome of slot selection.
type Selection struct {
	Role   SlotRole
	Pair   ConfigPair
	SlotID string
}

// SlotSelector decides which config pair and slot identifier describe the
// requested SIM.
type SlotSelector struct {
	Layout    Layout
	MultiSlot bool
}

func (s SlotSelector) Select(role SlotRole, blobs BlobSource) Selection {
	if role == AutoDetect {
		role = s.detect(blobs)
	}
	sel := Selection{Role: role, SlotID: Slot1ID}
	switch role {
	case Primary:
		sel.Pair = s.Layout.Slot1
		if !s.MultiSlot {
			sel.Pair = s.Layout.Legacy
		}
	case Secondary:
		sel.Pair = s.Layout.Slot2
		sel.SlotID = Slot2ID
	default:
		sel.Pair = s.Layout.Legacy
	}
	return sel
}

// detect compares the link targets of the legacy pair with each slot pair.
// The legacy pair points at the files of whichever SIM carries data.
func (s SlotSelector) detect(blobs BlobSource) SlotRole {
	if !s.MultiSlot {
		return Primary
	}
	legacy := s.targets(blobs, s.Layout.Legacy)
	switch {
	case sameTargets(legacy, s.targets(blobs, s.Layout.Slot2)):
		return Secondary
	case sameTargets(legacy, s.targets(blobs, s.Layout.Slot1)):
		return Primary
	}
	slog.Debug("unable to match the current SIM to a slot", "operator", legacy.Operator, "carrier", legacy.Carrier)
	return AutoDetect
}

func (s SlotSelector) targets(blobs BlobSource, pair ConfigPair) ConfigPair {
	return ConfigPair{
		Operator: blobs.Blob(pair.Operator).Target,
		Carrier:  blobs.Blob(pair.Carrier).Target,
	}
}

func sameTargets(a, b ConfigPair) bool {
	if a.Operator == "" || a.Carrier == "" {
		return false
	}
	return a == b
}
