package router

import "strings"

// slotRule recovers an awaiting slot from the text of the previous assistant
// reply: every substring in contains must be present (lowercased). Rules are
// evaluated top to bottom and the first match wins, so more specific
// signatures sit above looser ones.
type slotRule struct {
	contains []string
	slot     Slot
}

// slotRules is the reconstruction table. Each entry is paired with the reply
// template in replies.go that it recovers; advice replies that end with the
// did-that-fix suffix are caught by the first rule regardless of what advice
// preceded the question.
var slotRules = []slotRule{
	{[]string{"did that fix"}, Slot{Kind: SlotDidItFixYesNo}},
	{[]string{"pump", "humming", "silent"}, Slot{Kind: SlotPumpSound}},
	{[]string{"draining slowly", "not draining at all"}, Slot{Kind: SlotDishwasherDrainSpeed}},
	{[]string{"garbage disposal", "tailpiece"}, Slot{Kind: SlotSinkConnectionType}},
	{[]string{"high loop", "air gap"}, Slot{Kind: SlotDrainHoseSetup}},
	{[]string{"knockout plug"}, Slot{Kind: SlotDisposalKnockoutYesNo}},
	{[]string{"disposal", "flow", "freely"}, Slot{Kind: SlotDisposalFlowYesNo}},
	{[]string{"tailpiece", "gunk"}, Slot{Kind: SlotTailpieceGunkYesNo}},
	{[]string{"freezer", "warming"}, Slot{Kind: SlotFridgeFreezerWarming}},
	{[]string{"panel still stuck"}, Slot{Kind: SlotPanelStillWontDrop}},
	{[]string{"screws or clips"}, Slot{Kind: SlotPanelFastener}},
	{[]string{"connector sliding"}, Slot{Kind: SlotConnectorMovingStuck}},
	{[]string{"latch", "left", "right"}, Slot{Kind: SlotConnectorLatchSide}},
	{[]string{"spring clamp", "screw-type"}, Slot{Kind: SlotClampType}},
	{[]string{"which step", "panel", "clamps", "connector"}, Slot{Kind: SlotInstallStep}},
	{[]string{"installation help or a compatibility check"}, Slot{Kind: SlotChoice, Options: []string{"installation", "compatibility"}}},
	{[]string{"order number", "zip"}, Slot{Kind: SlotOrderInfo, Ask: OrderAskBoth}},
	{[]string{"order number"}, Slot{Kind: SlotOrderInfo, Ask: OrderAskID}},
	{[]string{"zip"}, Slot{Kind: SlotOrderInfo, Ask: OrderAskZip}},
}

// InferSlot reconstructs the awaiting slot from the most recent assistant
// turn. No assistant turn, or no matching signature, means no slot. This is
// the system's only notion of session state: it is a pure function of the
// submitted history and is recomputed on every call.
func InferSlot(history []Turn) Slot {
	var last string
	for i := len(history) - 1; i >= 0; i-- {
		if history[i].Role == RoleAssistant {
			last = history[i].Content
			break
		}
	}
	if last == "" {
		return Slot{Kind: SlotNone}
	}

	lowered := strings.ToLower(last)
	for _, rule := range slotRules {
		if matchesAll(lowered, rule.contains) {
			return rule.slot
		}
	}
	return Slot{Kind: SlotNone}
}

func matchesAll(lowered string, parts []string) bool {
	for _, p := range parts {
		if !strings.Contains(lowered, p) {
			return false
		}
	}
	return true
}
