package router

import "strings"

// installQuickReplies are one-word answers an open installation slot should
// consume instead of letting them re-trigger generic routing.
var installQuickReplies = []string{
	"panel", "clamp", "clamps", "connector", "screw", "screws", "clip",
	"clips", "spring", "left", "right", "stuck", "moving", "sliding", "done",
}

// troubleQuickReplies are short answers the troubleshooting slots expect.
var troubleQuickReplies = []string{
	"slow", "slowly", "not at all", "running", "humming", "silent",
	"high loop", "air gap", "straight", "disposal", "tailpiece", "nothing",
	"quiet", "buzzing",
}

// IsClearShift reports whether the message carries a signal strong enough to
// override slot stickiness: an explicit entity, an explicit request, or a
// recognizable new-topic intent.
func IsClearShift(message string) bool {
	if WantsHuman(message) || WantsAlternatives(message) {
		return true
	}
	if ExtractEmail(message) != "" || ExtractOrderID(message) != "" || ExtractZip(message) != "" {
		return true
	}
	if ExtractPartNumber(message) != "" || ExtractModelNumber(message) != "" {
		return true
	}
	return InferIntent(message) != IntentUnknown
}

// ShouldClearSlot decides whether the open slot is abandoned: the user moved
// to a new topic, supplied a strong entity the slot can't consume, switched
// from installing to a breakage report, or flipped to the refrigerator while
// a dishwasher drain flow was open.
func ShouldClearSlot(slot Slot, rawIntent Intent, message string) bool {
	if slot.None() {
		return false
	}

	// strong entities always route to their top-level flow
	if ExtractPartNumber(message) != "" || ExtractModelNumber(message) != "" ||
		ExtractOrderID(message) != "" || ExtractZip(message) != "" || ExtractEmail(message) != "" {
		return true
	}

	switch rawIntent {
	case IntentInstallationHelp, IntentCompatibilityCheck, IntentOrderSupport, IntentPartLookup:
		return true
	case IntentTroubleshooting:
		// "still stuck" answers an install question; it is not a new breakage
		// report even though it trips the troubleshooting keywords
		if installFamily[slot.Kind] && !isQuickReply(message, installQuickReplies) {
			return true
		}
	}

	if dishwasherDrainFamily[slot.Kind] && classifyApplianceText(message) == ApplianceRefrigerator {
		return true
	}

	return false
}

// Resolution is the combined outcome of slot reconstruction, appliance
// pinning, and intent resolution for one turn.
type Resolution struct {
	Intent    Intent
	Slot      Slot
	Appliance Appliance
}

// Resolve runs the stickiness hierarchy: clear the slot if the message is a
// real topic change, otherwise attribute ambiguous follow-ups to the open
// slot's intent so a one-word answer like "clamps" is never stolen by the
// generic part-lookup route.
func Resolve(message string, history []Turn) Resolution {
	slot := InferSlot(history)
	raw := InferIntent(message)
	appliance := InferAppliance(message, history)

	if ShouldClearSlot(slot, raw, message) {
		slot = Slot{Kind: SlotNone}
	}

	intent := raw
	if !slot.None() && !IsClearShift(message) {
		switch {
		case installFamily[slot.Kind]:
			if isQuickReply(message, installQuickReplies) || LooksLikeAck(message) ||
				ParseYesNo(message) != AnswerIndeterminate || raw == IntentUnknown {
				intent = IntentInstallationHelp
			}
		case troubleshootingFamily[slot.Kind]:
			if isQuickReply(message, troubleQuickReplies) || LooksLikeAck(message) ||
				ParseYesNo(message) != AnswerIndeterminate || raw == IntentUnknown {
				intent = IntentTroubleshooting
			}
		case slot.Kind == SlotOrderInfo:
			if LooksLikeAck(message) || raw == IntentUnknown {
				intent = IntentOrderSupport
			}
		}
	}

	// a part and a model arriving together is a compatibility question even
	// when nothing else says so
	if (intent == IntentUnknown || intent == IntentPartLookup) && !WantsAlternatives(message) &&
		ExtractPartNumber(message) != "" && ExtractModelNumber(message) != "" {
		intent = IntentCompatibilityCheck
	}

	return Resolution{Intent: intent, Slot: slot, Appliance: appliance}
}

func isQuickReply(message string, vocab []string) bool {
	n := normalize(message)
	n = strings.Trim(n, ".,!?")
	for _, v := range vocab {
		if n == v || strings.Contains(n, v) {
			return true
		}
	}
	return false
}
