package router

// applianceVoteWindow bounds how far back the majority vote looks so a stale
// appliance mention from much earlier cannot outvote the active topic.
const applianceVoteWindow = 8

// dishwasher signals are more specific than refrigerator ones, so the
// dishwasher set is always checked first.
var dishwasherSignals = []string{
	"dishwasher", "dish washer", "rinse aid", "spray arm", "dish rack",
	"upper rack", "lower rack", "silverware basket", "dishes",
}

var refrigeratorSignals = []string{
	"refrigerator", "fridge", "freezer", "ice maker", "icemaker", "crisper",
	"defrost", "compressor", "evaporator fan", "door bin",
}

// classifyApplianceText classifies a single message in isolation.
func classifyApplianceText(text string) Appliance {
	n := normalize(text)
	if containsAny(n, dishwasherSignals) {
		return ApplianceDishwasher
	}
	if containsAny(n, refrigeratorSignals) {
		return ApplianceRefrigerator
	}
	return ApplianceUnknown
}

// InferAppliance resolves the appliance implied by the current message,
// falling back to a majority vote over the recent user turns. A strict
// majority is required; ties stay unknown. This keeps a short reply like
// "yes" or "humming" from dropping the appliance context the user
// established earlier in the conversation.
func InferAppliance(message string, history []Turn) Appliance {
	if a := classifyApplianceText(message); a != ApplianceUnknown {
		return a
	}

	var recent []Turn
	for i := len(history) - 1; i >= 0 && len(recent) < applianceVoteWindow; i-- {
		if history[i].Role == RoleUser {
			recent = append(recent, history[i])
		}
	}

	votes := map[Appliance]int{}
	for _, t := range recent {
		if a := classifyApplianceText(t.Content); a != ApplianceUnknown {
			votes[a]++
		}
	}

	switch {
	case votes[ApplianceDishwasher] > votes[ApplianceRefrigerator]:
		return ApplianceDishwasher
	case votes[ApplianceRefrigerator] > votes[ApplianceDishwasher]:
		return ApplianceRefrigerator
	default:
		return ApplianceUnknown
	}
}
