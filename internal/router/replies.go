package router

// Every question the assistant can ask lives here, next to the phrase
// signature in slots.go that recovers it on the following turn. Editing a
// question without its signature orphans the slot; slots_test.go round-trips
// each template to catch that.

const (
	replyGreeting = "Hi! I'm the PartDesk assistant. I can look up appliance parts, " +
		"check compatibility with your model, walk you through installations, " +
		"troubleshoot dishwasher and refrigerator problems, and help with orders. " +
		"What can I do for you?"

	replyOutOfDomain = "I can only help with appliance parts — looking up parts, checking " +
		"compatibility, installation steps, dishwasher or refrigerator troubleshooting, " +
		"and order support. Could you tell me about your appliance or part?"

	replyServerError = "Sorry, something went wrong on our end. Please try sending that again."

	replyEmptyMessage = "Please provide a message so I can help."

	replyAckClose = "Anytime! If you need anything else — parts, fit checks, installs, or " +
		"troubleshooting — just ask."

	replyModelOnly = "Got it — model %s. What do you need for it: a part lookup, a fit check " +
		"(send the PS number of the part), or troubleshooting help?"
)

// troubleshooting questions
const (
	replyDrainSpeedQ = "Sorry your dishwasher isn't draining — let's narrow it down. " +
		"Is it draining slowly, or not draining at all?"

	replyPumpSoundQ = "When the cycle reaches the drain stage, listen near the bottom of the door: " +
		"is the drain pump running, humming, or completely silent?"

	replyDrainHoseQ = "Since the pump runs, the blockage is likely downstream. " +
		"Does the drain hose rise in a high loop under the counter, pass through an air gap " +
		"on the sink, or run straight to the drain?"

	replySinkConnectionQ = "Where does the drain hose connect under the sink — " +
		"into a garbage disposal, or directly onto the sink drain tailpiece?"

	replyDisposalFlowQ = "Run the garbage disposal for a few seconds with water on. " +
		"Does water flow through it freely — yes or no?"

	replyDisposalKnockoutQ = "If the disposal was installed recently, its knockout plug may never " +
		"have been removed, which blocks the dishwasher line completely. " +
		"Was the knockout plug removed — yes or no?"

	replyTailpieceGunkQ = "Loosen the tailpiece fitting and check inside it for gunk or buildup — " +
		"that joint clogs more often than the hose itself. Did you find gunk in the tailpiece — yes or no?"

	replyDidItFixSuffix = "\n\nGive that a try. Did that fix the problem — yes or no?"

	replyDidItFixQ = "Did that fix the problem — yes or no?"

	replyFridgeFreezerQ = "Let's narrow down the cooling issue. " +
		"Is the freezer section warming up as well — yes or no?"
)

// troubleshooting advice
const (
	replySlowDrainAdvice = "Slow draining usually means a clogged filter assembly. Pull the lower rack, " +
		"twist out the cylindrical filter at the tub bottom, and rinse both the filter and the sump " +
		"area under warm water. Clear any food debris from the chopper screen while you're there."

	replyHummingAdvice = "A humming pump is powered but jammed — usually a shard of glass or a fruit pit " +
		"in the impeller. Cut power to the dishwasher, remove the filter, and check the impeller opening " +
		"at the sump bottom for debris. Rotate the impeller gently to make sure it spins free."

	replySilentPumpReply = "A silent pump during the drain stage usually means the pump motor has failed " +
		"or isn't getting power. Replacing the drain pump is a common fix — if you share your model number " +
		"I can find the right pump for your dishwasher, or I can connect you with a specialist."

	replyHighLoopAdvice = "Good — with the routing confirmed, the usual culprit is a clog where the hose " +
		"meets the sink plumbing."

	replyNoLoopAdvice = "A hose without a high loop or air gap lets sink water backflow into the tub. " +
		"Secure the hose in a high loop just under the countertop before anything else."

	replyDisposalFlowOKReply = "Since the disposal flows freely, detach the dishwasher hose from the " +
		"disposal inlet and check that inlet nipple for buildup — it chokes off even when the disposal " +
		"itself drains fine."

	replyKnockoutRemovedReply = "With the knockout out, the remaining suspect is debris packed in the " +
		"disposal inlet. Detach the hose and clear the inlet nipple with a screwdriver."

	replyKnockoutNotRemovedReply = "That's very likely the whole problem. Unplug the disposal, detach the " +
		"dishwasher hose, and punch out the knockout plug with a hammer and dowel — remember to fish the " +
		"plug out of the disposal afterwards."

	replyTailpieceFoundReply = "Clear the gunk out of the tailpiece and refit the hose."

	replyTailpieceCleanReply = "With the tailpiece clean, blow out or flush the drain hose itself — " +
		"disconnect it at both ends and run water through it to push the clog out."

	replyFixedClosing = "Excellent! Glad it's draining again. If you ever need a part for it, " +
		"just send me the PartSelect number or your model number."

	replyNotFixedHandoff = "Sorry to hear that — this one may need hands-on help. I can connect you with " +
		"a parts specialist: share your email address and I'll open a support ticket, or tell me your " +
		"model number and I'll look up likely replacement parts."

	replyFreezerWarmToo = "When both compartments warm up together, the sealed system or compressor is " +
		"usually involved — that's beyond a DIY fix. Check that the condenser coils underneath are clean " +
		"and the fridge has breathing room; if it doesn't recover in a few hours, share your email and " +
		"I'll open a ticket with a specialist."

	replyFreezerColdAdvice = "A cold freezer with a warm fresh-food section points at the evaporator fan " +
		"or the air damper between compartments. Listen for the fan inside the freezer — if it's silent " +
		"or scraping, it likely needs replacement. Also make sure vents between sections aren't blocked " +
		"by food."

	replyDishwasherGenericTriage = "Happy to troubleshoot your dishwasher. Tell me a bit more about the " +
		"symptom — for example, \"it won't drain\", \"it won't start\", or \"dishes come out dirty\"."

	replyFridgeGenericTriage = "Happy to troubleshoot your refrigerator. Tell me a bit more about the " +
		"symptom — for example, \"it's not cooling\" or \"the ice maker stopped working\"."

	replyWhichAppliance = "I can troubleshoot dishwashers and refrigerators. Which appliance is acting " +
		"up, and what is it doing? For example: \"my dishwasher won't drain\"."
)

// installation flow
const (
	replyInstallStepQ = "Which step are you on: panel, clamps, or connector?"

	replyInstallNextQ = "Which step are you on next: panel, clamps, or connector? Say \"done\" if you're all set."

	replyInstallDone = "Great — enjoy the fixed appliance. Ping me if you need another part or a fit check."

	replyInstallIntro = "I can walk you through that installation. "

	replyClampsIntro = "The drain hose is held by clamps at both ends. "

	replyNeedPartForInstall = "I can help with installation — which part are you installing? " +
		"Send me the PartSelect number (it starts with PS) and I'll pull up the steps."

	replyPanelSteps = "To remove the access panel: unplug the unit first, then take out the fasteners " +
		"along the bottom edge of the panel."

	replyPanelFastenerQ = "Are the panel fasteners screws or clips?"

	replyPanelScrewsReply = "Use a 1/4\" nut driver or Phillips screwdriver on each screw, support the " +
		"panel as the last one comes out, then tilt the top edge toward you and lift it off."

	replyPanelClipsReply = "Press each clip inward with a flat screwdriver while pulling the panel edge " +
		"toward you — start at one corner and work across."

	replyPanelStillStuckQ = "Is the panel still stuck — yes or no?"

	replyPanelFreedReply = "Great, panel's off. "

	replyPanelStuckHandoff = "There may be a hidden fastener behind the kick plate or sound barrier. " +
		"Check there first; if it still won't budge, I can connect you with a specialist — just share " +
		"your email address."

	replyClampTypeQ = "Is it a spring clamp or a screw-type clamp?"

	replySpringClampReply = "Squeeze the spring clamp's ears together with pliers and slide it back along " +
		"the hose, then twist the hose free. Keep a towel down — there's always residual water."

	replyScrewClampReply = "Back the screw clamp off with a 5/16\" nut driver until the band is loose, " +
		"slide it down the hose, and twist the hose off the fitting."

	replyConnectorSteps = "For the connector: press the locking latch and pull the halves apart — never " +
		"pull on the wires themselves."

	replyLatchSideQ = "Is the locking latch on the left or the right side of the connector?"

	replyLatchSideReply = "Press firmly on that side with your thumb while rocking the connector — it " +
		"should release with a click."

	replyConnectorMovingQ = "Is the connector sliding free now, or still stuck?"

	replyConnectorFreeReply = "That's the hard part done. Reverse the steps with the new part and you're " +
		"finished — give me a shout if anything doesn't line up."

	replyConnectorStuckHandoff = "Stubborn connectors sometimes have a second tab on the underside — " +
		"check there. If it still won't release, share your email address and I'll get a specialist on it."
)

// order support flow
const (
	replyOrderBothQ = "I can check on that. Could you share your order number and the billing ZIP code?"

	replyOrderIDQ = "Thanks — could you share your order number?"

	replyOrderZipQ = "Thanks — and the billing ZIP code for the order?"

	replyOrderLocated = "Thanks, I've located your order. A specialist handles returns, refunds, and " +
		"shipping changes — share your email address and I'll open a support ticket with your order " +
		"details attached."

	replyHumanHandoffAskEmail = "Of course — I'll get you to a person. Share your email address and I'll " +
		"open a support ticket so a specialist can reach out."
)

// part lookup / compatibility
const (
	replyShortPartToken = "That looks like the start of a PartSelect number — could you send the full " +
		"number? It's PS followed by more digits, like PS11752778. You sent: %s"

	replyPartNotFound = "I couldn't find %s in our catalog. Double-check the number, or tell me your " +
		"appliance model and the part name and I'll search for it."

	replyNeedPartNumber = "Sure — which part? Send me the PartSelect number (it starts with PS) or a " +
		"link to the part page."

	replyAlternativesIntro = "Here are alternatives that serve the same role as %s: %s. " +
		"Tell me your model number and I can check which ones fit."

	replyNoAlternatives = "I don't have alternatives on file for %s. A specialist may know of " +
		"cross-compatible parts — share your email and I'll open a ticket."

	replyCompatYes = "Good news — %s is a confirmed fit for model %s."

	replyCompatNo = "That doesn't look compatible: %s is not listed for model %s. Want me to look for " +
		"the right part instead? Tell me what the part does."

	replyCompatUnknown = "I can't confirm compatibility between %s and model %s — that pairing isn't in " +
		"our data. I'd rather not guess: a specialist can verify it, or double-check the model tag " +
		"(usually inside the door or frame)."

	replyNeedModelForCompat = "I can check that — what's the model number of your appliance? " +
		"It's on a tag inside the door frame or on the side wall."

	replyNeedPartForCompat = "I can check compatibility — which part? Send me the PartSelect number " +
		"(it starts with PS)."

	replyNeedBothForCompat = "I can check compatibility — send me the PartSelect number of the part " +
		"(it starts with PS) and your appliance model number."

	replyChoiceQ = "I found part %s (%s). Do you want installation help or a compatibility check for it?"

	replyTicketCreated = "Done — ticket %s is open and a specialist will email you at %s shortly. " +
		"Anything else I can help with in the meantime?"
)

// reAskPrefixes vary the phrasing when the user repeats the same unparseable
// answer, so the re-ask doesn't read like a broken record. The question text
// itself is repeated verbatim to keep its slot recoverable.
var reAskPrefixes = []string{
	"Sorry, I didn't catch that. ",
	"No rush — let's try that once more. ",
	"Let me ask one more time. ",
}

// reAsk re-asks the same question verbatim, with a phrasing variant chosen by
// the repeat count derived from history.
func reAsk(question string, repeats int) string {
	return reAskPrefixes[repeats%len(reAskPrefixes)] + question
}
