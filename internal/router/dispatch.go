package router

import (
	"context"
	"fmt"
	"strings"

	"github.com/partdesk-core/server/internal/catalog"
	"github.com/partdesk-core/server/internal/metrics"
	logx "github.com/partdesk-core/server/pkg/logger"
)

// Closed result set for the pump sound refinement. Anything else coming back
// from a classifier is treated as PumpSoundUnknown.
const (
	PumpSoundRunning = "running"
	PumpSoundHumming = "humming"
	PumpSoundSilent  = "silent"
	PumpSoundUnknown = "unknown"
)

// PumpSoundClassifier refines a free-text description of a pump noise into
// the closed set running/humming/silent/unknown. Implementations must bound
// their own latency and return PumpSoundUnknown on any failure; the router
// never retries and never blocks beyond the classifier's own deadline.
type PumpSoundClassifier interface {
	Classify(ctx context.Context, description string) string
}

// Engine routes one chat turn. It holds no conversation state: everything it
// needs is recomputed from the message and the submitted history.
type Engine struct {
	catalog *catalog.Catalog
	pump    PumpSoundClassifier
}

// NewEngine builds the routing engine. pump may be nil, in which case the
// pump-sound question falls back to re-asking instead of classifying.
func NewEngine(c *catalog.Catalog, pump PumpSoundClassifier) *Engine {
	return &Engine{catalog: c, pump: pump}
}

// EmptyMessageResponse is what an empty or whitespace-only message yields.
// The HTTP layer uses it to reject such requests before routing.
func EmptyMessageResponse() Response {
	return Response{
		Reply: replyEmptyMessage,
		Meta:  Meta{InDomain: false, Intent: IntentUnknown, ToolsUsed: []string{}, Sources: []string{}},
		Cards: []Card{},
	}
}

// ServerErrorResponse is the generic apology for an uncaught internal failure.
// The HTTP layer pairs it with a server-error status.
func ServerErrorResponse() Response {
	return Response{
		Reply: replyServerError,
		Meta:  Meta{InDomain: true, Intent: IntentUnknown, ToolsUsed: []string{}, Sources: []string{}},
		Cards: []Card{},
	}
}

// turnState accumulates everything one turn produces besides the reply text.
type turnState struct {
	message string
	history []Turn
	res     Resolution
	ext     Extracted
	repeats int

	inDomain bool
	tools    []string
	sources  []string
	cards    []Card
}

func (st *turnState) tool(name string) {
	for _, t := range st.tools {
		if t == name {
			return
		}
	}
	st.tools = append(st.tools, name)
}

// intentHandlers is the top-level dispatch table. A turn only reaches it when
// no awaiting slot consumed the message.
var intentHandlers = map[Intent]func(*Engine, context.Context, *turnState) string{
	IntentPartLookup:         (*Engine).handlePartLookup,
	IntentCompatibilityCheck: (*Engine).handleCompat,
	IntentInstallationHelp:   (*Engine).handleInstall,
	IntentTroubleshooting:    (*Engine).handleTroubleshooting,
	IntentOrderSupport:       (*Engine).handleOrder,
	IntentUnknown:            (*Engine).handleUnknown,
}

// HandleChatTurn produces the assistant reply for one message. The same
// message and history always produce the same reply. Panics propagate to the
// caller; the HTTP layer converts them into a server-error response.
func (e *Engine) HandleChatTurn(ctx context.Context, message string, history []Turn) Response {
	if strings.TrimSpace(message) == "" {
		return EmptyMessageResponse()
	}
	if len(message) > maxMessageLen {
		message = message[:maxMessageLen]
	}

	st := &turnState{
		message:  message,
		history:  history,
		res:      Resolve(message, history),
		repeats:  countRepeats(message, history),
		inDomain: true,
	}
	st.ext = e.extractEntities(message, history, st.res.Appliance)

	var reply string
	if !st.res.Slot.None() {
		reply = e.handleSlot(ctx, st)
	} else {
		reply = intentHandlers[st.res.Intent](e, ctx, st)
	}

	metrics.ChatTurns.WithLabelValues(string(st.res.Intent)).Inc()

	if st.tools == nil {
		st.tools = []string{}
	}
	if st.sources == nil {
		st.sources = []string{}
	}
	if st.cards == nil {
		st.cards = []Card{}
	}

	awaiting := slotOfReply(reply)
	logx.Debug().
		Str("intent", string(st.res.Intent)).
		Str("appliance", string(st.res.Appliance)).
		Str("slot_in", string(st.res.Slot.Kind)).
		Str("awaiting", string(awaiting)).
		Strs("tools", st.tools).
		Bool("in_domain", st.inDomain).
		Msg("chat turn routed")

	return Response{
		Reply: reply,
		Meta: Meta{
			InDomain:  st.inDomain,
			Intent:    st.res.Intent,
			Awaiting:  awaiting,
			Extracted: st.ext,
			ToolsUsed: st.tools,
			Sources:   st.sources,
		},
		Cards: st.cards,
	}
}

// handleSlot consumes the message as the answer to the question the previous
// assistant reply asked. Unparseable answers re-ask the same question with a
// varied prefix so the slot stays recoverable.
func (e *Engine) handleSlot(ctx context.Context, st *turnState) string {
	msg := st.message
	switch st.res.Slot.Kind {

	case SlotDishwasherDrainSpeed:
		switch parseDrainSpeed(msg) {
		case "slow":
			return replySlowDrainAdvice + replyDidItFixSuffix
		case "none":
			return replyPumpSoundQ
		}
		return reAsk(replyDrainSpeedQ, st.repeats)

	case SlotPumpSound:
		sound := parsePumpSound(msg)
		if sound == "" && e.pump != nil {
			st.tool("classify_pump_sound")
			switch out := e.pump.Classify(ctx, msg); out {
			case PumpSoundRunning, PumpSoundHumming, PumpSoundSilent:
				sound = out
			}
		}
		switch sound {
		case PumpSoundHumming:
			return replyHummingAdvice + replyDidItFixSuffix
		case PumpSoundSilent:
			return replySilentPumpReply
		case PumpSoundRunning:
			return replyDrainHoseQ
		}
		return reAsk(replyPumpSoundQ, st.repeats)

	case SlotDrainHoseSetup:
		switch parseDrainHoseSetup(msg) {
		case "high", "airgap":
			return replyHighLoopAdvice + "\n\n" + replySinkConnectionQ
		case "straight":
			return replyNoLoopAdvice + "\n\n" + replySinkConnectionQ
		}
		return reAsk(replyDrainHoseQ, st.repeats)

	case SlotSinkConnectionType:
		switch parseSinkConnectionType(msg) {
		case "disposal":
			return replyDisposalFlowQ
		case "tailpiece":
			return replyTailpieceGunkQ
		}
		return reAsk(replySinkConnectionQ, st.repeats)

	case SlotDisposalFlowYesNo:
		switch ParseYesNo(msg) {
		case AnswerYes:
			return replyDisposalFlowOKReply + replyDidItFixSuffix
		case AnswerNo:
			return replyDisposalKnockoutQ
		}
		return reAsk(replyDisposalFlowQ, st.repeats)

	case SlotDisposalKnockoutYesNo:
		switch ParseYesNo(msg) {
		case AnswerYes:
			return replyKnockoutRemovedReply + replyDidItFixSuffix
		case AnswerNo:
			return replyKnockoutNotRemovedReply + replyDidItFixSuffix
		}
		return reAsk(replyDisposalKnockoutQ, st.repeats)

	case SlotTailpieceGunkYesNo:
		switch ParseYesNo(msg) {
		case AnswerYes:
			return replyTailpieceFoundReply + replyDidItFixSuffix
		case AnswerNo:
			return replyTailpieceCleanReply + replyDidItFixSuffix
		}
		return reAsk(replyTailpieceGunkQ, st.repeats)

	case SlotDidItFixYesNo:
		switch ParseYesNo(msg) {
		case AnswerYes:
			return replyFixedClosing
		case AnswerNo:
			return replyNotFixedHandoff
		}
		if LooksLikeAck(msg) {
			return replyFixedClosing
		}
		return reAsk(replyDidItFixQ, st.repeats)

	case SlotFridgeFreezerWarming:
		switch ParseYesNo(msg) {
		case AnswerYes:
			return replyFreezerWarmToo
		case AnswerNo:
			return replyFreezerColdAdvice + replyDidItFixSuffix
		}
		return reAsk(replyFridgeFreezerQ, st.repeats)

	case SlotInstallStep:
		switch parseInstallStep(msg) {
		case "panel":
			return replyPanelSteps + "\n\n" + replyPanelFastenerQ
		case "clamps":
			return replyClampsIntro + replyClampTypeQ
		case "connector":
			return replyConnectorSteps + "\n\n" + replyLatchSideQ
		case "done":
			return replyInstallDone
		}
		if LooksLikeAck(msg) {
			return replyInstallDone
		}
		return reAsk(replyInstallStepQ, st.repeats)

	case SlotClampType:
		switch parseClampType(msg) {
		case "spring":
			return replySpringClampReply + "\n\n" + replyInstallNextQ
		case "screw":
			return replyScrewClampReply + "\n\n" + replyInstallNextQ
		}
		return reAsk(replyClampTypeQ, st.repeats)

	case SlotPanelFastener:
		switch parsePanelFastener(msg) {
		case "screws":
			return replyPanelScrewsReply + "\n\n" + replyPanelStillStuckQ
		case "clips":
			return replyPanelClipsReply + "\n\n" + replyPanelStillStuckQ
		}
		return reAsk(replyPanelFastenerQ, st.repeats)

	case SlotPanelStillWontDrop:
		switch ParseYesNo(msg) {
		case AnswerYes:
			return replyPanelStuckHandoff
		case AnswerNo:
			return replyPanelFreedReply + replyInstallNextQ
		}
		return reAsk(replyPanelStillStuckQ, st.repeats)

	case SlotConnectorLatchSide:
		if parseLatchSide(msg) != "" {
			return replyLatchSideReply + "\n\n" + replyConnectorMovingQ
		}
		return reAsk(replyLatchSideQ, st.repeats)

	case SlotConnectorMovingStuck:
		switch parseMovingOrStuck(msg) {
		case "moving":
			return replyConnectorFreeReply
		case "stuck":
			return replyConnectorStuckHandoff
		}
		return reAsk(replyConnectorMovingQ, st.repeats)

	case SlotChoice:
		switch parseChoice(msg) {
		case "installation":
			return e.handleInstall(ctx, st)
		case "compatibility":
			return e.handleCompat(ctx, st)
		}
		if p, ok := e.catalog.LookupPart(st.ext.PartNumber); ok {
			return reAsk(fmt.Sprintf(replyChoiceQ, p.PartNumber, p.Name), st.repeats)
		}
		return replyNeedPartNumber

	case SlotOrderInfo:
		return e.handleOrderSlot(st)
	}

	// unreachable as long as slotRules and this switch stay in sync
	return e.handleUnknown(ctx, st)
}

// handleOrderSlot only sees turns where the message carried neither an order
// number nor a ZIP; a strong entity clears the slot upstream and lands in
// handleOrder instead.
func (e *Engine) handleOrderSlot(st *turnState) string {
	id, zip := st.ext.OrderID, st.ext.Zip
	switch {
	case id != "" && zip != "":
		return replyOrderLocated
	case st.res.Slot.Ask == OrderAskZip && zip == "":
		return reAsk(replyOrderZipQ, st.repeats)
	case st.res.Slot.Ask == OrderAskID && id == "":
		return reAsk(replyOrderIDQ, st.repeats)
	case id == "" && zip == "":
		return reAsk(replyOrderBothQ, st.repeats)
	case id == "":
		return replyOrderIDQ
	default:
		return replyOrderZipQ
	}
}

func (e *Engine) handleTroubleshooting(ctx context.Context, st *turnState) string {
	n := normalize(st.message)
	switch st.res.Appliance {
	case ApplianceDishwasher:
		if strings.Contains(n, "drain") {
			return replyDrainSpeedQ
		}
		return e.withGuides(st, replyDishwasherGenericTriage, string(ApplianceDishwasher))
	case ApplianceRefrigerator:
		if containsAny(n, []string{"cool", "cold", "warm", "temperature"}) {
			return replyFridgeFreezerQ
		}
		return e.withGuides(st, replyFridgeGenericTriage, string(ApplianceRefrigerator))
	default:
		return replyWhichAppliance
	}
}

// withGuides appends matching repair guides to a triage reply. No matches
// leaves the triage reply untouched.
func (e *Engine) withGuides(st *turnState, reply, appliance string) string {
	st.tool("search_guides")
	guides, sources := e.catalog.SearchGuides(catalog.GuideQuery{
		Query:     st.message,
		Appliance: appliance,
		Mode:      "repair",
	})
	if len(guides) == 0 {
		return reply
	}
	st.sources = append(st.sources, sources...)
	var b strings.Builder
	b.WriteString(reply)
	b.WriteString("\n\nThese guides might help:")
	for _, g := range guides {
		b.WriteString("\n• ")
		b.WriteString(g.Title)
		b.WriteString(" — ")
		b.WriteString(g.URL)
	}
	return b.String()
}

func (e *Engine) handleInstall(ctx context.Context, st *turnState) string {
	if st.ext.PartNumber != "" {
		st.tool("lookup_part")
		p, ok := e.catalog.LookupPart(st.ext.PartNumber)
		if !ok {
			return fmt.Sprintf(replyPartNotFound, st.ext.PartNumber)
		}
		st.sources = append(st.sources, p.URL)
		st.tool("search_guides")
		_, guideSources := e.catalog.SearchGuides(catalog.GuideQuery{
			Query:     p.Name,
			Appliance: p.Appliance,
			Mode:      "install",
		})
		st.sources = append(st.sources, guideSources...)
		return replyInstallIntro + replyInstallStepQ
	}
	if tok := ExtractShortPartToken(st.message); tok != "" {
		return fmt.Sprintf(replyShortPartToken, tok)
	}
	return replyNeedPartForInstall
}

func (e *Engine) handleCompat(ctx context.Context, st *turnState) string {
	pn, model := st.ext.PartNumber, st.ext.ModelNumber
	switch {
	case pn != "" && model != "":
		st.tool("check_compatibility")
		res := e.catalog.CheckCompatibility(pn, model)
		st.sources = append(st.sources, res.Sources...)
		switch res.Verdict {
		case catalog.CompatYes:
			return fmt.Sprintf(replyCompatYes, pn, model)
		case catalog.CompatNo:
			return fmt.Sprintf(replyCompatNo, pn, model)
		default:
			return fmt.Sprintf(replyCompatUnknown, pn, model)
		}
	case pn != "":
		return replyNeedModelForCompat
	case model != "":
		return replyNeedPartForCompat
	default:
		return replyNeedBothForCompat
	}
}

func (e *Engine) handleOrder(ctx context.Context, st *turnState) string {
	email := ExtractEmail(st.message)
	if WantsHuman(st.message) && email == "" {
		return replyHumanHandoffAskEmail
	}
	if email != "" {
		return e.openTicket(st, email)
	}

	id, zip := st.ext.OrderID, st.ext.Zip
	switch {
	case id != "" && zip != "":
		return replyOrderLocated
	case id != "":
		return replyOrderZipQ
	case zip != "":
		return replyOrderIDQ
	default:
		return replyOrderBothQ
	}
}

func (e *Engine) openTicket(st *turnState, email string) string {
	st.tool("create_support_ticket")
	ticket := e.catalog.CreateSupportTicket(catalog.TicketRequest{
		Email:       email,
		Summary:     ticketSummary(st.history),
		ModelNumber: st.ext.ModelNumber,
		PartNumber:  st.ext.PartNumber,
	})
	metrics.Tickets.Inc()
	return fmt.Sprintf(replyTicketCreated, ticket.ID, email)
}

// handleUnknown is the fallback route: greetings, stray emails answering a
// handoff prompt, half-typed part numbers, bare model numbers, and finally
// the domain gate. The gate judges the current message alone so history never
// drags an off-topic question in-domain.
func (e *Engine) handleUnknown(ctx context.Context, st *turnState) string {
	if email := ExtractEmail(st.message); email != "" && hasAssistantTurn(st.history) {
		return e.openTicket(st, email)
	}
	if LooksLikeSmallTalk(st.message) {
		return replyGreeting
	}
	if LooksLikeAck(st.message) {
		return replyAckClose
	}
	// a bare yes/no with no question on the table gets the menu, not a refusal
	if ParseYesNo(st.message) != AnswerIndeterminate {
		return replyGreeting
	}
	if tok := ExtractShortPartToken(st.message); tok != "" {
		return fmt.Sprintf(replyShortPartToken, tok)
	}
	if model := ExtractModelNumber(st.message); model != "" {
		if st.ext.PartNumber != "" {
			st.res.Intent = IntentCompatibilityCheck
			return e.handleCompat(ctx, st)
		}
		return fmt.Sprintf(replyModelOnly, model)
	}
	if a := classifyApplianceText(st.message); a != ApplianceUnknown {
		return e.handleTroubleshooting(ctx, st)
	}
	if !inDomainMessage(st.message) {
		st.inDomain = false
		metrics.OutOfDomain.Inc()
		return replyOutOfDomain
	}
	return replyGreeting
}

func (e *Engine) handlePartLookup(ctx context.Context, st *turnState) string {
	pn := st.ext.PartNumber
	if WantsAlternatives(st.message) && pn != "" {
		st.tool("lookup_part")
		alts := e.catalog.Alternatives(pn)
		if len(alts) == 0 {
			return fmt.Sprintf(replyNoAlternatives, pn)
		}
		names := make([]string, 0, len(alts))
		for _, a := range alts {
			names = append(names, fmt.Sprintf("%s (%s)", a.PartNumber, a.Name))
			st.sources = append(st.sources, a.URL)
		}
		return fmt.Sprintf(replyAlternativesIntro, pn, strings.Join(names, ", "))
	}

	if pn == "" {
		pn = ExtractPartNumber(st.message)
	}
	if pn != "" {
		st.tool("lookup_part")
		p, ok := e.catalog.LookupPart(pn)
		if !ok {
			return fmt.Sprintf(replyPartNotFound, pn)
		}
		st.sources = append(st.sources, p.URL)
		st.cards = append(st.cards, Card{Type: "part", Part: &p})
		return fmt.Sprintf(replyChoiceQ, p.PartNumber, p.Name)
	}
	if tok := ExtractShortPartToken(st.message); tok != "" {
		return fmt.Sprintf(replyShortPartToken, tok)
	}
	return replyNeedPartNumber
}

// ---- entity backfill and turn bookkeeping ----

// extractEntities re-derives entities for the turn: the current message wins,
// then user turns are scanned newest-first. Models are skipped in turns that
// clearly talk about the other appliance, so a refrigerator model mentioned
// last week never answers a dishwasher fit check. Assistant turns are never
// scanned; replies quote example part numbers.
func (e *Engine) extractEntities(message string, history []Turn, appliance Appliance) Extracted {
	ext := Extracted{
		PartNumber:  ExtractPartNumber(message),
		ModelNumber: ExtractModelNumber(message),
		OrderID:     ExtractOrderID(message),
		Zip:         ExtractZip(message),
		Email:       ExtractEmail(message),
	}

	for i := len(history) - 1; i >= 0; i-- {
		t := history[i]
		if t.Role != RoleUser {
			continue
		}
		if ext.PartNumber == "" {
			ext.PartNumber = ExtractPartNumber(t.Content)
		}
		if ext.ModelNumber == "" && !modelFromOtherAppliance(t.Content, appliance) {
			ext.ModelNumber = ExtractModelNumber(t.Content)
		}
		if ext.OrderID == "" {
			ext.OrderID = ExtractOrderID(t.Content)
		}
		if ext.Zip == "" {
			ext.Zip = ExtractZip(t.Content)
		}
		if ext.Email == "" {
			ext.Email = ExtractEmail(t.Content)
		}
	}
	return ext
}

func modelFromOtherAppliance(turnText string, pinned Appliance) bool {
	if pinned == ApplianceUnknown {
		return false
	}
	a := classifyApplianceText(turnText)
	return a != ApplianceUnknown && a != pinned
}

// countRepeats counts how many earlier user turns repeat the current message,
// ignoring a trailing copy some clients append before calling. It drives the
// re-ask phrasing rotation.
func countRepeats(message string, history []Turn) int {
	n := normalize(message)
	count := 0
	for _, t := range history {
		if t.Role == RoleUser && normalize(t.Content) == n {
			count++
		}
	}
	if len(history) > 0 {
		last := history[len(history)-1]
		if last.Role == RoleUser && normalize(last.Content) == n {
			count--
		}
	}
	if count < 0 {
		count = 0
	}
	return count
}

// ticketSummary pulls the most recent substantive user turn so the specialist
// sees the actual problem, not the email the user just sent.
func ticketSummary(history []Turn) string {
	for i := len(history) - 1; i >= 0; i-- {
		t := history[i]
		if t.Role != RoleUser {
			continue
		}
		if ExtractEmail(t.Content) != "" || LooksLikeAck(t.Content) ||
			ParseYesNo(t.Content) != AnswerIndeterminate {
			continue
		}
		if strings.TrimSpace(t.Content) != "" {
			return t.Content
		}
	}
	return "support request from chat"
}

func hasAssistantTurn(history []Turn) bool {
	for _, t := range history {
		if t.Role == RoleAssistant {
			return true
		}
	}
	return false
}

// slotOfReply runs the produced reply back through the reconstruction table,
// so meta.awaiting always agrees with what the next turn will infer.
func slotOfReply(reply string) SlotKind {
	lowered := strings.ToLower(reply)
	for _, rule := range slotRules {
		if matchesAll(lowered, rule.contains) {
			return rule.slot.Kind
		}
	}
	return SlotNone
}

// inDomainMessage is the domain gate, judged on the current message only.
func inDomainMessage(message string) bool {
	n := normalize(message)
	if classifyApplianceText(message) != ApplianceUnknown {
		return true
	}
	if ExtractPartNumber(message) != "" || ExtractShortPartToken(message) != "" ||
		ExtractModelNumber(message) != "" || ExtractOrderID(message) != "" ||
		ExtractZip(message) != "" || ExtractEmail(message) != "" {
		return true
	}
	if containsAny(n, installKeywords) || containsAny(n, compatKeywords) ||
		containsAny(n, troubleKeywords) {
		return true
	}
	if WantsReturnRefundShipping(n) || WantsHuman(n) || WantsAlternatives(n) {
		return true
	}
	return containsAny(n, []string{"part", "appliance", "partselect"})
}

// ---- deterministic answer parsers ----

func parseDrainSpeed(message string) string {
	n := normalize(message)
	switch {
	case containsAny(n, []string{"not at all", "not draining", "no drain", "won't drain", "wont drain", "nothing", "completely"}):
		return "none"
	case strings.Contains(n, "slow"):
		return "slow"
	}
	return ""
}

var (
	hummingWords = map[string]bool{"hum": true, "hums": true, "humming": true, "buzz": true, "buzzing": true}
	silentWords  = map[string]bool{"silent": true, "quiet": true, "dead": true, "nothing": true}
	runningWords = map[string]bool{"running": true, "runs": true, "normal": true}
)

func parsePumpSound(message string) string {
	n := normalize(message)
	switch {
	case hasWord(n, hummingWords):
		return PumpSoundHumming
	case hasWord(n, silentWords) || containsAny(n, []string{"no sound", "not making any"}):
		return PumpSoundSilent
	case hasWord(n, runningWords) || containsAny(n, []string{"sounds fine", "i hear it"}):
		return PumpSoundRunning
	}
	return ""
}

func parseDrainHoseSetup(message string) string {
	n := normalize(message)
	switch {
	case containsAny(n, []string{"air gap", "airgap"}):
		return "airgap"
	case containsAny(n, []string{"no loop", "straight", "directly", "runs right"}):
		return "straight"
	case containsAny(n, []string{"high loop", "loop", "high"}):
		return "high"
	}
	return ""
}

func parseSinkConnectionType(message string) string {
	n := normalize(message)
	switch {
	case containsAny(n, []string{"disposal", "garbage"}):
		return "disposal"
	case containsAny(n, []string{"tailpiece", "tail piece", "sink drain", "drain pipe", "directly"}):
		return "tailpiece"
	}
	return ""
}

var (
	panelWords     = map[string]bool{"panel": true, "kickplate": true}
	clampWords     = map[string]bool{"clamp": true, "clamps": true, "hose": true}
	connectorWords = map[string]bool{"connector": true, "wires": true, "wiring": true, "harness": true, "plug": true}
)

func parseInstallStep(message string) string {
	n := normalize(message)
	switch {
	case hasWord(n, map[string]bool{"done": true, "finished": true}):
		return "done"
	case hasWord(n, panelWords):
		return "panel"
	case hasWord(n, clampWords):
		return "clamps"
	case hasWord(n, connectorWords):
		return "connector"
	}
	return ""
}

func parseClampType(message string) string {
	n := normalize(message)
	switch {
	case strings.Contains(n, "spring"):
		return "spring"
	case containsAny(n, []string{"screw", "worm"}):
		return "screw"
	}
	return ""
}

func parsePanelFastener(message string) string {
	n := normalize(message)
	switch {
	case strings.Contains(n, "screw"):
		return "screws"
	case strings.Contains(n, "clip"):
		return "clips"
	}
	return ""
}

func parseLatchSide(message string) string {
	n := normalize(message)
	switch {
	case hasWord(n, map[string]bool{"left": true}):
		return "left"
	case hasWord(n, map[string]bool{"right": true}):
		return "right"
	}
	return ""
}

func parseMovingOrStuck(message string) string {
	n := normalize(message)
	// negated movement reads as stuck, so stuck-ish phrasing is checked first
	switch {
	case containsAny(n, []string{"stuck", "won't move", "wont move", "not moving", "won't budge", "wont budge"}):
		return "stuck"
	case containsAny(n, []string{"moving", "sliding", "free", "loose", "came apart", "it's off", "its off"}):
		return "moving"
	}
	return ""
}

func parseChoice(message string) string {
	n := normalize(message)
	switch {
	case strings.Contains(n, "install"):
		return "installation"
	case containsAny(n, []string{"compat", "fit"}):
		return "compatibility"
	}
	return ""
}
