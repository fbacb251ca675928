package router

import "github.com/partdesk-core/server/internal/catalog"

// Role identifies who produced a turn.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Turn is one message of the client-owned conversation history. The engine
// never stores turns; the full history arrives with every request.
type Turn struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// Appliance is the closed set of appliances the assistant supports.
type Appliance string

const (
	ApplianceDishwasher   Appliance = "dishwasher"
	ApplianceRefrigerator Appliance = "refrigerator"
	ApplianceUnknown      Appliance = "unknown"
)

// Intent is the closed set of conversation intents.
type Intent string

const (
	IntentPartLookup         Intent = "part_lookup"
	IntentCompatibilityCheck Intent = "compatibility_check"
	IntentInstallationHelp   Intent = "installation_help"
	IntentTroubleshooting    Intent = "troubleshooting"
	IntentOrderSupport       Intent = "order_support"
	IntentUnknown            Intent = "unknown"
)

// SlotKind tags the single narrow question the assistant is implicitly
// waiting on. It is reconstructed from the last assistant reply, never
// transmitted by the client.
type SlotKind string

const (
	SlotNone                  SlotKind = ""
	SlotPumpSound             SlotKind = "pump_sound"
	SlotDishwasherDrainSpeed  SlotKind = "dishwasher_drain_speed"
	SlotDrainHoseSetup        SlotKind = "drain_hose_setup"
	SlotSinkConnectionType    SlotKind = "sink_connection_type"
	SlotDisposalFlowYesNo     SlotKind = "disposal_flow_yesno"
	SlotDisposalKnockoutYesNo SlotKind = "disposal_knockout_yesno"
	SlotTailpieceGunkYesNo    SlotKind = "tailpiece_gunk_yesno"
	SlotDidItFixYesNo         SlotKind = "did_it_fix_yesno"
	SlotChoice                SlotKind = "choice"
	SlotInstallStep           SlotKind = "install_step"
	SlotClampType             SlotKind = "clamp_type"
	SlotPanelFastener         SlotKind = "panel_fastener"
	SlotConnectorLatchSide    SlotKind = "connector_latch_side"
	SlotPanelStillWontDrop    SlotKind = "panel_still_wont_drop_yesno"
	SlotConnectorMovingStuck  SlotKind = "connector_moving_or_stuck"
	SlotOrderInfo             SlotKind = "order_info"
	SlotFridgeFreezerWarming  SlotKind = "fridge_freezer_warming_yesno"
)

// OrderAsk narrows an order_info slot to what is still missing.
type OrderAsk string

const (
	OrderAskID   OrderAsk = "order_id"
	OrderAskZip  OrderAsk = "zip"
	OrderAskBoth OrderAsk = "both"
)

// Slot is a tagged variant: Kind plus the payload relevant for that kind.
// At most one slot is active per turn.
type Slot struct {
	Kind    SlotKind
	Options []string // populated for SlotChoice
	Ask     OrderAsk // populated for SlotOrderInfo
}

// None reports whether no slot is active.
func (s Slot) None() bool {
	return s.Kind == SlotNone
}

var installFamily = map[SlotKind]bool{
	SlotInstallStep:          true,
	SlotClampType:            true,
	SlotPanelFastener:        true,
	SlotConnectorLatchSide:   true,
	SlotPanelStillWontDrop:   true,
	SlotConnectorMovingStuck: true,
}

var troubleshootingFamily = map[SlotKind]bool{
	SlotDishwasherDrainSpeed:  true,
	SlotPumpSound:             true,
	SlotDrainHoseSetup:        true,
	SlotSinkConnectionType:    true,
	SlotDisposalFlowYesNo:     true,
	SlotDisposalKnockoutYesNo: true,
	SlotTailpieceGunkYesNo:    true,
	SlotDidItFixYesNo:         true,
	SlotFridgeFreezerWarming:  true,
}

// dishwasherDrainFamily is the subset of troubleshooting slots that only make
// sense while the pinned appliance is a dishwasher.
var dishwasherDrainFamily = map[SlotKind]bool{
	SlotDishwasherDrainSpeed:  true,
	SlotPumpSound:             true,
	SlotDrainHoseSetup:        true,
	SlotSinkConnectionType:    true,
	SlotDisposalFlowYesNo:     true,
	SlotDisposalKnockoutYesNo: true,
	SlotTailpieceGunkYesNo:    true,
}

// Extracted carries the entities re-derived for the current turn. Empty
// string means the entity was absent from the message and history.
type Extracted struct {
	PartNumber  string `json:"partNumber,omitempty"`
	ModelNumber string `json:"modelNumber,omitempty"`
	OrderID     string `json:"orderId,omitempty"`
	Zip         string `json:"zip,omitempty"`
	Email       string `json:"email,omitempty"`
}

// Meta describes how the reply was produced.
type Meta struct {
	InDomain  bool      `json:"inDomain"`
	Intent    Intent    `json:"intent"`
	Awaiting  SlotKind  `json:"awaiting,omitempty"`
	Extracted Extracted `json:"extracted"`
	ToolsUsed []string  `json:"toolsUsed"`
	Sources   []string  `json:"sources"`
}

// Card is a structured payload for UI rendering. Only the part-lookup flow
// populates cards, and at most one per response.
type Card struct {
	Type string        `json:"type"`
	Part *catalog.Part `json:"part,omitempty"`
}

// Response is the full result of one chat turn.
type Response struct {
	Reply string `json:"reply"`
	Meta  Meta   `json:"meta"`
	Cards []Card `json:"cards"`
}
