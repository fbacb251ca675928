package router

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/partdesk-core/server/internal/catalog"
)

func newTestEngine(t *testing.T, pump PumpSoundClassifier) *Engine {
	t.Helper()
	cat, err := catalog.Load()
	require.NoError(t, err)
	return NewEngine(cat, pump)
}

// conversation replays turns the way a stateless client would: every call
// carries the full accumulated history.
type conversation struct {
	engine  *Engine
	history []Turn
}

func (c *conversation) say(message string) Response {
	resp := c.engine.HandleChatTurn(context.Background(), message, c.history)
	c.history = append(c.history,
		Turn{Role: RoleUser, Content: message},
		Turn{Role: RoleAssistant, Content: resp.Reply},
	)
	return resp
}

// stubPump is a canned classifier for tests.
type stubPump struct {
	result string
	called *bool
}

func (s stubPump) Classify(_ context.Context, _ string) string {
	if s.called != nil {
		*s.called = true
	}
	return s.result
}

func TestDrainFlowSlowPath(t *testing.T) {
	c := &conversation{engine: newTestEngine(t, nil)}

	resp := c.say("My dishwasher won't drain")
	assert.Equal(t, replyDrainSpeedQ, resp.Reply)
	assert.Equal(t, IntentTroubleshooting, resp.Meta.Intent)
	assert.Equal(t, SlotDishwasherDrainSpeed, resp.Meta.Awaiting)

	resp = c.say("slowly")
	assert.Equal(t, replySlowDrainAdvice+replyDidItFixSuffix, resp.Reply)
	assert.Equal(t, SlotDidItFixYesNo, resp.Meta.Awaiting)

	resp = c.say("yes, that did it")
	assert.Equal(t, replyFixedClosing, resp.Reply)
	assert.Equal(t, SlotNone, resp.Meta.Awaiting)
}

func TestDrainFlowDisposalPath(t *testing.T) {
	c := &conversation{engine: newTestEngine(t, nil)}

	assert.Equal(t, replyDrainSpeedQ, c.say("my dishwasher is not draining").Reply)
	assert.Equal(t, replyPumpSoundQ, c.say("not at all").Reply)
	assert.Equal(t, replyDrainHoseQ, c.say("it's running").Reply)
	assert.Equal(t, replyNoLoopAdvice+"\n\n"+replySinkConnectionQ, c.say("it runs straight to the drain").Reply)
	assert.Equal(t, replyDisposalFlowQ, c.say("into the garbage disposal").Reply)
	assert.Equal(t, replyDisposalKnockoutQ, c.say("no").Reply)
	assert.Equal(t, replyKnockoutNotRemovedReply+replyDidItFixSuffix, c.say("no").Reply)
	assert.Equal(t, replyFixedClosing, c.say("yes!").Reply)
}

func TestPumpSoundClassifierRefinement(t *testing.T) {
	t.Run("classifier result is used", func(t *testing.T) {
		called := false
		c := &conversation{engine: newTestEngine(t, stubPump{result: PumpSoundHumming, called: &called})}
		c.say("my dishwasher won't drain")
		c.say("not at all")

		resp := c.say("it makes a weird sound")
		assert.True(t, called)
		assert.Equal(t, replyHummingAdvice+replyDidItFixSuffix, resp.Reply)
		assert.Contains(t, resp.Meta.ToolsUsed, "classify_pump_sound")
	})

	t.Run("unknown result falls back to re-asking", func(t *testing.T) {
		c := &conversation{engine: newTestEngine(t, stubPump{result: PumpSoundUnknown})}
		c.say("my dishwasher won't drain")
		c.say("not at all")

		resp := c.say("it makes a weird sound")
		assert.Equal(t, reAsk(replyPumpSoundQ, 0), resp.Reply)
		assert.Equal(t, SlotPumpSound, resp.Meta.Awaiting)
	})

	t.Run("deterministic parse skips the classifier", func(t *testing.T) {
		called := false
		c := &conversation{engine: newTestEngine(t, stubPump{result: PumpSoundSilent, called: &called})}
		c.say("my dishwasher won't drain")
		c.say("not at all")

		resp := c.say("it's humming")
		assert.False(t, called)
		assert.Equal(t, replyHummingAdvice+replyDidItFixSuffix, resp.Reply)
	})
}

func TestReAskRotation(t *testing.T) {
	c := &conversation{engine: newTestEngine(t, nil)}
	c.say("my dishwasher won't drain")
	c.say("not at all")

	first := c.say("banana")
	assert.Equal(t, reAskPrefixes[0]+replyPumpSoundQ, first.Reply)

	second := c.say("banana")
	assert.Equal(t, reAskPrefixes[1]+replyPumpSoundQ, second.Reply)
	assert.Equal(t, SlotPumpSound, second.Meta.Awaiting)
}

func TestInstallFlow(t *testing.T) {
	c := &conversation{engine: newTestEngine(t, nil)}

	resp := c.say("How do I install PS11752778?")
	assert.Equal(t, replyInstallIntro+replyInstallStepQ, resp.Reply)
	assert.Equal(t, IntentInstallationHelp, resp.Meta.Intent)
	assert.Contains(t, resp.Meta.ToolsUsed, "lookup_part")

	assert.Equal(t, replyPanelSteps+"\n\n"+replyPanelFastenerQ, c.say("panel").Reply)
	assert.Equal(t, replyPanelScrewsReply+"\n\n"+replyPanelStillStuckQ, c.say("screws").Reply)
	assert.Equal(t, replyPanelFreedReply+replyInstallNextQ, c.say("no").Reply)
	assert.Equal(t, replyClampsIntro+replyClampTypeQ, c.say("clamps").Reply)
	assert.Equal(t, replySpringClampReply+"\n\n"+replyInstallNextQ, c.say("it's a spring clamp").Reply)
	assert.Equal(t, replyInstallDone, c.say("done").Reply)
}

func TestInstallConnectorFreed(t *testing.T) {
	c := &conversation{engine: newTestEngine(t, nil)}
	c.say("How do I install PS11752778?")

	assert.Equal(t, replyConnectorSteps+"\n\n"+replyLatchSideQ, c.say("connector").Reply)
	assert.Equal(t, replyLatchSideReply+"\n\n"+replyConnectorMovingQ, c.say("left").Reply)

	resp := c.say("it's sliding free")
	assert.Equal(t, replyConnectorFreeReply, resp.Reply)
	assert.Equal(t, SlotNone, resp.Meta.Awaiting)
}

// "clamps" must answer the open install question, not fall through to the
// generic routes and lose the flow.
func TestInstallQuickReplyNotStolen(t *testing.T) {
	c := &conversation{engine: newTestEngine(t, nil)}
	c.say("How do I install PS11752778?")

	resp := c.say("clamps")
	assert.Equal(t, IntentInstallationHelp, resp.Meta.Intent)
	assert.Equal(t, replyClampsIntro+replyClampTypeQ, resp.Reply)
	assert.Equal(t, SlotClampType, resp.Meta.Awaiting)
}

func TestInstallStuckEscalation(t *testing.T) {
	c := &conversation{engine: newTestEngine(t, nil)}
	c.say("How do I install PS11752778?")
	c.say("connector")
	c.say("right")

	resp := c.say("still stuck")
	assert.Equal(t, replyConnectorStuckHandoff, resp.Reply)
}

func TestInstallWithoutPart(t *testing.T) {
	c := &conversation{engine: newTestEngine(t, nil)}
	resp := c.say("I need installation help")
	assert.Equal(t, replyNeedPartForInstall, resp.Reply)
}

func TestCompatTriState(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    string
		sources bool
	}{
		{
			"confirmed fit",
			"Will PS11752778 fit my WDT730PAHZ0?",
			fmt.Sprintf(replyCompatYes, "PS11752778", "WDT730PAHZ0"),
			true,
		},
		{
			"confirmed non-fit",
			"Will PS11752778 fit my WDF310PAAS5?",
			fmt.Sprintf(replyCompatNo, "PS11752778", "WDF310PAAS5"),
			true,
		},
		{
			"pairing not in data stays indeterminate",
			"Will PS11752778 work with my WDT780SAEM1?",
			fmt.Sprintf(replyCompatUnknown, "PS11752778", "WDT780SAEM1"),
			false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &conversation{engine: newTestEngine(t, nil)}
			resp := c.say(tt.message)
			assert.Equal(t, tt.want, resp.Reply)
			assert.Equal(t, IntentCompatibilityCheck, resp.Meta.Intent)
			assert.Contains(t, resp.Meta.ToolsUsed, "check_compatibility")
			if tt.sources {
				assert.NotEmpty(t, resp.Meta.Sources)
			} else {
				assert.Empty(t, resp.Meta.Sources)
			}
		})
	}
}

func TestCompatAsksForMissingPieces(t *testing.T) {
	c := &conversation{engine: newTestEngine(t, nil)}
	assert.Equal(t, replyNeedBothForCompat, c.say("can you check compatibility for me?").Reply)
	assert.Equal(t, replyNeedModelForCompat, c.say("will PS11752778 fit my machine?").Reply)
}

// a refrigerator model mentioned earlier must not answer a dishwasher fit
// check
func TestCompatModelDoesNotCrossAppliances(t *testing.T) {
	c := &conversation{engine: newTestEngine(t, nil)}
	c.say("my fridge model is WRS325SDHZ01 and the ice maker is broken")

	resp := c.say("will PS11752778 fit my dishwasher?")
	assert.Equal(t, replyNeedModelForCompat, resp.Reply)
	assert.Empty(t, resp.Meta.Extracted.ModelNumber)
}

func TestCompatModelBackfillSameAppliance(t *testing.T) {
	c := &conversation{engine: newTestEngine(t, nil)}
	c.say("my fridge model is WRS325SDHZ01 and the ice maker is broken")

	resp := c.say("will PS2071928 fit my model?")
	assert.Equal(t, fmt.Sprintf(replyCompatYes, "PS2071928", "WRS325SDHZ01"), resp.Reply)
}

func TestPartLookupCardAndChoice(t *testing.T) {
	c := &conversation{engine: newTestEngine(t, nil)}

	resp := c.say("PS11752778")
	assert.Equal(t, fmt.Sprintf(replyChoiceQ, "PS11752778", "Dishwasher Drain Pump"), resp.Reply)
	assert.Equal(t, SlotChoice, resp.Meta.Awaiting)
	require.Len(t, resp.Cards, 1)
	assert.Equal(t, "part", resp.Cards[0].Type)
	assert.Equal(t, "PS11752778", resp.Cards[0].Part.PartNumber)

	resp = c.say("installation help please")
	assert.Equal(t, replyInstallIntro+replyInstallStepQ, resp.Reply)
	assert.Equal(t, SlotInstallStep, resp.Meta.Awaiting)
}

func TestPartLookupChoiceCompat(t *testing.T) {
	c := &conversation{engine: newTestEngine(t, nil)}
	c.say("PS11752778")

	resp := c.say("compatibility")
	assert.Equal(t, replyNeedModelForCompat, resp.Reply)
}

func TestPartLookupNotFound(t *testing.T) {
	c := &conversation{engine: newTestEngine(t, nil)}
	resp := c.say("PS99999999")
	assert.Equal(t, fmt.Sprintf(replyPartNotFound, "PS99999999"), resp.Reply)
	assert.Empty(t, resp.Cards)
}

func TestShortPartToken(t *testing.T) {
	c := &conversation{engine: newTestEngine(t, nil)}
	resp := c.say("PS117")
	assert.Equal(t, fmt.Sprintf(replyShortPartToken, "PS117"), resp.Reply)
	assert.True(t, resp.Meta.InDomain)
}

func TestAlternatives(t *testing.T) {
	c := &conversation{engine: newTestEngine(t, nil)}
	resp := c.say("any alternatives for PS11752778?")
	assert.Contains(t, resp.Reply, "PS3406971")
	assert.Contains(t, resp.Reply, "Drain Pump and Motor Assembly")
}

func TestOrderFlow(t *testing.T) {
	c := &conversation{engine: newTestEngine(t, nil)}

	resp := c.say("where is my order?")
	assert.Equal(t, replyOrderBothQ, resp.Reply)
	assert.Equal(t, SlotOrderInfo, resp.Meta.Awaiting)

	resp = c.say("order #12345678, zip 02139")
	assert.Equal(t, replyOrderLocated, resp.Reply)
	assert.Equal(t, "12345678", resp.Meta.Extracted.OrderID)
	assert.Equal(t, "02139", resp.Meta.Extracted.Zip)

	resp = c.say("jane@example.com")
	assert.Contains(t, resp.Reply, "jane@example.com")
	assert.Contains(t, resp.Reply, "TCK-")
	assert.Contains(t, resp.Meta.ToolsUsed, "create_support_ticket")
}

// a five-digit order number must still be asked for the ZIP, never treated as
// supplying both
func TestOrderFiveDigitNumberStillAsksForZip(t *testing.T) {
	c := &conversation{engine: newTestEngine(t, nil)}
	c.say("where is my order?")

	resp := c.say("order #12345")
	assert.Equal(t, replyOrderZipQ, resp.Reply)
	assert.Equal(t, "12345", resp.Meta.Extracted.OrderID)
	assert.Empty(t, resp.Meta.Extracted.Zip)

	resp = c.say("02139")
	assert.Equal(t, replyOrderLocated, resp.Reply)
}

func TestOrderPartialInfo(t *testing.T) {
	c := &conversation{engine: newTestEngine(t, nil)}
	c.say("where is my order?")

	resp := c.say("it's 12345678")
	assert.Equal(t, replyOrderZipQ, resp.Reply)
	assert.Equal(t, SlotOrderInfo, resp.Meta.Awaiting)

	resp = c.say("02139")
	assert.Equal(t, replyOrderLocated, resp.Reply)
}

func TestHumanHandoff(t *testing.T) {
	c := &conversation{engine: newTestEngine(t, nil)}
	resp := c.say("I need to talk to a human")
	assert.Equal(t, replyHumanHandoffAskEmail, resp.Reply)

	resp = c.say("jane@example.com")
	assert.Contains(t, resp.Reply, "TCK-")
}

func TestOutOfDomain(t *testing.T) {
	c := &conversation{engine: newTestEngine(t, nil)}
	for _, msg := range []string{"what's the weather like today?", "tell me a joke"} {
		resp := c.engine.HandleChatTurn(context.Background(), msg, nil)
		assert.Equal(t, replyOutOfDomain, resp.Reply, msg)
		assert.False(t, resp.Meta.InDomain, msg)
	}
}

func TestDomainGateIgnoresHistory(t *testing.T) {
	c := &conversation{engine: newTestEngine(t, nil)}
	c.say("my dishwasher won't drain")
	c.say("slowly")
	c.say("yes")

	resp := c.say("what's the weather like today?")
	assert.Equal(t, replyOutOfDomain, resp.Reply)
	assert.False(t, resp.Meta.InDomain)
}

func TestGreetingAndAck(t *testing.T) {
	c := &conversation{engine: newTestEngine(t, nil)}
	resp := c.engine.HandleChatTurn(context.Background(), "hi", nil)
	assert.Equal(t, replyGreeting, resp.Reply)
	assert.True(t, resp.Meta.InDomain)

	resp = c.engine.HandleChatTurn(context.Background(), "thanks!", nil)
	assert.Equal(t, replyAckClose, resp.Reply)
}

func TestEmptyMessage(t *testing.T) {
	c := &conversation{engine: newTestEngine(t, nil)}
	resp := c.engine.HandleChatTurn(context.Background(), "   ", nil)
	assert.Equal(t, replyEmptyMessage, resp.Reply)
	assert.False(t, resp.Meta.InDomain)
}

func TestFridgeCoolingFlow(t *testing.T) {
	c := &conversation{engine: newTestEngine(t, nil)}

	resp := c.say("my fridge is not cooling")
	assert.Equal(t, replyFridgeFreezerQ, resp.Reply)

	resp = c.say("no, the freezer is fine")
	assert.Equal(t, replyFreezerColdAdvice+replyDidItFixSuffix, resp.Reply)
}

func TestTriageWithGuides(t *testing.T) {
	c := &conversation{engine: newTestEngine(t, nil)}
	resp := c.say("my dishwasher won't start")
	assert.True(t, strings.HasPrefix(resp.Reply, replyDishwasherGenericTriage))
	assert.Contains(t, resp.Reply, "Dishwasher Won't Start")
	assert.Contains(t, resp.Meta.ToolsUsed, "search_guides")
	assert.NotEmpty(t, resp.Meta.Sources)
}

func TestWhichAppliance(t *testing.T) {
	c := &conversation{engine: newTestEngine(t, nil)}
	resp := c.say("it's broken")
	assert.Equal(t, replyWhichAppliance, resp.Reply)
}

func TestIdempotentTurns(t *testing.T) {
	engine := newTestEngine(t, nil)
	history := []Turn{
		{Role: RoleUser, Content: "my dishwasher won't drain"},
		{Role: RoleAssistant, Content: replyDrainSpeedQ},
	}

	first := engine.HandleChatTurn(context.Background(), "slowly", history)
	second := engine.HandleChatTurn(context.Background(), "slowly", history)
	assert.Equal(t, first, second)
}

func TestTicketIDDeterministic(t *testing.T) {
	engine := newTestEngine(t, nil)
	history := []Turn{
		{Role: RoleUser, Content: "I need to talk to a human"},
		{Role: RoleAssistant, Content: replyHumanHandoffAskEmail},
	}

	first := engine.HandleChatTurn(context.Background(), "jane@example.com", history)
	second := engine.HandleChatTurn(context.Background(), "jane@example.com", history)
	assert.Equal(t, first.Reply, second.Reply)
}
