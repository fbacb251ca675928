package router

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyApplianceText(t *testing.T) {
	assert.Equal(t, ApplianceDishwasher, classifyApplianceText("my dishwasher won't drain"))
	assert.Equal(t, ApplianceRefrigerator, classifyApplianceText("the fridge is warm"))
	assert.Equal(t, ApplianceRefrigerator, classifyApplianceText("ice maker stopped"))
	assert.Equal(t, ApplianceUnknown, classifyApplianceText("yes"))
}

func TestInferAppliance(t *testing.T) {
	history := []Turn{
		{Role: RoleUser, Content: "my dishwasher won't drain"},
		{Role: RoleAssistant, Content: replyDrainSpeedQ},
		{Role: RoleUser, Content: "not at all"},
		{Role: RoleAssistant, Content: replyPumpSoundQ},
	}

	t.Run("short replies keep the pinned appliance", func(t *testing.T) {
		assert.Equal(t, ApplianceDishwasher, InferAppliance("humming", history))
		assert.Equal(t, ApplianceDishwasher, InferAppliance("yes", history))
	})

	t.Run("message signal overrides the vote", func(t *testing.T) {
		assert.Equal(t, ApplianceRefrigerator, InferAppliance("actually my fridge is warm too", history))
	})

	t.Run("tie stays unknown", func(t *testing.T) {
		tied := []Turn{
			{Role: RoleUser, Content: "my dishwasher is fine"},
			{Role: RoleUser, Content: "my fridge is fine"},
		}
		assert.Equal(t, ApplianceUnknown, InferAppliance("ok", tied))
	})

	t.Run("no history no signal", func(t *testing.T) {
		assert.Equal(t, ApplianceUnknown, InferAppliance("help", nil))
	})

	t.Run("vote window ignores stale mentions", func(t *testing.T) {
		var long []Turn
		long = append(long, Turn{Role: RoleUser, Content: "my dishwasher is old"})
		for i := 0; i < applianceVoteWindow; i++ {
			long = append(long, Turn{Role: RoleUser, Content: "my fridge is warm"})
		}
		assert.Equal(t, ApplianceRefrigerator, InferAppliance("ok", long))
	})
}
