package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadCatalog(t *testing.T) *Catalog {
	t.Helper()
	c, err := Load()
	require.NoError(t, err)
	return c
}

func TestLoadValidatesAgainstSchemas(t *testing.T) {
	c := loadCatalog(t)
	assert.NotEmpty(t, c.parts)
	assert.NotEmpty(t, c.compat)
	assert.NotEmpty(t, c.guides)
}

func TestLookupPart(t *testing.T) {
	c := loadCatalog(t)

	p, ok := c.LookupPart("PS11752778")
	require.True(t, ok)
	assert.Equal(t, "Dishwasher Drain Pump", p.Name)
	assert.Equal(t, "dishwasher", p.Appliance)

	_, ok = c.LookupPart("ps11752778")
	assert.True(t, ok, "lookup is case-insensitive")

	_, ok = c.LookupPart("PS99999999")
	assert.False(t, ok)
}

func TestCheckCompatibilityTriState(t *testing.T) {
	c := loadCatalog(t)

	tests := []struct {
		name    string
		part    string
		model   string
		want    CompatVerdict
		sources bool
	}{
		{"listed compatible", "PS11752778", "WDT730PAHZ0", CompatYes, true},
		{"listed incompatible", "PS11752778", "WDF310PAAS5", CompatNo, true},
		{"model absent from entry", "PS11752778", "WDT780SAEM1", CompatUnknown, false},
		{"part absent from data", "PS972325", "WDT730PAHZ0", CompatUnknown, false},
		{"case-insensitive model", "PS11752778", "wdt730pahz0", CompatYes, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := c.CheckCompatibility(tt.part, tt.model)
			assert.Equal(t, tt.want, res.Verdict)
			if tt.sources {
				assert.NotEmpty(t, res.Sources)
			} else {
				assert.Empty(t, res.Sources)
			}
		})
	}
}

func TestAlternatives(t *testing.T) {
	c := loadCatalog(t)

	alts := c.Alternatives("PS11752778")
	require.Len(t, alts, 1)
	assert.Equal(t, "PS3406971", alts[0].PartNumber)

	assert.Empty(t, c.Alternatives("PS972325"))
	assert.Empty(t, c.Alternatives("PS99999999"))
}

func TestSearchGuides(t *testing.T) {
	c := loadCatalog(t)

	t.Run("keyword match with appliance filter", func(t *testing.T) {
		guides, sources := c.SearchGuides(GuideQuery{
			Query:     "dishwasher not draining water",
			Appliance: "dishwasher",
			Mode:      "repair",
		})
		require.NotEmpty(t, guides)
		assert.Equal(t, "guide-dw-drain", guides[0].ID)
		assert.Len(t, sources, len(guides))
	})

	t.Run("appliance filter excludes other guides", func(t *testing.T) {
		guides, _ := c.SearchGuides(GuideQuery{
			Query:     "water drain pump",
			Appliance: "refrigerator",
			Mode:      "install",
		})
		assert.Empty(t, guides)
	})

	t.Run("no keyword overlap", func(t *testing.T) {
		guides, sources := c.SearchGuides(GuideQuery{Query: "banana smoothie"})
		assert.Empty(t, guides)
		assert.Empty(t, sources)
	})
}

func TestCreateSupportTicketDeterministic(t *testing.T) {
	c := loadCatalog(t)

	req := TicketRequest{
		Email:       "jane@example.com",
		Summary:     "dishwasher still not draining",
		ModelNumber: "WDT730PAHZ0",
		PartNumber:  "PS11752778",
	}

	first := c.CreateSupportTicket(req)
	second := c.CreateSupportTicket(req)
	assert.Equal(t, first.ID, second.ID)
	assert.Regexp(t, `^TCK-[0-9A-F]{8}$`, first.ID)

	other := c.CreateSupportTicket(TicketRequest{Email: "other@example.com"})
	assert.NotEqual(t, first.ID, other.ID)
}
