package catalog

import (
	"embed"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/xeipuuv/gojsonschema"

	errx "github.com/partdesk-core/server/internal/core/error"
	logx "github.com/partdesk-core/server/pkg/logger"
)

//go:embed data/*.json schemas/*.json
var dataFS embed.FS

// Part is one catalog entry. Alternatives lists part numbers that serve the
// same role.
type Part struct {
	PartNumber   string   `json:"partNumber"`
	Name         string   `json:"name"`
	Appliance    string   `json:"appliance"`
	Category     string   `json:"category"`
	Description  string   `json:"description"`
	Price        float64  `json:"price"`
	InStock      bool     `json:"inStock"`
	URL          string   `json:"url"`
	Alternatives []string `json:"alternatives,omitempty"`
}

// CompatVerdict is a tri-state compatibility result. "Not in our data" is a
// distinct outcome and must never collapse into CompatNo.
type CompatVerdict int

const (
	CompatUnknown CompatVerdict = iota
	CompatYes
	CompatNo
)

// CompatResult pairs a verdict with attribution sources.
type CompatResult struct {
	Verdict CompatVerdict
	Sources []string
}

type compatEntry struct {
	PartNumber         string   `json:"partNumber"`
	CompatibleModels   []string `json:"compatibleModels"`
	IncompatibleModels []string `json:"incompatibleModels"`
	Source             string   `json:"source"`
}

// Guide is a repair or installation guide reference.
type Guide struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	Appliance string   `json:"appliance"`
	Mode      string   `json:"mode"`
	URL       string   `json:"url"`
	Summary   string   `json:"summary"`
	Keywords  []string `json:"keywords"`
}

// GuideQuery filters guide search. Empty fields match everything.
type GuideQuery struct {
	Query     string
	Appliance string
	Mode      string
	TopK      int
}

// TicketRequest describes a demo support ticket.
type TicketRequest struct {
	Email       string
	Summary     string
	ModelNumber string
	PartNumber  string
}

// Ticket is the created support ticket.
type Ticket struct {
	ID string
}

// Catalog is the fixed small dataset the router's tools run against. All
// lookups are synchronous and in-memory; callers must tolerate not-found.
type Catalog struct {
	parts  map[string]Part
	compat map[string]compatEntry
	guides []Guide
}

// ticketNamespace makes demo ticket ids a pure function of their request, so
// replaying an identical turn yields an identical reply.
var ticketNamespace = uuid.MustParse("7b7f4b3e-5a52-4f9d-9f33-0d2f6c1f8f10")

// Load parses and validates the embedded datasets. Each file is checked
// against its JSON schema before unmarshalling so a malformed dataset fails
// at startup, not mid-conversation.
func Load() (*Catalog, error) {
	var parts []Part
	if err := loadValidated("data/parts.json", "schemas/parts.schema.json", &parts); err != nil {
		return nil, errx.WrapCatalog(err)
	}

	var compat []compatEntry
	if err := loadValidated("data/compatibility.json", "schemas/compatibility.schema.json", &compat); err != nil {
		return nil, errx.WrapCatalog(err)
	}

	var guides []Guide
	if err := loadValidated("data/guides.json", "schemas/guides.schema.json", &guides); err != nil {
		return nil, errx.WrapCatalog(err)
	}

	c := &Catalog{
		parts:  make(map[string]Part, len(parts)),
		compat: make(map[string]compatEntry, len(compat)),
		guides: guides,
	}
	for _, p := range parts {
		c.parts[strings.ToUpper(p.PartNumber)] = p
	}
	for _, e := range compat {
		c.compat[strings.ToUpper(e.PartNumber)] = e
	}

	logx.Debug().
		Int("parts", len(parts)).
		Int("compat_entries", len(compat)).
		Int("guides", len(guides)).
		Msg("catalog loaded")
	return c, nil
}

func loadValidated(dataPath, schemaPath string, out any) error {
	raw, err := dataFS.ReadFile(dataPath)
	if err != nil {
		return fmt.Errorf("read %s: %w", dataPath, err)
	}
	schema, err := dataFS.ReadFile(schemaPath)
	if err != nil {
		return fmt.Errorf("read %s: %w", schemaPath, err)
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(schema),
		gojsonschema.NewBytesLoader(raw),
	)
	if err != nil {
		return fmt.Errorf("validate %s: %w", dataPath, err)
	}
	if !result.Valid() {
		msgs := make([]string, 0, len(result.Errors()))
		for _, e := range result.Errors() {
			msgs = append(msgs, e.String())
		}
		return fmt.Errorf("%s failed schema validation: %s", dataPath, strings.Join(msgs, "; "))
	}

	return json.Unmarshal(raw, out)
}

// LookupPart finds a part by its PartSelect number, case-insensitively.
func (c *Catalog) LookupPart(partNumber string) (Part, bool) {
	p, ok := c.parts[strings.ToUpper(strings.TrimSpace(partNumber))]
	return p, ok
}

// CheckCompatibility reports whether a part fits a model. A part or model
// absent from the compatibility data yields CompatUnknown.
func (c *Catalog) CheckCompatibility(partNumber, model string) CompatResult {
	entry, ok := c.compat[strings.ToUpper(strings.TrimSpace(partNumber))]
	if !ok {
		return CompatResult{Verdict: CompatUnknown}
	}

	m := strings.ToUpper(strings.TrimSpace(model))
	for _, cm := range entry.CompatibleModels {
		if strings.ToUpper(cm) == m {
			return CompatResult{Verdict: CompatYes, Sources: []string{entry.Source}}
		}
	}
	for _, im := range entry.IncompatibleModels {
		if strings.ToUpper(im) == m {
			return CompatResult{Verdict: CompatNo, Sources: []string{entry.Source}}
		}
	}
	return CompatResult{Verdict: CompatUnknown}
}

// Alternatives returns the catalog entries listed as substitutes for a part.
func (c *Catalog) Alternatives(partNumber string) []Part {
	p, ok := c.LookupPart(partNumber)
	if !ok {
		return nil
	}
	var alts []Part
	for _, alt := range p.Alternatives {
		if ap, ok := c.LookupPart(alt); ok {
			alts = append(alts, ap)
		}
	}
	return alts
}

// SearchGuides scores guides by keyword overlap with the query, filtered by
// appliance and mode when provided. Returns at most TopK guides plus their
// URLs as attribution sources.
func (c *Catalog) SearchGuides(q GuideQuery) ([]Guide, []string) {
	if q.TopK <= 0 {
		q.TopK = 3
	}
	words := strings.Fields(strings.ToLower(q.Query))

	type scored struct {
		guide Guide
		score int
	}
	var hits []scored
	for _, g := range c.guides {
		if q.Appliance != "" && g.Appliance != q.Appliance {
			continue
		}
		if q.Mode != "" && g.Mode != q.Mode {
			continue
		}
		score := 0
		for _, kw := range g.Keywords {
			for _, w := range words {
				if w == kw {
					score++
				}
			}
		}
		if score > 0 {
			hits = append(hits, scored{guide: g, score: score})
		}
	}

	sort.SliceStable(hits, func(i, j int) bool { return hits[i].score > hits[j].score })
	if len(hits) > q.TopK {
		hits = hits[:q.TopK]
	}

	guides := make([]Guide, 0, len(hits))
	sources := make([]string, 0, len(hits))
	for _, h := range hits {
		guides = append(guides, h.guide)
		sources = append(sources, h.guide.URL)
	}
	return guides, sources
}

// CreateSupportTicket opens a demo ticket. The id is derived from the request
// contents, so identical requests resolve to the same ticket.
func (c *Catalog) CreateSupportTicket(req TicketRequest) Ticket {
	seed := strings.Join([]string{req.Email, req.Summary, req.ModelNumber, req.PartNumber}, "|")
	id := uuid.NewSHA1(ticketNamespace, []byte(seed))
	ticket := Ticket{ID: "TCK-" + strings.ToUpper(id.String()[:8])}

	logx.Info().
		Str("ticket_id", ticket.ID).
		Str("email", req.Email).
		Msg("support ticket created")
	return ticket
}
