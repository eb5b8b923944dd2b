// Package assets implements the Asset Loader: the out-of-scope resource
// loading collaborator (spec.md §1) is consumed through the narrow
// ResourceSource interface; this package turns the three byte streams it
// returns into typed, in-memory views per spec.md §4.1 and §6.
package assets

// PaletteEntry is one element of the B-side runtime palette resource
// (spec.md §6 "Runtime palette"): {name, id}.
type PaletteEntry struct {
	Name string `json:"name"`
	ID   int32  `json:"id"`
}

// Palette preserves the declaration order of the runtime palette
// resource; order matters because later consumers build a B-ID index
// from it and because the outbound item-entry table mirrors this order.
type Palette struct {
	Entries []PaletteEntry

	byID   map[int32]string
	byName map[string]int32
}

// ByID returns the B-identifier registered for a given B-ID, and
// whether it was found.
func (p *Palette) ByID(id int32) (string, bool) {
	name, ok := p.byID[id]
	return name, ok
}

// ByName returns the B-ID registered for a given B-identifier, and
// whether it was found.
func (p *Palette) ByName(name string) (int32, bool) {
	id, ok := p.byName[name]
	return id, ok
}

// Len reports the number of palette entries.
func (p *Palette) Len() int { return len(p.Entries) }

// NewPalette builds an indexed Palette from entries already in
// declaration order. Exposed for callers (and tests) that construct a
// palette directly instead of through a Loader.
func NewPalette(entries []PaletteEntry) *Palette {
	p := &Palette{Entries: entries}
	p.index()
	return p
}

// index builds the byID/byName maps. Called once when the Palette is
// built, by LoadPalette or NewPalette.
func (p *Palette) index() {
	p.byID = make(map[int32]string, len(p.Entries))
	p.byName = make(map[string]int32, len(p.Entries))
	for _, e := range p.Entries {
		p.byID[e.ID] = e.Name
		p.byName[e.Name] = e.ID
	}
}

// MappingEntryJSON is the JSON shape of one value in the items-mapping
// resource (spec.md §6 "Items mapping").
type MappingEntryJSON struct {
	BedrockID   int32  `json:"bedrock_id"`
	BedrockData int16  `json:"bedrock_data"`
	IsBlock     bool   `json:"is_block"`
	StackSize   *int   `json:"stack_size,omitempty"`
	ToolType    string `json:"tool_type,omitempty"`
	ToolTier    string `json:"tool_tier,omitempty"`
}

// MappingEntry pairs a decoded JSON value with the key (J identifier) it
// was declared under, preserving declaration order — order determines
// j_id assignment (spec.md §4.2).
type MappingEntry struct {
	JIdentifier string
	MappingEntryJSON
}

// MappingTable is the J<->B mapping resource, in declaration order.
type MappingTable struct {
	Entries []MappingEntry
}

// CreativeItemJSON is the JSON shape of one element of the creative
// items resource's "items" array (spec.md §6 "Creative items").
type CreativeItemJSON struct {
	ID     int32  `json:"id"`
	Damage *int16 `json:"damage,omitempty"`
	Count  *int32 `json:"count,omitempty"`
	NBTB64 string `json:"nbt_b64,omitempty"`
}

// CreativeList is the decoded creative items resource.
type CreativeList struct {
	Items []CreativeItemJSON `json:"items"`
}
