// Package item implements the bidirectional J-identifier <-> B-item-ID
// registry: the Item Registry of the bridge's core translation logic.
package item

// ID is the registry's own dense index for an Entry, assigned at
// construction time. Values form a contiguous range [0, N).
type ID int32

// AIR is the sentinel J-ID representing "no item". It is always j_id 0.
const AIR ID = 0

// DefaultStackSize is used for any mapping entry that doesn't specify
// stack_size explicitly.
const DefaultStackSize = 64

// Tool describes the tool classification of an item, when it has one.
// ToolTier may be empty (some tools have a type but no tier, e.g. shears).
type Tool struct {
	ToolType string
	ToolTier string
}

// Entry is one immutable item record, keyed by its J-ID (j_id). See
// spec.md §3 "Item Entry".
type Entry struct {
	JIdentifier string
	BIdentifier string
	JID         ID
	BID         int32
	BDamage     int16
	IsBlock     bool
	StackSize   int
	Tool        *Tool
}

// IsTool reports whether this entry carries tool metadata.
func (e *Entry) IsTool() bool {
	return e != nil && e.Tool != nil
}

// airEntry is returned by GetByBItem when nothing matches; it is not
// itself stored in any of the registry's index tables.
var airEntry = &Entry{
	JIdentifier: "minecraft:air",
	BIdentifier: "minecraft:air",
	JID:         AIR,
	BID:         0,
	BDamage:     0,
	IsBlock:     true,
	StackSize:   DefaultStackSize,
}
