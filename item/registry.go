package item

import (
	"fmt"
	"log/slog"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/SwallowMC/Geyser/assets"
)

// javaOnlyDenylist holds identifiers that get_by_b_item must never
// return, even if they happen to share a (b_id, b_damage) pair with
// something else (spec.md §4.2, get_by_b_item). Grounded verbatim on
// original_source/.../item/ItemRegistry.java's JAVA_ONLY_ITEMS.
var javaOnlyDenylist = map[string]bool{
	"minecraft:spectral_arrow":   true,
	"minecraft:debug_stick":      true,
	"minecraft:knowledge_book":   true,
	"minecraft:tipped_arrow":     true,
	"minecraft:furnace_minecart": true,
}

// Registry is the immutable, once-built table of Item Entries, plus the
// derived sets and singletons spec.md §4.2 describes. All fields below
// are read-only after Build returns; the only exception is the
// memoizing j-identifier cache, which is safe for concurrent use.
type Registry struct {
	byJID        []*Entry           // dense, index == JID
	byIdentifier map[string]*Entry
	byBKey       map[bKey][]*Entry  // exact (b_id, b_damage) groups
	byBIDOnly    map[int32][]*Entry // variable-damage groups (potions, arrow)

	identifierCache *lru.Cache[string, *Entry]

	Boats   []int32
	Buckets []int32

	Barrier      *Entry
	BarrierID    ID
	Bamboo       *Entry
	Egg          *Entry
	GoldIngot    *Entry
	Shield       *Entry
	MilkBucket   *Entry
	Wheat        *Entry
	WritableBook *Entry

	JNames []string

	CreativeItems []CreativeItem

	// OutboundPalette is the B-side palette the outbound item table
	// presents to the client: the loaded palette entries, plus — when
	// the extra item was synthesized — one appended "component-provided"
	// entry (spec.md §4.2 step 6).
	OutboundPalette []OutboundPaletteEntry

	// ComponentDescriptor is non-nil only when synthesize_extra_item was
	// enabled at Build time.
	ComponentDescriptor *ComponentItemDescriptor
}

type bKey struct {
	bID     int32
	bDamage int16
}

// OutboundPaletteEntry is one element of the item table sent to the
// client: a B identifier, its numeric ID, and whether it's a
// component-defined item with no vanilla built-in behavior.
type OutboundPaletteEntry struct {
	Name           string
	ID             int32
	ComponentBased bool
}

// BuildOptions configures registry construction.
type BuildOptions struct {
	SynthesizeExtraItem bool
	NBTDecoder          assets.NBTDecoder
	Logger              *slog.Logger
}

// Build constructs the immutable registry tables from loaded assets, in
// the exact order spec.md §4.2 specifies — order matters because it
// determines j_id assignment. Any integrity failure (a mapping
// referring to an absent B-ID, or a missing lodestone compass) is
// fatal and returned as a *ConstructionError.
func Build(palette *assets.Palette, mapping *assets.MappingTable, creative *assets.CreativeList, opts BuildOptions) (*Registry, error) {
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}
	dec := opts.NBTDecoder
	if dec == nil {
		dec = assets.LittleEndianNBTDecoder{}
	}

	lodestoneBID, ok := palette.ByName("minecraft:lodestone_compass")
	if !ok {
		return nil, &ConstructionError{Stage: "palette", Err: fmt.Errorf("minecraft:lodestone_compass absent from B runtime palette")}
	}

	r := &Registry{
		byIdentifier: make(map[string]*Entry),
		byBKey:       make(map[bKey][]*Entry),
		byBIDOnly:    make(map[int32][]*Entry),
	}
	cache, err := lru.New[string, *Entry](4096)
	if err != nil {
		return nil, &ConstructionError{Stage: "cache", Err: err}
	}
	r.identifierCache = cache

	var nextID ID
	var furnaceMinecartSlot ID = -1

	for _, me := range mapping.Entries {
		if me.JIdentifier == SyntheticJIdentifier && opts.SynthesizeExtraItem {
			furnaceMinecartSlot = nextID
			nextID++
			continue
		}

		bIdentifier, ok := palette.ByID(me.BedrockID)
		if !ok {
			return nil, &ConstructionError{Stage: "mapping", Err: fmt.Errorf("mapping entry %q refers to absent B-ID %d", me.JIdentifier, me.BedrockID)}
		}

		stackSize := DefaultStackSize
		if me.StackSize != nil {
			stackSize = *me.StackSize
		}

		entry := &Entry{
			JIdentifier: me.JIdentifier,
			BIdentifier: bIdentifier,
			JID:         nextID,
			BID:         me.BedrockID,
			BDamage:     me.BedrockData,
			IsBlock:     me.IsBlock,
			StackSize:   stackSize,
		}
		if me.ToolType != "" {
			entry.Tool = &Tool{ToolType: me.ToolType, ToolTier: me.ToolTier}
		}

		r.install(entry)

		switch me.JIdentifier {
		case "minecraft:barrier":
			r.Barrier = entry
			r.BarrierID = entry.JID
		case "minecraft:bamboo":
			r.Bamboo = entry
		case "minecraft:egg":
			r.Egg = entry
		case "minecraft:gold_ingot":
			r.GoldIngot = entry
		case "minecraft:shield":
			r.Shield = entry
		case "minecraft:milk_bucket":
			r.MilkBucket = entry
		case "minecraft:wheat":
			r.Wheat = entry
		case "minecraft:writable_book":
			r.WritableBook = entry
		}

		if strings.Contains(me.JIdentifier, "boat") {
			r.Boats = append(r.Boats, entry.BID)
		} else if strings.Contains(me.JIdentifier, "bucket") && !strings.Contains(me.JIdentifier, "milk") {
			r.Buckets = append(r.Buckets, entry.BID)
		}

		r.JNames = append(r.JNames, me.JIdentifier)
		nextID++
	}

	// spec.md §4.2 step 3: these two appear in the J-name list
	// unconditionally, even though furnace_minecart may also have been
	// installed as a registry entry above (open question #2, DESIGN.md).
	r.JNames = append(r.JNames, SyntheticJIdentifier, spectralArrowJIdentifier)

	lodestoneEntry := &Entry{
		JIdentifier: "minecraft:lodestone_compass",
		BIdentifier: "minecraft:lodestone_compass",
		JID:         nextID,
		BID:         lodestoneBID,
		BDamage:     0,
		IsBlock:     false,
		StackSize:   1,
	}
	r.install(lodestoneEntry)
	nextID++

	for _, pe := range palette.Entries {
		r.OutboundPalette = append(r.OutboundPalette, OutboundPaletteEntry{Name: pe.Name, ID: pe.ID})
	}

	var netID int32 = 1
	for _, ci := range creative.Items {
		item := CreativeItem{NetID: netID, BID: ci.ID}
		if ci.Damage != nil {
			item.BDamage = *ci.Damage
		}
		item.Count = 1
		if ci.Count != nil {
			item.Count = *ci.Count
		}
		if ci.NBTB64 != "" {
			tag, err := assets.DecodeBase64NBT(dec, ci.NBTB64)
			if err != nil {
				log.Warn("item: creative item NBT decode failed, proceeding with null tag", "b_id", ci.ID, "error", err)
			} else {
				item.Tag = NBTTag(tag)
			}
		}
		r.CreativeItems = append(r.CreativeItems, item)
		netID++
	}

	if opts.SynthesizeExtraItem {
		newBID := int32(palette.Len() + 1)
		r.OutboundPalette = append(r.OutboundPalette, OutboundPaletteEntry{
			Name:           SyntheticBIdentifier,
			ID:             newBID,
			ComponentBased: true,
		})

		furnaceEntry := &Entry{
			JIdentifier: SyntheticJIdentifier,
			BIdentifier: SyntheticBIdentifier,
			JID:         furnaceMinecartSlot,
			BID:         newBID,
			BDamage:     0,
			IsBlock:     false,
			StackSize:   1,
		}
		r.install(furnaceEntry)

		r.CreativeItems = append(r.CreativeItems, CreativeItem{
			NetID: netID,
			BID:   newBID,
			Count: 1,
		})

		descriptor, err := buildFurnaceMinecartDescriptor(newBID)
		if err != nil {
			return nil, err
		}
		r.ComponentDescriptor = descriptor
	}

	return r, nil
}

// install adds entry to every index table. It never removes or
// mutates an existing entry — the registry is build-once per
// spec.md §5.
func (r *Registry) install(entry *Entry) {
	for len(r.byJID) <= int(entry.JID) {
		r.byJID = append(r.byJID, nil)
	}
	r.byJID[entry.JID] = entry
	r.byIdentifier[entry.JIdentifier] = entry

	key := bKey{bID: entry.BID, bDamage: entry.BDamage}
	r.byBKey[key] = append(r.byBKey[key], entry)
	r.byBIDOnly[entry.BID] = append(r.byBIDOnly[entry.BID], entry)
}

// GetByJID returns the entry at the given dense index, or nil if out of
// range.
func (r *Registry) GetByJID(id ID) *Entry {
	if id < 0 || int(id) >= len(r.byJID) {
		return nil
	}
	return r.byJID[id]
}

// GetByJIdentifier returns the entry for a J identifier, or nil if
// unknown. Results are memoized in a concurrent, insertion-once cache
// (spec.md §4.2, §5): the underlying table never changes after Build,
// so caching a lookup miss is as safe as caching a hit.
func (r *Registry) GetByJIdentifier(identifier string) *Entry {
	if cached, ok := r.identifierCache.Get(identifier); ok {
		return cached
	}
	entry := r.byIdentifier[identifier]
	r.identifierCache.ContainsOrAdd(identifier, entry)
	return entry
}

// GetByBItem resolves a B-side (b_id, b_damage) pair to an Entry,
// applying the potion/arrow damage-agnostic matching rule and the
// J-only denylist (spec.md §4.2 get_by_b_item). Returns AIR when
// nothing matches; logs at debug level when the input was non-empty.
func (r *Registry) GetByBItem(bID int32, bDamage int16, log *slog.Logger) *Entry {
	if log == nil {
		log = slog.Default()
	}

	for _, e := range r.byBKey[bKey{bID: bID, bDamage: bDamage}] {
		if !javaOnlyDenylist[e.JIdentifier] {
			return e
		}
	}

	for _, e := range r.byBIDOnly[bID] {
		if strings.HasSuffix(e.JIdentifier, "potion") || e.JIdentifier == "minecraft:arrow" {
			if !javaOnlyDenylist[e.JIdentifier] {
				return e
			}
		}
	}

	if bID != 0 || bDamage != 0 {
		log.Debug("item: missing mapping for bedrock item", "b_id", bID, "b_damage", bDamage)
	}
	return airEntry
}

// Size returns the number of registered entries (the contiguous [0, N)
// range of j_id values).
func (r *Registry) Size() int { return len(r.byJID) }
