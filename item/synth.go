package item

import (
	"bytes"
	"fmt"

	"github.com/sandertv/gophertunnel/minecraft/nbt"
)

// SyntheticJIdentifier is the J identifier that, when present in the
// mapping table and synthesize_extra_item is enabled, gets special
// handling: instead of a normal registry entry, it becomes the
// component-provided furnace minecart (spec.md §4.2 step 1 and step 6).
const SyntheticJIdentifier = "minecraft:furnace_minecart"

// SyntheticBIdentifier is the vendor-prefixed B identifier the
// synthesized entry maps to. It has no counterpart in the B runtime
// palette; the outbound palette gains a new entry for it instead (see
// Build).
const SyntheticBIdentifier = "geysermc:furnace_minecart"

// spectralArrowJIdentifier has no B-side analog at all; Build installs
// no Entry for it unless the mapping table declares one, but per
// spec.md §4.2 step 3 it must
// still appear in the J-name list used by the command translator's
// ITEM_STACK enum, so autocompletion offers it.
const spectralArrowJIdentifier = "minecraft:spectral_arrow"

// ComponentItemDescriptor is the fixed-schema NBT payload the client
// consumes to understand a server-defined ("component") item that has
// no built-in palette entry. See spec.md §6 for the exact layout.
type ComponentItemDescriptor struct {
	Name       string
	ID         int32
	Components ComponentItemComponents

	// Tag is Components encoded as little-endian NBT, the exact byte
	// shape the original's ComponentItemData.ItemComponents carries in
	// the item-components registry a host proxy sends alongside
	// StartGamePacket. Sending that packet is out of this module's
	// scope (spec.md §1), but the encoding itself is not — a host
	// wiring this descriptor into its own outbound packet needs bytes,
	// not a Go struct.
	Tag []byte
}

type ComponentItemComponents struct {
	Icon           ComponentIcon           `nbt:"minecraft:icon"`
	DisplayName    ComponentDisplayName    `nbt:"minecraft:display_name"`
	EntityPlacer   ComponentEntityPlacer   `nbt:"minecraft:entity_placer"`
	ItemProperties ComponentItemProperties `nbt:"item_properties"`
}

type ComponentIcon struct {
	Texture string `nbt:"texture"`
}

type ComponentDisplayName struct {
	Value string `nbt:"value"`
}

type ComponentPlacerTag struct {
	Tags string `nbt:"tags"`
}

type ComponentEntityPlacer struct {
	DispenseOn []ComponentPlacerTag `nbt:"dispense_on"`
	Entity     string               `nbt:"entity"`
	UseOn      []ComponentPlacerTag `nbt:"use_on"`
}

type ComponentItemProperties struct {
	AllowOffHand     bool   `nbt:"allow_off_hand"`
	HandEquipped     bool   `nbt:"hand_equipped"`
	MaxStackSize     int32  `nbt:"max_stack_size"`
	CreativeGroup    string `nbt:"creative_group"`
	CreativeCategory int32  `nbt:"creative_category"`
}

// buildFurnaceMinecartDescriptor builds the fixed component-item
// descriptor for the synthesized furnace minecart, given the new B-ID
// the registry assigned to it, and encodes its component bag to
// little-endian NBT. Grounded on
// original_source/.../item/ItemRegistry.java's NbtMapBuilder chain in
// the `usingFurnaceMinecart` branch — same component bag, same values.
// Returns a *ConstructionError if the encode fails, which would only
// happen if a future edit to ComponentItemComponents introduced an
// nbt-unencodable field.
func buildFurnaceMinecartDescriptor(bID int32) (*ComponentItemDescriptor, error) {
	railTag := ComponentPlacerTag{Tags: "q.any_tag('rail')"}
	d := &ComponentItemDescriptor{
		Name: SyntheticBIdentifier,
		ID:   bID,
		Components: ComponentItemComponents{
			Icon:        ComponentIcon{Texture: "minecart_furnace"},
			DisplayName: ComponentDisplayName{Value: "item.minecartFurnace.name"},
			EntityPlacer: ComponentEntityPlacer{
				DispenseOn: []ComponentPlacerTag{railTag},
				Entity:     "minecraft:minecart",
				UseOn:      []ComponentPlacerTag{railTag},
			},
			ItemProperties: ComponentItemProperties{
				AllowOffHand:     true,
				HandEquipped:     false,
				MaxStackSize:     1,
				CreativeGroup:    "itemGroup.name.minecart",
				CreativeCategory: 4,
			},
		},
	}

	var buf bytes.Buffer
	enc := nbt.NewEncoderWithEncoding(&buf, nbt.LittleEndian)
	if err := enc.Encode(d.Components); err != nil {
		return nil, &ConstructionError{Stage: "synth", Err: fmt.Errorf("encoding component item descriptor: %w", err)}
	}
	d.Tag = buf.Bytes()

	return d, nil
}
