package item_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/SwallowMC/Geyser/assets"
	"github.com/SwallowMC/Geyser/item"
)

func minimalPalette() *assets.Palette {
	return assets.NewPalette([]assets.PaletteEntry{
		{Name: "minecraft:air", ID: 0},
		{Name: "minecraft:stone", ID: 1},
		{Name: "minecraft:barrier_block", ID: 2},
		{Name: "minecraft:egg", ID: 3},
		{Name: "minecraft:gold_ingot", ID: 4},
		{Name: "minecraft:shield", ID: 5},
		{Name: "minecraft:milk_bucket", ID: 6},
		{Name: "minecraft:wheat", ID: 7},
		{Name: "minecraft:writable_book", ID: 8},
		{Name: "minecraft:bamboo", ID: 9},
		{Name: "minecraft:boat", ID: 10},
		{Name: "minecraft:bucket", ID: 11},
		{Name: "minecraft:potion", ID: 12},
		{Name: "minecraft:arrow", ID: 13},
		{Name: "minecraft:lingering_potion", ID: 14},
		{Name: "minecraft:debug_stick", ID: 15},
		{Name: "minecraft:minecart", ID: 16},
		{Name: "minecraft:lodestone_compass", ID: 741},
	})
}

func minimalMapping() *assets.MappingTable {
	ss1 := 16
	mk := func(jid string, bid int32, bdmg int16, isBlock bool, stack *int, toolType, toolTier string) assets.MappingEntry {
		return assets.MappingEntry{
			JIdentifier: jid,
			MappingEntryJSON: assets.MappingEntryJSON{
				BedrockID: bid, BedrockData: bdmg, IsBlock: isBlock,
				StackSize: stack, ToolType: toolType, ToolTier: toolTier,
			},
		}
	}
	return &assets.MappingTable{Entries: []assets.MappingEntry{
		mk("minecraft:stone", 1, 0, true, nil, "", ""),
		mk("minecraft:barrier", 2, 0, false, nil, "", ""),
		mk("minecraft:egg", 3, 0, false, &ss1, "", ""),
		mk("minecraft:gold_ingot", 4, 0, false, nil, "", ""),
		mk("minecraft:shield", 5, 0, false, nil, "", ""),
		mk("minecraft:milk_bucket", 6, 0, false, nil, "", ""),
		mk("minecraft:wheat", 7, 0, false, nil, "", ""),
		mk("minecraft:writable_book", 8, 0, false, nil, "", ""),
		mk("minecraft:bamboo", 9, 0, false, nil, "", ""),
		mk("minecraft:oak_boat", 10, 0, false, nil, "", ""),
		mk("minecraft:bucket", 11, 0, false, nil, "", ""),
		mk("minecraft:splash_potion", 12, 0, false, nil, "", ""),
		mk("minecraft:tipped_arrow", 13, 5, false, nil, "", ""),
		mk("minecraft:arrow", 13, 0, false, nil, "", ""),
		mk("minecraft:diamond_pickaxe", 1, 1, false, nil, "pickaxe", "diamond"),
		mk("minecraft:furnace_minecart", 16, 0, false, nil, "", ""),
	}}
}

func minimalCreative() *assets.CreativeList {
	return &assets.CreativeList{Items: []assets.CreativeItemJSON{
		{ID: 1},
		{ID: 2},
	}}
}

func buildTestRegistry(t *testing.T, synth bool) *item.Registry {
	t.Helper()
	r, err := item.Build(minimalPalette(), minimalMapping(), minimalCreative(), item.BuildOptions{
		SynthesizeExtraItem: synth,
	})
	require.NoError(t, err)
	return r
}

func TestBuildAssignsContiguousJIDs(t *testing.T) {
	r := buildTestRegistry(t, false)
	for i := 0; i < r.Size(); i++ {
		require.NotNil(t, r.GetByJID(item.ID(i)), "j_id %d should be populated", i)
	}
}

func TestBuildNamesSingletonSlots(t *testing.T) {
	r := buildTestRegistry(t, false)
	require.NotNil(t, r.Barrier)
	require.Equal(t, r.Barrier.JID, r.BarrierID)
	require.NotNil(t, r.Bamboo)
	require.NotNil(t, r.Egg)
	require.NotNil(t, r.GoldIngot)
	require.NotNil(t, r.Shield)
	require.NotNil(t, r.MilkBucket)
	require.NotNil(t, r.Wheat)
	require.NotNil(t, r.WritableBook)
}

func TestBuildGroupsBoatsAndBuckets(t *testing.T) {
	r := buildTestRegistry(t, false)
	require.Contains(t, r.Boats, int32(10))
	require.Contains(t, r.Buckets, int32(11))
	require.NotContains(t, r.Buckets, int32(6), "milk_bucket must not be grouped as a plain bucket")
}

func TestGetByBItemIsDamageAgnosticForPotions(t *testing.T) {
	r := buildTestRegistry(t, false)
	e := r.GetByBItem(12, 99, nil)
	require.Equal(t, "minecraft:splash_potion", e.JIdentifier)
}

func TestGetByBItemExcludesDenylistedArrowVariant(t *testing.T) {
	r := buildTestRegistry(t, false)
	e := r.GetByBItem(13, 0, nil)
	require.Equal(t, "minecraft:arrow", e.JIdentifier)
}

func TestGetByBItemReturnsAirOnMiss(t *testing.T) {
	r := buildTestRegistry(t, false)
	e := r.GetByBItem(999, 0, nil)
	require.Equal(t, item.AIR, e.JID)
}

func TestGetByJIdentifierMemoizesMisses(t *testing.T) {
	r := buildTestRegistry(t, false)
	require.Nil(t, r.GetByJIdentifier("minecraft:does_not_exist"))
	require.Nil(t, r.GetByJIdentifier("minecraft:does_not_exist"))
	e := r.GetByJIdentifier("minecraft:stone")
	require.NotNil(t, e)
	require.Equal(t, int32(1), e.BID)
}

func TestSynthesizeExtraItemAddsComponentDescriptor(t *testing.T) {
	r := buildTestRegistry(t, true)
	require.NotNil(t, r.ComponentDescriptor)
	require.Equal(t, item.SyntheticBIdentifier, r.ComponentDescriptor.Name)

	last := r.OutboundPalette[len(r.OutboundPalette)-1]
	require.True(t, last.ComponentBased)
	require.Equal(t, r.ComponentDescriptor.ID, last.ID)

	require.NotEmpty(t, r.ComponentDescriptor.Tag, "component bag must be encoded to NBT")
}

func TestDiamondPickaxeCarriesToolMetadata(t *testing.T) {
	r := buildTestRegistry(t, false)
	e := r.GetByJIdentifier("minecraft:diamond_pickaxe")
	require.NotNil(t, e)
	require.True(t, e.IsTool())
	require.Equal(t, "pickaxe", e.Tool.ToolType)
	require.Equal(t, "diamond", e.Tool.ToolTier)
}
