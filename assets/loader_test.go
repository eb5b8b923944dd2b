package assets_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/SwallowMC/Geyser/assets"
)

func TestDefaultResourceSourceServesBundledNames(t *testing.T) {
	src := assets.DefaultResourceSource{}
	for _, name := range []string{
		assets.RuntimePaletteResource,
		assets.ItemsMappingResource,
		assets.CreativeItemsResource,
	} {
		rc, err := src.Open(name)
		require.NoError(t, err, "opening %s", name)
		require.NoError(t, rc.Close())
	}

	_, err := src.Open("not-a-real-resource.json")
	require.Error(t, err)
}

func TestLoaderLoadsPaletteInOrder(t *testing.T) {
	l := assets.NewLoader(assets.DefaultResourceSource{})
	p, err := l.LoadPalette()
	require.NoError(t, err)
	require.Greater(t, p.Len(), 0)

	id, ok := p.ByName("minecraft:lodestone_compass")
	require.True(t, ok)
	require.EqualValues(t, 741, id)

	name, ok := p.ByID(1)
	require.True(t, ok)
	require.Equal(t, "minecraft:stone", name)
}

func TestLoaderLoadsMappingPreservingOrder(t *testing.T) {
	l := assets.NewLoader(assets.DefaultResourceSource{})
	table, err := l.LoadMapping()
	require.NoError(t, err)
	require.NotEmpty(t, table.Entries)
	require.Equal(t, "minecraft:stone", table.Entries[0].JIdentifier)
}

func TestLoaderLoadsCreativeItemsAndDecodesNBT(t *testing.T) {
	l := assets.NewLoader(assets.DefaultResourceSource{})
	list, err := l.LoadCreativeItems()
	require.NoError(t, err)
	require.NotEmpty(t, list.Items)

	var found bool
	dec := assets.LittleEndianNBTDecoder{}
	for _, it := range list.Items {
		if it.NBTB64 == "" {
			continue
		}
		found = true
		tag, err := assets.DecodeBase64NBT(dec, it.NBTB64)
		require.NoError(t, err)
		require.NotNil(t, tag)
	}
	require.True(t, found, "expected at least one creative item with nbt_b64")
}
