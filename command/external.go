package command

// ExternalEnumSource supplies the three parser-enum value lists that are
// registry-dependent and may change during a session's lifetime, so
// they must be fetched at translation time rather than cached at
// startup (spec.md §9). A nil ExternalEnumSource is treated as "empty
// for all three" rather than an error — a command tree that never uses
// BLOCK_STATE/ITEM_ENCHANTMENT/ENTITY_SUMMON is perfectly valid without
// one.
type ExternalEnumSource interface {
	BlockIdentifiers() []string
	EnchantmentIdentifiers() []string
	EntitySummonIdentifiers() []string
}

// namedTextColors is the fixed list of chat color names COLOR-typed
// parameters enumerate. Unlike the three ExternalEnumSource lists, this
// set is part of the wire protocol's fixed vocabulary, not derived from
// any registry, so it is safe to hardcode.
var namedTextColors = []string{
	"black", "dark_blue", "dark_green", "dark_aqua", "dark_red", "dark_purple",
	"gold", "gray", "dark_gray", "blue", "green", "aqua", "red", "light_purple",
	"yellow", "white",
}

// DescriptionSource resolves a command's human-readable description by
// its canonical (lowercased) name. The original description store is
// out of this subsystem's scope (spec.md §1); this is the narrow
// interface it's consumed through.
type DescriptionSource interface {
	Description(name string) string
}
