package item

// NBTTag is a decoded NBT compound, as produced by the out-of-scope
// binary NBT reader (spec.md §1) for a creative item's nbt_b64 field.
// It is nil when the source entry had no nbt_b64, or when decoding
// failed (spec.md §7: "log and proceed with a null tag").
type NBTTag map[string]any

// CreativeItem is one entry of the synthesized creative inventory
// payload. NetID is assigned by Build, starting at 1, in the order
// creative entries were built (spec.md §3 "Creative item").
type CreativeItem struct {
	NetID   int32
	BID     int32
	BDamage int16
	Count   int32
	Tag     NBTTag
}
