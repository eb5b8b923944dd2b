package assets

import (
	"bytes"
	"encoding/base64"
	"fmt"

	"github.com/sandertv/gophertunnel/minecraft/nbt"
)

// NBTDecoder is the narrow interface the out-of-scope binary NBT reader
// collaborator is consumed through (spec.md §1): it decodes a
// pre-serialized tag blob into a generic compound. The creative-item
// resource's nbt_b64 field is little-endian NBT (Bedrock's encoding),
// which is why this is backed by gophertunnel's decoder rather than the
// teacher's own (big-endian, Java-only) nbt package.
type NBTDecoder interface {
	Decode(raw []byte) (map[string]any, error)
}

// LittleEndianNBTDecoder decodes little-endian NBT compounds using
// github.com/sandertv/gophertunnel/minecraft/nbt, grounded on
// other_examples/JustTalDevelops-worldcompute__aliases.go's use of the
// same package for decoding embedded Bedrock NBT blobs.
type LittleEndianNBTDecoder struct{}

func (LittleEndianNBTDecoder) Decode(raw []byte) (map[string]any, error) {
	var m map[string]any
	dec := nbt.NewDecoderWithEncoding(bytes.NewReader(raw), nbt.LittleEndian)
	if err := dec.Decode(&m); err != nil {
		return nil, fmt.Errorf("assets: decoding little-endian NBT: %w", err)
	}
	return m, nil
}

// DecodeBase64NBT base64-decodes s and runs it through dec. Per
// spec.md §7, a decode failure here is never fatal to the caller: it
// returns the error so the caller can log and proceed with a null tag.
func DecodeBase64NBT(dec NBTDecoder, s string) (map[string]any, error) {
	raw, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("assets: base64 decoding nbt_b64: %w", err)
	}
	if len(raw) == 0 {
		return nil, nil
	}
	return dec.Decode(raw)
}
