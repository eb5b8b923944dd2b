package assets

import (
	"embed"
	"fmt"
	"io"
)

// Resource names for the three static JSON assets, matching the
// filenames used by the original connector (FileUtils.getResource).
const (
	RuntimePaletteResource = "bedrock/runtime_item_states.json"
	ItemsMappingResource   = "mappings/items.json"
	CreativeItemsResource  = "bedrock/creative_items.json"
)

// ResourceSource is the narrow interface the out-of-scope resource
// loading collaborator is consumed through (spec.md §1). Implementations
// produce a byte stream for a named resource; the Loader does not care
// whether that stream comes from disk, an embedded FS, or a network
// fetch.
type ResourceSource interface {
	Open(name string) (io.ReadCloser, error)
}

//go:embed embedded/runtime_item_states.json embedded/items.json embedded/creative_items.json
var embeddedFS embed.FS

var embeddedNames = map[string]string{
	RuntimePaletteResource: "embedded/runtime_item_states.json",
	ItemsMappingResource:   "embedded/items.json",
	CreativeItemsResource:  "embedded/creative_items.json",
}

// DefaultResourceSource serves the three bundled resources from the
// binary's embedded filesystem, following the go:embed idiom used by
// other_examples/patyhank-bedrock-library__mapping.go and
// other_examples/JustTalDevelops-mcanvil__conversion.go for shipping
// static mapping data alongside the binary.
type DefaultResourceSource struct{}

func (DefaultResourceSource) Open(name string) (io.ReadCloser, error) {
	path, ok := embeddedNames[name]
	if !ok {
		return nil, fmt.Errorf("assets: unknown resource %q", name)
	}
	f, err := embeddedFS.Open(path)
	if err != nil {
		return nil, fmt.Errorf("assets: opening embedded resource %q: %w", name, err)
	}
	return f, nil
}
