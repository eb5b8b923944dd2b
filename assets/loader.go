package assets

import (
	"encoding/json"
	"fmt"
)

// Loader reads the three static resources into typed views (spec.md
// §4.1). All three failures are fatal per spec.md §7; the Loader itself
// never logs — callers decide how to surface a *LoadError.
type Loader struct {
	Source ResourceSource
}

// NewLoader builds a Loader over the given ResourceSource.
func NewLoader(source ResourceSource) *Loader {
	return &Loader{Source: source}
}

// LoadPalette reads the B-side runtime palette resource, preserving
// declaration order (spec.md §4.1 item 1).
func (l *Loader) LoadPalette() (*Palette, error) {
	var entries []PaletteEntry
	if err := l.readJSON(RuntimePaletteResource, &entries); err != nil {
		return nil, err
	}
	p := &Palette{Entries: entries}
	p.index()
	return p, nil
}

// LoadMapping reads the J<->B mapping resource. JSON object key order is
// not guaranteed by encoding/json's map decoding, so the mapping is
// decoded key by key off the token stream directly, preserving the declaration order spec.md §4.2 depends on for j_id
// assignment.
func (l *Loader) LoadMapping() (*MappingTable, error) {
	rc, err := l.Source.Open(ItemsMappingResource)
	if err != nil {
		return nil, &LoadError{Resource: ItemsMappingResource, Err: err}
	}
	defer rc.Close()

	dec := json.NewDecoder(rc)
	if err := expectDelim(dec, '{'); err != nil {
		return nil, &LoadError{Resource: ItemsMappingResource, Err: err}
	}

	var table MappingTable
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, &LoadError{Resource: ItemsMappingResource, Err: err}
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, &LoadError{Resource: ItemsMappingResource, Err: fmt.Errorf("expected string key, got %v", keyTok)}
		}
		var val MappingEntryJSON
		if err := dec.Decode(&val); err != nil {
			return nil, &LoadError{Resource: ItemsMappingResource, Err: fmt.Errorf("decoding value for %q: %w", key, err)}
		}
		table.Entries = append(table.Entries, MappingEntry{JIdentifier: key, MappingEntryJSON: val})
	}
	return &table, nil
}

// LoadCreativeItems reads the creative-item list resource.
func (l *Loader) LoadCreativeItems() (*CreativeList, error) {
	var list CreativeList
	if err := l.readJSON(CreativeItemsResource, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

func (l *Loader) readJSON(resource string, v any) error {
	rc, err := l.Source.Open(resource)
	if err != nil {
		return &LoadError{Resource: resource, Err: err}
	}
	defer rc.Close()
	if err := json.NewDecoder(rc).Decode(v); err != nil {
		return &LoadError{Resource: resource, Err: err}
	}
	return nil
}

func expectDelim(dec *json.Decoder, want json.Delim) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	delim, ok := tok.(json.Delim)
	if !ok || delim != want {
		return fmt.Errorf("expected delimiter %q, got %v", want, tok)
	}
	return nil
}
