package assets

import "fmt"

// LoadError is a fatal error raised while loading one of the three
// static resources (spec.md §7 "Asset load failure"). It wraps the
// underlying cause and names the resource that failed.
type LoadError struct {
	Resource string
	Err      error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("assets: loading %s: %v", e.Resource, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }
