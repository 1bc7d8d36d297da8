package lib

// Open opens a resource.
//
// Deprecated: Use [OpenContext] instead.
func Open(name string) *Resource {
	return &Resource{name: name}
}

// OpenContext opens a resource.
func OpenContext(name string) *Resource {
	return &Resource{name: name}
}

// Resource is an opened resource.
type Resource struct {
	name string
}

// Name returns the name of the resource.
//
// Deprecated: Names are not unique.
func (r *Resource) Name() string {
	return r.name
}

// Closer is closed.
type Closer interface {
	// Close closes.
	//
	// Deprecated: Resources are closed automatically.
	Close() error
}
