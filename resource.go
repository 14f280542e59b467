package present

import "github.com/gogpu/present/driver"

// Resource is a device-dependent drawing object. It holds the semantic
// parameters needed to recreate itself (a color, a path, glyphs) separately
// from the device-side handle, so it can be dropped on device loss and
// rebuilt against a fresh draw context.
//
// Resources are registered once with the owning surface (Surface.AddResource)
// and then initialized lazily: registration never creates the device-side
// object, only a subsequent sweep against a live context does.
type Resource interface {
	// Initialize creates the device-side object from the stored semantic
	// value, replacing any prior handle.
	Initialize(dc driver.DrawContext) error

	// IsInitialized reports whether a live device-side handle exists.
	IsInitialized() bool

	// Reset drops the device-side handle. The semantic value is retained.
	Reset()
}

// Registry is an unordered, non-owning collection of Resources. A surface
// keeps one Registry for all resources scoped to its draw context and uses
// it to initialize them at most once per live context and to drop them all
// when the context goes away.
//
// The caller guarantees every added resource outlives the registry.
// Registry is not safe for concurrent use; like the rest of this package it
// runs on the thread that owns the window's event loop.
type Registry struct {
	resources []Resource
}

// Add appends a resource. Resources are never individually removed; the
// registry lives exactly as long as its owning surface.
func (r *Registry) Add(res Resource) {
	r.resources = append(r.resources, res)
}

// Len returns the number of registered resources.
func (r *Registry) Len() int {
	return len(r.resources)
}

// EnsureInitialized initializes every resource that does not currently hold
// a device-side handle. Initialization order across resources is
// unspecified. The first failing resource stops the sweep and its error is
// returned.
func (r *Registry) EnsureInitialized(dc driver.DrawContext) error {
	for _, res := range r.resources {
		if res.IsInitialized() {
			continue
		}
		if err := res.Initialize(dc); err != nil {
			return platformErr("initialize resource", err)
		}
	}
	return nil
}

// ResetAll drops the device-side handle of every registered resource. It
// never fails and may be called any number of times.
func (r *Registry) ResetAll() {
	for _, res := range r.resources {
		res.Reset()
	}
}
