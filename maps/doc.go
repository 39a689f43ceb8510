// Package maps wraps the external geocoding and directions collaborators
// behind typed interfaces. Provider responses are validated and normalized
// once, at the call boundary.
package maps
