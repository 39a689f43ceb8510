// Package store is the persistence adapter: a small key-value surface
// (JSON files on disk, or an in-memory map in tests) with typed load/save
// methods per entity. Loads of missing or corrupt documents fall back to
// built-in defaults rather than failing.
package store
