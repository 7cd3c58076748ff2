// Package settings provides the KOT and bill printing preference singletons.
//
// Each configuration is a single persisted row with defaults created on first
// read. Concurrent first-reads race to create that row; the storage adapter
// resolves the race with an upsert so at most one default row survives, and
// callers serialize read-modify-write cycles on the per-key exclusion
// constants defined here.
package settings
