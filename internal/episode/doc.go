// Package episode persists a ledger of processed episodes in SQLite. Each
// successful build records what was produced and where, so repeated runs over
// a podcast back-catalogue can be inspected later.
package episode
