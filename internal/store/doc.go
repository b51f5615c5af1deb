// Package store provides the in-memory entity stores for the bulletin gateway.
//
// # Architecture
//
// Each entity type lives in its own Collection, an ordered slice guarded by a
// sync.RWMutex:
//
//   - Store.News: news items
//   - Store.Posts: posts (UserID is a loose reference, never validated)
//   - Store.Users: users, wrapped in UserStore for the patch operation
//
// Writers (Create, Replace, Update, Delete, Patch) hold the write lock for the
// whole operation, including id allocation and read-modify-write merges.
// Readers (List, Filter, Get) hold the read lock and see one consistent
// snapshot. Values are cloned on the way in and out, so callers never alias
// stored records.
//
// # Id Allocation
//
// Ids are assigned by an Allocator inside the Create critical section:
//
//   - max_plus_one (default): 1 + largest current id. Deleting the newest
//     entity and creating another reissues its id.
//   - high_water: never reissues an id within the process lifetime.
//
// # Patch Semantics
//
// MergeUser overwrites only non-empty text fields and recurses into Address,
// Geo and Company. Missing nested records on the stored user are adopted
// from the patch whole.
//
// Known limitation: an empty string in a patch means "unchanged", so a patch
// cannot clear a field. Use a full replace for that.
//
// # Errors
//
//   - ErrNotFound: the addressed id does not exist
//
// A context that is already done when an operation starts returns ctx.Err()
// and leaves the store untouched.
//
// # Seeding
//
// New loads DefaultSeed() (five news items) unless Options.Seed is set.
// LoadSeed reads a YAML or TOML seed file:
//
//	news:
//	  - title: "Launch"
//	    body: "We are live"
//	    status: 2
//	users:
//	  - name: "Leanne Graham"
//	    address:
//	      city: "Gwenborough"
//	      geo: {lat: "-37.3159", lng: "81.1496"}
package store
