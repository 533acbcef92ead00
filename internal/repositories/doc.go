// Package repositories implements SQLite persistence for all domain entities.
//
// Each repository implements [models.Repository] for one entity and runs on a [DBTX],
// which is either a *sql.DB or a *sql.Tx. Deletes are hard deletes; venue and artist
// deletes cascade to their shows.
//
// Key Implementations:
//   - [VenueRepository] : Venues with their ordered genre set
//   - [ArtistRepository] : Artists with their ordered genre set
//   - [ShowRepository] : Shows joined with venue and artist display fields
//   - [CategoryRepository] : Trivia categories
//   - [QuestionRepository] : Trivia questions filtered by category
//
// [Store] bundles every repository over a single transaction. [Transact] acquires a
// transaction, commits when the callback succeeds, rolls back otherwise, and always
// releases the connection. SQLite constraint failures surface as [shared.ErrConstraintViolation]
// and missing rows as [shared.ErrNotFound].
package repositories
