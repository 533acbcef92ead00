// Package tasks holds long-running maintenance operations with real-time progress reporting.
//
// # Seeding
//
// [Seeder.Run] fills an empty database with demo data for both applications:
//
//  1. Trivia categories and questions
//  2. Venues and artists with their genres
//  3. Shows, some in the past and some upcoming relative to the seeder's clock
//
// Each half is skipped when its tables already hold rows, so seeding twice is harmless.
// The run happens inside one [repositories.Store], normally opened with [repositories.Transact],
// so a failure part way through leaves nothing behind.
//
// # Progress Reporting
//
// # All operations use non-blocking channels for progress updates
//
// The [ProgressUpdate] struct contains phase, step counters, messages, and optional data for advanced UI rendering.
// Updates use select with default to prevent blocking.
package tasks
