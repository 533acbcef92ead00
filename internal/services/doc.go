// Package services implements the operations behind the Fyyur pages and the Trivia API.
//
// # Directory
//
// [Directory] serves venues, artists and shows. Detail pages split shows into past and
// upcoming around the service clock, injected so tests can pin "now".
//
// # Trivia
//
// [Trivia] serves categories and questions: paginated listing, search, per-category
// listing and the quiz draw.
//
// # Transactions
//
// Every method takes the [repositories.Store] it runs against. HTTP handlers pass the
// request-scoped store installed by the transaction middleware; CLI callers use
// [repositories.Transact].
//
// # Error Handling
//
// Services return the shared sentinel errors, wrapped:
//   - [shared.ErrNotFound] : the addressed record does not exist
//   - [shared.ErrValidationFailed] : a field failed validation
//   - [shared.ErrConstraintViolation] : a referenced record is missing or a unique key clashes
//   - [shared.ErrExhausted] : the quiz has no unseen question left
package services
