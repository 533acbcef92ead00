// Package models defines domain entities and persistence interfaces for the Fyyur directory and the Trivia API.
//
// Directory entities:
//   - [Venue] : A place that hosts shows, with location, contact links and genres
//   - [Artist] : A performer, with location, contact links and genres
//   - [Show] : A dated booking linking exactly one venue to one artist
//
// Trivia entities:
//   - [Category] : A question category label
//   - [Question] : A question/answer pair filed under a category with a difficulty from 1 to 5
//
// All entities implement [Model], which exposes identity and field validation.
// The [Repository] interface defines standard CRUD operations for database access.
package models
