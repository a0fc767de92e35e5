// Package committers aggregates commit authors into per-email statistics.
//
// # Aggregation
//
// [Aggregate] walks one repository's commits in API order and builds a
// [Table] keyed by exact email string:
//
//   - commits without an author are skipped
//   - author dates must match [DateLayout]; anything else is an error
//   - placeholder addresses (see [IsPlaceholder]) are dropped
//   - the first name seen for an email is kept
//   - the commit count grows by one per commit
//   - the latest commit date only moves forward (strict greater-than)
//
// Tables never span repositories.
//
// # Ranking
//
// [Table.Top] orders committers by commit count, highest first. Equal
// counts come out in reverse encounter order, the result of a stable
// ascending sort followed by a reversal.
package committers
