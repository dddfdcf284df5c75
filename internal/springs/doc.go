// Package springs counts the arrangements of damaged springs in condition records.
//
// A record is a row of spring conditions ('.' operational, '#' damaged,
// '?' unknown) followed by the lengths of the contiguous damaged groups,
// e.g. "???.### 1,1,3". An arrangement resolves every unknown spring so that
// the damaged runs of the row equal the group list exactly.
//
// Counters:
//
//   - PrunedCounter places groups left to right and stops scanning as soon as
//     the current group can no longer leave room for the groups after it.
//   - BruteForceCounter enumerates every resolution of the unknown springs and
//     is only meant for short records and for cross-checking.
//
// Aggregator parses a batch of lines and sums their counts. A malformed line
// aborts the whole batch.
//
// Errors:
//
//   - ErrMalformedRecord: the row contains a character outside ".#?".
//   - ErrMalformedLengths: the group list is missing or not a list of positive integers.
//   - ErrTooManyUnknowns: the record is too large for BruteForceCounter.
package springs
