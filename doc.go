// Package chartdata prepares portfolio time series for charts and reports.
//
// The API returns account and position histories as sparse, date keyed series,
// usually latest first. This package turns them into what a chart widget can draw:
//   - Merging: summing several series into one, either on the dates they all share
//     (SumAligned) or on every calendar day with the last known value carried
//     forward (SumWithForwardFill).
//   - Decimation: thinning a long series while keeping its endpoints, and, for
//     values, every point where the value changes.
//   - Lookup: the value closest to a chart cursor, in logarithmic time.
//   - Windows: resolving a user selected duration (3 months, 1 year, max) to a
//     number of days, which drives both the fetched range and the decimation factor.
//
// Every function is pure: inputs are never modified and results are freshly
// allocated. Missing data yields zero or empty results rather than errors, only
// payload decoding at the API boundary returns errors.
package chartdata
