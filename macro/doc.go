// Package macro defines the nutrition log document model and the pure
// in-memory transformations applied to it.
//
// The document is a single JSON structure: daily calorie/protein goals plus
// a log of days, each holding the food entries recorded on that date. The
// log is kept sorted descending by date string (dates are fixed-width
// YYYY-MM-DD, so lexicographic order is chronological order), with at most
// one DayLog per date and no empty DayLogs.
//
// Entries are addressed externally by (date, index). Each entry additionally
// carries a stable ID assigned at creation, so callers that persist results
// can correlate entries across index shifts.
//
// All transformations here are pure with respect to I/O: they mutate an
// in-memory Data value and never touch the remote store. Persistence is the
// logbook package's concern.
package macro
