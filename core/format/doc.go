// Package format provides human-readable rendering helpers shared across the module.
//
// Every function is pure: it depends only on its arguments (and, for Time, on the
// process-local timezone) and keeps no state between calls.
//
// # Sizes
//
// Byte counts are rendered either with binary units (powers of 1024: KiB, MiB, GiB,
// TiB, PiB) or decimal units (powers of 1000: KB, MB, GB, TB, PB). Counts at or below
// the unit base are printed as whole bytes:
//
//	format.BinarySize(1234)  // "1.21KiB"
//	format.DecimalSize(1234) // "1.23KB"
//	format.BinarySize(64)    // "64bytes"
//
// # Time
//
// Timestamps are nanoseconds since the Unix epoch and are rendered with DateLayout
// ("yyyy-MM-dd HH:mm:ss") at millisecond precision.
//
// # Money
//
// Amounts are integers in minor units (cents). Zero is "Free"; only "usd" is
// recognised, anything else renders as "?".
//
//	format.Money("usd", 1230) // "$12.3"
package format
