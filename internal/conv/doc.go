// Package conv provides checked numeric conversion utilities.
//
// Two families live here:
//   - Checked integer conversions (IntToUint64, Uint64ToInt) that return an
//     error instead of silently wrapping.
//   - Saturating float-to-code conversion (RoundToCode) used when quantizing a
//     floating-point value into a fixed-width unsigned code.
//
// For conversions that are provably safe by domain constraints (e.g., loop
// indices, bounded counters), use direct type casts instead to avoid overhead.
package conv
