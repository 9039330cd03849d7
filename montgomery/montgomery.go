// Package montgomery implements constant-time Montgomery reduction and multiplication
// over caller-allocated, fixed-length little-endian limb slices.
//
// For a modulus n of N limbs of width W, let R = 2^(W*N). Given n0 = -n^{-1} mod 2^W,
//   - [Reduce] computes a * R^{-1} mod n for an accumulator a of 2N limbs with a < n*R,
//   - [Multiply] computes a * b * R^{-1} mod n for a, b < n of N limbs each.
//
// In other words, for values in Montgomery form (x*R mod n), Multiply is multiplication, and Reduce converts
// out of Montgomery form. Converting into Montgomery form is Multiply with R^2 mod n, which the caller precomputes.
//
// The modulus must be odd and n0 must match it. Neither is checked; both are derived once from public parameters by the caller.
//
// Timing, branching and memory accesses depend only on N (which is public), never on the values of the limbs.
// Results are exact (i.e. fully reduced into [0, n)) whenever the inputs satisfy the documented bounds.
//
// The multiply-accumulate primitive that the loops are built on is injected via [NewEngine];
// the package-level functions use [limbs.DefaultMulAdd].
//
// Shape problems (empty modulus, mismatched lengths, aliased buffers) are reported as errors before any buffer is modified.
// The returned errors wrap [ErrShapeMismatch] and carry [ShapeErrorData].
package montgomery
