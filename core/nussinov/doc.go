// Package nussinov implements Nussinov-Jacobson maximum base-pair folding.
//
// Design:
//   • Fill builds the O(N²) score table once per sequence (O(N³) time).
//   • Trace walks the table back into one optimal, non-crossing PairingSet.
//   • Encode turns a PairingSet into dot-bracket notation.
//   • Family repeats Trace+Encode for every prefix of the sequence, reusing
//     the single table through Matrix.Prefix views.
//
// Pairing follows a case convention, not base chemistry: two symbols pair
// when they are the same letter in opposite case (see CanPair).
package nussinov
