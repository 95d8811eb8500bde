//go:build !matassert

// SPDX-License-Identifier: MIT

package matrix

// assertEnabled is false in the default build: every Assert* facade reduces
// to a constant-false guard that the compiler eliminates entirely.
const assertEnabled = false
