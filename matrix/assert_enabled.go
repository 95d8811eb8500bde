//go:build matassert

// SPDX-License-Identifier: MIT

package matrix

// assertEnabled switches the Assert* facades to their checking variant.
// Selected by building with -tags matassert.
const assertEnabled = true
