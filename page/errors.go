// Copyright (c) 2026 Sirix Authors
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at sirix.io/bsl11.
//
// Change Date: 2030-1-1
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package page

import (
	"fmt"

	"github.com/sirix-db/sirix-go/common"
)

const (
	// ErrFormat is wrapped around malformed-byte errors encountered during
	// page reconstruction (spec §7, "Format error").
	ErrFormat = common.ConstError("page: malformed page format")

	// ErrCodec is wrapped around record-codec failures: serialization
	// failures during prepare and deserialization failures during
	// reconstruction (spec §7, "Codec error").
	ErrCodec = common.ConstError("page: record codec failure")

	// ErrContractViolation is raised for operations the format forbids:
	// requesting indexed-page-only accessors through AsIndexedPage on a
	// page that lacks them, or calling SetEntry with a node key that does
	// not belong to the page (spec §7, "Contract violation"). Mutating an
	// origin page after it has been cloned is not detected and raises
	// nothing.
	ErrContractViolation = common.ConstError("page: contract violation")
)

// contractViolation panics with ErrContractViolation wrapped with context,
// matching the teacher's handful of panic(fmt.Sprintf(...)) invariant
// guards (e.g. backend/pagepool's free-list misuse checks).
func contractViolation(format string, args ...any) {
	panic(fmt.Errorf("%w: %s", ErrContractViolation, fmt.Sprintf(format, args...)))
}
