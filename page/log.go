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
	"log"
	"os"

	"github.com/sirix-db/sirix-go/pagehash"
)

// Logger is the package-level logger used to report masked overflow
// resolution errors and other diagnosable-but-non-fatal conditions.
// Matching the teacher repo's convention (database/mpt/io/log.go,
// database/mpt/forest.go), this layer uses the standard library's log
// package directly rather than a structured logging dependency -- no
// third-party logging library appears anywhere in the teacher repository.
// Embedders may replace it wholesale.
var Logger = log.New(os.Stderr, "page: ", log.LstdFlags)

// Verbose enables one log line per committed overflow page, carrying the
// page's pagehash.Fingerprint; with Verbose off, commits are not logged.
// Off by default: fingerprinting every committed overflow page has a
// real cost and is only useful while chasing a specific corruption.
var Verbose = false

func logf(format string, args ...any) {
	Logger.Printf(format, args...)
}

func logCommit(pageKey, nodeKey uint64, data []byte) {
	if !Verbose {
		return
	}
	logf("committed overflow page for key %d on page %d, fingerprint=%s", nodeKey, pageKey, pagehash.Of(data))
}
