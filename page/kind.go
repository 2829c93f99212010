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

// Kind discriminates which subtree a KeyValuePage belongs to. It is
// written as a single byte at the tail of the serialized page (spec
// §4.5 step 8).
type Kind uint8

const (
	NodePage Kind = iota
	PathSummaryPage
	TextValuePage
	AttributeValuePage
)

func (k Kind) String() string {
	switch k {
	case NodePage:
		return "NODE_PAGE"
	case PathSummaryPage:
		return "PATH_SUMMARY_PAGE"
	case TextValuePage:
		return "TEXT_VALUE_PAGE"
	case AttributeValuePage:
		return "ATTRIBUTE_VALUE_PAGE"
	default:
		return "UNKNOWN_PAGE_KIND"
	}
}
