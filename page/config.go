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

// ResourceConfig is the immutable, resource-level configuration a
// KeyValuePage holds a back-reference to (spec §3's resource-config
// field). It plays the same role for this layer that MptConfig plays for
// Carmen's trie implementation: a small set of named presets rather than
// a runtime flag/env parser, since this layer is a library consumed by a
// higher-level resource manager.
type ResourceConfig struct {
	// Name is a descriptive label with no effect beyond logging/debugging.
	Name string

	// StoreDeweyIDs indicates whether the resource persists Dewey-IDs
	// for its nodes at all. A codec may independently decline to support
	// Dewey-IDs; the two conditions are ANDed wherever spec.md requires
	// "Dewey active" (§4.4, §4.5, §4.6).
	StoreDeweyIDs bool
}

// ConfigDeweyEnabled is the preset resource configuration used by
// resources that persist Dewey-IDs for structural navigation.
var ConfigDeweyEnabled = ResourceConfig{
	Name:          "dewey-enabled",
	StoreDeweyIDs: true,
}

// ConfigDeweyDisabled is the preset resource configuration used by
// resources that do not track Dewey-IDs.
var ConfigDeweyDisabled = ResourceConfig{
	Name:          "dewey-disabled",
	StoreDeweyIDs: false,
}

var allResourceConfigs = []ResourceConfig{ConfigDeweyEnabled, ConfigDeweyDisabled}

// GetConfigByName attempts to locate a preset configuration by name,
// mirroring mpt.GetConfigByName's lookup-by-name convenience.
func GetConfigByName(name string) (ResourceConfig, bool) {
	for _, cfg := range allResourceConfigs {
		if cfg.Name == name {
			return cfg, true
		}
	}
	return ResourceConfig{}, false
}

// DeweyActive reports whether a page built with this resource config and
// record codec should maintain Dewey-ID metadata (spec §4.4 step 2).
func (c *ResourceConfig) DeweyActive(codec RecordCodec) bool {
	return c != nil && c.StoreDeweyIDs && codec != nil && codec.SupportsDewey()
}
