// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package field

import "strings"

// INTEGER corresponds to plain (signed, 64bit) machine integers, rather than
// to a prime field.
var INTEGER = Config{"int", 64, false}

// UINT256 corresponds to unsigned 256bit integers, with arithmetic modulo 2^256.
var UINT256 = Config{"u256", 256, false}

// BLS12_377 is the scalar field of the BLS12-377 curve.
var BLS12_377 = Config{"bls12-377", 253, true}

// FIELD_CONFIGS determines the set of supported element kinds.
var FIELD_CONFIGS = []Config{
	INTEGER,
	UINT256,
	BLS12_377,
}

// Config provides a simple mechanism for selecting the kind of element held
// in the matrices being processed.
type Config struct {
	// Name suitable for identifying the config.  This is used on the command
	// line and for error reporting.
	Name string
	// Maximum number of bits required to represent an element.
	BitWidth uint
	// Indicates whether arithmetic is modulo a prime.
	Prime bool
}

// GetConfig returns the field configuration corresponding with the given
// name, or nil no such config exists.
func GetConfig(name string) *Config {
	for i := range FIELD_CONFIGS {
		if strings.EqualFold(FIELD_CONFIGS[i].Name, name) {
			return &FIELD_CONFIGS[i]
		}
	}
	//
	return nil
}

// ConfigNames returns the names of all supported configurations.
func ConfigNames() []string {
	var names = make([]string, len(FIELD_CONFIGS))
	//
	for i, c := range FIELD_CONFIGS {
		names[i] = c.Name
	}
	//
	return names
}
