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
package matrix

import (
	"fmt"
	"strings"
)

// Rotation identifies one of the four quarter-turn rotations of a matrix.
type Rotation uint8

const (
	// None leaves a matrix as it is.
	None Rotation = iota
	// Left rotates a matrix by -90 degrees, such that its last column becomes
	// its first row.
	Left
	// Half rotates a matrix by 180 degrees.
	Half
	// Right rotates a matrix by +90 degrees, such that its last row becomes its
	// first column.
	Right
)

var rotationNames = []string{"none", "left", "half", "right"}

func (r Rotation) String() string {
	if int(r) < len(rotationNames) {
		return rotationNames[r]
	}
	//
	return fmt.Sprintf("rotation(%d)", uint8(r))
}

// ParseRotation parses the (case insensitive) name of a rotation.
func ParseRotation(name string) (Rotation, error) {
	for i, n := range rotationNames {
		if strings.EqualFold(n, name) {
			return Rotation(i), nil
		}
	}
	//
	return None, fmt.Errorf("unknown rotation \"%s\" (expected one of %s)", name,
		strings.Join(rotationNames, ", "))
}

// Axis identifies an axis along which a matrix can be mirrored.
type Axis uint8

const (
	// Rows mirrors each row, i.e. reverses the order of columns.
	Rows Axis = iota
	// Columns mirrors each column, i.e. reverses the order of rows.
	Columns
)

var axisNames = []string{"rows", "columns"}

func (a Axis) String() string {
	if int(a) < len(axisNames) {
		return axisNames[a]
	}
	//
	return fmt.Sprintf("axis(%d)", uint8(a))
}

// ParseAxis parses the (case insensitive) name of an axis.
func ParseAxis(name string) (Axis, error) {
	for i, n := range axisNames {
		if strings.EqualFold(n, name) {
			return Axis(i), nil
		}
	}
	//
	return Rows, fmt.Errorf("unknown axis \"%s\" (expected one of %s)", name, strings.Join(axisNames, ", "))
}
