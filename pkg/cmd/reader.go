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
package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path"
	"strings"

	"github.com/consensys/go-matteray/pkg/util"
	"github.com/consensys/go-matteray/pkg/util/collection/matrix"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Read a matrix file, or exit if an error arises.
func readMatrix[T any](filename string, parse func(string) (T, error)) matrix.Matrix[T] {
	m, err := readMatrixFile(filename, parse)
	//
	if err != nil {
		dataError(err)
	}
	//
	return m
}

// Parse a matrix file using a parser based on the extension of the filename.
// The file must hold a list of rows, where each row is a list of numbers (or
// strings holding numbers).  Nulls denote absent elements, which are reported
// as errors.
func readMatrixFile[T any](filename string, parse func(string) (T, error)) (matrix.Matrix[T], error) {
	var (
		stats = util.NewPerfStats()
		rows  [][]*cell
	)
	//
	bytes, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	// Check file extension
	switch ext := strings.ToLower(path.Ext(filename)); ext {
	case ".json":
		err = json.Unmarshal(bytes, &rows)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(bytes, &rows)
	default:
		err = fmt.Errorf("unknown matrix file format: %s", ext)
	}
	//
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	//
	m, err := parseCells(rows, parse)
	//
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	//
	log.Debugf("read %d x %d matrix from %s", m.Rows(), m.Columns(), filename)
	stats.Log("Reading matrix file")
	//
	return m, nil
}

// Construct a matrix from the cells of a matrix file, checking they form a
// rectangle without absent elements before parsing each of them.
func parseCells[T any](rows [][]*cell, parse func(string) (T, error)) (matrix.Matrix[T], error) {
	var texts = make([][]*string, len(rows))
	//
	for i, row := range rows {
		if row != nil {
			texts[i] = make([]*string, len(row))
			//
			for j, c := range row {
				if c != nil {
					texts[i][j] = &c.text
				}
			}
		}
	}
	//
	cells, err := matrix.FromSlice2D(texts)
	//
	if err != nil {
		return nil, err
	}
	//
	return matrix.TryApplyForEach(cells, func(text *string) (T, error) {
		return parse(*text)
	})
}

// cell holds the text of a single element in a matrix file.  Absent elements
// are decoded as nil cells.
type cell struct {
	text string
}

// UnmarshalJSON accepts either a number or a string.  Numbers are kept as
// given, such that no precision is lost.
func (c *cell) UnmarshalJSON(data []byte) error {
	var text = strings.TrimSpace(string(data))
	//
	switch {
	case strings.HasPrefix(text, "\""):
		return json.Unmarshal(data, &c.text)
	case len(text) > 0 && (text[0] == '-' || (text[0] >= '0' && text[0] <= '9')):
		c.text = text
	default:
		return fmt.Errorf("expected number, found %s", text)
	}
	//
	return nil
}

// UnmarshalYAML accepts any scalar.
func (c *cell) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("expected number at line %d", value.Line)
	}
	//
	c.text = value.Value
	//
	return nil
}
