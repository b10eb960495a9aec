// Licensed to NASA JPL under one or more contributor
// license agreements. See the NOTICE file distributed with
// this work for additional information regarding copyright
// ownership. NASA JPL licenses this file to you under
// the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing,
// software distributed under the License is distributed on an
// "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
// KIND, either express or implied.  See the License for the
// specific language governing permissions and limitations
// under the License.

package omexml

import (
	"encoding/xml"
	"os"

	"github.com/pkg/errors"
)

// Parse - reads an OME document from raw XML bytes.
func Parse(data []byte) (*OME, error) {
	doc := &OME{}
	if err := xml.Unmarshal(data, doc); err != nil {
		return nil, errors.Wrap(err, "failed to parse OME-XML")
	}
	return doc, nil
}

// Marshal - serialises a document, schema namespace stamped on the root.
func Marshal(doc *OME) ([]byte, error) {
	if doc.XMLNS == "" {
		doc.XMLNS = SchemaNamespace
	}
	data, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, errors.Wrap(err, "failed to serialise OME-XML")
	}
	return append([]byte(xml.Header), data...), nil
}

// WriteFile - serialises a document to the given path.
func WriteFile(path string, doc *OME) error {
	data, err := Marshal(doc)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
