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
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Example_enumsFromString() {
	fmt.Println(FillRuleFromString("EvenOdd"))
	fmt.Println(FillRuleFromString("evenodd"))
	fmt.Println(FontFamilyFromString("sans-serif"))
	fmt.Println(FontFamilyFromString("Helvetica"))
	fmt.Println(FontStyleFromString("BoldItalic"))
	fmt.Println(FontStyleFromString(""))
	fmt.Println(MarkerFromString("Arrow"))
	fmt.Println(MarkerFromString("Circle"))

	// Output:
	// EvenOdd <nil>
	//  "evenodd" is not a valid FillRule
	// sans-serif <nil>
	//  "Helvetica" is not a valid FontFamily
	// BoldItalic <nil>
	//  "" is not a valid FontStyle
	// Arrow <nil>
	//  "Circle" is not a valid Marker
}

func Example_colorChannels() {
	// Opaque red: 0xFF0000FF as a signed 32 bit value
	c := Color(-16776961)
	fmt.Println(c.Red(), c.Green(), c.Blue(), c.Alpha())

	c = Color(0x00FF00FF)
	fmt.Println(c.Red(), c.Green(), c.Blue(), c.Alpha())

	// Output:
	// 255 0 0 255
	// 0 255 0 255
}

func TestParseInterleavedShapeOrder(t *testing.T) {
	doc, err := Parse([]byte(`<?xml version="1.0"?>
<OME xmlns="http://www.openmicroscopy.org/Schemas/OME/2016-06">
  <ROI ID="ROI:1">
    <Union>
      <Rectangle ID="Shape:1" X="1" Y="1" Width="1" Height="1"/>
      <Ellipse ID="Shape:2" X="2" Y="2" RadiusX="1" RadiusY="1"/>
      <Rectangle ID="Shape:3" X="3" Y="3" Width="1" Height="1"/>
      <Mask ID="Shape:4"/>
      <Point ID="Shape:5" X="4" Y="4"/>
    </Union>
  </ROI>
</OME>`))
	assert.NoError(t, err)

	ids := []string{}
	kinds := []string{}
	for _, shape := range doc.ROIs[0].Union.Shapes {
		ids = append(ids, shape.ID)
		kinds = append(kinds, shape.Kind)
	}
	// Mask is not modelled and is skipped; order of the rest is preserved
	assert.Equal(t, []string{"Shape:1", "Shape:2", "Shape:3", "Shape:5"}, ids)
	assert.Equal(t, []string{"Rectangle", "Ellipse", "Rectangle", "Point"}, kinds)
}

func TestMarshalStampsNamespace(t *testing.T) {
	data, err := Marshal(&OME{})
	assert.NoError(t, err)
	assert.Contains(t, string(data), SchemaNamespace)
	assert.Contains(t, string(data), `<?xml version="1.0" encoding="UTF-8"?>`)
}

func TestParseTransform(t *testing.T) {
	doc, err := Parse([]byte(`<?xml version="1.0"?>
<OME>
  <ROI ID="ROI:1">
    <Union>
      <Rectangle ID="Shape:1" X="1" Y="1" Width="1" Height="1">
        <Transform A00="0" A10="1" A01="-1" A11="0" A02="5" A12="6"/>
      </Rectangle>
    </Union>
  </ROI>
</OME>`))
	assert.NoError(t, err)

	transform := doc.ROIs[0].Union.Shapes[0].Transform
	assert.Equal(t, &AffineTransform{A00: 0, A10: 1, A01: -1, A11: 0, A02: 5, A12: 6}, transform)
}

func TestParseBadXML(t *testing.T) {
	_, err := Parse([]byte("<OME><ROI>"))
	assert.Error(t, err)
}
