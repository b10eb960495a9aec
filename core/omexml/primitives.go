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

// OME-XML schema layer: document structs, primitives and the closed
// enumerations, plus the metadata store/retrieve contracts that the
// conversion engine drives.
package omexml

// Color - packed RGBA colour as the schema stores it, one byte per channel
// with red in the most significant byte.
type Color int32

func (c Color) Red() uint8 {
	return uint8(uint32(c) >> 24 & 0xff)
}
func (c Color) Green() uint8 {
	return uint8(uint32(c) >> 16 & 0xff)
}
func (c Color) Blue() uint8 {
	return uint8(uint32(c) >> 8 & 0xff)
}
func (c Color) Alpha() uint8 {
	return uint8(uint32(c) & 0xff)
}

// Length - a scalar with a unit attribute pair in the schema.
type Length struct {
	Value float64
	Unit  string
}

// AffineTransform - a fully populated 2D affine transform. Unlike the
// server-side counterpart all six components are required: a partially
// populated source transform is never exported.
type AffineTransform struct {
	A00 float64 `xml:"A00,attr"`
	A10 float64 `xml:"A10,attr"`
	A01 float64 `xml:"A01,attr"`
	A11 float64 `xml:"A11,attr"`
	A02 float64 `xml:"A02,attr"`
	A12 float64 `xml:"A12,attr"`
}
