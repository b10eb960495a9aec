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

// Schema-shaped read adapters over already-loaded remote objects. These
// implement the retrieve role of the conversion engine so that remote ROIs
// and annotations can be walked back out to OME-XML.
package roimeta

import (
	"github.com/omero-tools/roibridge/core/omexml"
	"github.com/omero-tools/roibridge/core/roiModel"
)

// LSIDFunc - computes the symbolic identity string of a persisted object.
// Supplied by the session facade, which knows the server's LSID template.
type LSIDFunc func(roiModel.Object) (string, error)

// ROIMetadata - a read-only, schema-shaped view over a list of ROIs.
//
// Every accessor follows the same bounds contract: an out-of-range index
// (negative or past the end of the relevant collection) yields nil, except
// the count accessors which yield -1 for an out-of-range roiIndex. Shared
// shape accessors are kind-filtered: asking for, say, the fill colour of an
// Ellipse at a position that actually holds a Rectangle yields nil.
type ROIMetadata struct {
	lsids LSIDFunc
	rois  []*roiModel.Roi
}

func NewROIMetadata(lsids LSIDFunc, rois []*roiModel.Roi) *ROIMetadata {
	return &ROIMetadata{lsids: lsids, rois: rois}
}

func (m *ROIMetadata) roi(roiIndex int) *roiModel.Roi {
	if roiIndex < 0 || roiIndex >= len(m.rois) {
		return nil
	}
	return m.rois[roiIndex]
}

func (m *ROIMetadata) shape(roiIndex, shapeIndex int, kind roiModel.ShapeType) *roiModel.Shape {
	if roiIndex < 0 || shapeIndex < 0 || roiIndex >= len(m.rois) {
		return nil
	}
	shapes := m.rois[roiIndex].Shapes
	if shapeIndex >= len(shapes) {
		return nil
	}
	shape := shapes[shapeIndex]
	if kind != roiModel.ShapeAny && shape.Type != kind {
		return nil
	}
	return shape
}

func (m *ROIMetadata) lsidOf(object roiModel.Object) *string {
	lsid, err := m.lsids(object)
	if err != nil {
		return nil
	}
	return &lsid
}

func (m *ROIMetadata) ROICount() int {
	return len(m.rois)
}

func (m *ROIMetadata) ROIID(roiIndex int) *string {
	roi := m.roi(roiIndex)
	if roi == nil {
		return nil
	}
	return m.lsidOf(roi)
}

func (m *ROIMetadata) ROIName(roiIndex int) *string {
	roi := m.roi(roiIndex)
	if roi == nil {
		return nil
	}
	return copyStr(roi.Name)
}

func (m *ROIMetadata) ROIDescription(roiIndex int) *string {
	roi := m.roi(roiIndex)
	if roi == nil {
		return nil
	}
	return copyStr(roi.Description)
}

func (m *ROIMetadata) ROIAnnotationRefCount(roiIndex int) int {
	roi := m.roi(roiIndex)
	if roi == nil {
		return -1
	}
	return len(roi.Annotations)
}

func (m *ROIMetadata) ROIAnnotationRef(roiIndex, annotationRefIndex int) *string {
	roi := m.roi(roiIndex)
	if roi == nil || annotationRefIndex < 0 || annotationRefIndex >= len(roi.Annotations) {
		return nil
	}
	return m.lsidOf(roi.Annotations[annotationRefIndex])
}

func (m *ROIMetadata) ShapeCount(roiIndex int) int {
	roi := m.roi(roiIndex)
	if roi == nil {
		return -1
	}
	return len(roi.Shapes)
}

// ShapeType - the canonical schema tag of the shape at the given position.
// The model's kind tag already is the schema tag, so this never reports an
// implementation type name.
func (m *ROIMetadata) ShapeType(roiIndex, shapeIndex int) *string {
	shape := m.shape(roiIndex, shapeIndex, roiModel.ShapeAny)
	if shape == nil || shape.Type == roiModel.ShapeAny {
		return nil
	}
	name := string(shape.Type)
	return &name
}

func (m *ROIMetadata) ShapeAnnotationRefCount(roiIndex, shapeIndex int) int {
	shape := m.shape(roiIndex, shapeIndex, roiModel.ShapeAny)
	if shape == nil {
		return -1
	}
	return len(shape.Annotations)
}

// Kind-filtered shared accessors. Each per-kind method in shapes.go is a
// one-line delegation to one of these.

func (m *ROIMetadata) shapeID(roiIndex, shapeIndex int, kind roiModel.ShapeType) *string {
	shape := m.shape(roiIndex, shapeIndex, kind)
	if shape == nil {
		return nil
	}
	return m.lsidOf(shape)
}

func (m *ROIMetadata) shapeAnnotationRef(roiIndex, shapeIndex, annotationRefIndex int, kind roiModel.ShapeType) *string {
	if annotationRefIndex < 0 {
		return nil
	}
	shape := m.shape(roiIndex, shapeIndex, kind)
	if shape == nil || annotationRefIndex >= len(shape.Annotations) {
		return nil
	}
	return m.lsidOf(shape.Annotations[annotationRefIndex])
}

func (m *ROIMetadata) shapeFillColor(roiIndex, shapeIndex int, kind roiModel.ShapeType) *omexml.Color {
	shape := m.shape(roiIndex, shapeIndex, kind)
	if shape == nil {
		return nil
	}
	return toColor(shape.FillColor)
}

func (m *ROIMetadata) shapeFillRule(roiIndex, shapeIndex int, kind roiModel.ShapeType) *omexml.FillRule {
	shape := m.shape(roiIndex, shapeIndex, kind)
	if shape == nil || shape.FillRule == nil {
		return nil
	}
	rule, err := omexml.FillRuleFromString(*shape.FillRule)
	if err != nil {
		return nil
	}
	return &rule
}

func (m *ROIMetadata) shapeFontFamily(roiIndex, shapeIndex int, kind roiModel.ShapeType) *omexml.FontFamily {
	shape := m.shape(roiIndex, shapeIndex, kind)
	if shape == nil || shape.FontFamily == nil {
		return nil
	}
	family, err := omexml.FontFamilyFromString(*shape.FontFamily)
	if err != nil {
		return nil
	}
	return &family
}

func (m *ROIMetadata) shapeFontSize(roiIndex, shapeIndex int, kind roiModel.ShapeType) *omexml.Length {
	shape := m.shape(roiIndex, shapeIndex, kind)
	if shape == nil {
		return nil
	}
	return toLength(shape.FontSize)
}

func (m *ROIMetadata) shapeFontStyle(roiIndex, shapeIndex int, kind roiModel.ShapeType) *omexml.FontStyle {
	shape := m.shape(roiIndex, shapeIndex, kind)
	if shape == nil || shape.FontStyle == nil {
		return nil
	}
	style, err := omexml.FontStyleFromString(*shape.FontStyle)
	if err != nil {
		return nil
	}
	return &style
}

func (m *ROIMetadata) shapeLocked(roiIndex, shapeIndex int, kind roiModel.ShapeType) *bool {
	shape := m.shape(roiIndex, shapeIndex, kind)
	if shape == nil {
		return nil
	}
	return copyBool(shape.Locked)
}

func (m *ROIMetadata) shapeStrokeColor(roiIndex, shapeIndex int, kind roiModel.ShapeType) *omexml.Color {
	shape := m.shape(roiIndex, shapeIndex, kind)
	if shape == nil {
		return nil
	}
	return toColor(shape.StrokeColor)
}

func (m *ROIMetadata) shapeStrokeDashArray(roiIndex, shapeIndex int, kind roiModel.ShapeType) *string {
	shape := m.shape(roiIndex, shapeIndex, kind)
	if shape == nil {
		return nil
	}
	return copyStr(shape.StrokeDashArray)
}

func (m *ROIMetadata) shapeStrokeWidth(roiIndex, shapeIndex int, kind roiModel.ShapeType) *omexml.Length {
	shape := m.shape(roiIndex, shapeIndex, kind)
	if shape == nil {
		return nil
	}
	return toLength(shape.StrokeWidth)
}

func (m *ROIMetadata) shapeTheC(roiIndex, shapeIndex int, kind roiModel.ShapeType) *int32 {
	shape := m.shape(roiIndex, shapeIndex, kind)
	if shape == nil {
		return nil
	}
	return copyInt32(shape.TheC)
}

func (m *ROIMetadata) shapeTheT(roiIndex, shapeIndex int, kind roiModel.ShapeType) *int32 {
	shape := m.shape(roiIndex, shapeIndex, kind)
	if shape == nil {
		return nil
	}
	return copyInt32(shape.TheT)
}

func (m *ROIMetadata) shapeTheZ(roiIndex, shapeIndex int, kind roiModel.ShapeType) *int32 {
	shape := m.shape(roiIndex, shapeIndex, kind)
	if shape == nil {
		return nil
	}
	return copyInt32(shape.TheZ)
}

func (m *ROIMetadata) shapeTransform(roiIndex, shapeIndex int, kind roiModel.ShapeType) *omexml.AffineTransform {
	shape := m.shape(roiIndex, shapeIndex, kind)
	if shape == nil {
		return nil
	}
	return toTransform(shape.Transform)
}

func (m *ROIMetadata) shapeText(roiIndex, shapeIndex int, kind roiModel.ShapeType) *string {
	shape := m.shape(roiIndex, shapeIndex, kind)
	if shape == nil {
		return nil
	}
	return copyStr(shape.Text)
}

func (m *ROIMetadata) shapeMarker(marker *string) *omexml.Marker {
	if marker == nil {
		return nil
	}
	parsed, err := omexml.MarkerFromString(*marker)
	if err != nil {
		return nil
	}
	return &parsed
}

// Conversion helpers. The adapter is a read-only view so scalar values are
// copied out, never aliased to the model.

func toColor(value *int32) *omexml.Color {
	if value == nil {
		return nil
	}
	color := omexml.Color(*value)
	return &color
}

func toLength(length *roiModel.Length) *omexml.Length {
	if length == nil {
		return nil
	}
	return &omexml.Length{Value: length.Value, Unit: length.Unit}
}

// toTransform - exported transform requires all six components on the
// source. A partial transform is treated as no transform, output is never
// partially populated.
func toTransform(transform *roiModel.AffineTransform) *omexml.AffineTransform {
	if transform == nil ||
		transform.A00 == nil ||
		transform.A01 == nil ||
		transform.A02 == nil ||
		transform.A10 == nil ||
		transform.A11 == nil ||
		transform.A12 == nil {
		return nil
	}
	return &omexml.AffineTransform{
		A00: *transform.A00,
		A10: *transform.A10,
		A01: *transform.A01,
		A11: *transform.A11,
		A02: *transform.A02,
		A12: *transform.A12,
	}
}

func copyStr(value *string) *string {
	if value == nil {
		return nil
	}
	copied := *value
	return &copied
}

func copyBool(value *bool) *bool {
	if value == nil {
		return nil
	}
	copied := *value
	return &copied
}

func copyInt32(value *int32) *int32 {
	if value == nil {
		return nil
	}
	copied := *value
	return &copied
}

func copyFloat64(value *float64) *float64 {
	if value == nil {
		return nil
	}
	copied := *value
	return &copied
}
