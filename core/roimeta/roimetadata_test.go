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

package roimeta

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/omero-tools/roibridge/core/omexml"
	"github.com/omero-tools/roibridge/core/roiModel"
)

func testLSIDs(object roiModel.Object) (string, error) {
	kind, leaf := object.LSIDKind()
	if !leaf {
		return "", fmt.Errorf("no leaf kind")
	}
	return fmt.Sprintf("urn:test:%s:%v", kind, object.ObjectID()), nil
}

func f64(v float64) *float64 {
	return &v
}
func i32(v int32) *int32 {
	return &v
}
func str(v string) *string {
	return &v
}

func makeTestRois() []*roiModel.Roi {
	name := "vessel"
	locked := true
	rect := &roiModel.Shape{
		ID:              100,
		Type:            roiModel.ShapeRectangle,
		FillColor:       i32(-16776961),
		FillRule:        str("EvenOdd"),
		StrokeColor:     i32(255),
		StrokeWidth:     &roiModel.Length{Value: 2, Unit: "pixel"},
		StrokeDashArray: str("5 5"),
		FontFamily:      str("serif"),
		FontSize:        &roiModel.Length{Value: 12, Unit: "pt"},
		FontStyle:       str("Bold"),
		Locked:          &locked,
		Text:            str("region 1"),
		TheC:            i32(0),
		TheT:            i32(1),
		TheZ:            i32(2),
		Transform: &roiModel.AffineTransform{
			A00: f64(1), A10: f64(0), A01: f64(0), A11: f64(1), A02: f64(10), A12: f64(20),
		},
		X: f64(1.5), Y: f64(2.5), Width: f64(10), Height: f64(20),
		Annotations: []*roiModel.Annotation{
			{ID: 300, Kind: roiModel.AnnotationComment},
		},
	}
	polygon := &roiModel.Shape{
		ID:     101,
		Type:   roiModel.ShapePolygon,
		Points: str("0,0 10,0 10,10"),
		// Partial transform, must never reach the schema side
		Transform: &roiModel.AffineTransform{A00: f64(1)},
		// Not a member of the closed enumeration
		FillRule: str("Wobbly"),
	}
	return []*roiModel.Roi{
		{
			ID:   10,
			Name: &name,
			Shapes: []*roiModel.Shape{rect, polygon},
			Annotations: []*roiModel.Annotation{
				{ID: 300, Kind: roiModel.AnnotationComment},
			},
		},
		{ID: 11},
	}
}

func TestROIAccessors(t *testing.T) {
	m := NewROIMetadata(testLSIDs, makeTestRois())

	assert.Equal(t, 2, m.ROICount())
	assert.Equal(t, "urn:test:Roi:10", *m.ROIID(0))
	assert.Equal(t, "vessel", *m.ROIName(0))
	assert.Nil(t, m.ROIDescription(0))
	assert.Equal(t, 1, m.ROIAnnotationRefCount(0))
	assert.Equal(t, "urn:test:Annotation:300", *m.ROIAnnotationRef(0, 0))
	assert.Nil(t, m.ROIName(1))
	assert.Equal(t, 0, m.ShapeCount(1))
}

func TestBoundsContract(t *testing.T) {
	m := NewROIMetadata(testLSIDs, makeTestRois())

	// Count accessors distinguish absent from empty
	assert.Equal(t, -1, m.ROIAnnotationRefCount(5))
	assert.Equal(t, -1, m.ShapeCount(-1))
	assert.Equal(t, -1, m.ShapeAnnotationRefCount(0, 9))

	// Everything else is nil out of range
	assert.Nil(t, m.ROIID(2))
	assert.Nil(t, m.ROIID(-1))
	assert.Nil(t, m.ShapeType(0, 2))
	assert.Nil(t, m.RectangleX(0, -1))
	assert.Nil(t, m.RectangleAnnotationRef(0, 0, 1))
	assert.Nil(t, m.RectangleAnnotationRef(0, 0, -1))
}

func TestKindFiltering(t *testing.T) {
	m := NewROIMetadata(testLSIDs, makeTestRois())

	assert.Equal(t, "Rectangle", *m.ShapeType(0, 0))
	assert.Equal(t, "Polygon", *m.ShapeType(0, 1))

	// Right kind at the right slot
	assert.Equal(t, 1.5, *m.RectangleX(0, 0))
	assert.Equal(t, "0,0 10,0 10,10", *m.PolygonPoints(0, 1))

	// Wrong kind at the slot is simply absent
	assert.Nil(t, m.EllipseX(0, 0))
	assert.Nil(t, m.PolygonPoints(0, 0))
	assert.Nil(t, m.RectangleX(0, 1))
	assert.Nil(t, m.RectangleID(0, 1))
}

func TestSharedShapeAccessors(t *testing.T) {
	m := NewROIMetadata(testLSIDs, makeTestRois())

	assert.Equal(t, "urn:test:Shape:100", *m.RectangleID(0, 0))
	assert.Equal(t, omexml.Color(-16776961), *m.RectangleFillColor(0, 0))
	assert.Equal(t, omexml.FillRuleEvenOdd, *m.RectangleFillRule(0, 0))
	assert.Equal(t, omexml.FontFamilySerif, *m.RectangleFontFamily(0, 0))
	assert.Equal(t, omexml.Length{Value: 12, Unit: "pt"}, *m.RectangleFontSize(0, 0))
	assert.Equal(t, omexml.FontStyleBold, *m.RectangleFontStyle(0, 0))
	assert.True(t, *m.RectangleLocked(0, 0))
	assert.Equal(t, omexml.Color(255), *m.RectangleStrokeColor(0, 0))
	assert.Equal(t, "5 5", *m.RectangleStrokeDashArray(0, 0))
	assert.Equal(t, omexml.Length{Value: 2, Unit: "pixel"}, *m.RectangleStrokeWidth(0, 0))
	assert.Equal(t, int32(0), *m.RectangleTheC(0, 0))
	assert.Equal(t, int32(1), *m.RectangleTheT(0, 0))
	assert.Equal(t, int32(2), *m.RectangleTheZ(0, 0))
	assert.Equal(t, "region 1", *m.RectangleText(0, 0))
	assert.Equal(t, 1, m.ShapeAnnotationRefCount(0, 0))
	assert.Equal(t, "urn:test:Annotation:300", *m.RectangleAnnotationRef(0, 0, 0))
}

func TestTransformRequiresAllSixComponents(t *testing.T) {
	m := NewROIMetadata(testLSIDs, makeTestRois())

	transform := m.RectangleTransform(0, 0)
	assert.Equal(t, &omexml.AffineTransform{A00: 1, A10: 0, A01: 0, A11: 1, A02: 10, A12: 20}, transform)

	// Partial transform is no transform
	assert.Nil(t, m.PolygonTransform(0, 1))
}

func TestUnparseableEnumIsAbsent(t *testing.T) {
	m := NewROIMetadata(testLSIDs, makeTestRois())

	assert.Nil(t, m.PolygonFillRule(0, 1))
	assert.Nil(t, m.PolygonFontStyle(0, 1))
}

func TestAccessorsCopyValues(t *testing.T) {
	rois := makeTestRois()
	m := NewROIMetadata(testLSIDs, rois)

	x := m.RectangleX(0, 0)
	*x = 99
	assert.Equal(t, 1.5, *rois[0].Shapes[0].X)
}
