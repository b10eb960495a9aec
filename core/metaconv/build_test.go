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

package metaconv

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/omero-tools/roibridge/core/omexml"
	"github.com/omero-tools/roibridge/core/roiModel"
	"github.com/omero-tools/roibridge/core/roimeta"
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

func TestBuildDocument(t *testing.T) {
	annotation := &roiModel.Annotation{ID: 30, Kind: roiModel.AnnotationComment, TextValue: str("a note")}
	tag := &roiModel.Annotation{ID: 31, Kind: roiModel.AnnotationTag, TextValue: str("a tag")}
	name := "vessel"
	rois := []*roiModel.Roi{
		{
			ID:   1,
			Name: &name,
			Shapes: []*roiModel.Shape{
				{
					ID: 10, Type: roiModel.ShapeRectangle,
					X: f64(1), Y: f64(2), Width: f64(3), Height: f64(4),
					FillColor: i32(-1), FillRule: str("NonZero"),
					StrokeWidth: &roiModel.Length{Value: 2, Unit: "pixel"},
					TheZ:        i32(5),
					Transform: &roiModel.AffineTransform{
						A00: f64(0), A10: f64(1), A01: f64(-1), A11: f64(0), A02: f64(0), A12: f64(0),
					},
					Annotations: []*roiModel.Annotation{annotation},
				},
				{
					ID: 11, Type: roiModel.ShapeLine,
					X1: f64(0), Y1: f64(0), X2: f64(10), Y2: f64(10),
					MarkerEnd: str("Arrow"),
				},
			},
			Annotations: []*roiModel.Annotation{annotation},
		},
		{
			ID: 2,
			Shapes: []*roiModel.Shape{
				{ID: 12, Type: roiModel.ShapePolygon, Points: str("0,0 1,1 1,0")},
			},
		},
	}

	doc := BuildDocument(
		roimeta.NewROIMetadata(testLSIDs, rois),
		roimeta.NewAnnotationMetadata(testLSIDs, []*roiModel.Annotation{annotation, tag}),
	)

	assert.Len(t, doc.ROIs, 2)
	roi := doc.ROIs[0]
	assert.Equal(t, "urn:test:Roi:1", roi.ID)
	assert.Equal(t, "vessel", *roi.Name)
	assert.Equal(t, []omexml.AnnotationRef{{ID: "urn:test:Annotation:30"}}, roi.AnnotationRefs)

	assert.Len(t, roi.Union.Shapes, 2)
	rect := roi.Union.Shapes[0]
	assert.Equal(t, "Rectangle", rect.Kind)
	assert.Equal(t, "urn:test:Shape:10", rect.ID)
	assert.Equal(t, 1.0, *rect.X)
	assert.Equal(t, 4.0, *rect.Height)
	assert.Equal(t, int32(-1), *rect.FillColor)
	assert.Equal(t, "NonZero", *rect.FillRule)
	assert.Equal(t, 2.0, *rect.StrokeWidth)
	assert.Equal(t, "pixel", *rect.StrokeWidthUnit)
	assert.Equal(t, int32(5), *rect.TheZ)
	assert.Equal(t, &omexml.AffineTransform{A00: 0, A10: 1, A01: -1, A11: 0, A02: 0, A12: 0}, rect.Transform)
	assert.Equal(t, []omexml.AnnotationRef{{ID: "urn:test:Annotation:30"}}, rect.AnnotationRefs)

	line := roi.Union.Shapes[1]
	assert.Equal(t, "Line", line.Kind)
	assert.Equal(t, 10.0, *line.X2)
	assert.Nil(t, line.MarkerStart)
	assert.Equal(t, "Arrow", *line.MarkerEnd)

	polygon := doc.ROIs[1].Union.Shapes[0]
	assert.Equal(t, "Polygon", polygon.Kind)
	assert.Equal(t, "0,0 1,1 1,0", *polygon.Points)

	assert.Equal(t, 1, len(doc.StructuredAnnotations.Comments))
	assert.Equal(t, 1, len(doc.StructuredAnnotations.Tags))
	assert.Equal(t, "urn:test:Annotation:30", doc.StructuredAnnotations.Comments[0].ID)
	assert.Equal(t, "a note", *doc.StructuredAnnotations.Comments[0].Value)
}

// A document built from remote objects must survive serialisation and come
// back with the same shape order and values.
func TestBuildMarshalParseRoundTrip(t *testing.T) {
	rois := []*roiModel.Roi{
		{
			ID: 1,
			Shapes: []*roiModel.Shape{
				{ID: 10, Type: roiModel.ShapeRectangle, X: f64(1), Y: f64(2), Width: f64(3), Height: f64(4)},
				{ID: 11, Type: roiModel.ShapeLabel, X: f64(5), Y: f64(6), Text: str("a label")},
				{ID: 12, Type: roiModel.ShapeRectangle, X: f64(7), Y: f64(8), Width: f64(9), Height: f64(10)},
			},
		},
	}

	doc := BuildDocument(
		roimeta.NewROIMetadata(testLSIDs, rois),
		roimeta.NewAnnotationMetadata(testLSIDs, nil),
	)

	data, err := omexml.Marshal(doc)
	assert.NoError(t, err)

	parsed, err := omexml.Parse(data)
	assert.NoError(t, err)

	assert.Len(t, parsed.ROIs, 1)
	kinds := []string{}
	for _, shape := range parsed.ROIs[0].Union.Shapes {
		kinds = append(kinds, shape.Kind)
	}
	assert.Equal(t, []string{"Rectangle", "Label", "Rectangle"}, kinds)
	assert.Equal(t, 5.0, *parsed.ROIs[0].Union.Shapes[1].X)
	assert.Equal(t, "a label", *parsed.ROIs[0].Union.Shapes[1].Text)
	assert.Nil(t, parsed.StructuredAnnotations)
}
