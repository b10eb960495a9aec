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

package roiModel

// ShapeType - tag for the closed shape variant. The tag value is the
// canonical schema element name, so no name normalisation is needed when
// reporting a shape's type.
type ShapeType string

const (
	// ShapeAny matches any shape kind in lookups.
	ShapeAny       ShapeType = ""
	ShapeRectangle ShapeType = "Rectangle"
	ShapeEllipse   ShapeType = "Ellipse"
	ShapePoint     ShapeType = "Point"
	ShapeLine      ShapeType = "Line"
	ShapePolyline  ShapeType = "Polyline"
	ShapePolygon   ShapeType = "Polygon"
	ShapeLabel     ShapeType = "Label"
)

// Length - a scalar with a unit, as stored server-side for font size and
// stroke width.
type Length struct {
	Value float64 `bson:"value" json:"value"`
	Unit  string  `bson:"unit" json:"unit"`
}

// AffineTransform - the six components of a 2D affine transform. Each is
// optional at the source; consumers must treat a partially populated
// transform as no transform at all.
type AffineTransform struct {
	A00 *float64 `bson:"a00,omitempty" json:"a00,omitempty"`
	A10 *float64 `bson:"a10,omitempty" json:"a10,omitempty"`
	A01 *float64 `bson:"a01,omitempty" json:"a01,omitempty"`
	A11 *float64 `bson:"a11,omitempty" json:"a11,omitempty"`
	A02 *float64 `bson:"a02,omitempty" json:"a02,omitempty"`
	A12 *float64 `bson:"a12,omitempty" json:"a12,omitempty"`
}

// Shape - one geometric primitive belonging to a ROI. Modelled as a single
// struct with a kind tag and optional fields (single-table style) rather
// than a type per kind: every kind shares the styling/plane fields and only
// a few geometry fields differ. Fields not applicable to the tagged kind
// are simply left nil.
type Shape struct {
	ID   int64     `bson:"_id,omitempty" json:"id"`
	Type ShapeType `bson:"type" json:"type"`

	// Shared styling fields. Enumerated values (fill rule, font family and
	// style, line markers) are stored as raw strings, parsing against the
	// schema enumerations happens on export.
	FillColor       *int32   `bson:"fillColor,omitempty" json:"fillColor,omitempty"`
	FillRule        *string  `bson:"fillRule,omitempty" json:"fillRule,omitempty"`
	StrokeColor     *int32   `bson:"strokeColor,omitempty" json:"strokeColor,omitempty"`
	StrokeWidth     *Length  `bson:"strokeWidth,omitempty" json:"strokeWidth,omitempty"`
	StrokeDashArray *string  `bson:"strokeDashArray,omitempty" json:"strokeDashArray,omitempty"`
	FontFamily      *string  `bson:"fontFamily,omitempty" json:"fontFamily,omitempty"`
	FontSize        *Length  `bson:"fontSize,omitempty" json:"fontSize,omitempty"`
	FontStyle       *string  `bson:"fontStyle,omitempty" json:"fontStyle,omitempty"`
	Locked          *bool    `bson:"locked,omitempty" json:"locked,omitempty"`
	Text            *string  `bson:"text,omitempty" json:"text,omitempty"`

	// Plane coordinates.
	TheC *int32 `bson:"theC,omitempty" json:"theC,omitempty"`
	TheT *int32 `bson:"theT,omitempty" json:"theT,omitempty"`
	TheZ *int32 `bson:"theZ,omitempty" json:"theZ,omitempty"`

	Transform *AffineTransform `bson:"transform,omitempty" json:"transform,omitempty"`

	// Geometry. Rectangle: X,Y,Width,Height. Ellipse: X,Y,RadiusX,RadiusY.
	// Point/Label: X,Y. Line: X1,Y1,X2,Y2 + markers. Polyline: Points +
	// markers. Polygon: Points.
	X           *float64 `bson:"x,omitempty" json:"x,omitempty"`
	Y           *float64 `bson:"y,omitempty" json:"y,omitempty"`
	Width       *float64 `bson:"width,omitempty" json:"width,omitempty"`
	Height      *float64 `bson:"height,omitempty" json:"height,omitempty"`
	RadiusX     *float64 `bson:"radiusX,omitempty" json:"radiusX,omitempty"`
	RadiusY     *float64 `bson:"radiusY,omitempty" json:"radiusY,omitempty"`
	X1          *float64 `bson:"x1,omitempty" json:"x1,omitempty"`
	Y1          *float64 `bson:"y1,omitempty" json:"y1,omitempty"`
	X2          *float64 `bson:"x2,omitempty" json:"x2,omitempty"`
	Y2          *float64 `bson:"y2,omitempty" json:"y2,omitempty"`
	Points      *string  `bson:"points,omitempty" json:"points,omitempty"`
	MarkerStart *string  `bson:"markerStart,omitempty" json:"markerStart,omitempty"`
	MarkerEnd   *string  `bson:"markerEnd,omitempty" json:"markerEnd,omitempty"`

	// AnnotationIDs is what gets persisted, Annotations is the hydrated
	// in-memory link list.
	AnnotationIDs []int64       `bson:"annotationIds,omitempty" json:"annotationIds,omitempty"`
	Annotations   []*Annotation `bson:"-" json:"-"`

	Details Details `bson:"details,omitempty" json:"details,omitempty"`
}

func (s *Shape) LSIDKind() (string, bool) {
	return "Shape", s.Type != ShapeAny
}
func (s *Shape) ObjectID() int64 {
	return s.ID
}
func (s *Shape) UpdateEventID() int64 {
	return s.Details.UpdateEventID
}

// LinkAnnotation - links an annotation to this shape.
func (s *Shape) LinkAnnotation(a *Annotation) {
	s.Annotations = append(s.Annotations, a)
}
