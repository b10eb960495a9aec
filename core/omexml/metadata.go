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

import "github.com/omero-tools/roibridge/core/roiModel"

// MetadataStore - the store role of the conversion engine. The import side
// implements this: the engine pushes every object it discovers in a
// document, then the back-references it collected, then the post-process
// hook.
type MetadataStore interface {
	// UpdateObject records an object under its LSID. Positional indexes
	// (eg "roiIndex", "shapeIndex") describe where the object sits in the
	// document's graph.
	UpdateObject(lsid string, object roiModel.Object, indexes map[string]int) error

	// UpdateReferences resolves the reference cache: target LSID to the
	// raw reference strings discovered for it.
	UpdateReferences(references map[string][]string) error

	// PostProcess runs after all objects and references are in.
	PostProcess() error
}

// MetadataRetrieve - the retrieve role of the conversion engine, shaped
// exactly like the schema: one accessor per (element, field), indexed by
// (roiIndex[, shapeIndex[, annotationRefIndex]]).
//
// Bounds contract for every implementation: out-of-range indexes yield nil,
// never a fault, EXCEPT the count accessors which yield -1 for an
// out-of-range roiIndex so that an absent count is distinguishable from an
// empty collection.
type MetadataRetrieve interface {
	ROICount() int
	ROIID(roiIndex int) *string
	ROIName(roiIndex int) *string
	ROIDescription(roiIndex int) *string
	ROIAnnotationRefCount(roiIndex int) int
	ROIAnnotationRef(roiIndex, annotationRefIndex int) *string

	ShapeCount(roiIndex int) int
	ShapeType(roiIndex, shapeIndex int) *string
	ShapeAnnotationRefCount(roiIndex, shapeIndex int) int

	RectangleID(roiIndex, shapeIndex int) *string
	RectangleAnnotationRef(roiIndex, shapeIndex, annotationRefIndex int) *string
	RectangleFillColor(roiIndex, shapeIndex int) *Color
	RectangleFillRule(roiIndex, shapeIndex int) *FillRule
	RectangleFontFamily(roiIndex, shapeIndex int) *FontFamily
	RectangleFontSize(roiIndex, shapeIndex int) *Length
	RectangleFontStyle(roiIndex, shapeIndex int) *FontStyle
	RectangleLocked(roiIndex, shapeIndex int) *bool
	RectangleStrokeColor(roiIndex, shapeIndex int) *Color
	RectangleStrokeDashArray(roiIndex, shapeIndex int) *string
	RectangleStrokeWidth(roiIndex, shapeIndex int) *Length
	RectangleTheC(roiIndex, shapeIndex int) *int32
	RectangleTheT(roiIndex, shapeIndex int) *int32
	RectangleTheZ(roiIndex, shapeIndex int) *int32
	RectangleTransform(roiIndex, shapeIndex int) *AffineTransform
	RectangleText(roiIndex, shapeIndex int) *string
	RectangleX(roiIndex, shapeIndex int) *float64
	RectangleY(roiIndex, shapeIndex int) *float64
	RectangleWidth(roiIndex, shapeIndex int) *float64
	RectangleHeight(roiIndex, shapeIndex int) *float64

	EllipseID(roiIndex, shapeIndex int) *string
	EllipseAnnotationRef(roiIndex, shapeIndex, annotationRefIndex int) *string
	EllipseFillColor(roiIndex, shapeIndex int) *Color
	EllipseFillRule(roiIndex, shapeIndex int) *FillRule
	EllipseFontFamily(roiIndex, shapeIndex int) *FontFamily
	EllipseFontSize(roiIndex, shapeIndex int) *Length
	EllipseFontStyle(roiIndex, shapeIndex int) *FontStyle
	EllipseLocked(roiIndex, shapeIndex int) *bool
	EllipseStrokeColor(roiIndex, shapeIndex int) *Color
	EllipseStrokeDashArray(roiIndex, shapeIndex int) *string
	EllipseStrokeWidth(roiIndex, shapeIndex int) *Length
	EllipseTheC(roiIndex, shapeIndex int) *int32
	EllipseTheT(roiIndex, shapeIndex int) *int32
	EllipseTheZ(roiIndex, shapeIndex int) *int32
	EllipseTransform(roiIndex, shapeIndex int) *AffineTransform
	EllipseText(roiIndex, shapeIndex int) *string
	EllipseX(roiIndex, shapeIndex int) *float64
	EllipseY(roiIndex, shapeIndex int) *float64
	EllipseRadiusX(roiIndex, shapeIndex int) *float64
	EllipseRadiusY(roiIndex, shapeIndex int) *float64

	PointID(roiIndex, shapeIndex int) *string
	PointAnnotationRef(roiIndex, shapeIndex, annotationRefIndex int) *string
	PointFillColor(roiIndex, shapeIndex int) *Color
	PointFillRule(roiIndex, shapeIndex int) *FillRule
	PointFontFamily(roiIndex, shapeIndex int) *FontFamily
	PointFontSize(roiIndex, shapeIndex int) *Length
	PointFontStyle(roiIndex, shapeIndex int) *FontStyle
	PointLocked(roiIndex, shapeIndex int) *bool
	PointStrokeColor(roiIndex, shapeIndex int) *Color
	PointStrokeDashArray(roiIndex, shapeIndex int) *string
	PointStrokeWidth(roiIndex, shapeIndex int) *Length
	PointTheC(roiIndex, shapeIndex int) *int32
	PointTheT(roiIndex, shapeIndex int) *int32
	PointTheZ(roiIndex, shapeIndex int) *int32
	PointTransform(roiIndex, shapeIndex int) *AffineTransform
	PointText(roiIndex, shapeIndex int) *string
	PointX(roiIndex, shapeIndex int) *float64
	PointY(roiIndex, shapeIndex int) *float64

	LineID(roiIndex, shapeIndex int) *string
	LineAnnotationRef(roiIndex, shapeIndex, annotationRefIndex int) *string
	LineFillColor(roiIndex, shapeIndex int) *Color
	LineFillRule(roiIndex, shapeIndex int) *FillRule
	LineFontFamily(roiIndex, shapeIndex int) *FontFamily
	LineFontSize(roiIndex, shapeIndex int) *Length
	LineFontStyle(roiIndex, shapeIndex int) *FontStyle
	LineLocked(roiIndex, shapeIndex int) *bool
	LineStrokeColor(roiIndex, shapeIndex int) *Color
	LineStrokeDashArray(roiIndex, shapeIndex int) *string
	LineStrokeWidth(roiIndex, shapeIndex int) *Length
	LineTheC(roiIndex, shapeIndex int) *int32
	LineTheT(roiIndex, shapeIndex int) *int32
	LineTheZ(roiIndex, shapeIndex int) *int32
	LineTransform(roiIndex, shapeIndex int) *AffineTransform
	LineText(roiIndex, shapeIndex int) *string
	LineX1(roiIndex, shapeIndex int) *float64
	LineY1(roiIndex, shapeIndex int) *float64
	LineX2(roiIndex, shapeIndex int) *float64
	LineY2(roiIndex, shapeIndex int) *float64
	LineMarkerStart(roiIndex, shapeIndex int) *Marker
	LineMarkerEnd(roiIndex, shapeIndex int) *Marker

	PolylineID(roiIndex, shapeIndex int) *string
	PolylineAnnotationRef(roiIndex, shapeIndex, annotationRefIndex int) *string
	PolylineFillColor(roiIndex, shapeIndex int) *Color
	PolylineFillRule(roiIndex, shapeIndex int) *FillRule
	PolylineFontFamily(roiIndex, shapeIndex int) *FontFamily
	PolylineFontSize(roiIndex, shapeIndex int) *Length
	PolylineFontStyle(roiIndex, shapeIndex int) *FontStyle
	PolylineLocked(roiIndex, shapeIndex int) *bool
	PolylineStrokeColor(roiIndex, shapeIndex int) *Color
	PolylineStrokeDashArray(roiIndex, shapeIndex int) *string
	PolylineStrokeWidth(roiIndex, shapeIndex int) *Length
	PolylineTheC(roiIndex, shapeIndex int) *int32
	PolylineTheT(roiIndex, shapeIndex int) *int32
	PolylineTheZ(roiIndex, shapeIndex int) *int32
	PolylineTransform(roiIndex, shapeIndex int) *AffineTransform
	PolylineText(roiIndex, shapeIndex int) *string
	PolylinePoints(roiIndex, shapeIndex int) *string
	PolylineMarkerStart(roiIndex, shapeIndex int) *Marker
	PolylineMarkerEnd(roiIndex, shapeIndex int) *Marker

	PolygonID(roiIndex, shapeIndex int) *string
	PolygonAnnotationRef(roiIndex, shapeIndex, annotationRefIndex int) *string
	PolygonFillColor(roiIndex, shapeIndex int) *Color
	PolygonFillRule(roiIndex, shapeIndex int) *FillRule
	PolygonFontFamily(roiIndex, shapeIndex int) *FontFamily
	PolygonFontSize(roiIndex, shapeIndex int) *Length
	PolygonFontStyle(roiIndex, shapeIndex int) *FontStyle
	PolygonLocked(roiIndex, shapeIndex int) *bool
	PolygonStrokeColor(roiIndex, shapeIndex int) *Color
	PolygonStrokeDashArray(roiIndex, shapeIndex int) *string
	PolygonStrokeWidth(roiIndex, shapeIndex int) *Length
	PolygonTheC(roiIndex, shapeIndex int) *int32
	PolygonTheT(roiIndex, shapeIndex int) *int32
	PolygonTheZ(roiIndex, shapeIndex int) *int32
	PolygonTransform(roiIndex, shapeIndex int) *AffineTransform
	PolygonText(roiIndex, shapeIndex int) *string
	PolygonPoints(roiIndex, shapeIndex int) *string

	LabelID(roiIndex, shapeIndex int) *string
	LabelAnnotationRef(roiIndex, shapeIndex, annotationRefIndex int) *string
	LabelFillColor(roiIndex, shapeIndex int) *Color
	LabelFillRule(roiIndex, shapeIndex int) *FillRule
	LabelFontFamily(roiIndex, shapeIndex int) *FontFamily
	LabelFontSize(roiIndex, shapeIndex int) *Length
	LabelFontStyle(roiIndex, shapeIndex int) *FontStyle
	LabelLocked(roiIndex, shapeIndex int) *bool
	LabelStrokeColor(roiIndex, shapeIndex int) *Color
	LabelStrokeDashArray(roiIndex, shapeIndex int) *string
	LabelStrokeWidth(roiIndex, shapeIndex int) *Length
	LabelTheC(roiIndex, shapeIndex int) *int32
	LabelTheT(roiIndex, shapeIndex int) *int32
	LabelTheZ(roiIndex, shapeIndex int) *int32
	LabelTransform(roiIndex, shapeIndex int) *AffineTransform
	LabelText(roiIndex, shapeIndex int) *string
	LabelX(roiIndex, shapeIndex int) *float64
	LabelY(roiIndex, shapeIndex int) *float64
}

// AnnotationRetrieve - retrieve role over the annotation pool, same bounds
// contract as MetadataRetrieve.
type AnnotationRetrieve interface {
	CommentAnnotationCount() int
	CommentAnnotationID(index int) *string
	CommentAnnotationNamespace(index int) *string
	CommentAnnotationDescription(index int) *string
	CommentAnnotationValue(index int) *string

	TagAnnotationCount() int
	TagAnnotationID(index int) *string
	TagAnnotationNamespace(index int) *string
	TagAnnotationDescription(index int) *string
	TagAnnotationValue(index int) *string
}
