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
	"github.com/omero-tools/roibridge/core/omexml"
	"github.com/omero-tools/roibridge/core/roiModel"
)

// Per-kind accessor surface. Wide but mechanically uniform: every method
// delegates to the kind-filtered shared accessors in roimetadata.go, so a
// lookup that lands on a shape of a different kind yields nil.

// Rectangle
func (m *ROIMetadata) RectangleID(roiIndex, shapeIndex int) *string {
	return m.shapeID(roiIndex, shapeIndex, roiModel.ShapeRectangle)
}

func (m *ROIMetadata) RectangleAnnotationRef(roiIndex, shapeIndex, annotationRefIndex int) *string {
	return m.shapeAnnotationRef(roiIndex, shapeIndex, annotationRefIndex, roiModel.ShapeRectangle)
}

func (m *ROIMetadata) RectangleFillColor(roiIndex, shapeIndex int) *omexml.Color {
	return m.shapeFillColor(roiIndex, shapeIndex, roiModel.ShapeRectangle)
}

func (m *ROIMetadata) RectangleFillRule(roiIndex, shapeIndex int) *omexml.FillRule {
	return m.shapeFillRule(roiIndex, shapeIndex, roiModel.ShapeRectangle)
}

func (m *ROIMetadata) RectangleFontFamily(roiIndex, shapeIndex int) *omexml.FontFamily {
	return m.shapeFontFamily(roiIndex, shapeIndex, roiModel.ShapeRectangle)
}

func (m *ROIMetadata) RectangleFontSize(roiIndex, shapeIndex int) *omexml.Length {
	return m.shapeFontSize(roiIndex, shapeIndex, roiModel.ShapeRectangle)
}

func (m *ROIMetadata) RectangleFontStyle(roiIndex, shapeIndex int) *omexml.FontStyle {
	return m.shapeFontStyle(roiIndex, shapeIndex, roiModel.ShapeRectangle)
}

func (m *ROIMetadata) RectangleLocked(roiIndex, shapeIndex int) *bool {
	return m.shapeLocked(roiIndex, shapeIndex, roiModel.ShapeRectangle)
}

func (m *ROIMetadata) RectangleStrokeColor(roiIndex, shapeIndex int) *omexml.Color {
	return m.shapeStrokeColor(roiIndex, shapeIndex, roiModel.ShapeRectangle)
}

func (m *ROIMetadata) RectangleStrokeDashArray(roiIndex, shapeIndex int) *string {
	return m.shapeStrokeDashArray(roiIndex, shapeIndex, roiModel.ShapeRectangle)
}

func (m *ROIMetadata) RectangleStrokeWidth(roiIndex, shapeIndex int) *omexml.Length {
	return m.shapeStrokeWidth(roiIndex, shapeIndex, roiModel.ShapeRectangle)
}

func (m *ROIMetadata) RectangleTheC(roiIndex, shapeIndex int) *int32 {
	return m.shapeTheC(roiIndex, shapeIndex, roiModel.ShapeRectangle)
}

func (m *ROIMetadata) RectangleTheT(roiIndex, shapeIndex int) *int32 {
	return m.shapeTheT(roiIndex, shapeIndex, roiModel.ShapeRectangle)
}

func (m *ROIMetadata) RectangleTheZ(roiIndex, shapeIndex int) *int32 {
	return m.shapeTheZ(roiIndex, shapeIndex, roiModel.ShapeRectangle)
}

func (m *ROIMetadata) RectangleTransform(roiIndex, shapeIndex int) *omexml.AffineTransform {
	return m.shapeTransform(roiIndex, shapeIndex, roiModel.ShapeRectangle)
}

func (m *ROIMetadata) RectangleText(roiIndex, shapeIndex int) *string {
	return m.shapeText(roiIndex, shapeIndex, roiModel.ShapeRectangle)
}

func (m *ROIMetadata) RectangleX(roiIndex, shapeIndex int) *float64 {
	shape := m.shape(roiIndex, shapeIndex, roiModel.ShapeRectangle)
	if shape == nil {
		return nil
	}
	return copyFloat64(shape.X)
}

func (m *ROIMetadata) RectangleY(roiIndex, shapeIndex int) *float64 {
	shape := m.shape(roiIndex, shapeIndex, roiModel.ShapeRectangle)
	if shape == nil {
		return nil
	}
	return copyFloat64(shape.Y)
}

func (m *ROIMetadata) RectangleWidth(roiIndex, shapeIndex int) *float64 {
	shape := m.shape(roiIndex, shapeIndex, roiModel.ShapeRectangle)
	if shape == nil {
		return nil
	}
	return copyFloat64(shape.Width)
}

func (m *ROIMetadata) RectangleHeight(roiIndex, shapeIndex int) *float64 {
	shape := m.shape(roiIndex, shapeIndex, roiModel.ShapeRectangle)
	if shape == nil {
		return nil
	}
	return copyFloat64(shape.Height)
}

// Ellipse
func (m *ROIMetadata) EllipseID(roiIndex, shapeIndex int) *string {
	return m.shapeID(roiIndex, shapeIndex, roiModel.ShapeEllipse)
}

func (m *ROIMetadata) EllipseAnnotationRef(roiIndex, shapeIndex, annotationRefIndex int) *string {
	return m.shapeAnnotationRef(roiIndex, shapeIndex, annotationRefIndex, roiModel.ShapeEllipse)
}

func (m *ROIMetadata) EllipseFillColor(roiIndex, shapeIndex int) *omexml.Color {
	return m.shapeFillColor(roiIndex, shapeIndex, roiModel.ShapeEllipse)
}

func (m *ROIMetadata) EllipseFillRule(roiIndex, shapeIndex int) *omexml.FillRule {
	return m.shapeFillRule(roiIndex, shapeIndex, roiModel.ShapeEllipse)
}

func (m *ROIMetadata) EllipseFontFamily(roiIndex, shapeIndex int) *omexml.FontFamily {
	return m.shapeFontFamily(roiIndex, shapeIndex, roiModel.ShapeEllipse)
}

func (m *ROIMetadata) EllipseFontSize(roiIndex, shapeIndex int) *omexml.Length {
	return m.shapeFontSize(roiIndex, shapeIndex, roiModel.ShapeEllipse)
}

func (m *ROIMetadata) EllipseFontStyle(roiIndex, shapeIndex int) *omexml.FontStyle {
	return m.shapeFontStyle(roiIndex, shapeIndex, roiModel.ShapeEllipse)
}

func (m *ROIMetadata) EllipseLocked(roiIndex, shapeIndex int) *bool {
	return m.shapeLocked(roiIndex, shapeIndex, roiModel.ShapeEllipse)
}

func (m *ROIMetadata) EllipseStrokeColor(roiIndex, shapeIndex int) *omexml.Color {
	return m.shapeStrokeColor(roiIndex, shapeIndex, roiModel.ShapeEllipse)
}

func (m *ROIMetadata) EllipseStrokeDashArray(roiIndex, shapeIndex int) *string {
	return m.shapeStrokeDashArray(roiIndex, shapeIndex, roiModel.ShapeEllipse)
}

func (m *ROIMetadata) EllipseStrokeWidth(roiIndex, shapeIndex int) *omexml.Length {
	return m.shapeStrokeWidth(roiIndex, shapeIndex, roiModel.ShapeEllipse)
}

func (m *ROIMetadata) EllipseTheC(roiIndex, shapeIndex int) *int32 {
	return m.shapeTheC(roiIndex, shapeIndex, roiModel.ShapeEllipse)
}

func (m *ROIMetadata) EllipseTheT(roiIndex, shapeIndex int) *int32 {
	return m.shapeTheT(roiIndex, shapeIndex, roiModel.ShapeEllipse)
}

func (m *ROIMetadata) EllipseTheZ(roiIndex, shapeIndex int) *int32 {
	return m.shapeTheZ(roiIndex, shapeIndex, roiModel.ShapeEllipse)
}

func (m *ROIMetadata) EllipseTransform(roiIndex, shapeIndex int) *omexml.AffineTransform {
	return m.shapeTransform(roiIndex, shapeIndex, roiModel.ShapeEllipse)
}

func (m *ROIMetadata) EllipseText(roiIndex, shapeIndex int) *string {
	return m.shapeText(roiIndex, shapeIndex, roiModel.ShapeEllipse)
}

func (m *ROIMetadata) EllipseX(roiIndex, shapeIndex int) *float64 {
	shape := m.shape(roiIndex, shapeIndex, roiModel.ShapeEllipse)
	if shape == nil {
		return nil
	}
	return copyFloat64(shape.X)
}

func (m *ROIMetadata) EllipseY(roiIndex, shapeIndex int) *float64 {
	shape := m.shape(roiIndex, shapeIndex, roiModel.ShapeEllipse)
	if shape == nil {
		return nil
	}
	return copyFloat64(shape.Y)
}

func (m *ROIMetadata) EllipseRadiusX(roiIndex, shapeIndex int) *float64 {
	shape := m.shape(roiIndex, shapeIndex, roiModel.ShapeEllipse)
	if shape == nil {
		return nil
	}
	return copyFloat64(shape.RadiusX)
}

func (m *ROIMetadata) EllipseRadiusY(roiIndex, shapeIndex int) *float64 {
	shape := m.shape(roiIndex, shapeIndex, roiModel.ShapeEllipse)
	if shape == nil {
		return nil
	}
	return copyFloat64(shape.RadiusY)
}

// Point
func (m *ROIMetadata) PointID(roiIndex, shapeIndex int) *string {
	return m.shapeID(roiIndex, shapeIndex, roiModel.ShapePoint)
}

func (m *ROIMetadata) PointAnnotationRef(roiIndex, shapeIndex, annotationRefIndex int) *string {
	return m.shapeAnnotationRef(roiIndex, shapeIndex, annotationRefIndex, roiModel.ShapePoint)
}

func (m *ROIMetadata) PointFillColor(roiIndex, shapeIndex int) *omexml.Color {
	return m.shapeFillColor(roiIndex, shapeIndex, roiModel.ShapePoint)
}

func (m *ROIMetadata) PointFillRule(roiIndex, shapeIndex int) *omexml.FillRule {
	return m.shapeFillRule(roiIndex, shapeIndex, roiModel.ShapePoint)
}

func (m *ROIMetadata) PointFontFamily(roiIndex, shapeIndex int) *omexml.FontFamily {
	return m.shapeFontFamily(roiIndex, shapeIndex, roiModel.ShapePoint)
}

func (m *ROIMetadata) PointFontSize(roiIndex, shapeIndex int) *omexml.Length {
	return m.shapeFontSize(roiIndex, shapeIndex, roiModel.ShapePoint)
}

func (m *ROIMetadata) PointFontStyle(roiIndex, shapeIndex int) *omexml.FontStyle {
	return m.shapeFontStyle(roiIndex, shapeIndex, roiModel.ShapePoint)
}

func (m *ROIMetadata) PointLocked(roiIndex, shapeIndex int) *bool {
	return m.shapeLocked(roiIndex, shapeIndex, roiModel.ShapePoint)
}

func (m *ROIMetadata) PointStrokeColor(roiIndex, shapeIndex int) *omexml.Color {
	return m.shapeStrokeColor(roiIndex, shapeIndex, roiModel.ShapePoint)
}

func (m *ROIMetadata) PointStrokeDashArray(roiIndex, shapeIndex int) *string {
	return m.shapeStrokeDashArray(roiIndex, shapeIndex, roiModel.ShapePoint)
}

func (m *ROIMetadata) PointStrokeWidth(roiIndex, shapeIndex int) *omexml.Length {
	return m.shapeStrokeWidth(roiIndex, shapeIndex, roiModel.ShapePoint)
}

func (m *ROIMetadata) PointTheC(roiIndex, shapeIndex int) *int32 {
	return m.shapeTheC(roiIndex, shapeIndex, roiModel.ShapePoint)
}

func (m *ROIMetadata) PointTheT(roiIndex, shapeIndex int) *int32 {
	return m.shapeTheT(roiIndex, shapeIndex, roiModel.ShapePoint)
}

func (m *ROIMetadata) PointTheZ(roiIndex, shapeIndex int) *int32 {
	return m.shapeTheZ(roiIndex, shapeIndex, roiModel.ShapePoint)
}

func (m *ROIMetadata) PointTransform(roiIndex, shapeIndex int) *omexml.AffineTransform {
	return m.shapeTransform(roiIndex, shapeIndex, roiModel.ShapePoint)
}

func (m *ROIMetadata) PointText(roiIndex, shapeIndex int) *string {
	return m.shapeText(roiIndex, shapeIndex, roiModel.ShapePoint)
}

func (m *ROIMetadata) PointX(roiIndex, shapeIndex int) *float64 {
	shape := m.shape(roiIndex, shapeIndex, roiModel.ShapePoint)
	if shape == nil {
		return nil
	}
	return copyFloat64(shape.X)
}

func (m *ROIMetadata) PointY(roiIndex, shapeIndex int) *float64 {
	shape := m.shape(roiIndex, shapeIndex, roiModel.ShapePoint)
	if shape == nil {
		return nil
	}
	return copyFloat64(shape.Y)
}

// Line
func (m *ROIMetadata) LineID(roiIndex, shapeIndex int) *string {
	return m.shapeID(roiIndex, shapeIndex, roiModel.ShapeLine)
}

func (m *ROIMetadata) LineAnnotationRef(roiIndex, shapeIndex, annotationRefIndex int) *string {
	return m.shapeAnnotationRef(roiIndex, shapeIndex, annotationRefIndex, roiModel.ShapeLine)
}

func (m *ROIMetadata) LineFillColor(roiIndex, shapeIndex int) *omexml.Color {
	return m.shapeFillColor(roiIndex, shapeIndex, roiModel.ShapeLine)
}

func (m *ROIMetadata) LineFillRule(roiIndex, shapeIndex int) *omexml.FillRule {
	return m.shapeFillRule(roiIndex, shapeIndex, roiModel.ShapeLine)
}

func (m *ROIMetadata) LineFontFamily(roiIndex, shapeIndex int) *omexml.FontFamily {
	return m.shapeFontFamily(roiIndex, shapeIndex, roiModel.ShapeLine)
}

func (m *ROIMetadata) LineFontSize(roiIndex, shapeIndex int) *omexml.Length {
	return m.shapeFontSize(roiIndex, shapeIndex, roiModel.ShapeLine)
}

func (m *ROIMetadata) LineFontStyle(roiIndex, shapeIndex int) *omexml.FontStyle {
	return m.shapeFontStyle(roiIndex, shapeIndex, roiModel.ShapeLine)
}

func (m *ROIMetadata) LineLocked(roiIndex, shapeIndex int) *bool {
	return m.shapeLocked(roiIndex, shapeIndex, roiModel.ShapeLine)
}

func (m *ROIMetadata) LineStrokeColor(roiIndex, shapeIndex int) *omexml.Color {
	return m.shapeStrokeColor(roiIndex, shapeIndex, roiModel.ShapeLine)
}

func (m *ROIMetadata) LineStrokeDashArray(roiIndex, shapeIndex int) *string {
	return m.shapeStrokeDashArray(roiIndex, shapeIndex, roiModel.ShapeLine)
}

func (m *ROIMetadata) LineStrokeWidth(roiIndex, shapeIndex int) *omexml.Length {
	return m.shapeStrokeWidth(roiIndex, shapeIndex, roiModel.ShapeLine)
}

func (m *ROIMetadata) LineTheC(roiIndex, shapeIndex int) *int32 {
	return m.shapeTheC(roiIndex, shapeIndex, roiModel.ShapeLine)
}

func (m *ROIMetadata) LineTheT(roiIndex, shapeIndex int) *int32 {
	return m.shapeTheT(roiIndex, shapeIndex, roiModel.ShapeLine)
}

func (m *ROIMetadata) LineTheZ(roiIndex, shapeIndex int) *int32 {
	return m.shapeTheZ(roiIndex, shapeIndex, roiModel.ShapeLine)
}

func (m *ROIMetadata) LineTransform(roiIndex, shapeIndex int) *omexml.AffineTransform {
	return m.shapeTransform(roiIndex, shapeIndex, roiModel.ShapeLine)
}

func (m *ROIMetadata) LineText(roiIndex, shapeIndex int) *string {
	return m.shapeText(roiIndex, shapeIndex, roiModel.ShapeLine)
}

func (m *ROIMetadata) LineX1(roiIndex, shapeIndex int) *float64 {
	shape := m.shape(roiIndex, shapeIndex, roiModel.ShapeLine)
	if shape == nil {
		return nil
	}
	return copyFloat64(shape.X1)
}

func (m *ROIMetadata) LineY1(roiIndex, shapeIndex int) *float64 {
	shape := m.shape(roiIndex, shapeIndex, roiModel.ShapeLine)
	if shape == nil {
		return nil
	}
	return copyFloat64(shape.Y1)
}

func (m *ROIMetadata) LineX2(roiIndex, shapeIndex int) *float64 {
	shape := m.shape(roiIndex, shapeIndex, roiModel.ShapeLine)
	if shape == nil {
		return nil
	}
	return copyFloat64(shape.X2)
}

func (m *ROIMetadata) LineY2(roiIndex, shapeIndex int) *float64 {
	shape := m.shape(roiIndex, shapeIndex, roiModel.ShapeLine)
	if shape == nil {
		return nil
	}
	return copyFloat64(shape.Y2)
}

func (m *ROIMetadata) LineMarkerStart(roiIndex, shapeIndex int) *omexml.Marker {
	shape := m.shape(roiIndex, shapeIndex, roiModel.ShapeLine)
	if shape == nil {
		return nil
	}
	return m.shapeMarker(shape.MarkerStart)
}

func (m *ROIMetadata) LineMarkerEnd(roiIndex, shapeIndex int) *omexml.Marker {
	shape := m.shape(roiIndex, shapeIndex, roiModel.ShapeLine)
	if shape == nil {
		return nil
	}
	return m.shapeMarker(shape.MarkerEnd)
}

// Polyline
func (m *ROIMetadata) PolylineID(roiIndex, shapeIndex int) *string {
	return m.shapeID(roiIndex, shapeIndex, roiModel.ShapePolyline)
}

func (m *ROIMetadata) PolylineAnnotationRef(roiIndex, shapeIndex, annotationRefIndex int) *string {
	return m.shapeAnnotationRef(roiIndex, shapeIndex, annotationRefIndex, roiModel.ShapePolyline)
}

func (m *ROIMetadata) PolylineFillColor(roiIndex, shapeIndex int) *omexml.Color {
	return m.shapeFillColor(roiIndex, shapeIndex, roiModel.ShapePolyline)
}

func (m *ROIMetadata) PolylineFillRule(roiIndex, shapeIndex int) *omexml.FillRule {
	return m.shapeFillRule(roiIndex, shapeIndex, roiModel.ShapePolyline)
}

func (m *ROIMetadata) PolylineFontFamily(roiIndex, shapeIndex int) *omexml.FontFamily {
	return m.shapeFontFamily(roiIndex, shapeIndex, roiModel.ShapePolyline)
}

func (m *ROIMetadata) PolylineFontSize(roiIndex, shapeIndex int) *omexml.Length {
	return m.shapeFontSize(roiIndex, shapeIndex, roiModel.ShapePolyline)
}

func (m *ROIMetadata) PolylineFontStyle(roiIndex, shapeIndex int) *omexml.FontStyle {
	return m.shapeFontStyle(roiIndex, shapeIndex, roiModel.ShapePolyline)
}

func (m *ROIMetadata) PolylineLocked(roiIndex, shapeIndex int) *bool {
	return m.shapeLocked(roiIndex, shapeIndex, roiModel.ShapePolyline)
}

func (m *ROIMetadata) PolylineStrokeColor(roiIndex, shapeIndex int) *omexml.Color {
	return m.shapeStrokeColor(roiIndex, shapeIndex, roiModel.ShapePolyline)
}

func (m *ROIMetadata) PolylineStrokeDashArray(roiIndex, shapeIndex int) *string {
	return m.shapeStrokeDashArray(roiIndex, shapeIndex, roiModel.ShapePolyline)
}

func (m *ROIMetadata) PolylineStrokeWidth(roiIndex, shapeIndex int) *omexml.Length {
	return m.shapeStrokeWidth(roiIndex, shapeIndex, roiModel.ShapePolyline)
}

func (m *ROIMetadata) PolylineTheC(roiIndex, shapeIndex int) *int32 {
	return m.shapeTheC(roiIndex, shapeIndex, roiModel.ShapePolyline)
}

func (m *ROIMetadata) PolylineTheT(roiIndex, shapeIndex int) *int32 {
	return m.shapeTheT(roiIndex, shapeIndex, roiModel.ShapePolyline)
}

func (m *ROIMetadata) PolylineTheZ(roiIndex, shapeIndex int) *int32 {
	return m.shapeTheZ(roiIndex, shapeIndex, roiModel.ShapePolyline)
}

func (m *ROIMetadata) PolylineTransform(roiIndex, shapeIndex int) *omexml.AffineTransform {
	return m.shapeTransform(roiIndex, shapeIndex, roiModel.ShapePolyline)
}

func (m *ROIMetadata) PolylineText(roiIndex, shapeIndex int) *string {
	return m.shapeText(roiIndex, shapeIndex, roiModel.ShapePolyline)
}

func (m *ROIMetadata) PolylinePoints(roiIndex, shapeIndex int) *string {
	shape := m.shape(roiIndex, shapeIndex, roiModel.ShapePolyline)
	if shape == nil {
		return nil
	}
	return copyStr(shape.Points)
}

func (m *ROIMetadata) PolylineMarkerStart(roiIndex, shapeIndex int) *omexml.Marker {
	shape := m.shape(roiIndex, shapeIndex, roiModel.ShapePolyline)
	if shape == nil {
		return nil
	}
	return m.shapeMarker(shape.MarkerStart)
}

func (m *ROIMetadata) PolylineMarkerEnd(roiIndex, shapeIndex int) *omexml.Marker {
	shape := m.shape(roiIndex, shapeIndex, roiModel.ShapePolyline)
	if shape == nil {
		return nil
	}
	return m.shapeMarker(shape.MarkerEnd)
}

// Polygon
func (m *ROIMetadata) PolygonID(roiIndex, shapeIndex int) *string {
	return m.shapeID(roiIndex, shapeIndex, roiModel.ShapePolygon)
}

func (m *ROIMetadata) PolygonAnnotationRef(roiIndex, shapeIndex, annotationRefIndex int) *string {
	return m.shapeAnnotationRef(roiIndex, shapeIndex, annotationRefIndex, roiModel.ShapePolygon)
}

func (m *ROIMetadata) PolygonFillColor(roiIndex, shapeIndex int) *omexml.Color {
	return m.shapeFillColor(roiIndex, shapeIndex, roiModel.ShapePolygon)
}

func (m *ROIMetadata) PolygonFillRule(roiIndex, shapeIndex int) *omexml.FillRule {
	return m.shapeFillRule(roiIndex, shapeIndex, roiModel.ShapePolygon)
}

func (m *ROIMetadata) PolygonFontFamily(roiIndex, shapeIndex int) *omexml.FontFamily {
	return m.shapeFontFamily(roiIndex, shapeIndex, roiModel.ShapePolygon)
}

func (m *ROIMetadata) PolygonFontSize(roiIndex, shapeIndex int) *omexml.Length {
	return m.shapeFontSize(roiIndex, shapeIndex, roiModel.ShapePolygon)
}

func (m *ROIMetadata) PolygonFontStyle(roiIndex, shapeIndex int) *omexml.FontStyle {
	return m.shapeFontStyle(roiIndex, shapeIndex, roiModel.ShapePolygon)
}

func (m *ROIMetadata) PolygonLocked(roiIndex, shapeIndex int) *bool {
	return m.shapeLocked(roiIndex, shapeIndex, roiModel.ShapePolygon)
}

func (m *ROIMetadata) PolygonStrokeColor(roiIndex, shapeIndex int) *omexml.Color {
	return m.shapeStrokeColor(roiIndex, shapeIndex, roiModel.ShapePolygon)
}

func (m *ROIMetadata) PolygonStrokeDashArray(roiIndex, shapeIndex int) *string {
	return m.shapeStrokeDashArray(roiIndex, shapeIndex, roiModel.ShapePolygon)
}

func (m *ROIMetadata) PolygonStrokeWidth(roiIndex, shapeIndex int) *omexml.Length {
	return m.shapeStrokeWidth(roiIndex, shapeIndex, roiModel.ShapePolygon)
}

func (m *ROIMetadata) PolygonTheC(roiIndex, shapeIndex int) *int32 {
	return m.shapeTheC(roiIndex, shapeIndex, roiModel.ShapePolygon)
}

func (m *ROIMetadata) PolygonTheT(roiIndex, shapeIndex int) *int32 {
	return m.shapeTheT(roiIndex, shapeIndex, roiModel.ShapePolygon)
}

func (m *ROIMetadata) PolygonTheZ(roiIndex, shapeIndex int) *int32 {
	return m.shapeTheZ(roiIndex, shapeIndex, roiModel.ShapePolygon)
}

func (m *ROIMetadata) PolygonTransform(roiIndex, shapeIndex int) *omexml.AffineTransform {
	return m.shapeTransform(roiIndex, shapeIndex, roiModel.ShapePolygon)
}

func (m *ROIMetadata) PolygonText(roiIndex, shapeIndex int) *string {
	return m.shapeText(roiIndex, shapeIndex, roiModel.ShapePolygon)
}

func (m *ROIMetadata) PolygonPoints(roiIndex, shapeIndex int) *string {
	shape := m.shape(roiIndex, shapeIndex, roiModel.ShapePolygon)
	if shape == nil {
		return nil
	}
	return copyStr(shape.Points)
}

// Label
func (m *ROIMetadata) LabelID(roiIndex, shapeIndex int) *string {
	return m.shapeID(roiIndex, shapeIndex, roiModel.ShapeLabel)
}

func (m *ROIMetadata) LabelAnnotationRef(roiIndex, shapeIndex, annotationRefIndex int) *string {
	return m.shapeAnnotationRef(roiIndex, shapeIndex, annotationRefIndex, roiModel.ShapeLabel)
}

func (m *ROIMetadata) LabelFillColor(roiIndex, shapeIndex int) *omexml.Color {
	return m.shapeFillColor(roiIndex, shapeIndex, roiModel.ShapeLabel)
}

func (m *ROIMetadata) LabelFillRule(roiIndex, shapeIndex int) *omexml.FillRule {
	return m.shapeFillRule(roiIndex, shapeIndex, roiModel.ShapeLabel)
}

func (m *ROIMetadata) LabelFontFamily(roiIndex, shapeIndex int) *omexml.FontFamily {
	return m.shapeFontFamily(roiIndex, shapeIndex, roiModel.ShapeLabel)
}

func (m *ROIMetadata) LabelFontSize(roiIndex, shapeIndex int) *omexml.Length {
	return m.shapeFontSize(roiIndex, shapeIndex, roiModel.ShapeLabel)
}

func (m *ROIMetadata) LabelFontStyle(roiIndex, shapeIndex int) *omexml.FontStyle {
	return m.shapeFontStyle(roiIndex, shapeIndex, roiModel.ShapeLabel)
}

func (m *ROIMetadata) LabelLocked(roiIndex, shapeIndex int) *bool {
	return m.shapeLocked(roiIndex, shapeIndex, roiModel.ShapeLabel)
}

func (m *ROIMetadata) LabelStrokeColor(roiIndex, shapeIndex int) *omexml.Color {
	return m.shapeStrokeColor(roiIndex, shapeIndex, roiModel.ShapeLabel)
}

func (m *ROIMetadata) LabelStrokeDashArray(roiIndex, shapeIndex int) *string {
	return m.shapeStrokeDashArray(roiIndex, shapeIndex, roiModel.ShapeLabel)
}

func (m *ROIMetadata) LabelStrokeWidth(roiIndex, shapeIndex int) *omexml.Length {
	return m.shapeStrokeWidth(roiIndex, shapeIndex, roiModel.ShapeLabel)
}

func (m *ROIMetadata) LabelTheC(roiIndex, shapeIndex int) *int32 {
	return m.shapeTheC(roiIndex, shapeIndex, roiModel.ShapeLabel)
}

func (m *ROIMetadata) LabelTheT(roiIndex, shapeIndex int) *int32 {
	return m.shapeTheT(roiIndex, shapeIndex, roiModel.ShapeLabel)
}

func (m *ROIMetadata) LabelTheZ(roiIndex, shapeIndex int) *int32 {
	return m.shapeTheZ(roiIndex, shapeIndex, roiModel.ShapeLabel)
}

func (m *ROIMetadata) LabelTransform(roiIndex, shapeIndex int) *omexml.AffineTransform {
	return m.shapeTransform(roiIndex, shapeIndex, roiModel.ShapeLabel)
}

func (m *ROIMetadata) LabelText(roiIndex, shapeIndex int) *string {
	return m.shapeText(roiIndex, shapeIndex, roiModel.ShapeLabel)
}

func (m *ROIMetadata) LabelX(roiIndex, shapeIndex int) *float64 {
	shape := m.shape(roiIndex, shapeIndex, roiModel.ShapeLabel)
	if shape == nil {
		return nil
	}
	return copyFloat64(shape.X)
}

func (m *ROIMetadata) LabelY(roiIndex, shapeIndex int) *float64 {
	shape := m.shape(roiIndex, shapeIndex, roiModel.ShapeLabel)
	if shape == nil {
		return nil
	}
	return copyFloat64(shape.Y)
}
