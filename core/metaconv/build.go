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
	"github.com/omero-tools/roibridge/core/omexml"
)

// BuildDocument - drives the retrieve-role accessor surfaces to rebuild an
// OME document from already-loaded remote objects. Shapes whose type is not
// recognised are left out of the output; everything else follows the
// adapters' absent-is-nil contract, so missing fields simply do not appear
// in the document.
func BuildDocument(rois omexml.MetadataRetrieve, annotations omexml.AnnotationRetrieve) *omexml.OME {
	doc := &omexml.OME{XMLNS: omexml.SchemaNamespace}

	for roiIndex := 0; roiIndex < rois.ROICount(); roiIndex++ {
		roi := omexml.ROI{}
		if id := rois.ROIID(roiIndex); id != nil {
			roi.ID = *id
		}
		roi.Name = rois.ROIName(roiIndex)
		roi.Description = rois.ROIDescription(roiIndex)

		for refIndex := 0; refIndex < rois.ROIAnnotationRefCount(roiIndex); refIndex++ {
			if ref := rois.ROIAnnotationRef(roiIndex, refIndex); ref != nil {
				roi.AnnotationRefs = append(roi.AnnotationRefs, omexml.AnnotationRef{ID: *ref})
			}
		}

		for shapeIndex := 0; shapeIndex < rois.ShapeCount(roiIndex); shapeIndex++ {
			shapeType := rois.ShapeType(roiIndex, shapeIndex)
			if shapeType == nil {
				continue
			}
			var el *omexml.ShapeElement
			switch *shapeType {
			case "Rectangle":
				el = buildRectangle(rois, roiIndex, shapeIndex)
			case "Ellipse":
				el = buildEllipse(rois, roiIndex, shapeIndex)
			case "Point":
				el = buildPoint(rois, roiIndex, shapeIndex)
			case "Line":
				el = buildLine(rois, roiIndex, shapeIndex)
			case "Polyline":
				el = buildPolyline(rois, roiIndex, shapeIndex)
			case "Polygon":
				el = buildPolygon(rois, roiIndex, shapeIndex)
			case "Label":
				el = buildLabel(rois, roiIndex, shapeIndex)
			}
			if el != nil {
				roi.Union.Shapes = append(roi.Union.Shapes, *el)
			}
		}

		doc.ROIs = append(doc.ROIs, roi)
	}

	sa := &omexml.StructuredAnnotations{}
	for index := 0; index < annotations.CommentAnnotationCount(); index++ {
		comment := omexml.CommentAnnotation{}
		if id := annotations.CommentAnnotationID(index); id != nil {
			comment.ID = *id
		}
		comment.Namespace = annotations.CommentAnnotationNamespace(index)
		comment.Description = annotations.CommentAnnotationDescription(index)
		comment.Value = annotations.CommentAnnotationValue(index)
		sa.Comments = append(sa.Comments, comment)
	}
	for index := 0; index < annotations.TagAnnotationCount(); index++ {
		tag := omexml.TagAnnotation{}
		if id := annotations.TagAnnotationID(index); id != nil {
			tag.ID = *id
		}
		tag.Namespace = annotations.TagAnnotationNamespace(index)
		tag.Description = annotations.TagAnnotationDescription(index)
		tag.Value = annotations.TagAnnotationValue(index)
		sa.Tags = append(sa.Tags, tag)
	}
	if len(sa.Comments) > 0 || len(sa.Tags) > 0 {
		doc.StructuredAnnotations = sa
	}

	return doc
}

func colorValue(color *omexml.Color) *int32 {
	if color == nil {
		return nil
	}
	value := int32(*color)
	return &value
}

func fillRuleValue(rule *omexml.FillRule) *string {
	if rule == nil {
		return nil
	}
	value := string(*rule)
	return &value
}

func fontFamilyValue(family *omexml.FontFamily) *string {
	if family == nil {
		return nil
	}
	value := string(*family)
	return &value
}

func fontStyleValue(style *omexml.FontStyle) *string {
	if style == nil {
		return nil
	}
	value := string(*style)
	return &value
}

func markerValue(marker *omexml.Marker) *string {
	if marker == nil {
		return nil
	}
	value := string(*marker)
	return &value
}

func buildRectangle(rois omexml.MetadataRetrieve, roiIndex, shapeIndex int) *omexml.ShapeElement {
	el := &omexml.ShapeElement{Kind: "Rectangle"}
	if id := rois.RectangleID(roiIndex, shapeIndex); id != nil {
		el.ID = *id
	}
	el.FillColor = colorValue(rois.RectangleFillColor(roiIndex, shapeIndex))
	el.FillRule = fillRuleValue(rois.RectangleFillRule(roiIndex, shapeIndex))
	el.FontFamily = fontFamilyValue(rois.RectangleFontFamily(roiIndex, shapeIndex))
	if size := rois.RectangleFontSize(roiIndex, shapeIndex); size != nil {
		el.FontSize = &size.Value
		el.FontSizeUnit = &size.Unit
	}
	el.FontStyle = fontStyleValue(rois.RectangleFontStyle(roiIndex, shapeIndex))
	el.Locked = rois.RectangleLocked(roiIndex, shapeIndex)
	el.StrokeColor = colorValue(rois.RectangleStrokeColor(roiIndex, shapeIndex))
	el.StrokeDashArray = rois.RectangleStrokeDashArray(roiIndex, shapeIndex)
	if width := rois.RectangleStrokeWidth(roiIndex, shapeIndex); width != nil {
		el.StrokeWidth = &width.Value
		el.StrokeWidthUnit = &width.Unit
	}
	el.TheC = rois.RectangleTheC(roiIndex, shapeIndex)
	el.TheT = rois.RectangleTheT(roiIndex, shapeIndex)
	el.TheZ = rois.RectangleTheZ(roiIndex, shapeIndex)
	el.Transform = rois.RectangleTransform(roiIndex, shapeIndex)
	el.Text = rois.RectangleText(roiIndex, shapeIndex)
	for refIndex := 0; refIndex < rois.ShapeAnnotationRefCount(roiIndex, shapeIndex); refIndex++ {
		if ref := rois.RectangleAnnotationRef(roiIndex, shapeIndex, refIndex); ref != nil {
			el.AnnotationRefs = append(el.AnnotationRefs, omexml.AnnotationRef{ID: *ref})
		}
	}
	el.X = rois.RectangleX(roiIndex, shapeIndex)
	el.Y = rois.RectangleY(roiIndex, shapeIndex)
	el.Width = rois.RectangleWidth(roiIndex, shapeIndex)
	el.Height = rois.RectangleHeight(roiIndex, shapeIndex)
	return el
}

func buildEllipse(rois omexml.MetadataRetrieve, roiIndex, shapeIndex int) *omexml.ShapeElement {
	el := &omexml.ShapeElement{Kind: "Ellipse"}
	if id := rois.EllipseID(roiIndex, shapeIndex); id != nil {
		el.ID = *id
	}
	el.FillColor = colorValue(rois.EllipseFillColor(roiIndex, shapeIndex))
	el.FillRule = fillRuleValue(rois.EllipseFillRule(roiIndex, shapeIndex))
	el.FontFamily = fontFamilyValue(rois.EllipseFontFamily(roiIndex, shapeIndex))
	if size := rois.EllipseFontSize(roiIndex, shapeIndex); size != nil {
		el.FontSize = &size.Value
		el.FontSizeUnit = &size.Unit
	}
	el.FontStyle = fontStyleValue(rois.EllipseFontStyle(roiIndex, shapeIndex))
	el.Locked = rois.EllipseLocked(roiIndex, shapeIndex)
	el.StrokeColor = colorValue(rois.EllipseStrokeColor(roiIndex, shapeIndex))
	el.StrokeDashArray = rois.EllipseStrokeDashArray(roiIndex, shapeIndex)
	if width := rois.EllipseStrokeWidth(roiIndex, shapeIndex); width != nil {
		el.StrokeWidth = &width.Value
		el.StrokeWidthUnit = &width.Unit
	}
	el.TheC = rois.EllipseTheC(roiIndex, shapeIndex)
	el.TheT = rois.EllipseTheT(roiIndex, shapeIndex)
	el.TheZ = rois.EllipseTheZ(roiIndex, shapeIndex)
	el.Transform = rois.EllipseTransform(roiIndex, shapeIndex)
	el.Text = rois.EllipseText(roiIndex, shapeIndex)
	for refIndex := 0; refIndex < rois.ShapeAnnotationRefCount(roiIndex, shapeIndex); refIndex++ {
		if ref := rois.EllipseAnnotationRef(roiIndex, shapeIndex, refIndex); ref != nil {
			el.AnnotationRefs = append(el.AnnotationRefs, omexml.AnnotationRef{ID: *ref})
		}
	}
	el.X = rois.EllipseX(roiIndex, shapeIndex)
	el.Y = rois.EllipseY(roiIndex, shapeIndex)
	el.RadiusX = rois.EllipseRadiusX(roiIndex, shapeIndex)
	el.RadiusY = rois.EllipseRadiusY(roiIndex, shapeIndex)
	return el
}

func buildPoint(rois omexml.MetadataRetrieve, roiIndex, shapeIndex int) *omexml.ShapeElement {
	el := &omexml.ShapeElement{Kind: "Point"}
	if id := rois.PointID(roiIndex, shapeIndex); id != nil {
		el.ID = *id
	}
	el.FillColor = colorValue(rois.PointFillColor(roiIndex, shapeIndex))
	el.FillRule = fillRuleValue(rois.PointFillRule(roiIndex, shapeIndex))
	el.FontFamily = fontFamilyValue(rois.PointFontFamily(roiIndex, shapeIndex))
	if size := rois.PointFontSize(roiIndex, shapeIndex); size != nil {
		el.FontSize = &size.Value
		el.FontSizeUnit = &size.Unit
	}
	el.FontStyle = fontStyleValue(rois.PointFontStyle(roiIndex, shapeIndex))
	el.Locked = rois.PointLocked(roiIndex, shapeIndex)
	el.StrokeColor = colorValue(rois.PointStrokeColor(roiIndex, shapeIndex))
	el.StrokeDashArray = rois.PointStrokeDashArray(roiIndex, shapeIndex)
	if width := rois.PointStrokeWidth(roiIndex, shapeIndex); width != nil {
		el.StrokeWidth = &width.Value
		el.StrokeWidthUnit = &width.Unit
	}
	el.TheC = rois.PointTheC(roiIndex, shapeIndex)
	el.TheT = rois.PointTheT(roiIndex, shapeIndex)
	el.TheZ = rois.PointTheZ(roiIndex, shapeIndex)
	el.Transform = rois.PointTransform(roiIndex, shapeIndex)
	el.Text = rois.PointText(roiIndex, shapeIndex)
	for refIndex := 0; refIndex < rois.ShapeAnnotationRefCount(roiIndex, shapeIndex); refIndex++ {
		if ref := rois.PointAnnotationRef(roiIndex, shapeIndex, refIndex); ref != nil {
			el.AnnotationRefs = append(el.AnnotationRefs, omexml.AnnotationRef{ID: *ref})
		}
	}
	el.X = rois.PointX(roiIndex, shapeIndex)
	el.Y = rois.PointY(roiIndex, shapeIndex)
	return el
}

func buildLine(rois omexml.MetadataRetrieve, roiIndex, shapeIndex int) *omexml.ShapeElement {
	el := &omexml.ShapeElement{Kind: "Line"}
	if id := rois.LineID(roiIndex, shapeIndex); id != nil {
		el.ID = *id
	}
	el.FillColor = colorValue(rois.LineFillColor(roiIndex, shapeIndex))
	el.FillRule = fillRuleValue(rois.LineFillRule(roiIndex, shapeIndex))
	el.FontFamily = fontFamilyValue(rois.LineFontFamily(roiIndex, shapeIndex))
	if size := rois.LineFontSize(roiIndex, shapeIndex); size != nil {
		el.FontSize = &size.Value
		el.FontSizeUnit = &size.Unit
	}
	el.FontStyle = fontStyleValue(rois.LineFontStyle(roiIndex, shapeIndex))
	el.Locked = rois.LineLocked(roiIndex, shapeIndex)
	el.StrokeColor = colorValue(rois.LineStrokeColor(roiIndex, shapeIndex))
	el.StrokeDashArray = rois.LineStrokeDashArray(roiIndex, shapeIndex)
	if width := rois.LineStrokeWidth(roiIndex, shapeIndex); width != nil {
		el.StrokeWidth = &width.Value
		el.StrokeWidthUnit = &width.Unit
	}
	el.TheC = rois.LineTheC(roiIndex, shapeIndex)
	el.TheT = rois.LineTheT(roiIndex, shapeIndex)
	el.TheZ = rois.LineTheZ(roiIndex, shapeIndex)
	el.Transform = rois.LineTransform(roiIndex, shapeIndex)
	el.Text = rois.LineText(roiIndex, shapeIndex)
	for refIndex := 0; refIndex < rois.ShapeAnnotationRefCount(roiIndex, shapeIndex); refIndex++ {
		if ref := rois.LineAnnotationRef(roiIndex, shapeIndex, refIndex); ref != nil {
			el.AnnotationRefs = append(el.AnnotationRefs, omexml.AnnotationRef{ID: *ref})
		}
	}
	el.X1 = rois.LineX1(roiIndex, shapeIndex)
	el.Y1 = rois.LineY1(roiIndex, shapeIndex)
	el.X2 = rois.LineX2(roiIndex, shapeIndex)
	el.Y2 = rois.LineY2(roiIndex, shapeIndex)
	el.MarkerStart = markerValue(rois.LineMarkerStart(roiIndex, shapeIndex))
	el.MarkerEnd = markerValue(rois.LineMarkerEnd(roiIndex, shapeIndex))
	return el
}

func buildPolyline(rois omexml.MetadataRetrieve, roiIndex, shapeIndex int) *omexml.ShapeElement {
	el := &omexml.ShapeElement{Kind: "Polyline"}
	if id := rois.PolylineID(roiIndex, shapeIndex); id != nil {
		el.ID = *id
	}
	el.FillColor = colorValue(rois.PolylineFillColor(roiIndex, shapeIndex))
	el.FillRule = fillRuleValue(rois.PolylineFillRule(roiIndex, shapeIndex))
	el.FontFamily = fontFamilyValue(rois.PolylineFontFamily(roiIndex, shapeIndex))
	if size := rois.PolylineFontSize(roiIndex, shapeIndex); size != nil {
		el.FontSize = &size.Value
		el.FontSizeUnit = &size.Unit
	}
	el.FontStyle = fontStyleValue(rois.PolylineFontStyle(roiIndex, shapeIndex))
	el.Locked = rois.PolylineLocked(roiIndex, shapeIndex)
	el.StrokeColor = colorValue(rois.PolylineStrokeColor(roiIndex, shapeIndex))
	el.StrokeDashArray = rois.PolylineStrokeDashArray(roiIndex, shapeIndex)
	if width := rois.PolylineStrokeWidth(roiIndex, shapeIndex); width != nil {
		el.StrokeWidth = &width.Value
		el.StrokeWidthUnit = &width.Unit
	}
	el.TheC = rois.PolylineTheC(roiIndex, shapeIndex)
	el.TheT = rois.PolylineTheT(roiIndex, shapeIndex)
	el.TheZ = rois.PolylineTheZ(roiIndex, shapeIndex)
	el.Transform = rois.PolylineTransform(roiIndex, shapeIndex)
	el.Text = rois.PolylineText(roiIndex, shapeIndex)
	for refIndex := 0; refIndex < rois.ShapeAnnotationRefCount(roiIndex, shapeIndex); refIndex++ {
		if ref := rois.PolylineAnnotationRef(roiIndex, shapeIndex, refIndex); ref != nil {
			el.AnnotationRefs = append(el.AnnotationRefs, omexml.AnnotationRef{ID: *ref})
		}
	}
	el.Points = rois.PolylinePoints(roiIndex, shapeIndex)
	el.MarkerStart = markerValue(rois.PolylineMarkerStart(roiIndex, shapeIndex))
	el.MarkerEnd = markerValue(rois.PolylineMarkerEnd(roiIndex, shapeIndex))
	return el
}

func buildPolygon(rois omexml.MetadataRetrieve, roiIndex, shapeIndex int) *omexml.ShapeElement {
	el := &omexml.ShapeElement{Kind: "Polygon"}
	if id := rois.PolygonID(roiIndex, shapeIndex); id != nil {
		el.ID = *id
	}
	el.FillColor = colorValue(rois.PolygonFillColor(roiIndex, shapeIndex))
	el.FillRule = fillRuleValue(rois.PolygonFillRule(roiIndex, shapeIndex))
	el.FontFamily = fontFamilyValue(rois.PolygonFontFamily(roiIndex, shapeIndex))
	if size := rois.PolygonFontSize(roiIndex, shapeIndex); size != nil {
		el.FontSize = &size.Value
		el.FontSizeUnit = &size.Unit
	}
	el.FontStyle = fontStyleValue(rois.PolygonFontStyle(roiIndex, shapeIndex))
	el.Locked = rois.PolygonLocked(roiIndex, shapeIndex)
	el.StrokeColor = colorValue(rois.PolygonStrokeColor(roiIndex, shapeIndex))
	el.StrokeDashArray = rois.PolygonStrokeDashArray(roiIndex, shapeIndex)
	if width := rois.PolygonStrokeWidth(roiIndex, shapeIndex); width != nil {
		el.StrokeWidth = &width.Value
		el.StrokeWidthUnit = &width.Unit
	}
	el.TheC = rois.PolygonTheC(roiIndex, shapeIndex)
	el.TheT = rois.PolygonTheT(roiIndex, shapeIndex)
	el.TheZ = rois.PolygonTheZ(roiIndex, shapeIndex)
	el.Transform = rois.PolygonTransform(roiIndex, shapeIndex)
	el.Text = rois.PolygonText(roiIndex, shapeIndex)
	for refIndex := 0; refIndex < rois.ShapeAnnotationRefCount(roiIndex, shapeIndex); refIndex++ {
		if ref := rois.PolygonAnnotationRef(roiIndex, shapeIndex, refIndex); ref != nil {
			el.AnnotationRefs = append(el.AnnotationRefs, omexml.AnnotationRef{ID: *ref})
		}
	}
	el.Points = rois.PolygonPoints(roiIndex, shapeIndex)
	return el
}

func buildLabel(rois omexml.MetadataRetrieve, roiIndex, shapeIndex int) *omexml.ShapeElement {
	el := &omexml.ShapeElement{Kind: "Label"}
	if id := rois.LabelID(roiIndex, shapeIndex); id != nil {
		el.ID = *id
	}
	el.FillColor = colorValue(rois.LabelFillColor(roiIndex, shapeIndex))
	el.FillRule = fillRuleValue(rois.LabelFillRule(roiIndex, shapeIndex))
	el.FontFamily = fontFamilyValue(rois.LabelFontFamily(roiIndex, shapeIndex))
	if size := rois.LabelFontSize(roiIndex, shapeIndex); size != nil {
		el.FontSize = &size.Value
		el.FontSizeUnit = &size.Unit
	}
	el.FontStyle = fontStyleValue(rois.LabelFontStyle(roiIndex, shapeIndex))
	el.Locked = rois.LabelLocked(roiIndex, shapeIndex)
	el.StrokeColor = colorValue(rois.LabelStrokeColor(roiIndex, shapeIndex))
	el.StrokeDashArray = rois.LabelStrokeDashArray(roiIndex, shapeIndex)
	if width := rois.LabelStrokeWidth(roiIndex, shapeIndex); width != nil {
		el.StrokeWidth = &width.Value
		el.StrokeWidthUnit = &width.Unit
	}
	el.TheC = rois.LabelTheC(roiIndex, shapeIndex)
	el.TheT = rois.LabelTheT(roiIndex, shapeIndex)
	el.TheZ = rois.LabelTheZ(roiIndex, shapeIndex)
	el.Transform = rois.LabelTransform(roiIndex, shapeIndex)
	el.Text = rois.LabelText(roiIndex, shapeIndex)
	for refIndex := 0; refIndex < rois.ShapeAnnotationRefCount(roiIndex, shapeIndex); refIndex++ {
		if ref := rois.LabelAnnotationRef(roiIndex, shapeIndex, refIndex); ref != nil {
			el.AnnotationRefs = append(el.AnnotationRefs, omexml.AnnotationRef{ID: *ref})
		}
	}
	el.X = rois.LabelX(roiIndex, shapeIndex)
	el.Y = rois.LabelY(roiIndex, shapeIndex)
	return el
}
