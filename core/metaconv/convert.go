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

// The conversion engine: walks a parsed OME document into a metadata store
// (import), or a pair of metadata retrieve views into a new document
// (export). The engine only speaks the omexml contracts, it knows nothing
// about the remote store behind them.
package metaconv

import (
	"fmt"

	"github.com/omero-tools/roibridge/core/omexml"
	"github.com/omero-tools/roibridge/core/roiModel"
)

// Schema default units for the two length-valued shape attributes.
const (
	defaultFontSizeUnit    = "pt"
	defaultStrokeWidthUnit = "pixel"
)

// ConvertDocument - pushes every ROI, shape and annotation of the document
// into the store, assigning roiIndex/shapeIndex by document order, then
// hands over the collected back-reference cache and fires the store's
// post-process hook. ROIs are always inserted before their shapes, which
// the store relies on.
func ConvertDocument(doc *omexml.OME, store omexml.MetadataStore) error {
	references := map[string][]string{}

	for roiIndex, roi := range doc.ROIs {
		roiLSID := roi.ID
		if roiLSID == "" {
			roiLSID = fmt.Sprintf("ROI:%v", roiIndex)
		}
		obj := &roiModel.Roi{
			Name:        copyStr(roi.Name),
			Description: copyStr(roi.Description),
		}
		err := store.UpdateObject(roiLSID, obj, map[string]int{"roiIndex": roiIndex})
		if err != nil {
			return err
		}

		for shapeIndex, el := range roi.Union.Shapes {
			shapeLSID := el.ID
			if shapeLSID == "" {
				shapeLSID = fmt.Sprintf("Shape:%v:%v", roiIndex, shapeIndex)
			}
			err = store.UpdateObject(shapeLSID, toModelShape(&el), map[string]int{
				"roiIndex":   roiIndex,
				"shapeIndex": shapeIndex,
			})
			if err != nil {
				return err
			}
			for _, ref := range el.AnnotationRefs {
				references[shapeLSID] = append(references[shapeLSID], ref.ID)
			}
		}

		for _, ref := range roi.AnnotationRefs {
			references[roiLSID] = append(references[roiLSID], ref.ID)
		}
	}

	if doc.StructuredAnnotations != nil {
		annotationIndex := 0
		for _, comment := range doc.StructuredAnnotations.Comments {
			obj := &roiModel.Annotation{
				Kind:        roiModel.AnnotationComment,
				Namespace:   copyStr(comment.Namespace),
				Description: copyStr(comment.Description),
				TextValue:   copyStr(comment.Value),
			}
			err := store.UpdateObject(comment.ID, obj, map[string]int{"annotationIndex": annotationIndex})
			if err != nil {
				return err
			}
			annotationIndex++
		}
		for _, tag := range doc.StructuredAnnotations.Tags {
			obj := &roiModel.Annotation{
				Kind:        roiModel.AnnotationTag,
				Namespace:   copyStr(tag.Namespace),
				Description: copyStr(tag.Description),
				TextValue:   copyStr(tag.Value),
			}
			err := store.UpdateObject(tag.ID, obj, map[string]int{"annotationIndex": annotationIndex})
			if err != nil {
				return err
			}
			annotationIndex++
		}
	}

	if err := store.UpdateReferences(references); err != nil {
		return err
	}
	return store.PostProcess()
}

func toModelShape(el *omexml.ShapeElement) *roiModel.Shape {
	shape := &roiModel.Shape{
		Type:            roiModel.ShapeType(el.Kind),
		FillColor:       copyInt32(el.FillColor),
		FillRule:        copyStr(el.FillRule),
		StrokeColor:     copyInt32(el.StrokeColor),
		StrokeWidth:     toModelLength(el.StrokeWidth, el.StrokeWidthUnit, defaultStrokeWidthUnit),
		StrokeDashArray: copyStr(el.StrokeDashArray),
		FontFamily:      copyStr(el.FontFamily),
		FontSize:        toModelLength(el.FontSize, el.FontSizeUnit, defaultFontSizeUnit),
		FontStyle:       copyStr(el.FontStyle),
		Locked:          copyBool(el.Locked),
		Text:            copyStr(el.Text),
		TheC:            copyInt32(el.TheC),
		TheT:            copyInt32(el.TheT),
		TheZ:            copyInt32(el.TheZ),
		Transform:       toModelTransform(el.Transform),
	}

	switch shape.Type {
	case roiModel.ShapeRectangle:
		shape.X = copyFloat64(el.X)
		shape.Y = copyFloat64(el.Y)
		shape.Width = copyFloat64(el.Width)
		shape.Height = copyFloat64(el.Height)
	case roiModel.ShapeEllipse:
		shape.X = copyFloat64(el.X)
		shape.Y = copyFloat64(el.Y)
		shape.RadiusX = copyFloat64(el.RadiusX)
		shape.RadiusY = copyFloat64(el.RadiusY)
	case roiModel.ShapePoint, roiModel.ShapeLabel:
		shape.X = copyFloat64(el.X)
		shape.Y = copyFloat64(el.Y)
	case roiModel.ShapeLine:
		shape.X1 = copyFloat64(el.X1)
		shape.Y1 = copyFloat64(el.Y1)
		shape.X2 = copyFloat64(el.X2)
		shape.Y2 = copyFloat64(el.Y2)
		shape.MarkerStart = copyStr(el.MarkerStart)
		shape.MarkerEnd = copyStr(el.MarkerEnd)
	case roiModel.ShapePolyline:
		shape.Points = copyStr(el.Points)
		shape.MarkerStart = copyStr(el.MarkerStart)
		shape.MarkerEnd = copyStr(el.MarkerEnd)
	case roiModel.ShapePolygon:
		shape.Points = copyStr(el.Points)
	}

	return shape
}

func toModelLength(value *float64, unit *string, defaultUnit string) *roiModel.Length {
	if value == nil {
		return nil
	}
	length := &roiModel.Length{Value: *value, Unit: defaultUnit}
	if unit != nil {
		length.Unit = *unit
	}
	return length
}

func toModelTransform(transform *omexml.AffineTransform) *roiModel.AffineTransform {
	if transform == nil {
		return nil
	}
	a00 := transform.A00
	a10 := transform.A10
	a01 := transform.A01
	a11 := transform.A11
	a02 := transform.A02
	a12 := transform.A12
	return &roiModel.AffineTransform{
		A00: &a00,
		A10: &a10,
		A01: &a01,
		A11: &a11,
		A02: &a02,
		A12: &a12,
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
