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
	"encoding/xml"
	"fmt"
)

// SchemaNamespace - the one schema version this bridge models.
const SchemaNamespace = "http://www.openmicroscopy.org/Schemas/OME/2016-06"

// OME - document root. Only the ROI-related subset of the schema is
// modelled, everything else in an input document is skipped.
type OME struct {
	XMLName xml.Name `xml:"OME"`
	XMLNS   string   `xml:"xmlns,attr,omitempty"`

	ROIs                  []ROI                  `xml:"ROI"`
	StructuredAnnotations *StructuredAnnotations `xml:"StructuredAnnotations"`
}

// ROI - one region of interest with its shape union and annotation refs.
type ROI struct {
	ID          string  `xml:"ID,attr"`
	Name        *string `xml:"Name,attr"`
	Description *string `xml:"Description"`

	Union          Union           `xml:"Union"`
	AnnotationRefs []AnnotationRef `xml:"AnnotationRef"`
}

// AnnotationRef - a reference to an annotation elsewhere in the document.
type AnnotationRef struct {
	ID string `xml:"ID,attr"`
}

// Union - the ordered shape list of a ROI. The schema interleaves shape
// kinds as sibling elements named by kind, so (un)marshalling has to keep
// document order across differently named elements, which encoding/xml's
// struct mapping cannot do on its own.
type Union struct {
	Shapes []ShapeElement
}

var shapeElementNames = map[string]bool{
	"Rectangle": true,
	"Ellipse":   true,
	"Point":     true,
	"Line":      true,
	"Polyline":  true,
	"Polygon":   true,
	"Label":     true,
}

// ShapeElement - one shape element of any kind. Kind holds the element
// name; attributes not applicable to the kind are absent.
type ShapeElement struct {
	Kind string `xml:"-"`

	ID              string   `xml:"ID,attr"`
	FillColor       *int32   `xml:"FillColor,attr"`
	FillRule        *string  `xml:"FillRule,attr"`
	StrokeColor     *int32   `xml:"StrokeColor,attr"`
	StrokeWidth     *float64 `xml:"StrokeWidth,attr"`
	StrokeWidthUnit *string  `xml:"StrokeWidthUnit,attr"`
	StrokeDashArray *string  `xml:"StrokeDashArray,attr"`
	FontFamily      *string  `xml:"FontFamily,attr"`
	FontSize        *float64 `xml:"FontSize,attr"`
	FontSizeUnit    *string  `xml:"FontSizeUnit,attr"`
	FontStyle       *string  `xml:"FontStyle,attr"`
	Locked          *bool    `xml:"Locked,attr"`
	Text            *string  `xml:"Text,attr"`
	TheC            *int32   `xml:"TheC,attr"`
	TheT            *int32   `xml:"TheT,attr"`
	TheZ            *int32   `xml:"TheZ,attr"`

	X           *float64 `xml:"X,attr"`
	Y           *float64 `xml:"Y,attr"`
	Width       *float64 `xml:"Width,attr"`
	Height      *float64 `xml:"Height,attr"`
	RadiusX     *float64 `xml:"RadiusX,attr"`
	RadiusY     *float64 `xml:"RadiusY,attr"`
	X1          *float64 `xml:"X1,attr"`
	Y1          *float64 `xml:"Y1,attr"`
	X2          *float64 `xml:"X2,attr"`
	Y2          *float64 `xml:"Y2,attr"`
	Points      *string  `xml:"Points,attr"`
	MarkerStart *string  `xml:"MarkerStart,attr"`
	MarkerEnd   *string  `xml:"MarkerEnd,attr"`

	Transform      *AffineTransform `xml:"Transform"`
	AnnotationRefs []AnnotationRef  `xml:"AnnotationRef"`
}

func (u *Union) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	for {
		tok, err := d.Token()
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if !shapeElementNames[t.Name.Local] {
				// Unknown child, skip it whole
				if err := d.Skip(); err != nil {
					return err
				}
				continue
			}
			el := ShapeElement{Kind: t.Name.Local}
			if err := d.DecodeElement(&el, &t); err != nil {
				return fmt.Errorf("failed to decode %v shape: %v", t.Name.Local, err)
			}
			u.Shapes = append(u.Shapes, el)
		case xml.EndElement:
			return nil
		}
	}
}

func (u Union) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	if err := e.EncodeToken(start); err != nil {
		return err
	}
	for _, s := range u.Shapes {
		name := xml.StartElement{Name: xml.Name{Local: s.Kind}}
		if err := e.EncodeElement(s, name); err != nil {
			return err
		}
	}
	return e.EncodeToken(start.End())
}

// StructuredAnnotations - the document's annotation pool.
type StructuredAnnotations struct {
	Comments []CommentAnnotation `xml:"CommentAnnotation"`
	Tags     []TagAnnotation     `xml:"TagAnnotation"`
}

// CommentAnnotation - free-text annotation.
type CommentAnnotation struct {
	ID          string  `xml:"ID,attr"`
	Namespace   *string `xml:"Namespace,attr"`
	Description *string `xml:"Description"`
	Value       *string `xml:"Value"`
}

// TagAnnotation - tag-style annotation.
type TagAnnotation struct {
	ID          string  `xml:"ID,attr"`
	Namespace   *string `xml:"Namespace,attr"`
	Description *string `xml:"Description"`
	Value       *string `xml:"Value"`
}
