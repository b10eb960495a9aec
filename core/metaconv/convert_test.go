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
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/omero-tools/roibridge/core/omexml"
	"github.com/omero-tools/roibridge/core/roiModel"
)

// recordingStore captures the exact call sequence the engine makes.
type recordedUpdate struct {
	lsid    string
	object  roiModel.Object
	indexes map[string]int
}

type recordingStore struct {
	updates       []recordedUpdate
	references    map[string][]string
	postProcessed bool
	updateErr     error
}

func (s *recordingStore) UpdateObject(lsid string, object roiModel.Object, indexes map[string]int) error {
	if s.updateErr != nil {
		return s.updateErr
	}
	s.updates = append(s.updates, recordedUpdate{lsid: lsid, object: object, indexes: indexes})
	return nil
}

func (s *recordingStore) UpdateReferences(references map[string][]string) error {
	s.references = references
	return nil
}

func (s *recordingStore) PostProcess() error {
	s.postProcessed = true
	return nil
}

const testDocument = `<?xml version="1.0" encoding="UTF-8"?>
<OME xmlns="http://www.openmicroscopy.org/Schemas/OME/2016-06">
  <ROI ID="ROI:1" Name="first">
    <Union>
      <Rectangle ID="Shape:1" X="1" Y="2" Width="3" Height="4" FillRule="EvenOdd" FontSize="12"/>
      <Label ID="Shape:2" X="5" Y="6" Text="a label">
        <AnnotationRef ID="Annotation:1"/>
      </Label>
      <Rectangle ID="Shape:3" X="7" Y="8" Width="9" Height="10"/>
    </Union>
    <AnnotationRef ID="Annotation:1"/>
  </ROI>
  <ROI ID="ROI:2">
    <Union>
      <Polygon ID="Shape:4" Points="0,0 1,1 1,0"/>
    </Union>
  </ROI>
  <StructuredAnnotations>
    <CommentAnnotation ID="Annotation:1" Namespace="ns">
      <Value>a note</Value>
    </CommentAnnotation>
    <TagAnnotation ID="Annotation:2">
      <Value>a tag</Value>
    </TagAnnotation>
  </StructuredAnnotations>
</OME>`

func TestConvertDocumentCallSequence(t *testing.T) {
	doc, err := omexml.Parse([]byte(testDocument))
	assert.NoError(t, err)

	store := &recordingStore{}
	assert.NoError(t, ConvertDocument(doc, store))

	lsids := []string{}
	for _, update := range store.updates {
		lsids = append(lsids, update.lsid)
	}
	assert.Equal(t, []string{
		"ROI:1", "Shape:1", "Shape:2", "Shape:3",
		"ROI:2", "Shape:4",
		"Annotation:1", "Annotation:2",
	}, lsids)

	assert.Equal(t, map[string]int{"roiIndex": 0}, store.updates[0].indexes)
	assert.Equal(t, map[string]int{"roiIndex": 0, "shapeIndex": 2}, store.updates[3].indexes)
	assert.Equal(t, map[string]int{"roiIndex": 1}, store.updates[4].indexes)
	assert.Equal(t, map[string]int{"roiIndex": 1, "shapeIndex": 0}, store.updates[5].indexes)
	assert.Equal(t, map[string]int{"annotationIndex": 0}, store.updates[6].indexes)
	assert.Equal(t, map[string]int{"annotationIndex": 1}, store.updates[7].indexes)

	assert.Equal(t, map[string][]string{
		"ROI:1":   {"Annotation:1"},
		"Shape:2": {"Annotation:1"},
	}, store.references)
	assert.True(t, store.postProcessed)
}

func TestConvertDocumentShapeValues(t *testing.T) {
	doc, err := omexml.Parse([]byte(testDocument))
	assert.NoError(t, err)

	store := &recordingStore{}
	assert.NoError(t, ConvertDocument(doc, store))

	rect, ok := store.updates[1].object.(*roiModel.Shape)
	assert.True(t, ok)
	assert.Equal(t, roiModel.ShapeRectangle, rect.Type)
	assert.Equal(t, 1.0, *rect.X)
	assert.Equal(t, 2.0, *rect.Y)
	assert.Equal(t, 3.0, *rect.Width)
	assert.Equal(t, 4.0, *rect.Height)
	assert.Equal(t, "EvenOdd", *rect.FillRule)
	// No unit attribute means the schema default unit
	assert.Equal(t, roiModel.Length{Value: 12, Unit: "pt"}, *rect.FontSize)
	assert.Nil(t, rect.StrokeWidth)
	assert.Nil(t, rect.Points)

	label, ok := store.updates[2].object.(*roiModel.Shape)
	assert.True(t, ok)
	assert.Equal(t, roiModel.ShapeLabel, label.Type)
	assert.Equal(t, "a label", *label.Text)

	polygon, ok := store.updates[5].object.(*roiModel.Shape)
	assert.True(t, ok)
	assert.Equal(t, "0,0 1,1 1,0", *polygon.Points)

	comment, ok := store.updates[6].object.(*roiModel.Annotation)
	assert.True(t, ok)
	assert.Equal(t, roiModel.AnnotationComment, comment.Kind)
	assert.Equal(t, "ns", *comment.Namespace)
	assert.Equal(t, "a note", *comment.TextValue)
}

func TestConvertDocumentDefaultLSIDs(t *testing.T) {
	doc := &omexml.OME{
		ROIs: []omexml.ROI{
			{Union: omexml.Union{Shapes: []omexml.ShapeElement{{Kind: "Point"}}}},
		},
	}

	store := &recordingStore{}
	assert.NoError(t, ConvertDocument(doc, store))

	assert.Equal(t, "ROI:0", store.updates[0].lsid)
	assert.Equal(t, "Shape:0:0", store.updates[1].lsid)
}

func TestConvertDocumentAbortsOnStoreError(t *testing.T) {
	doc, err := omexml.Parse([]byte(testDocument))
	assert.NoError(t, err)

	store := &recordingStore{updateErr: assert.AnError}
	err = ConvertDocument(doc, store)
	assert.ErrorIs(t, err, assert.AnError)
	assert.False(t, store.postProcessed)
}
