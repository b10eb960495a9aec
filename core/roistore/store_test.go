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

package roistore

import (
	"context"
	"fmt"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"github.com/omero-tools/roibridge/core/logger"
	"github.com/omero-tools/roibridge/core/roiModel"
)

type mockUpdateService struct {
	savedRois  []*roiModel.Roi
	savedGroup *int64
	group      *int64
	saveErr    error
}

func (m *mockUpdateService) SaveAndReturnAll(ctx context.Context, rois []*roiModel.Roi, group *int64) ([]*roiModel.Roi, error) {
	if m.saveErr != nil {
		return nil, m.saveErr
	}
	m.savedRois = rois
	m.savedGroup = group
	for i, roi := range rois {
		roi.ID = int64(i + 1)
	}
	return rois, nil
}

func (m *mockUpdateService) SetGroup(id *int64) *int64 {
	prev := m.group
	m.group = id
	return prev
}

func Example_stripCustomSuffix() {
	fmt.Println(stripCustomSuffix("Annotation:12"))
	fmt.Println(stripCustomSuffix("Annotation:12:OMERO_EMISSION_FILTER"))
	fmt.Println(stripCustomSuffix("Annotation:12:OMERO_EXCITATION_FILTER"))
	fmt.Println(stripCustomSuffix(stripCustomSuffix("Annotation:12:OMERO_EMISSION_FILTER")))

	// Output:
	// Annotation:12
	// Annotation:12
	// Annotation:12
	// Annotation:12
}

func makeStore() (*ROIMetadataStore, *mockUpdateService) {
	update := &mockUpdateService{}
	return New(update, &logger.NullLogger{}), update
}

func TestUpdateObjectShapeOrder(t *testing.T) {
	store, _ := makeStore()

	err := store.UpdateObject("ROI:0", &roiModel.Roi{}, map[string]int{"roiIndex": 0})
	assert.NoError(t, err)

	first := &roiModel.Shape{Type: roiModel.ShapeRectangle}
	second := &roiModel.Shape{Type: roiModel.ShapePolygon}
	err = store.UpdateObject("Shape:0:0", first, map[string]int{"roiIndex": 0, "shapeIndex": 0})
	assert.NoError(t, err)
	err = store.UpdateObject("Shape:0:1", second, map[string]int{"roiIndex": 0, "shapeIndex": 1})
	assert.NoError(t, err)

	roi, ok := store.roiList.Get(0)
	assert.True(t, ok)
	assert.Equal(t, []*roiModel.Shape{first, second}, roi.Shapes)
	assert.Equal(t, 3, store.ObjectCount())
	assert.Equal(t, 1, store.RoiCount())
}

func TestUpdateObjectFatalConditions(t *testing.T) {
	store, _ := makeStore()

	// ROI with no position in the document
	err := store.UpdateObject("ROI:0", &roiModel.Roi{}, map[string]int{})
	assert.ErrorContains(t, err, "no roiIndex given")

	// Shape before its ROI
	err = store.UpdateObject("Shape:0:0", &roiModel.Shape{}, map[string]int{"roiIndex": 3, "shapeIndex": 0})
	assert.ErrorContains(t, err, "no Roi inserted at roiIndex 3")

	// A kind the store has no handler for
	err = store.UpdateObject("Image:0", &roiModel.Image{}, map[string]int{})
	assert.ErrorContains(t, err, "missing object handler")
}

func TestUpdateReferences(t *testing.T) {
	store, _ := makeStore()

	roi := &roiModel.Roi{}
	shape := &roiModel.Shape{Type: roiModel.ShapePoint}
	annotation := &roiModel.Annotation{Kind: roiModel.AnnotationComment}
	assert.NoError(t, store.UpdateObject("ROI:0", roi, map[string]int{"roiIndex": 0}))
	assert.NoError(t, store.UpdateObject("Shape:0:0", shape, map[string]int{"roiIndex": 0, "shapeIndex": 0}))
	assert.NoError(t, store.UpdateObject("Annotation:0", annotation, map[string]int{"annotationIndex": 0}))

	err := store.UpdateReferences(map[string][]string{
		// Suffixed reference resolves to the same annotation
		"ROI:0": {"Annotation:0:OMERO_EMISSION_FILTER"},
		// Shape targets are not linked
		"Shape:0:0": {"Annotation:0"},
		// Unknown targets and references are skipped, not errors
		"ROI:99":       {"Annotation:0"},
		"Annotation:0": {"ROI:0"},
	})
	assert.NoError(t, err)

	assert.Equal(t, []*roiModel.Annotation{annotation}, roi.Annotations)
	assert.Empty(t, shape.Annotations)
}

func TestSaveToDB(t *testing.T) {
	store, update := makeStore()

	name := "vessel"
	roi := &roiModel.Roi{Name: &name}
	annotation := &roiModel.Annotation{Kind: roiModel.AnnotationTag}
	assert.NoError(t, store.UpdateObject("ROI:0", roi, map[string]int{"roiIndex": 0}))
	assert.NoError(t, store.UpdateObject("Shape:0:0", &roiModel.Shape{Type: roiModel.ShapeRectangle}, map[string]int{"roiIndex": 0, "shapeIndex": 0}))
	assert.NoError(t, store.UpdateObject("Shape:0:1", &roiModel.Shape{Type: roiModel.ShapePolygon}, map[string]int{"roiIndex": 0, "shapeIndex": 1}))
	assert.NoError(t, store.UpdateObject("Annotation:0", annotation, map[string]int{"annotationIndex": 0}))
	assert.NoError(t, store.UpdateReferences(map[string][]string{"ROI:0": {"Annotation:0"}}))

	group := int64(7)
	prev := store.SetGroup(&group)
	assert.Nil(t, prev)

	saved, err := store.SaveToDB(context.Background(), 42)
	assert.NoError(t, err)

	assert.Len(t, saved, 1)
	assert.Equal(t, int64(1), saved[0].ID)
	assert.Equal(t, int64(42), saved[0].ImageID)
	assert.Len(t, saved[0].Shapes, 2)
	assert.Equal(t, []*roiModel.Annotation{annotation}, saved[0].Annotations)
	assert.Equal(t, &group, update.savedGroup)
	assert.Equal(t, &group, update.group)
}

func TestSaveToDBPropagatesFailure(t *testing.T) {
	store, update := makeStore()
	update.saveErr = errors.New("connection lost")

	assert.NoError(t, store.UpdateObject("ROI:0", &roiModel.Roi{}, map[string]int{"roiIndex": 0}))

	saved, err := store.SaveToDB(context.Background(), 42)
	assert.Nil(t, saved)
	assert.EqualError(t, err, "connection lost")
}
