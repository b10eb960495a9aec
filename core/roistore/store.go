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

// The identity-resolving import store: buffers the object graph the
// conversion engine discovers in a document, resolves back-references, and
// commits everything to the remote store in one save.
package roistore

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/omero-tools/roibridge/core/logger"
	"github.com/omero-tools/roibridge/core/roiModel"
)

// UpdateService - what the store needs from the remote session: the single
// transactional save and the group context pass-through. Satisfied by
// client.Session, mocked in tests.
type UpdateService interface {
	SaveAndReturnAll(ctx context.Context, rois []*roiModel.Roi, group *int64) ([]*roiModel.Roi, error)
	SetGroup(id *int64) *int64
}

// ROIMetadataStore - implements the conversion engine's store role
// (omexml.MetadataStore) on top of an UpdateService.
type ROIMetadataStore struct {
	log    logger.ILogger
	update UpdateService

	// All objects keyed by their LSID.
	lsidMap map[string]roiModel.Object

	// roiIndex vs ROI object, ordered by first insertion.
	roiList *orderedmap.OrderedMap[int, *roiModel.Roi]

	group *int64
}

func New(update UpdateService, log logger.ILogger) *ROIMetadataStore {
	return &ROIMetadataStore{
		log:     log,
		update:  update,
		lsidMap: map[string]roiModel.Object{},
		roiList: orderedmap.New[int, *roiModel.Roi](),
	}
}

// UpdateObject - records an object under its LSID and dispatches on its
// kind. ROIs take their slot in the ordered roiIndex table, shapes are
// appended to the ROI already at their roiIndex (the conversion engine
// guarantees the ROI is created before its shapes), annotations are only
// recorded for later reference resolution. Anything else means an
// unmodelled object type reached the store, which aborts the import.
func (s *ROIMetadataStore) UpdateObject(lsid string, object roiModel.Object, indexes map[string]int) error {
	s.lsidMap[lsid] = object

	switch obj := object.(type) {
	case *roiModel.Roi:
		s.log.Debugf("Handling Roi")
		roiIndex, ok := indexes["roiIndex"]
		if !ok {
			return errors.Errorf("no roiIndex given for Roi %v", lsid)
		}
		s.roiList.Set(roiIndex, obj)
	case *roiModel.Shape:
		s.log.Debugf("Adding shape")
		roiIndex, ok := indexes["roiIndex"]
		if !ok {
			return errors.Errorf("no roiIndex given for Shape %v", lsid)
		}
		roi, ok := s.roiList.Get(roiIndex)
		if !ok {
			return errors.Errorf("no Roi inserted at roiIndex %v for Shape %v", roiIndex, lsid)
		}
		roi.AddShape(obj)
	case *roiModel.Annotation:
		s.log.Debugf("Handling Annotation")
		// No structural action, annotations only matter via references
	default:
		return errors.Errorf("missing object handler for object type: %T", object)
	}
	return nil
}

// UpdateReferences - resolves the back-reference cache: target LSID vs the
// raw reference strings collected for it. Only (Roi <- Annotation) is
// actionable; every other combination is skipped without error. That skip
// is a known incompleteness carried over from the reference handling this
// was modelled on, do not extend it without tests for the new combination.
func (s *ROIMetadataStore) UpdateReferences(references map[string][]string) error {
	for target, refs := range references {
		for _, reference := range refs {
			targetObject := s.lsidMap[target]
			referenceObject := s.lsidMap[stripCustomSuffix(reference)]
			s.log.Debugf("Updating reference handler for %v(%v) --> %v(%v).",
				reference, referenceObject, target, targetObject)
			if roi, ok := targetObject.(*roiModel.Roi); ok {
				if annotation, ok := referenceObject.(*roiModel.Annotation); ok {
					s.log.Debugf("Roi -> Annotation")
					roi.LinkAnnotation(annotation)
					continue
				}
			}
		}
	}
	return nil
}

// PostProcess - store-role hook, nothing to do for ROI-only documents.
func (s *ROIMetadataStore) PostProcess() error {
	return nil
}

// stripCustomSuffix - strips reference-only suffixes from an LSID so the
// referenced object can be looked up. Idempotent.
func stripCustomSuffix(lsid string) string {
	if strings.HasSuffix(lsid, "OMERO_EMISSION_FILTER") ||
		strings.HasSuffix(lsid, "OMERO_EXCITATION_FILTER") {
		if idx := strings.LastIndex(lsid, ":"); idx >= 0 {
			return lsid[0:idx]
		}
	}
	return lsid
}

// SetGroup - records the group scope for the final save and passes the call
// through to the session, returning the previous session value.
func (s *ROIMetadataStore) SetGroup(id *int64) *int64 {
	s.group = id
	if s.update == nil {
		return nil
	}
	return s.update.SetGroup(id)
}

// LinkImage - points every buffered ROI at the given image.
func (s *ROIMetadataStore) LinkImage(imageID int64) {
	s.log.Infof("Linking ROIs to Image:%v", imageID)
	for pair := s.roiList.Oldest(); pair != nil; pair = pair.Next() {
		if pair.Value.Name != nil {
			s.log.Debugf("ROI name: %v", *pair.Value.Name)
		}
		pair.Value.ImageID = imageID
	}
}

// SaveToDB - links the buffered ROIs to the image and issues the single
// transactional save through the session, scoped to the group context if
// one was set. Save failures are returned unmodified: there is no partial
// commit and no retry.
func (s *ROIMetadataStore) SaveToDB(ctx context.Context, imageID int64) ([]*roiModel.Roi, error) {
	s.log.Debugf("lsidMap contains %v entries.", len(s.lsidMap))

	s.LinkImage(imageID)

	rois := []*roiModel.Roi{}
	for pair := s.roiList.Oldest(); pair != nil; pair = pair.Next() {
		rois = append(rois, pair.Value)
	}

	s.log.Infof("Saving to DB")
	saved, err := s.update.SaveAndReturnAll(ctx, rois, s.group)
	if err != nil {
		return nil, err
	}
	for _, roi := range saved {
		s.log.Infof("Saved ROI with ID: %v", roi.ID)
	}
	return saved, nil
}

// ObjectCount - number of objects buffered so far.
func (s *ROIMetadataStore) ObjectCount() int {
	return len(s.lsidMap)
}

// RoiCount - number of ROIs buffered so far.
func (s *ROIMetadataStore) RoiCount() int {
	return s.roiList.Len()
}
