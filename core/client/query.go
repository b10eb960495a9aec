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

package client

import (
	"context"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/omero-tools/roibridge/core/roiModel"
)

// FindROIsByImage - all ROIs attached to an image, shapes embedded, in id
// order. With allGroups the group scope is ignored, otherwise the query is
// restricted to the session's group if one is set.
func (s *Session) FindROIsByImage(ctx context.Context, imageID int64, allGroups bool) ([]*roiModel.Roi, error) {
	filter := bson.M{"imageId": imageID}
	if !allGroups && s.group != nil {
		filter["details.groupId"] = *s.group
	}

	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	cursor, err := s.db.Collection(RoisName).Find(ctx, filter, opts)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to query ROIs for image %v", imageID)
	}

	rois := []*roiModel.Roi{}
	if err := cursor.All(ctx, &rois); err != nil {
		return nil, errors.Wrapf(err, "failed to read ROIs for image %v", imageID)
	}
	return rois, nil
}

// FindAnnotationsForROI - the annotations linked from a ROI, resolved
// through its persisted annotation id list.
func (s *Session) FindAnnotationsForROI(ctx context.Context, roi *roiModel.Roi) ([]*roiModel.Annotation, error) {
	annotations, err := s.FindAnnotationsByIDs(ctx, roi.AnnotationIDs)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read annotations for ROI %v", roi.ID)
	}
	return annotations, nil
}

// FindAnnotationsByIDs - annotations by id list, in id order.
func (s *Session) FindAnnotationsByIDs(ctx context.Context, ids []int64) ([]*roiModel.Annotation, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	cursor, err := s.db.Collection(AnnotationsName).Find(ctx, bson.M{"_id": bson.M{"$in": ids}}, opts)
	if err != nil {
		return nil, err
	}

	annotations := []*roiModel.Annotation{}
	if err := cursor.All(ctx, &annotations); err != nil {
		return nil, err
	}
	return annotations, nil
}
