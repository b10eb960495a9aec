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
	"time"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readconcern"
	"go.mongodb.org/mongo-driver/mongo/writeconcern"

	"github.com/omero-tools/roibridge/core/roiModel"
)

type updateEvent struct {
	ID   int64 `bson:"_id"`
	Time int64 `bson:"time"`
}

// nextID - allocates the next id from a named counter. Must run inside the
// save transaction so ids are never burned by a rolled-back save.
func (s *Session) nextID(ctx context.Context, name string) (int64, error) {
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)
	result := s.db.Collection(CountersName).FindOneAndUpdate(ctx,
		bson.M{"_id": name},
		bson.M{"$inc": bson.M{"seq": 1}},
		opts,
	)

	counter := struct {
		Seq int64 `bson:"seq"`
	}{}
	if err := result.Decode(&counter); err != nil {
		return 0, errors.Wrapf(err, "failed to allocate id from counter %v", name)
	}
	return counter.Seq, nil
}

// SaveAndReturnAll - the one write operation of the bridge: persists the
// given ROIs with their embedded shapes and linked annotations in a single
// transaction. Allocates server ids for anything not yet persisted, writes
// one update event and stamps it (plus the group scope, if given) on every
// object touched. On any failure the transaction rolls back and nothing is
// saved.
func (s *Session) SaveAndReturnAll(ctx context.Context, rois []*roiModel.Roi, group *int64) ([]*roiModel.Roi, error) {
	sess, err := s.client.StartSession()
	if err != nil {
		return nil, errors.Wrap(err, "failed to start DB session")
	}
	defer sess.EndSession(ctx)

	txnOpts := options.Transaction().
		SetWriteConcern(writeconcern.Majority()).
		SetReadConcern(readconcern.Snapshot())

	_, err = sess.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		eventID, err := s.nextID(sc, EventsName)
		if err != nil {
			return nil, err
		}
		_, err = s.db.Collection(EventsName).InsertOne(sc, updateEvent{ID: eventID, Time: time.Now().Unix()})
		if err != nil {
			return nil, errors.Wrap(err, "failed to write update event")
		}

		details := roiModel.Details{UpdateEventID: eventID}
		if group != nil {
			details.GroupID = *group
		}

		// An annotation can be linked from several places, save each once
		savedAnnotations := map[*roiModel.Annotation]bool{}

		for _, roi := range rois {
			if roi.ID == 0 {
				if roi.ID, err = s.nextID(sc, RoisName); err != nil {
					return nil, err
				}
			}
			roi.Details = details

			roi.AnnotationIDs = nil
			for _, annotation := range roi.Annotations {
				if err = s.saveAnnotation(sc, annotation, details, savedAnnotations); err != nil {
					return nil, err
				}
				roi.AnnotationIDs = append(roi.AnnotationIDs, annotation.ID)
			}

			for _, shape := range roi.Shapes {
				if shape.ID == 0 {
					if shape.ID, err = s.nextID(sc, RoisName); err != nil {
						return nil, err
					}
				}
				shape.Details = details

				shape.AnnotationIDs = nil
				for _, annotation := range shape.Annotations {
					if err = s.saveAnnotation(sc, annotation, details, savedAnnotations); err != nil {
						return nil, err
					}
					shape.AnnotationIDs = append(shape.AnnotationIDs, annotation.ID)
				}
			}

			replaceOpts := options.Replace().SetUpsert(true)
			_, err = s.db.Collection(RoisName).ReplaceOne(sc, bson.M{"_id": roi.ID}, roi, replaceOpts)
			if err != nil {
				return nil, errors.Wrapf(err, "failed to save ROI %v", roi.ID)
			}
		}

		return nil, nil
	}, txnOpts)

	if err != nil {
		return nil, err
	}
	return rois, nil
}

func (s *Session) saveAnnotation(
	ctx context.Context,
	annotation *roiModel.Annotation,
	details roiModel.Details,
	saved map[*roiModel.Annotation]bool,
) error {
	if saved[annotation] {
		return nil
	}

	var err error
	if annotation.ID == 0 {
		if annotation.ID, err = s.nextID(ctx, AnnotationsName); err != nil {
			return err
		}
	}
	annotation.Details = details

	replaceOpts := options.Replace().SetUpsert(true)
	_, err = s.db.Collection(AnnotationsName).ReplaceOne(ctx, bson.M{"_id": annotation.ID}, annotation, replaceOpts)
	if err != nil {
		return errors.Wrapf(err, "failed to save annotation %v", annotation.ID)
	}

	saved[annotation] = true
	return nil
}
