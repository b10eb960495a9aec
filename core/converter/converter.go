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

// The session facade: owns the remote session, the per-session LSID format
// and the two top-level operations, file import and file export.
package converter

import (
	"context"
	"fmt"
	"os"

	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/omero-tools/roibridge/core/client"
	"github.com/omero-tools/roibridge/core/logger"
	"github.com/omero-tools/roibridge/core/metaconv"
	"github.com/omero-tools/roibridge/core/omexml"
	"github.com/omero-tools/roibridge/core/roiModel"
	"github.com/omero-tools/roibridge/core/roimeta"
	"github.com/omero-tools/roibridge/core/roistore"
)

const defaultDatabase = "omero"

// Converter - bridges OME-XML ROI documents and the remote store for one
// image. Initialize (or InitializeWithToken) must succeed before the import
// and export operations can be used.
type Converter struct {
	imageID int64
	log     logger.ILogger

	session *client.Session
	group   *int64

	// Per-session: urn:lsid:<authority>:%s:<uuid>_%d:%d, filled in with
	// (kind, object id, update event id).
	lsidFormat string
}

func New(imageID int64, log logger.ILogger) *Converter {
	return &Converter{imageID: imageID, log: log}
}

// Initialize - connects with explicit credentials and prepares the
// session's LSID format from the server's authority and database uuid.
func (c *Converter) Initialize(ctx context.Context, username string, password string, server string, port int, group *int64) error {
	mongoClient, err := client.ConnectRemote(fmt.Sprintf("%v:%v", server, port), username, password, c.log)
	if err != nil {
		return errors.Wrap(err, "failed to connect to server")
	}
	return c.finishInitialize(ctx, mongoClient, group)
}

// InitializeWithToken - connects by joining an existing session: the token
// serves as both username and password and no group scope applies.
func (c *Converter) InitializeWithToken(ctx context.Context, server string, port int, sessionToken string) error {
	return c.Initialize(ctx, sessionToken, sessionToken, server, port, nil)
}

// InitializeWithSecret - connects with credentials held in a named AWS
// secret, or to a local unauthenticated DB when the name is empty.
func (c *Converter) InitializeWithSecret(ctx context.Context, mongoSecret string, group *int64) error {
	var sess *session.Session
	if len(mongoSecret) > 0 {
		var err error
		if sess, err = session.NewSession(); err != nil {
			return errors.Wrap(err, "failed to create AWS session")
		}
	}

	mongoClient, err := client.Connect(sess, mongoSecret, c.log)
	if err != nil {
		return errors.Wrap(err, "failed to connect to server")
	}
	return c.finishInitialize(ctx, mongoClient, group)
}

func (c *Converter) finishInitialize(ctx context.Context, mongoClient *mongo.Client, group *int64) error {
	c.session = client.OpenSession(mongoClient, defaultDatabase, c.log)
	c.group = group
	if group != nil {
		c.session.SetGroup(group)
	}

	authority, err := c.session.Authority(ctx)
	if err != nil {
		return err
	}
	uuid, err := c.session.DatabaseUUID(ctx)
	if err != nil {
		return err
	}
	c.lsidFormat = fmt.Sprintf("urn:lsid:%s:%%s:%s_%%d:%%d", authority, uuid)

	return nil
}

// LSID - the symbolic identity of a persisted object in this session's
// format. Objects without a specific leaf kind have no identity.
func (c *Converter) LSID(object roiModel.Object) (string, error) {
	kind, leaf := object.LSIDKind()
	if !leaf {
		return "", errors.Errorf("cannot compute LSID for non-leaf %v object", kind)
	}
	return fmt.Sprintf(c.lsidFormat, kind, object.ObjectID(), object.UpdateEventID()), nil
}

// ImportROIsFromFile - reads an OME-XML file, converts its ROIs and saves
// them against the image in one transaction. Import is best-effort:
// conversion and save failures are logged and yield no result rather than
// an error. Only failing to read the file itself is reported as an error.
func (c *Converter) ImportROIsFromFile(ctx context.Context, path string) ([]*roiModel.Roi, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %v", path)
	}

	doc, err := omexml.Parse(data)
	if err != nil {
		c.log.Errorf("Failed to parse %v: %v", path, err)
		return nil, nil
	}

	store := roistore.New(c.session, c.log)
	if c.group != nil {
		store.SetGroup(c.group)
	}

	if err := metaconv.ConvertDocument(doc, store); err != nil {
		c.log.Errorf("Failed to convert %v: %v", path, err)
		return nil, nil
	}

	saved, err := store.SaveToDB(ctx, c.imageID)
	if err != nil {
		c.log.Errorf("Failed to save ROIs from %v: %v", path, err)
		return nil, nil
	}
	return saved, nil
}

// ExportROIsToFile - queries the image's ROIs across all groups, rebuilds
// an OME-XML document from them and writes it to the given path. Unlike
// import, export failures are propagated.
func (c *Converter) ExportROIsToFile(ctx context.Context, path string) ([]*roiModel.Roi, error) {
	rois, err := c.session.FindROIsByImage(ctx, c.imageID, true)
	if err != nil {
		return nil, err
	}

	pool := []*roiModel.Annotation{}
	pooled := map[int64]bool{}
	addToPool := func(annotations []*roiModel.Annotation) {
		for _, annotation := range annotations {
			if !pooled[annotation.ID] {
				pooled[annotation.ID] = true
				pool = append(pool, annotation)
			}
		}
	}

	for _, roi := range rois {
		if roi.Annotations, err = c.session.FindAnnotationsForROI(ctx, roi); err != nil {
			return nil, err
		}
		addToPool(roi.Annotations)

		for _, shape := range roi.Shapes {
			if shape.Annotations, err = c.session.FindAnnotationsByIDs(ctx, shape.AnnotationIDs); err != nil {
				return nil, err
			}
			addToPool(shape.Annotations)
		}
	}

	doc := metaconv.BuildDocument(
		roimeta.NewROIMetadata(c.LSID, rois),
		roimeta.NewAnnotationMetadata(c.LSID, pool),
	)

	if err := omexml.WriteFile(path, doc); err != nil {
		return nil, err
	}
	return rois, nil
}

// Close - logs out of the remote session. Safe to call without a session.
func (c *Converter) Close(ctx context.Context) error {
	if c.session == nil {
		return nil
	}
	err := c.session.Logout(ctx)
	c.session = nil
	return err
}
