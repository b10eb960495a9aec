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
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/omero-tools/roibridge/core/logger"
)

// Config keys the session reads once after connecting.
const (
	ConfigKeyAuthority = "omero.db.authority"
	ConfigKeyUUID      = "omero.db.uuid"
)

// Session - an authenticated connection to one database of the remote
// store. Carries the optional group scope that write operations are stamped
// with. Not safe for concurrent use, one session per caller.
type Session struct {
	log    logger.ILogger
	client *mongo.Client
	db     *mongo.Database

	group *int64
}

func OpenSession(client *mongo.Client, dbName string, log logger.ILogger) *Session {
	return &Session{
		log:    log,
		client: client,
		db:     client.Database(dbName),
	}
}

// SetGroup - sets the group scope for subsequent writes, returning the
// previous scope so callers can restore it.
func (s *Session) SetGroup(id *int64) *int64 {
	prev := s.group
	s.group = id
	return prev
}

type configEntry struct {
	ID    string `bson:"_id"`
	Value string `bson:"value"`
}

// ConfigValue - reads one value from the server config collection.
func (s *Session) ConfigValue(ctx context.Context, key string) (string, error) {
	result := s.db.Collection(ConfigName).FindOne(ctx, bson.M{"_id": key})

	entry := configEntry{}
	if err := result.Decode(&entry); err != nil {
		return "", errors.Wrapf(err, "failed to read config value %v", key)
	}
	return entry.Value, nil
}

// Authority - the LSID authority this server issues identities under.
func (s *Session) Authority(ctx context.Context) (string, error) {
	return s.ConfigValue(ctx, ConfigKeyAuthority)
}

// DatabaseUUID - the unique id of the database instance behind this
// session.
func (s *Session) DatabaseUUID(ctx context.Context) (string, error) {
	return s.ConfigValue(ctx, ConfigKeyUUID)
}

// Logout - drops the connection. Safe to call more than once.
func (s *Session) Logout(ctx context.Context) error {
	if s.client == nil {
		return nil
	}
	err := s.client.Disconnect(ctx)
	s.client = nil
	s.db = nil
	return err
}
