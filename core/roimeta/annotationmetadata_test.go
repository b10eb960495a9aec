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

package roimeta

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/omero-tools/roibridge/core/roiModel"
)

func TestAnnotationMetadata(t *testing.T) {
	m := NewAnnotationMetadata(testLSIDs, []*roiModel.Annotation{
		{ID: 1, Kind: roiModel.AnnotationComment, Namespace: str("ns"), Description: str("a comment"), TextValue: str("hello")},
		{ID: 2, Kind: roiModel.AnnotationTag, TextValue: str("tagged")},
		{ID: 3, Kind: roiModel.AnnotationComment},
		// Unmodelled kind, dropped from the view
		{ID: 4, Kind: "XmlAnnotation"},
	})

	assert.Equal(t, 2, m.CommentAnnotationCount())
	assert.Equal(t, 1, m.TagAnnotationCount())

	assert.Equal(t, "urn:test:Annotation:1", *m.CommentAnnotationID(0))
	assert.Equal(t, "ns", *m.CommentAnnotationNamespace(0))
	assert.Equal(t, "a comment", *m.CommentAnnotationDescription(0))
	assert.Equal(t, "hello", *m.CommentAnnotationValue(0))
	assert.Nil(t, m.CommentAnnotationNamespace(1))

	assert.Equal(t, "urn:test:Annotation:2", *m.TagAnnotationID(0))
	assert.Equal(t, "tagged", *m.TagAnnotationValue(0))

	// Bounds contract
	assert.Nil(t, m.CommentAnnotationID(2))
	assert.Nil(t, m.TagAnnotationID(-1))
	assert.Nil(t, m.TagAnnotationValue(1))
}
