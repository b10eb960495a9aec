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

package converter

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/omero-tools/roibridge/core/logger"
	"github.com/omero-tools/roibridge/core/roiModel"
)

func makeTestConverter() *Converter {
	conv := New(1, &logger.NullLogger{})
	// The format a session derives from authority + database uuid
	conv.lsidFormat = fmt.Sprintf("urn:lsid:%s:%%s:%s_%%d:%%d", "example.com", "473fc289")
	return conv
}

func TestLSIDFormat(t *testing.T) {
	conv := makeTestConverter()

	roi := &roiModel.Roi{ID: 17, Details: roiModel.Details{UpdateEventID: 99}}
	lsid, err := conv.LSID(roi)
	assert.NoError(t, err)
	assert.Equal(t, "urn:lsid:example.com:Roi:473fc289_17:99", lsid)

	shape := &roiModel.Shape{ID: 5, Type: roiModel.ShapePoint}
	lsid, err = conv.LSID(shape)
	assert.NoError(t, err)
	assert.Equal(t, "urn:lsid:example.com:Shape:473fc289_5:0", lsid)

	annotation := &roiModel.Annotation{ID: 3, Kind: roiModel.AnnotationTag, Details: roiModel.Details{UpdateEventID: 2}}
	lsid, err = conv.LSID(annotation)
	assert.NoError(t, err)
	assert.Equal(t, "urn:lsid:example.com:Annotation:473fc289_3:2", lsid)
}

func TestLSIDRejectsNonLeafObjects(t *testing.T) {
	conv := makeTestConverter()

	// A shape with no kind tag is not a leaf object
	_, err := conv.LSID(&roiModel.Shape{ID: 5})
	assert.ErrorContains(t, err, "non-leaf Shape object")

	_, err = conv.LSID(&roiModel.Annotation{ID: 3})
	assert.ErrorContains(t, err, "non-leaf Annotation object")
}

func TestCloseWithoutSession(t *testing.T) {
	conv := New(1, &logger.NullLogger{})
	assert.NoError(t, conv.Close(nil))
}
