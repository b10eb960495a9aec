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
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/omero-tools/roibridge/core/logger"
)

// Import is best-effort: a file that fails to parse is logged and yields no
// result, not an error.
func TestImportBestEffortOnParseFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.ome.xml")
	assert.NoError(t, os.WriteFile(path, []byte("<OME><ROI>"), 0644))

	conv := New(1, &logger.NullLogger{})
	saved, err := conv.ImportROIsFromFile(context.Background(), path)
	assert.NoError(t, err)
	assert.Nil(t, saved)
}

// Failing to read the file itself is the one import failure that is reported
// to the caller.
func TestImportMissingFileError(t *testing.T) {
	conv := New(1, &logger.NullLogger{})
	saved, err := conv.ImportROIsFromFile(context.Background(), filepath.Join(t.TempDir(), "missing.ome.xml"))
	assert.ErrorContains(t, err, "failed to read")
	assert.Nil(t, saved)
}
