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

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/omero-tools/roibridge/core/roiModel"
)

func resetConnectionFlags() {
	flagUser = ""
	flagPassword = ""
	flagSessionKey = ""
	flagMongoSecret = ""
	flagLocal = false
}

// Each connection mode satisfies the credential check on its own; with none
// of them given the root command must refuse to run.
func TestCredentialValidation(t *testing.T) {
	defer resetConnectionFlags()

	resetConnectionFlags()
	err := rootCmd.PersistentPreRunE(rootCmd, nil)
	assert.ErrorContains(t, err, "--key, --mongo-secret, --local, or both --user and --password")

	resetConnectionFlags()
	flagSessionKey = "c5f39a3b"
	assert.NoError(t, rootCmd.PersistentPreRunE(rootCmd, nil))

	resetConnectionFlags()
	flagMongoSecret = "prod/roibridge/mongo"
	assert.NoError(t, rootCmd.PersistentPreRunE(rootCmd, nil))

	resetConnectionFlags()
	flagLocal = true
	assert.NoError(t, rootCmd.PersistentPreRunE(rootCmd, nil))

	resetConnectionFlags()
	flagUser = "demo"
	assert.Error(t, rootCmd.PersistentPreRunE(rootCmd, nil))
	flagPassword = "demo-pass"
	assert.NoError(t, rootCmd.PersistentPreRunE(rootCmd, nil))
}

func TestImportSummary(t *testing.T) {
	// nil result: the import was abandoned, say so instead of "0 ROIs"
	assert.Equal(t,
		"Import of in.ome.xml did not complete, see log for details\n",
		importSummary("in.ome.xml", nil))

	assert.Equal(t,
		"Imported 0 ROIs from in.ome.xml\n",
		importSummary("in.ome.xml", []*roiModel.Roi{}))

	assert.Equal(t,
		"Imported 2 ROIs from in.ome.xml\n  ROI:4\n  ROI:9\n",
		importSummary("in.ome.xml", []*roiModel.Roi{{ID: 4}, {ID: 9}}))
}
