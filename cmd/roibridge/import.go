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
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/omero-tools/roibridge/core/roiModel"
)

var importCmd = &cobra.Command{
	Use:   "import <file.ome.xml>",
	Short: "Import ROIs from an OME-XML file and attach them to the image",
	Args:  cobra.ExactArgs(1),
	RunE:  runImport,
}

func runImport(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	log := makeLogger()

	conv, cleanup, err := openConverter(ctx, log)
	defer cleanup()
	if err != nil {
		return err
	}

	saved, err := conv.ImportROIsFromFile(ctx, args[0])
	if err != nil {
		return err
	}

	fmt.Print(importSummary(args[0], saved))
	return nil
}

// importSummary - a nil result means the import was abandoned part way, which
// is distinct from a file that simply contained no ROIs.
func importSummary(path string, saved []*roiModel.Roi) string {
	if saved == nil {
		return fmt.Sprintf("Import of %v did not complete, see log for details\n", path)
	}

	sb := strings.Builder{}
	fmt.Fprintf(&sb, "Imported %v ROIs from %v\n", len(saved), path)
	for _, roi := range saved {
		fmt.Fprintf(&sb, "  ROI:%v\n", roi.ID)
	}
	return sb.String()
}
