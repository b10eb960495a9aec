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

	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export <file.ome.xml>",
	Short: "Export the image's ROIs to an OME-XML file",
	Args:  cobra.ExactArgs(1),
	RunE:  runExport,
}

func runExport(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	log := makeLogger()

	conv, cleanup, err := openConverter(ctx, log)
	defer cleanup()
	if err != nil {
		return err
	}

	rois, err := conv.ExportROIsToFile(ctx, args[0])
	if err != nil {
		return err
	}

	fmt.Printf("Exported %v ROIs to %v\n", len(rois), args[0])
	return nil
}
