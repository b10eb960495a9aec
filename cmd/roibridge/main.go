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
	"os"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/spf13/cobra"

	"github.com/omero-tools/roibridge/core/converter"
	"github.com/omero-tools/roibridge/core/logger"
)

var (
	flagServer      string
	flagPort        int
	flagUser        string
	flagPassword    string
	flagSessionKey  string
	flagMongoSecret string
	flagLocal       bool
	flagGroup       int64
	flagImage       int64
	flagSentryDSN   string
	flagVerbose     bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		if len(flagSentryDSN) > 0 {
			sentry.CaptureException(err)
			sentry.Flush(2 * time.Second)
		}
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "roibridge",
	Short:         "Move ROI metadata between OME-XML files and an image-data server",
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if len(flagSentryDSN) > 0 {
			if err := sentry.Init(sentry.ClientOptions{Dsn: flagSentryDSN}); err != nil {
				return fmt.Errorf("sentry init failed: %v", err)
			}
		}
		if !connectionFlagsValid() {
			return fmt.Errorf("either --key, --mongo-secret, --local, or both --user and --password are required")
		}
		return nil
	},
	// No Run — prints help by default.
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagServer, "server", "s", "localhost", "server hostname")
	rootCmd.PersistentFlags().IntVarP(&flagPort, "port", "p", 27017, "server port")
	rootCmd.PersistentFlags().StringVarP(&flagUser, "user", "u", "", "user name")
	rootCmd.PersistentFlags().StringVarP(&flagPassword, "password", "w", "", "password")
	rootCmd.PersistentFlags().StringVarP(&flagSessionKey, "key", "k", "", "session key to join instead of user/password")
	rootCmd.PersistentFlags().StringVar(&flagMongoSecret, "mongo-secret", "", "AWS secret holding the DB credentials, overrides user/password")
	rootCmd.PersistentFlags().BoolVar(&flagLocal, "local", false, "connect to a local unauthenticated DB (honours LOCAL_MONGO_URI)")
	rootCmd.PersistentFlags().Int64VarP(&flagGroup, "group", "g", -1, "group id to scope writes to (-1 for none)")
	rootCmd.PersistentFlags().Int64VarP(&flagImage, "image", "i", 0, "image id to attach ROIs to / export ROIs of")
	rootCmd.PersistentFlags().StringVar(&flagSentryDSN, "sentry-dsn", "", "report failures to this Sentry DSN")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "debug logging")

	rootCmd.MarkPersistentFlagRequired("image")

	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(exportCmd)
}

func makeLogger() logger.ILogger {
	level := logger.LogInfo
	if flagVerbose {
		level = logger.LogDebug
	}
	log := &logger.StdOutLogger{}
	log.SetLogLevel(level)
	return log
}

// openConverter builds and initializes the facade from the shared flags.
// The returned cleanup must run even on error paths, so callers defer it.
func openConverter(ctx context.Context, log logger.ILogger) (*converter.Converter, func(), error) {
	conv := converter.New(flagImage, log)
	cleanup := func() {
		if err := conv.Close(ctx); err != nil {
			log.Errorf("Failed to close session: %v", err)
		}
	}

	var group *int64
	if flagGroup >= 0 {
		group = &flagGroup
	}

	var err error
	switch {
	case flagLocal || len(flagMongoSecret) > 0:
		err = conv.InitializeWithSecret(ctx, flagMongoSecret, group)
	case len(flagSessionKey) > 0:
		err = conv.InitializeWithToken(ctx, flagServer, flagPort, flagSessionKey)
	default:
		err = conv.Initialize(ctx, flagUser, flagPassword, flagServer, flagPort, group)
	}
	if err != nil {
		return nil, cleanup, err
	}
	return conv, cleanup, nil
}

// connectionFlagsValid - one of the four connection modes must be fully
// specified: session key, AWS secret, local DB, or explicit credentials.
func connectionFlagsValid() bool {
	if len(flagSessionKey) > 0 || len(flagMongoSecret) > 0 || flagLocal {
		return true
	}
	return len(flagUser) > 0 && len(flagPassword) > 0
}
