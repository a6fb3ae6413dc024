/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package publish attaches reports to job runs.
//
// A Step reads report JSON inline or from a file inside the run's workspace,
// builds the report with package ingest, and attaches it to the run. Documents
// that fail schema validation are logged and skipped so a malformed report
// never fails the run; every other error is returned.
//
//	run := publish.NewRun("build-42")
//	step := publish.NewStep()
//	step.JSONFile = "out/report.json"
//	step.Label = "Nightly"
//	if _, err := step.Perform(ctx, run, workspace); err != nil {
//		return err
//	}
package publish
