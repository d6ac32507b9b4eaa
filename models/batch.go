// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// BatchFile is the YAML document accepted by the batch command.
//
//	jobs:
//	  - name: blame-bob
//	    endpoint: blame
//	    params:
//	      name: bob
type BatchFile struct {
	Jobs []BatchJob `yaml:"jobs"`
}

// BatchJob is a single endpoint call inside a batch.
type BatchJob struct {
	// Name identifies the job in logs and is used as the output file stem
	// when Output is empty.
	Name string `yaml:"name"`

	// Endpoint is the endpoint name or alias.
	Endpoint string `yaml:"endpoint"`

	// Params are raw string values, converted per parameter kind.
	Params map[string]string `yaml:"params"`

	// Output is an optional file name relative to the batch output directory.
	Output string `yaml:"output"`
}

// BatchOutcome reports what happened to one job.
type BatchOutcome struct {
	Job      BatchJob
	Path     string
	Size     int
	Duration time.Duration
	Err      error
}
