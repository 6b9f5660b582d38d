// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package hcl provides the HCL implementation of config.Loader.
//
// A configuration file looks like this:
//
//	input_dir  = "../raw_data_for_tests/tux"
//	output_dir = env("TSCONV_OUT", "tests_txt")
//	extension  = ".txt"
//	workers    = 4
//	summary    = "tests_txt/summary.yaml"
//
//	report {
//	  url       = "http://localhost:3000"
//	  namespace = "/progress"
//	}
//
// Every attribute is optional. The env(name, default) function reads an
// environment variable and falls back to default when it is unset.
package hcl
