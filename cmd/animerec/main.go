// Animerec - Content-Based Anime Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

// Command animerec answers recommendation queries against a catalog file
// without starting the HTTP server.
//
//	animerec resolve naruto
//	animerec similar "Naruto" --type TV --limit 8
//	animerec genre Romance --sort members
//	animerec top --by rating
//	animerec batch < queries.txt
//
// Settings come from the same defaults, config.yaml and environment
// variables as the server. --catalog overrides CATALOG_PATH.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(exitCode(err))
	}
}
