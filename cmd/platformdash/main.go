// Command platformdash serves the low-code platform comparison dashboard and
// maintains its catalog.
//
//	platformdash serve                      # HTTP API (+ /metrics, /health, /swagger)
//	platformdash seed [--file f] [--force]  # load the catalog
//	platformdash export comparison|features|cost
//	platformdash remove NAME
//
// Configuration comes from the environment (optionally a .env file); see
// internal/config.
//
// @title        Low-Code Platform Dashboard API
// @version      1.0
// @description  Compare low-code platforms by OS, scores, features and cost, and collect user reviews.
// @license.name MIT
// @BasePath     /api/v1
package main

import (
	"os"
)

// version is stamped at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
