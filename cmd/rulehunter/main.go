// Package main Rule Hunter
// @title Rule Hunter API
// @version 1.0
// @description Evaluates boolean skip-rule expressions and plans renames for type catalogs
// @license.name Apache 2.0
// @license.url https://opensource.org/licenses/Apache-2.0
// @BasePath /
package main

import (
	"fmt"
	"os"

	"github.com/DjordjeVuckovic/rule-hunter/pkg/logging"
)

func main() {
	logging.Setup(os.Getenv("LOG_LEVEL"))

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
