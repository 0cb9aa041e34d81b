// Package main is the entry point for the qcfilter CLI application.
//
// qcfilter filters, searches and sorts the restaurant cards of a listing page
// the way the page's own filter controls would.
package main

import "github.com/ajxudir/qcfilter/cmd"

// main delegates to the cmd package, which handles the filter, session,
// watch, config and version subcommands.
func main() {
	cmd.Execute()
}
