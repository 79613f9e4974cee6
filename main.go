// Package main is the entry point for the scopeaudit CLI.
package main

import "scopeaudit.dev/pkg/scopeaudit/cmd"

func main() {
	cmd.Execute()
}
