/*
File    : apscript/main/main.go
Package : main
*/

// Package main is apscript's entry point: it hands off immediately to
// the cobra command tree in package cli.
package main

import (
	"os"

	"github.com/apscript-lang/apscript/cli"
)

func main() {
	if err := cli.Root().Execute(); err != nil {
		os.Exit(1)
	}
}
