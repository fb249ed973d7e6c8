// Package main provides the heidi binary entry point. heidi validates and
// generates health identifiers such as NHS Numbers and CHI Numbers.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
