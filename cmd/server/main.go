// Package main is the entry point for the greeting service HTTP server.
package main

import (
	"log"
	"os"
)

// version is overridden at build time with -ldflags "-X main.version=..."
var version = "dev"

func main() {
	if err := newRootCommand(os.Stdout).Execute(); err != nil {
		log.Printf("greeting-service: %v", err)
		os.Exit(1)
	}
}
