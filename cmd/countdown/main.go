package main

import (
	"os"

	"github.com/charmbracelet/log"
)

func main() {
	if err := NewRootCmd().Execute(); err != nil {
		log.Error("countdown failed", "error", err)
		os.Exit(1)
	}
}
