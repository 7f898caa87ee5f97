// Command storectl inspects and maintains the persisted listing store.
package main

import (
	"os"

	"listing-marketplace/internal/config"
	"listing-marketplace/internal/storage"
)

func main() {
	a := &app{
		out:        os.Stdout,
		loadConfig: config.Load,
		openStore:  storage.Open,
	}
	if err := newRootCmd(a).Execute(); err != nil {
		os.Exit(1)
	}
}
