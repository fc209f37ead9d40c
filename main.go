package main

import (
	"os"

	"github.com/MediaVault-Admin/MediaVault-Admin/app"
)

func main() {
	err := app.Execute()
	if err != nil {
		os.Exit(1)
	}
}
