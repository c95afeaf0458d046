package main

import (
	"errors"
	"os"

	"seedhunt/cmd/seedhunt/commands"
	"seedhunt/internal/domain"
)

func main() {
	err := commands.Execute()
	switch {
	case err == nil:
	case errors.Is(err, domain.ErrNotFound):
		os.Exit(2)
	default:
		os.Exit(1)
	}
}
