// Package commands implements the seedhunt CLI surface.
package commands
