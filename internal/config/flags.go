package config

import (
	"flag"
	"os"
)

// parses CLI flags for the seed subcommand
func ParseSeedFlags() Flags {
	args := os.Args[2:]

	fs := flag.NewFlagSet("seed", flag.ExitOnError)
	path := fs.String("path", "./resources/projects.json", "path to projects JSON file")
	clearFlag := fs.Bool("clear", false, "clear existing projects before seeding")
	fs.Parse(args) //nolint:errcheck,gosec // G104: ExitOnError flag set handles errors

	return Flags{Path: *path, Clear: *clearFlag}
}

// parses CLI flags for the update subcommand
func ParseUpdateFlags() Flags {
	args := os.Args[2:]

	fs := flag.NewFlagSet("update", flag.ExitOnError)
	path := fs.String("path", "./resources/projects.json", "path to projects JSON file")
	fs.Parse(args) //nolint:errcheck,gosec // G104: ExitOnError flag set handles errors

	return Flags{Path: *path}
}
