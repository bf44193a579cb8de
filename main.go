package main

import (
	"os"

	"github.com/bnema/vackup/internal/adapters/in/cli"
	buildinfo "github.com/bnema/vackup/pkg/version"
)

var (
	version string
	commit  string
	date    string
)

func main() {
	buildinfo.Set(version, commit, date)
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
