package main

import (
	"os"

	"github.com/MKhiriev/go-npmrc/internal/logger"
	"github.com/MKhiriev/go-npmrc/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	info := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	cmd := newRootCmd(newCLI(os.Stdout, os.Stderr, info))
	if err := cmd.Execute(); err != nil {
		log := logger.NewConsoleLogger("npmrc", os.Stderr, false)
		log.Fatal().Err(err).Msg("command failed")
	}
}
