// Command survey-api serves the survey back-office REST API.
//
// @title        Survey Backend API
// @version      2.0
// @description  Back office for market research: companies, clients, projects, questionnaires, questions, answers and audience filters.
// @BasePath     /api/v2
package main

import (
	"os"

	"github.com/rs/zerolog/log"
)

// version is stamped at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("survey-api failed")
		os.Exit(1)
	}
}
