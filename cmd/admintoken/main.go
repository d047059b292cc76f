// Command admintoken mints a bearer token for the admin download log listing.
//
// The sign key and issuer are read from the same APP_ variables the server
// uses, so a token minted here is accepted by a server sharing that env.
//
//	APP_ADMIN_TOKEN_SIGN_KEY=secret admintoken -operator alice -ttl 1h
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/MKhiriev/resume-gate/internal/config"
	"github.com/MKhiriev/resume-gate/internal/logger"
	"github.com/MKhiriev/resume-gate/internal/utils"
)

func main() {
	log := logger.NewLogger("resume-gate-admintoken")

	var app config.App
	if err := env.ParseWithOptions(&app, env.Options{Prefix: "APP_"}); err != nil {
		log.Fatal().Err(err).Msg("error parsing env")
	}

	fs := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	operator := fs.String("operator", "", "operator name put into the token subject")
	ttl := fs.Duration("ttl", time.Hour, "token lifetime")
	issuer := fs.String("issuer", app.AdminTokenIssuer, "token issuer, must match APP_ADMIN_TOKEN_ISSUER on the server")
	_ = fs.Parse(os.Args[1:])

	if *issuer == "" {
		*issuer = "resume-gate"
	}

	token, err := utils.GenerateAdminToken(*issuer, *operator, *ttl, app.AdminTokenSignKey)
	if err != nil {
		log.Fatal().Err(err).Msg("error generating admin token")
	}

	fmt.Println(token.SignedString)
}
