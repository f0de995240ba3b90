package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/bookstore/internal/flagx"
)

// parseFlags populates selected server Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   HTTP bind address (e.g., ":8000")
//	-s string   JWT HMAC secret key
//	-t int      access token validity, minutes
//	-H string   database host
//	-P string   database port
//	-u string   database username
//	-p string   database password
//	-n string   database name
//
// Notes:
//   - The function first filters os.Args to only the flags it recognizes using
//     flagx.FilterArgs, avoiding collisions with other components.
//   - The duration flag is accepted as an integer in minutes and then
//     converted to a time.Duration value.
func parseFlags(config *Config) {
	// Filter args to include only the flags handled here.
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-s", "-t", "-H", "-P", "-u", "-p", "-n"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddr, "a", config.EndpointAddr, "address and port to run server")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")

	tokenValidityDuration := fs.Int("t", int(config.TokenValidityDuration.Minutes()), "token_validity_duration (in minutes)")

	fs.StringVar(&config.DBHost, "H", config.DBHost, "database host")
	fs.StringVar(&config.DBPort, "P", config.DBPort, "database port")
	fs.StringVar(&config.DBUsername, "u", config.DBUsername, "database username")
	fs.StringVar(&config.DBPassword, "p", config.DBPassword, "database password")
	fs.StringVar(&config.DBName, "n", config.DBName, "database name")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.TokenValidityDuration = time.Duration(*tokenValidityDuration) * time.Minute
}
