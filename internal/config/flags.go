package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses the command-line configuration flags from args.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN
//	-driver database driver (postgres, sqlite)
//	-c/-config json file path with configs
//	-token-sign-key token signing key shared with the auth provider
//	-token-issuer expected token issuer
//	-token-audience expected token audience
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-log-level log level (debug, info, warn, error)
//	-generative-api-key generative model API key
//	-images-api-key image lookup API key
//	-image-workers number of image resolution workers
func parseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var databaseDSN, driver string
	var jsonConfigPath string
	var tokenSignKey, tokenIssuer, tokenAudience string
	var requestTimeout time.Duration
	var logLevel string
	var generativeAPIKey, imagesAPIKey string
	var imageWorkers int

	fs := flag.NewFlagSet("waste-tracker", flag.ContinueOnError)
	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&driver, "driver", "", "Database driver (postgres, sqlite)")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.StringVar(&tokenAudience, "token-audience", "", "Token audience")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.StringVar(&generativeAPIKey, "generative-api-key", "", "Generative model API key")
	fs.StringVar(&imagesAPIKey, "images-api-key", "", "Image lookup API key")
	fs.IntVar(&imageWorkers, "image-workers", 0, "Number of image resolution workers")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			TokenSignKey:  tokenSignKey,
			TokenIssuer:   tokenIssuer,
			TokenAudience: tokenAudience,
			LogLevel:      logLevel,
		},
		Storage: Storage{
			DB: DB{
				DSN:    databaseDSN,
				Driver: driver,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Adapter: Adapter{
			Generative: Generative{APIKey: generativeAPIKey},
			Images:     Images{APIKey: imagesAPIKey},
		},
		Workers: Workers{
			ImageWorkers: imageWorkers,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// It returns an empty string when neither Host nor Port are set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is
// "localhost" or empty, and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be between 1 and 65535")
	}

	if host != "localhost" && host != "" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
