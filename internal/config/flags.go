package config

import (
	"errors"
	"flag"
	"net"
	"os"
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

// ParseFlags parses all configuration flags from os.Args.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN
//	-driver database driver name ("pgx" or "sqlite3")
//	-cache-dir session vault cache directory
//	-cache-expire session vault expiry (e.g., "24h")
//	-c/-config json file path with configs
//	-installation-salt per-installation salt (base64)
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-token-duration token duration (e.g., "1h", "30m")
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-escrow-attempts escrow redemption attempt budget
//	-escrow-validity default escrow validity window
//	-mail-relay mail relay base URL
//	-mail-from sender address for escrow mail
//	-janitor-interval vault janitor sweep interval
func ParseFlags() *StructuredConfig {
	fs := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	return parseFlagsFrom(fs, os.Args[1:])
}

func parseFlagsFrom(fs *flag.FlagSet, args []string) *StructuredConfig {
	var serverAddress NetAddress
	var databaseDSN string
	var databaseDriver string
	var cacheDir string
	var cacheExpire time.Duration
	var jsonConfigPath string
	var installationSalt string
	var tokenSignKey string
	var tokenIssuer string
	var tokenDuration time.Duration
	var requestTimeout time.Duration
	var escrowAttempts int
	var escrowValidity time.Duration
	var mailRelayURL string
	var mailFrom string
	var janitorInterval time.Duration

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&databaseDriver, "driver", "", "Database driver (pgx or sqlite3)")
	fs.StringVar(&cacheDir, "cache-dir", "", "Session vault cache directory")
	fs.DurationVar(&cacheExpire, "cache-expire", 0, "Session vault expiry (e.g., 24h)")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&installationSalt, "installation-salt", "", "Installation salt (base64)")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 1h, 30m)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.IntVar(&escrowAttempts, "escrow-attempts", 0, "Escrow redemption attempt budget")
	fs.DurationVar(&escrowValidity, "escrow-validity", 0, "Default escrow validity window")
	fs.StringVar(&mailRelayURL, "mail-relay", "", "Mail relay base URL")
	fs.StringVar(&mailFrom, "mail-from", "", "Sender address for escrow mail")
	fs.DurationVar(&janitorInterval, "janitor-interval", 0, "Vault janitor sweep interval")

	_ = fs.Parse(args)

	return &StructuredConfig{
		App: App{
			InstallationSalt: installationSalt,
			TokenSignKey:     tokenSignKey,
			TokenIssuer:      tokenIssuer,
			TokenDuration:    tokenDuration,
		},
		Storage: Storage{
			DB: DB{
				DSN:    databaseDSN,
				Driver: databaseDriver,
			},
			Cache: Cache{
				Dir:        cacheDir,
				ExpireTime: cacheExpire,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Escrow: Escrow{
			MaxAttempts:     escrowAttempts,
			DefaultValidity: escrowValidity,
		},
		Mail: Mail{
			RelayURL: mailRelayURL,
			From:     mailFrom,
		},
		Workers: Workers{
			JanitorInterval: janitorInterval,
		},
		JSONFilePath: jsonConfigPath,
	}
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
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

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
