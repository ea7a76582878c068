package config

import (
	"errors"
	"flag"
	"fmt"
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

// stringList is a comma separated flag.Value.
type stringList []string

func (l *stringList) String() string {
	return strings.Join(*l, ",")
}

func (l *stringList) Set(s string) error {
	*l = splitList(s)
	return nil
}

// parseFlags parses configuration flags from args on a private flag set,
// so it can be called more than once per process.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-grpc-address grpc server address in format [host]:[port]
//	-s remote backend URL used by the client
//	-d database DSN
//	-c/-config json file path with configs
//	-password-hash-key password hash key
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-token-duration token duration (e.g., "1h", "30m")
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-hash-key request integrity hash key
//	-entity-types comma separated entity types
//	-sensitive-fields comma separated encrypted field names
//	-sync-interval periodic sync interval
//	-max-attempts attempts per retried sync
//	-log-file / -log-level client log settings
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet(programName(), flag.ContinueOnError)

	var (
		serverAddress, grpcServerAddress NetAddress
		adapterAddress                   string
		databaseDSN                      string
		jsonConfigPath                   string
		passwordHashKey                  string
		tokenSignKey                     string
		tokenIssuer                      string
		tokenDuration                    time.Duration
		requestTimeout                   time.Duration
		hashKey                          string
		entityTypes                      stringList
		sensitiveFields                  stringList
		syncInterval                     time.Duration
		maxAttempts                      int
		logFile                          string
		logLevel                         string
	)

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.Var(&grpcServerAddress, "grpc-address", "Net grpc server address host:port")
	fs.StringVar(&adapterAddress, "s", "", "Remote backend URL")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&passwordHashKey, "password-hash-key", "", "Password hash key")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 1h, 30m)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&hashKey, "hash-key", "", "Request integrity hash key")
	fs.Var(&entityTypes, "entity-types", "Comma separated entity types")
	fs.Var(&sensitiveFields, "sensitive-fields", "Comma separated encrypted field names")
	fs.DurationVar(&syncInterval, "sync-interval", 0, "Periodic sync interval")
	fs.IntVar(&maxAttempts, "max-attempts", 0, "Attempts per retried sync")
	fs.StringVar(&logFile, "log-file", "", "Client log file")
	fs.StringVar(&logLevel, "log-level", "", "Client log level")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			PasswordHashKey: passwordHashKey,
			TokenSignKey:    tokenSignKey,
			TokenIssuer:     tokenIssuer,
			TokenDuration:   tokenDuration,
			HashKey:         hashKey,
		},
		Storage: Storage{
			DB: DB{DSN: databaseDSN},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			GRPCAddress:    grpcServerAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:    adapterAddress,
			RequestTimeout: requestTimeout,
		},
		Sync: Sync{
			EntityTypes:     entityTypes,
			SensitiveFields: sensitiveFields,
			MaxAttempts:     maxAttempts,
		},
		Workers: Workers{
			SyncInterval: syncInterval,
		},
		Log: Log{
			File:  logFile,
			Level: logLevel,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
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

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1..65535")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func programName() string {
	if len(os.Args) == 0 {
		return "sync"
	}
	return os.Args[0]
}
