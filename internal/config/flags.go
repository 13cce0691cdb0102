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
//	-grpc-address grpc server address in format [host]:[port]
//	-d database DSN
//	-c/-config json file path with configs
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-token-audience token audience name
//	-access-token-ttl access token lifetime (e.g., "15m")
//	-refresh-token-ttl refresh token lifetime (e.g., "24h")
//	-password-scheme argon2id, bcrypt or plain
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-tls-cert / -tls-key TLS certificate and key files
func ParseFlags() (*StructuredConfig, error) {
	return parseFlags(os.Args[0], os.Args[1:])
}

func parseFlags(name string, args []string) (*StructuredConfig, error) {
	var serverAddress, grpcServerAddress NetAddress
	var databaseDSN string
	var jsonConfigPath string
	var tokenSignKey string
	var tokenIssuer string
	var tokenAudience string
	var accessTokenTTL time.Duration
	var refreshTokenTTL time.Duration
	var passwordScheme string
	var requestTimeout time.Duration
	var tlsCert, tlsKey string

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.Var(&grpcServerAddress, "grpc-address", "Net grpc server address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.StringVar(&tokenAudience, "token-audience", "", "Token audience")
	fs.DurationVar(&accessTokenTTL, "access-token-ttl", 0, "Access token lifetime (e.g., 15m)")
	fs.DurationVar(&refreshTokenTTL, "refresh-token-ttl", 0, "Refresh token lifetime (e.g., 24h)")
	fs.StringVar(&passwordScheme, "password-scheme", "", "Password scheme: argon2id, bcrypt or plain")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&tlsCert, "tls-cert", "", "TLS certificate file")
	fs.StringVar(&tlsKey, "tls-key", "", "TLS key file")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		App: App{
			JWT: JWT{
				Issuer:          tokenIssuer,
				Audience:        tokenAudience,
				SigningKey:      tokenSignKey,
				AccessTokenTTL:  accessTokenTTL,
				RefreshTokenTTL: refreshTokenTTL,
			},
			PasswordScheme: passwordScheme,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			GRPCAddress:    grpcServerAddress.String(),
			RequestTimeout: requestTimeout,
			TLSCertFile:    tlsCert,
			TLSKeyFile:     tlsKey,
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
