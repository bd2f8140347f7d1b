package main

import (
	"context"
	"encoding/hex"
	"fmt"
	"net"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"git.greysoh.dev/imterah/worldsockd/client"
	"git.greysoh.dev/imterah/worldsockd/config"
	"git.greysoh.dev/imterah/worldsockd/server"
	"git.greysoh.dev/imterah/worldsockd/sessionkeys"
	"git.greysoh.dev/imterah/worldsockd/status"
	"github.com/charmbracelet/log"
	"github.com/urfave/cli/v2"
)

func setLogLevel(logLevel string) {
	switch logLevel {
	case "debug":
		log.SetLevel(log.DebugLevel)

	case "info":
		log.SetLevel(log.InfoLevel)

	case "warn":
		log.SetLevel(log.WarnLevel)

	case "error":
		log.SetLevel(log.ErrorLevel)

	case "fatal":
		log.SetLevel(log.FatalLevel)
	}
}

func decodeHexFlag(cCtx *cli.Context, name string) ([]byte, error) {
	value, err := hex.DecodeString(cCtx.String(name))

	if err != nil {
		return nil, fmt.Errorf("--%s is not valid hex: %w", name, err)
	}

	return value, nil
}

func worldServerEntrypoint(cCtx *cli.Context) error {
	fmt.Print("World socket server\n\n")

	serverConfig := config.Default()

	if path := cCtx.String("config"); path != "" {
		loaded, err := config.Load(path)

		if err != nil {
			return err
		}

		serverConfig = loaded
	}

	if os.Getenv("WORLDSOCKD_LOG_LEVEL") == "" {
		setLogLevel(serverConfig.LogLevel)
	}

	if cCtx.IsSet("listen") {
		serverConfig.Listen = cCtx.String("listen")
	}

	if cCtx.IsSet("handshake-timeout") {
		serverConfig.HandshakeTimeout = cCtx.Duration("handshake-timeout")
	}

	if cCtx.IsSet("rate-limit") {
		serverConfig.RateLimit.Enabled = cCtx.Bool("rate-limit")
	}

	accounts, err := serverConfig.GameAccounts()

	if err != nil {
		return err
	}

	if len(accounts) == 0 {
		log.Warn("No game accounts configured. Every fresh login will be denied")
	}

	world, err := server.NewWorldServer(server.NewMemoryAccounts(accounts...), server.NewMemorySessions(), serverConfig.HandshakeTimeout, func(session *server.Session) error {
		for {
			packet, err := session.Read()

			if err != nil {
				return err
			}

			log.Debugf("Received opcode 0x%04X (%d bytes) from '%s'", uint16(packet.Opcode), len(packet.Payload), session.Account.Name)
		}
	})

	if err != nil {
		return err
	}

	world.RateLimit = serverConfig.ServerRateLimit()

	listener, err := net.Listen("tcp", serverConfig.Listen)

	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info("World server is listening...", "address", listener.Addr().String())

	return world.Serve(ctx, listener)
}

func worldProbeEntrypoint(cCtx *cli.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), cCtx.Duration("timeout"))
	defer cancel()

	conn, err := (&net.Dialer{}).DialContext(ctx, "tcp", cCtx.String("address"))

	if err != nil {
		return err
	}

	var world *client.WorldClient

	if cCtx.IsSet("continuation-key") {
		world, err = client.New("", nil)
	} else {
		var secret []byte
		secret, err = decodeHexFlag(cCtx, "key")

		if err == nil {
			world, err = client.New(cCtx.String("ticket"), secret)
		}
	}

	if err != nil {
		conn.Close()
		return err
	}

	var result *client.Result

	if cCtx.IsSet("continuation-key") {
		var sessionKey []byte
		sessionKey, err = decodeHexFlag(cCtx, "session-key")

		if err != nil {
			conn.Close()
			return err
		}

		_, result, err = world.ContinueConn(ctx, conn, sessionKey, cCtx.Uint64("continuation-key"))
	} else {
		_, result, err = world.Conn(ctx, conn)
	}

	if result != nil {
		fmt.Printf("status: %s (0x%08X)\n", result.Status, uint32(result.Status))

		if result.Status == status.Ok {
			fmt.Printf("session key: %s\n", hex.EncodeToString(result.SessionKey))
		}

		result.Wipe()
	}

	if err != nil {
		return err
	}

	conn.Close()
	return nil
}

func worldDeriveEntrypoint(cCtx *cli.Context) error {
	purpose, err := sessionkeys.ParsePurpose(cCtx.String("purpose"))

	if err != nil {
		return err
	}

	in := sessionkeys.NonceSet{
		Enabled: cCtx.Bool("enabled"),
	}

	if in.Secret, err = decodeHexFlag(cCtx, "secret"); err != nil {
		return err
	}

	if in.ClientNonce, err = decodeHexFlag(cCtx, "client"); err != nil {
		return err
	}

	if in.ServerNonce, err = decodeHexFlag(cCtx, "server"); err != nil {
		return err
	}

	if cCtx.IsSet("token") {
		in.Token = sessionkeys.TokenBytes(cCtx.Uint64("token"))
	}

	// Unused inputs are rejected as malformed when empty, so leave them nil.
	for _, field := range []*[]byte{&in.Secret, &in.ClientNonce, &in.ServerNonce} {
		if len(*field) == 0 {
			*field = nil
		}
	}

	output, err := sessionkeys.Derive(purpose, in)

	if err != nil {
		return err
	}

	fmt.Println(hex.EncodeToString(output))
	return nil
}

func worldStatusEntrypoint(cCtx *cli.Context) error {
	if cCtx.Bool("list") {
		for _, code := range status.Codes() {
			fmt.Printf("0x%08X %s\n", uint32(code), code)
		}

		return nil
	}

	if cCtx.NArg() == 0 {
		return fmt.Errorf("expected a status code value or name")
	}

	for _, arg := range cCtx.Args().Slice() {
		if code, ok := status.ByName(arg); ok {
			fmt.Printf("0x%08X %s\n", uint32(code), code)
			continue
		}

		value, err := strconv.ParseUint(strings.TrimSpace(arg), 0, 32)

		if err != nil {
			return fmt.Errorf("'%s' is neither a status code name nor a number", arg)
		}

		code, ok := status.Lookup(uint32(value))

		if !ok {
			log.Warnf("0x%08X is not a known status code", uint32(value))
		}

		fmt.Printf("0x%08X %s\n", uint32(code), code)
	}

	return nil
}

func main() {
	setLogLevel(os.Getenv("WORLDSOCKD_LOG_LEVEL"))

	app := &cli.App{
		Name:                 "worldsockd",
		Usage:                "world socket handshake server and tooling",
		EnableBashCompletion: true,
		Commands: []*cli.Command{
			{
				Name:    "server",
				Aliases: []string{"s"},
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "config",
						Usage: "path to YAML configuration",
					},
					&cli.StringFlag{
						Name:  "listen",
						Usage: "address to listen on (overrides the configuration)",
					},
					&cli.DurationFlag{
						Name:  "handshake-timeout",
						Usage: "time allowed for a handshake (overrides the configuration)",
					},
					&cli.BoolFlag{
						Name:  "rate-limit",
						Usage: "if set, limits handshakes per remote address (overrides the configuration)",
					},
				},
				Usage:  "runs the world socket server",
				Action: worldServerEntrypoint,
			},
			{
				Name:    "probe",
				Aliases: []string{"p"},
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "address",
						Usage:    "world server to connect to",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "ticket",
						Usage: "realm join ticket (game account name)",
					},
					&cli.StringFlag{
						Name:  "key",
						Usage: "hex encoded account secret",
					},
					&cli.Uint64Flag{
						Name:  "continuation-key",
						Usage: "if set, resumes a session instead of logging in",
					},
					&cli.StringFlag{
						Name:  "session-key",
						Usage: "hex encoded session key to resume with",
					},
					&cli.DurationFlag{
						Name:  "timeout",
						Usage: "time allowed for the handshake",
						Value: 10 * time.Second,
					},
				},
				Usage:  "runs a client handshake against a server and prints the auth response",
				Action: worldProbeEntrypoint,
			},
			{
				Name:    "derive",
				Aliases: []string{"d"},
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "purpose",
						Usage:    "auth-check, session-key, continued-session, encryption-key, realm-auth or enable-encryption",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "secret",
						Usage:    "hex encoded secret",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "client",
						Usage: "hex encoded client nonce",
					},
					&cli.StringFlag{
						Name:  "server",
						Usage: "hex encoded server nonce",
					},
					&cli.Uint64Flag{
						Name:  "token",
						Usage: "continuation token",
					},
					&cli.BoolFlag{
						Name:  "enabled",
						Usage: "encryption flag for enable-encryption",
					},
				},
				Usage:  "derives key material and prints it as hex",
				Action: worldDeriveEntrypoint,
			},
			{
				Name:  "status",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "list",
						Usage: "if set, lists every known status code",
					},
				},
				Usage:     "translates status code values and names",
				ArgsUsage: "[value or name...]",
				Action:    worldStatusEntrypoint,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
