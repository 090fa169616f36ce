package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rkaw92/guidurl/urlguid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const usage = `usage:
  guidurl decode [value]   decode one value (prompts on stdin when omitted)
  guidurl serve            serve GET /identifiers/{encoded}
`

func setupLogging(config Config) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zerolog.SetGlobalLevel(config.Level())
	if config.LOG_PRETTY {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
}

func run(args []string) int {
	if len(args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		return 2
	}
	config, err := NewConfigFromEnv()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}
	setupLogging(config)
	converter := urlguid.Converter{}

	switch command := args[1]; command {
	case "decode":
		var source LineSource = NewReaderSource(os.Stdin)
		prompt := config.PROMPT
		switch len(args) {
		case 2:
		case 3:
			source = &ArgSource{value: args[2]}
			prompt = ""
		default:
			fmt.Fprint(os.Stderr, usage)
			return 2
		}
		ok, err := runDecode(converter, source, NewSink(config.OUTPUT_FORMAT, os.Stdout), prompt)
		if err != nil {
			log.Error().Err(err).Msg("decode failed")
			return 2
		}
		if !ok {
			return 1
		}
		return 0
	case "serve":
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		if err := runAPI(ctx, converter, config); err != nil {
			log.Error().Err(err).Msg("api stopped")
			return 1
		}
		return 0
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n%s", command, usage)
		return 2
	}
}

func main() {
	os.Exit(run(os.Args))
}
