// Command chesstp-peer is a headless chesstp session peer. It hosts or
// joins one network game and exchanges moves typed on stdin with the
// remote instance:
//
//	e2e4          play a move
//	e7e8q         play a move with promotion
//	quit <text>   leave the session with a farewell message
package main

import (
	"bufio"
	"context"
	"flag"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/INDA25PlusPlus/rsoderh-gui/internal/chess"
	"github.com/INDA25PlusPlus/rsoderh-gui/internal/chesstp"
	"github.com/INDA25PlusPlus/rsoderh-gui/internal/config"
	"github.com/INDA25PlusPlus/rsoderh-gui/internal/network"
	"github.com/INDA25PlusPlus/rsoderh-gui/internal/observability"
)

// pollInterval is how often the session polls for inbound frames.
const pollInterval = 50 * time.Millisecond

func main() {
	configPath := flag.String("config", "", "path to TOML peer configuration")
	mode := flag.String("mode", "", "session mode: local, client or server")
	listen := flag.Int("listen", 0, "server port to listen on")
	connect := flag.String("connect", "", "client address to connect to")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			logger := observability.InitLogger("chesstp-peer", false)
			logger.Fatal().Err(err).Msg("could not load configuration")
		}
		cfg = loaded
	}
	if *mode != "" {
		cfg.Mode = *mode
	}
	if *listen != 0 {
		cfg.Listen = *listen
	}
	if *connect != "" {
		cfg.Connect = *connect
	}
	if *debug {
		cfg.Debug = true
	}

	logger := observability.InitLogger("chesstp-peer", cfg.Debug)

	if err := cfg.Validate(); err != nil {
		logger.Fatal().Err(err).Msg("invalid configuration")
	}

	sessionMode, err := network.ParseMode(cfg.Mode)
	if err != nil {
		logger.Fatal().Err(err).Msg("invalid mode")
	}
	if sessionMode == network.Local {
		logger.Info().Msg("local mode needs no network session, nothing to do")
		return
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	stream, err := establish(ctx, sessionMode, cfg, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("could not establish session")
	}
	defer stream.Close()

	if err := run(ctx, stream, logger); err != nil && ctx.Err() == nil {
		logger.Error().Err(err).Msg("session ended with error")
		os.Exit(1)
	}
	logger.Info().Msg("session ended")
}

func establish(ctx context.Context, mode network.Mode, cfg config.PeerConfig, logger zerolog.Logger) (*network.ConnectionStream, error) {
	opt := network.LoggerOption(logger)
	switch mode {
	case network.Server:
		logger.Info().Int("port", cfg.Listen).Msg("waiting for peer")
		return network.Listen(ctx, cfg.Listen, opt)
	default:
		logger.Info().Str("addr", cfg.Connect).Msg("connecting to peer")
		return network.Dial(ctx, cfg.Connect, opt)
	}
}

// run drives the session until either side quits. The stream and board
// are owned exclusively by the polling goroutine; stdin lines reach it
// over a channel.
func run(ctx context.Context, stream *network.ConnectionStream, logger zerolog.Logger) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	commands := make(chan string)
	group, ctx := errgroup.WithContext(ctx)

	// Reading stdin cannot be cancelled, so the reader is not part of
	// the group; it is abandoned when the session ends and the process
	// exits.
	go func() {
		defer close(commands)
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			select {
			case commands <- strings.TrimSpace(scanner.Text()):
			case <-ctx.Done():
				return
			}
		}
	}()

	group.Go(func() error {
		defer cancel()

		var engine chess.Engine = chess.NewRelocationEngine()
		ticker := time.NewTicker(pollInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return ctx.Err()

			case <-ticker.C:
				message, err := stream.Accept()
				if err != nil {
					return err
				}
				switch msg := message.(type) {
				case nil:
				case chesstp.Move:
					engine.SetSnapshot(msg.Board)
					logger.Info().
						Stringer("from", msg.Source).
						Stringer("to", msg.Dest).
						Stringer("phase", msg.Phase).
						Str("board", chesstp.EncodeBoard(msg.Board)).
						Msg("peer moved")
					if msg.Phase != chess.Ongoing {
						return nil
					}
				case chesstp.Quit:
					logger.Info().Str("message", msg.Message).Msg("peer quit")
					return nil
				}

			case line, ok := <-commands:
				if !ok {
					return nil
				}
				if line == "" {
					continue
				}
				if text, isQuit := strings.CutPrefix(line, "quit"); isQuit && (text == "" || text[0] == ' ') {
					quit, err := chesstp.NewQuit(strings.TrimSpace(text))
					if err != nil {
						logger.Warn().Err(err).Msg("quit message too long")
						continue
					}
					if err := stream.Write(quit); err != nil {
						return err
					}
					return nil
				}

				move, err := parseMoveCommand(line, engine)
				if err != nil {
					logger.Warn().Err(err).Str("command", line).Msg("bad move command")
					continue
				}
				if err := stream.Write(move); err != nil {
					return err
				}
				logger.Info().
					Stringer("from", move.Source).
					Stringer("to", move.Dest).
					Str("board", chesstp.EncodeBoard(move.Board)).
					Msg("move sent")
				if move.Phase != chess.Ongoing {
					return nil
				}
			}
		}
	})

	return group.Wait()
}

// parseMoveCommand turns a "e2e4" or "e7e8q" command into a move
// message by applying it through the rules engine. The message carries
// the engine's resulting board snapshot and the phase the outcome
// implies.
func parseMoveCommand(line string, engine chess.Engine) (chesstp.Move, error) {
	if len(line) != 4 && len(line) != 5 {
		return chesstp.Move{}, errors.New("want <from><to>[promotion], e.g. e2e4 or e7e8q")
	}

	source, ok := chess.ParsePosition(line[0:2])
	if !ok {
		return chesstp.Move{}, errors.Errorf("bad source square %q", line[0:2])
	}
	dest, ok := chess.ParsePosition(line[2:4])
	if !ok {
		return chesstp.Move{}, errors.Errorf("bad destination square %q", line[2:4])
	}

	var promotion chess.Promotion
	if len(line) == 5 {
		kind, ok := chess.PieceKindFromLetter(line[4])
		if !ok {
			return chesstp.Move{}, errors.Errorf("bad promotion letter %q", line[4])
		}
		promotion = chess.PromoteTo(kind)
	}

	mover := engine.Turn()
	outcome, err := engine.ApplyMove(source, dest, promotion)
	if err != nil {
		return chesstp.Move{}, err
	}

	phase := chess.Ongoing
	if outcome == chess.MoveCheckmate {
		phase = chess.Win(mover)
	}

	return chesstp.Move{
		Source:    source,
		Dest:      dest,
		Promotion: promotion,
		Phase:     phase,
		Board:     engine.Snapshot(),
	}, nil
}
