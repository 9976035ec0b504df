// Package main is the replay tool: it feeds a file of captured gateway
// envelopes (one JSON document per line) through the event handlers and
// reports what landed in each cache. Useful for inspecting recorded
// sessions without a live gateway connection.
package main

import (
	"bufio"
	"encoding/json"
	"os"

	"go.uber.org/zap"

	"github.com/parsascontentcorner/discordstate/internal/config"
	"github.com/parsascontentcorner/discordstate/pkg/events"
	"github.com/parsascontentcorner/discordstate/pkg/logger"
	"github.com/parsascontentcorner/discordstate/pkg/state"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log, err := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		// Sync errors on terminals and pipes are expected.
		_ = log.Sync()
	}()

	file, err := os.Open(cfg.Replay.File)
	if err != nil {
		log.Fatal("failed to open replay file", zap.Error(err))
	}
	defer func() {
		_ = file.Close()
	}()

	log.Info("replaying gateway events",
		zap.String("file", cfg.Replay.File),
		zap.Uint8("cache_policy", uint8(cfg.Cache.Policy)),
	)

	st := state.New(state.WithLogger(log))

	var handled, skipped int
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var env events.Envelope
		if err := json.Unmarshal(line, &env); err != nil {
			log.Warn("skipping undecodable envelope", zap.Error(err))
			skipped++
			continue
		}
		if err := events.Dispatch(st, cfg.Cache.Policy, env); err != nil {
			log.Warn("skipping bad event",
				zap.String("type", env.Type),
				zap.Error(err),
			)
			skipped++
			continue
		}
		handled++
	}
	if err := scanner.Err(); err != nil {
		log.Fatal("failed reading replay file", zap.Error(err))
	}

	log.Info("replay finished",
		zap.Int("handled", handled),
		zap.Int("skipped", skipped),
		zap.Int("guilds", st.Guilds.Len()),
		zap.Int("roles", st.Roles.Len()),
		zap.Int("channels", st.Channels.Len()),
		zap.Int("users", st.Users.Len()),
		zap.Int("messages", st.Messages.Len()),
	)
}
