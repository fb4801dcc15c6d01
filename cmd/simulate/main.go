// Command simulate runs an arena level headless for a number of ticks and
// logs every event the world posts.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/milk9111/arena/common"
	"github.com/milk9111/arena/ecs"
	"github.com/milk9111/arena/game"
	"go.uber.org/zap"
)

var loggedEvents = []ecs.EventType{
	ecs.EventEntityRemoved,
	ecs.EventPlayerHPChanged,
	ecs.EventEntityAttacked,
	ecs.EventPositionUpdated,
}

func main() {
	levelName := flag.String("level", game.DefaultLevel, "level name in levels/")
	ticks := flag.Int("ticks", 600, "number of ticks to run")
	attackEvery := flag.Int("attack-every", 20, "request the player's primary attack every n ticks (0 disables)")
	debug := flag.Bool("debug", false, "human-readable debug logging")
	flag.Parse()

	logger, err := common.NewLogger(*debug)
	if err != nil {
		log.Fatal(err)
	}
	common.SetLogger(logger)
	defer func() { _ = logger.Sync() }()

	if err := run(*levelName, *ticks, *attackEvery); err != nil {
		logger.Error("simulate", zap.Error(err))
		os.Exit(1)
	}
}

func run(levelName string, ticks, attackEvery int) error {
	if ticks < 0 {
		return fmt.Errorf("ticks must not be negative, got %d", ticks)
	}

	session, err := game.New(levelName)
	if err != nil {
		return err
	}
	defer session.Close()

	w := session.World
	counts := make(map[ecs.EventType]int, len(loggedEvents))
	for _, t := range loggedEvents {
		sub := w.Events().Subscribe(t, func(evt ecs.Event) {
			counts[evt.Type]++
			common.Logger().Info("event",
				zap.Uint64("frame", w.Frame()),
				zap.String("type", string(evt.Type)),
				zap.Stringer("entity", evt.Entity),
				zap.Float64("x", evt.Position.X),
				zap.Float64("y", evt.Position.Y),
			)
		})
		defer sub.Cancel()
	}

	for i := 0; i < ticks; i++ {
		if attackEvery > 0 && i%attackEvery == 0 {
			session.RequestAttack(0)
		}
		session.Step()
	}

	fields := []zap.Field{zap.Int("ticks", ticks), zap.Int("removed", session.Removal.Removed())}
	for _, t := range loggedEvents {
		fields = append(fields, zap.Int(string(t), counts[t]))
	}
	if h, ok := session.PlayerHealth(); ok {
		fields = append(fields, zap.Int("player_hp", h.Points))
	}
	common.Logger().Info("simulation finished", fields...)
	return nil
}
