package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/arena/common"
	"github.com/milk9111/arena/game"
	"github.com/milk9111/arena/prefabs"
	"go.uber.org/zap"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug logging and collider outlines")
	levelName := flag.String("level", game.DefaultLevel, "level name in levels/")
	watch := flag.Bool("watch", true, "reload prefabs/*.yaml and prefabs/scripts/*.tengo on change")
	flag.Parse()

	logger, err := common.NewLogger(*debug)
	if err != nil {
		log.Fatal(err)
	}
	common.SetLogger(logger)
	defer func() { _ = logger.Sync() }()

	session, err := game.New(*levelName)
	if err != nil {
		logger.Fatal("start session", zap.Error(err))
	}
	defer session.Close()

	var watcher *prefabs.Watcher
	if *watch {
		watcher, err = prefabs.NewWatcher(prefabs.Dir, prefabs.Dir+"/scripts")
		if err != nil {
			logger.Warn("hot reload disabled", zap.Error(err))
			watcher = nil
		} else {
			defer watcher.Close()
		}
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(baseWidth*2, baseHeight*2)
	ebiten.SetWindowTitle("arena")

	if err := ebiten.RunGame(NewGame(session, watcher, *debug)); err != nil {
		logger.Fatal("run game", zap.Error(err))
	}
}
