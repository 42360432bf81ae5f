// Command menudemo loads a menu definition, opens it for a stub viewer and
// runs the tick loop for a few auto-update periods, logging what the menu
// renders. It exists to exercise the framework outside a game-server host.
package main

import (
	"log"
	"time"

	"github.com/osse101/MenuForge_Go/internal/config"
	"github.com/osse101/MenuForge_Go/internal/logger"
	"github.com/osse101/MenuForge_Go/menu"
	"github.com/osse101/MenuForge_Go/profile"
	"github.com/osse101/MenuForge_Go/scheduler"
	"github.com/osse101/MenuForge_Go/visual"
)

// demoViewer stands in for the player a real host would hand us.
type demoViewer struct {
	name   string
	online bool
}

func (v *demoViewer) Name() string { return v.name }
func (v *demoViewer) Online() bool { return v.online }

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	initLogger(cfg)

	loop := scheduler.NewLoop(time.Duration(cfg.TickIntervalMs)*time.Millisecond, cfg.AsyncWorkers)
	loop.Start()
	defer loop.Stop()

	loader := menu.NewLoader()
	def, err := loader.Load(cfg.MenuPath)
	if err != nil {
		log.Fatalf("Failed to load menu: %v", err)
	}

	layer, err := loader.Build(def, menu.Deps{
		Scheduler: loop,
		Skulls:    visual.NewSkullCache(visual.DefaultSkullCacheSize, profile.Default()),
	})
	if err != nil {
		log.Fatalf("Failed to build menu: %v", err)
	}

	viewer := &demoViewer{name: "steve", online: true}

	done := make(chan struct{})
	loop.Run(func() {
		layer.Open(viewer)
		logger.Info("Menu opened",
			"title", layer.Title().PlainText(),
			"viewer", viewer.Name(),
			"occupied_slots", layer.Inventory().Occupied())

		if def.UpdatePeriodTicks > 0 {
			layer.EnableAutoUpdate(def.UpdatePeriodTicks)
		}
	})
	loop.RunLater(func() {
		for _, slot := range layer.Inventory().Occupied() {
			stack := layer.Inventory().Item(slot)
			args := []any{"slot", slot, "material", stack.Material()}
			if meta := stack.Meta(); meta != nil && meta.DisplayName() != nil {
				args = append(args, "name", meta.DisplayName().PlainText())
			}
			logger.Info("Rendered slot", args...)
		}

		layer.Close()
		logger.Info("Menu closed", "viewer", viewer.Name())
		close(done)
	}, int64(cfg.RunTicks))

	<-done
}
