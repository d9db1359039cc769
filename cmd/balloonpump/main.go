// Balloonpump opens the balloon toy: hold the pump button (or the space bar)
// to blow up balloons, click them to pop them into confetti.
package main

import (
	"flag"
	"log"
	"os"

	"github.com/phanxgames/balloonpump"
)

func main() {
	configPath := flag.String("config", "", "YAML config file (defaults built in)")
	assetsDir := flag.String("assets", "", "sprite directory (overrides config)")
	scriptPath := flag.String("script", "", "JSON test script to play, then exit")
	debug := flag.Bool("debug", false, "show stats overlay and log counters")
	seed := flag.Uint64("seed", 0, "random seed (0 = time based)")
	watch := flag.Bool("watch", false, "reload -config when the file changes")
	flag.Parse()

	log.SetFlags(log.Ltime | log.Lmicroseconds)

	cfg := balloonpump.DefaultConfig()
	if *configPath != "" {
		var err error
		cfg, err = balloonpump.LoadConfig(*configPath)
		if err != nil {
			log.Fatal(err)
		}
	}
	overrides := func(c *balloonpump.Config) {
		if *assetsDir != "" {
			c.AssetsDir = *assetsDir
		}
		if *debug {
			c.Debug = true
		}
		if *seed != 0 {
			c.Seed = *seed
		}
	}
	overrides(&cfg)

	scene := balloonpump.NewScene(cfg)
	scene.Preload(balloonpump.LoadAssets(os.DirFS(cfg.AssetsDir)))
	scene.OnLoaded(func() {
		log.Printf("[balloonpump] assets ready")
	})

	rc := balloonpump.RunConfig{
		Title:     cfg.Window.Title,
		Scale:     cfg.Window.Scale,
		Overrides: overrides,
	}

	if *scriptPath != "" {
		data, err := os.ReadFile(*scriptPath)
		if err != nil {
			log.Fatalf("read script: %v", err)
		}
		runner, err := balloonpump.LoadTestScript(data)
		if err != nil {
			log.Fatal(err)
		}
		scene.SetTestRunner(runner)
		rc.ExitWhenScriptDone = true
	}

	if *watch {
		if *configPath == "" {
			log.Fatal("-watch needs -config")
		}
		w, err := balloonpump.WatchConfig(*configPath)
		if err != nil {
			log.Fatal(err)
		}
		rc.Watcher = w
	}

	err := balloonpump.Run(scene, rc)
	if rc.Watcher != nil {
		_ = rc.Watcher.Close()
	}
	if err != nil {
		log.Fatal(err)
	}
}
