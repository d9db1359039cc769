// Package balloonpump is a small 2D toy for [Ebitengine]: holding the pump
// button blows up balloons that rise, drift and bob around the screen, and
// clicking a balloon pops it into confetti.
//
// # Quick start
//
//	scene := balloonpump.NewScene(balloonpump.DefaultConfig())
//	scene.Preload(balloonpump.LoadAssets(os.DirFS("assets")))
//	balloonpump.Run(scene, balloonpump.RunConfig{Title: "Balloon Pump"})
//
// # Simulation
//
// All state lives in a [Scene]. A [Scheduler] owns virtual time: the balloon
// step runs as a fixed-timestep task (60 per second by default) and every
// popped balloon gets its own confetti task (every 30 ms). [Scene.Update]
// feeds the scheduler the wall time read from a clockwork.Clock; tests pass
// a fake clock through [WithClock] or call [Scene.Advance] directly.
//
// Balloons go through four states: [StateInflating], [StateFlying],
// [StatePopping] and [StatePopped]. Flight starts exactly once, on the frame
// the balloon reaches its maximum scale.
//
// # Assets
//
// [LoadAssets] decodes the sprites in a goroutine and returns an
// [AssetFuture]. The scene keeps its frame step gated until the future
// completes; sprites that fail to load are replaced with drawn placeholders.
//
// # Tooling
//
// [LoadConfig] reads YAML tuning, [WatchConfig] hot-reloads it, and
// [LoadTestScript] replays pump presses and clicks for scripted runs with
// [Scene.Screenshot] captures.
//
// [Ebitengine]: https://ebitengine.org
package balloonpump
