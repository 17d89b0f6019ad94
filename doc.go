// Package mosaic renders a decorative animated background made of colored,
// black-outlined rectangles on top of [Ebitengine] or the [gg] software
// canvas.
//
// # Quick start
//
//	v, _ := mosaic.NewVariant(mosaic.VariantFall, mosaic.Options{})
//	ctrl, _ := mosaic.NewController(mosaic.ControllerConfig{Variant: v})
//	if err := mosaic.Run(ctrl, mosaic.RunConfig{
//		Title: "Mosaic", Width: 1280, Height: 720,
//	}); err != nil {
//		log.Fatal(err)
//	}
//
// # Subdivision
//
// A [Subdivider] cuts the viewport in two at a random fraction in
// [0.2, 0.8), alternating vertical and horizontal cuts at each level, until
// MaxDepth is reached. Branches smaller than MinSize are dropped. The leaves
// tile the viewport with no gaps or overlaps and each gets a random
// [Palette] color.
//
// # Variants
//
// A [Variant] owns its tiles and decides how they move:
//
//   - static: the mosaic is redrawn unchanged until the next resize.
//   - fall: every tile sinks slowly; new tiles fade in above the top edge.
//   - wobble: the whole mosaic sways, rotates and breathes around the
//     center, driven by wall-clock time.
//   - spawn: copies of random tiles lift off and drift away while fading in.
//
// Tiles that leave the viewport plus a margin are removed. Nothing else
// limits the number of tiles.
//
// # Driving the animation
//
// A [Controller] owns the variant, the viewport and the last frame time.
// Call Update with the elapsed time and Draw with a [Surface] once per
// frame, or use Tick for both. Window size changes go through
// RequestResize, which waits for the size to settle before regenerating.
// Stop ends the loop; [Game] returns ebiten.Termination on the next Update.
//
// Set ControllerConfig.Events to observe regenerations, resize requests and
// stops; the ecs module forwards them into a donburi world.
//
// For headless output, [Record] and [Snapshot] drive a controller on a
// virtual clock and render with [CanvasSurface].
//
// All randomness comes from an injected [Rand]; pass NewRand(seed) for
// reproducible mosaics.
//
// [Ebitengine]: https://ebitengine.org
// [gg]: https://github.com/gogpu/gg
package mosaic
