// Package ecs provides ECS adapters for mosaic's controller lifecycle.
//
// The primary adapter is [NewDonburiSink], which bridges controller events
// (regenerated, resize requested, stopped) into a [Donburi] world as typed
// events, and can mirror the live tiles into entities with [SyncTiles].
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	ctrl, _ := mosaic.NewController(mosaic.ControllerConfig{
//		Variant: v,
//		Events:  sink,
//	})
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
