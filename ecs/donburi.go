package ecs

import (
	"github.com/phanxgames/mosaic"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
	"github.com/yohamta/donburi/features/events"
)

// LifecycleEventType is the Donburi event type for controller events.
// Subscribe to this in your ECS systems to react to regenerations.
var LifecycleEventType = events.NewEventType[mosaic.Event]()

// TileComponent holds one mirrored tile.
var TileComponent = donburi.NewComponentType[mosaic.Tile]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world. Events are
// queued on LifecycleEventType and delivered by ProcessEvents.
func NewDonburiSink(world donburi.World) mosaic.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitEvent(event mosaic.Event) {
	LifecycleEventType.Publish(s.world, event)
}

// SyncTiles replaces every TileComponent entity in world with one entity per
// tile, in draw order.
func SyncTiles(world donburi.World, tiles []mosaic.Tile) {
	var stale []donburi.Entity
	donburi.NewQuery(filter.Contains(TileComponent)).Each(world, func(e *donburi.Entry) {
		stale = append(stale, e.Entity())
	})
	for _, e := range stale {
		world.Remove(e)
	}
	for i := range tiles {
		entry := world.Entry(world.Create(TileComponent))
		TileComponent.SetValue(entry, tiles[i])
	}
}

// CountTiles returns the number of mirrored tiles in world.
func CountTiles(world donburi.World) int {
	return donburi.NewQuery(filter.Contains(TileComponent)).Count(world)
}
