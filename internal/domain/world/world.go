package world

import (
	"github.com/google/uuid"

	"github.com/younwookim/pollo/internal/domain/entity"
)

// HUD mirrors the percentages last reported to the status bars
type HUD struct {
	Health  int
	Coins   int
	Bottles int
	Boss    int
}

// World is the shared match context passed to every system.
// Systems own their fields: input writes only the keyboard map, the
// simulation writes entity collections and HUD.
type World struct {
	MatchID uuid.UUID

	Player *entity.Entity
	Boss   *entity.Entity

	Enemies     []*entity.Entity
	Coins       []*entity.Entity
	Bottles     []*entity.Entity
	Throwables  []*entity.Entity
	Clouds      []*entity.Entity
	Backgrounds []*entity.Entity

	HUD      HUD
	GameOver bool

	// Frame counts simulation ticks since the match started
	Frame uint64

	nextID entity.EntityID
}

// New creates an empty world with a fresh match id
func New() *World {
	return &World{
		MatchID: uuid.New(),
		Enemies: make([]*entity.Entity, 0, 8),
		HUD:     HUD{Health: entity.GaugeMax, Boss: entity.GaugeMax},
	}
}

// Add assigns an id and files the entity into the collection for its kind
func (w *World) Add(e *entity.Entity) *entity.Entity {
	w.nextID++
	e.ID = w.nextID

	switch e.Kind {
	case entity.KindPlayer:
		w.Player = e
	case entity.KindEndboss:
		w.Boss = e
	case entity.KindChicken, entity.KindSmallChicken:
		w.Enemies = append(w.Enemies, e)
	case entity.KindCoin:
		w.Coins = append(w.Coins, e)
	case entity.KindBottle:
		w.Bottles = append(w.Bottles, e)
	case entity.KindThrowable:
		w.Throwables = append(w.Throwables, e)
	case entity.KindCloud:
		w.Clouds = append(w.Clouds, e)
	case entity.KindBackground:
		w.Backgrounds = append(w.Backgrounds, e)
	}
	return e
}

// Remove takes the entity out of its collection.
// It returns false if the entity was not there.
func (w *World) Remove(e *entity.Entity) bool {
	var ok bool
	switch e.Kind {
	case entity.KindChicken, entity.KindSmallChicken:
		w.Enemies, ok = without(w.Enemies, e)
	case entity.KindCoin:
		w.Coins, ok = without(w.Coins, e)
	case entity.KindBottle:
		w.Bottles, ok = without(w.Bottles, e)
	case entity.KindThrowable:
		w.Throwables, ok = without(w.Throwables, e)
	case entity.KindCloud:
		w.Clouds, ok = without(w.Clouds, e)
	case entity.KindBackground:
		w.Backgrounds, ok = without(w.Backgrounds, e)
	}
	return ok
}

// PruneEnemies drops every enemy whose right edge is more than distance
// behind playerX, dead or alive. It returns the number removed.
func (w *World) PruneEnemies(playerX, distance float64) int {
	kept := w.Enemies[:0]
	for _, e := range w.Enemies {
		if e.X+e.Width > playerX-distance {
			kept = append(kept, e)
		}
	}
	removed := len(w.Enemies) - len(kept)
	for i := len(kept); i < len(w.Enemies); i++ {
		w.Enemies[i] = nil
	}
	w.Enemies = kept
	return removed
}

// Ready returns true once the player, boss and enemy collection exist
func (w *World) Ready() bool {
	return w.Player != nil && w.Boss != nil && w.Enemies != nil
}

// Animated returns every entity that carries an animator, in draw order
func (w *World) Animated() []*entity.Entity {
	all := make([]*entity.Entity, 0, len(w.Enemies)+len(w.Coins)+len(w.Throwables)+2)
	for _, group := range [][]*entity.Entity{w.Coins, w.Bottles, w.Enemies, w.Throwables} {
		for _, e := range group {
			if e.Anim != nil {
				all = append(all, e)
			}
		}
	}
	if w.Player != nil && w.Player.Anim != nil {
		all = append(all, w.Player)
	}
	if w.Boss != nil && w.Boss.Anim != nil {
		all = append(all, w.Boss)
	}
	return all
}

func without(list []*entity.Entity, e *entity.Entity) ([]*entity.Entity, bool) {
	for i, x := range list {
		if x == e {
			copy(list[i:], list[i+1:])
			list[len(list)-1] = nil
			return list[:len(list)-1], true
		}
	}
	return list, false
}
