package invaders

import "github.com/jamesrmoro/commits-invaders/internal/calendar"

// HitEvent describes one destroyed enemy.
type HitEvent struct {
	Enemy int // index into the formation
	Count int
	Color string
	X, Y  float64 // centre of the destroyed cell
}

// ResolveHits tests every projectile against the formation in order. The
// first alive destructible enemy a projectile overlaps is killed and the
// projectile is consumed; scenery cells let projectiles pass through.
// It returns the surviving projectiles (filtered in place) and the hits.
func ResolveHits(projectiles []Projectile, enemies []Enemy) ([]Projectile, []HitEvent) {
	var hits []HitEvent
	survivors := projectiles[:0]

	for _, p := range projectiles {
		pb := p.Box()
		consumed := false
		for i := range enemies {
			e := &enemies[i]
			if !e.Alive || !calendar.IsDestructible(e.Color) {
				continue
			}
			if !pb.Overlaps(e.Box()) {
				continue
			}
			e.Alive = false
			cx, cy := e.Box().Center()
			hits = append(hits, HitEvent{Enemy: i, Count: e.Count, Color: e.Color, X: cx, Y: cy})
			consumed = true
			break
		}
		if !consumed {
			survivors = append(survivors, p)
		}
	}
	return survivors, hits
}
