package invaders

// ParticleRules shape an explosion burst.
type ParticleRules struct {
	Count     int
	Spread    float64 // velocity range, centred on zero
	MinSize   float64
	SizeRange float64
	MinLife   float64
	LifeRange float64
}

// SpawnBurst appends rules.Count particles centred on (x, y).
func SpawnBurst(dst []Particle, rng *RNG, x, y float64, rules ParticleRules) []Particle {
	for range rules.Count {
		dst = append(dst, Particle{
			X:    x,
			Y:    y,
			VX:   (rng.Float64() - 0.5) * rules.Spread,
			VY:   (rng.Float64() - 0.5) * rules.Spread,
			Size: rules.MinSize + rng.Float64()*rules.SizeRange,
			Life: rules.MinLife + rng.Float64()*rules.LifeRange,
		})
	}
	return dst
}

// StepParticles moves every particle, ages it by one tick and drops the
// expired ones. The slice is filtered in place.
func StepParticles(ps []Particle) []Particle {
	live := ps[:0]
	for _, p := range ps {
		p.X += p.VX
		p.Y += p.VY
		p.Life--
		if p.Life > 0 {
			live = append(live, p)
		}
	}
	return live
}
