// Package motivation picks the closing message shown under a runner analysis.
package motivation

import (
	"math/rand"
	"sync"
	"time"
)

// Catalog is the fixed set of closing messages.
var Catalog = []string{
	"¡Cada kilómetro cuenta! Seguí entrenando y vas a superar tu marca.",
	"La constancia es la clave: la próxima carrera es tuya.",
	"Hoy cruzaste la meta; mañana vas por más.",
	"Tu esfuerzo habla por vos. ¡Felicitaciones por terminar los 10K!",
	"Los segundos que te faltaron son tu próximo objetivo.",
	"Correr 10K no es poca cosa. ¡Orgullo total!",
	"Cada entrenamiento suma. Se nota en tu resultado.",
	"El próximo podio puede estar más cerca de lo que pensás.",
	"Disfrutá el logro y planificá el siguiente desafío.",
	"Tu ritmo de hoy es la base de tu récord de mañana.",
	"Nadie te regaló nada: cada posición la ganaste vos.",
	"Recuperá bien, hidratate y volvé con todo.",
	"El corredor que eras ayer ya quedó atrás.",
	"Una meta cumplida es el mejor punto de partida.",
	"¡Gran carrera! El asfalto de San Martín te espera de nuevo.",
	"Lo importante no es solo llegar, es volver a largar.",
}

// Picker chooses an index in [0, n).
type Picker interface {
	Pick(n int) int
}

// RandomPicker draws uniformly from a seeded source.
type RandomPicker struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandomPicker returns a picker seeded with seed; zero seeds from the clock.
func NewRandomPicker(seed int64) *RandomPicker {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &RandomPicker{rng: rand.New(rand.NewSource(seed))} //nolint:gosec // cosmetic selection
}

// Pick returns a uniformly random index, or 0 when n <= 0.
func (p *RandomPicker) Pick(n int) int {
	if n <= 0 {
		return 0
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.rng.Intn(n)
}

// FixedPicker always returns the same index, wrapped into range.
type FixedPicker int

// Pick implements Picker.
func (f FixedPicker) Pick(n int) int {
	if n <= 0 {
		return 0
	}
	i := int(f) % n
	if i < 0 {
		i += n
	}
	return i
}

// Message returns a catalog entry chosen by p. A nil picker yields the first.
func Message(p Picker) string {
	if p == nil {
		return Catalog[0]
	}
	return Catalog[p.Pick(len(Catalog))]
}
