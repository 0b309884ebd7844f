package env

import (
	"fmt"
	"sync"

	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/maxtom/ompl/internal/space"
)

var _ Environment = (*Memory)(nil)

// Body is the simulated state of one rigid body.
type Body struct {
	Position    r3.Vec
	Orientation quat.Number
	LinVel      r3.Vec
	AngVel      r3.Vec
}

// Memory is an in-process Environment backed by plain values. It is
// the reference implementation used by tests, demos and the websocket
// server. All methods are mutex-guarded, so unlike a remote simulator
// it tolerates concurrent writes.
type Memory struct {
	mu     sync.RWMutex
	bounds space.Bounds
	bodies []Body
}

// NewMemory returns an environment holding the given bodies inside
// bounds. Zero-valued orientations are replaced with the identity.
func NewMemory(bounds space.Bounds, bodies ...Body) *Memory {
	bs := make([]Body, len(bodies))
	copy(bs, bodies)
	for i := range bs {
		if bs[i].Orientation == (quat.Number{}) {
			bs[i].Orientation = quat.Number{Real: 1}
		}
	}
	return &Memory{bounds: bounds, bodies: bs}
}

func (m *Memory) RigidBodyCount() int {
	return len(m.bodies)
}

func (m *Memory) BoundingVolume() space.Bounds {
	return m.bounds
}

func (m *Memory) BodyTransform(body int) (r3.Vec, quat.Number, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if body < 0 || body >= len(m.bodies) {
		return r3.Vec{}, quat.Number{}, fmt.Errorf("%w: %d", ErrBodyIndex, body)
	}
	b := m.bodies[body]
	return b.Position, b.Orientation, nil
}

func (m *Memory) SetBodyTransform(body int, pos r3.Vec, rot quat.Number) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if body < 0 || body >= len(m.bodies) {
		return fmt.Errorf("%w: %d", ErrBodyIndex, body)
	}
	m.bodies[body].Position = pos
	m.bodies[body].Orientation = rot
	return nil
}

func (m *Memory) BodyVelocity(body int) (r3.Vec, r3.Vec, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if body < 0 || body >= len(m.bodies) {
		return r3.Vec{}, r3.Vec{}, fmt.Errorf("%w: %d", ErrBodyIndex, body)
	}
	b := m.bodies[body]
	return b.LinVel, b.AngVel, nil
}

func (m *Memory) SetBodyVelocity(body int, lin, ang r3.Vec) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if body < 0 || body >= len(m.bodies) {
		return fmt.Errorf("%w: %d", ErrBodyIndex, body)
	}
	m.bodies[body].LinVel = lin
	m.bodies[body].AngVel = ang
	return nil
}
