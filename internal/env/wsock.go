package env

import (
	"context"
	"fmt"
	"sync"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/maxtom/ompl/internal/space"
)

// Wire operations for the websocket environment protocol.
const (
	opHello        = "hello"
	opGetTransform = "get_transform"
	opSetTransform = "set_transform"
	opGetVelocity  = "get_velocity"
	opSetVelocity  = "set_velocity"
)

// frame is one JSON message of the environment protocol, used in both
// directions. Orientation order is (w, x, y, z).
type frame struct {
	Op          string     `json:"op"`
	Body        int        `json:"body,omitempty"`
	Count       int        `json:"count,omitempty"`
	Low         [3]float64 `json:"low"`
	High        [3]float64 `json:"high"`
	Position    [3]float64 `json:"position"`
	Orientation [4]float64 `json:"orientation"`
	Linear      [3]float64 `json:"linear"`
	Angular     [3]float64 `json:"angular"`
	Error       string     `json:"error,omitempty"`
}

var _ Environment = (*Client)(nil)

// Client is an Environment backed by a websocket link to an external
// simulator. Body count and bounding volume are exchanged once during
// the dial handshake; per-body operations are sent as one
// request/response pair each, serialized by an internal mutex.
type Client struct {
	mu     sync.Mutex
	conn   *websocket.Conn
	log    *zap.Logger
	count  int
	bounds space.Bounds
	closed bool
}

// Dial connects to a simulator endpoint and performs the hello
// handshake. The logger may be nil.
func Dial(ctx context.Context, url string, log *zap.Logger) (*Client, error) {
	if log == nil {
		log = zap.NewNop()
	}
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: dial %s: %v", ErrConnection, url, err)
	}
	c := &Client{conn: conn, log: log}
	resp, err := c.roundTrip(frame{Op: opHello})
	if err != nil {
		conn.Close()
		return nil, err
	}
	c.count = resp.Count
	c.bounds = space.Bounds{Low: toVec(resp.Low), High: toVec(resp.High)}
	log.Info("environment connected",
		zap.String("url", url),
		zap.Int("bodies", c.count))
	return c, nil
}

// Close tears down the link. Subsequent operations fail with
// ErrClosed.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil
	}
	c.closed = true
	return c.conn.Close()
}

func (c *Client) RigidBodyCount() int {
	return c.count
}

func (c *Client) BoundingVolume() space.Bounds {
	return c.bounds
}

func (c *Client) BodyTransform(body int) (r3.Vec, quat.Number, error) {
	resp, err := c.roundTrip(frame{Op: opGetTransform, Body: body})
	if err != nil {
		return r3.Vec{}, quat.Number{}, err
	}
	return toVec(resp.Position), toQuat(resp.Orientation), nil
}

func (c *Client) SetBodyTransform(body int, pos r3.Vec, rot quat.Number) error {
	_, err := c.roundTrip(frame{
		Op:          opSetTransform,
		Body:        body,
		Position:    fromVec(pos),
		Orientation: fromQuat(rot),
	})
	return err
}

func (c *Client) BodyVelocity(body int) (r3.Vec, r3.Vec, error) {
	resp, err := c.roundTrip(frame{Op: opGetVelocity, Body: body})
	if err != nil {
		return r3.Vec{}, r3.Vec{}, err
	}
	return toVec(resp.Linear), toVec(resp.Angular), nil
}

func (c *Client) SetBodyVelocity(body int, lin, ang r3.Vec) error {
	_, err := c.roundTrip(frame{
		Op:      opSetVelocity,
		Body:    body,
		Linear:  fromVec(lin),
		Angular: fromVec(ang),
	})
	return err
}

func (c *Client) roundTrip(req frame) (frame, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return frame{}, ErrClosed
	}
	if err := c.conn.WriteJSON(req); err != nil {
		return frame{}, c.fail(req.Op, err)
	}
	var resp frame
	if err := c.conn.ReadJSON(&resp); err != nil {
		return frame{}, c.fail(req.Op, err)
	}
	if resp.Error != "" {
		return frame{}, fmt.Errorf("env: %s: %s", req.Op, resp.Error)
	}
	return resp, nil
}

// fail marks the link broken; once a read or write has failed the
// request/response pairing can no longer be trusted.
func (c *Client) fail(op string, err error) error {
	c.closed = true
	c.conn.Close()
	c.log.Error("environment link failed", zap.String("op", op), zap.Error(err))
	return fmt.Errorf("%w: %s: %v", ErrConnection, op, err)
}

func toVec(v [3]float64) r3.Vec {
	return r3.Vec{X: v[0], Y: v[1], Z: v[2]}
}

func fromVec(v r3.Vec) [3]float64 {
	return [3]float64{v.X, v.Y, v.Z}
}

func toQuat(q [4]float64) quat.Number {
	return quat.Number{Real: q[0], Imag: q[1], Jmag: q[2], Kmag: q[3]}
}

func fromQuat(q quat.Number) [4]float64 {
	return [4]float64{q.Real, q.Imag, q.Jmag, q.Kmag}
}
