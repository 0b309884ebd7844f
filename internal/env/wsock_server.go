package env

import (
	"net/http"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

// Handler serves an Environment over the websocket protocol spoken by
// [Client]. One goroutine per connection; requests on a single
// connection are answered strictly in order.
type Handler struct {
	env Environment
	log *zap.Logger
}

// NewHandler returns a handler exposing e. The logger may be nil.
func NewHandler(e Environment, log *zap.Logger) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{env: e, log: log}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Warn("upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()
	h.log.Info("client connected", zap.String("remote", conn.RemoteAddr().String()))

	for {
		var req frame
		if err := conn.ReadJSON(&req); err != nil {
			h.log.Info("client disconnected", zap.Error(err))
			return
		}
		if err := conn.WriteJSON(h.serve(req)); err != nil {
			h.log.Warn("write failed", zap.Error(err))
			return
		}
	}
}

func (h *Handler) serve(req frame) frame {
	resp := frame{Op: req.Op, Body: req.Body}
	switch req.Op {
	case opHello:
		b := h.env.BoundingVolume()
		resp.Count = h.env.RigidBodyCount()
		resp.Low = fromVec(b.Low)
		resp.High = fromVec(b.High)
	case opGetTransform:
		pos, rot, err := h.env.BodyTransform(req.Body)
		if err != nil {
			resp.Error = err.Error()
			break
		}
		resp.Position = fromVec(pos)
		resp.Orientation = fromQuat(rot)
	case opSetTransform:
		if err := h.env.SetBodyTransform(req.Body, toVec(req.Position), toQuat(req.Orientation)); err != nil {
			resp.Error = err.Error()
		}
	case opGetVelocity:
		lin, ang, err := h.env.BodyVelocity(req.Body)
		if err != nil {
			resp.Error = err.Error()
			break
		}
		resp.Linear = fromVec(lin)
		resp.Angular = fromVec(ang)
	case opSetVelocity:
		if err := h.env.SetBodyVelocity(req.Body, toVec(req.Linear), toVec(req.Angular)); err != nil {
			resp.Error = err.Error()
		}
	default:
		resp.Error = "unknown op: " + req.Op
	}
	return resp
}
