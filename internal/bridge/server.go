// Package bridge exposes measuring sessions to device shells over a
// websocket: the shell streams frames and toggles, the bridge answers
// each one with the session snapshot to render.
package bridge

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/rkirkendall/armeasure/pkg/geometry"
	"github.com/rkirkendall/armeasure/pkg/measure"
	"github.com/rkirkendall/armeasure/pkg/replay"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(*http.Request) bool { return true },
}

// Server accepts shell connections and runs one measuring session per
// connection. The session is driven only by its connection's read
// loop, which keeps ticks serialized without any locking in the core.
type Server struct {
	log      *zap.Logger
	recorder *replay.Recorder
	recordMu sync.Mutex
	started  time.Time

	mu    sync.Mutex
	conns map[string]*websocket.Conn

	http *http.Server
}

// NewServer creates a bridge. recorder may be nil; when set, every
// applied shell message is appended to it as a replayable frame.
func NewServer(log *zap.Logger, recorder *replay.Recorder) *Server {
	return &Server{
		log:      log,
		recorder: recorder,
		started:  time.Now(),
		conns:    make(map[string]*websocket.Conn),
	}
}

// Handler returns the HTTP handler serving the websocket endpoint
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleShell)
	return mux
}

// Start listens on addr and serves shells until Shutdown is called
func (s *Server) Start(addr string) error {
	s.http = &http.Server{Addr: addr, Handler: s.Handler()}
	s.log.Info("bridge listening", zap.String("addr", addr))
	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("bridge server: %w", err)
	}
	return nil
}

// Shutdown stops accepting shells and closes the live connections
func (s *Server) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	for id, conn := range s.conns {
		conn.Close()
		delete(s.conns, id)
	}
	s.mu.Unlock()

	if s.http == nil {
		return nil
	}
	return s.http.Shutdown(ctx)
}

// ActiveSessions returns the number of connected shells
func (s *Server) ActiveSessions() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.conns)
}

func (s *Server) register(id string, conn *websocket.Conn) {
	s.mu.Lock()
	s.conns[id] = conn
	s.mu.Unlock()
}

func (s *Server) unregister(id string) {
	s.mu.Lock()
	delete(s.conns, id)
	s.mu.Unlock()
}

func (s *Server) handleShell(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Warn("websocket upgrade failed", zap.Error(err))
		return
	}

	id := uuid.NewString()
	log := s.log.With(zap.String("session", id), zap.String("remote", conn.RemoteAddr().String()))
	log.Info("shell connected")

	s.register(id, conn)
	defer func() {
		s.unregister(id)
		conn.Close()
		log.Info("shell disconnected")
	}()

	session := measure.NewSession()
	for {
		var msg ClientMessage
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Warn("shell read failed", zap.Error(err))
			}
			return
		}

		snap, err := s.apply(session, msg)
		if err != nil {
			log.Warn("rejected shell message", zap.String("type", msg.Type), zap.Error(err))
			if err := conn.WriteJSON(ErrorMessage{Type: TypeError, Error: err.Error()}); err != nil {
				return
			}
			continue
		}

		reply := newSnapshotMessage(snap)
		reply.Session = id
		if err := conn.WriteJSON(reply); err != nil {
			log.Warn("shell write failed", zap.Error(err))
			return
		}
	}
}

// apply advances the session by one shell message
func (s *Server) apply(session *measure.Session, msg ClientMessage) (measure.Snapshot, error) {
	switch msg.Type {
	case TypeFrame:
		quality, err := measure.ParseTrackingQuality(msg.Tracking)
		if err != nil {
			return measure.Snapshot{}, err
		}
		var hit *geometry.Vector3
		if msg.Hit != nil {
			v := geometry.NewVector3(msg.Hit[0], msg.Hit[1], msg.Hit[2])
			hit = &v
		}
		s.record(msg)
		return session.Tick(hit, quality), nil

	case TypeToggle:
		if msg.Measuring == nil {
			return measure.Snapshot{}, fmt.Errorf("toggle message without measuring field")
		}
		session.SetMeasuring(*msg.Measuring)
		s.record(msg)
		return session.Snapshot(), nil

	default:
		return measure.Snapshot{}, fmt.Errorf("unknown message type %q", msg.Type)
	}
}

func (s *Server) record(msg ClientMessage) {
	if s.recorder == nil {
		return
	}
	frame := replay.Frame{
		T:         time.Since(s.started).Seconds(),
		Hit:       msg.Hit,
		Tracking:  msg.Tracking,
		Measuring: msg.Measuring,
	}
	s.recordMu.Lock()
	err := s.recorder.Record(frame)
	s.recordMu.Unlock()
	if err != nil {
		s.log.Warn("frame recording failed", zap.Error(err))
	}
}
