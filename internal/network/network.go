package network

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"wordbow/internal/dataset"
	"wordbow/internal/protocol"
	"wordbow/internal/room"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const loadTimeout = 5 * time.Second

// Server hands every websocket connection its own room. The dataset is
// reloaded per connection so words curated in the meantime show up.
type Server struct {
	source   dataset.Source
	cfg      room.Config
	logger   *zap.Logger
	upgrader websocket.Upgrader
}

// NewServer creates a server; cfg.Codec is ignored and chosen per connection
func NewServer(source dataset.Source, cfg room.Config, logger *zap.Logger) *Server {
	return &Server{
		source: source,
		cfg:    cfg,
		logger: logger,
		upgrader: websocket.Upgrader{
			// The game client may be served from anywhere.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// Routes returns the HTTP handler: /ws for play and /healthz for probes
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWS)
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	return mux
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	ws, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("Websocket upgrade failed", zap.Error(err))
		return
	}
	conn := &wsConn{ws: ws}
	defer conn.Close()

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	logger := s.logger.With(zap.String("remote", r.RemoteAddr))
	cfg := s.cfg
	cfg.Codec = protocol.ParseCodec(r.URL.Query().Get("codec"))

	loadCtx, cancelLoad := context.WithTimeout(ctx, loadTimeout)
	records := dataset.LoadOrEmpty(loadCtx, s.source, logger)
	cancelLoad()

	rm := room.New(conn, records, cfg, logger)
	roomDone := make(chan struct{})
	go func() {
		defer close(roomDone)
		if err := rm.Run(ctx); err != nil {
			logger.Info("Room closed", zap.Error(err))
		}
		cancel()
		// unblock the read loop
		_ = conn.Close()
	}()

	go s.pingLoop(ctx, conn, cancel)

	logger.Info("Player connected", zap.String("codec", string(cfg.Codec)))
	s.readLoop(ctx, ws, conn, rm, logger)

	rm.Stop()
	<-roomDone
	logger.Info("Player disconnected")
}

func (s *Server) pingLoop(ctx context.Context, conn *wsConn, cancel context.CancelFunc) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := conn.ping(); err != nil {
				cancel()
				return
			}
		}
	}
}

// readLoop decodes client frames into room commands until the socket or ctx closes
func (s *Server) readLoop(ctx context.Context, ws *websocket.Conn, conn *wsConn, rm *room.Room, logger *zap.Logger) {
	ws.SetReadLimit(readLimit)
	_ = ws.SetReadDeadline(time.Now().Add(pongWait))
	ws.SetPongHandler(func(string) error {
		return ws.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, msg, err := ws.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logger.Debug("Read failed", zap.Error(err))
			}
			return
		}

		cmd, err := decodeCommand(msg)
		if err != nil {
			logger.Debug("Bad client frame", zap.Error(err))
			sendError(conn, err.Error())
			continue
		}

		select {
		case rm.Inbox <- cmd:
		case <-ctx.Done():
			return
		}
	}
}

// decodeCommand maps one client envelope to a room command
func decodeCommand(msg []byte) (any, error) {
	env, err := protocol.DecodeEnvelope(msg)
	if err != nil {
		return nil, err
	}

	switch env.T {
	case protocol.MsgStart:
		return room.Start{}, nil
	case protocol.MsgStop:
		return room.Stop{}, nil
	case protocol.MsgFire:
		return room.Fire{}, nil
	case protocol.MsgAim:
		p, err := protocol.DecodePayload[protocol.Aim](env)
		if err != nil {
			return nil, err
		}
		return room.Aim{Y: p.Y}, nil
	case protocol.MsgResize:
		p, err := protocol.DecodePayload[protocol.Resize](env)
		if err != nil {
			return nil, err
		}
		return room.Resize{Width: p.Width, Height: p.Height}, nil
	default:
		return nil, fmt.Errorf("unknown message type %q", env.T)
	}
}

func sendError(conn *wsConn, msg string) {
	b, err := protocol.Encode(protocol.MsgError, protocol.Error{Message: msg})
	if err != nil {
		return
	}
	_ = conn.Send(b, false)
}
