package room

import (
	"context"
	"fmt"
	"sync"
	"time"

	"wordbow/internal/event"
	"wordbow/internal/eventlog"
	"wordbow/internal/game"
	"wordbow/internal/protocol"

	"go.uber.org/zap"
)

// Config tunes one room
type Config struct {
	Tuning         game.Tuning
	Field          game.Field
	BroadcastEvery int
	Codec          protocol.Codec
}

// Room drives one game session for one connection. Run owns the session;
// other goroutines talk to it only through Inbox.
type Room struct {
	Inbox chan any

	session        *game.Session
	conn           Conn
	tick           time.Duration
	broadcastEvery uint64
	codec          protocol.Codec
	words          int
	logger         *zap.Logger

	dirty    bool
	quit     chan struct{}
	quitOnce sync.Once
}

// New creates a room playing records. Extra options are passed to the session.
func New(conn Conn, records []game.WordRecord, cfg Config, logger *zap.Logger, opts ...game.Option) *Room {
	r := &Room{
		Inbox:          make(chan any, 256),
		conn:           conn,
		tick:           cfg.Tuning.TickInterval,
		broadcastEvery: uint64(max(cfg.BroadcastEvery, 1)),
		codec:          cfg.Codec,
		words:          len(records),
		logger:         logger,
		quit:           make(chan struct{}),
	}

	bus := event.NewBus()
	eventlog.Attach(bus, logger)
	event.Subscribe(bus, func(game.RoundEnded) { r.dirty = true })

	opts = append([]game.Option{game.WithBus(bus), game.WithDataset(records)}, opts...)
	r.session = game.NewSession(cfg.Tuning, cfg.Field, opts...)
	return r
}

// Stop makes Run return. Safe to call more than once.
func (r *Room) Stop() {
	r.quitOnce.Do(func() { close(r.quit) })
}

// Run plays until ctx is done, Stop is called, the client leaves or a send
// fails. It returns the send error, if any.
func (r *Room) Run(ctx context.Context) error {
	defer r.session.Stop()

	if err := r.sendWelcome(); err != nil {
		return err
	}
	if err := r.broadcastState(); err != nil {
		return err
	}

	ticker := time.NewTicker(r.tick)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-r.quit:
			return nil
		case cmd := <-r.Inbox:
			if !r.handleCommand(cmd) {
				return nil
			}
		case <-ticker.C:
			if err := r.step(); err != nil {
				return err
			}
		}
	}
}

// step advances the session and broadcasts every broadcastEvery ticks, or
// right away when an intent or the round end changed what clients see
func (r *Room) step() error {
	advanced := r.session.Advance()
	if advanced && r.session.Tick()%r.broadcastEvery == 0 {
		r.dirty = true
	}
	if !r.dirty {
		return nil
	}
	return r.broadcastState()
}

func (r *Room) handleCommand(cmd any) bool {
	switch c := cmd.(type) {
	case Start:
		if err := r.session.Start(); err != nil {
			r.logger.Info("Start refused", zap.Error(err))
			r.sendError(err.Error())
			return true
		}
	case Stop:
		r.session.Stop()
	case Aim:
		r.session.Aim(min(max(c.Y, 0), r.session.Field().Height))
	case Fire:
		r.session.Fire()
		return true
	case Resize:
		if c.Width <= 0 || c.Height <= 0 {
			r.sendError(fmt.Sprintf("invalid field size %gx%g", c.Width, c.Height))
			return true
		}
		r.session.Resize(c.Width, c.Height)
	case Leave:
		return false
	default:
		r.logger.Warn("Unknown room command", zap.String("type", fmt.Sprintf("%T", cmd)))
		return true
	}
	r.dirty = true
	return true
}

func (r *Room) broadcastState() error {
	b, err := r.codec.EncodeState(protocol.FromSnapshot(r.session.Snapshot()))
	if err != nil {
		return err
	}
	r.dirty = false
	if err := r.conn.Send(b, r.codec.Binary()); err != nil {
		return fmt.Errorf("failed to send state: %w", err)
	}
	return nil
}

func (r *Room) sendWelcome() error {
	b, err := protocol.Encode(protocol.MsgWelcome, protocol.Welcome{
		TickMillis: int(r.tick / time.Millisecond),
		Words:      r.words,
	})
	if err != nil {
		return err
	}
	if err := r.conn.Send(b, false); err != nil {
		return fmt.Errorf("failed to send welcome: %w", err)
	}
	return nil
}

func (r *Room) sendError(msg string) {
	b, err := protocol.Encode(protocol.MsgError, protocol.Error{Message: msg})
	if err != nil {
		return
	}
	if err := r.conn.Send(b, false); err != nil {
		r.logger.Debug("Failed to send error frame", zap.Error(err))
	}
}
