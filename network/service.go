// Package network streams runtime stats to websocket readers
package network

import (
	"context"
	"errors"
	"net"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// Source supplies the payload of each stats frame
type Source interface {
	StatsSnapshot() any
}

// SourceFunc adapts a function to Source
type SourceFunc func() any

func (f SourceFunc) StatsSnapshot() any { return f() }

// Service serves the websocket endpoint and publishes stats frames on an interval
type Service struct {
	config   *Config
	peers    *PeerManager
	upgrader websocket.Upgrader
	log      *zap.Logger

	mu       sync.Mutex
	server   *http.Server
	listener net.Listener
	source   Source

	running atomic.Bool
	stopCh  chan struct{}
	wg      sync.WaitGroup
}

// NewService creates a stats service; nil cfg uses defaults
func NewService(cfg *Config, log *zap.Logger) *Service {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if log == nil {
		log = zap.NewNop()
	}
	s := &Service{
		config: cfg,
		peers:  NewPeerManager(cfg),
		log:    log.Named("network"),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  cfg.ReadBufferSize,
			WriteBufferSize: cfg.WriteBufferSize,
			CheckOrigin: originChecker(cfg.AllowedOrigins),
		},
	}
	s.peers.SetHandlers(s.onConnect, s.onDisconnect)
	return s
}

// originChecker accepts same-host browser origins plus the allowed hosts
func originChecker(allowed []string) func(*http.Request) bool {
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" {
			return true
		}
		u, err := url.Parse(origin)
		if err != nil || u.Host == "" {
			return false
		}
		if strings.EqualFold(u.Host, r.Host) {
			return true
		}
		for _, host := range allowed {
			if strings.EqualFold(u.Host, host) {
				return true
			}
		}
		return false
	}
}

// SetSource sets what each periodic frame carries
func (s *Service) SetSource(src Source) {
	s.mu.Lock()
	s.source = src
	s.mu.Unlock()
}

// Handle upgrades the request and registers the peer
func (s *Service) Handle(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Warn("upgrade failed", zap.String("remote", r.RemoteAddr), zap.Error(err))
		return
	}
	if _, err := s.peers.AddConnection(conn); err != nil {
		s.log.Warn("peer rejected", zap.String("remote", r.RemoteAddr), zap.Error(err))
	}
}

// Start binds the listener and launches the HTTP server and publisher
func (s *Service) Start() error {
	if !s.running.CompareAndSwap(false, true) {
		return nil
	}

	ln, err := net.Listen("tcp", s.config.Address)
	if err != nil {
		s.running.Store(false)
		return err
	}

	mux := http.NewServeMux()
	mux.HandleFunc(s.config.Path, s.Handle)

	s.mu.Lock()
	s.listener = ln
	s.server = &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	s.stopCh = make(chan struct{})
	srv := s.server
	s.mu.Unlock()

	s.wg.Add(2)
	go func() {
		defer s.wg.Done()
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.log.Error("stats server stopped", zap.Error(err))
		}
	}()
	go s.publishLoop()

	s.log.Info("stats endpoint listening", zap.String("addr", ln.Addr().String()), zap.String("path", s.config.Path))
	return nil
}

// Addr returns the bound address, empty when not running
func (s *Service) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// Stop halts the publisher, disconnects peers and closes the server
func (s *Service) Stop() error {
	if !s.running.CompareAndSwap(true, false) {
		return nil
	}

	close(s.stopCh)
	s.peers.Close()

	s.mu.Lock()
	srv := s.server
	s.server = nil
	s.listener = nil
	s.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), s.config.WriteTimeout)
	defer cancel()
	err := srv.Shutdown(ctx)
	s.wg.Wait()
	return err
}

// Publish broadcasts a typed payload; returns the number of peers it was queued for
func (s *Service) Publish(t MessageType, payload any) int {
	msg, err := NewMessage(t, payload)
	if err != nil {
		s.log.Warn("encode failed", zap.String("type", string(t)), zap.Error(err))
		return 0
	}
	return s.peers.Broadcast(*msg)
}

// PublishDestroy reports a destroyed model to all peers
func (s *Service) PublishDestroy(p DestroyPayload) {
	if s.peers.PeerCount() == 0 {
		return
	}
	s.Publish(MsgDestroy, p)
}

// PeerCount returns connected peer count
func (s *Service) PeerCount() int {
	return s.peers.PeerCount()
}

// IsRunning returns true if the endpoint is active
func (s *Service) IsRunning() bool {
	return s.running.Load()
}

func (s *Service) publishLoop() {
	defer s.wg.Done()

	ticker := time.NewTicker(s.config.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stopCh:
			return
		case <-ticker.C:
			s.publishStats()
		}
	}
}

func (s *Service) publishStats() {
	if s.peers.PeerCount() == 0 {
		return
	}
	s.mu.Lock()
	src := s.source
	s.mu.Unlock()
	if src == nil {
		return
	}
	s.Publish(MsgStats, src.StatsSnapshot())
}

func (s *Service) onConnect(p *Peer) {
	s.log.Debug("peer connected", zap.Uint32("peer", uint32(p.ID)), zap.String("remote", p.Addr))
	msg, err := NewMessage(MsgHello, HelloPayload{
		PeerID:     uint32(p.ID),
		IntervalMs: s.config.Interval.Milliseconds(),
	})
	if err == nil {
		p.Send(*msg)
	}
}

func (s *Service) onDisconnect(id PeerID) {
	s.log.Debug("peer disconnected", zap.Uint32("peer", uint32(id)))
}
