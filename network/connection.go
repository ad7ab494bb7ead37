package network

import (
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"
)

// PeerID identifies a stats reader for the lifetime of the service
type PeerID uint32

var ErrMaxPeers = errors.New("max peers reached")

// Peer is one websocket stats reader
// Frames are queued on sendCh and written by a single writer goroutine
type Peer struct {
	ID   PeerID
	Addr string

	conn   *websocket.Conn
	sendCh chan []byte
	seq    atomic.Uint64
	closed atomic.Bool
	done   chan struct{}
	once   sync.Once
}

func newPeer(id PeerID, conn *websocket.Conn, queue int) *Peer {
	return &Peer{
		ID:     id,
		Addr:   conn.RemoteAddr().String(),
		conn:   conn,
		sendCh: make(chan []byte, queue),
		done:   make(chan struct{}),
	}
}

// Send stamps msg with the peer's next sequence number and queues it
// A full queue drops the frame; stats readers only need the latest state
func (p *Peer) Send(msg Message) bool {
	if p.closed.Load() {
		return false
	}
	msg.Seq = p.seq.Add(1)
	data, err := msg.Encode()
	if err != nil {
		return false
	}
	select {
	case p.sendCh <- data:
		return true
	default:
		return false
	}
}

// Close asks the writer to say goodbye and drop the connection
func (p *Peer) Close() {
	p.once.Do(func() {
		p.closed.Store(true)
		close(p.done)
	})
}

// readLoop only exists to process pongs and notice a vanished client
func (p *Peer) readLoop(pongTimeout time.Duration) {
	defer p.Close()

	extend := func() error { return p.conn.SetReadDeadline(time.Now().Add(pongTimeout)) }
	extend()
	p.conn.SetPongHandler(func(string) error { return extend() })

	for {
		if _, _, err := p.conn.ReadMessage(); err != nil {
			return
		}
		extend()
	}
}

// writeLoop owns every write on the connection and closes it on exit
func (p *Peer) writeLoop(writeTimeout, pingInterval time.Duration) {
	ping := time.NewTicker(pingInterval)
	defer func() {
		ping.Stop()
		p.Close()
		p.conn.Close()
	}()

	for {
		select {
		case <-p.done:
			p.conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseGoingAway, "shutdown"),
				time.Now().Add(writeTimeout))
			return
		case data := <-p.sendCh:
			p.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			if err := p.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				return
			}
		case <-ping.C:
			if err := p.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeTimeout)); err != nil {
				return
			}
		}
	}
}

// PeerManager tracks connected readers and fans frames out to them
type PeerManager struct {
	mu     sync.RWMutex
	peers  map[PeerID]*Peer
	nextID atomic.Uint32
	config *Config

	onConnect    func(*Peer)
	onDisconnect func(PeerID)
}

// NewPeerManager creates an empty manager bounded by cfg.MaxPeers
func NewPeerManager(cfg *Config) *PeerManager {
	return &PeerManager{
		peers:  make(map[PeerID]*Peer),
		config: cfg,
	}
}

// SetHandlers installs lifecycle callbacks; call before the first connection
func (pm *PeerManager) SetHandlers(onConnect func(*Peer), onDisconnect func(PeerID)) {
	pm.onConnect = onConnect
	pm.onDisconnect = onDisconnect
}

// AddConnection adopts an upgraded connection, refusing it with 1013 when full
func (pm *PeerManager) AddConnection(conn *websocket.Conn) (PeerID, error) {
	pm.mu.Lock()
	if len(pm.peers) >= pm.config.MaxPeers {
		pm.mu.Unlock()
		conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseTryAgainLater, ErrMaxPeers.Error()),
			time.Now().Add(pm.config.WriteTimeout))
		conn.Close()
		return 0, ErrMaxPeers
	}

	peer := newPeer(PeerID(pm.nextID.Add(1)), conn, pm.config.SendQueueSize)
	// Hello must be queued before Broadcast can see the peer
	if pm.onConnect != nil {
		pm.onConnect(peer)
	}
	pm.peers[peer.ID] = peer
	pm.mu.Unlock()

	go peer.readLoop(pm.config.PongTimeout)
	go peer.writeLoop(pm.config.WriteTimeout, max(pm.config.PongTimeout*9/10, time.Millisecond))
	go pm.forget(peer)

	return peer.ID, nil
}

func (pm *PeerManager) forget(peer *Peer) {
	<-peer.done

	pm.mu.Lock()
	delete(pm.peers, peer.ID)
	pm.mu.Unlock()

	if pm.onDisconnect != nil {
		pm.onDisconnect(peer.ID)
	}
}

// Broadcast queues msg for every peer and returns how many accepted it
func (pm *PeerManager) Broadcast(msg Message) int {
	pm.mu.RLock()
	defer pm.mu.RUnlock()

	sent := 0
	for _, peer := range pm.peers {
		if peer.Send(msg) {
			sent++
		}
	}
	return sent
}

// PeerCount returns the number of connected peers
func (pm *PeerManager) PeerCount() int {
	pm.mu.RLock()
	defer pm.mu.RUnlock()
	return len(pm.peers)
}

// Close disconnects every peer
func (pm *PeerManager) Close() {
	pm.mu.RLock()
	peers := make([]*Peer, 0, len(pm.peers))
	for _, p := range pm.peers {
		peers = append(peers, p)
	}
	pm.mu.RUnlock()

	for _, p := range peers {
		p.Close()
	}
}
