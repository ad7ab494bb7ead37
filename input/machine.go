package input

import (
	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/lixenwraith/tile-fighter/core"
)

// Controls is the part of the controller that input drives
type Controls interface {
	PlayerMove(dir core.Direction)
	PlayerShoot() bool
	Toggle() error
	ToggleDebugCollision() bool
}

// Dispatch applies one intent and reports whether it asks to quit
func Dispatch(ctrl Controls, intent Intent, log *zap.Logger) (quit bool) {
	switch intent.Type {
	case IntentQuit:
		return true
	case IntentMove:
		ctrl.PlayerMove(intent.Dir)
	case IntentShoot:
		ctrl.PlayerShoot()
	case IntentToggleRun:
		if err := ctrl.Toggle(); err != nil && log != nil {
			log.Error("toggle run failed", zap.Error(err))
		}
	case IntentToggleDebug:
		on := ctrl.ToggleDebugCollision()
		if log != nil {
			log.Debug("collision display", zap.Bool("on", on))
		}
	}
	return false
}

// Handler turns terminal events into controller calls
type Handler struct {
	table *KeyTable
	ctrl  Controls
	log   *zap.Logger

	// OnResize is called for resize events when set
	OnResize func()
}

// NewHandler creates a handler; nil table uses the defaults
func NewHandler(ctrl Controls, table *KeyTable, log *zap.Logger) *Handler {
	if table == nil {
		table = DefaultKeyTable()
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{table: table, ctrl: ctrl, log: log}
}

// HandleEvent processes one event, returning false to exit
func (h *Handler) HandleEvent(ev tcell.Event) bool {
	switch e := ev.(type) {
	case *tcell.EventKey:
		intent, ok := h.table.Lookup(e)
		if !ok {
			return true
		}
		return !Dispatch(h.ctrl, intent, h.log)
	case *tcell.EventResize:
		if h.OnResize != nil {
			h.OnResize()
		}
	}
	return true
}
