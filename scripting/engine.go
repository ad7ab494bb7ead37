package scripting

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"

	"github.com/lixenwraith/tile-fighter/model"
)

// CollisionHook is the Lua global consulted for every direct contact
const CollisionHook = "on_direct_collision"

// Engine wraps a single gopher-lua VM that can override collision effects
// Single-goroutine access only (frame loop)
type Engine struct {
	vm  *lua.LState
	log *zap.Logger
}

// NewEngine creates a Lua engine and loads every script in dir; a missing dir loads nothing
func NewEngine(dir string, log *zap.Logger) (*Engine, error) {
	if log == nil {
		log = zap.NewNop()
	}
	vm := lua.NewState(lua.Options{
		SkipOpenLibs: false,
	})
	vm.SetGlobal("API_VERSION", lua.LNumber(1))

	e := &Engine{vm: vm, log: log}
	if dir != "" {
		if err := e.loadDir(dir); err != nil {
			vm.Close()
			return nil, fmt.Errorf("load scripts: %w", err)
		}
	}
	return e, nil
}

// loadDir loads all .lua files in a directory
func (e *Engine) loadDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".lua" {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		if err := e.vm.DoFile(path); err != nil {
			return fmt.Errorf("load %s: %w", path, err)
		}
		e.log.Debug("loaded lua script", zap.String("file", path))
	}
	return nil
}

// LoadString executes a chunk of Lua source
func (e *Engine) LoadString(src string) error {
	if err := e.vm.DoString(src); err != nil {
		return fmt.Errorf("load lua chunk: %w", err)
	}
	return nil
}

// HasHook reports whether the collision hook is defined
func (e *Engine) HasHook() bool {
	return e.vm.GetGlobal(CollisionHook) != lua.LNil
}

// Close releases the VM
func (e *Engine) Close() {
	e.vm.Close()
}

// Resolve implements model.EffectResolver
// Without a hook, on error, or when the hook returns nil, the declared effects apply
func (e *Engine) Resolve(self, other *model.Model) []model.Effect {
	declared := model.ResolveContact(self, other)

	fn := e.vm.GetGlobal(CollisionHook)
	if fn == lua.LNil {
		return declared
	}

	ctx := e.vm.NewTable()
	ctx.RawSetString("self", e.modelTable(self))
	ctx.RawSetString("other", e.modelTable(other))
	ctx.RawSetString("declared", e.effectsTable(declared))

	if err := e.vm.CallByParam(lua.P{
		Fn:      fn,
		NRet:    1,
		Protect: true,
	}, ctx); err != nil {
		e.log.Error("lua on_direct_collision error", zap.String("self", self.Name), zap.Error(err))
		return declared
	}

	result := e.vm.Get(-1)
	e.vm.Pop(1)

	if result == lua.LNil {
		return declared
	}
	rt, ok := result.(*lua.LTable)
	if !ok {
		e.log.Error("lua on_direct_collision returned non-table", zap.String("type", result.Type().String()))
		return declared
	}
	return e.parseEffects(rt)
}

func (e *Engine) modelTable(m *model.Model) *lua.LTable {
	t := e.vm.NewTable()
	t.RawSetString("name", lua.LString(m.Name))
	t.RawSetString("category", lua.LString(strings.ToLower(m.Category.String())))
	t.RawSetString("state", lua.LString(strings.ToLower(m.State.String())))
	if c := m.Character(); c != nil {
		t.RawSetString("health", lua.LNumber(c.Health))
		t.RawSetString("face", lua.LString(strings.ToLower(c.FaceDir.String())))
	}
	if p := m.Projectile(); p != nil {
		t.RawSetString("owner", lua.LString(p.Owner))
	}
	return t
}

func (e *Engine) effectsTable(effects []model.Effect) *lua.LTable {
	t := e.vm.NewTable()
	for _, eff := range effects {
		et := e.vm.NewTable()
		et.RawSetString("kind", lua.LString(strings.ToLower(eff.Kind.String())))
		target := "self"
		if eff.Target == model.TargetOther {
			target = "other"
		}
		et.RawSetString("target", lua.LString(target))
		et.RawSetString("amount", lua.LNumber(eff.Amount))
		t.Append(et)
	}
	return t
}

// parseEffects converts the returned array; malformed entries are logged and dropped
func (e *Engine) parseEffects(t *lua.LTable) []model.Effect {
	var out []model.Effect
	t.ForEach(func(_, v lua.LValue) {
		et, ok := v.(*lua.LTable)
		if !ok {
			return
		}
		var eff model.Effect
		switch lua.LVAsString(et.RawGetString("kind")) {
		case "damage":
			eff = model.Damage(int(lua.LVAsNumber(et.RawGetString("amount"))))
		case "destroy":
			eff = model.DestroySelf()
		default:
			e.log.Warn("lua effect ignored", zap.String("kind", lua.LVAsString(et.RawGetString("kind"))))
			return
		}
		switch lua.LVAsString(et.RawGetString("target")) {
		case "self":
			eff.Target = model.TargetSelf
		case "other":
			eff.Target = model.TargetOther
		}
		out = append(out, eff)
	})
	return out
}
