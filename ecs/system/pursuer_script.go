package system

import (
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
)

// ScriptRule is a SpeedRule backed by a tengo script. The script reads the
// global `distance` and assigns the global `multiplier`.
type ScriptRule struct {
	compiled *tengo.Compiled
}

func NewScriptRule(src []byte) (*ScriptRule, error) {
	script := tengo.NewScript(src)
	if err := script.Add("distance", 0.0); err != nil {
		return nil, err
	}
	if err := script.Add("multiplier", 1.0); err != nil {
		return nil, err
	}
	script.SetImports(stdlib.GetModuleMap("math"))

	compiled, err := script.Compile()
	if err != nil {
		return nil, err
	}
	return &ScriptRule{compiled: compiled}, nil
}

func (r *ScriptRule) Multiplier(distance float64) (float64, error) {
	if r == nil || r.compiled == nil {
		return 0, fmt.Errorf("nil script rule")
	}
	if err := r.compiled.Set("distance", distance); err != nil {
		return 0, err
	}
	if err := r.compiled.Set("multiplier", 1.0); err != nil {
		return 0, err
	}
	if err := r.compiled.Run(); err != nil {
		return 0, err
	}
	return r.compiled.Get("multiplier").Float(), nil
}
