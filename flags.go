package readex

import (
	"fmt"
	"strings"

	"go.dw1.io/readex/cast"
	"go.dw1.io/readex/json"
)

// Flags is the resolved set of matching-mode toggles.
type Flags struct {
	DotAll     bool `json:"dotAll"`
	Global     bool `json:"global"`
	IgnoreCase bool `json:"ignoreCase"`
	Multiline  bool `json:"multiline"`
	Sticky     bool `json:"sticky"`
	Unicode    bool `json:"unicode"`
}

// FlagsConfig names the toggles to change from their defaults. Keys are the
// toggle names: dotAll, global, ignoreCase, multiline, sticky and unicode.
type FlagsConfig map[string]bool

type flagDef struct {
	name  string
	code  byte
	field func(*Flags) *bool
}

// flagTable is in rendering order.
var flagTable = [...]flagDef{
	{"dotAll", 's', func(f *Flags) *bool { return &f.DotAll }},
	{"global", 'g', func(f *Flags) *bool { return &f.Global }},
	{"ignoreCase", 'i', func(f *Flags) *bool { return &f.IgnoreCase }},
	{"multiline", 'm', func(f *Flags) *bool { return &f.Multiline }},
	{"sticky", 'y', func(f *Flags) *bool { return &f.Sticky }},
	{"unicode", 'u', func(f *Flags) *bool { return &f.Unicode }},
}

// DefaultFlags returns the toggles used when a configuration leaves them
// out: global and multiline on, everything else off.
func DefaultFlags() Flags {
	return Flags{Global: true, Multiline: true}
}

// String renders the flag string, one code per enabled toggle in the order
// s, g, i, m, y, u.
func (f Flags) String() string {
	var b strings.Builder
	for _, def := range flagTable {
		if *def.field(&f) {
			b.WriteByte(def.code)
		}
	}

	return b.String()
}

// ResolveFlags applies config on top of [DefaultFlags]. config may be nil,
// a [Flags] or *Flags (used as is), a [FlagsConfig], a map[string]bool, or a
// map[string]any whose values convert to bool with spf13/cast.
func ResolveFlags(config any) (Flags, error) {
	switch c := config.(type) {
	case nil:
		return DefaultFlags(), nil
	case Flags:
		return c, nil
	case *Flags:
		if c == nil {
			return DefaultFlags(), nil
		}
		return *c, nil
	case FlagsConfig:
		return resolveFlags(c, func(v bool) (bool, error) { return v, nil })
	case map[string]bool:
		return resolveFlags(c, func(v bool) (bool, error) { return v, nil })
	case map[string]any:
		return resolveFlags(c, cast.Bool)
	case Options:
		return resolveFlags(c, cast.Bool)
	default:
		return Flags{}, fmt.Errorf("%w: %T is not a mapping", ErrInvalidFlagsType, config)
	}
}

func resolveFlags[M ~map[string]V, V any](config M, toBool func(V) (bool, error)) (Flags, error) {
	// Keys are checked before values so the error kind does not depend on
	// map iteration order.
	for name := range config {
		if _, ok := lookupFlag(name); !ok {
			return Flags{}, fmt.Errorf("%w: %q", ErrInvalidFlagKey, name)
		}
	}

	flags := DefaultFlags()
	for _, def := range flagTable {
		raw, ok := config[def.name]
		// A missing or null toggle keeps its default.
		if !ok || any(raw) == nil {
			continue
		}

		v, err := toBool(raw)
		if err != nil {
			return Flags{}, fmt.Errorf("%w: %s: %v", ErrInvalidFlagsType, def.name, err)
		}
		*def.field(&flags) = v
	}

	return flags, nil
}

func lookupFlag(name string) (flagDef, bool) {
	for _, def := range flagTable {
		if def.name == name {
			return def, true
		}
	}

	return flagDef{}, false
}

// AsFlags resolves config like [ResolveFlags] and renders the flag string.
// The result depends only on the resolved toggles, never on key order.
func AsFlags(config any) (string, error) {
	flags, err := ResolveFlags(config)
	if err != nil {
		return "", err
	}

	return flags.String(), nil
}

// ParseFlags decodes a JSON object of toggles and resolves it against the
// defaults. A document that is not an object fails with
// [ErrInvalidFlagsType].
func ParseFlags(data []byte) (Flags, error) {
	obj, ok, err := json.UnmarshalObject(data)
	if err != nil {
		return Flags{}, fmt.Errorf("readex: parse flags: %w", err)
	}
	if !ok {
		return Flags{}, fmt.Errorf("%w: flags must be a JSON object", ErrInvalidFlagsType)
	}

	return ResolveFlags(obj)
}

// MarshalJSON encodes every toggle by name.
func (f Flags) MarshalJSON() ([]byte, error) {
	type plain Flags
	return json.Marshal(plain(f))
}
