package openpanel

import "github.com/spf13/cast"

// Properties is the set of string key/value attributes attached to events
// and profiles.
type Properties map[string]string

// PropertiesFrom coerces arbitrarily typed values into string properties.
// Numbers, booleans, and stringers are rendered with their natural
// formatting; anything else falls back to fmt-style formatting.
func PropertiesFrom(m map[string]any) Properties {
	if len(m) == 0 {
		return Properties{}
	}
	p := make(Properties, len(m))
	for k, v := range m {
		p[k] = cast.ToString(v)
	}
	return p
}

// Has reports whether the key is present.
func (p Properties) Has(key string) bool {
	_, ok := p[key]
	return ok
}

// Clone returns an independent copy. A nil receiver yields an empty,
// non-nil map.
func (p Properties) Clone() Properties {
	out := make(Properties, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}

// merged returns a copy of p extended with globals.
// Global values win on key conflict.
func (p Properties) merged(globals Properties) Properties {
	out := p.Clone()
	for k, v := range globals {
		out[k] = v
	}
	return out
}
