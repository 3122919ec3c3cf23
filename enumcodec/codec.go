// Package enumcodec transfers enumeration members across process
// boundaries without breaking their singleton identity. A member is
// encoded as its (type identity, canonical name) pair; decoding looks
// the pair up in a live registry and returns the existing member, never
// a copy.
package enumcodec

import (
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/vmihailenco/msgpack/v5"

	"fastenum/enum"
)

var (
	// ErrUnknownType indicates a wire reference to a type identity that
	// was never registered.
	ErrUnknownType = errors.New("enumcodec: unknown type identity")
	// ErrDuplicateType indicates a second registration under an
	// identity already taken.
	ErrDuplicateType = errors.New("enumcodec: type identity already registered")
)

// memberRef is the wire form of a member.
type memberRef struct {
	Type string `msgpack:"type"`
	Name string `msgpack:"name"`
}

// Registry resolves type identities back to live enumeration types.
// Safe for concurrent use.
type Registry struct {
	mu    sync.RWMutex
	types map[string]*enum.Type
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{types: make(map[string]*enum.Type)}
}

// Register makes t resolvable under its type name. Identities are
// unique; a second registration under the same name fails.
func (r *Registry) Register(t *enum.Type) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.types[t.Name()]; ok {
		return fmt.Errorf("%s: %w", t.Name(), ErrDuplicateType)
	}
	r.types[t.Name()] = t
	return nil
}

// Lookup returns the registered type for an identity.
func (r *Registry) Lookup(identity string) (*enum.Type, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.types[identity]
	return t, ok
}

// Resolve returns the live member for a (type identity, name) pair.
// Alias names resolve to their canonical member.
func (r *Registry) Resolve(identity, name string) (*enum.Member, error) {
	t, ok := r.Lookup(identity)
	if !ok {
		return nil, fmt.Errorf("%q: %w", identity, ErrUnknownType)
	}
	return t.ByName(name)
}

// Marshal encodes a member as its (type identity, canonical name)
// pair. Members of an alias type serialize under the identity of the
// type that owns them, so that type is the one to register.
func Marshal(m *enum.Member) ([]byte, error) {
	return msgpack.Marshal(wireRef(m))
}

// Unmarshal decodes a wire reference and resolves it to the existing
// member singleton.
func (r *Registry) Unmarshal(data []byte) (*enum.Member, error) {
	var ref memberRef
	if err := msgpack.Unmarshal(data, &ref); err != nil {
		return nil, fmt.Errorf("enumcodec: decode: %w", err)
	}
	return r.Resolve(ref.Type, ref.Name)
}

// Encode writes one member reference to w.
func Encode(w io.Writer, m *enum.Member) error {
	return msgpack.NewEncoder(w).Encode(wireRef(m))
}

// Decode reads one member reference from rd and resolves it.
func (r *Registry) Decode(rd io.Reader) (*enum.Member, error) {
	var ref memberRef
	if err := msgpack.NewDecoder(rd).Decode(&ref); err != nil {
		return nil, fmt.Errorf("enumcodec: decode: %w", err)
	}
	return r.Resolve(ref.Type, ref.Name)
}

func wireRef(m *enum.Member) memberRef {
	return memberRef{Type: m.Type().Name(), Name: m.Name()}
}
