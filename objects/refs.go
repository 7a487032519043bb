package objects

import (
	"crypto/rand"
	"encoding/hex"
	"strconv"
	"strings"
	"sync"

	"github.com/signadot/pbxproj/debug"
)

const (
	counterPrefix = "OBJ_"
	pathSep       = "::"
	hexRefBytes   = 12
)

// refGen mints references.  The scheme is fixed when the store loads: a
// counter rendered as OBJ_<n>, or random 24 digit uppercase hex.  Hex
// references are not checked against existing ones.
type refGen struct {
	mu      sync.Mutex
	hex     bool
	counter uint64
}

// observe keeps the counter ahead of ref.  With detect set, a reference
// outside the counter scheme switches the generator to hex.
func (g *refGen) observe(ref string, detect bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if n, ok := strings.CutPrefix(ref, counterPrefix); ok {
		if v, err := strconv.ParseUint(n, 10, 64); err == nil && v > g.counter {
			g.counter = v
		}
		return
	}
	if detect && !strings.Contains(ref, pathSep) {
		g.hex = true
	}
}

func (g *refGen) next() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	var res string
	if g.hex {
		var b [hexRefBytes]byte
		rand.Read(b[:])
		res = strings.ToUpper(hex.EncodeToString(b[:]))
	} else {
		g.counter++
		res = counterPrefix + strconv.FormatUint(g.counter, 10)
	}
	if debug.Refs() {
		debug.Logf("new reference %s\n", res)
	}
	return res
}

// NewReference returns a fresh reference.  It is safe for concurrent use.
func (s *Store) NewReference() string {
	return s.refs.next()
}

// NewReferenceForPath derives a stable reference from names such as
// project, target and product.  The encoder quotes it on output.
func (s *Store) NewReferenceForPath(parts ...string) string {
	return strings.Join(parts, pathSep)
}

// HexReferences reports whether the store mints hex references.
func (s *Store) HexReferences() bool {
	s.refs.mu.Lock()
	defer s.refs.mu.Unlock()
	return s.refs.hex
}
