package zone

import (
	"runtime"
	"strings"
	"sync"
	"sync/atomic"
)

// Site caches the slot of one instrumented call site.
//
// Declare a Site once per call site, typically as a package-level variable; the
// slot is allocated on first use and reused afterwards. A Site is bound to the
// session it first resolved against. When Name is empty the enclosing function's
// name is used.
//
//	var parseSite zone.Site
//
//	func parse(b []byte) {
//		sess.Profile(&parseSite, uint64(len(b)), func() {
//			...
//		})
//	}
type Site struct {
	Name string

	mu   sync.Mutex
	done atomic.Bool
	slot Slot
	name string
}

// Resolve returns the site's slot and name, allocating the slot from sess on
// first use. skip selects the function used as default name: 0 is the caller
// of Resolve.
func (s *Site) Resolve(sess *Session, skip int) (Slot, string) {
	if s.done.Load() {
		return s.slot, s.name
	}
	return s.resolveSlow(sess, skip+1)
}

func (s *Site) resolveSlow(sess *Session, skip int) (Slot, string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.done.Load() {
		s.name = s.Name
		if s.name == "" {
			s.name = callerName(skip + 1)
		}
		s.slot = sess.GetNextSlot()
		s.done.Store(true)
	}
	return s.slot, s.name
}

// Slot returns the site's slot, allocating it from sess on first use.
func (s *Site) Slot(sess *Session) Slot {
	slot, _ := s.Resolve(sess, 1)
	return slot
}

// callerName returns the short name of the function skip frames above its caller.
func callerName(skip int) string {
	pc, _, _, ok := runtime.Caller(skip + 1)
	if !ok {
		return "unknown"
	}
	fn := runtime.FuncForPC(pc)
	if fn == nil {
		return "unknown"
	}
	return shortFuncName(fn.Name())
}

// shortFuncName strips the import path: "github.com/a/b/pkg.(*T).M" -> "pkg.(*T).M".
func shortFuncName(name string) string {
	if i := strings.LastIndexByte(name, '/'); i >= 0 {
		name = name[i+1:]
	}
	return name
}
