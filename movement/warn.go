package movement

import "log"

// warner logs each missing-collaborator condition once instead of every tick.
type warner struct {
	seen map[string]bool
}

func (w *warner) warn(key, format string, args ...any) {
	if w.seen[key] {
		return
	}
	if w.seen == nil {
		w.seen = make(map[string]bool)
	}
	w.seen[key] = true
	log.Printf("[movement] warning: "+format, args...)
}
