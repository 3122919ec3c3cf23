package enum

// allocator hands out auto-assigned values for light declarations. The
// cursor lives for a single type build; derived types restart it.
//
// Freshness holds among auto-valued declarations only: a produced value
// colliding with an explicitly declared one is resolved by the builder
// as an alias of the explicit member, not skipped here.
type allocator struct {
	cursor int
	seen   map[int]struct{}
}

func newAllocator(zeroValued bool) *allocator {
	start := 1
	if zeroValued {
		start = 0
	}
	return &allocator{cursor: start, seen: make(map[int]struct{})}
}

// next returns the smallest value >= the cursor not consumed by an
// earlier auto-valued declaration of the same build.
func (a *allocator) next() int {
	for {
		v := a.cursor
		a.cursor++
		if _, dup := a.seen[v]; dup {
			continue
		}
		a.seen[v] = struct{}{}
		return v
	}
}
