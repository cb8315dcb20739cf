package ssd1306

// dirtyTracker records the framebuffer bytes changed since the last flush.
type dirtyTracker struct {
	seen []bool
	list []int
}

func newDirtyTracker(size int) *dirtyTracker {
	return &dirtyTracker{seen: make([]bool, size)}
}

// mark records byte i. Marking an already recorded byte is a no-op.
func (t *dirtyTracker) mark(i int) {
	if i < 0 || i >= len(t.seen) || t.seen[i] {
		return
	}
	t.seen[i] = true
	t.list = append(t.list, i)
}

func (t *dirtyTracker) len() int {
	return len(t.list)
}

// drain returns the recorded bytes in marking order and forgets them.
func (t *dirtyTracker) drain() []int {
	out := t.list
	for _, i := range out {
		t.seen[i] = false
	}
	t.list = nil
	return out
}

// shouldFlushFull reports whether resending the whole buffer is cheaper than
// addressing each dirty byte. A partial flush costs a 6 byte window plus one
// data byte per dirty byte; ties go to the partial flush.
func shouldFlushFull(dirtyCount, bufferLength int) bool {
	return dirtyCount*7 > bufferLength
}
