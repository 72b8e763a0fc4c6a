package arena

// freeList chains reclaimed positions through the free slots themselves:
// each free slot stores the position of the next free slot, so reuse is a
// stack pop with no allocation of its own. Every position reachable from
// head refers to a currently free slot.
type freeList struct {
	head uint32
}

func newFreeList() freeList {
	return freeList{head: nullPos}
}

func (f *freeList) empty() bool {
	return f.head == nullPos
}

func (f *freeList) reset() {
	f.head = nullPos
}

func freePush[T any](f *freeList, slots []slot[T], pos uint32) {
	slots[pos].nextFree = f.head
	f.head = pos
}

func freePop[T any](f *freeList, slots []slot[T]) (uint32, bool) {
	if f.head == nullPos {
		return 0, false
	}
	pos := f.head
	f.head = slots[pos].nextFree
	slots[pos].nextFree = nullPos
	return pos, true
}
