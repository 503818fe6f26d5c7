package memdb

// Transient buffer implementations with release bookkeeping. Decoders are
// required to free each buffer exactly once; the counters let tests assert
// that, and a second Free panics so contract violations fail loudly.

type bitBuffer struct {
	db    *DB
	data  []int8
	freed bool
}

func (b *bitBuffer) At(i int) int8 {
	if b.freed {
		panic("memdb: bit buffer used after free")
	}
	return b.data[i]
}

func (b *bitBuffer) Free() {
	if b.freed {
		panic("memdb: bit buffer double free")
	}
	b.freed = true
	b.db.bitBufsFreed++
}

type stringBuffer struct {
	db    *DB
	data  []byte
	freed bool
}

func (b *stringBuffer) Bytes() []byte {
	if b.freed {
		panic("memdb: string buffer used after free")
	}
	return b.data
}

func (b *stringBuffer) Free() {
	if b.freed {
		panic("memdb: string buffer double free")
	}
	b.freed = true
	b.db.strBufsFreed++
}

// OutstandingBuffers reports the number of transient buffers issued but not
// yet freed, across bit arrays and strings. Zero after a decode means the
// decoder honored the release contract.
func (db *DB) OutstandingBuffers() int {
	return (db.bitBufsIssued - db.bitBufsFreed) + (db.strBufsIssued - db.strBufsFreed)
}

// BitBuffersFreed reports how many bit buffers have been released.
func (db *DB) BitBuffersFreed() int {
	return db.bitBufsFreed
}

// StringBuffersFreed reports how many string buffers have been released.
func (db *DB) StringBuffersFreed() int {
	return db.strBufsFreed
}
