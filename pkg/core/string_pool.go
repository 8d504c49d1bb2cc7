package core

// PooledString is a cheap-to-clone handle onto immutable text. Interning
// is opportunistic: two PooledStrings holding equal text always compare
// equal by content, whether or not they happen to share storage.
//
// static is set for handles created by interning (StringPool.Intern, which
// backs every symbol name) and heap for handles built directly (string
// literals read by the reader, concatenation, substring, sym->string).
// The distinction is bookkeeping only; both behave identically to callers.
type PooledString struct {
	s      string
	static bool
}

func staticString(s string) PooledString  { return PooledString{s: s, static: true} }
func heapString(s string) PooledString    { return PooledString{s: s} }

// Raw returns the underlying Go string.
func (p PooledString) Raw() string { return p.s }

// Len returns the length in characters (runes), not bytes.
func (p PooledString) Len() int { return len([]rune(p.s)) }

// Slice returns the substring [start, end) indexed by character, not byte.
func (p PooledString) Slice(start, end int) PooledString {
	r := []rune(p.s)
	if start < 0 {
		start = 0
	}
	if end > len(r) {
		end = len(r)
	}
	if start > end {
		start = end
	}
	return heapString(string(r[start:end]))
}

// Concat returns the concatenation of p and o.
func (p PooledString) Concat(o PooledString) PooledString {
	return heapString(p.s + o.s)
}

// Runes returns the string's characters in order.
func (p PooledString) Runes() []rune { return []rune(p.s) }

func (p PooledString) Equal(o PooledString) bool { return p.s == o.s }

// StringPool is a process-local intern cache. Interning is opportunistic:
// callers are never required to intern, but repeated identical symbol
// names and string literals collapse to one allocation when they do.
type StringPool struct {
	cache map[string]PooledString
}

func NewStringPool() *StringPool {
	return &StringPool{cache: make(map[string]PooledString)}
}

// Intern returns a shared handle for s, creating one if this is the first
// time s has been seen.
func (p *StringPool) Intern(s string) PooledString {
	if h, ok := p.cache[s]; ok {
		return h
	}
	h := staticString(s)
	p.cache[s] = h
	return h
}

// globalPool backs the package-level Intern helper used by Symbol
// construction; symbols are interned process-wide because a Symbol value
// can outlive any single Context.
var globalPool = NewStringPool()

// Intern interns s in the process-global pool.
func Intern(s string) PooledString { return globalPool.Intern(s) }
