package wire

// McRead is implemented by any wire value that knows how to decode itself
// from a Cursor. The generic helpers (ReadOptional, ReadArray) are not
// constrained to it: they take the element's read function as an
// argument instead of reaching for reflection, following the pack's
// go-mclib-protocol ReadPacket[T] generic-over-reflection idiom.
type McRead interface {
	ReadFrom(c *Cursor) error
}

// McWrite is the write-side counterpart of McRead.
type McWrite interface {
	WriteTo(buf *[]byte)
}

// ReadOptional reads one presence byte; if true, it reads a T via read and
// returns it with present=true, otherwise returns the zero T with present=false.
func ReadOptional[T any](c *Cursor, read func(*Cursor) (T, error)) (value T, present bool, err error) {
	present, err = ReadBool(c)
	if err != nil || !present {
		return value, present, err
	}
	value, err = read(c)
	return value, present, err
}

// WriteOptional appends the presence byte and, if present, the value via write.
func WriteOptional[T any](buf *[]byte, present bool, value T, write func(*[]byte, T)) {
	WriteBool(buf, present)
	if present {
		write(buf, value)
	}
}

// ReadArray reads a v32 element count followed by that many elements via read.
func ReadArray[T any](c *Cursor, read func(*Cursor) (T, error)) ([]T, error) {
	n, err := ReadV32(c)
	if err != nil {
		return nil, err
	}
	if n < 0 {
		return nil, ErrReadOutOfBounds{Have: c.Remaining(), Need: int(n)}
	}
	out := make([]T, 0, n)
	for i := int32(0); i < n; i++ {
		v, err := read(c)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// WriteArray appends a v32 element count followed by each element via write.
func WriteArray[T any](buf *[]byte, items []T, write func(*[]byte, T)) {
	WriteV32(buf, int32(len(items)))
	for _, item := range items {
		write(buf, item)
	}
}

// TaggedEnum is a v32-discriminant enumeration that preserves unknown
// discriminants losslessly instead of mapping them away. Concrete enum
// types embed or alias this and provide the known-value table; ReadTagged/
// WriteTagged do the discriminant round-trip.
type TaggedEnum struct {
	// Known is true when Value matched one of the enum's named variants.
	Known bool
	Value int32
}

// ReadTagged reads a v32 discriminant and reports whether it's in known.
func ReadTagged(c *Cursor, known map[int32]struct{}) (TaggedEnum, error) {
	v, err := ReadV32(c)
	if err != nil {
		return TaggedEnum{}, err
	}
	_, ok := known[v]
	return TaggedEnum{Known: ok, Value: v}, nil
}

// WriteTagged appends the discriminant, known or not — re-encoding an
// Unknown variant is always exact because the integer itself was preserved.
func WriteTagged(buf *[]byte, t TaggedEnum) {
	WriteV32(buf, t.Value)
}
