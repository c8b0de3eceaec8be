package wire

import (
	"encoding/binary"
	"math"
	"unicode/utf8"

	"github.com/google/uuid"
)

// ReadBool reads one byte; any non-zero value is true.
func ReadBool(c *Cursor) (bool, error) {
	b, err := c.ReadByte()
	if err != nil {
		return false, err
	}
	return b != 0, nil
}

// WriteBool appends a single 0/1 byte.
func WriteBool(buf *[]byte, v bool) {
	if v {
		*buf = append(*buf, 1)
		return
	}
	*buf = append(*buf, 0)
}

// ReadI8 / ReadU8 read one signed/unsigned byte.
func ReadI8(c *Cursor) (int8, error) {
	b, err := c.ReadByte()
	return int8(b), err
}

func ReadU8(c *Cursor) (uint8, error) {
	return c.ReadByte()
}

func WriteI8(buf *[]byte, v int8) { *buf = append(*buf, byte(v)) }
func WriteU8(buf *[]byte, v uint8) { *buf = append(*buf, v) }

// ReadI16 / ReadU16 read a big-endian 16-bit integer.
func ReadI16(c *Cursor) (int16, error) {
	b, err := c.ReadN(2)
	if err != nil {
		return 0, err
	}
	return int16(binary.BigEndian.Uint16(b)), nil
}

func ReadU16(c *Cursor) (uint16, error) {
	b, err := c.ReadN(2)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(b), nil
}

func WriteI16(buf *[]byte, v int16) { WriteU16(buf, uint16(v)) }

func WriteU16(buf *[]byte, v uint16) {
	var tmp [2]byte
	binary.BigEndian.PutUint16(tmp[:], v)
	*buf = append(*buf, tmp[:]...)
}

// ReadI32 / ReadU32 read a big-endian 32-bit integer.
func ReadI32(c *Cursor) (int32, error) {
	b, err := c.ReadN(4)
	if err != nil {
		return 0, err
	}
	return int32(binary.BigEndian.Uint32(b)), nil
}

func ReadU32(c *Cursor) (uint32, error) {
	b, err := c.ReadN(4)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(b), nil
}

func WriteI32(buf *[]byte, v int32) { WriteU32(buf, uint32(v)) }

func WriteU32(buf *[]byte, v uint32) {
	var tmp [4]byte
	binary.BigEndian.PutUint32(tmp[:], v)
	*buf = append(*buf, tmp[:]...)
}

// ReadI64 / ReadU64 read a big-endian 64-bit integer.
func ReadI64(c *Cursor) (int64, error) {
	b, err := c.ReadN(8)
	if err != nil {
		return 0, err
	}
	return int64(binary.BigEndian.Uint64(b)), nil
}

func ReadU64(c *Cursor) (uint64, error) {
	b, err := c.ReadN(8)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(b), nil
}

func WriteI64(buf *[]byte, v int64) { WriteU64(buf, uint64(v)) }

func WriteU64(buf *[]byte, v uint64) {
	var tmp [8]byte
	binary.BigEndian.PutUint64(tmp[:], v)
	*buf = append(*buf, tmp[:]...)
}

// ReadF32 / ReadF64 read an IEEE-754 big-endian float.
func ReadF32(c *Cursor) (float32, error) {
	v, err := ReadU32(c)
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(v), nil
}

func WriteF32(buf *[]byte, v float32) {
	WriteU32(buf, math.Float32bits(v))
}

func ReadF64(c *Cursor) (float64, error) {
	v, err := ReadU64(c)
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(v), nil
}

func WriteF64(buf *[]byte, v float64) {
	WriteU64(buf, math.Float64bits(v))
}

// ReadBytes reads a v32 length followed by that many raw bytes.
func ReadBytes(c *Cursor) ([]byte, error) {
	n, err := ReadV32(c)
	if err != nil {
		return nil, err
	}
	if n < 0 {
		return nil, ErrReadOutOfBounds{Have: c.Remaining(), Need: int(n)}
	}
	return c.ReadN(int(n))
}

// WriteBytes appends a v32 length followed by b.
func WriteBytes(buf *[]byte, b []byte) {
	WriteV32(buf, int32(len(b)))
	*buf = append(*buf, b...)
}

// ReadRest consumes every byte left in the cursor, uninterpreted.
func ReadRest(c *Cursor) []byte {
	return c.ReadRest()
}

// ReadRestAsBytes is ReadRest adapted to the (T, error) shape generic
// helpers like ReadOptional expect.
func ReadRestAsBytes(c *Cursor) ([]byte, error) {
	return c.ReadRest(), nil
}

// WriteRest appends b verbatim with no length prefix.
func WriteRest(buf *[]byte, b []byte) {
	*buf = append(*buf, b...)
}

// ReadString reads a v32 byte length then decodes that many bytes as UTF-8.
func ReadString(c *Cursor) (string, error) {
	b, err := ReadBytes(c)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(b) {
		return "", ErrUTF8{}
	}
	return string(b), nil
}

// WriteString appends a v32 byte length then the UTF-8 bytes of s.
func WriteString(buf *[]byte, s string) {
	WriteBytes(buf, []byte(s))
}

// ReadUUID reads 16 raw bytes as a UUID.
func ReadUUID(c *Cursor) (uuid.UUID, error) {
	b, err := c.ReadN(16)
	if err != nil {
		return uuid.UUID{}, err
	}
	var u uuid.UUID
	copy(u[:], b)
	return u, nil
}

// WriteUUID appends the 16 raw bytes of u.
func WriteUUID(buf *[]byte, u uuid.UUID) {
	*buf = append(*buf, u[:]...)
}

// Position is a packed block position: 26 bits x, 26 bits z, 12 bits y,
// matching the protocol's single-int64 position encoding.
type Position struct {
	X, Y, Z int32
}

// ReadPosition reads a packed 64-bit position.
func ReadPosition(c *Cursor) (Position, error) {
	v, err := ReadU64(c)
	if err != nil {
		return Position{}, err
	}
	x := int32(v >> 38)
	y := int32(v << 52 >> 52)
	z := int32(v << 26 >> 38)
	if x >= 1<<25 {
		x -= 1 << 26
	}
	if y >= 1<<11 {
		y -= 1 << 12
	}
	if z >= 1<<25 {
		z -= 1 << 26
	}
	return Position{X: x, Y: y, Z: z}, nil
}

// WritePosition appends the packed 64-bit encoding of p.
func WritePosition(buf *[]byte, p Position) {
	v := (uint64(uint32(p.X)&0x3FFFFFF) << 38) |
		(uint64(uint32(p.Z)&0x3FFFFFF) << 12) |
		uint64(uint32(p.Y)&0xFFF)
	WriteU64(buf, v)
}
