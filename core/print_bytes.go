package core

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
)

const (
	ROW_SIZE    = 16
	PLACEHOLDER = '.'

	// offset, space, 16 "XX " tokens, two pipes around the sidebar
	LINE_SIZE = 8 + 1 + ROW_SIZE*3 + 1 + ROW_SIZE + 1
)

// IsPrintable reports whether v shows as itself in the sidebar: the visible
// ASCII characters 0x21 to 0x7E. Space and DEL are not printable.
func IsPrintable(v byte) bool {
	return (0x21 <= v) && (v <= 0x7E)
}

func SidebarChar(v byte) byte {
	if IsPrintable(v) {
		return v
	}

	return PLACEHOLDER
}

// Row is one line of the dump: up to ROW_SIZE bytes borrowed from the dumped
// buffer, with the offset of the first one.
type Row struct {
	Offset uint32
	Bytes  []byte
}

func (self Row) IsPartial() bool {
	return len(self.Bytes) < ROW_SIZE
}

// AppendTo appends the formatted line, without line terminator, to dst.
// Missing bytes of a partial row are padded with spaces in the hex field and
// with placeholders in the sidebar. Bytes past ROW_SIZE are ignored.
func (self Row) AppendTo(dst []byte) []byte {
	dst = fmt.Appendf(dst, "%08X ", self.Offset)

	for i := 0; i < ROW_SIZE; i++ {
		if i < len(self.Bytes) {
			dst = fmt.Appendf(dst, "%02X ", self.Bytes[i])
		} else {
			dst = append(dst, "   "...)
		}
	}

	dst = append(dst, '|')
	for i := 0; i < ROW_SIZE; i++ {
		if i < len(self.Bytes) {
			dst = append(dst, SidebarChar(self.Bytes[i]))
		} else {
			dst = append(dst, PLACEHOLDER)
		}
	}

	return append(dst, '|')
}

func (self Row) String() string {
	return string(self.AppendTo(make([]byte, 0, LINE_SIZE)))
}

func RowCount(size int) int {
	if size <= 0 {
		return 0
	}

	return (size + ROW_SIZE - 1) / ROW_SIZE
}

// RowAt returns the index-th row of buffer, false when there is no such row.
func RowAt(buffer []byte, index int) (Row, bool) {
	if (index < 0) || (index >= RowCount(len(buffer))) {
		return Row{}, false
	}

	start := index * ROW_SIZE
	end := start + ROW_SIZE
	if end > len(buffer) {
		end = len(buffer)
	}

	return Row{Offset: uint32(start), Bytes: buffer[start:end:end]}, true
}

// Dumper walks a buffer row by row. The buffer is only read, it must not
// change until the dumper is done with it. A dumper can't be rewound.
type Dumper struct {
	buffer []byte
	index  int
	count  int
}

func NewDumper(buffer []byte) *Dumper {
	return &Dumper{
		buffer: buffer,
		count:  RowCount(len(buffer)),
	}
}

func (self *Dumper) Next() (Row, bool) {
	row, ok := RowAt(self.buffer, self.index)
	if ok {
		self.index++
	}

	return row, ok
}

func (self *Dumper) NextLine() (string, bool) {
	row, ok := self.Next()
	if !ok {
		return "", false
	}

	return row.String(), true
}

func (self *Dumper) Remaining() int {
	return self.count - self.index
}

// WriteTo writes every remaining line to w, each one ended by a new line.
func (self *Dumper) WriteTo(w io.Writer) (int64, error) {
	return self.WriteToContext(context.Background(), w)
}

// WriteToContext is WriteTo stopping between two rows once ctx is done, so w
// only ever receives whole lines. The rows not written stay in the dumper.
func (self *Dumper) WriteToContext(ctx context.Context, w io.Writer) (int64, error) {
	var written int64

	line := make([]byte, 0, LINE_SIZE+1)
	for self.Remaining() > 0 {
		select {
		case <-ctx.Done():
			err := WrapKind(KIND_INTERRUPTED, ctx.Err(), "dump")

			return written, AddErrorInfo(err, "Stopped before the row at offset %08X", self.index*ROW_SIZE)

		default:
		}

		row, _ := self.Next()
		line = append(row.AppendTo(line[:0]), '\n')

		n, err := w.Write(line)
		written += int64(n)
		if err != nil {
			return written, AddErrorInfo(WrapError(err), "While writing the row at offset %08X", row.Offset)
		}
	}

	return written, nil
}

func DumpLines(buffer []byte) []string {
	dumper := NewDumper(buffer)
	res := make([]string, 0, dumper.Remaining())

	for line, ok := dumper.NextLine(); ok; line, ok = dumper.NextLine() {
		res = append(res, line)
	}

	return res
}

func DumpString(buffer []byte) string {
	var out strings.Builder

	dumper := NewDumper(buffer)
	out.Grow(dumper.Remaining() * (LINE_SIZE + 1))
	dumper.WriteTo(&out)

	return out.String()
}

func FprintBytes(w io.Writer, buffer []byte) error {
	return FprintBytesContext(context.Background(), w, buffer)
}

func FprintBytesContext(ctx context.Context, w io.Writer, buffer []byte) error {
	_, err := NewDumper(buffer).WriteToContext(ctx, w)

	return err
}

func PrintBytes(buffer []byte) {
	PrintError(FprintBytes(os.Stdout, buffer))
}
