package core

import (
	"bytes"
	"io"
	"os"

	"github.com/siddontang/go/ioutil2"
)

// ReadFile loads the whole content of the file at path.
func ReadFile(path string) ([]byte, error) {
	if !ioutil2.FileExists(path) {
		return nil, WrapKind(KIND_OPEN, &os.PathError{Op: "open", Path: path, Err: os.ErrNotExist}, "access")
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, WrapKind(KIND_OPEN, err, "open")
	}

	defer DeferedCall(f.Close)

	info, err := f.Stat()
	if err != nil {
		return nil, WrapKind(KIND_OPEN, err, "stat")
	}

	if info.IsDir() {
		return nil, WrapKind(KIND_OPEN, &os.PathError{Op: "open", Path: path, Err: errIsDirectory}, "open")
	}

	return ReadAll(f, info.Size())
}

// ReadAll reads r to completion; size_hint only pre-sizes the buffer.
func ReadAll(r io.Reader, size_hint int64) ([]byte, error) {
	var out bytes.Buffer

	if (size_hint > 0) && (int64(int(size_hint)) == size_hint) {
		out.Grow(int(size_hint) + bytes.MinRead)
	}

	if _, err := out.ReadFrom(r); err != nil {
		return nil, WrapKind(KIND_READ, err, "read")
	}

	return out.Bytes(), nil
}

type tConstError string

func (self tConstError) Error() string { return string(self) }

const errIsDirectory = tConstError("is a directory")
