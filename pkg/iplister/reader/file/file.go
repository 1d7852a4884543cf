package file

import (
	"context"
	"io"
	"os"
)

// File reads a local copy of an ip ranges document.
type File struct {
	filename string
}

func New(filename string) *File {
	return &File{
		filename: filename,
	}
}

func (f *File) Data(ctx context.Context) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	fh, err := os.Open(f.filename)
	if err != nil {
		return nil, err
	}

	return fh, nil
}
