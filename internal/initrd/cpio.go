// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package initrd

import (
	"errors"
	"fmt"
	"io"
	"io/fs"

	"github.com/cavaliergopher/cpio"
)

const numLinks = 2

// ErrUnsupportedFileType is returned for files that are neither directories
// nor regular files.
var ErrUnsupportedFileType = errors.New("unsupported file type")

// Writer writes directory trees into a cpio archive.
type Writer struct {
	cpioWriter *cpio.Writer
}

// NewWriter creates a new archive writer.
func NewWriter(w io.Writer) *Writer {
	return &Writer{cpio.NewWriter(w)}
}

// Close writes the archive trailer. Flush is called by the underlying closer.
func (w *Writer) Close() error {
	err := w.cpioWriter.Close()
	if err != nil {
		return fmt.Errorf("close: %w", err)
	}

	return nil
}

func (w *Writer) writeHeader(hdr *cpio.Header) error {
	if err := w.cpioWriter.WriteHeader(hdr); err != nil {
		return fmt.Errorf("write header for %s: %w", hdr.Name, err)
	}

	return nil
}

// WriteDirectory adds a directory entry for the given path to the archive.
func (w *Writer) WriteDirectory(path string, perm fs.FileMode) error {
	return w.writeHeader(&cpio.Header{
		Name:  path,
		Mode:  cpio.TypeDir | cpio.FileMode(perm.Perm()),
		Links: numLinks,
	})
}

// WriteRegular copies the content of source into the archive at path.
func (w *Writer) WriteRegular(path string, source io.Reader, size int64, perm fs.FileMode) error {
	err := w.writeHeader(&cpio.Header{
		Name:  path,
		Mode:  cpio.TypeReg | cpio.FileMode(perm.Perm()),
		Size:  size,
		Links: 1,
	})
	if err != nil {
		return err
	}

	if _, err := io.Copy(w.cpioWriter, source); err != nil {
		return fmt.Errorf("write body for %s: %w", path, err)
	}

	return nil
}

// WriteFS adds all directories and regular files of fsys to the archive. Paths
// in the archive are relative to the root of fsys. Entries are written in
// lexical order, so equal trees result in equal archives.
func (w *Writer) WriteFS(fsys fs.FS) error {
	return fs.WalkDir(fsys, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if path == "." {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return fmt.Errorf("info %s: %w", path, err)
		}

		switch {
		case d.IsDir():
			return w.WriteDirectory(path, info.Mode())
		case info.Mode().IsRegular():
			return w.writeFile(fsys, path, info)
		default:
			return fmt.Errorf("%s: %w", path, ErrUnsupportedFileType)
		}
	})
}

func (w *Writer) writeFile(fsys fs.FS, path string, info fs.FileInfo) error {
	file, err := fsys.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()

	return w.WriteRegular(path, file, info.Size(), info.Mode())
}

// Write writes fsys as complete archive into w.
func Write(w io.Writer, fsys fs.FS) error {
	writer := NewWriter(w)

	err := writer.WriteFS(fsys)
	if err != nil {
		return err
	}

	return writer.Close()
}
