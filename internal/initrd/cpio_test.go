// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package initrd_test

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"testing"
	"testing/fstest"

	"github.com/budde25/os/internal/initrd"
	"github.com/cavaliergopher/cpio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type entry struct {
	name  string
	mode  cpio.FileMode
	links int
	body  string
}

func readArchive(t *testing.T, r io.Reader) []entry {
	t.Helper()

	var entries []entry

	reader := cpio.NewReader(r)

	for {
		hdr, err := reader.Next()
		if errors.Is(err, io.EOF) {
			break
		}

		require.NoError(t, err)

		body, err := io.ReadAll(reader)
		require.NoError(t, err)

		entries = append(entries, entry{
			name:  hdr.Name,
			mode:  hdr.Mode,
			links: hdr.Links,
			body:  string(body),
		})
	}

	return entries
}

func TestWrite(t *testing.T) {
	fsys := fstest.MapFS{
		"etc":             &fstest.MapFile{Mode: fs.ModeDir | 0o755},
		"etc/motd":        &fstest.MapFile{Data: []byte("hello"), Mode: 0o644},
		"bin/init":        &fstest.MapFile{Data: []byte("\x7fELF"), Mode: 0o755},
		"var/empty":       &fstest.MapFile{Mode: fs.ModeDir | 0o700},
		"var/empty/.keep": &fstest.MapFile{Mode: 0o600},
	}

	var archive bytes.Buffer

	require.NoError(t, initrd.Write(&archive, fsys))

	expected := []entry{
		{name: "bin", mode: cpio.TypeDir | 0o555, links: 2},
		{name: "bin/init", mode: cpio.TypeReg | 0o755, links: 1, body: "\x7fELF"},
		{name: "etc", mode: cpio.TypeDir | 0o755, links: 2},
		{name: "etc/motd", mode: cpio.TypeReg | 0o644, links: 1, body: "hello"},
		{name: "var", mode: cpio.TypeDir | 0o555, links: 2},
		{name: "var/empty", mode: cpio.TypeDir | 0o700, links: 2},
		{name: "var/empty/.keep", mode: cpio.TypeReg | 0o600, links: 1},
	}

	assert.Equal(t, expected, readArchive(t, &archive))
}

func TestWrite_Empty(t *testing.T) {
	var archive bytes.Buffer

	require.NoError(t, initrd.Write(&archive, fstest.MapFS{}))
	assert.Empty(t, readArchive(t, &archive))
}

func TestWrite_UnsupportedFileType(t *testing.T) {
	fsys := fstest.MapFS{
		"dev/console": &fstest.MapFile{Mode: fs.ModeDevice | fs.ModeCharDevice},
	}

	err := initrd.Write(io.Discard, fsys)
	require.ErrorIs(t, err, initrd.ErrUnsupportedFileType)
}
