// Copyright 2018 The Jadep Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package classreader

import (
	"archive/zip"
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/jikesgo/jikesgo/internal/semcompat"
)

// root is one classpath entry, either a directory tree or a jar/zip
// archive. The directory-chain path building it does when listing
// entries mirrors Zip::ProcessSubdirectoryEntries: an archive entry's
// path is split on '/' and walked one directory symbol at a time rather
// than trusted as an already-correct joined name.
type root interface {
	// find returns the bytes of internalName+".class" if this root has
	// it, or ok == false if it doesn't.
	find(internalName string) (data []byte, ok bool, err error)
}

type dirRoot struct{ base string }

func (d dirRoot) find(internalName string) ([]byte, bool, error) {
	path := filepath.Join(d.base, filepath.FromSlash(internalName)+".class")
	if !semcompat.FileExists(path) {
		return nil, false, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, false, err
	}
	return data, true, nil
}

type zipRoot struct {
	path    string
	mu      sync.Mutex
	entries map[string]*zip.File // internal name -> entry, built lazily on first use
}

func (z *zipRoot) index() (map[string]*zip.File, error) {
	z.mu.Lock()
	defer z.mu.Unlock()
	if z.entries != nil {
		return z.entries, nil
	}
	r, err := zip.OpenReader(z.path)
	if err != nil {
		return nil, err
	}
	// r is left open: find reads the *zip.File entries kept below through it.
	entries := make(map[string]*zip.File, len(r.File))
	for _, f := range r.File {
		if !strings.HasSuffix(f.Name, ".class") {
			continue
		}
		// Build the internal name the way the directory-chain walk in
		// zip.cpp does, rather than assuming the archive's own path
		// separators already match: split on '/', rejoin.
		parts := strings.Split(strings.TrimSuffix(f.Name, ".class"), "/")
		entries[strings.Join(parts, "/")] = f
	}
	z.entries = entries
	return entries, nil
}

func (z *zipRoot) find(internalName string) ([]byte, bool, error) {
	idx, err := z.index()
	if err != nil {
		return nil, false, err
	}
	f, ok := idx[internalName]
	if !ok {
		return nil, false, nil
	}
	rc, err := f.Open()
	if err != nil {
		return nil, false, err
	}
	defer rc.Close()
	data := make([]byte, f.UncompressedSize64)
	if _, err := io.ReadFull(rc, data); err != nil {
		return nil, false, err
	}
	return data, true, nil
}

// cacheEntry mirrors pkgloading.CachingLoader's entry/ready pair: a
// placeholder is installed under the lock before the read starts, and
// every caller - whichever goroutine asked first or tenth - blocks on
// the same ready channel.
type cacheEntry struct {
	result
	ready chan struct{}
}

// Classpath is a concurrent, duplicate-suppressing cache over an ordered
// list of directory/jar roots, grounded on pkgloading.CachingLoader: each
// distinct class name is read and decoded at most once no matter how
// many goroutines ask for it concurrently.
type Classpath struct {
	roots []root

	mu    sync.Mutex
	cache map[string]*cacheEntry
}

// NewClasspath builds a Classpath from an ordered list of -classpath
// entries, each either a directory or a .jar/.zip file. Entries that do
// not exist are skipped; the caller is expected to have already turned
// a missing required entry into a diagnostic.
func NewClasspath(entries []string) *Classpath {
	cp := &Classpath{cache: make(map[string]*cacheEntry)}
	for _, e := range entries {
		info, err := os.Stat(e)
		if err != nil {
			continue
		}
		if info.IsDir() {
			cp.roots = append(cp.roots, dirRoot{base: e})
		} else {
			cp.roots = append(cp.roots, &zipRoot{path: e})
		}
	}
	return cp
}

// Load decodes and returns the class files named by internalNames
// (slash-separated, no ".class" suffix), reading each one at most once.
// Names that are not found on the classpath are simply absent from the
// result map; that is not itself an error, since the caller may be
// probing several candidate on-demand imports.
func (cp *Classpath) Load(ctx context.Context, internalNames []string) (map[string]*ClassFile, error) {
	var all, work []*cacheEntry
	names := make(map[*cacheEntry]string, len(internalNames))

	cp.mu.Lock()
	for _, name := range internalNames {
		e, ok := cp.cache[name]
		if !ok {
			e = &cacheEntry{ready: make(chan struct{})}
			cp.cache[name] = e
			work = append(work, e)
		}
		all = append(all, e)
		names[e] = name
	}
	cp.mu.Unlock()

	if len(work) > 0 {
		g, gctx := errgroup.WithContext(ctx)
		for _, e := range work {
			e, name := e, names[e]
			g.Go(func() error {
				e.cf, e.err = cp.readOne(gctx, name)
				close(e.ready)
				return nil // per-class failures are reported via e.err, not the group
			})
		}
		g.Wait() // no fatal error path: readOne never returns a group-aborting error
	}

	out := make(map[string]*ClassFile)
	var errs []error
	for _, e := range all {
		<-e.ready
		if e.err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", names[e], e.err))
			continue
		}
		if e.cf != nil {
			out[names[e]] = e.cf
		}
	}
	if len(errs) > 0 {
		return out, fmt.Errorf("classreader: %d classpath read error(s): %v", len(errs), errs)
	}
	return out, nil
}

type result struct {
	cf  *ClassFile
	err error
}

func (cp *Classpath) readOne(_ context.Context, internalName string) (*ClassFile, error) {
	for _, r := range cp.roots {
		data, ok, err := r.find(internalName)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		return Read(bytes.NewReader(data))
	}
	return nil, nil
}
