// Package clipboard exposes the system clipboard as text plus a change
// counter that advances whenever the contents change.
package clipboard

import (
	"fmt"
	"sync"

	"github.com/cespare/xxhash/v2"
	"golang.design/x/clipboard"
)

// Snapshot is the clipboard's contents together with the counter value they
// were read at.
type Snapshot struct {
	Text  string
	Image []byte
	Count uint64
}

// Board is the clipboard as seen by the selection engine. ChangeCount must
// never decrease. Snapshot reads the contents and the counter consistently;
// ReadText and WriteText are not atomic with the counter.
type Board interface {
	ChangeCount() uint64
	ReadText() string
	WriteText(text string) error
	Snapshot() Snapshot
	Restore(s Snapshot) error
}

// System is the process-wide system clipboard. Platforms without a native
// change counter get one emulated from content hashes: every observed change
// of contents, and every write made through System, bumps the counter.
// Rewriting identical contents from another process goes unnoticed.
type System struct {
	mu   sync.Mutex
	seq  uint64
	last uint64

	read  func(clipboard.Format) []byte
	write func(clipboard.Format, []byte)
}

var (
	initOnce sync.Once
	initErr  error
)

// NewSystem initializes the clipboard backend once per process.
func NewSystem() (*System, error) {
	initOnce.Do(func() {
		initErr = clipboard.Init()
	})
	if initErr != nil {
		return nil, fmt.Errorf("clipboard unavailable: %w", initErr)
	}
	return newSystem(
		clipboard.Read,
		func(f clipboard.Format, data []byte) { clipboard.Write(f, data) },
	), nil
}

func newSystem(read func(clipboard.Format) []byte, write func(clipboard.Format, []byte)) *System {
	s := &System{read: read, write: write}
	s.last = contentHash(read(clipboard.FmtText), read(clipboard.FmtImage))
	return s
}

// ChangeCount returns the current counter, first folding in any change made
// by another process since the last observation.
func (s *System) ChangeCount() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.observe(s.read(clipboard.FmtText), s.read(clipboard.FmtImage))
	return s.seq
}

// ReadText returns the clipboard's text flavor, or "" if it holds none.
func (s *System) ReadText() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	text := s.read(clipboard.FmtText)
	s.observe(text, s.read(clipboard.FmtImage))
	return string(text)
}

// WriteText replaces the clipboard's contents with text.
func (s *System) WriteText(text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	data := []byte(text)
	s.write(clipboard.FmtText, data)
	s.last = contentHash(data, nil)
	s.seq++
	return nil
}

// Snapshot reads both flavors and the counter under one lock.
func (s *System) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	text := s.read(clipboard.FmtText)
	image := s.read(clipboard.FmtImage)
	s.observe(text, image)
	return Snapshot{Text: string(text), Image: image, Count: s.seq}
}

// Restore reinstalls snapshot contents. An image is restored only when the
// snapshot held no text, since either write replaces the whole clipboard.
func (s *System) Restore(snap Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if snap.Text == "" && len(snap.Image) > 0 {
		s.write(clipboard.FmtImage, snap.Image)
		s.last = contentHash(nil, snap.Image)
	} else {
		s.write(clipboard.FmtText, []byte(snap.Text))
		s.last = contentHash([]byte(snap.Text), nil)
	}
	s.seq++
	return nil
}

func (s *System) observe(text, image []byte) {
	if h := contentHash(text, image); h != s.last {
		s.last = h
		s.seq++
	}
}

func contentHash(text, image []byte) uint64 {
	d := xxhash.New()
	_, _ = d.Write(text)
	_, _ = d.Write([]byte{0})
	_, _ = d.Write(image)
	return d.Sum64()
}
