package store

import (
	"os"
	"path/filepath"
	"sync"

	"groupcrypt/internal/codec"
	"groupcrypt/internal/keys"
	"groupcrypt/internal/util/memzero"
)

const (
	identityFile = "identity.enc"
	bundleFile   = "initkey_bundle.enc"
)

// FileStore keeps the identity and the current init-key bundle on disk,
// each sealed in a passphrase envelope.
type FileStore struct {
	dir string
	mu  sync.Mutex
}

// NewFileStore returns a store rooted at dir.
func NewFileStore(dir string) *FileStore { return &FileStore{dir: dir} }

// SaveIdentity seals the identity's wire encoding under passphrase.
func (s *FileStore) SaveIdentity(passphrase string, id *keys.Identity) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var w codec.Writer
	id.Encode(&w)
	defer memzero.Zero(w.Bytes())

	N, r, p := scryptParamsDefault()
	blob, err := seal(passphrase, w.Bytes(), N, r, p)
	if err != nil {
		return err
	}
	return writeFile(filepath.Join(s.dir, identityFile), blob)
}

// LoadIdentity opens and decodes the stored identity.
func (s *FileStore) LoadIdentity(passphrase string) (*keys.Identity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	blob, err := os.ReadFile(filepath.Join(s.dir, identityFile))
	if err != nil {
		return nil, err
	}
	raw, err := open(passphrase, blob)
	if err != nil {
		return nil, err
	}
	defer memzero.Zero(raw)
	return keys.DecodeIdentity(codec.NewCursor(raw))
}

// SaveBundle seals the bundle's wire encoding under passphrase. The
// bundle holds private keys, so it gets the same envelope as the identity.
func (s *FileStore) SaveBundle(passphrase string, b *keys.UserInitKeyBundle) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var w codec.Writer
	b.Encode(&w)
	defer memzero.Zero(w.Bytes())

	N, r, p := scryptParamsDefault()
	blob, err := seal(passphrase, w.Bytes(), N, r, p)
	if err != nil {
		return err
	}
	return writeFile(filepath.Join(s.dir, bundleFile), blob)
}

// LoadBundle opens and decodes the stored bundle.
func (s *FileStore) LoadBundle(passphrase string) (*keys.UserInitKeyBundle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	blob, err := os.ReadFile(filepath.Join(s.dir, bundleFile))
	if err != nil {
		return nil, err
	}
	raw, err := open(passphrase, blob)
	if err != nil {
		return nil, err
	}
	defer memzero.Zero(raw)
	return keys.DecodeUserInitKeyBundle(codec.NewCursor(raw))
}

// writeFile writes via a temp file then rename.
func writeFile(path string, b []byte) error {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
