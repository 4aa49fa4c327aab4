package store

import (
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

const sqliteFileName = "picks.sqlite"

// Store persists committed picks under Dir.
type Store struct {
	Dir string
	Log logrus.FieldLogger
}

// DefaultDir is the store directory used when neither --dir nor DTPICK_DIR
// is set: <config dir>/store.
func DefaultDir() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "store"), nil
}

func (s Store) Ensure() error {
	return os.MkdirAll(s.Dir, 0o755)
}

func (s Store) sqlitePath() string {
	return filepath.Join(s.Dir, sqliteFileName)
}

func (s Store) log() logrus.FieldLogger {
	if s.Log != nil {
		return s.Log
	}
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}
