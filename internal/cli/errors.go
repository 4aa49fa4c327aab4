package cli

import (
	"errors"
	"fmt"
)

var errNotTerminal = errors.New("pick needs an interactive terminal (stdin and stderr must be a TTY); use `dtpick compose` in scripts")

type flagError struct {
	flag  string
	value string
	err   error
}

func (e flagError) Error() string {
	return fmt.Sprintf("invalid %s %q: %v", e.flag, e.value, e.err)
}

func (e flagError) Unwrap() error { return e.err }

type notFoundError struct {
	kind string
	id   string
}

func (e notFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.kind, e.id)
}

func errNotFound(kind, id string) error {
	return notFoundError{kind: kind, id: id}
}
