package archive

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrArchiveUnreadable = errors.New("archive unreadable")
	ErrEntryNotFound     = errors.New("entry not found")
	ErrDecode            = errors.New("content is not valid UTF-8 text")
)

// UnreadableError describes an archive that could not be opened or parsed.
type UnreadableError struct {
	Path string
	Err  error
}

func (e *UnreadableError) Error() string {
	return fmt.Sprintf("archive %s unreadable: %v", e.Path, e.Err)
}

func (e *UnreadableError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrArchiveUnreadable) hold for every UnreadableError.
func (e *UnreadableError) Is(target error) bool {
	return target == ErrArchiveUnreadable
}
