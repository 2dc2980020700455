package archive

import (
	"context"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/mholt/archives"
	"github.com/pkg/errors"
	"github.com/skufirovan/command-line-emulator/vfs"
)

// Load reads the member list of the archive at filename and builds the index. Every member becomes one
// entry, directories are tagged vfs.Directory and everything else vfs.File. Links and other non-regular
// members are marked special.
func Load(ctx context.Context, filename string) (*vfs.Index, error) {
	var entries []vfs.Entry

	err := walk(ctx, filename, func(ctx context.Context, f archives.FileInfo) error {
		entry := vfs.Entry{Path: memberName(f), Kind: vfs.File}
		if f.IsDir() {
			entry.Kind = vfs.Directory
		} else {
			entry.Special = isSpecial(f)
		}
		entries = append(entries, entry)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return vfs.NewIndex(entries), nil
}

// Reader reads member contents from an archive on disk. The archive is reopened on every read, so reads
// never depend on each other.
type Reader struct {
	filename string
}

// NewReader returns a reader for the archive at filename.
func NewReader(filename string) *Reader {
	return &Reader{filename}
}

// Filename returns the path of the underlying archive.
func (reader *Reader) Filename() string {
	return reader.filename
}

// ReadFile returns the content of the member name. If the archive holds the name more than once, the
// last occurrence wins. Only regular files have content; directories and links are reported as not found.
func (reader *Reader) ReadFile(ctx context.Context, name string) ([]byte, error) {
	var (
		data  []byte
		found bool
	)

	err := walk(ctx, reader.filename, func(ctx context.Context, f archives.FileInfo) error {
		if memberName(f) != name {
			return nil
		}

		if f.IsDir() || isSpecial(f) {
			data, found = nil, false
			return nil
		}

		content, err := readMember(f)
		if err != nil {
			return errors.WithMessagef(err, "failed to read %s", name)
		}

		data, found = content, true
		return nil
	})
	if err != nil {
		return nil, err
	}

	if !found {
		return nil, errors.WithMessage(ErrEntryNotFound, name)
	}

	return data, nil
}

// ReadText returns the content of the member name decoded as UTF-8 text.
func (reader *Reader) ReadText(ctx context.Context, name string) (string, error) {
	data, err := reader.ReadFile(ctx, name)
	if err != nil {
		return "", err
	}
	return DecodeText(data)
}

// DecodeText interprets data as UTF-8 text.
func DecodeText(data []byte) (string, error) {
	if !utf8.Valid(data) {
		return "", ErrDecode
	}
	return string(data), nil
}

// walk identifies the archive format and calls handler for every member in archive order. A non-empty file
// that matches no format by name or header is read as a plain tar, so tars made only of end blocks load
// as empty archives.
func walk(ctx context.Context, filename string, handler archives.FileHandler) error {
	file, err := os.Open(filename)
	if err != nil {
		return &UnreadableError{filename, err}
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return &UnreadableError{filename, err}
	}

	format, input, err := archives.Identify(ctx, filename, file)
	if errors.Is(err, archives.NoMatch) && info.Size() > 0 {
		format, err = archives.Tar{}, nil
	}
	if err != nil {
		return &UnreadableError{filename, errors.WithMessage(err, "failed to identify archive format")}
	}

	extractor, ok := format.(archives.Extractor)
	if !ok {
		return &UnreadableError{filename, errors.Errorf("archive format %T does not support extraction", format)}
	}

	if err := extractor.Extract(ctx, input, handler); err != nil {
		return &UnreadableError{filename, err}
	}

	return nil
}

func readMember(f archives.FileInfo) ([]byte, error) {
	rc, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	return io.ReadAll(rc)
}

// isSpecial reports whether a non-directory member lacks content of its own: hard links, symbolic links,
// devices and fifos.
func isSpecial(f archives.FileInfo) bool {
	return f.LinkTarget != "" || !f.Mode().IsRegular()
}

// memberName returns the index key of a member. Directory members lose their trailing slashes.
func memberName(f archives.FileInfo) string {
	name := f.NameInArchive
	if f.IsDir() {
		if trimmed := strings.TrimRight(name, "/"); trimmed != "" {
			name = trimmed
		}
	}
	return name
}
