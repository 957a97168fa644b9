package fsutils

import (
	"io"
	"os"
)

// ReadFileData reads up to max bytes of a file.
// max == 0 reads the whole file, max > 0 reads the first max bytes,
// max < 0 reads the last |max| bytes.
func ReadFileData(name string, max int) ([]byte, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = f.Close()
	}()

	if max == 0 {
		return io.ReadAll(f)
	}

	if max > 0 {
		buf := make([]byte, max)
		n, err := io.ReadFull(f, buf)
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			err = nil
		}
		return buf[:n], err
	}

	info, err := f.Stat()
	if err != nil {
		return nil, err
	}
	tail := int64(-max)
	if tail < info.Size() {
		if _, err = f.Seek(info.Size()-tail, io.SeekStart); err != nil {
			return nil, err
		}
	}
	return io.ReadAll(f)
}
