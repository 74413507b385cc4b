package sink

import (
	"os"

	"github.com/matzehuels/rnaviz/pkg/errors"
)

// WriteFile writes a rendered document to path. The file is closed on every
// path; any failure is a RENDER_IO_ERROR.
func WriteFile(path string, data []byte) (err error) {
	if err := errors.ValidateOutputPath(path); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeRenderIO, err, "create %s", path)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = errors.Wrap(errors.ErrCodeRenderIO, cerr, "close %s", path)
		}
	}()
	if _, err := f.Write(data); err != nil {
		return errors.Wrap(errors.ErrCodeRenderIO, err, "write %s", path)
	}
	return nil
}
