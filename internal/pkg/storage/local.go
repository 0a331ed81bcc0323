package storage

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// LocalStore 把上传文件写到 dir 下, 同名文件直接覆盖
type LocalStore struct {
	dir string
}

func NewLocalStore(dir string) (*LocalStore, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, errors.Wrapf(err, "resolve upload dir %s", dir)
	}
	if err = os.MkdirAll(abs, 0o755); err != nil {
		return nil, errors.Wrapf(err, "create upload dir %s", abs)
	}
	return &LocalStore{dir: abs}, nil
}

func (s *LocalStore) Dir() string {
	return s.dir
}

func (s *LocalStore) Save(_ context.Context, name string, r io.Reader, _ int64, _ string) (string, error) {
	if name != filepath.Base(name) || name == "." || name == ".." {
		return "", errors.Errorf("invalid file name %q", name)
	}

	target := filepath.Join(s.dir, name)
	f, err := os.Create(target)
	if err != nil {
		return "", errors.Wrapf(err, "create %s", target)
	}
	defer func() {
		_ = f.Close()
	}()

	if _, err = io.Copy(f, r); err != nil {
		return "", errors.Wrapf(err, "write %s", target)
	}
	return target, nil
}
