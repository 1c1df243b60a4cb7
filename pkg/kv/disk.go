package kv

import (
	"github.com/mitchellh/go-homedir"
	"github.com/peterbourgon/diskv/v3"
)

// Disk is a Store persisted to the filesystem via diskv, one file per key.
// Writes land whole or not at all, so callers see each Set as atomic.
type Disk struct {
	d *diskv.Diskv
}

// Open creates a disk-backed Store rooted at the configured base path.
func Open(cfg Config) (*Disk, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath, err := homedir.Expand(cfg.BasePath())
	if err != nil {
		return nil, err
	}
	return &Disk{d: diskv.New(diskv.Options{
		BasePath:     basePath,
		CacheSizeMax: 1024 * 1024, // 1MB
	})}, nil
}

func (s *Disk) Get(key string) (string, bool) {
	val, err := s.d.Read(key)
	if err != nil {
		return "", false
	}
	return string(val), true
}

func (s *Disk) Set(key, value string) error {
	return s.d.Write(key, []byte(value))
}

func (s *Disk) Remove(key string) error {
	if !s.d.Has(key) {
		return nil
	}
	return s.d.Erase(key)
}
