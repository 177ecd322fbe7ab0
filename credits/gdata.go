package credits

import (
	"fmt"

	"github.com/quasilyte/gdata/v2"
)

// storageObject groups the arcade's keys inside the gdata app directory
const storageObject = "arcade"

// GdataKV stores values in the per-user application data directory
type GdataKV struct {
	m *gdata.Manager
}

// OpenGdata opens (or creates) the data directory for appName
func OpenGdata(appName string) (*GdataKV, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("failed to open gdata storage: %w", err)
	}
	return &GdataKV{m: m}, nil
}

func (kv *GdataKV) Get(key string) (string, bool, error) {
	if !kv.m.ObjectPropExists(storageObject, key) {
		return "", false, nil
	}
	data, err := kv.m.LoadObjectProp(storageObject, key)
	if err != nil {
		return "", false, fmt.Errorf("failed to load %s: %w", key, err)
	}
	return string(data), true, nil
}

func (kv *GdataKV) Set(key, value string) error {
	if err := kv.m.SaveObjectProp(storageObject, key, []byte(value)); err != nil {
		return fmt.Errorf("failed to save %s: %w", key, err)
	}
	return nil
}
