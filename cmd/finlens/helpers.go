package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/viper"

	"github.com/finlens/finlens/internal/api"
	"github.com/finlens/finlens/internal/common"
	"github.com/finlens/finlens/internal/config"
	"github.com/finlens/finlens/internal/session"
)

// checkAmount gates the --amount flag shared by the add and set commands.
func checkAmount(amount float64) error {
	if amount <= 0 {
		return fmt.Errorf("%w: amount should be a valid number greater than 0", common.ErrInvalidInput)
	}
	return nil
}

// initSessionStore resolves the session state file, honoring an override
// from config.
func initSessionStore() (*session.Store, error) {
	if path := viper.GetString("session.file"); path != "" {
		return session.NewStoreAt(config.ExpandPath(path)), nil
	}
	return session.NewStore()
}

// initClient builds the API client from config plus the persisted session.
func initClient() (*api.Client, *session.Store, error) {
	store, err := initSessionStore()
	if err != nil {
		return nil, nil, err
	}

	client, err := api.NewClient(api.Config{
		BaseURL: viper.GetString("api.base_url"),
		Timeout: viper.GetDuration("api.timeout"),
	}, store)
	if err != nil {
		return nil, nil, err
	}

	return client, store, nil
}

// writeExport saves a downloaded spreadsheet blob, expanding ~ in the
// target path and showing byte progress for large exports.
func writeExport(path string, data []byte) error {
	path = config.ExpandPath(path)

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer func() {
		_ = f.Close()
	}()

	bar := progressbar.DefaultBytes(int64(len(data)), "saving")
	if _, err := io.Copy(io.MultiWriter(f, bar), bytes.NewReader(data)); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	common.LogInfo("export saved", common.Fields{"path": path, "bytes": len(data)})
	return nil
}
