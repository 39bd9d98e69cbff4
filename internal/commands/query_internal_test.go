package commands

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fuelview/fuelview/internal/render"
)

func TestWriteFile_RemovesPartialFileOnError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	errBoom := errors.New("disk full")

	err := writeFile(path, "CSV", func(w io.Writer) error {
		_, _ = io.WriteString(w, "Vehicle_no,")
		return errBoom
	})
	require.ErrorIs(t, err, errBoom)
	assert.Contains(t, err.Error(), "writing CSV")

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr), "partial file should be removed")
}

func TestWriteChart_NoRecordsLeavesNoFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.png")

	err := writeChart(path, "ZZ9", nil)
	require.ErrorIs(t, err, render.ErrNoPoints)

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestWriteFile_KeepsCompleteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")

	require.NoError(t, writeFile(path, "CSV", func(w io.Writer) error {
		_, err := io.WriteString(w, "ok\n")
		return err
	}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "ok\n", string(data))
}
