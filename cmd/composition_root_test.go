package cmd

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Handler construction must not touch the database, so a nil gorm.DB is
// enough to exercise the full wiring.
func TestCompositionRoot_CreateHTTPServer_WiresAllHandlers(t *testing.T) {
	root := NewCompositionRoot(Config{}, nil)
	assert.NotNil(t, root.CreateHTTPServer())
}

func TestCompositionRoot_CreateJobManager(t *testing.T) {
	root := NewCompositionRoot(Config{}, nil)
	assert.NotNil(t, root.CreateJobManager(slog.New(slog.DiscardHandler)))
}
