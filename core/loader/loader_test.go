package loader

import (
	"fmt"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubFeature struct {
	name    string
	enabled bool
	loadErr error
	loaded  bool
}

func (f *stubFeature) Name() string { return f.name }

func (f *stubFeature) IsEnabled() bool { return f.enabled }
func (f *stubFeature) Load(fiber.Router) error {
	f.loaded = true
	return f.loadErr
}

func TestManager_LoadAll(t *testing.T) {
	mgr := NewManager()
	enabled := &stubFeature{name: "receiving", enabled: true}
	disabled := &stubFeature{name: "inventory", enabled: false}
	mgr.Register(enabled)
	mgr.Register(disabled)

	err := mgr.LoadAll(fiber.New())
	require.NoError(t, err)

	assert.True(t, enabled.loaded)
	assert.False(t, disabled.loaded)
	assert.Equal(t, []string{"receiving", "inventory"}, mgr.Names())
}

func TestManager_LoadAll_FailsFast(t *testing.T) {
	mgr := NewManager()
	broken := &stubFeature{name: "broken", enabled: true, loadErr: fmt.Errorf("boom")}
	after := &stubFeature{name: "after", enabled: true}
	mgr.Register(broken)
	mgr.Register(after)

	err := mgr.LoadAll(fiber.New())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken")
	assert.False(t, after.loaded)
}
