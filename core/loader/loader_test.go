package loader_test

import (
	"errors"
	"testing"

	"property-insights/core/loader"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeFeature struct {
	name    string
	enabled bool
	loadErr error
	loaded  bool
}

func (f *fakeFeature) Name() string    { return f.name }
func (f *fakeFeature) IsEnabled() bool { return f.enabled }
func (f *fakeFeature) Load(fiber.Router) error {
	f.loaded = true
	return f.loadErr
}

func TestManager_LoadAll(t *testing.T) {
	app := fiber.New()

	enabled := &fakeFeature{name: "insights", enabled: true}
	disabled := &fakeFeature{name: "extras", enabled: false}

	mgr := loader.NewManager()
	mgr.Register(enabled)
	mgr.Register(disabled)

	require.NoError(t, mgr.LoadAll(app))
	assert.True(t, enabled.loaded)
	assert.False(t, disabled.loaded, "disabled features are skipped")
}

func TestManager_LoadAllPropagatesFailure(t *testing.T) {
	app := fiber.New()

	broken := &fakeFeature{name: "broken", enabled: true, loadErr: errors.New("boom")}
	after := &fakeFeature{name: "after", enabled: true}

	mgr := loader.NewManager()
	mgr.Register(broken)
	mgr.Register(after)

	err := mgr.LoadAll(app)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken")
	assert.False(t, after.loaded, "loading aborts on the first failure")
}
