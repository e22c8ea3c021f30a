package supplies_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/unilab/labdash/internal/modules/supplies"
	"github.com/unilab/labdash/internal/shared/infrastructure/labapi"
)

func TestNewModule(t *testing.T) {
	m := supplies.NewModule(labapi.NewClient(labapi.Config{BaseURL: "http://localhost:1"}), nil, nil)
	require.NotNil(t, m)
	assert.NotNil(t, m.Repository())
	assert.NotNil(t, m.Service())
	assert.NotNil(t, m.HTTPHandler())
}
