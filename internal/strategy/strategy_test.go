package strategy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryNames(t *testing.T) {
	assert.Equal(t, []string{"aluren", "frantic-storm"}, Names())
}

func TestNewByKey(t *testing.T) {
	aluren, err := New("aluren")
	require.NoError(t, err)
	assert.Equal(t, AlurenName, aluren.Name())

	storm, err := New("frantic-storm")
	require.NoError(t, err)
	assert.Equal(t, FranticStormName, storm.Name())
}

func TestNewUnknownKey(t *testing.T) {
	_, err := New("turbo-fog")
	assert.ErrorIs(t, err, ErrUnknownStrategy)
}

func TestConstructorBuildsFreshPilots(t *testing.T) {
	build, err := ConstructorFor("frantic-storm")
	require.NoError(t, err)

	first := build()
	second := build()
	assert.NotSame(t, first, second)
}
