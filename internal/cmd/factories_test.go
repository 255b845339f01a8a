package cmd

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	adaptergit "github.com/0xADD1E/git-statusline/internal/adapters/git"
	adaptergogit "github.com/0xADD1E/git-statusline/internal/adapters/gogit"
)

func TestNewOpener(t *testing.T) {
	opener, err := newOpener("", time.Second)
	require.NoError(t, err)
	assert.IsType(t, &adaptergogit.Opener{}, opener)

	opener, err = newOpener("gogit", time.Second)
	require.NoError(t, err)
	assert.IsType(t, &adaptergogit.Opener{}, opener)

	opener, err = newOpener("git", time.Second)
	require.NoError(t, err)
	assert.IsType(t, &adaptergit.CLIOpener{}, opener)

	_, err = newOpener("libgit2", time.Second)
	assert.Error(t, err)
}

func TestNewContainer(t *testing.T) {
	container, err := NewContainer("git", time.Second)

	require.NoError(t, err)
	assert.NotNil(t, container.StatusService)

	_, err = NewContainer("svn", time.Second)
	assert.Error(t, err)
}
