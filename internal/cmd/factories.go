package cmd

import (
	"fmt"
	"time"

	adaptergit "github.com/0xADD1E/git-statusline/internal/adapters/git"
	adaptergogit "github.com/0xADD1E/git-statusline/internal/adapters/gogit"
	"github.com/0xADD1E/git-statusline/internal/config"
	"github.com/0xADD1E/git-statusline/internal/logging"
	"github.com/0xADD1E/git-statusline/internal/ports"
	"github.com/0xADD1E/git-statusline/internal/services"
)

// Container holds all dependencies for the application
type Container struct {
	// Services
	StatusService *services.StatusService
}

// NewContainer creates a new Container with the repository backend wired.
// timeout bounds the divergence lookup and each git child process of the git backend.
func NewContainer(backend string, timeout time.Duration) (*Container, error) {
	opener, err := newOpener(backend, timeout)
	if err != nil {
		return nil, err
	}

	logging.Logger.Debug("Container created", "backend", backend, "timeout", timeout)

	return &Container{
		StatusService: services.NewStatusService(opener, timeout),
	}, nil
}

func newOpener(backend string, timeout time.Duration) (ports.RepositoryOpener, error) {
	switch backend {
	case "", config.BackendGoGit:
		return adaptergogit.NewOpener(), nil
	case config.BackendGit:
		return adaptergit.NewCLIOpener(timeout), nil
	default:
		return nil, fmt.Errorf("unknown backend '%s' (expected %s or %s)", backend, config.BackendGoGit, config.BackendGit)
	}
}
