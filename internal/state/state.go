package state

import (
	"github.com/iamanderson-dev/thoughts-app/internal/config"
	"github.com/iamanderson-dev/thoughts-app/internal/db"
)

type State struct {
	DB     db.DB
	Config config.Configuration
}
