package preferences

import (
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	goredis "github.com/redis/go-redis/v9"
	"github.com/unilab/labdash/internal/modules/preferences/domain"
	"github.com/unilab/labdash/internal/modules/preferences/infrastructure/memory"
	"github.com/unilab/labdash/internal/modules/preferences/infrastructure/postgres"
	"github.com/unilab/labdash/internal/modules/preferences/infrastructure/redis"
)

const (
	BackendMemory   = "memory"
	BackendRedis    = "redis"
	BackendPostgres = "postgres"
)

// Module owns the preference store selected by PREFERENCES_BACKEND
type Module struct {
	backend string
	store   domain.Store
}

// NewModule builds the store for backend. The redis client or the database
// must be non-nil when their backend is selected.
func NewModule(backend string, rdb *goredis.Client, db *sqlx.DB) (*Module, error) {
	var store domain.Store
	switch backend {
	case "", BackendMemory:
		backend = BackendMemory
		store = memory.NewStore()
	case BackendRedis:
		if rdb == nil {
			return nil, errors.New("redis preferences backend needs a redis client")
		}
		store = redis.NewStore(rdb)
	case BackendPostgres:
		if db == nil {
			return nil, errors.New("postgres preferences backend needs a database")
		}
		store = postgres.NewStore(db)
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownBackend, backend)
	}
	return &Module{backend: backend, store: store}, nil
}

func (m *Module) Store() domain.Store {
	return m.store
}

func (m *Module) Backend() string {
	return m.backend
}
