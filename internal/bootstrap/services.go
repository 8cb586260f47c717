package bootstrap

import (
	"database/sql"
	"fmt"
	"log/slog"

	redislib "github.com/redis/go-redis/v9"

	"github.com/inkwell-dev/inkwell/config"
	"github.com/inkwell-dev/inkwell/internal/adapters/bcrypthash"
	"github.com/inkwell-dev/inkwell/internal/adapters/memory"
	"github.com/inkwell-dev/inkwell/internal/adapters/redis"
	"github.com/inkwell-dev/inkwell/internal/adapters/smtpmail"
	"github.com/inkwell-dev/inkwell/internal/data"
	"github.com/inkwell-dev/inkwell/internal/ports"
	"github.com/inkwell-dev/inkwell/internal/service"
)

// ServiceContainer holds the application services built from configuration.
type ServiceContainer struct {
	Auth     *service.AuthService
	Posts    *service.PostService
	Comments *service.CommentService
	Owner    *service.OwnerService
	Contact  *service.ContactService
}

// BuildServices constructs all services against the provided database. The
// redis client is only required when the redis session backend is configured;
// pass nil otherwise.
func BuildServices(
	cfg *config.AppConfig,
	db *sql.DB,
	redisClient redislib.UniversalClient,
	logger *slog.Logger,
) (*ServiceContainer, error) {
	sessions, err := buildSessionStore(cfg.Auth, redisClient)
	if err != nil {
		return nil, err
	}

	users := data.NewUserRepo(db)
	authSvc := service.NewAuthService(service.AuthServiceOptions{
		Users:            users,
		Hasher:           bcrypthash.New(cfg.Auth.BcryptCost),
		Sessions:         sessions,
		SessionTTL:       cfg.Auth.SessionTTL,
		OperationTimeout: cfg.Auth.OperationTimeout,
	})

	return &ServiceContainer{
		Auth:     authSvc,
		Posts:    service.NewPostService(data.NewPostRepo(db)),
		Comments: service.NewCommentService(data.NewCommentRepo(db)),
		Owner:    service.NewOwnerService(users),
		Contact:  service.NewContactService(smtpmail.New(cfg.Mail), logger),
	}, nil
}

func buildSessionStore(cfg config.AuthConfig, client redislib.UniversalClient) (ports.SessionStore, error) {
	switch cfg.SessionBackend {
	case config.SessionBackendRedis:
		if client == nil {
			return nil, fmt.Errorf("session backend %q requires a redis connection", cfg.SessionBackend)
		}
		return redis.NewSessionStore(client), nil
	case config.SessionBackendMemory, "":
		return memory.NewSessionStore(), nil
	default:
		return nil, fmt.Errorf("unknown session backend %q", cfg.SessionBackend)
	}
}
