package service

import (
	"go.uber.org/zap"

	"github.com/AlexandreJustinRepia/dtr-denr/config"
	"github.com/AlexandreJustinRepia/dtr-denr/internal/repository"
	"github.com/AlexandreJustinRepia/dtr-denr/pkg/jwt"
	"github.com/AlexandreJustinRepia/dtr-denr/pkg/redis"
)

// Service aggregates all business services.
type Service struct {
	Auth   AuthService
	DTR    DTRService
	Export ExportService
}

// NewService wires the service aggregate. rdb may be nil; auth then skips
// token revocation.
func NewService(
	cfg *config.Config,
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	rdb *redis.Client,
	logger *zap.Logger,
) *Service {
	dtrSvc := NewDTRService(&cfg.Parser, repo, logger)
	return &Service{
		Auth:   NewAuthService(cfg, jwtMgr, rdb, logger),
		DTR:    dtrSvc,
		Export: NewExportService(&cfg.Export, dtrSvc, logger),
	}
}
