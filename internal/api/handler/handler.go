package handler

import "github.com/AlexandreJustinRepia/dtr-denr/internal/service"

// Handler aggregates all HTTP handlers.
type Handler struct {
	Auth   *AuthHandler
	DTR    *DTRHandler
	Export *ExportHandler
}

// NewHandler wires the handler aggregate.
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Auth:   NewAuthHandler(svc.Auth),
		DTR:    NewDTRHandler(svc.DTR),
		Export: NewExportHandler(svc.Export),
	}
}
