package router

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Module describes a feature module that can register its routes on a RouterGroup
type Module interface {
	Name() string
	Register(rg *gin.RouterGroup)
}

type Registry struct {
	Engine      *gin.Engine
	API         *gin.RouterGroup
	Logger      *logrus.Logger
	middlewares []gin.HandlerFunc
	modules     []Module
}

func NewRegistry(engine *gin.Engine, logger *logrus.Logger) *Registry {
	api := engine.Group("/api")
	return &Registry{Engine: engine, API: api, Logger: logger}
}

// Use adds middleware applied to every /api route.
func (r *Registry) Use(mw ...gin.HandlerFunc) {
	r.middlewares = append(r.middlewares, mw...)
}

func (r *Registry) Add(mods ...Module) {
	r.modules = append(r.modules, mods...)
}

func (r *Registry) RegisterAll() {
	if len(r.middlewares) > 0 {
		r.API.Use(r.middlewares...)
	}
	for _, m := range r.modules {
		m.Register(r.API)
		if r.Logger != nil {
			r.Logger.WithField("module", m.Name()).Debug("routes registered")
		}
	}
}
