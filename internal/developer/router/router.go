// Package router provides developer module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/dmakerhq/dmaker/internal/config"
	"github.com/dmakerhq/dmaker/internal/developer/handler"
	"github.com/dmakerhq/dmaker/internal/developer/repository"
	"github.com/dmakerhq/dmaker/internal/developer/service"
)

// RegisterRoutes registers developer module routes.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, rules config.DeveloperConfig, logger *zap.SugaredLogger) {
	repo := repository.New(db, logger)
	svc := service.New(repo, db, rules, logger)
	h := handler.New(svc, logger)

	r.GET("/developers", h.GetAllEmployedDevelopers)
	r.GET("/developers/:memberId", h.GetDeveloperDetail)
	r.PUT("/developers/:memberId", h.EditDeveloper)
	r.POST("/create-developer", h.CreateDeveloper)
	r.DELETE("/developer/:memberId", h.DeleteDeveloper)
}
