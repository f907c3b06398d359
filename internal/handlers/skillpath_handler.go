package handlers

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"skillpath-service/internal/middleware"
	"skillpath-service/internal/services"

	"github.com/gofiber/fiber/v3"
)

type SkillPathHandler struct {
	skillPathService *services.SkillPathService
}

func NewSkillPathHandler(skillPathService *services.SkillPathService) *SkillPathHandler {
	return &SkillPathHandler{
		skillPathService: skillPathService,
	}
}

func (h *SkillPathHandler) RegisterRoutes(app *fiber.App) {
	protectedGroup := app.Group("/protected/skill-path")

	protectedGroup.Get("/user/:userID", h.GetRecommendation, middleware.OwnerPermissionRequired())
	protectedGroup.Post("/user/:userID/refresh", h.RefreshRecommendation, middleware.OwnerPermissionRequired())

	protectedGroup.Get("/catalog/paths", h.ListCareerPaths, middleware.PermissionRequired(middleware.ReadCatalogPermission))
}

// GetRecommendation serves the cached bundle, computing one on first access.
// It never fails on absence of profile data.
func (h *SkillPathHandler) GetRecommendation(c fiber.Ctx) error {
	userID := c.Params("userID")
	if userID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "User ID is required",
		})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	rec, err := h.skillPathService.GetRecommendation(ctx, userID)
	if err != nil {
		log.Printf("Failed to get recommendation for %s: %v", userID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to retrieve recommendation",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"skillGaps":        rec.SkillGaps,
		"careerPaths":      rec.CareerPaths,
		"hireabilityScore": rec.HireabilityScore,
		"hireabilityLabel": rec.HireabilityLabel,
		"generatedAt":      rec.GeneratedAt.UTC().Format(time.RFC3339),
	})
}

// RefreshRecommendation forces a recompute; within the tier cooldown it
// answers with a rate-limit rejection carrying the remaining wait.
func (h *SkillPathHandler) RefreshRecommendation(c fiber.Ctx) error {
	userID := c.Params("userID")
	if userID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "User ID is required",
		})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	rec, err := h.skillPathService.RefreshRecommendation(ctx, userID)
	if err != nil {
		var cooldownErr *services.CooldownError
		if errors.As(err, &cooldownErr) {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": fmt.Sprintf("Please wait %d minutes before refreshing", cooldownErr.RemainingMinutes),
			})
		}

		log.Printf("Failed to refresh recommendation for %s: %v", userID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to refresh recommendation",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"skillGaps":        rec.SkillGaps,
		"careerPaths":      rec.CareerPaths,
		"hireabilityScore": rec.HireabilityScore,
		"hireabilityLabel": rec.HireabilityLabel,
		"generatedAt":      rec.GeneratedAt.UTC().Format(time.RFC3339),
	})
}

func (h *SkillPathHandler) ListCareerPaths(c fiber.Ctx) error {
	archetypes := h.skillPathService.ListCareerPaths()

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"data": fiber.Map{
			"careerPaths": archetypes,
			"count":       len(archetypes),
		},
	})
}
