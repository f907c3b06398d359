package services

import (
	"context"
	"fmt"
	"log"
	"math"
	"sync"
	"time"

	"skillpath-service/internal/catalog"
	"skillpath-service/internal/config"
	"skillpath-service/internal/engine"
	"skillpath-service/internal/event"
	"skillpath-service/internal/models"
)

// CooldownError rejects a refresh requested before the tier cooldown elapsed
type CooldownError struct {
	RemainingMinutes int
}

func (e *CooldownError) Error() string {
	return fmt.Sprintf("please wait %d minutes before refreshing", e.RemainingMinutes)
}

// ProfileStore loads the user's skill sources
type ProfileStore interface {
	LoadUserSkillSources(ctx context.Context, userID string) (*models.UserSkillSources, error)
}

// RecommendationStore persists recommendation bundles
type RecommendationStore interface {
	GetByUser(ctx context.Context, userID string) (*models.SkillPathRecommendation, error)
	Upsert(ctx context.Context, rec *models.SkillPathRecommendation) error
	Delete(ctx context.Context, userID string) error
	DeleteIfGeneratedAt(ctx context.Context, userID string, generatedAt time.Time) (bool, error)
}

// SubscriptionStore resolves a user's billing tier
type SubscriptionStore interface {
	GetUserTier(ctx context.Context, userID string) (models.Tier, error)
}

// BundleCache is the hot-bundle cache plus the per-user refresh lock
type BundleCache interface {
	AcquireRefreshLock(ctx context.Context, userID string, expiry time.Duration) (bool, error)
	ReleaseRefreshLock(ctx context.Context, userID string)
	CacheBundle(ctx context.Context, rec *models.SkillPathRecommendation, expiry time.Duration) error
	GetCachedBundle(ctx context.Context, userID string) (*models.SkillPathRecommendation, error)
	InvalidateBundle(ctx context.Context, userID string) error
}

// SkillPathService is the entry point of the recommendation pipeline:
// fetch-or-compute-and-cache on read, cooldown-guarded recompute on refresh.
type SkillPathService struct {
	profileRepo ProfileStore
	recRepo     RecommendationStore
	subRepo     SubscriptionStore
	cache       BundleCache
	engine      *engine.Engine
	catalog     *catalog.Catalog
	publisher   event.Publisher
	cfg         *config.SkillPathConfig

	now func() time.Time
}

func NewSkillPathService(
	profileRepo ProfileStore,
	recRepo RecommendationStore,
	subRepo SubscriptionStore,
	cache BundleCache,
	eng *engine.Engine,
	cat *catalog.Catalog,
	publisher event.Publisher,
	cfg *config.SkillPathConfig,
) *SkillPathService {
	return &SkillPathService{
		profileRepo: profileRepo,
		recRepo:     recRepo,
		subRepo:     subRepo,
		cache:       cache,
		engine:      eng,
		catalog:     cat,
		publisher:   publisher,
		cfg:         cfg,
		now:         time.Now,
	}
}

// GetRecommendation returns the user's cached bundle, computing and
// persisting one only when none exists. A plain fetch never recomputes and
// never fails on absence of profile data.
func (s *SkillPathService) GetRecommendation(ctx context.Context, userID string) (*models.SkillPathRecommendation, error) {
	if s.cache != nil {
		cached, err := s.cache.GetCachedBundle(ctx, userID)
		if err != nil {
			log.Printf("bundle cache read failed for user %s: %v", userID, err)
		} else if cached != nil {
			return cached, nil
		}
	}

	rec, err := s.recRepo.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if rec != nil {
		s.cacheBundle(ctx, rec)
		return rec, nil
	}

	rec, err = s.computeAndStore(ctx, userID)
	if err != nil {
		return nil, err
	}

	s.publishGenerated(event.EventTypeRecommendationGenerated, rec)
	return rec, nil
}

// RefreshRecommendation forces a recompute, subject to the tier cooldown.
// Two refreshes racing for the same user cannot both recompute: the per-user
// lock and the generated_at conditional delete let exactly one proceed, and
// the loser receives the cooldown rejection.
func (s *SkillPathService) RefreshRecommendation(ctx context.Context, userID string) (*models.SkillPathRecommendation, error) {
	tier, err := s.subRepo.GetUserTier(ctx, userID)
	if err != nil {
		log.Printf("tier lookup failed for user %s, assuming free: %v", userID, err)
		tier = models.TierFree
	}
	cooldown := s.cooldownFor(tier)

	cached, err := s.recRepo.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if cached != nil {
		if remaining := cooldown - s.now().Sub(cached.GeneratedAt); remaining > 0 {
			return nil, s.denyRefresh(userID, tier, remaining)
		}
	}

	if s.cache != nil {
		acquired, err := s.cache.AcquireRefreshLock(ctx, userID, s.cfg.RefreshLockExpiry)
		if err != nil {
			// Redis being down must not block refreshes; the conditional
			// delete below still serializes the cached case.
			log.Printf("refresh lock unavailable for user %s: %v", userID, err)
		} else if !acquired {
			return nil, s.denyRefresh(userID, tier, cooldown)
		} else {
			defer s.cache.ReleaseRefreshLock(ctx, userID)
		}
	}

	if cached != nil {
		won, err := s.recRepo.DeleteIfGeneratedAt(ctx, userID, cached.GeneratedAt)
		if err != nil {
			return nil, err
		}
		if !won {
			// A concurrent refresh replaced the bundle between our read and
			// the delete; report the cooldown measured from the new entry.
			remaining := cooldown
			if current, err := s.recRepo.GetByUser(ctx, userID); err == nil && current != nil {
				remaining = cooldown - s.now().Sub(current.GeneratedAt)
			}
			return nil, s.denyRefresh(userID, tier, remaining)
		}
	}

	rec, err := s.computeAndStore(ctx, userID)
	if err != nil {
		return nil, err
	}

	s.publishGenerated(event.EventTypeRecommendationRefreshed, rec)
	return rec, nil
}

// ListCareerPaths exposes the catalogue's archetypes
func (s *SkillPathService) ListCareerPaths() []models.CareerPathArchetype {
	return s.catalog.ListArchetypes()
}

// computeAndStore runs the full pipeline and persists the bundle only after
// every stage succeeded; a failure never leaves a partial cache entry.
func (s *SkillPathService) computeAndStore(ctx context.Context, userID string) (*models.SkillPathRecommendation, error) {
	sources, err := s.profileRepo.LoadUserSkillSources(ctx, userID)
	if err != nil {
		return nil, err
	}

	rec := s.computeBundle(userID, sources)

	if err := s.recRepo.Upsert(ctx, rec); err != nil {
		return nil, err
	}
	s.cacheBundle(ctx, rec)

	return rec, nil
}

// computeBundle is the pure part of the pipeline: extraction, gap analysis,
// path matching and scoring over one user's sources.
func (s *SkillPathService) computeBundle(userID string, sources *models.UserSkillSources) *models.SkillPathRecommendation {
	inventory := s.engine.ExtractInventory(sources, s.now())

	rec := &models.SkillPathRecommendation{
		UserID:      userID,
		SkillGaps:   []models.SkillGap{},
		CareerPaths: []models.CareerPath{},
		GeneratedAt: s.now(),
	}

	if len(inventory) == 0 {
		// No extractable skills: a valid, empty bundle with score zero
		rec.HireabilityLabel = models.HireabilityLabel(0)
		return rec
	}

	archetypes := s.catalog.ListArchetypes()

	// Gap analysis and path matching are independent pure functions over the
	// same inputs, so they run concurrently.
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		rec.SkillGaps = s.engine.AnalyzeGaps(inventory, archetypes)
	}()
	go func() {
		defer wg.Done()
		rec.CareerPaths = s.engine.MatchPaths(inventory, archetypes)
	}()
	wg.Wait()

	rec.HireabilityScore, rec.HireabilityLabel = s.engine.ScoreHireability(rec.SkillGaps, rec.CareerPaths)
	return rec
}

func (s *SkillPathService) cooldownFor(tier models.Tier) time.Duration {
	if tier == models.TierPremium {
		return s.cfg.PremiumCooldown
	}
	return s.cfg.StandardCooldown
}

func (s *SkillPathService) denyRefresh(userID string, tier models.Tier, remaining time.Duration) error {
	minutes := int(math.Ceil(remaining.Minutes()))
	if minutes < 1 {
		minutes = 1
	}

	if s.publisher != nil {
		if err := s.publisher.PublishRefreshDeniedEvent(&event.RefreshDeniedEvent{
			EventType:        event.EventTypeRefreshDenied,
			UserID:           userID,
			Tier:             string(tier),
			RemainingMinutes: minutes,
			Timestamp:        s.now().Unix(),
		}); err != nil {
			log.Printf("Failed to publish refresh denied event: %v", err)
		}
	}

	return &CooldownError{RemainingMinutes: minutes}
}

func (s *SkillPathService) cacheBundle(ctx context.Context, rec *models.SkillPathRecommendation) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateBundle(ctx, rec.UserID); err != nil {
		log.Printf("bundle cache invalidation failed for user %s: %v", rec.UserID, err)
	}
	if err := s.cache.CacheBundle(ctx, rec, s.cfg.BundleCacheExpiry); err != nil {
		log.Printf("bundle cache write failed for user %s: %v", rec.UserID, err)
	}
}

func (s *SkillPathService) publishGenerated(eventType string, rec *models.SkillPathRecommendation) {
	if s.publisher == nil {
		return
	}
	err := s.publisher.PublishRecommendationEvent(&event.RecommendationEvent{
		EventType:        eventType,
		UserID:           rec.UserID,
		HireabilityScore: rec.HireabilityScore,
		GapCount:         len(rec.SkillGaps),
		PathCount:        len(rec.CareerPaths),
		Timestamp:        rec.GeneratedAt.Unix(),
	})
	if err != nil {
		log.Printf("Failed to publish recommendation event: %v", err)
	}
}
