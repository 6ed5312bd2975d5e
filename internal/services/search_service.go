package services

import (
	"context"
	"strings"

	"ekrafmate_backend/internal/ai"
	"ekrafmate_backend/internal/algorithms"
	"ekrafmate_backend/internal/repositories"
	"ekrafmate_backend/internal/services/dto"
	"ekrafmate_backend/pkg/apperrors"

	"gorm.io/gorm"
)

// Semantic search parameters: pool of candidates considered per query
// and the number of ranked results returned.
const (
	searchCandidatePool = 100
	searchResultLimit   = 10
)

type SearchService interface {
	SearchCreatives(ctx context.Context, db *gorm.DB, query string) ([]dto.CreativeSearchResult, error)
	SearchProjects(ctx context.Context, db *gorm.DB, query string) ([]dto.ProjectSearchResult, error)
}

type SearchServiceImpl struct {
	userRepo    repositories.UserRepository
	projectRepo repositories.ProjectRepository
	embedder    ai.Embedder
}

func NewSearchService(
	userRepo repositories.UserRepository,
	projectRepo repositories.ProjectRepository,
	embedder ai.Embedder,
) SearchService {
	return &SearchServiceImpl{
		userRepo:    userRepo,
		projectRepo: projectRepo,
		embedder:    embedder,
	}
}

// SearchCreatives embeds the query and ranks creative profiles by
// similarity. Results carry the raw score; no further filtering or
// re-ranking is applied.
func (s *SearchServiceImpl) SearchCreatives(ctx context.Context, db *gorm.DB, query string) ([]dto.CreativeSearchResult, error) {
	queryVec, err := s.embedQuery(ctx, query)
	if err != nil {
		return nil, err
	}

	users, err := s.userRepo.FindCreativesWithEmbedding(db, searchCandidatePool)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	candidates := make([][]float32, len(users))
	for i := range users {
		candidates[i] = decodeEmbedding(users[i].ProfileEmbedding)
	}

	ranked := algorithms.RankBySimilarity(queryVec, candidates, searchResultLimit)

	results := make([]dto.CreativeSearchResult, 0, len(ranked))
	for _, r := range ranked {
		u := users[r.Index]
		results = append(results, dto.CreativeSearchResult{
			ID:          u.ID,
			Name:        u.Name,
			Headline:    u.Headline,
			Description: u.Description,
			Skills:      u.Skills,
			Score:       r.Score,
		})
	}
	return results, nil
}

// SearchProjects embeds the query and ranks projects by similarity.
func (s *SearchServiceImpl) SearchProjects(ctx context.Context, db *gorm.DB, query string) ([]dto.ProjectSearchResult, error) {
	queryVec, err := s.embedQuery(ctx, query)
	if err != nil {
		return nil, err
	}

	projects, err := s.projectRepo.FindWithEmbedding(db, searchCandidatePool)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	candidates := make([][]float32, len(projects))
	for i := range projects {
		candidates[i] = decodeEmbedding(projects[i].ProjectEmbedding)
	}

	ranked := algorithms.RankBySimilarity(queryVec, candidates, searchResultLimit)

	results := make([]dto.ProjectSearchResult, 0, len(ranked))
	for _, r := range ranked {
		p := projects[r.Index]
		results = append(results, dto.ProjectSearchResult{
			ID:             p.ID,
			Title:          p.Title,
			Description:    p.Description,
			OwnerID:        p.OwnerID,
			RequiredSkills: p.RequiredSkills,
			Budget:         p.Budget,
			Status:         p.Status,
			Score:          r.Score,
		})
	}
	return results, nil
}

// embedQuery rejects empty queries before touching the embedding
// service; a vacuous search is a client error, not an empty result set.
func (s *SearchServiceImpl) embedQuery(ctx context.Context, query string) ([]float32, error) {
	if strings.TrimSpace(query) == "" {
		return nil, apperrors.NewBadRequestError("Search query is required")
	}

	vec, err := s.embedder.Embed(ctx, query)
	if err != nil {
		return nil, apperrors.ErrUpstream(err, "ai", "Failed to perform semantic search")
	}
	return vec, nil
}
