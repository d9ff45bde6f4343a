package service

import (
	"time"

	"github.com/taskan-dev/taskan/internal/access"
	"github.com/taskan-dev/taskan/internal/domain"
	"github.com/taskan-dev/taskan/internal/errors"
	"github.com/taskan-dev/taskan/internal/logger"
	"github.com/taskan-dev/taskan/internal/metrics"
	"github.com/taskan-dev/taskan/internal/recommend"
)

type RecommendationService interface {
	ForBoard(userId domain.UserId, boardId domain.BoardId) ([]domain.Advisory, error)
}

type Recommendation struct {
	storage RecommendationStorage
	now     func() time.Time
}

type RecommendationStorage interface {
	GetBoard(id domain.BoardId) (*domain.Board, error)
}

func NewRecommendation(storage RecommendationStorage) RecommendationService {
	return &Recommendation{storage, time.Now}
}

func (r *Recommendation) ForBoard(userId domain.UserId, boardId domain.BoardId) ([]domain.Advisory, error) {
	board, err := r.storage.GetBoard(boardId)
	if err != nil {
		return nil, err
	}
	if !access.CanAccess(board, userId) {
		return nil, &errors.AccessDeniedError{}
	}

	start := time.Now()
	advisories := recommend.Evaluate(board, r.now())
	metrics.ObserveEvaluation(advisories, time.Since(start))

	logger.Log.Debug("board evaluated",
		"board", boardId.String(),
		"advisories", len(advisories),
	)
	return advisories, nil
}
