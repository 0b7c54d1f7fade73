package services

import (
	"context"

	"github.com/ahaducoin/tapcoin/internal/client/api"
	"github.com/ahaducoin/tapcoin/internal/client/models"
	"github.com/ahaducoin/tapcoin/internal/logging"
)

// LeaderboardService fetches the global user ranking. An empty result is an
// informational state, not an error.
type LeaderboardService interface {
	Top(ctx context.Context) ([]models.User, error)
}

type leaderboardService struct {
	client api.Client
	log    logging.Logger
}

func NewLeaderboardService(client api.Client, log logging.Logger) LeaderboardService {
	return &leaderboardService{client: client, log: log}
}

func (s *leaderboardService) Top(ctx context.Context) ([]models.User, error) {
	users, err := s.client.ListUsers(ctx)
	if err != nil {
		return nil, err
	}
	s.log.Info(ctx, "leaderboard fetched", "count", len(users))
	return users, nil
}
