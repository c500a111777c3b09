// Package history archives finished games.
// It never feeds scores back into an engine: the high score stays per process.
package history

import (
	"context"
	"log/slog"

	"github.com/mcoot/game2048/internal/dependencies/random"
	"github.com/mcoot/game2048/internal/model"
	"github.com/mcoot/game2048/internal/storage"
)

const (
	// GameIDAlphabet is the character set for generated game IDs
	GameIDAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
	// GameIDLength is the length of generated game IDs
	GameIDLength = 10
)

// Service stores and lists game records
type Service struct {
	storage storage.Storage
	random  random.Random
	logger  *slog.Logger
}

// New creates a history Service
func New(store storage.Storage, rnd random.Random, logger *slog.Logger) *Service {
	return &Service{
		storage: store,
		random:  rnd,
		logger:  logger.With(slog.String("component", "history")),
	}
}

// RecordGame stores result under a fresh ID
func (s *Service) RecordGame(ctx context.Context, result model.GameResult) error {
	_, err := s.Save(ctx, result)
	return err
}

// Save stores result under a fresh ID and returns the stored record
func (s *Service) Save(ctx context.Context, result model.GameResult) (*model.GameRecord, error) {
	record := &model.GameRecord{
		ID:         model.GameID(s.random.String(GameIDLength, GameIDAlphabet)),
		GameResult: result,
	}

	if err := s.storage.SaveGame(ctx, record); err != nil {
		s.logger.Error("failed to save game",
			slog.String("game_id", string(record.ID)),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	s.logger.Info("game recorded",
		slog.String("game_id", string(record.ID)),
		slog.String("outcome", string(result.Outcome)),
		slog.Int("score", result.Score),
	)
	return record, nil
}

// Get returns one record
func (s *Service) Get(ctx context.Context, id model.GameID) (*model.GameRecord, error) {
	return s.storage.GetGame(ctx, id)
}

// Recent returns up to limit records, newest first (limit <= 0 returns all)
func (s *Service) Recent(ctx context.Context, limit int) ([]*model.GameRecord, error) {
	return s.storage.ListGames(ctx, limit)
}

// Delete removes a record
func (s *Service) Delete(ctx context.Context, id model.GameID) error {
	return s.storage.DeleteGame(ctx, id)
}
