package storage

import (
	"context"

	"github.com/mcoot/game2048/internal/model"
)

// Storage defines the interface for the finished-game archive
type Storage interface {
	// SaveGame stores a record, replacing any record with the same ID
	SaveGame(ctx context.Context, record *model.GameRecord) error
	GetGame(ctx context.Context, id model.GameID) (*model.GameRecord, error)
	// ListGames returns records newest first by EndedAt, ties broken by descending ID.
	// A limit of zero or less returns every record.
	ListGames(ctx context.Context, limit int) ([]*model.GameRecord, error)
	DeleteGame(ctx context.Context, id model.GameID) error
}
