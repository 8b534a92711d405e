// Package domain holds the sync transport DTOs
package domain

// PlayerInput triggers one player ingestion run
type PlayerInput struct {
	GameName string `json:"game_name" validate:"required"`
	TagLine  string `json:"tag_line"  validate:"required"`
	PlayerID string `json:"player_id" validate:"required,uuid"`
	Count    int    `json:"count"     validate:"omitempty,min=1,max=100"`
}

// BulkPlayer is one roster entry for a bulk run
type BulkPlayer struct {
	Handle   string `json:"handle"    validate:"required,riot_id"`
	PlayerID string `json:"player_id" validate:"required,uuid"`
}

// BulkInput triggers a paced roster run
type BulkInput struct {
	Players   []BulkPlayer `json:"players"    validate:"required,min=1,dive"`
	BatchSize int          `json:"batch_size" validate:"omitempty,min=1,max=50"`
	Count     int          `json:"count"      validate:"omitempty,min=1,max=100"`
}
