package store

import "jobdigest/internal/model"

// NopStore is used in dry-run mode. It remembers nothing, so every
// posting looks new on each run and nothing is persisted.
type NopStore struct{}

func NewNopStore() *NopStore { return &NopStore{} }

func (s *NopStore) Load() (*model.SeenSet, error) { return model.NewSeenSet(), nil }
func (s *NopStore) Save(_ *model.SeenSet) error   { return nil }
