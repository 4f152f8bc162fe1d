package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/nrl-scraper/internal/domain/rawdata"
)

// RawPayloadRepository is an in-memory rawdata.Repository.
type RawPayloadRepository struct {
	mu       sync.RWMutex
	payloads []rawdata.Payload
}

func NewRawPayloadRepository() *RawPayloadRepository {
	return &RawPayloadRepository{}
}

func (r *RawPayloadRepository) Insert(_ context.Context, p rawdata.Payload) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.payloads = append(r.payloads, p)

	return nil
}

func (r *RawPayloadRepository) All() []rawdata.Payload {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]rawdata.Payload, len(r.payloads))
	copy(out, r.payloads)

	return out
}
