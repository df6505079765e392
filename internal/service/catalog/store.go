// internal/service/catalog/store.go
package catalog

import (
	"context"
	"fmt"
	"sync"

	"rainerio-service/internal/domain/seller"
	"rainerio-service/internal/domain/vehicle"
	"rainerio-service/internal/ws"

	"go.uber.org/zap"
)

// EventSink receives catalog change notifications. The websocket hub is the
// production sink; tests pass nil.
type EventSink interface {
	Broadcast(eventType string)
}

// Store owns the in-memory vehicle and seller collections for the lifetime
// of the process. The persisted store is the system of record across
// restarts; in memory, writes only land after the repository confirms them.
type Store struct {
	vehicleRepo vehicle.Repository
	sellerRepo  seller.Repository
	events      EventSink
	logger      *zap.Logger

	mu       sync.RWMutex
	vehicles []vehicle.Vehicle
	sellers  []seller.Seller
}

func NewStore(vehicleRepo vehicle.Repository, sellerRepo seller.Repository, events EventSink, logger *zap.Logger) *Store {
	return &Store{
		vehicleRepo: vehicleRepo,
		sellerRepo:  sellerRepo,
		events:      events,
		logger:      logger,
	}
}

// Load pulls both collections from the repository. Called once at startup.
func (s *Store) Load(ctx context.Context) error {
	vehicles, err := s.vehicleRepo.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load vehicle collection: %w", err)
	}
	sellers, err := s.sellerRepo.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load seller collection: %w", err)
	}

	s.mu.Lock()
	s.vehicles = vehicles
	s.sellers = sellers
	s.mu.Unlock()

	s.logger.Info("catalog loaded",
		zap.Int("vehicles", len(vehicles)),
		zap.Int("sellers", len(sellers)),
	)
	return nil
}

// Vehicles returns a snapshot of the vehicle collection, newest first.
func (s *Store) Vehicles() []vehicle.Vehicle {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]vehicle.Vehicle, len(s.vehicles))
	copy(out, s.vehicles)
	return out
}

// Sellers returns a snapshot of the seller collection.
func (s *Store) Sellers() []seller.Seller {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]seller.Seller, len(s.sellers))
	copy(out, s.sellers)
	return out
}

// Specialists returns the sellers eligible for public listing: active and
// not administrators, in stored (name) order.
func (s *Store) Specialists() []seller.Seller {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []seller.Seller
	for _, sl := range s.sellers {
		if sl.Listable() {
			out = append(out, sl)
		}
	}
	return out
}

// SyncAll persists the supplied list as the complete, authoritative vehicle
// set, then commits it in memory. On failure the in-memory collection is
// untouched and the error propagates; the caller decides whether to retry.
// There is no conflict detection between concurrent editors.
func (s *Store) SyncAll(ctx context.Context, vehicles []vehicle.Vehicle) error {
	if err := s.vehicleRepo.ReplaceAll(ctx, vehicles); err != nil {
		s.logger.Error("catalog sync failed", zap.Error(err), zap.Int("vehicles", len(vehicles)))
		return fmt.Errorf("failed to sync vehicle collection: %w", err)
	}

	s.mu.Lock()
	s.vehicles = vehicles
	s.mu.Unlock()

	s.logger.Info("catalog synced", zap.Int("vehicles", len(vehicles)))
	if s.events != nil {
		s.events.Broadcast(ws.EventCatalogSynced)
	}
	return nil
}

// ReloadSellers re-pulls the seller collection after a per-record seller
// write.
func (s *Store) ReloadSellers(ctx context.Context) error {
	sellers, err := s.sellerRepo.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to reload sellers: %w", err)
	}

	s.mu.Lock()
	s.sellers = sellers
	s.mu.Unlock()

	if s.events != nil {
		s.events.Broadcast(ws.EventSellersChanged)
	}
	return nil
}
