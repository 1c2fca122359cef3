package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/airmailops/tariff-service/internal/domain"
)

type ShipmentRepository struct {
	mu        sync.RWMutex
	shipments map[string]*domain.Shipment
}

func NewShipmentRepository() *ShipmentRepository {
	return &ShipmentRepository{shipments: make(map[string]*domain.Shipment)}
}

func (r *ShipmentRepository) SaveShipment(_ context.Context, shipment *domain.Shipment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.shipments[shipment.ID] = cloneShipment(shipment)
	return nil
}

func (r *ShipmentRepository) GetShipmentByID(_ context.Context, shipmentID string) (*domain.Shipment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	shipment, exists := r.shipments[shipmentID]
	if !exists {
		return nil, domain.ErrShipmentNotFound
	}
	return cloneShipment(shipment), nil
}

func (r *ShipmentRepository) GetShipmentsByIDs(_ context.Context, shipmentIDs []string) ([]*domain.Shipment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []*domain.Shipment
	for _, id := range shipmentIDs {
		if shipment, exists := r.shipments[id]; exists {
			result = append(result, cloneShipment(shipment))
		}
	}
	return result, nil
}

func (r *ShipmentRepository) GetUncalculatedShipments(_ context.Context) ([]*domain.Shipment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []*domain.Shipment
	for _, shipment := range r.shipments {
		if shipment.TariffAmount == nil {
			result = append(result, cloneShipment(shipment))
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (r *ShipmentRepository) UpdateCalculation(_ context.Context, shipmentID string, result *domain.ResolutionResult) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	shipment, exists := r.shipments[shipmentID]
	if !exists {
		return domain.ErrShipmentNotFound
	}
	amount := result.TariffAmount
	shipment.TariffAmount = &amount
	shipment.CalculationMethod = result.CalculationMethod
	if result.AppliedRate != nil {
		rateID := result.AppliedRate.ID
		shipment.AppliedRateID = &rateID
	} else {
		shipment.AppliedRateID = nil
	}
	return nil
}

// RouteTotals sums declared values and tariff amounts over the route's
// priced shipments. Used by the fallback estimator.
func (r *ShipmentRepository) RouteTotals(_ context.Context, origin, destination string) (*domain.RouteTotals, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	totals := &domain.RouteTotals{}
	for _, shipment := range r.shipments {
		if shipment.Origin != origin || shipment.Destination != destination {
			continue
		}
		if shipment.TariffAmount == nil {
			continue
		}
		totals.TotalDeclaredValue += shipment.DeclaredValue
		totals.TotalTariffAmount += *shipment.TariffAmount
	}
	return totals, nil
}

func (r *ShipmentRepository) DistinctRoutes(_ context.Context) ([]domain.RouteShipments, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	counts := make(map[[2]string]int64)
	for _, shipment := range r.shipments {
		if shipment.Origin == "" || shipment.Destination == "" {
			continue
		}
		counts[[2]string{shipment.Origin, shipment.Destination}]++
	}

	routes := make([]domain.RouteShipments, 0, len(counts))
	for route, count := range counts {
		routes = append(routes, domain.RouteShipments{
			Origin:        route[0],
			Destination:   route[1],
			ShipmentCount: count,
		})
	}
	sort.Slice(routes, func(i, j int) bool {
		if routes[i].Origin != routes[j].Origin {
			return routes[i].Origin < routes[j].Origin
		}
		return routes[i].Destination < routes[j].Destination
	})
	return routes, nil
}

func (r *ShipmentRepository) CountByAppliedRate(_ context.Context, rateID string) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var count int64
	for _, shipment := range r.shipments {
		if shipment.AppliedRateID != nil && *shipment.AppliedRateID == rateID {
			count++
		}
	}
	return count, nil
}

func cloneShipment(shipment *domain.Shipment) *domain.Shipment {
	c := *shipment
	if shipment.Weight != nil {
		w := *shipment.Weight
		c.Weight = &w
	}
	if shipment.TariffAmount != nil {
		t := *shipment.TariffAmount
		c.TariffAmount = &t
	}
	if shipment.AppliedRateID != nil {
		id := *shipment.AppliedRateID
		c.AppliedRateID = &id
	}
	return &c
}
