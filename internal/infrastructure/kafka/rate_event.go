package kafka

import (
	"encoding/json"

	"github.com/airmailops/tariff-service/internal/domain"
)

const (
	TopicRateEvents   = "rate-events"
	TopicTariffEvents = "tariff-events"
)

// RateEvent notifies downstream consumers about a rate table change.
type RateEvent struct {
	RateID        string  `json:"rate_id"`
	Action        string  `json:"action"` // created | updated | deactivated | deleted
	Origin        string  `json:"origin"`
	Destination   string  `json:"destination"`
	GoodsCategory string  `json:"goods_category"`
	PostalService string  `json:"postal_service"`
	RateFraction  float64 `json:"rate_fraction"`
}

// TariffCalculatedEvent reports one priced shipment.
type TariffCalculatedEvent struct {
	ShipmentID        string  `json:"shipment_id"`
	Origin            string  `json:"origin"`
	Destination       string  `json:"destination"`
	TariffAmount      float64 `json:"tariff_amount"`
	Currency          string  `json:"currency"`
	CalculationMethod string  `json:"calculation_method"`
	AppliedRateID     string  `json:"applied_rate_id,omitempty"`
}

// PublishRateEvent keys the message by route so per-route ordering is
// preserved across partitions.
func PublishRateEvent(pub domain.PublisherPort, event RateEvent) error {
	v, err := json.Marshal(event)
	if err != nil {
		return err
	}
	key := []byte(event.Origin + ":" + event.Destination)
	return pub.Publish(TopicRateEvents, domain.Message{Key: key, Value: v})
}

func PublishTariffEvent(pub domain.PublisherPort, event TariffCalculatedEvent) error {
	v, err := json.Marshal(event)
	if err != nil {
		return err
	}
	key := []byte(event.Origin + ":" + event.Destination)
	return pub.Publish(TopicTariffEvents, domain.Message{Key: key, Value: v})
}
