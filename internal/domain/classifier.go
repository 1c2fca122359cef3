package domain

// GoodsClassifier infers a goods category from a declared content
// description. Consumed by the ingestion side before building a
// ShipmentTariffRequest; the resolution engine never classifies.
type GoodsClassifier interface {
	Classify(description string) string
}

// PostalServiceDetector infers the postal service from a tracking number.
type PostalServiceDetector interface {
	Detect(trackingNumber string) string
}
