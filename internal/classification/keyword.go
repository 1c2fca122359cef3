// Package classification provides the keyword-based goods-category and
// postal-service inference strategies consumed by the ingestion side.
// Both are heuristics over free-text declarations; the resolution engine
// itself never classifies and only sees the derived values.
package classification

import (
	"strings"

	"github.com/airmailops/tariff-service/internal/domain"
)

// categoryKeywords maps goods categories to the declaration keywords that
// select them. First matching category in categoryOrder wins.
var categoryKeywords = map[string][]string{
	"Documents": {
		"document", "paper", "letter", "bill", "invoice", "contract",
		"certificate", "passport", "visa", "form", "report", "manual",
		"brochure", "leaflet", "catalog", "catalogue", "magazine",
	},
	"Electronics": {
		"electronic", "phone", "computer", "laptop", "tablet", "gadget",
		"mobile", "cellphone", "smartphone", "camera", "headphone",
		"earphone", "speaker", "charger", "cable", "battery", "chip",
		"circuit", "processor", "memory", "usb", "bluetooth", "router",
	},
	"Clothing & Textiles": {
		"clothing", "shirt", "pants", "dress", "skirt", "jacket", "coat",
		"shoes", "boot", "sandal", "sock", "hat", "cap", "glove", "scarf",
		"fabric", "textile", "cotton", "wool", "silk", "leather", "denim",
	},
	"Personal Care & Cosmetics": {
		"cosmetic", "makeup", "lipstick", "perfume", "shampoo",
		"conditioner", "soap", "lotion", "cream", "skincare", "sunscreen",
		"toothpaste", "deodorant",
	},
	"Pharmaceuticals": {
		"medicine", "pharmaceutical", "drug", "medical", "pill",
		"capsule", "syrup", "vaccine", "antibiotic", "vitamin",
		"supplement", "prescription",
	},
	"Food & Beverages": {
		"food", "snack", "chocolate", "candy", "cookie", "biscuit", "tea",
		"coffee", "drink", "beverage", "juice", "spice", "sauce", "honey",
		"cereal", "rice", "noodle",
	},
	"Books & Media": {
		"book", "newspaper", "journal", "novel", "textbook", "cd", "dvd",
		"music", "movie", "film", "video",
	},
	"Toys & Games": {
		"toy", "doll", "puzzle", "game", "lego", "action figure",
		"stuffed animal", "teddy bear",
	},
	"Jewelry & Accessories": {
		"jewelry", "jewellery", "necklace", "bracelet", "ring", "earring",
		"watch", "pendant", "diamond", "gold", "silver", "pearl",
	},
}

// categoryOrder fixes the match order: more specific vocabularies first so
// e.g. "watch battery" lands in Electronics, not Jewelry.
var categoryOrder = []string{
	"Documents",
	"Electronics",
	"Pharmaceuticals",
	"Personal Care & Cosmetics",
	"Clothing & Textiles",
	"Food & Beverages",
	"Books & Media",
	"Toys & Games",
	"Jewelry & Accessories",
}

// KeywordClassifier infers a goods category from a declared content
// description by keyword lookup. Unknown descriptions map to the wildcard
// so resolution falls through to category-agnostic rates.
type KeywordClassifier struct{}

func NewKeywordClassifier() *KeywordClassifier {
	return &KeywordClassifier{}
}

func (c *KeywordClassifier) Classify(description string) string {
	text := strings.ToLower(strings.TrimSpace(description))
	if text == "" {
		return domain.Wildcard
	}

	for _, category := range categoryOrder {
		for _, keyword := range categoryKeywords[category] {
			if strings.Contains(text, keyword) {
				return category
			}
		}
	}
	return domain.Wildcard
}

// TrackingServiceDetector infers the postal service from the tracking
// number format (UPU S10 style prefixes).
type TrackingServiceDetector struct{}

func NewTrackingServiceDetector() *TrackingServiceDetector {
	return &TrackingServiceDetector{}
}

func (d *TrackingServiceDetector) Detect(trackingNumber string) string {
	t := strings.ToUpper(strings.TrimSpace(trackingNumber))
	if t == "" {
		return domain.Wildcard
	}

	switch {
	case strings.HasPrefix(t, "EE"), strings.HasPrefix(t, "EP"),
		strings.Contains(t, "EMS"),
		strings.HasPrefix(t, "E") && strings.HasSuffix(t, "CN"),
		strings.HasPrefix(t, "CX") && len(t) == 13:
		return "EMS"
	case strings.HasPrefix(t, "RR"), strings.HasPrefix(t, "RL"),
		strings.Contains(t, "REG"),
		strings.HasPrefix(t, "R") && strings.HasSuffix(t, "CN"):
		return "Registered Mail"
	case strings.HasPrefix(t, "LX"), strings.HasPrefix(t, "UB"),
		strings.HasPrefix(t, "L") && strings.HasSuffix(t, "CN"):
		return "E-packet"
	default:
		return domain.Wildcard
	}
}
