package domain

import (
	"time"

	"github.com/google/uuid"
)

// Classification is the disease model server's verdict for one image.
type Classification struct {
	Label       string
	Confidence  float64
	Description string
	Remedy      string
}

// DiseaseDetection is a stored classification for a farmer's crop image.
type DiseaseDetection struct {
	ID       uuid.UUID
	FarmerID uuid.UUID
	ImageRef string
	Classification
	CreatedAt time.Time
}
