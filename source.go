package larder

import (
	"context"

	"github.com/elitebeauty/larder/clinic"
)

// DataSource supplies the entity values the client caches. Implementations
// are expected to be slow (remote APIs, databases) and must honor context
// cancellation; the client bounds every call with its operation timeout.
//
// Each method returns one entity value keyed by its discriminator. Errors
// are captured per fetch and surface as failure Results, never as panics
// or aborted batches.
type DataSource interface {
	// Customer returns the profile for a customer ID.
	Customer(ctx context.Context, customerID string) (*clinic.Customer, error)

	// Appointments returns the upcoming appointments for a customer.
	Appointments(ctx context.Context, customerID string) ([]clinic.Appointment, error)

	// TreatmentHistory returns a customer's completed treatments.
	TreatmentHistory(ctx context.Context, customerID string) ([]clinic.Treatment, error)

	// Satisfaction returns the satisfaction report for a clinic.
	Satisfaction(ctx context.Context, clinicID string) (*clinic.SatisfactionReport, error)

	// TreatmentsByConcern returns treatments recommended for a skin concern.
	TreatmentsByConcern(ctx context.Context, concern string) ([]clinic.TreatmentOption, error)

	// TreatmentsBySkinType returns treatments suited to a skin type.
	TreatmentsBySkinType(ctx context.Context, skinType string) ([]clinic.TreatmentOption, error)

	// TimeSlots returns the open booking slots for a date (YYYY-MM-DD).
	TimeSlots(ctx context.Context, date string) ([]clinic.TimeSlot, error)

	// Reviews returns customer reviews for a treatment.
	Reviews(ctx context.Context, treatment string) ([]clinic.Review, error)

	// AverageRating returns the average star rating for a treatment.
	AverageRating(ctx context.Context, treatment string) (float64, error)
}
