// Package mocksource provides an in-memory data source with canned clinic
// data. It stands in for the real booking and CRM backends in tests, the
// CLI, and examples, and can simulate latency and failures.
package mocksource

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/elitebeauty/larder/clinic"
)

// Source is an in-memory DataSource. The zero value is not usable; use New.
// A Source is safe for concurrent use by multiple goroutines.
type Source struct {
	latency time.Duration
	logger  *zap.Logger

	mu       sync.Mutex
	failures map[string]error // entity type -> injected error
}

// Option configures a Source.
type Option func(*Source)

// WithLatency makes every call take at least d before returning.
func WithLatency(d time.Duration) Option {
	return func(s *Source) { s.latency = d }
}

// WithLogger sets the logger. If not set, a no-op logger is used.
func WithLogger(l *zap.Logger) Option {
	return func(s *Source) { s.logger = l }
}

// New creates a mock source.
func New(opts ...Option) *Source {
	s := &Source{
		logger:   zap.NewNop(),
		failures: make(map[string]error),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// FailWith makes every call for the given entity type ("customer",
// "appointments", ...) return err until cleared with a nil err.
func (s *Source) FailWith(entity string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err == nil {
		delete(s.failures, entity)
		return
	}
	s.failures[entity] = err
}

// begin simulates call latency and reports any injected failure.
// It honors context cancellation while waiting.
func (s *Source) begin(ctx context.Context, entity string) error {
	s.mu.Lock()
	err := s.failures[entity]
	s.mu.Unlock()

	if s.latency > 0 {
		timer := time.NewTimer(s.latency)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	if err != nil {
		s.logger.Debug("injected failure", zap.String("entity", entity), zap.Error(err))
		return err
	}
	return nil
}

// Customer returns a canned profile carrying the requested ID.
func (s *Source) Customer(ctx context.Context, customerID string) (*clinic.Customer, error) {
	if err := s.begin(ctx, "customer"); err != nil {
		return nil, err
	}
	return &clinic.Customer{
		AccountNumber:   "428765091",
		CustomerID:      customerID,
		FirstName:       "Bella",
		LastName:        "Kim",
		Email:           "bella.kim@example.com",
		PhoneNumber:     "+82-10-5550-1234",
		StartDate:       "2022-06-10",
		YearsAsCustomer: 2,
		BillingAddress: clinic.Address{
			Street: "123 Teheran-ro",
			City:   "Seoul",
			State:  "Gangnam-gu",
			Zip:    "06236",
		},
		LoyaltyPoints:   133,
		PreferredClinic: "gangnam",
		Preferences: clinic.CommunicationPreferences{
			Email: true,
			SMS:   true,
			Push:  true,
		},
		Profile: clinic.BeautyProfile{
			SkinType:               "combination",
			Concerns:               []string{"wrinkles", "pigmentation"},
			PreviousTreatments:     []string{"botox", "hydrafacial"},
			PreferredTreatmentTime: "weekday mornings",
			BudgetRange:            "200000-500000",
		},
	}, nil
}

// Appointments returns the customer's upcoming appointments.
func (s *Source) Appointments(ctx context.Context, customerID string) ([]clinic.Appointment, error) {
	if err := s.begin(ctx, "appointments"); err != nil {
		return nil, err
	}
	return []clinic.Appointment{
		{
			AppointmentID: "apt123",
			Date:          "2025-05-25",
			Time:          "14-16",
			Treatment:     "Botox (forehead)",
			Location:      "Elite Beauty Clinic Gangnam",
			Doctor:        "Dr. Kim",
			Status:        "confirmed",
		},
		{
			AppointmentID: "apt124",
			Date:          "2025-05-30",
			Time:          "11-13",
			Treatment:     "Filler (cheeks)",
			Location:      "Elite Beauty Clinic Gangnam",
			Doctor:        "Dr. Lee",
			Status:        "pending",
		},
	}, nil
}

// TreatmentHistory returns the customer's completed treatments.
func (s *Source) TreatmentHistory(ctx context.Context, customerID string) ([]clinic.Treatment, error) {
	if err := s.begin(ctx, "history"); err != nil {
		return nil, err
	}
	return []clinic.Treatment{
		{Date: "2025-03-05", TreatmentID: "botox-123", Name: "Botox (eye area)", Price: 250000},
		{Date: "2025-01-18", TreatmentID: "facial-456", Name: "Deep cleansing facial", Price: 180000},
		{Date: "2024-11-02", TreatmentID: "laser-456", Name: "Pico laser", Price: 150000},
	}, nil
}

// Satisfaction returns the clinic's satisfaction report.
func (s *Source) Satisfaction(ctx context.Context, clinicID string) (*clinic.SatisfactionReport, error) {
	if err := s.begin(ctx, "satisfaction"); err != nil {
		return nil, err
	}
	return &clinic.SatisfactionReport{
		AverageRating:    4.8,
		TotalReviews:     150,
		SatisfactionRate: 96,
		TopRated: []clinic.TreatmentRating{
			{Name: "Botox", Rating: 4.9},
			{Name: "Filler", Rating: 4.7},
			{Name: "Laser toning", Rating: 4.8},
		},
	}, nil
}

// TreatmentsByConcern recommends treatments for a skin concern.
func (s *Source) TreatmentsByConcern(ctx context.Context, concern string) ([]clinic.TreatmentOption, error) {
	if err := s.begin(ctx, "treatments-by-concern"); err != nil {
		return nil, err
	}
	switch {
	case strings.Contains(strings.ToLower(concern), "wrinkle"):
		return []clinic.TreatmentOption{
			{TreatmentID: "botox-456", Name: "Botox (forehead)", Description: "Effective for forehead wrinkles.", Price: 200000},
			{TreatmentID: "filler-789", Name: "Hyaluronic acid filler", Description: "For deep wrinkles and volume loss.", Price: 300000},
		}, nil
	case strings.Contains(strings.ToLower(concern), "pigment"):
		return []clinic.TreatmentOption{
			{TreatmentID: "laser-456", Name: "Pico laser", Description: "Breaks down melanin for pigmentation.", Price: 150000},
			{TreatmentID: "ipl-789", Name: "IPL phototherapy", Description: "For pigmented lesions and redness.", Price: 120000},
		}, nil
	default:
		return []clinic.TreatmentOption{
			{TreatmentID: "facial-123", Name: "Hydrafacial", Description: "Baseline care for all skin types.", Price: 150000},
			{TreatmentID: "peel-456", Name: "Chemical peel", Description: "Exfoliation and tone improvement.", Price: 100000},
		}, nil
	}
}

// TreatmentsBySkinType recommends treatments for a skin type.
func (s *Source) TreatmentsBySkinType(ctx context.Context, skinType string) ([]clinic.TreatmentOption, error) {
	if err := s.begin(ctx, "treatments-by-skin-type"); err != nil {
		return nil, err
	}
	switch strings.ToLower(skinType) {
	case "oily":
		return []clinic.TreatmentOption{
			{TreatmentID: "peel-456", Name: "Chemical peel", Description: "Controls sebum and clears pores.", Price: 100000},
			{TreatmentID: "laser-aqua", Name: "Aqua peel laser", Description: "Deep pore cleansing.", Price: 130000},
		}, nil
	case "dry":
		return []clinic.TreatmentOption{
			{TreatmentID: "facial-123", Name: "Hydrafacial", Description: "Intensive hydration treatment.", Price: 150000},
			{TreatmentID: "skinbooster-1", Name: "Skin booster", Description: "Hyaluronic hydration injections.", Price: 250000},
		}, nil
	default:
		return []clinic.TreatmentOption{
			{TreatmentID: "facial-123", Name: "Hydrafacial", Description: "Baseline care for all skin types.", Price: 150000},
		}, nil
	}
}

// TimeSlots returns the clinic's open booking windows for a date.
func (s *Source) TimeSlots(ctx context.Context, date string) ([]clinic.TimeSlot, error) {
	if err := s.begin(ctx, "timeslots"); err != nil {
		return nil, err
	}
	slots := make([]clinic.TimeSlot, 0, 5)
	for _, r := range []string{"9-11", "11-13", "14-16", "16-18", "18-20"} {
		slots = append(slots, clinic.TimeSlot{Date: date, Range: r})
	}
	return slots, nil
}

// Reviews returns canned reviews for a treatment.
func (s *Source) Reviews(ctx context.Context, treatment string) ([]clinic.Review, error) {
	if err := s.begin(ctx, "reviews"); err != nil {
		return nil, err
	}
	return []clinic.Review{
		{CustomerID: "c1", Treatment: treatment, Rating: 5, Feedback: "Very satisfied", Date: "2025-04-20"},
		{CustomerID: "c7", Treatment: treatment, Rating: 4, Feedback: "Good results, some redness", Date: "2025-04-12"},
		{CustomerID: "c12", Treatment: treatment, Rating: 5, Feedback: "Would book again", Date: "2025-03-30"},
	}, nil
}

// AverageRating returns the average star rating for a treatment.
func (s *Source) AverageRating(ctx context.Context, treatment string) (float64, error) {
	if err := s.begin(ctx, "rating"); err != nil {
		return 0, err
	}
	switch strings.ToLower(treatment) {
	case "botox":
		return 4.9, nil
	case "filler":
		return 4.7, nil
	default:
		return 4.8, nil
	}
}

// Schedule books a treatment appointment and returns the confirmed record.
// Bookings are not part of the cached fetch surface; the mock exists so
// the CLI and examples can exercise a write path too.
func (s *Source) Schedule(ctx context.Context, customerID, date, timeRange, treatment string) (*clinic.Appointment, error) {
	if err := s.begin(ctx, "schedule"); err != nil {
		return nil, err
	}
	if !strings.Contains(timeRange, "-") {
		return nil, fmt.Errorf("mocksource: invalid time range %q", timeRange)
	}
	appt := &clinic.Appointment{
		AppointmentID: uuid.NewString(),
		Date:          date,
		Time:          timeRange,
		Treatment:     treatment,
		Location:      "Elite Beauty Clinic Gangnam",
		Doctor:        "Dr. Kim",
		Status:        "confirmed",
	}
	s.logger.Debug("scheduled appointment",
		zap.String("customerID", customerID),
		zap.String("appointmentID", appt.AppointmentID),
		zap.String("date", date),
	)
	return appt, nil
}
