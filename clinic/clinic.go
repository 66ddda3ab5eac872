// Package clinic defines the domain records served by the larder client:
// customer profiles, appointments, treatments, reviews, and booking slots
// for a beauty clinic.
package clinic

// Address is a customer's billing address.
type Address struct {
	Street string `json:"street"`
	City   string `json:"city"`
	State  string `json:"state"`
	Zip    string `json:"zip"`
}

// CommunicationPreferences records which channels a customer has opted into.
type CommunicationPreferences struct {
	Email bool `json:"email"`
	SMS   bool `json:"sms"`
	Push  bool `json:"push_notifications"`
}

// BeautyProfile captures a customer's skin profile and preferences, used to
// personalize treatment recommendations.
type BeautyProfile struct {
	SkinType               string   `json:"skin_type"`
	Concerns               []string `json:"concerns"`
	PreviousTreatments     []string `json:"previous_treatments"`
	PreferredTreatmentTime string   `json:"preferred_treatment_time"`
	BudgetRange            string   `json:"budget_range"`
}

// Customer is a clinic customer profile.
type Customer struct {
	AccountNumber   string                   `json:"account_number"`
	CustomerID      string                   `json:"customer_id"`
	FirstName       string                   `json:"customer_first_name"`
	LastName        string                   `json:"customer_last_name"`
	Email           string                   `json:"email"`
	PhoneNumber     string                   `json:"phone_number"`
	StartDate       string                   `json:"customer_start_date"`
	YearsAsCustomer int                      `json:"years_as_customer"`
	BillingAddress  Address                  `json:"billing_address"`
	LoyaltyPoints   int                      `json:"loyalty_points"`
	PreferredClinic string                   `json:"preferred_clinic"`
	Preferences     CommunicationPreferences `json:"communication_preferences"`
	Profile         BeautyProfile            `json:"beauty_profile"`
}

// Appointment is a scheduled treatment session.
type Appointment struct {
	AppointmentID string `json:"appointment_id"`
	Date          string `json:"date"` // YYYY-MM-DD
	Time          string `json:"time"` // e.g. "14-16"
	Treatment     string `json:"treatment"`
	Location      string `json:"location"`
	Doctor        string `json:"doctor"`
	Status        string `json:"status"` // "confirmed" or "pending"
}

// Treatment is one completed treatment in a customer's history.
type Treatment struct {
	Date        string  `json:"date"`
	TreatmentID string  `json:"treatment_id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
}

// TreatmentOption is a recommended treatment for a skin concern or type.
type TreatmentOption struct {
	TreatmentID string  `json:"product_id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}

// TimeSlot is an open booking window on a given date.
type TimeSlot struct {
	Date  string `json:"date"`
	Range string `json:"range"` // e.g. "9-11"
}

// Review is a single customer rating for a treatment.
type Review struct {
	CustomerID string `json:"customer_id"`
	Treatment  string `json:"treatment"`
	Rating     int    `json:"rating"` // 1-5 stars
	Feedback   string `json:"feedback"`
	Date       string `json:"date"`
}

// TreatmentRating pairs a treatment name with its average rating.
type TreatmentRating struct {
	Name   string  `json:"name"`
	Rating float64 `json:"rating"`
}

// SatisfactionReport summarizes customer satisfaction for a clinic.
type SatisfactionReport struct {
	AverageRating    float64           `json:"average_rating"`
	TotalReviews     int               `json:"total_reviews"`
	SatisfactionRate int               `json:"satisfaction_rate"` // percent
	TopRated         []TreatmentRating `json:"top_rated_treatments"`
}
