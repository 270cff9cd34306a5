package models

import "time"

type OfferStatus string

const (
	OfferPending     OfferStatus = "pending"
	OfferAccepted    OfferStatus = "accepted"
	OfferDeclined    OfferStatus = "declined"
	OfferNegotiating OfferStatus = "negotiating"
	OfferExpired     OfferStatus = "expired"
)

func (s OfferStatus) IsValid() bool {
	switch s {
	case OfferPending, OfferAccepted, OfferDeclined, OfferNegotiating, OfferExpired:
		return true
	}
	return false
}

type Offer struct {
	ID            string      `json:"id"`
	CandidateName string      `json:"candidate_name"`
	Position      string      `json:"position"`
	Department    string      `json:"department"`
	Salary        string      `json:"salary"`
	StartDate     string      `json:"start_date"`
	Status        OfferStatus `json:"status"`
	SentDate      string      `json:"sent_date"`
	ExpiryDate    string      `json:"expiry_date,omitempty"`
	AcceptedDate  string      `json:"accepted_date,omitempty"`
}

// ExpiringSoon reports whether the offer expires within two days of
// now. Offers with a past expiry date are already expired, a distinct
// state, and report false.
func (o Offer) ExpiringSoon(now time.Time) bool {
	if o.ExpiryDate == "" {
		return false
	}
	expiry, err := time.Parse("2006-01-02", o.ExpiryDate)
	if err != nil {
		return false
	}
	// Expiry dates parse as UTC midnight, so the current day must be
	// anchored in UTC as well or the difference drifts by the zone offset.
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	days := int(expiry.Sub(today).Hours() / 24)
	return days > 0 && days <= 2
}
