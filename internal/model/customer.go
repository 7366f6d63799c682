package model

import "time"

// CustomerRecord is a single normalized lead taken from an uploaded file.
// It is a plain value - duplicates are allowed and preserved as-is.
type CustomerRecord struct {
	FirstName string `json:"firstName" bson:"firstName"`
	Phone     string `json:"phone" bson:"phone"`
	Notes     string `json:"notes" bson:"notes"`
}

// AssignedCustomer is a customer record embedded into an agent document
// together with the moment it was handed over
type AssignedCustomer struct {
	CustomerRecord `bson:",inline"`
	AssignedAt     time.Time `json:"assignedAt" bson:"assignedAt"`
}
