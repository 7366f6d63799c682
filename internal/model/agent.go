package model

import "time"

// Agent is a roster entry eligible to receive customer assignments.
// Assigned customers are embedded so each agent reads its own list fast.
type Agent struct {
	ID                string             `json:"id" bson:"_id,omitempty"`
	Name              string             `json:"name" bson:"name"`
	Email             string             `json:"email" bson:"email"`
	Mobile            string             `json:"mobile" bson:"mobile"`
	PasswordHash      string             `json:"-" bson:"passwordHash"`
	IsActive          bool               `json:"isActive" bson:"isActive"`
	AssignedCustomers []AssignedCustomer `json:"assignedCustomers" bson:"assignedCustomers"`
	CreatedAt         time.Time          `json:"createdAt" bson:"createdAt"`
}
