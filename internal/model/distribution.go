package model

import "time"

// AssignmentPart is the slice of one distribution owned by a single agent
type AssignmentPart struct {
	AgentID   string           `json:"agentId" bson:"agentId"`
	Customers []CustomerRecord `json:"customers" bson:"customers"`
	Count     int              `json:"count" bson:"count"`
}

// Distribution is the immutable audit record of one upload-and-assign
// operation. It is inserted once and never updated or deleted.
type Distribution struct {
	ID             string           `json:"id" bson:"_id,omitempty"`
	Filename       string           `json:"filename" bson:"filename"`
	UploadedBy     string           `json:"uploadedBy,omitempty" bson:"uploadedBy,omitempty"`
	UploadedAt     time.Time        `json:"uploadedAt" bson:"uploadedAt"`
	TotalCustomers int              `json:"totalCustomers" bson:"totalCustomers"`
	Assignments    []AssignmentPart `json:"assignments" bson:"assignments"`
}
