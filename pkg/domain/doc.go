package domain

// domain package contains the Domain Models of Leadline, the sales pipeline CRM.
//
// `domain/ENTITY.go` has the entity types, their status enums and the rules
// of status transitions. For example, `domain/appointment.go` has
// `AppointmentRequest` and its state machine.
//
// `domain/ENTITY/db` has the database interface of the entity,
// `domain/ENTITY/db/postgres` implements it on PostgreSQL and
// `domain/ENTITY/db/mock` is the mock for tests.
//
// `domain/leadline` bundles all of them into the root object which
// applications instantiate.
//
// # Entities
//
// - `profile`: a user of the system. Each profile has a Role (admin, sales or intern)
// which decides what the user can see and do.
//
// - `lead`: a prospect of business. Leads move new -> contacted -> qualified -> converted (or lost).
// Converting a lead creates a client.
//
// - `client`, `project`: customers and the business done with them.
//
// - `appointment`: a calendar entry of a sales person.
//
// - `appointment request`: a request to meet a client, decided by an admin.
// Approving a request creates a `client appointment`.
//
// - `raw data`, `document`: materials collected by interns and sales.
//
// - `review`: an item in the review queue. Leads, clients, raw data and documents
// submitted by interns are reviewed by admins before being trusted.
//
// - `incentive`: a reward for a sales person, approved and paid by admins.
