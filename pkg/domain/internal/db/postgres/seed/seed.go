// Package seed puts rows into the database for tests.
package seed

import (
	"context"
	"fmt"
	"testing"
	"time"

	kpool "github.com/opst/leadline/pkg/conn/db/postgres/pool"
	"github.com/opst/leadline/pkg/domain"
	pgi "github.com/opst/leadline/pkg/domain/internal/db/postgres"
	"github.com/opst/leadline/pkg/utils/try"
)

// Profile inserts an active profile with the role, and returns its id.
func Profile(ctx context.Context, t *testing.T, q kpool.Queryer, role domain.Role) string {
	t.Helper()
	var id string
	nth := 0
	if err := q.QueryRow(ctx, `select count(*)::int from "profiles"`).Scan(&nth); err != nil {
		t.Fatal(err)
	}
	if err := q.QueryRow(
		ctx,
		`
		insert into "profiles" ("email", "full_name", "role", "password_hash")
		values ($1, $2, $3, $4)
		returning "id"::text
		`,
		fmt.Sprintf("%s-%d@example.com", role, nth),
		fmt.Sprintf("%s %d", role, nth),
		role,
		[]byte("not a hash"),
	).Scan(&id); err != nil {
		t.Fatal(err)
	}
	return id
}

// Lead inserts an approved lead created by the profile.
func Lead(ctx context.Context, t *testing.T, q kpool.Queryer, createdBy string, status domain.LeadStatus) domain.Lead {
	t.Helper()
	lead := try.To(pgi.InsertLead(ctx, q, domain.LeadSpec{
		Name:         "Lead of " + createdBy,
		Email:        "lead@example.com",
		Source:       "web",
		CreatedBy:    createdBy,
		ReviewStatus: domain.ReviewApproved,
	})).OrFatal(t)

	if status != "" && status != lead.Status {
		try.To(q.Exec(ctx, `update "leads" set "status" = $2 where "id" = $1`, lead.Id, status)).OrFatal(t)
		lead.Status = status
	}
	return lead
}

// Client inserts an approved client owned by the profile.
func Client(ctx context.Context, t *testing.T, q kpool.Queryer, owner string) domain.Client {
	t.Helper()
	return try.To(pgi.InsertClient(ctx, q, domain.ClientSpec{
		Name:         "Client of " + owner,
		Company:      "ACME",
		Owner:        owner,
		ReviewStatus: domain.ReviewApproved,
	})).OrFatal(t)
}

// Request inserts a pending appointment request starting at start, for an hour.
func Request(ctx context.Context, t *testing.T, q kpool.Queryer, clientId, requestedBy string, start time.Time) string {
	t.Helper()
	var id string
	if err := q.QueryRow(
		ctx,
		`
		insert into "appointment_requests"
			("client_id", "requested_by", "requested_start", "requested_end", "purpose")
		values ($1, $2, $3, $4, 'demo')
		returning "id"::text
		`,
		clientId, requestedBy, start, start.Add(time.Hour),
	).Scan(&id); err != nil {
		t.Fatal(err)
	}
	return id
}

// Count returns the result of a `select count(*)` query.
func Count(ctx context.Context, t *testing.T, q kpool.Queryer, sql string, args ...any) int {
	t.Helper()
	var n int
	if err := q.QueryRow(ctx, sql, args...).Scan(&n); err != nil {
		t.Fatal(err)
	}
	return n
}
