package postgres_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/opst/leadline/pkg/conn/db/postgres/pool/testenv"
	"github.com/opst/leadline/pkg/domain"
	domerr "github.com/opst/leadline/pkg/domain/errors"
	"github.com/opst/leadline/pkg/domain/internal/db/postgres/seed"
	kdb "github.com/opst/leadline/pkg/domain/project/db"
	kpgproject "github.com/opst/leadline/pkg/domain/project/db/postgres"
	"github.com/opst/leadline/pkg/utils/pointer"
	"github.com/opst/leadline/pkg/utils/try"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestProject(t *testing.T) {
	poolBroaker := testenv.NewPoolBroaker(context.Background(), t)

	setup := func(t *testing.T) (context.Context, *projectFixture) {
		ctx := context.Background()
		pool := poolBroaker.GetPool(ctx, t)
		sales := seed.Profile(ctx, t, pool, domain.Sales)
		client := seed.Client(ctx, t, pool, sales)
		return ctx, &projectFixture{
			testee: kpgproject.New(pool), sales: sales, clientId: client.Id,
		}
	}

	t.Run("Create starts a project as planned", func(t *testing.T) {
		ctx, fx := setup(t)
		p := try.To(fx.testee.Create(ctx, domain.ProjectSpec{
			ClientId: fx.clientId, Name: "rollout", Owner: fx.sales, ValueCents: 120000,
			StartDate: pointer.Ref(date(2026, 4, 1)), EndDate: pointer.Ref(date(2026, 4, 1)),
		})).OrFatal(t)
		if p.Status != domain.ProjectPlanned || p.ClientId != fx.clientId || p.ValueCents != 120000 {
			t.Errorf("unexpected project: %+v", p)
		}
	})

	t.Run("Create refuses an end date before the start date", func(t *testing.T) {
		ctx, fx := setup(t)
		_, err := fx.testee.Create(ctx, domain.ProjectSpec{
			ClientId: fx.clientId, Name: "rollout", Owner: fx.sales,
			StartDate: pointer.Ref(date(2026, 4, 2)), EndDate: pointer.Ref(date(2026, 4, 1)),
		})
		if !errors.Is(err, domerr.ErrInvalidArgument) {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("Update refuses an end date before the start date", func(t *testing.T) {
		ctx, fx := setup(t)
		p := try.To(fx.testee.Create(ctx, domain.ProjectSpec{
			ClientId: fx.clientId, Name: "rollout", Owner: fx.sales,
			StartDate: pointer.Ref(date(2026, 4, 2)),
		})).OrFatal(t)

		_, err := fx.testee.Update(ctx, p.Id, domain.ProjectChange{EndDate: pointer.Ref(date(2026, 4, 1))})
		if !errors.Is(err, domerr.ErrInvalidArgument) {
			t.Errorf("unexpected error: %v", err)
		}

		updated := try.To(fx.testee.Update(ctx, p.Id, domain.ProjectChange{
			EndDate: pointer.Ref(date(2026, 5, 1)),
		})).OrFatal(t)
		if updated.EndDate == nil || !updated.EndDate.Equal(date(2026, 5, 1)) {
			t.Errorf("end date: %v", updated.EndDate)
		}
	})

	t.Run("SetStatus follows planned, active then completed", func(t *testing.T) {
		ctx, fx := setup(t)
		p := try.To(fx.testee.Create(ctx, domain.ProjectSpec{
			ClientId: fx.clientId, Name: "rollout", Owner: fx.sales,
		})).OrFatal(t)

		if _, err := fx.testee.SetStatus(ctx, p.Id, domain.ProjectCompleted); !errors.Is(err, domerr.ErrInvalidStateChanging) {
			t.Errorf("planned -> completed: unexpected error: %v", err)
		}
		for _, next := range []domain.ProjectStatus{domain.ProjectActive, domain.ProjectActive, domain.ProjectCompleted} {
			got := try.To(fx.testee.SetStatus(ctx, p.Id, next)).OrFatal(t)
			if got.Status != next {
				t.Errorf("status: (actual, expected) = (%s, %s)", got.Status, next)
			}
		}
		if _, err := fx.testee.SetStatus(ctx, p.Id, domain.ProjectCancelled); !errors.Is(err, domerr.ErrInvalidStateChanging) {
			t.Errorf("completed -> cancelled: unexpected error: %v", err)
		}
	})

	t.Run("SetStatus can cancel planned projects, and cancelled is final", func(t *testing.T) {
		ctx, fx := setup(t)
		p := try.To(fx.testee.Create(ctx, domain.ProjectSpec{
			ClientId: fx.clientId, Name: "rollout", Owner: fx.sales,
		})).OrFatal(t)

		try.To(fx.testee.SetStatus(ctx, p.Id, domain.ProjectCancelled)).OrFatal(t)
		if _, err := fx.testee.SetStatus(ctx, p.Id, domain.ProjectActive); !errors.Is(err, domerr.ErrInvalidStateChanging) {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("SetStatus and Delete report missing projects", func(t *testing.T) {
		ctx, fx := setup(t)
		missing := "00000000-0000-4000-8000-000000000000"
		if _, err := fx.testee.SetStatus(ctx, missing, domain.ProjectActive); !errors.Is(err, domerr.ErrMissing) {
			t.Errorf("SetStatus: unexpected error: %v", err)
		}
		if err := fx.testee.Delete(ctx, missing); !errors.Is(err, domerr.ErrMissing) {
			t.Errorf("Delete: unexpected error: %v", err)
		}
	})
}

type projectFixture struct {
	testee   kdb.Interface
	sales    string
	clientId string
}
