// Package mock provides a Database made of mock interfaces, for testing.
package mock

import (
	"context"

	appointment "github.com/opst/leadline/pkg/domain/appointment/db/mock"
	request "github.com/opst/leadline/pkg/domain/appointmentrequest/db/mock"
	client "github.com/opst/leadline/pkg/domain/client/db/mock"
	dashboard "github.com/opst/leadline/pkg/domain/dashboard/db/mock"
	document "github.com/opst/leadline/pkg/domain/document/db/mock"
	incentive "github.com/opst/leadline/pkg/domain/incentive/db/mock"
	lead "github.com/opst/leadline/pkg/domain/lead/db/mock"
	kdb "github.com/opst/leadline/pkg/domain/leadline/db"
	profile "github.com/opst/leadline/pkg/domain/profile/db/mock"
	project "github.com/opst/leadline/pkg/domain/project/db/mock"
	rawdata "github.com/opst/leadline/pkg/domain/rawdata/db/mock"
	review "github.com/opst/leadline/pkg/domain/review/db/mock"
	kschema "github.com/opst/leadline/pkg/domain/schema/db"

	kappointment "github.com/opst/leadline/pkg/domain/appointment/db"
	krequest "github.com/opst/leadline/pkg/domain/appointmentrequest/db"
	kclient "github.com/opst/leadline/pkg/domain/client/db"
	kdashboard "github.com/opst/leadline/pkg/domain/dashboard/db"
	kdocument "github.com/opst/leadline/pkg/domain/document/db"
	kincentive "github.com/opst/leadline/pkg/domain/incentive/db"
	klead "github.com/opst/leadline/pkg/domain/lead/db"
	kprofile "github.com/opst/leadline/pkg/domain/profile/db"
	kproject "github.com/opst/leadline/pkg/domain/project/db"
	krawdata "github.com/opst/leadline/pkg/domain/rawdata/db"
	kreview "github.com/opst/leadline/pkg/domain/review/db"
)

type Database struct {
	Profiles     *profile.ProfileInterface
	Leads        *lead.LeadInterface
	Clients      *client.ClientInterface
	Projects     *project.ProjectInterface
	Appointments *appointment.AppointmentInterface
	Requests     *request.RequestInterface
	Reviews      *review.ReviewInterface
	RawDataSet   *rawdata.RawDataInterface
	Documents    *document.DocumentInterface
	Incentives   *incentive.IncentiveInterface
	Dashboards   *dashboard.DashboardInterface
	Schemas      *SchemaInterface

	PingErr error
}

var _ kdb.Database = &Database{}

func New() *Database {
	return &Database{
		Profiles:     profile.NewProfileInterface(),
		Leads:        lead.NewLeadInterface(),
		Clients:      client.NewClientInterface(),
		Projects:     project.NewProjectInterface(),
		Appointments: appointment.NewAppointmentInterface(),
		Requests:     request.NewRequestInterface(),
		Reviews:      review.NewReviewInterface(),
		RawDataSet:   rawdata.NewRawDataInterface(),
		Documents:    document.NewDocumentInterface(),
		Incentives:   incentive.NewIncentiveInterface(),
		Dashboards:   dashboard.NewDashboardInterface(),
		Schemas:      &SchemaInterface{},
	}
}

func (d *Database) Profile() kprofile.Interface         { return d.Profiles }
func (d *Database) Lead() klead.Interface               { return d.Leads }
func (d *Database) Client() kclient.Interface           { return d.Clients }
func (d *Database) Project() kproject.Interface         { return d.Projects }
func (d *Database) Appointment() kappointment.Interface { return d.Appointments }
func (d *Database) Request() krequest.Interface         { return d.Requests }
func (d *Database) Review() kreview.Interface           { return d.Reviews }
func (d *Database) RawData() krawdata.Interface         { return d.RawDataSet }
func (d *Database) Document() kdocument.Interface       { return d.Documents }
func (d *Database) Incentive() kincentive.Interface     { return d.Incentives }
func (d *Database) Dashboard() kdashboard.Interface     { return d.Dashboards }
func (d *Database) Schema() kschema.SchemaInterface     { return d.Schemas }

func (d *Database) Ping(context.Context) error { return d.PingErr }
func (d *Database) Close() error               { return nil }

// SchemaInterface is a schema which is always up to date.
type SchemaInterface struct {
	Impl struct {
		Upgrade func(context.Context) error
		Version func(context.Context) (int, error)
	}
}

var _ kschema.SchemaInterface = &SchemaInterface{}

func (s *SchemaInterface) Upgrade(ctx context.Context) error {
	if s.Impl.Upgrade != nil {
		return s.Impl.Upgrade(ctx)
	}
	return nil
}

func (s *SchemaInterface) Version(ctx context.Context) (int, error) {
	if s.Impl.Version != nil {
		return s.Impl.Version(ctx)
	}
	return 0, nil
}

func (s *SchemaInterface) Context(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithCancel(ctx)
}
