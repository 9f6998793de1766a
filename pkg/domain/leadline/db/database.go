package db

import (
	"context"

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
	kschema "github.com/opst/leadline/pkg/domain/schema/db"
)

type Database interface {
	Profile() kprofile.Interface
	Lead() klead.Interface
	Client() kclient.Interface
	Project() kproject.Interface
	Appointment() kappointment.Interface
	Request() krequest.Interface
	Review() kreview.Interface
	RawData() krawdata.Interface
	Document() kdocument.Interface
	Incentive() kincentive.Interface
	Dashboard() kdashboard.Interface
	Schema() kschema.SchemaInterface

	// Ping checks the connection.
	Ping(ctx context.Context) error
	Close() error
}
