package main

import (
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/opst/leadline/cmd/leadlined/handlers"
	"github.com/opst/leadline/pkg/auth"
	"github.com/opst/leadline/pkg/domain"
	"github.com/opst/leadline/pkg/domain/document/store"
	kdb "github.com/opst/leadline/pkg/domain/leadline/db"
)

const apiRoot = "/api/"

type server struct {
	db            kdb.Database
	documents     store.Store
	tokens        auth.Tokens
	publicMetrics bool
	now           func() time.Time
}

func api(path string) string {
	return apiRoot + strings.TrimPrefix(path, "/")
}

// public tells routes which can be called without tokens.
func (s server) public(c echo.Context) bool {
	switch c.Path() {
	case api("auth/login/"):
		return true
	case api("metrics/"):
		return s.publicMetrics
	}
	return false
}

func (s server) register(e *echo.Echo) {
	admin := auth.RequireRole(domain.Admin)
	staff := auth.RequireRole(domain.Admin, domain.Sales)
	submitter := auth.RequireRole(domain.Sales, domain.Intern)

	e.Use(auth.Middleware(s.tokens, s.public))

	e.POST(api("auth/login/"), handlers.LoginHandler(s.db.Profile(), s.tokens))
	e.GET(api("auth/me/"), handlers.MeHandler(s.db.Profile()))

	{
		id := "profileId"
		e.GET(api("profiles/"), handlers.FindProfilesHandler(s.db.Profile()), admin)
		e.POST(api("profiles/"), handlers.RegisterProfileHandler(s.db.Profile()), admin)
		e.GET(api("profiles/:profileId/"), handlers.GetProfileHandler(s.db.Profile(), id), admin)
		e.PUT(api("profiles/:profileId/"), handlers.UpdateProfileHandler(s.db.Profile(), id), admin)
		e.PUT(api("profiles/:profileId/password/"), handlers.SetPasswordHandler(s.db.Profile(), id))
	}

	{
		id := "leadId"
		e.GET(api("leads/"), handlers.FindLeadsHandler(s.db.Lead()))
		e.POST(api("leads/"), handlers.CreateLeadHandler(s.db.Lead()))
		e.GET(api("leads/:leadId/"), handlers.GetLeadHandler(s.db.Lead(), id))
		e.PUT(api("leads/:leadId/"), handlers.UpdateLeadHandler(s.db.Lead(), id))
		e.DELETE(api("leads/:leadId/"), handlers.DeleteLeadHandler(s.db.Lead(), id), admin)
		e.PUT(api("leads/:leadId/status/"), handlers.SetLeadStatusHandler(s.db.Lead(), id), staff)
		e.PUT(api("leads/:leadId/assignee/"), handlers.AssignLeadHandler(s.db.Lead(), id), admin)
		e.POST(api("leads/:leadId/convert/"), handlers.ConvertLeadHandler(s.db.Lead(), id), staff)
	}

	{
		id := "clientId"
		e.GET(api("clients/"), handlers.FindClientsHandler(s.db.Client()))
		e.POST(api("clients/"), handlers.CreateClientHandler(s.db.Client()))
		e.GET(api("clients/:clientId/"), handlers.GetClientHandler(s.db.Client(), id))
		e.PUT(api("clients/:clientId/"), handlers.UpdateClientHandler(s.db.Client(), id))
		e.DELETE(api("clients/:clientId/"), handlers.DeleteClientHandler(s.db.Client(), id), admin)
	}

	{
		id := "projectId"
		e.GET(api("projects/"), handlers.FindProjectsHandler(s.db.Project()), staff)
		e.POST(api("projects/"), handlers.CreateProjectHandler(s.db.Client(), s.db.Project()), staff)
		e.GET(api("projects/:projectId/"), handlers.GetProjectHandler(s.db.Project(), id), staff)
		e.PUT(api("projects/:projectId/"), handlers.UpdateProjectHandler(s.db.Project(), id), staff)
		e.DELETE(api("projects/:projectId/"), handlers.DeleteProjectHandler(s.db.Project(), id), admin)
		e.PUT(api("projects/:projectId/status/"), handlers.SetProjectStatusHandler(s.db.Project(), id), staff)
	}

	{
		id := "appointmentId"
		e.GET(api("appointments/"), handlers.FindAppointmentsHandler(s.db.Appointment()), staff)
		e.POST(api("appointments/"), handlers.CreateAppointmentHandler(s.db.Appointment()), staff)
		e.GET(api("appointments/:appointmentId/"), handlers.GetAppointmentHandler(s.db.Appointment(), id), staff)
		e.PUT(api("appointments/:appointmentId/"), handlers.UpdateAppointmentHandler(s.db.Appointment(), id), staff)
		e.DELETE(api("appointments/:appointmentId/"), handlers.DeleteAppointmentHandler(s.db.Appointment(), id), staff)
		e.PUT(api("appointments/:appointmentId/status/"), handlers.SetAppointmentStatusHandler(s.db.Appointment(), id), staff)
	}

	{
		id := "requestId"
		e.GET(api("appointment-requests/"), handlers.FindRequestsHandler(s.db.Request()))
		e.POST(api("appointment-requests/"), handlers.CreateRequestHandler(s.db.Client(), s.db.Request(), s.now), submitter)
		e.GET(api("appointment-requests/:requestId/"), handlers.GetRequestHandler(s.db.Request(), id))
		e.PUT(api("appointment-requests/:requestId/approve/"), handlers.ApproveRequestHandler(s.db.Request(), id), admin)
		e.PUT(api("appointment-requests/:requestId/reject/"), handlers.RejectRequestHandler(s.db.Request(), id), admin)
		e.PUT(api("appointment-requests/:requestId/cancel/"), handlers.CancelRequestHandler(s.db.Request(), id))
		e.GET(api("client-appointments/"), handlers.FindClientAppointmentsHandler(s.db.Request()))
	}

	{
		id := "rawDataId"
		e.GET(api("raw-data/"), handlers.FindRawDataHandler(s.db.RawData()))
		e.POST(api("raw-data/"), handlers.SubmitRawDataHandler(s.db.RawData()))
		e.GET(api("raw-data/:rawDataId/"), handlers.GetRawDataHandler(s.db.RawData(), id))
		e.DELETE(api("raw-data/:rawDataId/"), handlers.DeleteRawDataHandler(s.db.RawData(), id))
	}

	{
		e.GET(api("reviews/"), handlers.FindReviewsHandler(s.db.Review()))
		e.POST(api("reviews/"), handlers.SubmitReviewHandler(s.db.Review()), staff)
		e.PUT(api("reviews/decision/"), handlers.DecideReviewsHandler(s.db.Review()), admin)
	}

	{
		id := "documentId"
		e.GET(api("documents/"), handlers.FindDocumentsHandler(s.db.Document()))
		e.POST(api("documents/"), handlers.UploadDocumentHandler(s.db.Document(), s.documents))
		e.GET(api("documents/:documentId/"), handlers.GetDocumentHandler(s.db.Document(), id))
		e.GET(api("documents/:documentId/content/"), handlers.DownloadDocumentHandler(s.db.Document(), s.documents, id))
		e.DELETE(api("documents/:documentId/"), handlers.DeleteDocumentHandler(s.db.Document(), s.documents, id))
	}

	{
		id := "incentiveId"
		e.GET(api("incentives/"), handlers.FindIncentivesHandler(s.db.Incentive()))
		e.POST(api("incentives/"), handlers.CreateIncentiveHandler(s.db.Incentive()), admin)
		e.GET(api("incentives/summary/"), handlers.IncentiveSummaryHandler(s.db.Incentive()))
		e.PUT(api("incentives/:incentiveId/status/"), handlers.SetIncentiveStatusHandler(s.db.Incentive(), id), admin)
	}

	e.GET(api("dashboard/"), handlers.DashboardHandler(s.db.Dashboard(), s.now))
	if s.publicMetrics {
		e.GET(api("metrics/"), handlers.MetricsHandler(s.db.Dashboard(), s.now))
	} else {
		e.GET(api("metrics/"), handlers.MetricsHandler(s.db.Dashboard(), s.now), admin)
	}
}
