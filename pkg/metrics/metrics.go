// Package metrics renders dashboard figures as Prometheus metric families.
package metrics

import (
	"io"
	"net/http"

	"github.com/opst/leadline/pkg/domain"
	"github.com/opst/leadline/pkg/utils/pointer"
	dto "github.com/prometheus/client_model/go"
	"github.com/prometheus/common/expfmt"
)

const namespace = "leadline"

const (
	NameLeads           = namespace + "_leads"
	NamePendingReviews  = namespace + "_pending_reviews"
	NamePendingRequests = namespace + "_pending_appointment_requests"
	NameIncentives      = namespace + "_incentives_cents"
	NameActiveProfiles  = namespace + "_active_profiles"
)

type sample struct {
	labels map[string]string
	value  float64
}

func gauge(name, help string, samples ...sample) *dto.MetricFamily {
	mf := &dto.MetricFamily{
		Name: pointer.Ref(name),
		Help: pointer.Ref(help),
		Type: dto.MetricType_GAUGE.Enum(),
	}
	for _, s := range samples {
		m := &dto.Metric{Gauge: &dto.Gauge{Value: pointer.Ref(s.value)}}
		for k, v := range s.labels {
			m.Label = append(m.Label, &dto.LabelPair{Name: pointer.Ref(k), Value: pointer.Ref(v)})
		}
		mf.Metric = append(mf.Metric, m)
	}
	return mf
}

// per makes one sample for each key in keys, in that order.
//
// Keys missing in values are reported as zero.
func per[K ~string, V int | int64](label string, keys []K, values map[K]V) []sample {
	ret := make([]sample, 0, len(keys))
	for _, k := range keys {
		ret = append(ret, sample{
			labels: map[string]string{label: string(k)},
			value:  float64(values[k]),
		})
	}
	return ret
}

// FromDashboard converts an admin dashboard into metric families.
func FromDashboard(d domain.Dashboard) []*dto.MetricFamily {
	return []*dto.MetricFamily{
		gauge(
			NameLeads, "number of leads per status.",
			per("status", domain.LeadStatuses(), d.LeadsByStatus)...,
		),
		gauge(
			NamePendingReviews, "number of submissions waiting for review per entity type.",
			per("entity", domain.EntityTypes(), d.PendingReviews)...,
		),
		gauge(
			NamePendingRequests, "number of pending appointment requests.",
			sample{value: float64(d.PendingRequests)},
		),
		gauge(
			NameIncentives, "total amount of incentives per status, in cents.",
			per("status", domain.IncentiveStatuses(), d.IncentiveTotals)...,
		),
		gauge(
			NameActiveProfiles, "number of active profiles per role.",
			per("role", domain.Roles(), d.ActiveProfiles)...,
		),
	}
}

// Negotiate picks the exposition format from the Accept header.
func Negotiate(h http.Header) expfmt.Format {
	return expfmt.Negotiate(h)
}

func Write(w io.Writer, format expfmt.Format, mfs []*dto.MetricFamily) error {
	enc := expfmt.NewEncoder(w, format)
	for _, mf := range mfs {
		if err := enc.Encode(mf); err != nil {
			return err
		}
	}
	if c, ok := enc.(expfmt.Closer); ok {
		return c.Close()
	}
	return nil
}
