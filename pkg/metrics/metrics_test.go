package metrics_test

import (
	"bytes"
	"net/http"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/opst/leadline/pkg/domain"
	"github.com/opst/leadline/pkg/metrics"
	dto "github.com/prometheus/client_model/go"
	"github.com/prometheus/common/expfmt"
)

func valuesOf(mf *dto.MetricFamily, label string) map[string]float64 {
	ret := map[string]float64{}
	for _, m := range mf.GetMetric() {
		key := ""
		for _, l := range m.GetLabel() {
			if l.GetName() == label {
				key = l.GetValue()
			}
		}
		ret[key] = m.GetGauge().GetValue()
	}
	return ret
}

func TestFromDashboard(t *testing.T) {
	d := domain.Dashboard{
		Role: domain.Admin,
		LeadsByStatus: map[domain.LeadStatus]int{
			domain.LeadNew:       3,
			domain.LeadConverted: 1,
		},
		PendingReviews: map[domain.EntityType]int{
			domain.EntityLead: 2,
		},
		PendingRequests: 5,
		IncentiveTotals: map[domain.IncentiveStatus]int64{
			domain.IncentivePaid: 12000,
		},
		ActiveProfiles: map[domain.Role]int{
			domain.Admin: 1,
			domain.Sales: 4,
		},
	}

	mfs := metrics.FromDashboard(d)
	byName := map[string]*dto.MetricFamily{}
	for _, mf := range mfs {
		if mf.GetType() != dto.MetricType_GAUGE {
			t.Errorf("%s: type is %s", mf.GetName(), mf.GetType())
		}
		byName[mf.GetName()] = mf
	}

	t.Run("leads", func(t *testing.T) {
		want := map[string]float64{
			"new": 3, "contacted": 0, "qualified": 0, "converted": 1, "lost": 0,
		}
		if diff := cmp.Diff(want, valuesOf(byName[metrics.NameLeads], "status")); diff != "" {
			t.Errorf("(-want, +got):\n%s", diff)
		}
	})

	t.Run("pending reviews", func(t *testing.T) {
		got := valuesOf(byName[metrics.NamePendingReviews], "entity")
		if got[string(domain.EntityLead)] != 2 || len(got) != len(domain.EntityTypes()) {
			t.Errorf("unexpected: %v", got)
		}
	})

	t.Run("pending requests", func(t *testing.T) {
		got := valuesOf(byName[metrics.NamePendingRequests], "")
		if diff := cmp.Diff(map[string]float64{"": 5}, got); diff != "" {
			t.Errorf("(-want, +got):\n%s", diff)
		}
	})

	t.Run("incentives", func(t *testing.T) {
		got := valuesOf(byName[metrics.NameIncentives], "status")
		if got["paid"] != 12000 || got["pending"] != 0 {
			t.Errorf("unexpected: %v", got)
		}
	})

	t.Run("active profiles", func(t *testing.T) {
		want := map[string]float64{"admin": 1, "sales": 4, "intern": 0}
		if diff := cmp.Diff(want, valuesOf(byName[metrics.NameActiveProfiles], "role")); diff != "" {
			t.Errorf("(-want, +got):\n%s", diff)
		}
	})
}

func TestWrite(t *testing.T) {
	mfs := metrics.FromDashboard(domain.Dashboard{PendingRequests: 2})

	buf := new(bytes.Buffer)
	format := metrics.Negotiate(http.Header{})
	if err := metrics.Write(buf, format, mfs); err != nil {
		t.Fatal(err)
	}

	var p expfmt.TextParser
	parsed, err := p.TextToMetricFamilies(strings.NewReader(buf.String()))
	if err != nil {
		t.Fatalf("written metrics are not parsable: %v\n%s", err, buf.String())
	}
	mf, ok := parsed[metrics.NamePendingRequests]
	if !ok {
		t.Fatalf("%s is missing:\n%s", metrics.NamePendingRequests, buf.String())
	}
	if got := mf.GetMetric()[0].GetGauge().GetValue(); got != 2 {
		t.Errorf("pending requests: %v", got)
	}
}
