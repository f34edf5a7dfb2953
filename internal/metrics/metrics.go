package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	SignupsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "brainly_signups_total",
		Help: "Successful account registrations.",
	})

	SigninsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "brainly_signins_total",
		Help: "Sign-in attempts by outcome.",
	}, []string{"status"})

	ContentCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "brainly_content_created_total",
		Help: "Content items saved.",
	})

	ShareReadsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "brainly_share_reads_total",
		Help: "Anonymous shared-collection reads by outcome.",
	}, []string{"status"})

	UsersTotal = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "brainly_users_total",
		Help: "Total number of registered users in the database.",
	})

	ContentItemsTotal = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "brainly_content_items_total",
		Help: "Total number of content items in the database.",
	})
)
