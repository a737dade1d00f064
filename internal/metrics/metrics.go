package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	EventOrdersCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "event_orders_created_total",
		Help: "Total number of event orders created",
	})

	EventOrdersAcceptedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "event_orders_accepted_total",
		Help: "Total number of event orders accepted",
	})

	EventOrdersRefusedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "event_orders_refused_total",
		Help: "Total number of event orders refused",
	})

	EventOrdersCanceledTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "event_orders_canceled_total",
		Help: "Total number of event orders canceled",
	})

	PaymentAttemptsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "payment_attempts_total",
		Help: "Total number of gateway charge attempts",
	})

	PaymentApprovedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "payment_approved_total",
		Help: "Total number of approved gateway charges",
	})

	PaymentDeclinedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "payment_declined_total",
		Help: "Total number of declined gateway charges",
	}, []string{"reason"})

	WebhooksProcessedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "webhooks_processed_total",
		Help: "Total number of gateway webhooks processed",
	}, []string{"kind"})
)
