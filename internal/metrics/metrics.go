package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ChatTurns counts handled chat turns by resolved intent.
	ChatTurns = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "partdesk",
		Name:      "chat_turns_total",
		Help:      "Chat turns handled, labeled by resolved intent.",
	}, []string{"intent"})

	// OutOfDomain counts turns refused as outside the appliance-parts domain.
	OutOfDomain = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "partdesk",
		Name:      "chat_out_of_domain_total",
		Help:      "Chat turns answered with the out-of-domain refusal.",
	})

	// ClassifierCalls counts pump-sound classifier invocations by outcome:
	// one of the closed-set labels, unknown, timeout, or error.
	ClassifierCalls = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "partdesk",
		Name:      "classifier_calls_total",
		Help:      "Pump sound classifier calls, labeled by outcome.",
	}, []string{"outcome"})

	// Tickets counts demo support tickets opened.
	Tickets = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "partdesk",
		Name:      "support_tickets_total",
		Help:      "Demo support tickets opened.",
	})
)
