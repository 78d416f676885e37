package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"hotelier/config"
)

// Metrics holds all prometheus metrics
type Metrics struct {
	BookingsCreated   prometheus.Counter
	BookingsConfirmed prometheus.Counter
	BookingsDeleted   prometheus.Counter
	BookingsRejected  *prometheus.CounterVec
	RatingsRecorded   prometheus.Counter
}

// New creates prometheus metrics under the application namespace, registered
// on the given registerer.
func New(cfg *config.Config, reg prometheus.Registerer) *Metrics {
	namespace := cfg.App.Name
	factory := promauto.With(reg)

	return &Metrics{
		BookingsCreated: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bookings_created_total",
			Help:      "The total number of bookings accepted",
		}),
		BookingsConfirmed: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bookings_confirmed_total",
			Help:      "The total number of bookings confirmed through payment",
		}),
		BookingsDeleted: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bookings_deleted_total",
			Help:      "The total number of bookings removed by an admin",
		}),
		BookingsRejected: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bookings_rejected_total",
			Help:      "The total number of rejected booking attempts",
		}, []string{"reason"}),
		RatingsRecorded: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ratings_recorded_total",
			Help:      "The total number of guest ratings recorded",
		}),
	}
}
