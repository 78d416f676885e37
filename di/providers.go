package di

import "github.com/prometheus/client_golang/prometheus"

func provideRegisterer() prometheus.Registerer {
	return prometheus.DefaultRegisterer
}
