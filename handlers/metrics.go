package handlers

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	submissionsStored = promauto.NewCounter(prometheus.CounterOpts{
		Name: "prophecy_api_submissions_stored_total",
		Help: "Total number of submissions inserted into the store.",
	})
	submissionsRejected = promauto.NewCounter(prometheus.CounterOpts{
		Name: "prophecy_api_submissions_rejected_total",
		Help: "Total number of submissions rejected by validation.",
	})
	submissionsFailed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "prophecy_api_submissions_failed_total",
		Help: "Total number of submissions that failed on the store side.",
	})
	propheciesGenerated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "prophecy_api_prophecies_generated_total",
		Help: "Total number of prophecies derived.",
	})
)
