package common

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestsTotal counts handled requests by route template, method and status.
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "qualifygym_http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"route", "method", "status"})

	// HTTPRequestDuration records request latency by route template and method.
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "qualifygym_http_request_duration_seconds",
		Help:    "HTTP request latency in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"route", "method"})

	// ExistenceChecksTotal counts outbound existence checks by resource and outcome
	// (exists, missing, fallback).
	ExistenceChecksTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "qualifygym_existence_checks_total",
		Help: "Total number of cross-service existence checks",
	}, []string{"resource", "outcome"})

	// NotificationsDroppedTotal counts moderation notifications that failed to be created.
	NotificationsDroppedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "qualifygym_notifications_dropped_total",
		Help: "Total number of moderation notifications that could not be created",
	}, []string{"source"})

	// ImageBytesStoredTotal sums the bytes written to image storage by kind.
	ImageBytesStoredTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "qualifygym_image_bytes_stored_total",
		Help: "Total number of image bytes written to storage",
	}, []string{"kind"})
)
