package handler

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	previewsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "planner_previews_total",
		Help: "Total number of successful plan previews.",
	})

	commitsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "planner_commits_total",
		Help: "Total number of successful plan commits.",
	})

	unplannedScenesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "planner_unplanned_scenes_total",
		Help: "Total number of scenes left unplanned across previews. Non-zero means incomplete plans were returned.",
	})
)
