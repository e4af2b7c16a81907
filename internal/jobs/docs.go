// Package jobs provides scheduled background tasks for the kitchen service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the order lifecycle.
//
// # Available Jobs
//
// 1. OverdueSweepJob - Periodically flags active orders that have been in the
// kitchen longer than the configured timeout. The sweep only raises alerts;
// it never transitions an order.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(activeOrdersHandler, orderTimeout, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
package jobs
