package services

import (
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// stalePurger is the slice of the file store the cleaner needs.
type stalePurger interface {
	PurgeStale(maxAge time.Duration) (int, error)
}

// UploadCleaner purges abandoned staged uploads on a nightly schedule. Files
// staged but never confirmed as attachments accumulate in the temp area
// otherwise.
type UploadCleaner struct {
	store  stalePurger
	maxAge time.Duration
	cron   *cron.Cron
}

// NewUploadCleaner creates a cleaner that drops temp buckets older than maxAge.
func NewUploadCleaner(store stalePurger, maxAge time.Duration) *UploadCleaner {
	return &UploadCleaner{
		store:  store,
		maxAge: maxAge,
		cron:   cron.New(cron.WithSeconds()),
	}
}

// Start schedules the nightly purge at midnight UTC and launches the
// scheduler.
func (c *UploadCleaner) Start() error {
	if _, err := c.cron.AddFunc("0 0 0 * * *", c.RunOnce); err != nil {
		return err
	}
	c.cron.Start()
	log.Println("Upload cleaner scheduled (nightly at midnight)")
	return nil
}

// Stop halts the scheduler. Already-running jobs finish.
func (c *UploadCleaner) Stop() {
	c.cron.Stop()
}

// RunOnce executes a single purge pass.
func (c *UploadCleaner) RunOnce() {
	purged, err := c.store.PurgeStale(c.maxAge)
	if err != nil {
		log.Printf("Upload cleanup failed: %v", err)
		return
	}
	if purged > 0 {
		log.Printf("Upload cleanup removed %d stale bucket(s)", purged)
	}
}
