package daemons

import (
	"sync"
	"time"

	"github.com/zsmartex/passbook/jobs"
)

type CronJob struct {
	Jobs []jobs.Job

	mu      sync.RWMutex
	running bool
	tick    time.Duration
}

func NewCronJob(jobs ...jobs.Job) *CronJob {
	return &CronJob{Jobs: jobs, running: true, tick: time.Second}
}

func (c *CronJob) Running() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.running
}

func (c *CronJob) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.running = false
}

func (c *CronJob) Start() {
	for _, job := range c.Jobs {
		go c.Process(job)
	}

	for c.Running() {
		time.Sleep(c.tick)
	}
}

func (c *CronJob) Process(job jobs.Job) {
	for c.Running() {
		job.Process()
	}
}
