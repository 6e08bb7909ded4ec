package config

import (
	"storefront.GO/cron/jobs"
)

// Map of job names to job functions
type CronJob struct {
	Schedule string
	Job      func(...string)
}

var CronJobs = map[string]CronJob{
	"catalogreload":  {Schedule: "*/15 * * * *", Job: jobs.CatalogReloadJob},
	"campaignexpiry": {Schedule: "0 * * * *", Job: jobs.CampaignExpiryJob},
	// Add more jobs here
}
