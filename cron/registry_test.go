package cron

import (
	"testing"
)

func TestRegistry_RegisterAndRun(t *testing.T) {
	var gotArgs []string
	Register("reloadcheck", "@every 10m", func(args ...string) {
		gotArgs = args
	})
	defer Unregister("reloadcheck")

	j, ok := Jobs()["reloadcheck"]
	if !ok {
		t.Fatal("reloadcheck not in Jobs()")
	}
	if j.Schedule != "@every 10m" {
		t.Errorf("Schedule = %q, want @every 10m", j.Schedule)
	}
	j.Run("full")
	if len(gotArgs) != 1 || gotArgs[0] != "full" {
		t.Errorf("args = %v, want [full]", gotArgs)
	}
}

func TestRegistry_JobsReturnsCopy(t *testing.T) {
	Register("copycheck", "@hourly", func(...string) {})
	defer Unregister("copycheck")

	jobs := Jobs()
	delete(jobs, "copycheck")
	if _, ok := Jobs()["copycheck"]; !ok {
		t.Error("mutating the Jobs() result leaked into the registry")
	}
}

func TestRegistry_DuplicateNamePanics(t *testing.T) {
	Register("expirycheck", "@hourly", func(...string) {})
	defer Unregister("expirycheck")
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic on duplicate registration")
		}
	}()
	Register("expirycheck", "@daily", func(...string) {})
}
