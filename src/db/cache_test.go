package db

import "testing"

func TestReportCacheNilGuards(t *testing.T) {
	Cache = nil
	// Without InitCache every helper must be a safe no-op.
	SetReportCache("dashboard::", "value")
	if _, ok := GetReportCache("dashboard::"); ok {
		t.Error("nil cache returned a hit")
	}
	ClearAllReportCaches()
}

func TestReportCacheSetGetClear(t *testing.T) {
	InitCache()
	t.Cleanup(func() {
		ClearAllReportCaches()
		Cache = nil
	})

	SetReportCache("dashboard::", "summary")
	SetReportCache("by-month::12", "trend")
	Cache.Wait()

	v, ok := GetReportCache("dashboard::")
	if !ok || v != "summary" {
		t.Fatalf("GetReportCache = %v, %v; want summary hit", v, ok)
	}

	ReportCacheKeys.RLock()
	tracked := len(ReportCacheKeys.m)
	ReportCacheKeys.RUnlock()
	if tracked != 2 {
		t.Errorf("tracked keys = %d, want 2", tracked)
	}

	ClearAllReportCaches()
	Cache.Wait()
	if _, ok := GetReportCache("dashboard::"); ok {
		t.Error("dashboard entry survived clear")
	}
	if _, ok := GetReportCache("by-month::12"); ok {
		t.Error("by-month entry survived clear")
	}
	ReportCacheKeys.RLock()
	tracked = len(ReportCacheKeys.m)
	ReportCacheKeys.RUnlock()
	if tracked != 0 {
		t.Errorf("tracked keys after clear = %d, want 0", tracked)
	}
}
