package season

import (
	"math"
	"testing"
	"time"

	"github.com/sartorproj/tapseries/table"
)

// seasonTable has two years of observations: 2014 with clear in-season
// rows, 2015 with every in-season row carrying a masked QA code.
func seasonTable(t *testing.T) *table.Table {
	t.Helper()

	tbl, err := table.New(
		[]time.Time{
			day(2014, 6, 10),
			day(2014, 7, 20),
			day(2014, 8, 30),
			day(2014, 11, 5), // out of season
			day(2015, 6, 15),
			day(2015, 7, 25),
		},
		map[string][]float64{
			"qa":   {0, 0, 0, 0, 224, 992},
			"ndvi": {2, 4, 6, 99, 5, 7},
		},
	)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return tbl
}

func summerConfig() Config {
	cfg := DefaultConfig()
	cfg.StartMonth, cfg.StartDay = 6, 1
	cfg.EndMonth, cfg.EndDay = 9, 30
	cfg.Field = "ndvi"
	return cfg
}

func TestSeasons(t *testing.T) {
	tbl := seasonTable(t)

	seasons, err := Seasons(tbl, summerConfig())
	if err != nil {
		t.Fatalf("Seasons failed: %v", err)
	}

	if len(seasons) != 2 {
		t.Fatalf("Expected 2 years, got %d", len(seasons))
	}

	for _, y := range []int{2014, 2015} {
		dates := seasons[y]
		if len(dates) == 0 {
			t.Fatalf("No dates for year %d", y)
		}
		if !dates[0].Equal(day(y, 6, 1)) {
			t.Errorf("Year %d: expected first date %d-06-01, got %v", y, y, dates[0])
		}
		if !dates[len(dates)-1].Equal(day(y, 9, 30)) {
			t.Errorf("Year %d: expected last date %d-09-30, got %v", y, y, dates[len(dates)-1])
		}
		// June through September: 30+31+31+30 days
		if len(dates) != 122 {
			t.Errorf("Year %d: expected 122 daily dates, got %d", y, len(dates))
		}
	}
}

func TestInfo(t *testing.T) {
	tbl := seasonTable(t)

	info, err := Info(tbl, summerConfig())
	if err != nil {
		t.Fatalf("Info failed: %v", err)
	}

	s2014 := info[2014]
	if s2014.Mean == nil {
		t.Fatal("Expected stats for 2014")
	}
	// In-season clear values: 2, 4, 6. The November row is outside the window.
	if math.Abs(*s2014.Mean-4) > 1e-10 {
		t.Errorf("Expected 2014 mean 4, got %f", *s2014.Mean)
	}
	if math.Abs(*s2014.Max-6) > 1e-10 {
		t.Errorf("Expected 2014 max 6, got %f", *s2014.Max)
	}
	if math.Abs(*s2014.Std-math.Sqrt(8.0/3.0)) > 1e-10 {
		t.Errorf("Expected 2014 std %f, got %f", math.Sqrt(8.0/3.0), *s2014.Std)
	}

	// Every 2015 in-season row is masked out
	s2015 := info[2015]
	if s2015.Min != nil || s2015.Max != nil || s2015.Mean != nil || s2015.Std != nil {
		t.Errorf("Expected all-nil summary for fully masked 2015, got %+v", s2015)
	}
}

func TestInfoUnknownField(t *testing.T) {
	tbl := seasonTable(t)

	cfg := summerConfig()
	cfg.Field = "missing"

	if _, err := Info(tbl, cfg); err == nil {
		t.Error("Expected error for unknown field")
	}
}

func TestInfoCustomMask(t *testing.T) {
	tbl := seasonTable(t)

	cfg := summerConfig()
	cfg.MaskValues = []float64{2} // masks on ndvi values instead of QA codes
	cfg.MaskField = "ndvi"

	info, err := Info(tbl, cfg)
	if err != nil {
		t.Fatalf("Info failed: %v", err)
	}

	// 2014 in-season values 4 and 6 survive
	if info[2014].Mean == nil || math.Abs(*info[2014].Mean-5) > 1e-10 {
		t.Errorf("Expected 2014 mean 5, got %v", info[2014].Mean)
	}
	// 2015 rows survive the custom mask
	if info[2015].Mean == nil || math.Abs(*info[2015].Mean-6) > 1e-10 {
		t.Errorf("Expected 2015 mean 6, got %v", info[2015].Mean)
	}
}

func TestInfoBadWindow(t *testing.T) {
	tbl := seasonTable(t)

	cfg := summerConfig()
	cfg.StartMonth, cfg.StartDay = 9, 30
	cfg.EndMonth, cfg.EndDay = 6, 1 // end precedes start

	if _, err := Info(tbl, cfg); err == nil {
		t.Error("Expected error for inverted season window")
	}
}
