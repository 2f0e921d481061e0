package format

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/mobil-koeln/irail-cli/internal/models"
	"github.com/mobil-koeln/irail-cli/internal/testutil"
)

func brussels(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("Europe/Brussels")
	testutil.AssertNil(t, err)
	return loc
}

func TestFormatDelay(t *testing.T) {
	tests := []struct {
		seconds int64
		want    string
	}{
		{0, ""},
		{-60, ""},
		{30, "+<1m"},
		{60, "+1m"},
		{120, "+2m"},
		{3600, "+1h"},
		{3720, "+1h 2m"},
		{86400 + 60, "+1d 1m"},
		{365*86400 + 2*86400 + 3*3600 + 4*60, "+1y 2d 3h 4m"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			got := FormatDelay(tt.seconds)
			testutil.AssertEqual(t, got.String(), tt.want)
			if tt.want == "" {
				testutil.AssertLen(t, got, 0)
				return
			}
			testutil.AssertTrue(t, got.Has(KindWarning))
			testutil.AssertTrue(t, strings.HasPrefix(got.String(), "+"))
			testutil.AssertNotContains(t, got.String(), "-")
		})
	}
}

func TestFormatTime(t *testing.T) {
	loc := brussels(t)

	got := FormatTime(1650000000, nil, loc)
	testutil.AssertEqual(t, got.String(), "07:20")
	testutil.AssertFalse(t, got.Has(KindWarning))

	got = FormatTime(1650000000, FormatDelay(120), loc)
	testutil.AssertEqual(t, got.String(), "07:20 +2m")
	testutil.AssertTrue(t, got.Has(KindWarning))
	testutil.AssertEqual(t, got[0].Kind, KindPlain)
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		seconds int64
		want    string
	}{
		{0, "0m"},
		{59, "0m"},
		{3600, "1h"},
		{4200, "1h 10m"},
		{90000, "1d 1h"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			testutil.AssertEqual(t, FormatDuration(tt.seconds).String(), tt.want)
		})
	}
}

func TestFormatStatus(t *testing.T) {
	flags := []string{"0", "1"}
	for _, dep := range flags {
		for _, arr := range flags {
			got := FormatStatus(dep, arr)
			if dep == "0" && arr == "0" {
				testutil.AssertEqual(t, got.String(), StatusOK)
				testutil.AssertFalse(t, got.Has(KindWarning))
			} else {
				testutil.AssertEqual(t, got.String(), StatusCancelled)
				testutil.AssertTrue(t, got.Has(KindWarning))
			}
		}
	}
}

func TestFormatAlerts(t *testing.T) {
	tests := []struct {
		name    string
		alerts  models.Alerts
		want    string
		warning bool
	}{
		{"nil", nil, "✓", false},
		{"zero counts", models.Alerts{{Number: "0"}, {Number: "0"}}, "✓", false},
		{"single", models.Alerts{{Number: "1"}}, "⚠ 1", true},
		{"summed", models.Alerts{{Number: "2"}, {Number: "3"}, {Number: "0"}}, "⚠ 5", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatAlerts(tt.alerts)
			testutil.AssertEqual(t, got.String(), tt.want)
			testutil.AssertEqual(t, got.Has(KindWarning), tt.warning)
			testutil.AssertEqual(t, got.Has(KindSuccess), !tt.warning)
		})
	}
}

func TestJoin(t *testing.T) {
	got := Join(" ", Plain("a"), nil, Warning("b"), Plain(""))
	testutil.AssertEqual(t, got.String(), "a b")
	testutil.AssertLen(t, got, 3)

	testutil.AssertTrue(t, Join(" ").IsEmpty())
}

func TestText_MarshalJSON(t *testing.T) {
	b, err := Join(" ", Plain("07:20"), Warning("+2m")).MarshalJSON()
	testutil.AssertNil(t, err)
	testutil.AssertEqual(t, string(b), `"07:20 +2m"`)
}

func TestKind_String(t *testing.T) {
	testutil.AssertEqual(t, KindPlain.String(), "plain")
	testutil.AssertEqual(t, KindWarning.String(), "warning")
	testutil.AssertEqual(t, KindSuccess.String(), "success")
	testutil.AssertEqual(t, KindMuted.String(), "muted")
	testutil.AssertTrue(t, Muted("12").Has(KindMuted))
}

func TestOrdered_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(Ordered{Text: Join(" ", Plain("07:20"), Warning("+2m")), Order: 1650000000})
	testutil.AssertNil(t, err)
	testutil.AssertEqual(t, string(b), `"07:20 +2m"`)
}
