package growth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func date(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := ParseDate(s)
	require.NoError(t, err)
	return d
}

func TestClassify_WeightBelowP15(t *testing.T) {
	c, err := Classify(DefaultTable(), date(t, "2024-03-17"), date(t, "2025-01-17"), 7.8, MetricWeight)
	require.NoError(t, err)

	require.Equal(t, 10, c.AgeMonths)
	require.Equal(t, StandardRow{AgeMonths: 10, P3: 7.4, P15: 8.2, P50: 9.2, P85: 10.2, P97: 11.4}, c.Row)
	require.Equal(t, BandP3to15, c.Band)
	require.Equal(t, "P3-15", c.Band.String())
	require.Equal(t, "P15", c.Band.ShortLabel())
	require.Equal(t, SeverityCaution, c.Band.Severity())
}

func TestClassify_HeightBelowP3(t *testing.T) {
	c, err := Classify(DefaultTable(), date(t, "2024-03-17"), date(t, "2025-01-17"), 65, MetricHeight)
	require.NoError(t, err)

	require.Equal(t, 10, c.AgeMonths)
	require.Equal(t, 68.7, c.Row.P3)
	require.Equal(t, BandBelowP3, c.Band)
	require.Equal(t, "P3", c.Band.ShortLabel())
	require.Equal(t, SeverityAlert, c.Band.Severity())
}

func TestClassify_InvalidMetric(t *testing.T) {
	_, err := Classify(DefaultTable(), date(t, "2024-03-17"), date(t, "2025-01-17"), 7.8, Metric("bmi"))
	require.ErrorIs(t, err, ErrInvalidMetric)
}

func TestAgeInMonths(t *testing.T) {
	cases := []struct {
		birth, measured string
		want            int
	}{
		{"2024-03-17", "2024-03-17", 0},
		{"2024-03-17", "2024-04-16", 0},
		{"2024-03-17", "2024-04-17", 1},
		{"2024-03-17", "2025-01-17", 10},
		{"2024-03-17", "2025-03-16", 11},
		{"2024-03-17", "2025-03-17", 12},
		{"2024-01-31", "2024-02-29", 0},
		// anteriores al nacimiento: se fuerzan a 0
		{"2024-03-17", "2024-03-01", 0},
		{"2024-03-17", "2023-01-01", 0},
	}
	for _, tc := range cases {
		got := AgeInMonths(date(t, tc.birth), date(t, tc.measured))
		require.Equalf(t, tc.want, got, "birth=%s measured=%s", tc.birth, tc.measured)
	}
}

func TestClassify_BeforeBirthUsesMonthZero(t *testing.T) {
	c, err := Classify(DefaultTable(), date(t, "2024-03-17"), date(t, "2024-02-01"), 3.3, MetricWeight)
	require.NoError(t, err)
	require.Equal(t, 0, c.AgeMonths)
	require.Equal(t, 0, c.Row.AgeMonths)
	require.Equal(t, BandP50, c.Band)
}

func TestBandFor_Boundaries(t *testing.T) {
	row := StandardRow{AgeMonths: 10, P3: 7.4, P15: 8.2, P50: 9.2, P85: 10.2, P97: 11.4}

	cases := []struct {
		value float64
		want  Band
	}{
		{7.39, BandBelowP3},
		{7.4, BandP3to15},
		{8.19, BandP3to15},
		{8.2, BandP15to50},
		{9.19, BandP15to50},
		{9.2, BandP50},
		{9.21, BandP50to85},
		{10.2, BandP85to97},
		{11.39, BandP85to97},
		{11.4, BandAboveP97},
		{30, BandAboveP97},
	}
	for _, tc := range cases {
		require.Equalf(t, tc.want, BandFor(row, tc.value), "value=%v", tc.value)
	}
}

func TestBandFor_Monotonic(t *testing.T) {
	birth := date(t, "2024-03-17")
	measured := date(t, "2025-01-17")

	for _, m := range Metrics {
		prev := BandBelowP3
		for v := 0.5; v < 130; v += 0.05 {
			c, err := Classify(DefaultTable(), birth, measured, v, m)
			require.NoError(t, err)
			require.GreaterOrEqualf(t, int(c.Band), int(prev), "%s value=%v", m, v)
			prev = c.Band
		}
	}
}

func TestShortLabel_Precedence(t *testing.T) {
	want := map[Band]string{
		BandBelowP3:  "P3",
		BandP3to15:   "P15",
		BandP15to50:  "P50",
		BandP50:      "P50",
		BandP50to85:  "P50",
		BandP85to97:  "P85",
		BandAboveP97: "P97",
	}
	for b, label := range want {
		require.Equalf(t, label, b.ShortLabel(), "band %s", b)
	}

	require.Equal(t, "P15", ShortLabel("P15"))
	require.Equal(t, "sin datos", ShortLabel("sin datos"))
}

func TestSeverity(t *testing.T) {
	want := map[Band]Severity{
		BandBelowP3:  SeverityAlert,
		BandP3to15:   SeverityCaution,
		BandP15to50:  SeverityNormal,
		BandP50:      SeverityNormal,
		BandP50to85:  SeverityNormal,
		BandP85to97:  SeverityCaution,
		BandAboveP97: SeverityAlert,
	}
	for b, sev := range want {
		require.Equalf(t, sev, b.Severity(), "band %s", b)
	}
}

func TestBand_StringAndParse(t *testing.T) {
	for _, b := range Bands {
		got, err := ParseBand(b.String())
		require.NoError(t, err)
		require.Equal(t, b, got)
	}

	_, err := ParseBand("P99")
	require.Error(t, err)
	require.Equal(t, "Band(42)", Band(42).String())

	out, err := BandP3to15.MarshalJSON()
	require.NoError(t, err)
	require.JSONEq(t, `"P3-15"`, string(out))
}
