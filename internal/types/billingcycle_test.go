package types

import (
	"testing"
	"time"
)

func TestResolveBillingDate(t *testing.T) {
	tests := []struct {
		name string
		now  time.Time
		mode BillingRunMode
		want time.Time
	}{
		{
			name: "scheduled run anchors to first day of current month",
			now:  time.Date(2023, 6, 17, 14, 25, 3, 0, time.UTC),
			mode: BillingRunModeScheduled,
			want: time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "scheduled run on the first stays on the first",
			now:  time.Date(2023, 6, 1, 0, 30, 0, 0, time.UTC),
			mode: BillingRunModeScheduled,
			want: time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "scheduled run across year boundary",
			now:  time.Date(2024, 1, 31, 23, 59, 59, 0, time.UTC),
			mode: BillingRunModeScheduled,
			want: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "on demand run keeps the current date unchanged",
			now:  time.Date(2023, 6, 17, 14, 25, 3, 0, time.UTC),
			mode: BillingRunModeOnDemand,
			want: time.Date(2023, 6, 17, 14, 25, 3, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveBillingDate(tt.now, tt.mode)
			if !got.Equal(tt.want) {
				t.Errorf("ResolveBillingDate(%v, %v) = %v, want %v", tt.now, tt.mode, got, tt.want)
			}
		})
	}
}

func TestResolveDueDate(t *testing.T) {
	tests := []struct {
		name           string
		billingDate    time.Time
		paymentDueDays int
		want           time.Time
	}{
		{
			name:           "fifteen day offset",
			billingDate:    time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC),
			paymentDueDays: 15,
			want:           time.Date(2023, 6, 16, 0, 0, 0, 0, time.UTC),
		},
		{
			name:           "zero offset due immediately",
			billingDate:    time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC),
			paymentDueDays: 0,
			want:           time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:           "offset crossing a month boundary",
			billingDate:    time.Date(2023, 1, 25, 0, 0, 0, 0, time.UTC),
			paymentDueDays: 10,
			want:           time.Date(2023, 2, 4, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveDueDate(tt.billingDate, tt.paymentDueDays)
			if !got.Equal(tt.want) {
				t.Errorf("ResolveDueDate(%v, %d) = %v, want %v", tt.billingDate, tt.paymentDueDays, got, tt.want)
			}
		})
	}
}

func TestBillingRunModeValidate(t *testing.T) {
	if err := BillingRunModeScheduled.Validate(); err != nil {
		t.Errorf("expected scheduled mode to be valid, got %v", err)
	}
	if err := BillingRunModeOnDemand.Validate(); err != nil {
		t.Errorf("expected on demand mode to be valid, got %v", err)
	}
	if err := BillingRunMode("hourly").Validate(); err == nil {
		t.Error("expected unknown mode to be invalid")
	}
}
