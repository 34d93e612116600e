package internal

import "testing"

func intPtr(val int) *int {
	return &val
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		status   string
		delay    *int
		expected DelayCategory
	}{
		{
			name:     "nil delay is on time",
			status:   "landed",
			delay:    nil,
			expected: OnTime,
		},
		{
			name:     "early arrival is on time",
			status:   "landed",
			delay:    intPtr(-10),
			expected: OnTime,
		},
		{
			name:     "on time upper bound",
			status:   "landed",
			delay:    intPtr(15),
			expected: OnTime,
		},
		{
			name:     "just above on time",
			status:   "landed",
			delay:    intPtr(16),
			expected: MinorDelay,
		},
		{
			name:     "minor upper bound",
			status:   "landed",
			delay:    intPtr(60),
			expected: MinorDelay,
		},
		{
			name:     "just above minor",
			status:   "landed",
			delay:    intPtr(61),
			expected: MajorDelay,
		},
		{
			name:     "major upper bound",
			status:   "landed",
			delay:    intPtr(180),
			expected: MajorDelay,
		},
		{
			name:     "just above major",
			status:   "landed",
			delay:    intPtr(181),
			expected: SevereDelay,
		},
		{
			name:     "cancelled beats delay value",
			status:   "cancelled",
			delay:    intPtr(500),
			expected: Cancelled,
		},
		{
			name:     "cancelled is case-insensitive",
			status:   "CANCELLED",
			delay:    nil,
			expected: Cancelled,
		},
		{
			name:     "diverted beats delay value",
			status:   "Diverted",
			delay:    intPtr(5),
			expected: Diverted,
		},
		{
			name:     "unknown status falls back to delay",
			status:   "incident",
			delay:    intPtr(90),
			expected: MajorDelay,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := Classify(test.status, test.delay)
			if got != test.expected {
				t.Errorf("Classify(%q, %v) = %v, want %v", test.status, test.delay, got, test.expected)
			}
		})
	}
}
