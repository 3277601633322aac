package usecase

import "testing"

func TestPageBounds(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name                 string
		offset, limit        int
		wantOffset, wantSize int
	}{
		{"defaults", 0, 0, 0, 100},
		{"negative offset", -5, 10, 0, 10},
		{"limit capped", 0, 9999, 0, 500},
		{"passthrough", 20, 50, 20, 50},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			offset, limit := pageBounds(tc.offset, tc.limit)
			if offset != tc.wantOffset || limit != tc.wantSize {
				t.Fatalf("pageBounds(%d, %d) = (%d, %d), want (%d, %d)",
					tc.offset, tc.limit, offset, limit, tc.wantOffset, tc.wantSize)
			}
		})
	}
}
