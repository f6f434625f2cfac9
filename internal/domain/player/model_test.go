package player

import "testing"

func TestClassifyRole(t *testing.T) {
	cases := []struct {
		name    string
		runs    int64
		wickets int64
		want    string
	}{
		{"runs and wickets", 1200, 60, RoleAllRounder},
		{"wickets only", 0, 40, RoleBowler},
		{"runs only", 500, 0, RoleBatter},
		{"no figures", 0, 0, RoleBatter},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ClassifyRole(tc.runs, tc.wickets); got != tc.want {
				t.Fatalf("ClassifyRole(%d, %d) = %q, want %q", tc.runs, tc.wickets, got, tc.want)
			}
		})
	}
}
