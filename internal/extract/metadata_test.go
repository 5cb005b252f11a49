package extract

import (
	"testing"

	"goreview/adapters/tabular"
	"goreview/domain/review"
)

func TestInferRole(t *testing.T) {
	cases := []struct {
		name  string
		owner string
		title string
		want  string
	}{
		{"sd code in owner", "Ravi Kumar SD2", "Improve reliability", "SD2"},
		{"sd code in title", "Ravi Kumar", "SD3 growth objectives", "SD3"},
		{"sde with space", "Priya SDE 1", "", "SDE 1"},
		{"sde compact", "Priya", "sde2 goals for H1", "SDE2"},
		{"staff engineer", "Sam", "Staff Engineer roadmap", "STAFF ENGINEER"},
		{"senior engineer", "Sam", "Senior engineer growth plan", "SENIOR ENGINEER"},
		{"lead engineer", "Lee", "Lead Engineer duties", "LEAD ENGINEER"},
		{"principal engineer", "Ash", "Principal engineer charter", "PRINCIPAL ENGINEER"},
		{"priority beats later patterns", "Jane Doe", "Senior SD2 Engineer goals", "SD2"},
		{"word boundary blocks sd23", "Owner sd23", "", review.RoleUnknown},
		{"no match", "Jane Doe", "Ship the roadmap", review.RoleUnknown},
		{"empty inputs", "", "", review.RoleUnknown},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := InferRole(tc.owner, tc.title); got != tc.want {
				t.Errorf("InferRole(%q, %q) = %q, want %q", tc.owner, tc.title, got, tc.want)
			}
		})
	}
}

func TestInferMetadata(t *testing.T) {
	rows := []tabular.Row{
		{"Owner": "Ravi Kumar", "Owner Email": "ravi@example.com", "Teams": "Payments", "Title": "SD2 objectives for H1"},
		{"Owner": "Someone Else", "Teams": "Ignored"},
	}
	meta := InferMetadata(rows)
	want := review.Metadata{Owner: "Ravi Kumar", OwnerEmail: "ravi@example.com", Team: "Payments", Role: "SD2"}
	if meta != want {
		t.Errorf("InferMetadata = %+v, want %+v", meta, want)
	}
}

func TestInferMetadataEmptyTable(t *testing.T) {
	meta := InferMetadata(nil)
	if meta.Role != review.RoleUnknown {
		t.Errorf("Role = %q, want %q", meta.Role, review.RoleUnknown)
	}
	if meta.Owner != "" || meta.OwnerEmail != "" || meta.Team != "" {
		t.Errorf("expected empty owner fields, got %+v", meta)
	}
}
