package api

import "testing"

func TestUserFullName(t *testing.T) {
	tests := []struct {
		first, last, want string
	}{
		{"Ann", "Lee", "Ann Lee"},
		{"Ann", "", "Ann"},
		{"", "Lee", "Lee"},
		{"", "", ""},
	}
	for _, tt := range tests {
		u := User{FirstName: tt.first, LastName: tt.last}
		if got := u.FullName(); got != tt.want {
			t.Errorf("FullName(%q, %q) = %q, want %q", tt.first, tt.last, got, tt.want)
		}
	}
}

func TestUserIsAdmin(t *testing.T) {
	for _, ut := range []UserType{UserAdmin, UserSuperadmin} {
		if !(User{UserType: ut}).IsAdmin() {
			t.Errorf("%s should be admin", ut)
		}
	}
	for _, ut := range []UserType{UserJobseeker, UserEmployer, ""} {
		if (User{UserType: ut}).IsAdmin() {
			t.Errorf("%s should not be admin", ut)
		}
	}
}

func TestValidApplicationStatus(t *testing.T) {
	for _, s := range []string{"applied", "viewed", "shortlisted", "rejected", "interviewed", "hired"} {
		if !ValidApplicationStatus(s) {
			t.Errorf("%q should be valid", s)
		}
	}
	for _, s := range []string{"", "pending", "APPLIED", "withdrawn"} {
		if ValidApplicationStatus(s) {
			t.Errorf("%q should be invalid", s)
		}
	}
}

func TestJobIDUsesMongoField(t *testing.T) {
	var j Job
	if err := unmarshalLenient([]byte(`{"_id":"abc123","title":"Go Dev"}`), &j); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if j.ID != "abc123" {
		t.Errorf("ID = %q, want abc123", j.ID)
	}
}
