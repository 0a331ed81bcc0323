package database

import (
	"testing"
)

func TestNewDialectorPicksDriverByScheme(t *testing.T) {
	cases := []struct {
		url  string
		want string
	}{
		{url: "postgres://u:p@localhost:5432/radar", want: "postgres"},
		{url: "postgresql://u:p@localhost:5432/radar", want: "postgres"},
		{url: "mysql://u:p@tcp(localhost:3306)/radar?parseTime=true", want: "mysql"},
		{url: "sqlite://" + t.TempDir() + "/x.db", want: "sqlite"},
		{url: "", want: "sqlite"},
	}
	for _, tc := range cases {
		d, err := NewDialector(tc.url, t.TempDir())
		if err != nil {
			t.Fatalf("NewDialector(%q): %v", tc.url, err)
		}
		if d.Name() != tc.want {
			t.Fatalf("NewDialector(%q): got=%s want=%s", tc.url, d.Name(), tc.want)
		}
	}
}

func TestNewDialectorRejectsUnknownScheme(t *testing.T) {
	if _, err := NewDialector("oracle://x", t.TempDir()); err == nil {
		t.Fatal("expected error for unsupported scheme")
	}
}

func TestSQLiteDSNEnablesForeignKeys(t *testing.T) {
	if got := SQLiteDSN("/tmp/app.db"); got != "/tmp/app.db?_foreign_keys=on" {
		t.Fatalf("got=%q", got)
	}
	if got := SQLiteDSN("file:x?mode=memory"); got != "file:x?mode=memory&_foreign_keys=on" {
		t.Fatalf("got=%q", got)
	}
}
