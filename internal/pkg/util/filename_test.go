package util

import "testing"

func TestSecureFilename(t *testing.T) {
	cases := map[string]string{
		"My cool movie.mov":          "My_cool_movie.mov",
		"../../../etc/passwd":        "etc_passwd",
		"i contain cool ümläuts.txt": "i_contain_cool_umlauts.txt",
		`C:\Users\me\photo.png`:      "C_Users_me_photo.png",
		"..":                         "",
		"report (final).pdf":         "report_final.pdf",
	}
	for in, want := range cases {
		if got := SecureFilename(in); got != want {
			t.Errorf("SecureFilename(%q) = %q, want %q", in, got, want)
		}
	}
}
