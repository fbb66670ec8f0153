package dispatch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRequest(t *testing.T) {
	tests := []struct {
		name   string
		argv   []string
		want   Request
		wantOK bool
	}{
		{name: "empty", argv: nil, wantOK: false},
		{name: "alias only", argv: []string{"haalat"}, want: Request{Alias: "haalat", ExtraArgs: []string{}}, wantOK: true},
		{
			name:   "extra args kept in order",
			argv:   []string{"zimma", "-m", "two words"},
			want:   Request{Alias: "zimma", ExtraArgs: []string{"-m", "two words"}},
			wantOK: true,
		},
		{
			name:   "long help flag",
			argv:   []string{"ped", "--help"},
			want:   Request{Alias: "ped", ExtraArgs: []string{"--help"}, WantHelp: true},
			wantOK: true,
		},
		{
			name:   "short help flag between args",
			argv:   []string{"dekho", "main", "-h", "x"},
			want:   Request{Alias: "dekho", ExtraArgs: []string{"main", "-h", "x"}, WantHelp: true},
			wantOK: true,
		},
		{
			name:   "help after double dash is forwarded",
			argv:   []string{"jodo", "--", "-h"},
			want:   Request{Alias: "jodo", ExtraArgs: []string{"--", "-h"}},
			wantOK: true,
		},
		{
			name:   "help lookalikes are not help",
			argv:   []string{"dekhrek", "--helpful", "-hh"},
			want:   Request{Alias: "dekhrek", ExtraArgs: []string{"--helpful", "-hh"}},
			wantOK: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseRequest(tt.argv)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseRequest_DoesNotAliasInput(t *testing.T) {
	argv := []string{"jodo", "a.go"}
	req, _ := ParseRequest(argv)
	req.ExtraArgs[0] = "changed"
	assert.Equal(t, "a.go", argv[1])
}
