package main

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"emotebot/internal/domain/entities"
	"emotebot/internal/infrastructure/emotestore"
)

const dataFile = "../../data/emotes.yaml"

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRender(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "untargeted",
			args: []string{"render", "/surprised", "--origin", "K'haldru Alaba", "--origin-gender", "f"},
			want: "K'haldru Alaba is surprised.\n",
		},
		{
			name: "world names",
			args: []string{"render", "/wave", "--origin", "K'haldru Alaba", "--origin-world", "Gilgamesh",
				"--target", "Puruo Jelly", "--target-world", "Tonberry", "--world-names"},
			want: "K'haldru Alaba@Gilgamesh waves to Puruo Jelly@Tonberry.\n",
		},
		{
			name: "japanese alias",
			args: []string{"render", "/おどろく", "-l", "ja", "--origin", "K'haldru Alaba", "--target", "Puruo Jelly"},
			want: "K'haldru AlabaはPuruo Jellyを見ておどろいた。\n",
		},
		{
			name: "self origin",
			args: []string{"render", "surprised", "--origin", "K'haldru Alaba", "--self", "origin"},
			want: "you are surprised.\n",
		},
		{
			name: "npc origin",
			args: []string{"render", "/annoyed", "--origin", "Ardbert", "--origin-npc"},
			want: "Ardbert expresses his annoyance.\n",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := execute(t, append(tc.args, "--data", dataFile)...)
			if err != nil {
				t.Fatalf("render: %v", err)
			}
			if got != tc.want {
				t.Fatalf("output = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestRenderErrors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{name: "suggestion", args: []string{"render", "/suprised", "--origin", "A"}, wantErr: "did you mean /surprised?"},
		{name: "unknown", args: []string{"render", "/xyzzy", "--origin", "A"}, wantErr: "emote not found"},
		{name: "gender", args: []string{"render", "/wave", "--origin", "A", "--origin-gender", "x"}, wantErr: "invalid gender"},
		{name: "language", args: []string{"render", "/wave", "--origin", "A", "--lang", "fr"}, wantErr: "unknown language"},
		{name: "self target without target", args: []string{"render", "/wave", "--origin", "A", "--self", "target"}, wantErr: "needs --target"},
		{name: "missing origin", args: []string{"render", "/wave"}, wantErr: "origin"},
		{name: "source", args: []string{"render", "/wave", "--origin", "A", "--source", "s3"}, wantErr: "unknown source"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := execute(t, append(tc.args, "--data", dataFile)...)
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Fatalf("error = %v, want it to contain %q", err, tc.wantErr)
			}
		})
	}
}

func TestPerspectives(t *testing.T) {
	got, err := execute(t, "perspectives", "/surprised", "--data", dataFile,
		"--origin", "K'haldru Alaba", "--origin-gender", "female", "--target", "Puruo Jelly")
	if err != nil {
		t.Fatalf("perspectives: %v", err)
	}
	for _, want := range []string{
		"you are surprised.",
		"you look at Puruo Jelly in surprise.",
		"K'haldru Alaba looks at Puruo Jelly in surprise.",
		"K'haldru Alaba is surprised.",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output misses %q:\n%s", want, got)
		}
	}
	if n := strings.Count(got, "\n"); n != 5 {
		t.Errorf("got %d lines, want 5", n)
	}
}

func TestList(t *testing.T) {
	got, err := execute(t, "list", "--data", dataFile)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	want := "3\tSurprised\t/surprised /おどろく\n" +
		"7\tAnnoyed\t/annoyed /いらいら\n" +
		"12\tWave\t/wave /手を振る\n"
	if got != want {
		t.Fatalf("list = %q, want %q", got, want)
	}
}

func TestValidate(t *testing.T) {
	got, err := execute(t, "validate", "--data", dataFile)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if got != "12 checked, 0 failed\n" {
		t.Fatalf("validate = %q", got)
	}

	path := filepath.Join(t.TempDir(), "broken.yaml")
	err = emotestore.WriteYAML(path, []entities.Emote{{
		ID:       9,
		Name:     "Broken",
		Commands: []string{"/broken"},
		En:       entities.LogMessagePair{Targeted: "<Clickable>", Untargeted: "fine"},
	}})
	if err != nil {
		t.Fatal(err)
	}
	got, err = execute(t, "validate", "--data", path)
	if err == nil {
		t.Fatal("validate succeeded on a broken log message")
	}
	if !strings.HasPrefix(got, "9\t/broken\ten\ttargeted\t") || !strings.HasSuffix(got, "2 checked, 1 failed\n") {
		t.Fatalf("validate = %q", got)
	}
}

func TestFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{
  "pagination": {"page": 1, "page_next": null},
  "results": [{
    "id": 3,
    "name": "Surprised",
    "log_message_targeted": {"text_en": "t", "text_ja": "t"},
    "log_message_untargeted": {"text_en": "u", "text_ja": "u"},
    "text_command": {"alias_en": null, "alias_ja": null, "command_en": "/surprised", "command_ja": "/おどろく"}
  }]
}`)
	}))
	defer srv.Close()

	out := filepath.Join(t.TempDir(), "emotes.yaml")
	if _, err := execute(t, "fetch", "--xivapi-url", srv.URL, "-o", out); err != nil {
		t.Fatalf("fetch: %v", err)
	}
	got, err := execute(t, "list", "--data", out)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if want := "3\tSurprised\t/surprised /おどろく\n"; got != want {
		t.Fatalf("list = %q, want %q", got, want)
	}
}
