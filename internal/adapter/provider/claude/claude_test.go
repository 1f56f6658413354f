package claude

import (
	"strings"
	"testing"

	"github.com/patri2022onw/GermanTextLevel/internal/domain"
)

func TestBuildTranslatePrompt(t *testing.T) {
	prompt := buildTranslatePrompt("Gelegenheit", "English")

	for _, want := range []string{`"Gelegenheit"`, "to English", "English translation:"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q:\n%s", want, prompt)
		}
	}
}

func TestBuildBatchPrompt(t *testing.T) {
	prompt := buildBatchPrompt([]string{"Haus", "Gelegenheit"}, "French")

	if !strings.Contains(prompt, `"Haus", "Gelegenheit"`) {
		t.Errorf("prompt missing quoted word list:\n%s", prompt)
	}
	if !strings.Contains(prompt, "to French") {
		t.Errorf("prompt missing target language:\n%s", prompt)
	}
	if !strings.Contains(prompt, "one per line") {
		t.Errorf("prompt missing line format instruction:\n%s", prompt)
	}
}

func TestBuildRewritePrompt(t *testing.T) {
	prompt := buildRewritePrompt("Das Wetter ist außergewöhnlich.", domain.LevelB1,
		[]string{"außergewöhnlich"})

	for _, want := range []string{"to B1 level", "above B1 level: außergewöhnlich", "Das Wetter ist außergewöhnlich."} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q:\n%s", want, prompt)
		}
	}
}

func TestParseBatchResponse(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "plain lines",
			text: "house\nopportunity\n",
			want: []string{"house", "opportunity"},
		},
		{
			name: "blank lines dropped",
			text: "\nhouse\n\nopportunity\n\n",
			want: []string{"house", "opportunity"},
		},
		{
			name: "numbered list markers stripped",
			text: "1. house\n2) opportunity",
			want: []string{"house", "opportunity"},
		},
		{
			name: "dash markers stripped",
			text: "- house\n- opportunity",
			want: []string{"house", "opportunity"},
		},
		{
			name: "numbers that are translations survive",
			text: "25\ntwenty",
			want: []string{"25", "twenty"},
		},
		{
			name: "empty response",
			text: "   \n ",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseBatchResponse(tt.text)
			if len(got) != len(tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("line %d = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestFirstLine(t *testing.T) {
	if got := firstLine("  house\nextra explanation"); got != "house" {
		t.Errorf("firstLine() = %q, want %q", got, "house")
	}
	if got := firstLine("   "); got != "" {
		t.Errorf("firstLine() = %q, want empty", got)
	}
}
