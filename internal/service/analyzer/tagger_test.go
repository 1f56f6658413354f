package analyzer

import (
	"context"
	"errors"
	"testing"

	"github.com/patri2022onw/GermanTextLevel/internal/domain"
)

func TestBasicTagger(t *testing.T) {
	tagger := NewBasicTagger()

	tests := []struct {
		name string
		text string
		want []string
	}{
		{"words and punctuation", "Hallo, Welt!", []string{"Hallo", ",", "Welt", "!"}},
		{"umlauts kept in words", "Das Wetter ist außergewöhnlich.", []string{"Das", "Wetter", "ist", "außergewöhnlich", "."}},
		{"in-word hyphen", "Die E-Mail kam an.", []string{"Die", "E-Mail", "kam", "an", "."}},
		{"trailing hyphen splits", "Hin- und Rückfahrt", []string{"Hin", "-", "und", "Rückfahrt"}},
		{"digits form words", "Es sind 25 Grad.", []string{"Es", "sind", "25", "Grad", "."}},
		{"empty input", "", nil},
		{"only whitespace", "  \n\t ", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, err := tagger.Tag(context.Background(), tt.text)
			if err != nil {
				t.Fatalf("Tag: %v", err)
			}
			if len(tokens) != len(tt.want) {
				t.Fatalf("got %d tokens %v, want %d", len(tokens), surfaces(tokens), len(tt.want))
			}
			for i, want := range tt.want {
				if tokens[i].Surface != want {
					t.Errorf("token %d = %q, want %q", i, tokens[i].Surface, want)
				}
				if tokens[i].Lemma != tokens[i].Surface {
					t.Errorf("token %d lemma = %q, want surface form", i, tokens[i].Lemma)
				}
				if tokens[i].Index != i {
					t.Errorf("token %d index = %d", i, tokens[i].Index)
				}
			}
		})
	}
}

func TestBasicTagger_PunctFlag(t *testing.T) {
	tokens, err := NewBasicTagger().Tag(context.Background(), "Gut?")
	if err != nil {
		t.Fatalf("Tag: %v", err)
	}
	if len(tokens) != 2 {
		t.Fatalf("got %d tokens", len(tokens))
	}
	if tokens[0].IsPunct || !tokens[1].IsPunct {
		t.Errorf("punct flags = [%v %v], want [false true]", tokens[0].IsPunct, tokens[1].IsPunct)
	}
}

func TestFallbackTagger(t *testing.T) {
	ctx := context.Background()

	t.Run("primary result passes through", func(t *testing.T) {
		primary := fixedTagger{tokens: []domain.TaggedToken{
			{Surface: "Häuser", Lemma: "Haus", POS: "NOUN"},
		}}
		ft := NewFallbackTagger(primary, testLogger())

		tokens, err := ft.Tag(ctx, "Häuser")
		if err != nil {
			t.Fatalf("Tag: %v", err)
		}
		if len(tokens) != 1 || tokens[0].Lemma != "Haus" {
			t.Errorf("tokens = %v", tokens)
		}
	})

	t.Run("primary failure degrades to basic tokenizer", func(t *testing.T) {
		ft := NewFallbackTagger(failingTagger{err: errors.New("down")}, testLogger())

		tokens, err := ft.Tag(ctx, "Hallo Welt")
		if err != nil {
			t.Fatalf("Tag: %v", err)
		}
		if got := surfaces(tokens); len(got) != 2 || got[0] != "Hallo" {
			t.Errorf("tokens = %v", got)
		}
	})

	t.Run("nil primary uses basic tokenizer", func(t *testing.T) {
		ft := NewFallbackTagger(nil, testLogger())

		tokens, err := ft.Tag(ctx, "Hallo")
		if err != nil || len(tokens) != 1 {
			t.Errorf("got %v, %v", tokens, err)
		}
	})
}

type fixedTagger struct{ tokens []domain.TaggedToken }

func (f fixedTagger) Tag(context.Context, string) ([]domain.TaggedToken, error) {
	return f.tokens, nil
}

func surfaces(tokens []domain.TaggedToken) []string {
	out := make([]string, len(tokens))
	for i, t := range tokens {
		out[i] = t.Surface
	}
	return out
}
