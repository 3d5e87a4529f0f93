package domain

import (
	"errors"
	"fmt"
	"testing"

	"emotebot/internal/logmessage"
)

func TestCode(t *testing.T) {
	_, parseErr := logmessage.Reduce("<Clickable>")
	_, reduceErr := logmessage.Reduce("PlayerParameter(7)")

	tests := []struct {
		err  error
		want string
	}{
		{nil, ""},
		{ErrEmoteNotFound, CodeEmoteNotFound},
		{fmt.Errorf("find emote: %w", ErrEmoteNotFound), CodeEmoteNotFound},
		{ErrInvalidLanguage, CodeInvalidLanguage},
		{ErrInvalidGender, CodeInvalidGender},
		{fmt.Errorf("get settings: %w", ErrSettingsNotFound), CodeSettingsNotFound},
		{logmessage.ErrMultipleSelves, CodeMultipleSelves},
		{fmt.Errorf("markup: %w", ErrMarkupMissing), CodeMarkupMissing},
		{parseErr, CodeInvalidMarkup},
		{fmt.Errorf("reduce: %w", reduceErr), CodeInvalidMarkup},
		{errors.New("boom"), CodeInternal},
	}
	for _, tc := range tests {
		if got := Code(tc.err); got != tc.want {
			t.Errorf("Code(%v) = %q, want %q", tc.err, got, tc.want)
		}
	}
}
