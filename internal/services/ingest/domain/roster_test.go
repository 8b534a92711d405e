package domain

import (
	"testing"

	perr "riftcoach/internal/platform/errors"
)

func TestParseRosterEntry(t *testing.T) {
	t.Parallel()

	ref, err := ParseRosterEntry(" Faker#KR1 = 7b1f3a52-4c12-4f5e-9a4e-2f9d31f6b0aa ")
	if err != nil {
		t.Fatalf("ParseRosterEntry: %v", err)
	}
	if ref.GameName != "Faker" || ref.TagLine != "KR1" {
		t.Fatalf("ref = %+v", ref)
	}
	if ref.Handle() != "Faker#KR1" {
		t.Fatalf("Handle = %q", ref.Handle())
	}
}

func TestParseRosterEntryRejectsBadShapes(t *testing.T) {
	t.Parallel()

	for _, s := range []string{
		"Faker#KR1",
		"FakerKR1=7b1f3a52-4c12-4f5e-9a4e-2f9d31f6b0aa",
		"#KR1=7b1f3a52-4c12-4f5e-9a4e-2f9d31f6b0aa",
		"Faker#KR1=not-a-uuid",
	} {
		if _, err := ParseRosterEntry(s); !perr.IsCode(err, perr.ErrorCodeInvalidArgument) {
			t.Fatalf("entry %q: want InvalidArgument, got %v", s, err)
		}
	}
}

func TestParseRosterSkipsBlanks(t *testing.T) {
	t.Parallel()

	refs, err := ParseRoster([]string{
		"Faker#KR1=7b1f3a52-4c12-4f5e-9a4e-2f9d31f6b0aa",
		"  ",
		"Chovy#KR2=b3d0a7de-5a51-4c5b-9f70-63d6cbb9f3c1",
	})
	if err != nil {
		t.Fatalf("ParseRoster: %v", err)
	}
	if len(refs) != 2 {
		t.Fatalf("len = %d, want 2", len(refs))
	}
}
